package modem

import (
	"errors"
	"fmt"

	"github.com/cwbudde/wavelink"
)

// Operating mode bits of the engine.
const (
	OperatingModeRX      = 1 << 1
	OperatingModeTX      = 1 << 2
	OperatingModeRXAndTX = OperatingModeRX | OperatingModeTX
)

const (
	// engine result meaning the decode output buffer was too small
	resultBufferTooSmall = -2

	initialDecodeCap = 256
	maxDecodeCap     = 64 << 10
)

var (
	// ErrInitFailed is returned when the engine refuses to create an
	// instance for the requested parameters.
	ErrInitFailed = errors.New("modem init failed")
	// ErrEncodeQuery is returned when the encode size query reports no
	// output.
	ErrEncodeQuery = errors.New("encode size query failed")
	// ErrEncodeSize is returned when the encode write pass produces a
	// different byte count than the query promised.
	ErrEncodeSize = errors.New("encode size mismatch")
	// ErrNoPayload is returned when no decodable signal was found in the
	// samples. This is an expected outcome for silent or foreign audio.
	ErrNoPayload = errors.New("no payload decoded")
	// ErrPayloadTooLarge is returned when the decoded payload would not
	// fit the maximum output buffer.
	ErrPayloadTooLarge = errors.New("decoded payload too large")
)

// Instance is an engine instance handle.
type Instance int32

// Parameters mirrors the engine's parameter block.
type Parameters struct {
	PayloadLength        int32
	SampleRateInp        float32
	SampleRateOut        float32
	SampleRate           float32
	SamplesPerFrame      int32
	SoundMarkerThreshold float32
	SampleFormatInp      int32
	SampleFormatOut      int32
	OperatingMode        int32
}

// Engine is the narrow surface of the FSK modem engine. It mirrors the
// engine's C API; results follow the C conventions (byte counts, with
// negative values signalling failures).
type Engine interface {
	// DefaultParameters returns the engine's default parameter block.
	DefaultParameters() Parameters
	// Init creates an engine instance for the given parameters.
	Init(p Parameters) (Instance, error)
	// Free releases an instance. It must be called on every exit path.
	Free(inst Instance)
	// Encode modulates payload into dst and returns the number of
	// waveform bytes. With query set, nothing is written and the
	// required dst length is returned instead.
	Encode(inst Instance, payload []byte, protocol Protocol, volume int, dst []byte, query bool) int
	// Decode demodulates mono samples into dst and returns the payload
	// length, resultBufferTooSmall if dst is too short, or another
	// non-positive value when no payload was found.
	Decode(inst Instance, samples []byte, dst []byte) int
}

// Modem drives an Engine through its calling conventions.
type Modem struct {
	eng Engine
}

// New returns a Modem bound to the given engine.
func New(eng Engine) *Modem {
	return &Modem{eng: eng}
}

// Encode modulates payload into a mono 16-bit signed PCM waveform and
// returns it together with the waveform's sample rate. A sampleRate of 0
// keeps the engine's default output rate. The volume is clamped to
// [0, 100].
func (m *Modem) Encode(payload []byte, protocol Protocol, volume int, sampleRate uint32) ([]byte, uint32, error) {
	params := m.eng.DefaultParameters()
	params.OperatingMode = OperatingModeTX
	params.SampleFormatOut = int32(wavelink.FormatI16)

	if sampleRate > 0 {
		params.SampleRateOut = float32(sampleRate)
		params.SampleRate = float32(sampleRate)
	}

	inst, err := m.eng.Init(params)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	defer m.eng.Free(inst)

	volume = clampVolume(volume)

	// query pass: size only, no output written
	size := m.eng.Encode(inst, payload, protocol, volume, nil, true)
	if size <= 0 {
		return nil, 0, fmt.Errorf("%w (result %d)", ErrEncodeQuery, size)
	}

	waveform := make([]byte, size)

	written := m.eng.Encode(inst, payload, protocol, volume, waveform, false)
	if written != size {
		return nil, 0, fmt.Errorf("%w: wrote %d bytes, expected %d", ErrEncodeSize, written, size)
	}

	return waveform, uint32(params.SampleRateOut), nil
}

// Decode searches mono samples for a modulated payload and returns its
// bytes. The sample format and rate describe the input samples. The output
// buffer starts small and doubles on the engine's buffer-too-small signal
// up to a 64KiB ceiling.
func (m *Modem) Decode(samples []byte, format wavelink.SampleFormat, sampleRate uint32) ([]byte, error) {
	params := m.eng.DefaultParameters()
	params.OperatingMode = OperatingModeRX
	params.SampleFormatInp = int32(format)
	params.SampleRateInp = float32(sampleRate)
	params.SampleRate = float32(sampleRate)

	inst, err := m.eng.Init(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	defer m.eng.Free(inst)

	for capacity := initialDecodeCap; ; capacity *= 2 {
		if capacity > maxDecodeCap {
			return nil, ErrPayloadTooLarge
		}

		payload := make([]byte, capacity)

		n := m.eng.Decode(inst, samples, payload)
		if n == resultBufferTooSmall {
			continue
		}

		if n <= 0 {
			return nil, ErrNoPayload
		}

		return payload[:n], nil
	}
}

func clampVolume(volume int) int {
	if volume < 0 {
		return 0
	}

	if volume > 100 {
		return 100
	}

	return volume
}
