package wavelink

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrUnsupportedFormat is returned when a clip's (format tag, bit depth)
// combination has no decode path. The wrapping error names both values.
var ErrUnsupportedFormat = errors.New("unsupported sample format")

// Downmix reduces a multi-channel clip to a single channel by averaging the
// channels of each frame. A mono clip passes through unchanged. The output
// keeps the input's sample rate and encoding.
//
// Integer samples are summed in a wide accumulator, divided with Go's
// truncating division (toward zero), and clamped to the target range before
// narrowing. Float samples are averaged without clamping. Trailing bytes
// that do not form a complete frame are dropped.
func Downmix(c *Clip) (*Clip, error) {
	if c.NumChans <= 1 {
		return c, nil
	}

	format, err := c.SupportedFormat()
	if err != nil {
		return nil, err
	}

	out := &Clip{
		SampleRate:     c.SampleRate,
		NumChans:       1,
		BitDepth:       c.BitDepth,
		WavAudioFormat: c.WavAudioFormat,
	}

	channels := int(c.NumChans)
	frames := len(c.Data) / c.frameSize()

	switch format {
	case FormatI16:
		out.Data = make([]byte, frames*2)

		for i := range frames {
			var acc int
			for ch := range channels {
				idx := (i*channels + ch) * 2
				acc += int(int16(binary.LittleEndian.Uint16(c.Data[idx : idx+2])))
			}

			avg := clampInt(acc/channels, math.MinInt16, math.MaxInt16)
			binary.LittleEndian.PutUint16(out.Data[i*2:i*2+2], uint16(int16(avg)))
		}
	case FormatU8:
		out.Data = make([]byte, frames)

		for i := range frames {
			var acc int
			for ch := range channels {
				acc += int(c.Data[i*channels+ch])
			}

			out.Data[i] = uint8(clampInt(acc/channels, 0, math.MaxUint8))
		}
	case FormatF32:
		out.Data = make([]byte, frames*4)

		for i := range frames {
			var acc float32
			for ch := range channels {
				idx := (i*channels + ch) * 4
				acc += math.Float32frombits(binary.LittleEndian.Uint32(c.Data[idx : idx+4]))
			}

			avg := acc / float32(channels)
			binary.LittleEndian.PutUint32(out.Data[i*4:i*4+4], math.Float32bits(avg))
		}
	}

	return out, nil
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
