package wavelink

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

const (
	floatPCM8Center = 127.5
	floatPCM8Scale  = 127.5
	scalePCMInt16   = 32768.0
)

// Clip holds one decoded audio buffer: the format description from the fmt
// chunk plus the raw interleaved sample bytes from the data chunk. A Clip is
// never mutated once built; Downmix produces a new one.
type Clip struct {
	SampleRate     uint32
	NumChans       uint16
	BitDepth       uint16
	WavAudioFormat uint16
	Data           []byte
}

// SampleFormat classifies the clip's encoding. Combinations outside the
// supported set map to FormatUndefined.
func (c *Clip) SampleFormat() SampleFormat {
	switch {
	case c.WavAudioFormat == wavFormatPCM && c.BitDepth == 8:
		return FormatU8
	case c.WavAudioFormat == wavFormatPCM && c.BitDepth == 16:
		return FormatI16
	case c.WavAudioFormat == wavFormatIEEEFloat && c.BitDepth == 32:
		return FormatF32
	default:
		return FormatUndefined
	}
}

// SupportedFormat returns the clip's sample format, or an error wrapping
// ErrUnsupportedFormat that names the offending format tag and bit depth.
func (c *Clip) SupportedFormat() (SampleFormat, error) {
	format := c.SampleFormat()
	if format == FormatUndefined {
		return FormatUndefined, fmt.Errorf("%w: format tag %d, %d bits per sample",
			ErrUnsupportedFormat, c.WavAudioFormat, c.BitDepth)
	}

	return format, nil
}

// frameSize returns the byte width of one frame across all channels.
func (c *Clip) frameSize() int {
	return int(c.NumChans) * int(c.BitDepth) / 8
}

// Float32Buffer returns the clip's samples as a normalized float32 buffer
// in [-1, 1]. The underlying bytes are not modified.
func (c *Clip) Float32Buffer() (*audio.Float32Buffer, error) {
	format, err := c.SupportedFormat()
	if err != nil {
		return nil, err
	}

	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			NumChannels: int(c.NumChans),
			SampleRate:  int(c.SampleRate),
		},
		SourceBitDepth: int(c.BitDepth),
	}

	switch format {
	case FormatU8:
		buf.Data = make([]float32, len(c.Data))
		for i, v := range c.Data {
			buf.Data[i] = float32((float64(v) - floatPCM8Center) / floatPCM8Scale)
		}
	case FormatI16:
		count := len(c.Data) / 2
		buf.Data = make([]float32, count)

		for i := range count {
			v := int16(binary.LittleEndian.Uint16(c.Data[2*i : 2*i+2]))
			buf.Data[i] = float32(float64(v) / scalePCMInt16)
		}
	case FormatF32:
		count := len(c.Data) / 4
		buf.Data = make([]float32, count)

		for i := range count {
			v := math.Float32frombits(binary.LittleEndian.Uint32(c.Data[4*i : 4*i+4]))
			buf.Data[i] = clampFloat32(v, -1, 1)
		}
	}

	return buf, nil
}

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
