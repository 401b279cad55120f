package wavelink

import (
	"errors"
	"testing"
)

func TestClipSampleFormat(t *testing.T) {
	tests := []struct {
		name      string
		formatTag uint16
		bitDepth  uint16
		want      SampleFormat
	}{
		{name: "pcm 8", formatTag: wavFormatPCM, bitDepth: 8, want: FormatU8},
		{name: "pcm 16", formatTag: wavFormatPCM, bitDepth: 16, want: FormatI16},
		{name: "float 32", formatTag: wavFormatIEEEFloat, bitDepth: 32, want: FormatF32},
		{name: "pcm 24", formatTag: wavFormatPCM, bitDepth: 24, want: FormatUndefined},
		{name: "float 64", formatTag: wavFormatIEEEFloat, bitDepth: 64, want: FormatUndefined},
		{name: "alaw", formatTag: 6, bitDepth: 8, want: FormatUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := &Clip{WavAudioFormat: tt.formatTag, BitDepth: tt.bitDepth}

			got := clip.SampleFormat()
			if got != tt.want {
				t.Fatalf("SampleFormat()=%v, want %v", got, tt.want)
			}
		})
	}
}

func TestClipSupportedFormat(t *testing.T) {
	clip := &Clip{WavAudioFormat: wavFormatPCM, BitDepth: 16}

	format, err := clip.SupportedFormat()
	if err != nil {
		t.Fatalf("SupportedFormat failed: %v", err)
	}

	if format != FormatI16 {
		t.Fatalf("format=%v, want %v", format, FormatI16)
	}

	bad := &Clip{WavAudioFormat: 2, BitDepth: 4}

	_, err = bad.SupportedFormat()
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("SupportedFormat err=%v, want ErrUnsupportedFormat", err)
	}
}

func TestClipFloat32Buffer(t *testing.T) {
	tests := []struct {
		name string
		clip *Clip
		want []float32
	}{
		{
			name: "i16",
			clip: &Clip{
				SampleRate:     48000,
				NumChans:       1,
				BitDepth:       16,
				WavAudioFormat: wavFormatPCM,
				Data:           i16Bytes(-32768, 0, 16384),
			},
			want: []float32{-1, 0, 0.5},
		},
		{
			name: "u8",
			clip: &Clip{
				SampleRate:     8000,
				NumChans:       1,
				BitDepth:       8,
				WavAudioFormat: wavFormatPCM,
				Data:           []byte{0, 255},
			},
			want: []float32{-1, 1},
		},
		{
			name: "f32 clamps out of range",
			clip: &Clip{
				SampleRate:     44100,
				NumChans:       1,
				BitDepth:       32,
				WavAudioFormat: wavFormatIEEEFloat,
				Data:           f32Bytes(2.0, -3.0, 0.25),
			},
			want: []float32{1, -1, 0.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := tt.clip.Float32Buffer()
			if err != nil {
				t.Fatalf("Float32Buffer failed: %v", err)
			}

			if buf.Format.SampleRate != int(tt.clip.SampleRate) {
				t.Fatalf("sample rate=%d, want %d", buf.Format.SampleRate, tt.clip.SampleRate)
			}

			if buf.SourceBitDepth != int(tt.clip.BitDepth) {
				t.Fatalf("source bit depth=%d, want %d", buf.SourceBitDepth, tt.clip.BitDepth)
			}

			if len(buf.Data) != len(tt.want) {
				t.Fatalf("len=%d, want %d", len(buf.Data), len(tt.want))
			}

			for i := range tt.want {
				diff := buf.Data[i] - tt.want[i]
				if diff < -1e-4 || diff > 1e-4 {
					t.Fatalf("sample %d=%f, want %f", i, buf.Data[i], tt.want[i])
				}
			}
		})
	}
}

func TestClipFloat32BufferUnsupported(t *testing.T) {
	clip := &Clip{WavAudioFormat: wavFormatPCM, BitDepth: 24, NumChans: 1}

	_, err := clip.Float32Buffer()
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Float32Buffer err=%v, want ErrUnsupportedFormat", err)
	}
}
