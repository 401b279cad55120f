package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/wavelink"
)

func TestRunConvertsWavToAiff(t *testing.T) {
	dir := t.TempDir()
	wavPath := filepath.Join(dir, "tone.wav")

	data := []byte{0x00, 0x00, 0xff, 0x3f, 0x00, 0xc0, 0x01, 0x80}

	err := wavelink.EncodeFile(wavPath, 22050, wavelink.FormatI16, data)
	if err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}

	err = run([]string{"-path", wavPath})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	aifPath := filepath.Join(dir, "tone.aif")

	out, err := os.ReadFile(aifPath)
	if err != nil {
		t.Fatalf("aiff output missing: %v", err)
	}

	if len(out) < 12 || string(out[0:4]) != "FORM" || string(out[8:12]) != "AIFF" {
		t.Fatalf("output does not look like an aiff file: % x", out[:min(len(out), 12)])
	}
}

func TestRunMissingPathFlag(t *testing.T) {
	err := run(nil)
	if err == nil {
		t.Fatal("expected failure without -path")
	}
}

func TestRunMissingSourceFile(t *testing.T) {
	err := run([]string{"-path", filepath.Join(t.TempDir(), "missing.wav")})
	if err == nil {
		t.Fatal("expected failure for a missing source file")
	}
}

func TestFloat32ToPCMInt(t *testing.T) {
	tests := []struct {
		name     string
		value    float32
		bitDepth int
		want     int
	}{
		{name: "8bit min", value: -1, bitDepth: 8, want: 0},
		{name: "8bit max", value: 1, bitDepth: 8, want: 255},
		{name: "16bit half", value: 0.5, bitDepth: 16, want: 16384},
		{name: "16bit clamps", value: 2, bitDepth: 16, want: 32767},
		{name: "32bit quarter", value: 0.25, bitDepth: 32, want: 536870912},
		{name: "unsupported depth", value: 0.5, bitDepth: 12, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := float32ToPCMInt(tt.value, tt.bitDepth)
			if got != tt.want {
				t.Fatalf("float32ToPCMInt(%f, %d)=%d, want %d", tt.value, tt.bitDepth, got, tt.want)
			}
		})
	}
}
