// Package playback plays RIFF/WAVE files on the local machine.
//
// It prefers direct device output through oto and falls back to common
// command line players when no device context can be created. Playback is
// best effort: callers treat a failure as a warning, never as a pipeline
// failure.
package playback

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"time"

	"github.com/cwbudde/wavelink"
	"github.com/ebitengine/oto/v3"
)

// ErrUnavailable is returned when neither device output nor an external
// player could play the file.
var ErrUnavailable = errors.New("no audio playback mechanism available")

// externalPlayers are tried in order when device output is unavailable.
var externalPlayers = []struct {
	name string
	args []string
}{
	{name: "ffplay", args: []string{"-nodisp", "-autoexit"}},
	{name: "aplay"},
	{name: "afplay"},
	{name: "paplay"},
}

// Play plays the WAV file at path and blocks until playback finishes.
func Play(path string) error {
	deviceErr := playDevice(path)
	if deviceErr == nil {
		return nil
	}

	if playExternal(path) == nil {
		return nil
	}

	return fmt.Errorf("%w: %v", ErrUnavailable, deviceErr)
}

func playDevice(path string) error {
	clip, err := wavelink.DecodeFile(path)
	if err != nil {
		return err
	}

	pcm, err := pcm16From(clip)
	if err != nil {
		return err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(clip.SampleRate),
		ChannelCount: int(clip.NumChans),
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}

	<-ready

	player := ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()

	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	if err := player.Close(); err != nil {
		return fmt.Errorf("failed to close player: %w", err)
	}

	return nil
}

func playExternal(path string) error {
	for _, player := range externalPlayers {
		if _, err := exec.LookPath(player.name); err != nil {
			continue
		}

		cmd := exec.Command(player.name, append(player.args, path)...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return ErrUnavailable
}

// pcm16From converts a clip's samples to the signed 16-bit little endian
// stream the output device consumes.
func pcm16From(clip *wavelink.Clip) ([]byte, error) {
	format, err := clip.SupportedFormat()
	if err != nil {
		return nil, err
	}

	switch format {
	case wavelink.FormatI16:
		return clip.Data, nil
	case wavelink.FormatU8:
		out := make([]byte, len(clip.Data)*2)
		for i, v := range clip.Data {
			s := int16(int(v)-128) << 8
			binary.LittleEndian.PutUint16(out[i*2:i*2+2], uint16(s))
		}

		return out, nil
	case wavelink.FormatF32:
		count := len(clip.Data) / 4
		out := make([]byte, count*2)

		for i := range count {
			v := math.Float32frombits(binary.LittleEndian.Uint32(clip.Data[4*i : 4*i+4]))
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}

			s := int16(v * math.MaxInt16)
			binary.LittleEndian.PutUint16(out[i*2:i*2+2], uint16(s))
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", wavelink.ErrUnsupportedFormat, format)
	}
}
