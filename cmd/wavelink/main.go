// Command wavelink encodes text into an FSK audio waveform stored as a WAV
// file, and decodes such files back into text.
//
// Each failure class maps to its own exit status so scripted callers can
// tell failure causes apart without parsing messages.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cwbudde/wavelink"
	"github.com/cwbudde/wavelink/modem"
	"github.com/cwbudde/wavelink/playback"
)

const defaultOut = "wavelink.wav"

var (
	errEmptyInput = errors.New("no input text provided")
	errBadUsage   = errors.New("invalid arguments")
)

func main() {
	log.SetFlags(0)

	err := run(os.Args[1:], os.Stdin, os.Stdout, modem.NewGGWave)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, newEngine func() (modem.Engine, error)) error {
	flagSet := flag.NewFlagSet("wavelink", flag.ContinueOnError)

	text := flagSet.String("text", "", "text to encode; stdin is read when empty")
	out := flagSet.String("out", defaultOut, "output WAV file path")
	protocol := flagSet.String("protocol", "audible:fast", "protocol as family:speed (audible|ultrasound|dt|mt, normal|fast|fastest)")
	volume := flagSet.Int("volume", 25, "volume in [0, 100]")
	sampleRate := flagSet.Uint("sample-rate", 0, "output sample rate; 0 keeps the engine default")
	play := flagSet.Bool("play", false, "play the generated file after writing")
	decodePath := flagSet.String("decode", "", "decode the payload from this WAV file instead of transmitting")

	err := flagSet.Parse(args)
	if err != nil {
		return fmt.Errorf("%w: %v", errBadUsage, err)
	}

	if *decodePath != "" {
		return receive(*decodePath, stdout, newEngine)
	}

	return transmit(*text, *out, *protocol, *volume, uint32(*sampleRate), *play, stdin, newEngine)
}

func transmit(text, out, protocol string, volume int, sampleRate uint32, play bool,
	stdin io.Reader, newEngine func() (modem.Engine, error),
) error {
	if text == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}

		text = strings.TrimRight(string(data), "\r\n")
	}

	if text == "" {
		return errEmptyInput
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	waveform, rate, err := modem.New(eng).Encode([]byte(text), modem.ParseProtocol(protocol), volume, sampleRate)
	if err != nil {
		return err
	}

	err = wavelink.EncodeFile(out, rate, wavelink.FormatI16, waveform)
	if err != nil {
		return err
	}

	log.Printf("wrote %d bytes to %s", len(waveform), out)

	if play {
		if err := playback.Play(out); err != nil {
			log.Printf("warning: playback failed: %v", err)
		}
	}

	return nil
}

func receive(path string, stdout io.Writer, newEngine func() (modem.Engine, error)) error {
	clip, err := wavelink.DecodeFile(path)
	if err != nil {
		return err
	}

	mono, err := wavelink.Downmix(clip)
	if err != nil {
		return err
	}

	format, err := mono.SupportedFormat()
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	payload, err := modem.New(eng).Decode(mono.Data, format, mono.SampleRate)
	if err != nil {
		return err
	}

	if utf8.Valid(payload) {
		fmt.Fprintln(stdout, string(payload))
	} else {
		fmt.Fprintf(stdout, "0x%s\n", hex.EncodeToString(payload))
	}

	return nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errEmptyInput), errors.Is(err, errBadUsage):
		return 1
	case errors.Is(err, modem.ErrInitFailed), errors.Is(err, modem.ErrEngineUnavailable):
		return 2
	case errors.Is(err, modem.ErrEncodeQuery):
		return 3
	case errors.Is(err, modem.ErrEncodeSize):
		return 4
	case errors.Is(err, modem.ErrNoPayload):
		return 6
	case errors.Is(err, modem.ErrPayloadTooLarge):
		return 7
	case errors.Is(err, wavelink.ErrNotRiff):
		return 8
	case errors.Is(err, wavelink.ErrMalformedFmt), errors.Is(err, wavelink.ErrMissingChunk):
		return 9
	case errors.Is(err, wavelink.ErrUnsupportedFormat):
		return 10
	default:
		// read or write failures
		return 5
	}
}
