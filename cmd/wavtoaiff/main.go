// This tool converts a wav file (such as one produced by the wavelink
// command) into an identical aiff file stored in the same folder as the
// source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wavelink"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

func main() {
	log.SetFlags(0)

	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)

	path := flagSet.String("path", "", "the wav file to convert to aiff")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *path == "" {
		return errors.New("you must set the -path flag")
	}

	sourcePath := *path
	if strings.HasPrefix(sourcePath, "~/") {
		usr, err := user.Current()
		if err != nil {
			return fmt.Errorf("failed to get the user home directory: %w", err)
		}

		sourcePath = filepath.Join(usr.HomeDir, sourcePath[2:])
	}

	clip, err := wavelink.DecodeFile(sourcePath)
	if err != nil {
		return err
	}

	buf, err := clip.Float32Buffer()
	if err != nil {
		return err
	}

	outPath := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	encoder := aiff.NewEncoder(outFile, int(clip.SampleRate), int(clip.BitDepth), int(clip.NumChans))

	err = encoder.Write(float32ToIntBuffer(buf.Data, buf.Format, int(clip.BitDepth)))
	if err != nil {
		outFile.Close()
		return fmt.Errorf("failed to write aiff data: %w", err)
	}

	if err := encoder.Close(); err != nil {
		outFile.Close()
		return fmt.Errorf("failed to finalize %s: %w", outPath, err)
	}

	if err := outFile.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", outPath, err)
	}

	log.Printf("converted %s to %s", sourcePath, outPath)

	return nil
}

func float32ToIntBuffer(data []float32, format *audio.Format, bitDepth int) *audio.IntBuffer {
	intBuf := &audio.IntBuffer{
		Format:         format,
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(data)),
	}
	for i, v := range data {
		intBuf.Data[i] = float32ToPCMInt(v, bitDepth)
	}

	return intBuf
}

func float32ToPCMInt(value float32, bitDepth int) int {
	value = clampFloat32(value, -1, 1)

	switch bitDepth {
	case 8:
		scaled := int(math.Round(float64((value + 1.0) * 127.5)))
		if scaled < 0 {
			return 0
		}

		if scaled > 255 {
			return 255
		}

		return scaled
	case 16:
		return clampScaledPCM(value, 32768.0, 32767)
	case 32:
		return clampScaledPCM(value, 2147483648.0, 2147483647)
	default:
		return 0
	}
}

func clampScaledPCM(value float32, scale float64, max int) int {
	scaled := int(math.Round(float64(value) * scale))
	if scaled > max {
		return max
	}

	if float64(scaled) < -scale {
		return int(-scale)
	}

	return scaled
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
