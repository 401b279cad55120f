package wavelink

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
)

var (
	// ErrNotRiff is returned when the input does not start with a
	// RIFF/WAVE header.
	ErrNotRiff = errors.New("not a RIFF/WAVE file")
	// ErrMalformedFmt is returned when a fmt chunk is too short to carry
	// the base format fields.
	ErrMalformedFmt = errors.New("malformed fmt chunk")
	// ErrMissingChunk is returned when the stream ends before both a fmt
	// and a data chunk were seen.
	ErrMissingChunk = errors.New("missing fmt or data chunk")
)

// Decode parses a RIFF/WAVE byte stream into a Clip.
//
// Chunks are scanned sequentially; unknown chunks are drained and
// discarded, and odd-length chunks are followed by one pad byte per the
// RIFF alignment rule. Scanning stops as soon as both the fmt and data
// chunks have been seen, so trailing chunks are never read.
func Decode(r io.Reader) (*Clip, error) {
	parser := riff.New(r)

	id, size, err := parser.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotRiff, err)
	}

	parser.ID = id
	if parser.ID != riff.RiffID {
		return nil, fmt.Errorf("%w: container ID %q", ErrNotRiff, id)
	}

	parser.Size = size

	err = binary.Read(r, binary.BigEndian, &parser.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotRiff, err)
	}

	if parser.Format != riff.WavFormatID {
		return nil, fmt.Errorf("%w: format %q", ErrNotRiff, parser.Format)
	}

	var (
		clip     Clip
		seenFmt  bool
		seenData bool
	)

	for !seenFmt || !seenData {
		id, size, err := parser.IDnSize()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}

			return nil, fmt.Errorf("failed to read chunk header: %w", err)
		}

		chunk := &riff.Chunk{
			ID:   id,
			Size: int(size),
			R:    io.LimitReader(r, int64(size)),
		}

		switch chunk.ID {
		case riff.FmtID:
			err = decodeFmtChunk(chunk, &clip)
			if err != nil {
				return nil, err
			}

			seenFmt = true
		case riff.DataFormatID:
			clip.Data, err = io.ReadAll(chunk.R)
			if err != nil {
				return nil, fmt.Errorf("failed to read data chunk: %w", err)
			}

			if len(clip.Data) < int(size) {
				return nil, fmt.Errorf("truncated data chunk: %w", io.ErrUnexpectedEOF)
			}

			seenData = true
		default:
			chunk.Drain()
		}

		// RIFF chunks are word aligned; an odd-sized chunk is followed
		// by one pad byte that is not part of the declared size.
		if size%2 == 1 {
			io.CopyN(io.Discard, r, 1)
		}
	}

	if !seenFmt || !seenData {
		return nil, ErrMissingChunk
	}

	return &clip, nil
}

// DecodeFile reads the RIFF/WAVE file at path into a Clip.
func DecodeFile(path string) (*Clip, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return Decode(bufio.NewReader(file))
}

func decodeFmtChunk(chunk *riff.Chunk, clip *Clip) error {
	if chunk.Size < 16 {
		return fmt.Errorf("%w: %d bytes, need at least 16", ErrMalformedFmt, chunk.Size)
	}

	var (
		avgBytesPerSec uint32
		blockAlign     uint16
	)

	fields := []any{
		&clip.WavAudioFormat,
		&clip.NumChans,
		&clip.SampleRate,
		&avgBytesPerSec,
		&blockAlign,
		&clip.BitDepth,
	}

	for _, field := range fields {
		err := chunk.ReadLE(field)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedFmt, err)
		}
	}

	// extension fields carry nothing this decoder needs
	chunk.Drain()

	return nil
}
