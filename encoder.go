package wavelink

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const headerSize = 44

// Encode writes data as a canonical single-channel RIFF/WAVE stream: one
// fmt chunk, one data chunk, no extension fields. The PCM format code is
// always written, matching the modem engine's transmit output. The bit
// depth is derived from format (an unrecognized format defaults to 16).
func Encode(w io.Writer, sampleRate uint32, format SampleFormat, data []byte) error {
	const numChans = 1

	bitsPerSample := format.BitDepth()
	byteRate := sampleRate * numChans * uint32(bitsPerSample/8)
	blockAlign := numChans * (bitsPerSample / 8)
	dataLen := uint32(len(data))

	header := make([]byte, headerSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataLen)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], wavFormatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChans)
	binary.LittleEndian.PutUint32(header[24:28], sampleRate)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataLen)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write wav header: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write wav data: %w", err)
	}

	return nil
}

// EncodeFile creates or truncates the file at path and writes data as a
// mono RIFF/WAVE file. The destination's contents are unspecified if the
// write fails partway.
func EncodeFile(path string, sampleRate uint32, format SampleFormat, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	writer := bufio.NewWriter(file)

	err = Encode(writer, sampleRate, format, data)
	if err != nil {
		file.Close()
		return err
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
