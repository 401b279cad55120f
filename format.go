package wavelink

import "fmt"

const (
	wavFormatPCM       = 1
	wavFormatIEEEFloat = 3
)

// SampleFormat identifies the numeric encoding of a sample stream. The
// values match the modem engine's sample format identifiers so a format can
// be handed across the adapter boundary unchanged.
type SampleFormat int32

const (
	FormatUndefined SampleFormat = iota
	FormatU8
	FormatI8
	FormatU16
	FormatI16
	FormatF32
)

// BitDepth returns the storage size of one sample in bits. An unrecognized
// format defaults to 16, which is the engine's transmit format.
func (f SampleFormat) BitDepth() uint16 {
	switch f {
	case FormatU8, FormatI8:
		return 8
	case FormatU16, FormatI16:
		return 16
	case FormatF32:
		return 32
	default:
		return 16
	}
}

// String implements the Stringer interface.
func (f SampleFormat) String() string {
	switch f {
	case FormatUndefined:
		return "undefined"
	case FormatU8:
		return "u8"
	case FormatI8:
		return "i8"
	case FormatU16:
		return "u16"
	case FormatI16:
		return "i16"
	case FormatF32:
		return "f32"
	default:
		return fmt.Sprintf("format(%d)", int32(f))
	}
}
