package modem

import "strings"

// Protocol selects the engine's transmission protocol. The values match
// the engine's protocol identifiers.
type Protocol int32

const (
	ProtocolAudibleNormal Protocol = iota
	ProtocolAudibleFast
	ProtocolAudibleFastest
	ProtocolUltrasoundNormal
	ProtocolUltrasoundFast
	ProtocolUltrasoundFastest
	ProtocolDTNormal
	ProtocolDTFast
	ProtocolDTFastest
	ProtocolMTNormal
	ProtocolMTFast
	ProtocolMTFastest
)

// ParseProtocol maps a "family:speed" selector onto a Protocol. The
// family is one of audible, ultrasound, dt, or mt; the speed one of
// normal, fast, or fastest. A bare family implies normal speed. Matching
// is case-insensitive and unrecognized selectors fall back to
// ProtocolAudibleFast.
func ParseProtocol(s string) Protocol {
	family, speed, found := strings.Cut(s, ":")
	if !found {
		speed = "normal"
	}

	family = strings.ToLower(family)
	speed = strings.ToLower(speed)

	var base Protocol

	switch family {
	case "audible":
		base = ProtocolAudibleNormal
	case "ultrasound":
		base = ProtocolUltrasoundNormal
	case "dt":
		base = ProtocolDTNormal
	case "mt":
		base = ProtocolMTNormal
	default:
		return ProtocolAudibleFast
	}

	switch speed {
	case "normal":
		return base
	case "fast":
		return base + 1
	case "fastest":
		return base + 2
	default:
		return ProtocolAudibleFast
	}
}

// String implements the Stringer interface.
func (p Protocol) String() string {
	families := []string{"audible", "ultrasound", "dt", "mt"}
	speeds := []string{"normal", "fast", "fastest"}

	if p < ProtocolAudibleNormal || p > ProtocolMTFastest {
		return "unknown"
	}

	return families[p/3] + ":" + speeds[p%3]
}
