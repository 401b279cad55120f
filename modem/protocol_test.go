package modem

import "testing"

func TestParseProtocol(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Protocol
	}{
		{name: "audible normal", in: "audible:normal", want: ProtocolAudibleNormal},
		{name: "audible fast", in: "audible:fast", want: ProtocolAudibleFast},
		{name: "audible fastest", in: "audible:fastest", want: ProtocolAudibleFastest},
		{name: "ultrasound normal", in: "ultrasound:normal", want: ProtocolUltrasoundNormal},
		{name: "ultrasound fast", in: "ultrasound:fast", want: ProtocolUltrasoundFast},
		{name: "ultrasound fastest", in: "ultrasound:fastest", want: ProtocolUltrasoundFastest},
		{name: "dt normal", in: "dt:normal", want: ProtocolDTNormal},
		{name: "dt fast", in: "dt:fast", want: ProtocolDTFast},
		{name: "dt fastest", in: "dt:fastest", want: ProtocolDTFastest},
		{name: "mt normal", in: "mt:normal", want: ProtocolMTNormal},
		{name: "mt fast", in: "mt:fast", want: ProtocolMTFast},
		{name: "mt fastest", in: "mt:fastest", want: ProtocolMTFastest},
		{name: "bare family implies normal", in: "ultrasound", want: ProtocolUltrasoundNormal},
		{name: "case insensitive", in: "DT:Fastest", want: ProtocolDTFastest},
		{name: "unknown family falls back", in: "telepathy:fast", want: ProtocolAudibleFast},
		{name: "unknown speed falls back", in: "audible:warp", want: ProtocolAudibleFast},
		{name: "empty falls back", in: "", want: ProtocolAudibleFast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseProtocol(tt.in)
			if got != tt.want {
				t.Fatalf("ParseProtocol(%q)=%v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestProtocolString(t *testing.T) {
	tests := []struct {
		p    Protocol
		want string
	}{
		{p: ProtocolAudibleNormal, want: "audible:normal"},
		{p: ProtocolUltrasoundFast, want: "ultrasound:fast"},
		{p: ProtocolMTFastest, want: "mt:fastest"},
		{p: Protocol(99), want: "unknown"},
	}

	for _, tt := range tests {
		got := tt.p.String()
		if got != tt.want {
			t.Fatalf("Protocol(%d).String()=%q, want %q", tt.p, got, tt.want)
		}
	}
}
