package domain

import "strings"

// Mode selects the benchmark workload.
type Mode string

const (
	// ModeColdStart times the first initialize decode/encode pair.
	ModeColdStart Mode = "cold-start"
	// ModeRoundtrip times one session/new decode and its response encode.
	ModeRoundtrip Mode = "roundtrip"
	// ModeThroughput decodes the sample table round-robin.
	ModeThroughput Mode = "throughput"
	// ModeCodec pairs every decode with a response encode.
	ModeCodec Mode = "codec"
	// ModeTokens decodes one large session/update repeatedly.
	ModeTokens Mode = "tokens"
)

// DefaultMode is used when no mode is requested.
const DefaultMode = ModeRoundtrip

var modes = []Mode{ModeColdStart, ModeRoundtrip, ModeThroughput, ModeCodec, ModeTokens}

// Modes returns all supported modes in declaration order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", ErrInvalidMode.WithDetails("want one of " + ModeNames() + ", got " + quote(s))
}

// ModeNames returns the supported mode names joined by "|".
func ModeNames() string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, "|")
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}

// IsValid reports whether m is a supported mode.
func (m Mode) IsValid() bool {
	_, err := ParseMode(string(m))
	return err == nil
}

func quote(s string) string {
	return `"` + s + `"`
}
