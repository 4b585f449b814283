package domain

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"cold-start", ModeColdStart, false},
		{"roundtrip", ModeRoundtrip, false},
		{"throughput", ModeThroughput, false},
		{"codec", ModeCodec, false},
		{"tokens", ModeTokens, false},
		{"", "", true},
		{"cold_start", "", true},
		{"Roundtrip", "", true},
		{"latency", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMode) {
					t.Errorf("ParseMode(%q) error = %v, want ErrInvalidMode", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestModes(t *testing.T) {
	got := Modes()
	want := []Mode{ModeColdStart, ModeRoundtrip, ModeThroughput, ModeCodec, ModeTokens}

	if len(got) != len(want) {
		t.Fatalf("len(Modes()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Modes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Callers must not be able to change the table.
	got[0] = "mutated"
	if Modes()[0] != ModeColdStart {
		t.Error("Modes() should return a copy")
	}
}

func TestMode_IsValid(t *testing.T) {
	if !DefaultMode.IsValid() {
		t.Errorf("DefaultMode %q should be valid", DefaultMode)
	}
	if Mode("bogus").IsValid() {
		t.Error("bogus mode should be invalid")
	}
}

func TestModeNames(t *testing.T) {
	want := "cold-start|roundtrip|throughput|codec|tokens"
	if got := ModeNames(); got != want {
		t.Errorf("ModeNames() = %q, want %q", got, want)
	}
}
