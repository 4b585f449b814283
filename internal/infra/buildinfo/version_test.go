package buildinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	tests := []struct {
		name  string
		value string
	}{
		{"Version", info.Version},
		{"Commit", info.Commit},
		{"BuildTime", info.BuildTime},
		{"GoVersion", info.GoVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value == "" {
				t.Errorf("%s field should not be empty", tt.name)
			}
		})
	}
}

func TestGoVersionDefault(t *testing.T) {
	if GoVersion != runtime.Version() {
		t.Logf("GoVersion is customized: %s", GoVersion)
	}
	if !strings.HasPrefix(GoVersion, "go") && GoVersion != "unknown" {
		t.Logf("GoVersion has unexpected format: %s", GoVersion)
	}
}

func TestString(t *testing.T) {
	want := Version + " (commit: " + Commit + ", built: " + BuildTime + ", " + GoVersion + ")"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
