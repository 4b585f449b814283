package benchmark

import (
	"runtime"
	"testing"

	"github.com/yndnr/acp-bench/internal/core/codec"
	"github.com/yndnr/acp-bench/internal/core/domain"
)

// TokenCounts defines the payload sizes for token benchmarks.
var TokenCounts = []int{10, 100, 1000, 10000}

// sampleNames labels domain.Samples() in order.
var sampleNames = []string{"initialize", "session_new", "session_update", "prompt"}

// sample is one named request literal.
type sample struct {
	name string
	data []byte
}

// samples returns the sample table with names attached.
func samples() []sample {
	raw := domain.Samples()
	out := make([]sample, len(raw))
	for i, data := range raw {
		out[i] = sample{name: sampleNames[i], data: data}
	}
	return out
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithCodecs runs a benchmark function once per registered codec.
func runWithCodecs(b *testing.B, benchFn func(b *testing.B, c codec.Codec)) {
	for _, name := range codec.Names() {
		c, err := codec.Lookup(name)
		if err != nil {
			b.Fatalf("Lookup(%q) failed: %v", name, err)
		}
		b.Run(name, func(b *testing.B) {
			benchFn(b, c)
		})
	}
}
