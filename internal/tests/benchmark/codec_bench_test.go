package benchmark

import (
	"fmt"
	"testing"

	"github.com/yndnr/acp-bench/internal/core/codec"
	"github.com/yndnr/acp-bench/internal/core/domain"
)

// BenchmarkDecode benchmarks decoding each sample into a generic value.
func BenchmarkDecode(b *testing.B) {
	runWithCodecs(b, func(b *testing.B, c codec.Codec) {
		for _, s := range samples() {
			b.Run(s.name, func(b *testing.B) {
				b.SetBytes(int64(len(s.data)))
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					var v any
					if err := c.Unmarshal(s.data, &v); err != nil {
						b.Fatalf("Unmarshal failed: %v", err)
					}
				}
			})
		}
	})
}

// BenchmarkEncodeResponse benchmarks encoding the session/new response.
func BenchmarkEncodeResponse(b *testing.B) {
	runWithCodecs(b, func(b *testing.B, c codec.Codec) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			resp := domain.NewResponse(i, domain.SessionResult{SessionID: domain.CodecSessionID})
			if _, err := c.Marshal(resp); err != nil {
				b.Fatalf("Marshal failed: %v", err)
			}
		}
	})
}

// BenchmarkTokenUpdate benchmarks decoding session/update notifications
// of growing size.
func BenchmarkTokenUpdate(b *testing.B) {
	runWithCodecs(b, func(b *testing.B, c codec.Codec) {
		for _, n := range TokenCounts {
			b.Run(fmt.Sprintf("tokens_%d", n), func(b *testing.B) {
				data, err := c.Marshal(domain.TokenUpdate(n))
				if err != nil {
					b.Fatalf("Marshal failed: %v", err)
				}

				b.SetBytes(int64(len(data)))
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					var v any
					if err := c.Unmarshal(data, &v); err != nil {
						b.Fatalf("Unmarshal failed: %v", err)
					}
				}

				b.StopTimer()
				b.ReportMetric(float64(n)*float64(b.N)/b.Elapsed().Seconds(), "tokens/s")
			})
		}
	})
}
