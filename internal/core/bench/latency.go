package bench

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// LatencySummary describes per-message decode latency.
type LatencySummary struct {
	Count int64
	Mean  time.Duration
	P50   time.Duration
	P95   time.Duration
	P99   time.Duration
	Max   time.Duration
}

// String returns "p50/p95/p99/max".
func (s LatencySummary) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", s.P50, s.P95, s.P99, s.Max)
}

// latencyRecorder wraps an HDR histogram tracking 1µs..10s.
type latencyRecorder struct {
	hist *hdrhistogram.Histogram
}

func newLatencyRecorder() *latencyRecorder {
	return &latencyRecorder{
		hist: hdrhistogram.New(1, int64((10 * time.Second).Microseconds()), 3),
	}
}

func (l *latencyRecorder) record(d time.Duration) {
	micros := d.Microseconds()
	if micros <= 0 {
		micros = 1
	}
	if err := l.hist.RecordValue(micros); err != nil {
		_ = l.hist.RecordValue(l.hist.HighestTrackableValue())
	}
}

// reset is a no-op on a nil recorder.
func (l *latencyRecorder) reset() {
	if l == nil {
		return
	}
	l.hist.Reset()
}

func (l *latencyRecorder) count() int64 {
	return l.hist.TotalCount()
}

func (l *latencyRecorder) summary() LatencySummary {
	return LatencySummary{
		Count: l.hist.TotalCount(),
		Mean:  microsToDuration(int64(l.hist.Mean())),
		P50:   microsToDuration(l.hist.ValueAtQuantile(50)),
		P95:   microsToDuration(l.hist.ValueAtQuantile(95)),
		P99:   microsToDuration(l.hist.ValueAtQuantile(99)),
		Max:   microsToDuration(l.hist.Max()),
	}
}

func microsToDuration(v int64) time.Duration {
	return time.Duration(v) * time.Microsecond
}
