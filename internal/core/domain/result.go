package domain

import "time"

// StatusOK is the status of every completed run.
const StatusOK = "ok"

// ZeroDurationScale multiplies the unit count when the measured elapsed
// time is exactly zero. The resulting rate is a placeholder, not a
// measurement.
const ZeroDurationScale = 1000

// Result is the record printed for one benchmark run.
type Result interface {
	// RunMode returns the mode that produced the result.
	RunMode() Mode
	// Elapsed returns the measured wall-clock milliseconds.
	Elapsed() int64
}

// LatencyResult is reported by cold-start and roundtrip.
type LatencyResult struct {
	Status    string `json:"status" yaml:"status"`
	Mode      Mode   `json:"mode" yaml:"mode"`
	ElapsedMS int64  `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// ThroughputResult is reported by throughput.
type ThroughputResult struct {
	Status     string `json:"status" yaml:"status"`
	Mode       Mode   `json:"mode" yaml:"mode"`
	Count      uint64 `json:"count" yaml:"count"`
	ElapsedMS  int64  `json:"elapsed_ms" yaml:"elapsed_ms"`
	MsgsPerSec uint64 `json:"msgs_per_sec" yaml:"msgs_per_sec"`
}

// CodecResult is reported by codec.
type CodecResult struct {
	Status    string `json:"status" yaml:"status"`
	Mode      Mode   `json:"mode" yaml:"mode"`
	Ops       uint64 `json:"ops" yaml:"ops"`
	ElapsedMS int64  `json:"elapsed_ms" yaml:"elapsed_ms"`
	OpsPerSec uint64 `json:"ops_per_sec" yaml:"ops_per_sec"`
}

// TokensResult is reported by tokens.
type TokensResult struct {
	Status       string `json:"status" yaml:"status"`
	Mode         Mode   `json:"mode" yaml:"mode"`
	Messages     uint64 `json:"messages" yaml:"messages"`
	TokensPerMsg uint64 `json:"tokens_per_msg" yaml:"tokens_per_msg"`
	TotalTokens  uint64 `json:"total_tokens" yaml:"total_tokens"`
	ElapsedMS    int64  `json:"elapsed_ms" yaml:"elapsed_ms"`
	TokensPerSec uint64 `json:"tokens_per_sec" yaml:"tokens_per_sec"`
	MsgsPerSec   uint64 `json:"msgs_per_sec" yaml:"msgs_per_sec"`
}

// RunMode implements Result.
func (r *LatencyResult) RunMode() Mode {
	return r.Mode
}

// Elapsed implements Result.
func (r *LatencyResult) Elapsed() int64 {
	return r.ElapsedMS
}

// RunMode implements Result.
func (r *ThroughputResult) RunMode() Mode {
	return r.Mode
}

// Elapsed implements Result.
func (r *ThroughputResult) Elapsed() int64 {
	return r.ElapsedMS
}

// RunMode implements Result.
func (r *CodecResult) RunMode() Mode {
	return r.Mode
}

// Elapsed implements Result.
func (r *CodecResult) Elapsed() int64 {
	return r.ElapsedMS
}

// RunMode implements Result.
func (r *TokensResult) RunMode() Mode {
	return r.Mode
}

// Elapsed implements Result.
func (r *TokensResult) Elapsed() int64 {
	return r.ElapsedMS
}

// Rate returns units per second over elapsed, truncated to an integer.
// A zero elapsed time yields units * ZeroDurationScale.
func Rate(units uint64, elapsed time.Duration) uint64 {
	sec := elapsed.Seconds()
	if sec > 0 {
		return uint64(float64(units) / sec)
	}
	return units * ZeroDurationScale
}

// ElapsedMillis truncates elapsed to whole milliseconds.
func ElapsedMillis(elapsed time.Duration) int64 {
	return elapsed.Milliseconds()
}
