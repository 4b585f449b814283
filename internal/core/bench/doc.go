// Package bench implements the acp-bench benchmark runner.
//
// A Runner executes exactly one timed workload per call:
//
//   - ColdStart: decode initialize, encode its response
//   - Roundtrip: decode session/new, encode its response
//   - Throughput: decode the sample table round-robin
//   - Codec: decode a sample and encode a response per iteration
//   - Tokens: decode one large session/update repeatedly
//
// All workloads are single-threaded and synchronous. Time is read
// through the clock set by WithClock.
package bench
