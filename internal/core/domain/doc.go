// Package domain defines the core domain models for acp-bench.
//
// Domain models are pure values without any IO dependencies or
// framework coupling. This package contains:
//
//   - Mode: the closed set of benchmark workloads
//   - Samples: the fixed ACP JSON-RPC messages that are measured
//   - Results: one record type per mode, in wire field order
//   - Errors: structured error codes shared by every layer
package domain
