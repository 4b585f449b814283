// Package config defines the acp-bench configuration structure.
//
// A BenchConfig starts from Default, is layered with an optional YAML
// file, ACPBENCH_* environment variables and explicitly set flags, and
// is checked by Verify before a run.
package config
