// Package output renders benchmark results.
//
//   - formatter.go: Formatter interface, format parsing and factory
//   - json.go: single-line JSON, the machine-readable default
//   - yaml.go: YAML for humans
//   - table.go: aligned FIELD/VALUE table for terminals
//
// Only the JSON formatter makes a byte-level promise: one line per
// result with keys in struct field order.
package output
