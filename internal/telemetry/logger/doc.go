// Package logger provides structured logging for acp-bench.
//
// Diagnostics always go to stderr so that stdout carries nothing but
// the benchmark result line:
//
//   - logger.go: Logger interface over log/slog (json, text)
//   - zap.go: zap backend selected with Config.Backend = "zap"
//   - context.go: context-carried logger and run ID
package logger
