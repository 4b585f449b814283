// Package command provides the acp-bench command line.
//
// It uses urfave/cli/v2 for flag parsing:
//
//   - root.go: App, global flags and the flag-to-config mapping
//   - run.go: the benchmark action (config merge, run, print, export)
//
// The app has a single action. Results go to App.Writer, everything
// else to App.ErrWriter.
package command
