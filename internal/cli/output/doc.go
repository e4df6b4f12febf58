// Package output provides output formatting for pulsectl.
//
//   - table.go: tabwriter-based table rendering for list commands
//   - json.go: JSON output for scripting
//   - progress.go: per-row batch progress with throughput and ETA
package output
