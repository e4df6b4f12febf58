// Package command provides CLI command definitions for pulsectl.
//
// This package defines all commands using urfave/cli/v2:
//
//   - root.go: root command, global flags, client construction
//   - regions.go: region subcommand group
//   - locations.go: location subcommand group
//   - rooms.go: bulk room import from CSV/XLSX files
//   - menu.go: interactive numbered menu mode
//   - version.go: build information
//
// Commands follow a consistent pattern of parsing flags, calling the
// API client, and formatting output. The interactive menu reuses the
// same operations with prompted input.
package command
