// Package buildinfo identifies the pulsectl binary.
//
// Release builds stamp version, commit and date through ldflags; a
// plain `go build` reports "dev (none)". The version command prints
// the full Info record, and the root command surfaces String() behind
// --version.
package buildinfo
