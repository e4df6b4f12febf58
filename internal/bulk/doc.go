// Package bulk implements the rate-limited room creation pipeline.
//
// The pipeline is strictly sequential:
//
//   - pacer.go: minimum-interval spacing between API calls
//   - creator.go: one room creation with 429 backoff retry
//   - runner.go: per-row dispatch, counters and progress output
//
// Clock and sleep functions are injected so the backoff schedule and
// the pacing contract are testable without real waits.
package bulk
