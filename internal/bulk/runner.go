package bulk

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/neatops/pulsectl/internal/cli/output"
	"github.com/neatops/pulsectl/internal/pulse"
)

// Record is one row of the import file, as the runner sees it.
type Record struct {
	LocationID string
	Name       string
	DEC        string // pre-existing result code; non-empty means skip
}

// Status classifies a per-row outcome.
type Status int

const (
	// StatusFailed covers validation failures and any API failure.
	StatusFailed Status = iota

	// StatusSucceeded means the room was created by this run.
	StatusSucceeded

	// StatusSkipped means the row already carried a DEC.
	StatusSkipped
)

// Outcome is the per-row result. Outcomes are produced in row order and
// stay index-aligned with the input records.
type Outcome struct {
	Status Status
	DEC    string
}

// Result aggregates a batch run.
//
// Succeeded includes skipped rows; the room exists either way. The
// summary derives newly-created as Succeeded - Skipped.
type Result struct {
	Outcomes  []Outcome
	Succeeded int
	Skipped   int
	Failed    int
	Elapsed   time.Duration
}

// NewlyCreated returns the count of rooms created by this run.
func (r Result) NewlyCreated() int {
	return r.Succeeded - r.Skipped
}

// Total returns the number of processed rows.
func (r Result) Total() int {
	return len(r.Outcomes)
}

// RoomCreator creates a single room, retrying as it sees fit.
type RoomCreator interface {
	Create(ctx context.Context, locationID, name string) (pulse.RoomCreated, error)
}

// Runner processes import records sequentially.
type Runner struct {
	creator RoomCreator
	w       io.Writer
	logger  hclog.Logger
}

// NewRunner creates a Runner writing progress to w.
func NewRunner(creator RoomCreator, w io.Writer, logger hclog.Logger) *Runner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{
		creator: creator,
		w:       w,
		logger:  logger.Named("runner"),
	}
}

// Run processes every record in order and returns one outcome per
// record. A row failure never aborts the batch.
func (r *Runner) Run(ctx context.Context, records []Record) Result {
	total := len(records)
	progress := output.NewProgress(r.w, total)

	result := Result{Outcomes: make([]Outcome, 0, total)}

	for i, rec := range records {
		idx := i + 1
		locationID := strings.TrimSpace(rec.LocationID)
		name := strings.TrimSpace(rec.Name)
		existing := strings.TrimSpace(rec.DEC)

		switch {
		case locationID == "" || name == "":
			fmt.Fprintf(r.w, "[%d/%d] Skipping row with missing data\n", idx, total)
			result.Outcomes = append(result.Outcomes, Outcome{Status: StatusFailed})
			result.Failed++

		case existing != "":
			fmt.Fprintf(r.w, "[%d/%d] Skipping room: %s (already exists with DEC: %s)\n",
				idx, total, name, existing)
			result.Outcomes = append(result.Outcomes, Outcome{Status: StatusSkipped, DEC: existing})
			result.Skipped++
			// The room exists, so the row counts toward the success total.
			result.Succeeded++

		default:
			fmt.Fprintf(r.w, "[%d/%d] Creating room: %s (Location: %s)\n", idx, total, name, locationID)
			room, err := r.creator.Create(ctx, locationID, name)
			if err != nil {
				fmt.Fprintf(r.w, "  Failed: %v\n", err)
				r.logger.Debug("row failed", "row", idx, "error", err)
				result.Outcomes = append(result.Outcomes, Outcome{Status: StatusFailed})
				result.Failed++
			} else {
				if room.DEC == "" {
					fmt.Fprintf(r.w, "  ✓ Success (no DEC in response)\n")
				} else {
					fmt.Fprintf(r.w, "  ✓ Success (DEC: %s)\n", room.DEC)
				}
				result.Outcomes = append(result.Outcomes, Outcome{Status: StatusSucceeded, DEC: room.DEC})
				result.Succeeded++
			}
		}

		progress.Row(idx)
	}

	result.Elapsed = progress.Elapsed()
	return result
}
