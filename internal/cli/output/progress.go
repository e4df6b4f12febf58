package output

import (
	"fmt"
	"io"
	"time"
)

// Progress tracks and displays batch progress.
//
// Throughput and ETA are recomputed from total elapsed time after every
// row; there is no smoothing window.
type Progress struct {
	w     io.Writer
	total int
	start time.Time

	now func() time.Time
}

// NewProgress creates a progress tracker for total rows, started now.
func NewProgress(w io.Writer, total int) *Progress {
	p := &Progress{
		w:     w,
		total: total,
		now:   time.Now,
	}
	p.start = p.now()
	return p
}

// Row displays the progress line after row done (1-based) completes.
func (p *Progress) Row(done int) {
	elapsed := p.Elapsed()
	percent := float64(done) / float64(p.total) * 100

	ratePerMinute := 0.0
	eta := "calculating..."
	if elapsed > 0 {
		ratePerMinute = float64(done) / elapsed.Seconds() * 60
		if ratePerMinute > 0 {
			remaining := p.total - done
			etaSeconds := float64(remaining) / ratePerMinute * 60
			eta = formatETA(etaSeconds)
		}
	}

	fmt.Fprintf(p.w, "  Progress: %d/%d (%.1f%%) | Elapsed: %ds | Rate: %.1f/min | ETA: %s\n",
		done, p.total, percent, int(elapsed.Seconds()), ratePerMinute, eta)
}

// Elapsed returns the wall-clock time since the tracker was created.
func (p *Progress) Elapsed() time.Duration {
	return p.now().Sub(p.start)
}

// formatETA renders seconds as "XmYs", or "Ys" under one minute.
func formatETA(seconds float64) string {
	minutes := int(seconds) / 60
	secs := int(seconds) % 60
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, secs)
	}
	return fmt.Sprintf("%ds", secs)
}
