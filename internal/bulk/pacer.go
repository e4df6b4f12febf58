package bulk

import "time"

// Pacer enforces a minimum interval between API calls.
//
// Wait and Record are separate on purpose: the caller waits, performs
// the call, and records the timestamp only after the call completes, so
// failed attempts still consume rate budget. Not safe for concurrent
// use; the pipeline has a single caller.
type Pacer struct {
	minInterval time.Duration
	last        time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer creates a pacer allowing at most requestsPerSecond calls.
func NewPacer(requestsPerSecond float64) *Pacer {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 10
	}
	return &Pacer{
		minInterval: time.Duration(float64(time.Second) / requestsPerSecond),
		now:         time.Now,
		sleep:       time.Sleep,
	}
}

// Wait blocks until at least the minimum interval has elapsed since the
// last Record. It never blocks before the first Record.
func (p *Pacer) Wait() {
	if p.last.IsZero() {
		return
	}
	elapsed := p.now().Sub(p.last)
	if elapsed < p.minInterval {
		p.sleep(p.minInterval - elapsed)
	}
}

// Record stamps now as the time of the last call.
func (p *Pacer) Record() {
	p.last = p.now()
}

// Interval returns the enforced minimum spacing.
func (p *Pacer) Interval() time.Duration {
	return p.minInterval
}
