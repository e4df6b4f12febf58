package bulk

import (
	"testing"
	"time"
)

// fakeClock drives a Pacer without real waits.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Sleep(d time.Duration) {
	f.slept = append(f.slept, d)
	f.now = f.now.Add(d)
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newTestPacer(rate float64, clock *fakeClock) *Pacer {
	p := NewPacer(rate)
	p.now = clock.Now
	p.sleep = clock.Sleep
	return p
}

func TestPacer_NeverBlocksBeforeFirstRecord(t *testing.T) {
	clock := newFakeClock()
	p := newTestPacer(10, clock)

	p.Wait()
	p.Wait()

	if len(clock.slept) != 0 {
		t.Errorf("Wait before any Record slept %v, want no sleep", clock.slept)
	}
}

func TestPacer_EnforcesMinimumInterval(t *testing.T) {
	clock := newFakeClock()
	p := newTestPacer(10, clock)

	p.Wait()
	p.Record()
	// Next call 30ms later must wait the remaining 70ms.
	clock.Advance(30 * time.Millisecond)
	p.Wait()

	if len(clock.slept) != 1 {
		t.Fatalf("slept %d times, want 1", len(clock.slept))
	}
	if got, want := clock.slept[0], 70*time.Millisecond; got != want {
		t.Errorf("slept %v, want %v", got, want)
	}
}

func TestPacer_NoSleepAfterLongGap(t *testing.T) {
	clock := newFakeClock()
	p := newTestPacer(10, clock)

	p.Record()
	clock.Advance(time.Second)
	p.Wait()

	if len(clock.slept) != 0 {
		t.Errorf("slept %v after a long gap, want no sleep", clock.slept)
	}
}

func TestPacer_Interval(t *testing.T) {
	tests := []struct {
		rate float64
		want time.Duration
	}{
		{10, 100 * time.Millisecond},
		{1, time.Second},
		{20, 50 * time.Millisecond},
		{0, 100 * time.Millisecond}, // invalid rate falls back to default
	}

	for _, tt := range tests {
		p := NewPacer(tt.rate)
		if got := p.Interval(); got != tt.want {
			t.Errorf("NewPacer(%v).Interval() = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

func TestPacer_RealElapsedTime(t *testing.T) {
	p := NewPacer(10)

	p.Wait()
	p.Record()
	start := time.Now()
	p.Wait()

	if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
		t.Errorf("second Wait returned after %v, want at least ~100ms", elapsed)
	}
}
