package core

import "time"

// FixedStep helps run simulation updates at a steady rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// NewFixedInterval constructs a FixedStep that fires once per interval. The
// first call to ShouldStep waits a full interval.
func NewFixedInterval(d time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(d)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// SetInterval changes the tick period. Non-positive durations fall back to
// one second.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Second
	}
	f.step = d
}

// SetClock replaces the time source.
func (f *FixedStep) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
}

// Interval reports the current tick period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart drops any accumulated time so the next tick is a full period away.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator >= f.step {
			// Long stalls yield a single tick rather than a burst.
			f.accumulator = 0
		}
		return true
	}
	return false
}
