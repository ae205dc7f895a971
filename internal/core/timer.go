package core

import "time"

// FixedStep paces generations at a steady rate independent of the frame rate.
// Time that accrues while the caller is slow is paid back over later frames,
// at most MaxCatchUp generations per frame.
type FixedStep struct {
	MaxCatchUp int

	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep targeting gps generations per second.
func NewFixedStep(gps int) *FixedStep {
	fs := &FixedStep{MaxCatchUp: 4}
	fs.SetRate(gps)
	return fs
}

// SetRate changes the generation rate. Non-positive rates fall back to 30.
func (f *FixedStep) SetRate(gps int) {
	if gps <= 0 {
		gps = 30
	}
	f.step = time.Second / time.Duration(gps)
}

// Rate returns the configured generations per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// Due reports how many generations to run for a frame at now. The first call
// only starts the clock.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if f.MaxCatchUp > 0 && n > f.MaxCatchUp {
		n = f.MaxCatchUp
		f.accumulator = 0
	}
	return n
}
