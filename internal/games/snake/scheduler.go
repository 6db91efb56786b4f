package snake

import (
	"math"
	"time"
)

// Scheduler decides when the next simulation tick is due. The interval
// shrinks with the square root of the score. It never blocks; the host polls
// it once per frame.
type Scheduler struct {
	baseMS   float64
	factor   float64
	minMS    float64
	lastTick time.Time
}

// NewScheduler creates a scheduler with interval
// max(minMS, baseMS - factor*sqrt(score)) milliseconds, truncated to whole
// milliseconds.
func NewScheduler(baseMS, factor, minMS float64) *Scheduler {
	return &Scheduler{
		baseMS: baseMS,
		factor: factor,
		minMS:  math.Max(minMS, 0),
	}
}

// Interval returns the tick interval for the given score.
func (s *Scheduler) Interval(score int) time.Duration {
	ms := s.baseMS - s.factor*math.Sqrt(float64(max(score, 0)))
	ms = math.Floor(math.Max(ms, s.minMS))
	return time.Duration(ms) * time.Millisecond
}

// ShouldTick reports whether a tick is due at now given the previous tick.
// With a zero interval every poll ticks.
func (s *Scheduler) ShouldTick(now, lastTick time.Time, score int) bool {
	return now.Sub(lastTick) >= s.Interval(score)
}

// Poll reports whether a tick is due and, if so, records now as the last tick.
// The first poll only starts the clock.
func (s *Scheduler) Poll(now time.Time, score int) bool {
	if s.lastTick.IsZero() {
		s.lastTick = now
		return false
	}
	if !s.ShouldTick(now, s.lastTick, score) {
		return false
	}
	s.lastTick = now
	return true
}

// Reset stops the clock. The next Poll starts it again without ticking.
func (s *Scheduler) Reset() {
	s.lastTick = time.Time{}
}
