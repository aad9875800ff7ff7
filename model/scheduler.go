package model

import (
	"math"
	"time"
)

// Intervals at or above this many seconds do not fit a time.Duration and are
// never due.
const maxIntervalSeconds = float64(math.MaxInt64) / float64(time.Second)

// Scheduler decides, frame by frame, when the engine is due for a tick.
//
// Elapsed time keeps accumulating while the engine is paused, so resuming
// after a long pause ticks on the very next frame.
type Scheduler struct {
	engine  *Engine
	elapsed time.Duration
}

// NewScheduler returns a scheduler driving engine.
func NewScheduler(engine *Engine) *Scheduler {
	return &Scheduler{engine: engine}
}

// Advance adds the duration of one frame and ticks the engine when it is
// running and at least one tick interval has passed since the last tick.
// It reports whether a tick happened.
func (s *Scheduler) Advance(dt time.Duration) bool {
	if dt > 0 {
		s.elapsed += dt
	}
	if !s.engine.Running() {
		return false
	}
	seconds := s.engine.TickInterval()
	if seconds >= maxIntervalSeconds {
		return false
	}
	if s.elapsed < time.Duration(seconds*float64(time.Second)) {
		return false
	}
	s.engine.Tick()
	s.elapsed = 0
	return true
}

// Elapsed returns the time accumulated since the last tick.
func (s *Scheduler) Elapsed() time.Duration {
	return s.elapsed
}
