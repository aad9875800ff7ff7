package model

import (
	"math"
	"testing"
	"time"
)

func TestSchedulerTicksWhenDue(t *testing.T) {
	e := newTestEngine(t, 5, 5)
	e.SetTickInterval(0.05)
	s := NewScheduler(e)

	frame := 20 * time.Millisecond
	var ticked []bool
	for range 6 {
		ticked = append(ticked, s.Advance(frame))
	}

	want := []bool{false, false, true, false, false, true}
	for i := range want {
		if ticked[i] != want[i] {
			t.Fatalf("frame %d: ticked=%v, want %v (all: %v)", i, ticked[i], want[i], ticked)
		}
	}
	if e.Generation() != 2 {
		t.Errorf("expected 2 generations, got %d", e.Generation())
	}
}

func TestSchedulerPaused(t *testing.T) {
	e := newTestEngine(t, 5, 5)
	e.SetRunning(false)
	s := NewScheduler(e)

	for range 10 {
		if s.Advance(time.Second) {
			t.Fatal("paused engine must not tick")
		}
	}
	if e.Generation() != 0 {
		t.Errorf("expected no generations, got %d", e.Generation())
	}

	e.SetRunning(true)
	if !s.Advance(0) {
		t.Error("time spent paused should make the next frame tick")
	}
	if s.Elapsed() != 0 {
		t.Errorf("elapsed should reset after a tick, got %v", s.Elapsed())
	}
}

func TestSchedulerZeroInterval(t *testing.T) {
	e := newTestEngine(t, 5, 5)
	e.SetTickInterval(0)
	s := NewScheduler(e)

	for range 3 {
		if !s.Advance(time.Millisecond) {
			t.Fatal("zero interval should tick every frame")
		}
	}
}

func TestTickDoesNotAllocate(t *testing.T) {
	e := newTestEngine(t, 32, 32)
	NewEditor(e).AddGlider(3, 3)

	if allocs := testing.AllocsPerRun(20, e.Tick); allocs != 0 {
		t.Errorf("Tick allocated %v times per run", allocs)
	}
}

func TestSchedulerOutOfRangeIntervals(t *testing.T) {
	tests := []struct {
		name         string
		interval     float64
		wantInterval float64
		wantTick     bool
	}{
		{"NaN folds to zero", math.NaN(), 0, true},
		{"infinite never ticks", math.Inf(1), math.Inf(1), false},
		{"beyond a Duration never ticks", 1e10, 1e10, false},
		{"negative infinity clamps to zero", math.Inf(-1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, 5, 5)
			e.SetTickInterval(tt.interval)
			if got := e.TickInterval(); got != tt.wantInterval {
				t.Fatalf("interval = %v, want %v", got, tt.wantInterval)
			}

			s := NewScheduler(e)
			for range 3 {
				if got := s.Advance(time.Millisecond); got != tt.wantTick {
					t.Fatalf("ticked = %v, want %v", got, tt.wantTick)
				}
			}
		})
	}
}
