package model

import (
	"fmt"
	"math"

	"github.com/sheikhrachel/life-editor/rules"
	"github.com/sheikhrachel/life-editor/utils"
)

// Engine advances a bounded Game of Life board one generation at a time.
//
// It owns two grids: current, which is what everyone reads and edits, and
// next, a scratch buffer that Tick fully rewrites before the two are swapped.
// Engine is not safe for concurrent use; input, ticks and rendering are
// expected to run in sequence on one goroutine.
type Engine struct {
	current *Grid
	next    *Grid

	running      bool
	tickInterval float64
	liveCount    int
	generation   int
}

// NewEngine builds an engine sized from config. The engine starts running
// unless config.StartPaused is set.
func NewEngine(config utils.Config) (*Engine, error) {
	current, err := NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, err
	}
	next, err := NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		current: current,
		next:    next,
		running: !config.StartPaused,
	}
	e.SetTickInterval(config.TickInterval)
	return e, nil
}

// Tick computes the next generation.
//
// The live count is taken from the generation being replaced, before the
// rule is applied. Tick ignores the running flag; pacing is the caller's job.
func (e *Engine) Tick() {
	e.liveCount = e.current.CountLivingCells()

	cur, nxt := e.current, e.next
	for y := range cur.height {
		for x := range cur.width {
			nxt.cells[y][x] = rules.ApplyConwayRules(cur.CountNeighbors(x, y), cur.cells[y][x])
		}
	}

	e.current, e.next = nxt, cur
	e.generation++
}

// Step advances exactly one generation regardless of the running flag.
func (e *Engine) Step() {
	e.Tick()
}

// SetTickInterval sets the seconds between generations. Negative values and
// NaN are clamped to zero.
func (e *Engine) SetTickInterval(seconds float64) {
	if math.IsNaN(seconds) {
		seconds = 0
	}
	e.tickInterval = max(0, seconds)
}

// AdjustTickInterval adds delta to the tick interval, never going below zero.
func (e *Engine) AdjustTickInterval(delta float64) {
	e.SetTickInterval(e.tickInterval + delta)
}

func (e *Engine) ToggleRunning() {
	e.running = !e.running
}

func (e *Engine) SetRunning(running bool) {
	e.running = running
}

// ClearGrid kills every cell of the current generation. The running flag and
// tick interval are left alone.
func (e *Engine) ClearGrid() {
	e.current.Clear()
}

// Cells exposes the current generation for drawing.
func (e *Engine) Cells() CellReader { return e.current }

func (e *Engine) Width() int  { return e.current.width }
func (e *Engine) Height() int { return e.current.height }

func (e *Engine) Running() bool         { return e.running }
func (e *Engine) TickInterval() float64 { return e.tickInterval }
func (e *Engine) Generation() int       { return e.generation }

// LiveCount returns the number of live cells recorded by the last tick,
// i.e. the population of the generation that tick replaced.
func (e *Engine) LiveCount() int { return e.liveCount }

// Population counts the live cells of the current generation.
func (e *Engine) Population() int { return e.current.CountLivingCells() }

// Status is a snapshot of the counters shown on the status line.
type Status struct {
	Width        int
	Height       int
	Running      bool
	TickInterval float64
	LiveCount    int
	Generation   int
}

// Status returns the engine counters.
func (e *Engine) Status() Status {
	return Status{
		Width:        e.current.width,
		Height:       e.current.height,
		Running:      e.running,
		TickInterval: e.tickInterval,
		LiveCount:    e.liveCount,
		Generation:   e.generation,
	}
}

// Line formats the status as the debug bar text, using cellSize as the
// on-screen size of a cell.
func (s Status) Line(cellSize int) string {
	running := 0
	if s.Running {
		running = 1
	}
	return fmt.Sprintf("%dx%d (%d): Running=%d, Frame Delay=%f, Cells Size=%d, Cells count=%d",
		s.Width, s.Height, s.Width*s.Height, running, s.TickInterval, cellSize, s.LiveCount)
}
