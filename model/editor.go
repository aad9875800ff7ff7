package model

// Editor is the only way input handlers change the simulation. Every edit
// applies to the current generation and never advances it.
type Editor struct {
	engine *Engine
}

// NewEditor returns an editor for engine.
func NewEditor(engine *Engine) *Editor {
	return &Editor{engine: engine}
}

// PaintCell brings (x, y) to life. Coordinates off the board are ignored.
func (ed *Editor) PaintCell(x, y int) {
	ed.setCell(x, y, true)
}

// EraseCell kills (x, y). Coordinates off the board are ignored.
func (ed *Editor) EraseCell(x, y int) {
	ed.setCell(x, y, false)
}

func (ed *Editor) setCell(x, y int, alive bool) {
	if !ed.engine.current.InBounds(x, y) {
		return
	}
	ed.engine.current.Set(x, y, alive)
}

func (ed *Editor) ToggleRunning() {
	ed.engine.ToggleRunning()
}

// IncreaseSpeed shortens the tick interval by delta seconds, stopping at zero.
func (ed *Editor) IncreaseSpeed(delta float64) {
	ed.engine.AdjustTickInterval(-delta)
}

// DecreaseSpeed lengthens the tick interval by delta seconds.
func (ed *Editor) DecreaseSpeed(delta float64) {
	ed.engine.AdjustTickInterval(delta)
}

func (ed *Editor) Clear() {
	ed.engine.ClearGrid()
}

// Step advances one generation on request, used while paused.
func (ed *Editor) Step() {
	ed.engine.Step()
}

// Locate maps a screen position to the cell under it, given the on-screen
// size of one cell. ok is false when the position is off the board.
func (ed *Editor) Locate(px, py, cellW, cellH int) (x, y int, ok bool) {
	if px < 0 || py < 0 || cellW <= 0 || cellH <= 0 {
		return 0, 0, false
	}
	x, y = px/cellW, py/cellH
	if !ed.engine.current.InBounds(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

// PaintAt paints the cell under a screen position.
func (ed *Editor) PaintAt(px, py, cellW, cellH int) {
	if x, y, ok := ed.Locate(px, py, cellW, cellH); ok {
		ed.PaintCell(x, y)
	}
}

// EraseAt erases the cell under a screen position.
func (ed *Editor) EraseAt(px, py, cellW, cellH int) {
	if x, y, ok := ed.Locate(px, py, cellW, cellH); ok {
		ed.EraseCell(x, y)
	}
}
