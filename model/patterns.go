package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/life-editor/utils"
)

var gliderPattern = [][]bool{
	{false, true, false},
	{false, false, true},
	{true, true, true},
}

// AddGlider adds a glider pattern at the specified position
func (ed *Editor) AddGlider(startX, startY int) {
	for y, row := range gliderPattern {
		for x, cell := range row {
			if cell {
				ed.PaintCell(startX+x, startY+y)
			} else {
				ed.EraseCell(startX+x, startY+y)
			}
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator starting at the specified position
func (ed *Editor) AddBlinker(startX, startY int) {
	ed.PaintCell(startX, startY)
	ed.PaintCell(startX+1, startY)
	ed.PaintCell(startX+2, startY)
}

// Randomize brings each cell to life with probability density. Cells that
// lose the draw are left as they are.
func (ed *Editor) Randomize(rng *rand.Rand, density float64) {
	if density <= 0 {
		return
	}
	g := ed.engine.current
	for y := range g.height {
		for x := range g.width {
			if rng.Float64() < density {
				ed.PaintCell(x, y)
			}
		}
	}
}

// SeedInterestingPatterns clears the board and adds a few gliders and
// blinkers, then sprinkles random life using density
func (ed *Editor) SeedInterestingPatterns(rng *rand.Rand, density float64) {
	ed.Clear()

	w, h := ed.engine.Width(), ed.engine.Height()
	if w >= 10 && h >= 10 {
		ed.AddGlider(5, 5)
		if w >= 20 && h >= 15 {
			ed.AddGlider(w-8, 5)
		}

		ed.AddBlinker(w/4, h/4)
		if w >= 30 {
			ed.AddBlinker(3*w/4, 3*h/4)
		}
	}

	ed.Randomize(rng, density)
}

// Seed prepares the board from config: the pattern set when config.Patterns
// is on, otherwise a fresh board with random life at config.RandomDensity.
func (ed *Editor) Seed(config utils.Config, rng *rand.Rand) {
	if config.Patterns {
		ed.SeedInterestingPatterns(rng, config.RandomDensity)
		return
	}
	ed.Clear()
	ed.Randomize(rng, config.RandomDensity)
}
