package model_test

import (
	"fmt"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sheikhrachel/life-editor/model"
	"github.com/sheikhrachel/life-editor/utils"
)

type cell struct{ x, y int }

func newEngine(w, h int) (*model.Engine, *model.Editor) {
	cfg := utils.DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	engine, err := model.NewEngine(cfg)
	Expect(err).NotTo(HaveOccurred())
	return engine, model.NewEditor(engine)
}

func paint(ed *model.Editor, cells ...cell) {
	for _, c := range cells {
		ed.PaintCell(c.x, c.y)
	}
}

func liveCells(cells model.CellReader) []cell {
	var out []cell
	for y := range cells.Height() {
		for x := range cells.Width() {
			if cells.Get(x, y) {
				out = append(out, cell{x, y})
			}
		}
	}
	return out
}

var _ = Describe("Engine", func() {
	Describe("construction", func() {
		It("starts running with the configured interval", func() {
			engine, _ := newEngine(8, 6)
			Expect(engine.Running()).To(BeTrue())
			Expect(engine.TickInterval()).To(Equal(0.05))
			Expect(engine.Width()).To(Equal(8))
			Expect(engine.Height()).To(Equal(6))
			Expect(engine.Generation()).To(BeZero())
			Expect(liveCells(engine.Cells())).To(BeEmpty())
		})

		It("honours StartPaused", func() {
			cfg := utils.DefaultConfig()
			cfg.StartPaused = true
			engine, err := model.NewEngine(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(engine.Running()).To(BeFalse())
		})

		It("clamps a negative configured interval", func() {
			cfg := utils.DefaultConfig()
			cfg.TickInterval = -1
			engine, err := model.NewEngine(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(engine.TickInterval()).To(BeZero())
		})

		It("rejects an invalid config", func() {
			cfg := utils.DefaultConfig()
			cfg.FrameRate = 0
			_, err := model.NewEngine(cfg)
			Expect(err).To(MatchError(utils.ErrInvalidConfig))
		})

		It("rejects a non-finite interval", func() {
			cfg := utils.DefaultConfig()
			cfg.TickInterval = math.NaN()
			_, err := model.NewEngine(cfg)
			Expect(err).To(MatchError(utils.ErrInvalidConfig))
		})

		It("rejects non-positive dimensions", func() {
			cfg := utils.DefaultConfig()
			cfg.Width = 0
			_, err := model.NewEngine(cfg)
			Expect(err).To(MatchError(model.ErrInvalidDimension))
		})
	})

	Describe("Tick", func() {
		It("keeps a block still", func() {
			engine, ed := newEngine(6, 6)
			block := []cell{{2, 2}, {3, 2}, {2, 3}, {3, 3}}
			paint(ed, block...)

			engine.Tick()
			Expect(liveCells(engine.Cells())).To(ConsistOf(block))
			engine.Tick()
			Expect(liveCells(engine.Cells())).To(ConsistOf(block))
		})

		It("oscillates a blinker with period two", func() {
			engine, ed := newEngine(7, 7)
			horizontal := []cell{{2, 3}, {3, 3}, {4, 3}}
			vertical := []cell{{3, 2}, {3, 3}, {3, 4}}
			paint(ed, horizontal...)

			engine.Tick()
			Expect(liveCells(engine.Cells())).To(ConsistOf(vertical))
			engine.Tick()
			Expect(liveCells(engine.Cells())).To(ConsistOf(horizontal))
		})

		It("moves a glider one cell diagonally every four generations", func() {
			engine, ed := newEngine(12, 12)
			ed.AddGlider(2, 2)
			before := liveCells(engine.Cells())

			for range 4 {
				engine.Tick()
			}

			shifted := make([]cell, 0, len(before))
			for _, c := range before {
				shifted = append(shifted, cell{c.x + 1, c.y + 1})
			}
			Expect(liveCells(engine.Cells())).To(ConsistOf(shifted))
		})

		It("never brings life to a cleared board", func() {
			engine, ed := newEngine(10, 10)
			ed.AddGlider(1, 1)
			ed.AddBlinker(5, 5)
			ed.Clear()

			for range 5 {
				engine.Tick()
				Expect(liveCells(engine.Cells())).To(BeEmpty())
			}
		})

		It("reports the population of the generation it replaces", func() {
			engine, ed := newEngine(12, 12)
			isolated := []cell{{1, 1}, {5, 1}, {1, 5}, {5, 5}, {9, 9}}
			paint(ed, isolated...)
			Expect(engine.Population()).To(Equal(len(isolated)))
			Expect(engine.LiveCount()).To(BeZero())

			engine.Tick()
			Expect(engine.LiveCount()).To(Equal(len(isolated)))
			Expect(engine.Population()).To(BeZero())

			engine.Tick()
			Expect(engine.LiveCount()).To(BeZero())
			Expect(engine.Generation()).To(Equal(2))
		})

		It("does not wrap around the board edges", func() {
			engine, ed := newEngine(6, 6)
			// On a torus these three corners would give birth at (0,0).
			paint(ed, cell{5, 0}, cell{0, 5}, cell{5, 5})

			engine.Tick()
			Expect(engine.Cells().Get(0, 0)).To(BeFalse())
			Expect(liveCells(engine.Cells())).To(BeEmpty())
		})

		It("keeps a lone origin cell away from the opposite corner", func() {
			engine, ed := newEngine(5, 5)
			ed.PaintCell(0, 0)
			ed.PaintCell(1, 0)
			ed.PaintCell(0, 1)

			for range 3 {
				engine.Tick()
				Expect(engine.Cells().Get(4, 4)).To(BeFalse())
				Expect(engine.Cells().Get(4, 0)).To(BeFalse())
				Expect(engine.Cells().Get(0, 4)).To(BeFalse())
			}
		})

		It("advances even while paused", func() {
			engine, ed := newEngine(7, 7)
			ed.ToggleRunning()
			paint(ed, cell{2, 3}, cell{3, 3}, cell{4, 3})

			engine.Step()
			Expect(engine.Running()).To(BeFalse())
			Expect(liveCells(engine.Cells())).To(ConsistOf(cell{3, 2}, cell{3, 3}, cell{3, 4}))
		})
	})

	Describe("transition rule", func() {
		ring := []cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

		for _, alive := range []bool{true, false} {
			for neighbors := 0; neighbors <= 8; neighbors++ {
				want := neighbors == 3 || (alive && neighbors == 2)
				It(fmt.Sprintf("maps alive=%v with %d neighbours to %v", alive, neighbors, want), func() {
					engine, ed := newEngine(3, 3)
					paint(ed, ring[:neighbors]...)
					if alive {
						ed.PaintCell(1, 1)
					}

					engine.Tick()
					Expect(engine.Cells().Get(1, 1)).To(Equal(want))
				})
			}
		}
	})

	Describe("controls", func() {
		It("clears only the grid", func() {
			engine, ed := newEngine(5, 5)
			ed.ToggleRunning()
			engine.SetTickInterval(0.3)
			ed.PaintCell(2, 2)

			engine.ClearGrid()
			Expect(liveCells(engine.Cells())).To(BeEmpty())
			Expect(engine.Running()).To(BeFalse())
			Expect(engine.TickInterval()).To(Equal(0.3))
		})

		It("never lets the interval go negative", func() {
			engine, _ := newEngine(5, 5)
			engine.SetTickInterval(0.02)
			engine.AdjustTickInterval(-0.01)
			engine.AdjustTickInterval(-0.01)
			engine.AdjustTickInterval(-0.01)
			Expect(engine.TickInterval()).To(BeNumerically(">=", 0))
			Expect(engine.TickInterval()).To(BeNumerically("<", 1e-9))

			engine.SetTickInterval(-4)
			Expect(engine.TickInterval()).To(BeZero())
		})

		It("formats the status line", func() {
			engine, ed := newEngine(4, 3)
			ed.PaintCell(0, 0)
			engine.Tick()
			engine.SetRunning(false)

			Expect(engine.Status().Line(6)).To(Equal(
				"4x3 (12): Running=0, Frame Delay=0.050000, Cells Size=6, Cells count=1"))
		})
	})
})
