//go:build ebiten

package gui

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-editor/model"
	"github.com/sheikhrachel/life-editor/utils"
)

// Height in pixels of the status bar under the board.
const barHeight = 32

var barColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}

// Game adapts the engine to the ebiten.Game interface.
type Game struct {
	engine    *model.Engine
	editor    *model.Editor
	scheduler *model.Scheduler
	config    utils.Config

	board *ebiten.Image
	bar   *ebiten.Image
	buf   []byte

	frame       time.Duration
	repeatEvery int
}

// New constructs a Game for engine.
func New(engine *model.Engine, config utils.Config) *Game {
	w, h := engine.Width(), engine.Height()
	bar := ebiten.NewImage(w*config.CellSize, barHeight)
	bar.Fill(barColor)
	return &Game{
		engine:      engine,
		editor:      model.NewEditor(engine),
		scheduler:   model.NewScheduler(engine),
		config:      config,
		board:       ebiten.NewImage(w, h),
		bar:         bar,
		buf:         make([]byte, 4*w*h),
		frame:       time.Second / time.Duration(config.FrameRate),
		repeatEvery: int(config.KeyRepeat * float64(config.FrameRate)),
	}
}

// Update handles input for one frame and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.editor.ToggleRunning()
	}
	if repeatDue(inpututil.KeyPressDuration(ebiten.KeyZ), g.repeatEvery) {
		g.editor.DecreaseSpeed(g.config.SpeedStep)
	} else if repeatDue(inpututil.KeyPressDuration(ebiten.KeyX), g.repeatEvery) {
		g.editor.IncreaseSpeed(g.config.SpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.editor.Step()
	}
	if ebiten.IsKeyPressed(ebiten.KeyC) {
		g.editor.Clear()
	}

	px, py := ebiten.CursorPosition()
	cell := g.config.CellSize
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.editor.PaintAt(px, py, cell, cell)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.editor.EraseAt(px, py, cell, cell)
	}

	g.scheduler.Advance(g.frame)
	return nil
}

// Draw renders live cells in black on white and the status bar below.
func (g *Game) Draw(screen *ebiten.Image) {
	fillCellsRGBA(g.buf, g.engine.Cells(), color.Black, color.White)
	g.board.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.config.CellSize), float64(g.config.CellSize))
	screen.DrawImage(g.board, op)

	boardHeight := g.engine.Height() * g.config.CellSize
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(boardHeight))
	screen.DrawImage(g.bar, op)
	ebitenutil.DebugPrintAt(screen, g.engine.Status().Line(g.config.CellSize), 10, boardHeight+8)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.engine.Width() * g.config.CellSize, g.engine.Height()*g.config.CellSize + barHeight
}

// Run opens the window and blocks until it is closed.
func Run(engine *model.Engine, config utils.Config) error {
	game := New(engine, config)

	ebiten.SetWindowTitle("The Game of Life")
	ebiten.SetTPS(config.FrameRate)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	log.Printf("window %dx%d, %d fps", w, h, config.FrameRate)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
