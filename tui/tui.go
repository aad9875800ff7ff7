// Package tui runs the simulation in a terminal with bubbletea.
//
// Each board cell takes two terminal columns and one row. The left mouse
// button paints cells, the right one erases them, and the keyboard drives the
// engine the same way the window frontend does.
package tui

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sheikhrachel/life-editor/model"
	"github.com/sheikhrachel/life-editor/utils"
)

const (
	// Terminal columns and rows used by one cell.
	cellCols = 2
	cellRows = 1

	// Rows above the board: title and status line.
	boardTop = 2
	// Rows below the board: key hints.
	boardBottom = 1
)

type frameMsg time.Time

// Model is the bubbletea model wrapping one engine.
type Model struct {
	engine    *model.Engine
	editor    *model.Editor
	scheduler *model.Scheduler
	stats     *utils.Stats
	config    utils.Config
	rng       *rand.Rand

	frame     time.Duration
	lastFrame time.Time
	lastTick  time.Time

	width, height int
}

// New returns a model driving engine with the settings from config.
func New(engine *model.Engine, config utils.Config) *Model {
	frame := time.Second / time.Duration(max(1, config.FrameRate))
	return &Model{
		engine:    engine,
		editor:    model.NewEditor(engine),
		scheduler: model.NewScheduler(engine),
		stats:     utils.NewStats(),
		config:    config,
		rng:       rand.New(rand.NewPCG(uint64(config.Seed), 0)),
		frame:     frame,
		width:     80,
		height:    24,
	}
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) Init() tea.Cmd { return m.nextFrame() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case frameMsg:
		m.advance(time.Time(msg))
		return m, m.nextFrame()
	}
	return m, nil
}

func (m *Model) advance(now time.Time) {
	dt := m.frame
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	if !m.scheduler.Advance(dt) {
		return
	}
	var took time.Duration
	if !m.lastTick.IsZero() {
		took = now.Sub(m.lastTick)
	}
	m.lastTick = now
	m.stats.Update(m.engine.Generation(), m.engine.LiveCount(), took)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		log.Printf("quit at generation %d", m.engine.Generation())
		return m, tea.Quit
	case " ":
		m.editor.ToggleRunning()
		log.Printf("running=%v", m.engine.Running())
	case "z":
		m.editor.DecreaseSpeed(m.config.SpeedStep)
	case "x":
		m.editor.IncreaseSpeed(m.config.SpeedStep)
	case "c":
		m.editor.Clear()
	case "n":
		m.editor.Step()
	case "r":
		m.editor.Seed(m.config, m.rng)
		log.Printf("reseeded, population %d", m.engine.Population())
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}
	// Rows above the board map to negative cell rows, which the editor rejects.
	px, py := msg.X, msg.Y-boardTop
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.editor.PaintAt(px, py, cellCols, cellRows)
	case tea.MouseButtonRight:
		m.editor.EraseAt(px, py, cellCols, cellRows)
	}
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("The Game of Life"))
	b.WriteString("  ")
	if m.engine.Running() {
		b.WriteString(runningStyle.Render("running"))
	} else {
		b.WriteString(pausedStyle.Render("paused"))
	}
	fmt.Fprintf(&b, "  gen %d  %.1f gen/s\n", m.engine.Generation(), m.stats.GenerationsPerSecond)

	b.WriteString(statusStyle.Render(m.engine.Status().Line(m.config.CellSize)))
	b.WriteByte('\n')

	writeBoard(&b, m.engine.Cells(), m.width/cellCols, m.height-boardTop-boardBottom)

	b.WriteString(hintStyle.Render("space run/pause · z slower · x faster · c clear · n step · r reseed · mouse paint/erase · q quit"))
	return b.String()
}

// writeBoard renders the top-left cols x rows cells of the board.
func writeBoard(w io.StringWriter, cells model.CellReader, cols, rows int) {
	cols = min(cols, cells.Width())
	rows = min(rows, cells.Height())

	var row strings.Builder
	for y := range max(rows, 0) {
		row.Reset()
		for x := range max(cols, 0) {
			if cells.Get(x, y) {
				row.WriteString("██")
			} else {
				row.WriteString("  ")
			}
		}
		w.WriteString(cellStyle.Render(row.String()))
		w.WriteString("\n")
	}
}

// Run starts the terminal UI and blocks until the user quits. Diagnostics
// from the log package go to logPath, or nowhere when it is empty, since the
// terminal belongs to the UI.
func Run(engine *model.Engine, config utils.Config, logPath string) error {
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "life")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(New(engine, config), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
