package model

import (
	"bufio"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// Display writes the grid, two characters per cell and one line per row
func (r *TerminalRenderer) Display(cells CellReader) error {
	w := bufio.NewWriter(r.Out)
	for y := range cells.Height() {
		for x := range cells.Width() {
			if cells.Get(x, y) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}
