package gui

import (
	"image/color"

	"github.com/sheikhrachel/life-editor/model"
)

// fillCellsRGBA converts cell states into RGBA pixels in buf, one pixel per
// cell in row-major order. buf must hold 4*w*h bytes.
func fillCellsRGBA(buf []byte, cells model.CellReader, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	w := cells.Width()
	for y := range cells.Height() {
		for x := range w {
			base := (y*w + x) * 4
			if cells.Get(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// repeatDue reports whether a key held for pressed frames should fire:
// on the first frame and then once every interval frames.
func repeatDue(pressed, interval int) bool {
	switch {
	case pressed <= 0:
		return false
	case pressed == 1:
		return true
	case interval <= 0:
		return false
	}
	return (pressed-1)%interval == 0
}
