package model

import (
	"crypto/md5"
	"fmt"
)

// Longest cycle IsStagnant detects; History keeps exactly this many hashes.
const maxPeriod = 3

// History remembers fingerprints of recent generations to spot boards that
// stopped changing or settled into a short cycle.
type History struct {
	hashes []string
}

// GridHash returns an MD5 fingerprint of the cell states
func GridHash(cells CellReader) string {
	h := md5.New()
	for y := range cells.Height() {
		for x := range cells.Width() {
			if cells.Get(x, y) {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Record adds the fingerprint of cells and keeps only the most recent ones.
func (h *History) Record(cells CellReader) {
	h.hashes = append(h.hashes, GridHash(cells))

	if len(h.hashes) > maxPeriod {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded generation.
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether cells repeats one of the last three recorded
// generations: a still life or an oscillator of period 3 or less.
func (h *History) IsStagnant(cells CellReader) bool {
	if len(h.hashes) < maxPeriod {
		return false
	}

	current := GridHash(cells)
	for _, hash := range h.hashes {
		if hash == current {
			return true
		}
	}
	return false
}
