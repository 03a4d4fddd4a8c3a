// Package paint turns continuous pointer positions into cell toggles.
package paint

import "math"

// Target is the board a Brush paints on.
type Target interface {
	Resolution() int
	ToggleCell(x, y int) error
}

// Brush maps pointer pixels onto board cells and toggles a cell only when a
// held pointer moves into a cell other than the one it was over at the
// previous sample, so lingering over a cell during a drag flips it once.
type Brush struct {
	boardPixels float64

	prevX, prevY float64
	hasPrev      bool
}

// NewBrush returns a Brush for a square board drawn boardPixels wide.
func NewBrush(boardPixels int) *Brush {
	if boardPixels < 1 {
		boardPixels = 1
	}
	return &Brush{boardPixels: float64(boardPixels)}
}

// BoardPixels returns the drawn board size the brush maps against.
func (b *Brush) BoardPixels() int { return int(b.boardPixels) }

// CellAt converts a pointer position to cell coordinates for a board of the
// given resolution. Positions on the far edge map to the last cell.
func (b *Brush) CellAt(resolution int, px, py float64) (int, int) {
	cellSize := b.boardPixels / float64(resolution)
	return clampCell(px, cellSize, resolution), clampCell(py, cellSize, resolution)
}

func clampCell(p, cellSize float64, resolution int) int {
	c := int(math.Floor(p / cellSize))
	if c < 0 {
		return 0
	}
	if c >= resolution {
		return resolution - 1
	}
	return c
}

// prevCell maps the previous sample to a cell. Samples off the board keep
// their off-board index, so entering an edge cell from outside counts as
// moving into a new cell.
func (b *Brush) prevCell(resolution int, px, py float64) (int, int) {
	if b.inside(px, py) {
		return b.CellAt(resolution, px, py)
	}
	cellSize := b.boardPixels / float64(resolution)
	return int(math.Floor(px / cellSize)), int(math.Floor(py / cellSize))
}

func (b *Brush) inside(px, py float64) bool {
	return px >= 0 && px <= b.boardPixels && py >= 0 && py <= b.boardPixels
}

// Sample records the pointer position for this frame and, when the pointer is
// pressed over the board and has entered a new cell, toggles that cell. It
// reports the toggled cell, if any.
func (b *Brush) Sample(t Target, px, py float64, pressed bool) (x, y int, toggled bool, err error) {
	prevX, prevY, hadPrev := b.prevX, b.prevY, b.hasPrev
	b.prevX, b.prevY, b.hasPrev = px, py, true

	res := t.Resolution()
	if !pressed || !hadPrev || res < 1 || !b.inside(px, py) {
		return 0, 0, false, nil
	}
	x, y = b.CellAt(res, px, py)
	ox, oy := b.prevCell(res, prevX, prevY)
	if x == ox && y == oy {
		return 0, 0, false, nil
	}
	if err := t.ToggleCell(x, y); err != nil {
		return x, y, false, err
	}
	return x, y, true, nil
}

// Forget drops the previous sample, so the next sample cannot toggle.
func (b *Brush) Forget() { b.hasPrev = false }
