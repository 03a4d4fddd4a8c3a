// Package life implements Conway's Game of Life (B3/S23) on a square
// toroidal board.
package life

import (
	"errors"

	"torus-life/internal/core"
)

var (
	// ErrInvalidResolution is returned when a board would have fewer than one
	// cell per side.
	ErrInvalidResolution = errors.New("life: resolution must be at least 1")
	// ErrOutOfRange is returned when a mutation targets a cell off the board.
	ErrOutOfRange = errors.New("life: cell coordinates out of range")
)

// Engine owns the board and the running flag. It is not safe for concurrent
// use; the loop that drives it owns it.
type Engine struct {
	cur *core.Board
	nxt *core.Board

	running    bool
	generation int
}

// New returns an engine with an all-dead board of the given resolution.
func New(resolution int) (*Engine, error) {
	if resolution < 1 {
		return nil, ErrInvalidResolution
	}
	e := &Engine{}
	e.replace(resolution)
	return e, nil
}

func (e *Engine) replace(resolution int) {
	e.cur = core.NewBoard(resolution)
	e.nxt = core.NewBoard(resolution)
	e.generation = 0
}

// Reset replaces the board with an all-dead board of the given resolution and
// stops automatic stepping.
func (e *Engine) Reset(resolution int) error {
	if resolution < 1 {
		return ErrInvalidResolution
	}
	if resolution == e.cur.Resolution() {
		e.Clear()
		return nil
	}
	e.replace(resolution)
	e.running = false
	return nil
}

// Clear kills every cell, keeping the resolution, and stops automatic
// stepping.
func (e *Engine) Clear() {
	e.cur.Clear()
	e.generation = 0
	e.running = false
}

// Resize replaces the board with an all-dead board of the given resolution.
// The running flag is left as it was.
func (e *Engine) Resize(resolution int) error {
	if resolution < 1 {
		return ErrInvalidResolution
	}
	e.replace(resolution)
	return nil
}

// Seed overwrites the board with a deterministic random soup in which each
// cell is alive with the given density.
func (e *Engine) Seed(seed int64, density float64) {
	core.NewRNG(seed).FillSoup(e.cur.Cells(), density)
	e.generation = 0
}

// ToggleCell flips the cell at (x, y) between dead and alive.
func (e *Engine) ToggleCell(x, y int) error {
	if !e.cur.Contains(x, y) {
		return ErrOutOfRange
	}
	e.cur.Set(x, y, 1-e.cur.At(x, y))
	return nil
}

// SetRunning sets the automatic-stepping flag. The board is not touched.
func (e *Engine) SetRunning(running bool) { e.running = running }

// Running reports whether automatic stepping is enabled.
func (e *Engine) Running() bool { return e.running }

// Resolution returns the number of cells per side.
func (e *Engine) Resolution() int { return e.cur.Resolution() }

// Cells exposes the current generation. Callers must treat it as read-only.
func (e *Engine) Cells() []uint8 { return e.cur.Cells() }

// Cell returns the value at (x, y); off-board coordinates read as dead.
func (e *Engine) Cell(x, y int) uint8 { return e.cur.At(x, y) }

// Generation returns the number of steps since the board was last replaced
// or seeded.
func (e *Engine) Generation() int { return e.generation }

// Population returns the number of live cells.
func (e *Engine) Population() int { return e.cur.Population() }

// CountNeighbors returns the number of live cells among the eight wrapped
// neighbours of (x, y). Off-board coordinates have no neighbours.
func (e *Engine) CountNeighbors(x, y int) int {
	if !e.cur.Contains(x, y) {
		return 0
	}
	return countNeighbors(e.cur, x, y)
}

// countNeighbors sums the full 3x3 block around (x, y), wrapping at the
// edges, then removes the centre cell.
func countNeighbors(b *core.Board, x, y int) int {
	cells := b.Cells()
	sum := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			col, row := b.Wrap(x+dx, y+dy)
			sum += int(cells[b.Index(col, row)])
		}
	}
	sum -= int(cells[b.Index(x, y)])
	return sum
}

// Step advances the board by one generation. Every cell is computed from the
// current generation into a separate buffer before the buffers are swapped.
func (e *Engine) Step() {
	res := e.cur.Resolution()
	nxt := e.nxt.Cells()
	for i, c := range e.cur.Cells() {
		x := i % res
		y := i / res
		nxt[i] = next(c, countNeighbors(e.cur, x, y))
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}

// next applies B3/S23 to a single cell.
func next(cell uint8, neighbors int) uint8 {
	switch {
	case cell == 0 && neighbors == 3:
		return 1
	case cell == 1 && (neighbors < 2 || neighbors > 3):
		return 0
	default:
		return cell
	}
}
