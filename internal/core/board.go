package core

// Board stores a square grid of binary cells in row-major order, so the cell
// at column x, row y lives at x + resolution*y.
type Board struct {
	res  int
	data []uint8
}

// NewBoard allocates an all-dead board. Resolutions below one are raised to
// one; callers that need to reject them must check before calling.
func NewBoard(resolution int) *Board {
	if resolution <= 0 {
		resolution = 1
	}
	return &Board{res: resolution, data: make([]uint8, resolution*resolution)}
}

// Resolution returns the number of cells per side.
func (b *Board) Resolution() int { return b.res }

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Board) Cells() []uint8 { return b.data }

// Index returns the linear slice index for coordinates (x, y).
func (b *Board) Index(x, y int) int { return x + b.res*y }

// Contains reports whether (x, y) lies on the board.
func (b *Board) Contains(x, y int) bool {
	return x >= 0 && x < b.res && y >= 0 && y < b.res
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (b *Board) Wrap(x, y int) (int, int) {
	x = (x%b.res + b.res) % b.res
	y = (y%b.res + b.res) % b.res
	return x, y
}

// At returns the cell at (x, y), or 0 when the coordinates are off the board.
func (b *Board) At(x, y int) uint8 {
	if !b.Contains(x, y) {
		return 0
	}
	return b.data[b.Index(x, y)]
}

// Set writes v (normalised to 0 or 1) at (x, y). Off-board writes are ignored.
func (b *Board) Set(x, y int, v uint8) {
	if !b.Contains(x, y) {
		return
	}
	if v != 0 {
		v = 1
	}
	b.data[b.Index(x, y)] = v
}

// Clear fills the board with zeros.
func (b *Board) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// Population counts live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.data {
		n += int(c)
	}
	return n
}
