// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package band implements the cyclic byte memory band of the interpreter.
//
// The band is a fixed number of single byte cells and a cursor. Moving the
// cursor past either end wraps to the opposite end, and cell arithmetic wraps
// modulo 256. None of the operations can fail.
package band

const (
	DEFAULT_SIZE = 2048 // Default number of cells in a band.
)

// Band is a cyclic array of byte cells with a cursor.
type Band struct {
	cell  []byte
	index int
}

// NewBand creates a new, zeroed band of size cells.
// A size of zero or less selects DEFAULT_SIZE.
func NewBand(size int) (bd *Band) {
	if size <= 0 {
		size = DEFAULT_SIZE
	}

	bd = &Band{
		cell: make([]byte, size),
	}

	return
}

// Reset zeros all cells, and moves the cursor to cell 0.
func (bd *Band) Reset() {
	clear(bd.cell)
	bd.index = 0
}

// Size of the band, in cells.
func (bd *Band) Size() int {
	return len(bd.cell)
}

// Index returns the cursor position.
func (bd *Band) Index() int {
	return bd.index
}

// Right moves the cursor one cell to the right, wrapping to 0.
func (bd *Band) Right() {
	bd.index++
	if bd.index >= len(bd.cell) {
		bd.index = 0
	}
}

// Left moves the cursor one cell to the left, wrapping to the last cell.
func (bd *Band) Left() {
	bd.index--
	if bd.index < 0 {
		bd.index = len(bd.cell) - 1
	}
}

// Increment the cell under the cursor. 255 wraps to 0.
func (bd *Band) Increment() {
	bd.cell[bd.index]++
}

// Decrement the cell under the cursor. 0 wraps to 255.
func (bd *Band) Decrement() {
	bd.cell[bd.index]--
}

// Read the cell under the cursor.
func (bd *Band) Read() byte {
	return bd.cell[bd.index]
}

// Write the cell under the cursor.
func (bd *Band) Write(value byte) {
	bd.cell[bd.index] = value
}

// Cell returns the value of cell n. n is taken cyclically, so negative
// values count back from the end of the band.
func (bd *Band) Cell(n int) byte {
	return bd.cell[bd.wrap(n)]
}

// Window returns the 2*radius+1 cells centered on the cursor, and the
// index of the first of them. Radius is clipped so no cell repeats.
func (bd *Band) Window(radius int) (first int, cells []byte) {
	size := len(bd.cell)
	if 2*radius+1 > size {
		radius = (size - 1) / 2
	}
	if radius < 0 {
		radius = 0
	}

	first = bd.wrap(bd.index - radius)
	cells = make([]byte, 2*radius+1)
	for n := range cells {
		cells[n] = bd.cell[(first+n)%size]
	}

	return
}

func (bd *Band) wrap(n int) int {
	size := len(bd.cell)
	n %= size
	if n < 0 {
		n += size
	}
	return n
}
