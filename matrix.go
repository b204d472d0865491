package qrcode

// Matrix is the square grid of on/off modules encoding a QR symbol.
// The zero value is the empty matrix (side 0), which every render target
// treats as "nothing to draw".
//
// A Matrix handed out by a Document shares no mutable state with it:
// the type exposes no setters, so callers can hold one across document
// mutations.
type Matrix struct {
	side  int
	cells []bool
}

// newMatrix creates an all-off matrix with the given side length.
func newMatrix(side int) Matrix {
	if side <= 0 {
		return Matrix{}
	}
	return Matrix{side: side, cells: make([]bool, side*side)}
}

// Side returns the side length N of the module grid. For any non-empty
// QR symbol N is odd and at least 21.
func (m Matrix) Side() int { return m.side }

// Empty reports whether the matrix has no modules.
func (m Matrix) Empty() bool { return m.side == 0 }

// At reports whether the module at (row, col) is on.
// Out-of-range coordinates are off.
func (m Matrix) At(row, col int) bool {
	if row < 0 || col < 0 || row >= m.side || col >= m.side {
		return false
	}
	return m.cells[row*m.side+col]
}

func (m Matrix) set(row, col int, on bool) {
	m.cells[row*m.side+col] = on
}

// OnCount returns the number of on modules.
func (m Matrix) OnCount() int {
	n := 0
	for _, c := range m.cells {
		if c {
			n++
		}
	}
	return n
}

// Equal reports whether two matrices have identical side length and cells.
func (m Matrix) Equal(o Matrix) bool {
	if m.side != o.side {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
