package qrcode

import "strings"

// ASCII returns a textual rendering of the matrix, two characters per
// module, for logging and debugging. The empty matrix renders as "".
func (m Matrix) ASCII() string {
	if m.side == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(m.side * (2*m.side + 1))
	for row := 0; row < m.side; row++ {
		for col := 0; col < m.side; col++ {
			if m.At(row, col) {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// SmallASCII returns a compact textual rendering using half-block
// characters, packing two module rows into each text line.
func (m Matrix) SmallASCII() string {
	if m.side == 0 {
		return ""
	}
	var b strings.Builder
	for row := 0; row < m.side; row += 2 {
		for col := 0; col < m.side; col++ {
			upper := m.At(row, col)
			lower := m.At(row+1, col)
			switch {
			case upper && lower:
				b.WriteRune('█')
			case upper:
				b.WriteRune('▀')
			case lower:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
