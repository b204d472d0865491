package qrcode

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateMatrixDeterminism(t *testing.T) {
	payload := []byte("determinism check")
	a, err := generateMatrix(payload, Medium)
	if err != nil {
		t.Fatalf("generateMatrix: %v", err)
	}
	b, err := generateMatrix(payload, Medium)
	if err != nil {
		t.Fatalf("generateMatrix: %v", err)
	}
	if !a.Equal(b) {
		t.Error("two generations of the same input differ")
	}
}

func TestGenerateMatrixHello(t *testing.T) {
	// Short payloads at low correction fit the smallest symbol version,
	// which is 21 modules per side.
	m, err := generateMatrix([]byte("HELLO"), Low)
	if err != nil {
		t.Fatalf("generateMatrix: %v", err)
	}
	if m.Side() != 21 {
		t.Errorf("side = %d, want 21", m.Side())
	}
	if m.Side()%2 != 1 {
		t.Errorf("side %d is not odd", m.Side())
	}
}

func TestGenerateMatrixEmptyPayload(t *testing.T) {
	m, err := generateMatrix(nil, Low)
	if err != nil {
		t.Fatalf("generateMatrix(nil): %v", err)
	}
	if !m.Empty() {
		t.Errorf("empty payload should yield the empty matrix, got side %d", m.Side())
	}
}

func TestGenerateMatrixCapacityBoundary(t *testing.T) {
	// Byte-mode capacity of the version 40 symbol: 2953 bytes at Low,
	// 1273 at Highest. Exactly at capacity succeeds; one byte past fails.
	tests := []struct {
		name  string
		level ErrorCorrectionLevel
		max   int
	}{
		{"low", Low, 2953},
		{"highest", Highest, 1273},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fits := []byte(strings.Repeat("a", tt.max))
			if _, err := generateMatrix(fits, tt.level); err != nil {
				t.Errorf("payload of %d bytes should fit: %v", tt.max, err)
			}

			over := []byte(strings.Repeat("a", tt.max+1))
			_, err := generateMatrix(over, tt.level)
			if err == nil {
				t.Fatalf("payload of %d bytes should not fit", tt.max+1)
			}
			var encErr *EncodingError
			if !errors.As(err, &encErr) {
				t.Errorf("error type = %T, want *EncodingError", err)
			}
		})
	}
}

func TestMatrixAt(t *testing.T) {
	m := newMatrix(3)
	m.set(1, 2, true)
	if !m.At(1, 2) {
		t.Error("set module reads as off")
	}
	if m.At(0, 0) {
		t.Error("unset module reads as on")
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if m.At(rc[0], rc[1]) {
			t.Errorf("out-of-range At(%d, %d) should be off", rc[0], rc[1])
		}
	}
}

func TestMatrixASCII(t *testing.T) {
	m := newMatrix(2)
	m.set(0, 0, true)
	m.set(1, 1, true)

	got := m.ASCII()
	want := "██  \n  ██\n"
	if got != want {
		t.Errorf("ASCII() = %q, want %q", got, want)
	}
	if (Matrix{}).ASCII() != "" {
		t.Error("empty matrix should render as empty string")
	}
}

func TestMatrixSmallASCII(t *testing.T) {
	m := newMatrix(2)
	m.set(0, 0, true) // upper only
	m.set(1, 1, true) // lower only

	got := m.SmallASCII()
	want := "▀▄\n"
	if got != want {
		t.Errorf("SmallASCII() = %q, want %q", got, want)
	}

	// Odd side: the last text line has no lower module row.
	m3 := newMatrix(3)
	for c := 0; c < 3; c++ {
		m3.set(2, c, true)
	}
	lines := strings.Split(strings.TrimRight(m3.SmallASCII(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("3-module matrix should pack into 2 text lines, got %d", len(lines))
	}
	if lines[1] != "▀▀▀" {
		t.Errorf("last line = %q, want %q", lines[1], "▀▀▀")
	}
}
