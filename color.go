package qrcode

import (
	"fmt"
	"image/color"
)

// Color is an RGBA color with components in the range [0, 1].
//
// Colors persist as "#RRGGBBAA" hex strings. That encoding is stable and
// part of the settings format; changing it would break persisted
// documents.
type Color struct {
	R, G, B, A float64
}

// Standard colors for the default design.
var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// NRGBA converts the color to the standard 8-bit non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// Hex returns the stable "#RRGGBBAA" serialization of the color.
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// ParseColor parses a hex color string. Supported forms: "RGB", "RRGGBB"
// and "RRGGBBAA", with or without a leading '#'. The second return value
// is false when the string is not a valid hex color.
func ParseColor(s string) (Color, bool) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(s) {
	case 3:
		if !parseHex(s[0:1], &r) || !parseHex(s[1:2], &g) || !parseHex(s[2:3], &b) {
			return Color{}, false
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if !parseHex(s[0:2], &r) || !parseHex(s[2:4], &g) || !parseHex(s[4:6], &b) {
			return Color{}, false
		}
	case 8:
		if !parseHex(s[0:2], &r) || !parseHex(s[2:4], &g) ||
			!parseHex(s[4:6], &b) || !parseHex(s[6:8], &a) {
			return Color{}, false
		}
	default:
		return Color{}, false
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
