package qrcode

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
)

// Design holds the presentational settings applied on top of the module
// matrix during rendering. The zero value renders identically to
// DefaultDesign: black square modules on a white background, no logo.
type Design struct {
	// Foreground fills the modules. The zero Color means black.
	Foreground Color
	// Background fills the full render rect. The zero Color means white.
	Background Color
	// PixelShape styles the data modules.
	PixelShape PixelShape
	// EyeShape styles the three locator eyes.
	EyeShape EyeShape
	// Logo is an optional overlay drawn over the rendered symbol.
	Logo *Logo
}

// Logo places an overlay image at a normalized position inside the
// rendered symbol. Coordinates and sizes are fractions of the render
// size in [0, 1], so a logo placement is resolution independent.
type Logo struct {
	X, Y          float64
	Width, Height float64
	Image         image.Image
}

// DefaultDesign returns the design every Document starts with.
func DefaultDesign() Design {
	return Design{
		Foreground: Black,
		Background: White,
		PixelShape: PixelSquare,
		EyeShape:   EyeSquare,
	}
}

// normalized substitutes defaults for zero-value colors, so that a
// zero Design and DefaultDesign render the same output.
func (d Design) normalized() Design {
	if d.Foreground == (Color{}) {
		d.Foreground = Black
	}
	if d.Background == (Color{}) {
		d.Background = White
	}
	return d
}

// bounded clamps the logo rect to the unit square.
func (l *Logo) bounded() (x, y, w, h float64) {
	x = min(max(l.X, 0), 1)
	y = min(max(l.Y, 0), 1)
	w = min(max(l.Width, 0), 1-x)
	h = min(max(l.Height, 0), 1-y)
	return
}

// settings projects the design into its portable map form. Colors
// serialize as "#RRGGBBAA" hex, shapes as their names, the logo as a
// nested map with an optional base64 PNG image.
func (d Design) settings() map[string]any {
	d = d.normalized()
	m := map[string]any{
		"foreground": d.Foreground.Hex(),
		"background": d.Background.Hex(),
		"pixelShape": d.PixelShape.String(),
		"eyeShape":   d.EyeShape.String(),
	}
	if d.Logo != nil {
		logo := map[string]any{
			"x":      d.Logo.X,
			"y":      d.Logo.Y,
			"width":  d.Logo.Width,
			"height": d.Logo.Height,
		}
		if d.Logo.Image != nil {
			var buf bytes.Buffer
			if err := png.Encode(&buf, d.Logo.Image); err == nil {
				logo["image"] = base64.StdEncoding.EncodeToString(buf.Bytes())
			}
		}
		m["logo"] = logo
	}
	return m
}

// designFromSettings loads a design from its map form. Every field loads
// independently: a missing, mistyped or unparsable field keeps its
// default and never aborts the load.
func designFromSettings(m map[string]any) Design {
	d := DefaultDesign()
	if m == nil {
		return d
	}

	if s, ok := stringField(m, "foreground"); ok {
		if c, ok := ParseColor(s); ok {
			d.Foreground = c
		}
	}
	if s, ok := stringField(m, "background"); ok {
		if c, ok := ParseColor(s); ok {
			d.Background = c
		}
	}
	if s, ok := stringField(m, "pixelShape"); ok {
		d.PixelShape = pixelShapeFromName(s)
	}
	if s, ok := stringField(m, "eyeShape"); ok {
		d.EyeShape = eyeShapeFromName(s)
	}

	if lm, ok := mapField(m, "logo"); ok {
		logo := &Logo{}
		logo.X, _ = floatField(lm, "x")
		logo.Y, _ = floatField(lm, "y")
		logo.Width, _ = floatField(lm, "width")
		logo.Height, _ = floatField(lm, "height")
		if s, ok := stringField(lm, "image"); ok {
			if raw, err := base64.StdEncoding.DecodeString(s); err == nil {
				if img, err := png.Decode(bytes.NewReader(raw)); err == nil {
					logo.Image = img
				}
			}
		}
		d.Logo = logo
	}
	return d
}

// equal compares two designs field for field. Logo images compare by
// presence and placement, not pixel content.
func (d Design) equal(o Design) bool {
	d, o = d.normalized(), o.normalized()
	if d.Foreground != o.Foreground || d.Background != o.Background {
		return false
	}
	if d.PixelShape != o.PixelShape || d.EyeShape != o.EyeShape {
		return false
	}
	if (d.Logo == nil) != (o.Logo == nil) {
		return false
	}
	if d.Logo != nil {
		if d.Logo.X != o.Logo.X || d.Logo.Y != o.Logo.Y ||
			d.Logo.Width != o.Logo.Width || d.Logo.Height != o.Logo.Height {
			return false
		}
		if (d.Logo.Image == nil) != (o.Logo.Image == nil) {
			return false
		}
	}
	return true
}
