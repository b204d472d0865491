package qrcode

// PixelShape selects the geometry emitted for an "on" data module.
type PixelShape int

const (
	// PixelSquare fills the whole module cell. Adjacent cells in a row
	// are merged into a single rectangle.
	PixelSquare PixelShape = iota
	// PixelRounded fills the cell with a rounded square.
	PixelRounded
	// PixelCircle fills the cell with an inscribed circle.
	PixelCircle
	// PixelDot draws a smaller centered dot, leaving a visible gap
	// between modules.
	PixelDot
)

// String returns the stable serialization name of the shape.
func (s PixelShape) String() string {
	switch s {
	case PixelSquare:
		return "square"
	case PixelRounded:
		return "rounded"
	case PixelCircle:
		return "circle"
	case PixelDot:
		return "dot"
	}
	return PixelSquare.String()
}

// pixelShapeFromName maps a serialized name back to a shape. Unknown
// names fall back to PixelSquare.
func pixelShapeFromName(name string) PixelShape {
	switch name {
	case "square":
		return PixelSquare
	case "rounded":
		return PixelRounded
	case "circle":
		return PixelCircle
	case "dot":
		return PixelDot
	}
	return PixelSquare
}

// emit appends the geometry for one on-cell with top-left corner (x, y)
// and edge length e. Every shape stays strictly inside its cell, so the
// covered cell set never depends on the shape choice.
func (s PixelShape) emit(p *Path, x, y, e float64) {
	switch s {
	case PixelRounded:
		p.RoundedRect(x, y, e, e, e*0.3)
	case PixelCircle:
		p.Circle(x+e/2, y+e/2, e/2)
	case PixelDot:
		p.Circle(x+e/2, y+e/2, e*0.35)
	default:
		p.Rect(x, y, e, e)
	}
}

// EyeShape selects the geometry emitted for a 7x7 locator eye: an outer
// ring one module thick plus a 3x3 core.
type EyeShape int

const (
	// EyeSquare draws the canonical square ring and core.
	EyeSquare EyeShape = iota
	// EyeRounded draws a rounded ring and core.
	EyeRounded
	// EyeCircle draws concentric circles.
	EyeCircle
)

// String returns the stable serialization name of the shape.
func (s EyeShape) String() string {
	switch s {
	case EyeSquare:
		return "square"
	case EyeRounded:
		return "rounded"
	case EyeCircle:
		return "circle"
	}
	return EyeSquare.String()
}

// eyeShapeFromName maps a serialized name back to a shape. Unknown names
// fall back to EyeSquare.
func eyeShapeFromName(name string) EyeShape {
	switch name {
	case "square":
		return EyeSquare
	case "rounded":
		return EyeRounded
	case "circle":
		return EyeCircle
	}
	return EyeSquare
}

// emit appends the geometry for one eye with top-left corner (x, y) and
// module edge length e. The gap between ring and core is a reversed
// contour; see Path.
func (s EyeShape) emit(p *Path, x, y, e float64) {
	switch s {
	case EyeRounded:
		p.RoundedRect(x, y, 7*e, 7*e, 2*e)
		p.RoundedRectReversed(x+e, y+e, 5*e, 5*e, 1.5*e)
		p.RoundedRect(x+2*e, y+2*e, 3*e, 3*e, e)
	case EyeCircle:
		cx, cy := x+3.5*e, y+3.5*e
		p.Circle(cx, cy, 3.5*e)
		p.CircleReversed(cx, cy, 2.5*e)
		p.Circle(cx, cy, 1.5*e)
	default:
		p.Rect(x, y, 7*e, 7*e)
		p.RectReversed(x+e, y+e, 5*e, 5*e)
		p.Rect(x+2*e, y+2*e, 3*e, 3*e)
	}
}
