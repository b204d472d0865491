package qrcode

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// kappa is the control-point distance for approximating a quarter circle
// with a cubic Bezier curve.
const kappa = 0.5522847498

// Path is a fill-able vector path. Subpaths are closed contours; holes
// (the gap ring inside a locator eye) are emitted with reversed winding
// so the non-zero fill rule renders them correctly on every backend.
type Path struct {
	elements []PathElement
	start    Point // starting point of current subpath
	current  Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 64)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// SubpathCount returns the number of subpaths (MoveTo elements).
func (p *Path) SubpathCount() int {
	n := 0
	for _, e := range p.elements {
		if _, ok := e.(MoveTo); ok {
			n++
		}
	}
	return n
}

// Rect adds an axis-aligned rectangle as a closed subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// RectReversed adds a rectangle with reversed winding, punching a hole
// into an enclosing contour under the non-zero fill rule.
func (p *Path) RectReversed(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x, y+h)
	p.LineTo(x+w, y+h)
	p.LineTo(x+w, y)
	p.Close()
}

// RoundedRect adds a rectangle with corner radius r.
func (p *Path) RoundedRect(x, y, w, h, r float64) {
	r = min(r, min(w, h)/2)
	k := kappa * r

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
	p.Close()
}

// RoundedRectReversed adds a rounded rectangle with reversed winding.
func (p *Path) RoundedRectReversed(x, y, w, h, r float64) {
	r = min(r, min(w, h)/2)
	k := kappa * r

	p.MoveTo(x+r, y)
	p.CubicTo(x+r-k, y, x, y+r-k, x, y+r)
	p.LineTo(x, y+h-r)
	p.CubicTo(x, y+h-r+k, x+r-k, y+h, x+r, y+h)
	p.LineTo(x+w-r, y+h)
	p.CubicTo(x+w-r+k, y+h, x+w, y+h-r+k, x+w, y+h-r)
	p.LineTo(x+w, y+r)
	p.CubicTo(x+w, y+r-k, x+w-r+k, y, x+w-r, y)
	p.Close()
}

// Circle adds a circle of radius r centered at (cx, cy).
func (p *Path) Circle(cx, cy, r float64) {
	k := kappa * r

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.CubicTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.CubicTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.CubicTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.Close()
}

// CircleReversed adds a circle with reversed winding.
func (p *Path) CircleReversed(cx, cy, r float64) {
	k := kappa * r

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
	p.CubicTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
	p.CubicTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
	p.CubicTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	p.Close()
}

// Translate returns a copy of the path shifted by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	d := Pt(dx, dy)
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := e.Point.Add(d)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := e.Point.Add(d)
			result.LineTo(pt.X, pt.Y)
		case CubicTo:
			c1 := e.Control1.Add(d)
			c2 := e.Control2.Add(d)
			pt := e.Point.Add(d)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Bounds returns the bounding box of the path as (minX, minY, maxX, maxY).
// Curve bounds use the control hull; for the geometry emitted by BuildPath
// (circles and rounded rects with on-curve axis extremes) the hull bounds
// are exact. An empty path returns all zeros.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	first := true
	grow := func(pt Point) {
		if first {
			minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
			first = false
			return
		}
		minX = min(minX, pt.X)
		minY = min(minY, pt.Y)
		maxX = max(maxX, pt.X)
		maxY = max(maxY, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case CubicTo:
			grow(e.Control1)
			grow(e.Control2)
			grow(e.Point)
		}
	}
	return
}
