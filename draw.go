package qrcode

// Canvas is the 2D drawing-context protocol every render backend
// implements: fill a background rectangle, fill a foreground path.
// Implementations decide fill rule handling; paths emitted by BuildPath
// assume non-zero winding with reversed hole contours.
type Canvas interface {
	FillRect(x, y, w, h float64, c Color)
	FillPath(p *Path, c Color)
}

// Draw renders the Document into a Canvas at the given square size:
// background fill over the full rect, then the foreground path built
// from the current matrix. Draw never mutates Document state.
func (d *Document) Draw(c Canvas, size float64, opts ...RenderOption) {
	o := resolveRenderOptions(opts)
	d.draw(c, size, o)
}

func (d *Document) draw(c Canvas, size float64, o renderOptions) {
	design := o.designFor(d)
	c.FillRect(0, 0, size, size, design.Background)

	n := d.matrix.Side()
	if n == 0 || size <= 0 {
		return
	}

	// A quiet zone shrinks the symbol so the border is a whole number of
	// module widths at the rendered size.
	inner := size
	offset := 0.0
	if o.quietZone > 0 {
		edge := size / float64(n+2*o.quietZone)
		offset = edge * float64(o.quietZone)
		inner = size - 2*offset
	}

	path := BuildPath(d.matrix, inner, design)
	if offset > 0 {
		path = path.Translate(offset, offset)
	}
	c.FillPath(path, design.Foreground)
}
