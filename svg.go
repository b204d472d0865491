package qrcode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"strconv"
)

// svgCanvas adapts an SVG byte buffer to the Canvas protocol. Rects
// become <rect> elements; the foreground path becomes a single <path>
// with fill-rule nonzero.
type svgCanvas struct {
	buf *bytes.Buffer
}

func (c svgCanvas) FillRect(x, y, w, h float64, col Color) {
	fmt.Fprintf(c.buf, `<rect x="%s" y="%s" width="%s" height="%s" %s/>`,
		svgNum(x), svgNum(y), svgNum(w), svgNum(h), svgFill(col))
	c.buf.WriteByte('\n')
}

func (c svgCanvas) FillPath(p *Path, col Color) {
	if p.Empty() {
		return
	}
	var d bytes.Buffer
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			fmt.Fprintf(&d, "M%s %s", svgNum(e.Point.X), svgNum(e.Point.Y))
		case LineTo:
			fmt.Fprintf(&d, "L%s %s", svgNum(e.Point.X), svgNum(e.Point.Y))
		case CubicTo:
			fmt.Fprintf(&d, "C%s %s %s %s %s %s",
				svgNum(e.Control1.X), svgNum(e.Control1.Y),
				svgNum(e.Control2.X), svgNum(e.Control2.Y),
				svgNum(e.Point.X), svgNum(e.Point.Y))
		case Close:
			d.WriteByte('Z')
		}
	}
	fmt.Fprintf(c.buf, `<path d="%s" fill-rule="nonzero" %s/>`, d.String(), svgFill(col))
	c.buf.WriteByte('\n')
}

// svgNum formats a coordinate with minimal digits.
func svgNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// svgFill renders fill attributes; opacity is emitted only when the
// color is not fully opaque.
func svgFill(c Color) string {
	n := c.NRGBA()
	attr := fmt.Sprintf(`fill="#%02X%02X%02X"`, n.R, n.G, n.B)
	if n.A != 255 {
		attr += fmt.Sprintf(` fill-opacity="%s"`, svgNum(float64(n.A)/255))
	}
	return attr
}

// SVG renders the Document as a scalable vector graphic sized to size
// units, with the same geometry the raster and PDF targets fill.
func (d *Document) SVG(size float64, opts ...RenderOption) ([]byte, error) {
	o := resolveRenderOptions(opts)
	if size <= 0 {
		return nil, &RenderError{Target: "svg", Err: fmt.Errorf("invalid size %v", size)}
	}

	var buf bytes.Buffer
	s := svgNum(size)
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`, s, s, s, s)
	buf.WriteByte('\n')

	d.draw(svgCanvas{buf: &buf}, size, o)

	design := o.designFor(d)
	if design.Logo != nil && design.Logo.Image != nil {
		embedSVGLogo(&buf, design.Logo, size)
	}

	buf.WriteString("</svg>\n")
	Logger().Debug("svg rendered", "size", size, "bytes", buf.Len())
	return buf.Bytes(), nil
}

// embedSVGLogo inlines the logo as a base64 PNG data URI.
func embedSVGLogo(buf *bytes.Buffer, logo *Logo, size float64) {
	var img bytes.Buffer
	if err := png.Encode(&img, logo.Image); err != nil {
		return
	}
	nx, ny, nw, nh := logo.bounded()
	fmt.Fprintf(buf,
		`<image x="%s" y="%s" width="%s" height="%s" preserveAspectRatio="xMidYMid meet" href="data:image/png;base64,%s"/>`,
		svgNum(nx*size), svgNum(ny*size), svgNum(nw*size), svgNum(nh*size),
		base64.StdEncoding.EncodeToString(img.Bytes()))
	buf.WriteByte('\n')
}
