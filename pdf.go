package qrcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

// pdfCanvas adapts a gofpdf document to the Canvas protocol. The path is
// replayed through the vectorizer surface (MoveTo, LineTo,
// CurveBezierCubicTo, ClosePath), so output stays fully vector.
type pdfCanvas struct {
	pdf *gofpdf.Fpdf
}

func (c pdfCanvas) setFill(col Color) {
	n := col.NRGBA()
	c.pdf.SetFillColor(int(n.R), int(n.G), int(n.B))
	c.pdf.SetAlpha(col.A, "Normal")
}

func (c pdfCanvas) FillRect(x, y, w, h float64, col Color) {
	c.setFill(col)
	c.pdf.Rect(x, y, w, h, "F")
}

func (c pdfCanvas) FillPath(p *Path, col Color) {
	c.setFill(col)
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			c.pdf.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			c.pdf.LineTo(e.Point.X, e.Point.Y)
		case CubicTo:
			c.pdf.CurveBezierCubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case Close:
			c.pdf.ClosePath()
		}
	}
	c.pdf.DrawPath("f")
}

// PDF renders the Document as a single-page vector PDF sized to size
// units at the call's resolution (default 72 units per inch, so one unit
// is one PDF point). Fails with *RenderError on invalid sizes or
// document assembly errors.
func (d *Document) PDF(size float64, opts ...RenderOption) ([]byte, error) {
	o := resolveRenderOptions(opts)
	if size <= 0 {
		return nil, &RenderError{Target: "pdf", Err: fmt.Errorf("invalid page size %v", size)}
	}
	page := size * 72 / o.resolution

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page, Ht: page},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	d.draw(pdfCanvas{pdf: pdf}, page, o)

	design := o.designFor(d)
	if design.Logo != nil && design.Logo.Image != nil {
		embedPDFLogo(pdf, design.Logo, page)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Target: "pdf", Err: err}
	}
	Logger().Debug("pdf rendered", "size", size, "resolution", o.resolution, "bytes", buf.Len())
	return buf.Bytes(), nil
}

// embedPDFLogo registers the logo as an embedded PNG image and places it
// at its normalized rect on the page.
func embedPDFLogo(pdf *gofpdf.Fpdf, logo *Logo, page float64) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, logo.Image); err != nil {
		return
	}
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("logo", imgOpts, &buf)

	nx, ny, nw, nh := logo.bounded()
	pdf.ImageOptions("logo", nx*page, ny*page, nw*page, nh*page, false, imgOpts, 0, "")
}
