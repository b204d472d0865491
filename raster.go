package qrcode

import (
	"bytes"
	"fmt"
	"image"
	stddraw "image/draw"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// rasterCanvas adapts a fogleman/gg drawing context to the Canvas
// protocol.
type rasterCanvas struct {
	dc *gg.Context
}

func (r rasterCanvas) FillRect(x, y, w, h float64, c Color) {
	r.dc.SetColor(c.NRGBA())
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.Fill()
}

func (r rasterCanvas) FillPath(p *Path, c Color) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			r.dc.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			r.dc.LineTo(e.Point.X, e.Point.Y)
		case CubicTo:
			r.dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case Close:
			r.dc.ClosePath()
		}
	}
	r.dc.SetColor(c.NRGBA())
	r.dc.SetFillRule(gg.FillRuleWinding)
	r.dc.Fill()
}

// Image renders the Document into an offscreen surface of
// size*scale device pixels per side and returns the raster.
// Fails with *RenderError when the surface size is not positive.
func (d *Document) Image(size int, opts ...RenderOption) (image.Image, error) {
	o := resolveRenderOptions(opts)
	px := int(math.Round(float64(size) * o.scale))
	if px <= 0 {
		return nil, &RenderError{Target: "image", Err: fmt.Errorf("invalid surface size %d", px)}
	}

	dc := gg.NewContext(px, px)
	d.draw(rasterCanvas{dc: dc}, float64(px), o)

	img := dc.Image()
	design := o.designFor(d)
	if design.Logo != nil && design.Logo.Image != nil {
		overlayLogo(img, design.Logo, px)
	}

	Logger().Debug("raster rendered", "size", size, "scale", o.scale, "pixels", px)
	return img, nil
}

// overlayLogo scales the logo into its normalized rect and composites it
// over the rendered symbol, preserving the logo's aspect ratio.
func overlayLogo(img image.Image, logo *Logo, px int) {
	dst, ok := img.(stddraw.Image)
	if !ok {
		return
	}
	nx, ny, nw, nh := logo.bounded()
	w := int(nw * float64(px))
	h := int(nh * float64(px))
	if w <= 0 || h <= 0 {
		return
	}

	thumb := resize.Thumbnail(uint(w), uint(h), logo.Image, resize.Lanczos3)
	tb := thumb.Bounds()

	// Center the aspect-fitted thumbnail inside the placement rect.
	x := int(nx*float64(px)) + (w-tb.Dx())/2
	y := int(ny*float64(px)) + (h-tb.Dy())/2
	rect := image.Rect(x, y, x+tb.Dx(), y+tb.Dy())
	xdraw.Draw(dst, rect, thumb, tb.Min, xdraw.Over)
}

// PNG renders the Document and encodes it as PNG bytes.
func (d *Document) PNG(size int, opts ...RenderOption) ([]byte, error) {
	img, err := d.Image(size, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &RenderError{Target: "png", Err: err}
	}
	return buf.Bytes(), nil
}

// Image is a convenience that builds a Document from text at
// DefaultLevel and renders it directly with the default design.
func Image(text string, size int) (image.Image, error) {
	d, err := NewWithText(text)
	if err != nil {
		return nil, err
	}
	return d.Image(size)
}
