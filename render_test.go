package qrcode

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

// recordingCanvas captures Canvas calls for protocol-level assertions.
type recordingCanvas struct {
	rects  []Color
	paths  []*Path
	colors []Color
}

func (r *recordingCanvas) FillRect(x, y, w, h float64, c Color) {
	r.rects = append(r.rects, c)
}

func (r *recordingCanvas) FillPath(p *Path, c Color) {
	r.paths = append(r.paths, p)
	r.colors = append(r.colors, c)
}

var _ Canvas = (*recordingCanvas)(nil)

func TestDrawProtocol(t *testing.T) {
	doc, err := NewWithText("draw")
	if err != nil {
		t.Fatal(err)
	}

	var c recordingCanvas
	doc.Draw(&c, 100)

	if len(c.rects) != 1 {
		t.Fatalf("background fills = %d, want 1", len(c.rects))
	}
	if c.rects[0] != White {
		t.Errorf("background = %v, want white", c.rects[0])
	}
	if len(c.paths) != 1 || c.paths[0].Empty() {
		t.Fatal("foreground path missing")
	}
	if c.colors[0] != Black {
		t.Errorf("foreground = %v, want black", c.colors[0])
	}
}

func TestDrawWithDesignDoesNotMutate(t *testing.T) {
	doc, err := NewWithText("override")
	if err != nil {
		t.Fatal(err)
	}
	red, _ := ParseColor("#FF0000FF")

	var c recordingCanvas
	doc.Draw(&c, 50, WithDesign(Design{Foreground: red}))

	if c.colors[0] != red {
		t.Errorf("per-call design not applied: %v", c.colors[0])
	}
	if doc.Design().Foreground != Black {
		t.Error("per-call design leaked into the document")
	}
}

func TestDrawQuietZone(t *testing.T) {
	doc, err := NewWithText("quiet")
	if err != nil {
		t.Fatal(err)
	}

	var c recordingCanvas
	doc.Draw(&c, 100, WithQuietZone(4))

	minX, minY, maxX, maxY := c.paths[0].Bounds()
	n := float64(doc.PixelSize())
	offset := 100 / (n + 8) * 4
	const eps = 1e-9
	if minX < offset-eps || minY < offset-eps || maxX > 100-offset+eps || maxY > 100-offset+eps {
		t.Errorf("quiet zone violated: bounds (%v,%v)-(%v,%v), offset %v", minX, minY, maxX, maxY, offset)
	}
}

func TestDrawEmptyDocument(t *testing.T) {
	var c recordingCanvas
	New().Draw(&c, 100)
	if len(c.rects) != 1 {
		t.Error("empty document should still fill the background")
	}
	if len(c.paths) != 0 {
		t.Error("empty document should not emit a foreground path")
	}
}

func TestImageSizeAndScale(t *testing.T) {
	doc, err := NewWithText("raster")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		size int
		opts []RenderOption
		want int
	}{
		{"plain", 64, nil, 64},
		{"2x scale", 64, []RenderOption{WithScale(2)}, 128},
		{"fractional scale", 100, []RenderOption{WithScale(0.5)}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := doc.Image(tt.size, tt.opts...)
			if err != nil {
				t.Fatalf("Image: %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.want || b.Dy() != tt.want {
				t.Errorf("bounds = %v, want %dx%d", b, tt.want, tt.want)
			}
		})
	}
}

func TestImageInvalidSize(t *testing.T) {
	doc := New()
	_, err := doc.Image(0)
	var renderErr *RenderError
	if !errors.As(err, &renderErr) {
		t.Errorf("error = %v, want *RenderError", err)
	}
}

func TestImageCorners(t *testing.T) {
	// With the default design and no quiet zone, the top-left eye makes
	// the corner pixel foreground; the bottom-right corner stays
	// background.
	doc, err := NewWithText("corners")
	if err != nil {
		t.Fatal(err)
	}
	img, err := doc.Image(210)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if r, g, b, _ := img.At(2, 2).RGBA(); r != 0 || g != 0 || b != 0 {
		t.Error("top-left eye ring should be foreground black")
	}
	// Cell (1,1) is the gap ring of the finder pattern, always off.
	if r, _, _, _ := img.At(15, 15).RGBA(); r != 0xFFFF {
		t.Error("finder gap should be background white")
	}
}

func TestImageLogoOverlay(t *testing.T) {
	doc, err := NewWithText("logo")
	if err != nil {
		t.Fatal(err)
	}
	logo := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			logo.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	d := DefaultDesign()
	d.Logo = &Logo{X: 0.4, Y: 0.4, Width: 0.2, Height: 0.2, Image: logo}
	doc.SetDesign(d)

	img, err := doc.Image(100)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	r, _, _, _ := img.At(50, 50).RGBA()
	if r != 0xFFFF {
		t.Error("center pixel should show the red logo")
	}
}

func TestPNGSignature(t *testing.T) {
	doc, err := NewWithText("png")
	if err != nil {
		t.Fatal(err)
	}
	data, err := doc.PNG(64)
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output is not a PNG stream")
	}
}

func TestPackageLevelImage(t *testing.T) {
	img, err := Image("convenience", 64)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestPDFOutput(t *testing.T) {
	doc, err := NewWithText("pdf")
	if err != nil {
		t.Fatal(err)
	}
	data, err := doc.PDF(210)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF stream")
	}

	// A resolution change rescales the page but must still produce a
	// valid document.
	hi, err := doc.PDF(600, WithResolution(300))
	if err != nil {
		t.Fatalf("PDF at 300dpi: %v", err)
	}
	if len(hi) == 0 {
		t.Error("high resolution output is empty")
	}

	if _, err := doc.PDF(0); err == nil {
		t.Error("zero size should fail")
	}
}

func TestSVGOutput(t *testing.T) {
	doc, err := NewWithText("svg")
	if err != nil {
		t.Fatal(err)
	}
	data, err := doc.SVG(210)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	s := string(data)
	for _, want := range []string{"<svg", "</svg>", "<rect", "<path d=", `fill-rule="nonzero"`} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("SVG output missing %q:\n%s", want, s[:min(len(s), 200)])
		}
	}
}
