package qrcode

// RenderOption configures a single render or export call. Options never
// mutate the Document; WithDesign in particular overrides the stored
// design for one call only.
//
// Example:
//
//	img, err := doc.Image(512, qrcode.WithScale(2))
//	pdf, err := doc.PDF(300, qrcode.WithResolution(300))
type RenderOption func(*renderOptions)

// renderOptions holds the resolved per-call configuration.
type renderOptions struct {
	design     *Design
	scale      float64
	resolution float64
	quietZone  int
}

// defaultRenderOptions returns the per-call defaults.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		scale:      1,
		resolution: 72,
	}
}

func resolveRenderOptions(opts []RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale <= 0 {
		o.scale = 1
	}
	if o.resolution <= 0 {
		o.resolution = 72
	}
	if o.quietZone < 0 {
		o.quietZone = 0
	}
	return o
}

// WithDesign overrides the Document's stored design for this call.
func WithDesign(d Design) RenderOption {
	return func(o *renderOptions) {
		o.design = &d
	}
}

// WithScale sets the device-pixel scale factor for raster output: an
// Image or PNG call of size s renders s*scale pixels per side.
func WithScale(scale float64) RenderOption {
	return func(o *renderOptions) {
		o.scale = scale
	}
}

// WithResolution sets the PDF resolution in units per inch. The default
// of 72 maps one size unit to one PDF point.
func WithResolution(dpi float64) RenderOption {
	return func(o *renderOptions) {
		o.resolution = dpi
	}
}

// WithQuietZone surrounds the symbol with the given number of
// background-filled module widths. The QR standard recommends 4.
func WithQuietZone(modules int) RenderOption {
	return func(o *renderOptions) {
		o.quietZone = modules
	}
}

// design resolves the effective design for a call against the document's
// stored design.
func (o renderOptions) designFor(d *Document) Design {
	if o.design != nil {
		return o.design.normalized()
	}
	return d.design.normalized()
}
