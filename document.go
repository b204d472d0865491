package qrcode

import "bytes"

// Message is anything that can produce QR payload bytes: URLs, Wi-Fi
// credentials, contact cards. See the message package for ready-made
// producers.
type Message interface {
	PayloadBytes() []byte
}

// Document is the aggregate owning one payload, one error-correction
// level, one Design and the module matrix derived from the first two.
//
// Payload or level mutations regenerate the matrix synchronously before
// returning; when regeneration fails the Document is left unchanged.
// Design mutations never touch the matrix.
type Document struct {
	payload []byte
	level   ErrorCorrectionLevel
	design  Design
	matrix  Matrix
}

// New creates an empty Document: zero-length payload, DefaultLevel and
// the default design.
func New() *Document {
	return &Document{
		level:  DefaultLevel,
		design: DefaultDesign(),
	}
}

// NewWithText creates a Document from a UTF-8 string at DefaultLevel.
func NewWithText(text string) (*Document, error) {
	d := New()
	if err := d.SetText(text); err != nil {
		return nil, err
	}
	return d, nil
}

// Update replaces the payload and level and regenerates the matrix.
// On *EncodingError the Document keeps its previous payload, level and
// matrix. Invalid levels are coerced to DefaultLevel.
func (d *Document) Update(payload []byte, level ErrorCorrectionLevel) error {
	if !level.valid() {
		level = DefaultLevel
	}
	m, err := generateMatrix(payload, level)
	if err != nil {
		return err
	}
	d.payload = append([]byte(nil), payload...)
	d.level = level
	d.matrix = m
	return nil
}

// UpdateMessage replaces the payload with the bytes produced by a
// Message, following Update otherwise.
func (d *Document) UpdateMessage(msg Message, level ErrorCorrectionLevel) error {
	return d.Update(msg.PayloadBytes(), level)
}

// SetText replaces the payload with the UTF-8 bytes of text, keeping the
// current level.
func (d *Document) SetText(text string) error {
	return d.Update([]byte(text), d.level)
}

// SetLevel changes the error-correction level, keeping the payload.
func (d *Document) SetLevel(level ErrorCorrectionLevel) error {
	return d.Update(d.payload, level)
}

// Payload returns a copy of the current payload bytes.
func (d *Document) Payload() []byte {
	return append([]byte(nil), d.payload...)
}

// Level returns the current error-correction level.
func (d *Document) Level() ErrorCorrectionLevel { return d.level }

// Design returns the current design.
func (d *Document) Design() Design { return d.design }

// SetDesign replaces the design. The matrix is untouched; only rendering
// is affected.
func (d *Document) SetDesign(design Design) { d.design = design }

// Matrix returns the derived module matrix.
func (d *Document) Matrix() Matrix { return d.matrix }

// PixelSize returns the matrix side length. It is the advisory minimum
// render dimension: below it, modules fall under one device pixel.
func (d *Document) PixelSize() int { return d.matrix.Side() }

// Equal reports whether two documents agree in payload, level and design.
// The derived matrix is excluded: equal inputs imply an equal matrix.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	return bytes.Equal(d.payload, o.payload) &&
		d.level == o.level &&
		d.design.equal(o.design)
}
