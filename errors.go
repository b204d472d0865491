package qrcode

import "fmt"

// EncodingError reports that a payload cannot be represented as a QR
// symbol at the requested error-correction level. The usual cause is a
// payload larger than the capacity of the maximum symbol version.
type EncodingError struct {
	Size  int // payload size in bytes
	Level ErrorCorrectionLevel
	Err   error // underlying encoder error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("qrcode: cannot encode %d byte payload at level %s: %v", e.Size, e.Level, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// RenderError reports a failure to produce a render target: an invalid
// surface size, or an encoder failure while writing PNG, PDF or SVG bytes.
type RenderError struct {
	Target string // "image", "png", "pdf" or "svg"
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("qrcode: %s render failed: %v", e.Target, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// SettingsParseError reports that a settings document could not be parsed
// at the container level. Individual missing or malformed fields never
// produce this error; they fall back to defaults field by field.
type SettingsParseError struct {
	Err error
}

func (e *SettingsParseError) Error() string {
	return fmt.Sprintf("qrcode: invalid settings document: %v", e.Err)
}

func (e *SettingsParseError) Unwrap() error { return e.Err }
