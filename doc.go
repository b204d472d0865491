// Package qrcode renders styled QR codes and persists their configuration.
//
// # Overview
//
// qrcode wraps a QR symbol encoder with a document model: a Document owns
// the payload bytes, the error-correction level and a Design (colors,
// module shapes, optional logo), derives the module matrix from the first
// two, and renders the result to raster images, single-page PDFs and SVG.
// The whole configuration round-trips through a portable settings map and
// its JSON encoding.
//
// # Quick Start
//
//	doc := qrcode.New()
//	if err := doc.SetText("https://example.com"); err != nil {
//		log.Fatal(err)
//	}
//
//	// Raster output
//	png, _ := doc.PNG(512)
//
//	// Vector output
//	pdf, _ := doc.PDF(512)
//	svg, _ := doc.SVG(512)
//
//	// Persist and restore the configuration
//	data, _ := doc.JSON()
//	doc2, _ := qrcode.FromJSON(data)
//
// # Architecture
//
// The library is organized into:
//   - Model: Document, Design, ErrorCorrectionLevel, Matrix
//   - Geometry: Path, BuildPath (matrix to vector path)
//   - Backends: raster (fogleman/gg), PDF (gofpdf), SVG
//   - Persistence: Settings map and JSON round-trip
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: origin (0,0) at top-left,
// X increases right, Y increases down. The symbol is always square; render
// calls take a single side length.
//
// # Concurrency
//
// A Document is not internally synchronized. Mutations (Update, SetText,
// SetLevel) must not race with reads; the usual pattern is confinement to
// one owning goroutine. Render and export calls never mutate the Document.
package qrcode
