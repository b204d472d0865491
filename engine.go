package qrcode

import (
	qr "github.com/skip2/go-qrcode"
)

// generateMatrix derives the module matrix for a payload at a level.
// The underlying encoder is deterministic: identical (payload, level)
// inputs always yield an identical matrix. An empty payload yields the
// empty matrix; a payload beyond the capacity of the largest symbol
// version yields an *EncodingError.
func generateMatrix(payload []byte, level ErrorCorrectionLevel) (Matrix, error) {
	if len(payload) == 0 {
		return Matrix{}, nil
	}

	code, err := qr.New(string(payload), level.recovery())
	if err != nil {
		return Matrix{}, &EncodingError{Size: len(payload), Level: level, Err: err}
	}

	// Bitmap() pads the symbol with a quiet-zone border; the matrix model
	// is the bare symbol, so strip it here. Quiet zones are a render-time
	// concern (see WithQuietZone).
	code.DisableBorder = true
	bmp := code.Bitmap()

	m := newMatrix(len(bmp))
	for row, line := range bmp {
		for col, on := range line {
			if on {
				m.set(row, col, true)
			}
		}
	}

	Logger().Debug("matrix generated",
		"payloadBytes", len(payload),
		"level", level.String(),
		"side", m.Side(),
	)
	return m, nil
}
