package qrcode

import qr "github.com/skip2/go-qrcode"

// ErrorCorrectionLevel selects the redundancy of the QR symbol, trading
// payload capacity for damage tolerance.
type ErrorCorrectionLevel int

const (
	// Low recovers from roughly 7% symbol damage.
	Low ErrorCorrectionLevel = iota
	// Medium recovers from roughly 15% symbol damage.
	Medium
	// Quartile recovers from roughly 25% symbol damage.
	Quartile
	// Highest recovers from roughly 30% symbol damage.
	Highest
)

// DefaultLevel is used whenever a level is absent or unrecognized, both
// for fresh Documents and during settings load. Styled rendering (shapes,
// logo overlays) consumes part of the error budget, so the default leans
// toward more redundancy.
const DefaultLevel = Quartile

// Code returns the canonical single-character serialization code.
// The mapping Low/Medium/Quartile/Highest to "L"/"M"/"Q"/"H" is stable
// and part of the persisted settings format.
func (l ErrorCorrectionLevel) Code() string {
	switch l {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case Highest:
		return "H"
	}
	return DefaultLevel.Code()
}

// String returns a human-readable name for the level.
func (l ErrorCorrectionLevel) String() string {
	switch l {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case Quartile:
		return "quartile"
	case Highest:
		return "highest"
	}
	return "unknown"
}

// LevelFromCode maps a serialization code back to a level. Unknown codes
// fall back to DefaultLevel; loading never fails on a bad level.
func LevelFromCode(code string) ErrorCorrectionLevel {
	switch code {
	case "L":
		return Low
	case "M":
		return Medium
	case "Q":
		return Quartile
	case "H":
		return Highest
	}
	return DefaultLevel
}

// valid reports whether l is one of the four defined levels.
func (l ErrorCorrectionLevel) valid() bool {
	return l >= Low && l <= Highest
}

// recovery maps the level onto the encoder's recovery scale.
func (l ErrorCorrectionLevel) recovery() qr.RecoveryLevel {
	switch l {
	case Low:
		return qr.Low
	case Medium:
		return qr.Medium
	case Quartile:
		return qr.High
	case Highest:
		return qr.Highest
	}
	return DefaultLevel.recovery()
}
