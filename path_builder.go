package qrcode

// eyeSide is the side length of a locator eye in modules.
const eyeSide = 7

// inEye reports whether the module at (row, col) lies inside one of the
// three locator eyes of an N-module symbol: top-left, top-right and
// bottom-left 7x7 blocks.
func inEye(row, col, n int) bool {
	if n < eyeSide {
		return false
	}
	top := row < eyeSide
	left := col < eyeSide
	if top && left {
		return true
	}
	if top && col >= n-eyeSide {
		return true
	}
	return left && row >= n-eyeSide
}

// BuildPath converts a module matrix into a fill-able vector path of the
// given side length, applying the design's shape selectors.
//
// The three locator eyes are emitted as dedicated ring-and-core geometry;
// every other on-module is emitted per the pixel shape. For PixelSquare,
// horizontally adjacent modules merge into single rectangles purely to
// shrink the path; merging never changes the covered pixel set.
//
// BuildPath is pure and deterministic: identical inputs yield an
// identical element sequence. There is no minimum size; targetSize below
// the module count produces valid sub-pixel geometry.
func BuildPath(m Matrix, targetSize float64, d Design) *Path {
	p := NewPath()
	n := m.Side()
	if n == 0 || targetSize <= 0 {
		return p
	}
	d = d.normalized()
	e := targetSize / float64(n)

	if n >= eyeSide {
		d.EyeShape.emit(p, 0, 0, e)
		d.EyeShape.emit(p, float64(n-eyeSide)*e, 0, e)
		d.EyeShape.emit(p, 0, float64(n-eyeSide)*e, e)
	}

	for row := 0; row < n; row++ {
		y := float64(row) * e
		for col := 0; col < n; col++ {
			if !m.At(row, col) || inEye(row, col, n) {
				continue
			}
			if d.PixelShape == PixelSquare {
				run := 1
				for col+run < n && m.At(row, col+run) && !inEye(row, col+run, n) {
					run++
				}
				p.Rect(float64(col)*e, y, float64(run)*e, e)
				col += run - 1
				continue
			}
			d.PixelShape.emit(p, float64(col)*e, y, e)
		}
	}

	Logger().Debug("path built",
		"side", n,
		"targetSize", targetSize,
		"subpaths", p.SubpathCount(),
	)
	return p
}
