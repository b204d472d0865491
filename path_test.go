package qrcode

import "testing"

// polygonAreas returns the signed shoelace area of every polygonal
// subpath. Curve elements are not supported; callers use it on
// rect-only geometry.
func polygonAreas(p *Path) []float64 {
	var areas []float64
	var verts []Point
	flush := func() {
		if len(verts) >= 3 {
			sum := 0.0
			for i := range verts {
				a, b := verts[i], verts[(i+1)%len(verts)]
				sum += a.X*b.Y - b.X*a.Y
			}
			areas = append(areas, sum/2)
		}
		verts = verts[:0]
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			verts = append(verts, e.Point)
		case LineTo:
			verts = append(verts, e.Point)
		case Close:
			flush()
		}
	}
	flush()
	return areas
}

func TestPathRectWinding(t *testing.T) {
	p := NewPath()
	p.Rect(0, 0, 2, 3)
	p.RectReversed(10, 10, 2, 3)

	areas := polygonAreas(p)
	if len(areas) != 2 {
		t.Fatalf("subpath count = %d, want 2", len(areas))
	}
	if areas[0] != 6 {
		t.Errorf("Rect signed area = %v, want 6", areas[0])
	}
	if areas[1] != -6 {
		t.Errorf("RectReversed signed area = %v, want -6", areas[1])
	}
}

func TestPathBounds(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Path)
		want  [4]float64
	}{
		{
			name:  "rect",
			build: func(p *Path) { p.Rect(1, 2, 3, 4) },
			want:  [4]float64{1, 2, 4, 6},
		},
		{
			name:  "circle hull bounds are exact",
			build: func(p *Path) { p.Circle(5, 5, 2) },
			want:  [4]float64{3, 3, 7, 7},
		},
		{
			name: "two subpaths",
			build: func(p *Path) {
				p.Rect(0, 0, 1, 1)
				p.Rect(9, 9, 1, 1)
			},
			want: [4]float64{0, 0, 10, 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			minX, minY, maxX, maxY := p.Bounds()
			got := [4]float64{minX, minY, maxX, maxY}
			if got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}

	if minX, minY, maxX, maxY := NewPath().Bounds(); minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Error("empty path bounds should be all zeros")
	}
}

func TestPathTranslate(t *testing.T) {
	p := NewPath()
	p.RoundedRect(0, 0, 4, 4, 1)

	q := p.Translate(10, 20)
	if len(q.Elements()) != len(p.Elements()) {
		t.Fatalf("translate changed element count: %d != %d", len(q.Elements()), len(p.Elements()))
	}
	minX, minY, maxX, maxY := q.Bounds()
	if minX != 10 || minY != 20 || maxX != 14 || maxY != 24 {
		t.Errorf("translated bounds = (%v,%v)-(%v,%v), want (10,20)-(14,24)", minX, minY, maxX, maxY)
	}
}

func TestPathSubpathCount(t *testing.T) {
	p := NewPath()
	if p.SubpathCount() != 0 || !p.Empty() {
		t.Error("new path should be empty")
	}
	p.Rect(0, 0, 1, 1)
	p.Circle(5, 5, 1)
	p.RoundedRect(0, 0, 3, 3, 1)
	if got := p.SubpathCount(); got != 3 {
		t.Errorf("SubpathCount() = %d, want 3", got)
	}
}
