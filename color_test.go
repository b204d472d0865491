package qrcode

import "testing"

func TestColorHexRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		hex  string
	}{
		{"black", "#000000FF"},
		{"white", "#FFFFFFFF"},
		{"brand color", "#1A2B3CFF"},
		{"translucent", "#FF000080"},
		{"transparent", "#00000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ParseColor(tt.hex)
			if !ok {
				t.Fatalf("ParseColor(%q) failed", tt.hex)
			}
			if got := c.Hex(); got != tt.hex {
				t.Errorf("round trip = %q, want %q", got, tt.hex)
			}
		})
	}
}

func TestParseColorForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"short form", "#F00", "#FF0000FF", true},
		{"six digits", "#336699", "#336699FF", true},
		{"no hash", "336699", "#336699FF", true},
		{"eight digits", "#33669980", "#33669980", true},
		{"empty", "", "", false},
		{"bad length", "#1234", "", false},
		{"non hex", "#GGHHII", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ParseColor(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && c.Hex() != tt.want {
				t.Errorf("ParseColor(%q).Hex() = %q, want %q", tt.input, c.Hex(), tt.want)
			}
		})
	}
}

func TestColorNRGBA(t *testing.T) {
	n := (Color{R: 1, G: 0.5, B: 0, A: 1}).NRGBA()
	if n.R != 255 || n.B != 0 || n.A != 255 {
		t.Errorf("unexpected NRGBA: %+v", n)
	}
	if n.G != 127 && n.G != 128 {
		t.Errorf("G = %d, want 127 or 128", n.G)
	}

	// Out-of-range components clamp instead of wrapping.
	hot := (Color{R: 2, G: -1, B: 0, A: 1}).NRGBA()
	if hot.R != 255 || hot.G != 0 {
		t.Errorf("clamping failed: %+v", hot)
	}
}
