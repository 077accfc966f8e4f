package glide

import "testing"

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in   string
		want Anchor
	}{
		{"top bottom", AnchorTopBottom},
		{"bottom top", AnchorBottomTop},
		{"top top", AnchorTopTop},
		{"bottom bottom", AnchorBottomBottom},
		{"center center", Anchor{Element: 0.5, Viewport: 0.5}},
		{"top 80%", Anchor{Element: 0, Viewport: 0.8}},
		{"25% 50%", Anchor{Element: 0.25, Viewport: 0.5}},
		{"  TOP   Bottom ", AnchorTopBottom},
	}
	for _, tt := range tests {
		got, err := ParseAnchor(tt.in)
		if err != nil {
			t.Errorf("ParseAnchor(%q): %v", tt.in, err)
			continue
		}
		if !approxEqual(got.Element, tt.want.Element, epsilon) || !approxEqual(got.Viewport, tt.want.Viewport, epsilon) {
			t.Errorf("ParseAnchor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseAnchorErrors(t *testing.T) {
	for _, in := range []string{"", "top", "top bottom left", "middle top", "top x%", "top 80"} {
		if _, err := ParseAnchor(in); err == nil {
			t.Errorf("ParseAnchor(%q) should fail", in)
		}
	}
}

func TestMustAnchorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustAnchor("nowhere")
}

func TestAnchorString(t *testing.T) {
	tests := []struct {
		a    Anchor
		want string
	}{
		{AnchorTopBottom, "top bottom"},
		{AnchorBottomTop, "bottom top"},
		{Anchor{Element: 0.5, Viewport: 0.8}, "center 80%"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAnchorOffset(t *testing.T) {
	r := Rect{Y: 1000, Height: 400}
	tests := []struct {
		a    Anchor
		want float64
	}{
		{AnchorTopBottom, 400},       // 1000 - 600
		{AnchorBottomTop, 1400},      // 1400 - 0
		{AnchorTopTop, 1000},         // 1000 - 0
		{AnchorBottomBottom, 800},    // 1400 - 600
		{MustAnchor("top 80%"), 520}, // 1000 - 480
		{MustAnchor("center center"), 900},
	}
	for _, tt := range tests {
		if got := tt.a.offset(r, 600); !approxEqual(got, tt.want, epsilon) {
			t.Errorf("%v offset = %f, want %f", tt.a, got, tt.want)
		}
	}
}
