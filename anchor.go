package glide

import (
	"fmt"
	"strconv"
	"strings"
)

// Anchor positions one end of a binding's region. Element is a fraction of
// the region's height (0 top, 1 bottom) and Viewport a fraction of the
// viewport height. The offset is reached when the element point meets the
// viewport point.
type Anchor struct {
	Element  float64
	Viewport float64
}

var (
	// AnchorTopBottom fires when the region's top enters from below.
	AnchorTopBottom = Anchor{Element: 0, Viewport: 1}
	// AnchorBottomTop fires when the region's bottom leaves at the top.
	AnchorBottomTop = Anchor{Element: 1, Viewport: 0}
	// AnchorTopTop fires when the region's top reaches the viewport top.
	AnchorTopTop = Anchor{Element: 0, Viewport: 0}
	// AnchorBottomBottom fires when the region's bottom reaches the viewport bottom.
	AnchorBottomBottom = Anchor{Element: 1, Viewport: 1}
)

// ParseAnchor parses "<element> <viewport>" where each side is top, center,
// bottom or a percentage such as "80%".
func ParseAnchor(s string) (Anchor, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Anchor{}, fmt.Errorf("parse anchor %q: want \"<element> <viewport>\"", s)
	}
	el, err := parseEdge(fields[0])
	if err != nil {
		return Anchor{}, fmt.Errorf("parse anchor %q: %w", s, err)
	}
	vp, err := parseEdge(fields[1])
	if err != nil {
		return Anchor{}, fmt.Errorf("parse anchor %q: %w", s, err)
	}
	return Anchor{Element: el, Viewport: vp}, nil
}

// MustAnchor is ParseAnchor for constant strings. It panics on error.
func MustAnchor(s string) Anchor {
	a, err := ParseAnchor(s)
	if err != nil {
		panic(err)
	}
	return a
}

func parseEdge(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "top":
		return 0, nil
	case "center":
		return 0.5, nil
	case "bottom":
		return 1, nil
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("bad percentage %q", s)
		}
		return v / 100, nil
	}
	return 0, fmt.Errorf("unknown edge %q", s)
}

// offset returns the scroll position at which a anchors a region with bounds
// r in a viewport of height vh.
func (a Anchor) offset(r Rect, vh float64) float64 {
	return r.Y + r.Height*a.Element - vh*a.Viewport
}

func (a Anchor) String() string {
	return edgeString(a.Element) + " " + edgeString(a.Viewport)
}

func edgeString(v float64) string {
	switch v {
	case 0:
		return "top"
	case 0.5:
		return "center"
	case 1:
		return "bottom"
	}
	return strconv.FormatFloat(v*100, 'f', -1, 64) + "%"
}
