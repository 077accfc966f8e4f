package glide

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// rgba converts to a premultiplied color.RGBA.
func (c Color) rgba() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// elementIDCounter is a plain counter, not atomic: glide is single-threaded.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is one laid-out block of the scrolled document. Rect is its layout
// position in document coordinates; timelines animate the offset, scale and
// alpha fields on top of it. A single flat struct is used for every element
// to keep the per-frame loop free of interface dispatch.
type Element struct {
	ID   uint32
	Name string

	// Rect is the layout rectangle in document coordinates. Changing it is a
	// reflow: the Invalidator picks it up on the next poll.
	Rect Rect

	// Animated offsets relative to Rect.
	X, Y   float64
	ScaleX float64
	ScaleY float64
	Alpha  float64
	Color  Color

	// Image is drawn stretched over Rect. Nil draws a solid Color rectangle.
	Image   *ebiten.Image
	Visible bool

	// Fixed excludes the element from smooth scrolling: it keeps its
	// native layout position and the container never writes ScrollY.
	Fixed bool

	// ScrollY is the translation the container applies from the virtual
	// scroll position. Always 0 for Fixed elements.
	ScrollY float64

	// OnUpdate is called once per tick with dt in seconds.
	OnUpdate func(dt float64)
}

// NewElement creates a visible element with identity transform.
func NewElement(name string, rect Rect) *Element {
	return &Element{
		ID:      nextElementID(),
		Name:    name,
		Rect:    rect,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Color:   ColorWhite,
		Visible: true,
	}
}

// NewFixedElement creates an element excluded from smooth scrolling, such as
// a navigation bar.
func NewFixedElement(name string, rect Rect) *Element {
	el := NewElement(name, rect)
	el.Fixed = true
	return el
}

// Bounds implements Region with the element's live layout rectangle.
func (e *Element) Bounds() Rect {
	return e.Rect
}

func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	return e.Name
}

// ScreenRect returns where the element is drawn: layout position plus
// animated offsets, scaled about its center, translated by ScrollY.
func (e *Element) ScreenRect() Rect {
	w := e.Rect.Width * e.ScaleX
	h := e.Rect.Height * e.ScaleY
	cx := e.Rect.X + e.X + e.Rect.Width/2
	cy := e.Rect.Y + e.Y + e.ScrollY + e.Rect.Height/2
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}
