package glide

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image used for solid color elements. Created on
// first draw so that building a Container needs no graphics context.
var whitePixel *ebiten.Image

// Container is the mount root: the retained list of document elements plus
// the live size of the window showing them. It implements Viewport.
type Container struct {
	elements []*Element

	width, height float64
	scale         float64

	// ClearColor fills the screen before elements are drawn. Zero alpha skips it.
	ClearColor Color
	// CullEnabled skips elements entirely outside the viewport.
	CullEnabled bool
}

// NewContainer creates an empty container for a width x height viewport.
func NewContainer(width, height float64) *Container {
	return &Container{width: width, height: height, scale: 1, CullEnabled: true}
}

// Add appends elements in draw order.
func (c *Container) Add(els ...*Element) {
	c.elements = append(c.elements, els...)
}

// Remove removes el. It reports whether el was present.
func (c *Container) Remove(el *Element) bool {
	for i, e := range c.elements {
		if e == el {
			c.elements = append(c.elements[:i:i], c.elements[i+1:]...)
			return true
		}
	}
	return false
}

// Elements returns the element list. The returned slice MUST NOT be mutated.
func (c *Container) Elements() []*Element {
	return c.elements
}

// Resize records the live viewport size and device scale factor. Call it
// from ebiten's Layout; the Invalidator notices the change on its next poll.
func (c *Container) Resize(width, height, scale float64) {
	c.width = width
	c.height = height
	if scale > 0 {
		c.scale = scale
	}
}

// Size implements Viewport.
func (c *Container) Size() (float64, float64) {
	return c.width, c.height
}

// DeviceScaleFactor implements Viewport.
func (c *Container) DeviceScaleFactor() float64 {
	return c.scale
}

// ContentHeight implements Viewport: the lowest layout edge of any scrolled
// element. Fixed elements do not contribute.
func (c *Container) ContentHeight() float64 {
	var h float64
	for _, e := range c.elements {
		if e.Fixed {
			continue
		}
		h = math.Max(h, e.Rect.Bottom())
	}
	return h
}

// applyScroll translates every scrolled element by the virtual position.
// Fixed elements are left untouched.
func (c *Container) applyScroll(y float64) {
	for _, e := range c.elements {
		if e.Fixed {
			continue
		}
		e.ScrollY = -y
	}
}

// update runs per-element OnUpdate hooks.
func (c *Container) update(dt float64) {
	for _, e := range c.elements {
		if e.OnUpdate != nil {
			e.OnUpdate(dt)
		}
	}
}

// visible reports whether e would be drawn.
func (c *Container) visible(e *Element) bool {
	if !e.Visible || e.Alpha <= 0 {
		return false
	}
	if !c.CullEnabled {
		return true
	}
	return e.ScreenRect().Intersects(Rect{Width: c.width, Height: c.height})
}

// Draw renders the scrolled elements and then the fixed ones on top.
func (c *Container) Draw(screen *ebiten.Image) {
	if c.ClearColor.A > 0 {
		screen.Fill(c.ClearColor.rgba())
	}
	for _, e := range c.elements {
		if !e.Fixed && c.visible(e) {
			c.drawElement(screen, e)
		}
	}
	for _, e := range c.elements {
		if e.Fixed && c.visible(e) {
			c.drawElement(screen, e)
		}
	}
}

func (c *Container) drawElement(screen *ebiten.Image, e *Element) {
	img := e.Image
	if img == nil {
		if whitePixel == nil {
			whitePixel = ebiten.NewImage(1, 1)
			whitePixel.Fill(ColorWhite.rgba())
		}
		img = whitePixel
	}
	b := img.Bounds()
	r := e.ScreenRect()

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	a := e.Color.A * e.Alpha
	op.ColorScale.Scale(float32(e.Color.R*a), float32(e.Color.G*a), float32(e.Color.B*a), float32(a))
	screen.DrawImage(img, &op)
}
