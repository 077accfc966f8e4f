package glide

import "math"

// HorizontalSection turns vertical scrolling into horizontal movement: while
// the section is pinned, Content slides left across its full width. Section
// is a spacer whose height is derived from the content width, so the
// vertical distance scrolled equals the horizontal distance travelled
// (scaled by Speed).
type HorizontalSection struct {
	Section *Element
	Content *Element
	Speed   float64

	travel  float64
	pinSpan float64
	id      BindingID
	resize  CallbackHandle
}

// NewHorizontalSection creates a section starting at document offset y.
// content.Rect.Width is the full horizontal content width.
func NewHorizontalSection(name string, y float64, content *Element, speed float64) *HorizontalSection {
	if speed <= 0 {
		speed = 1
	}
	section := NewElement(name, Rect{X: 0, Y: y, Width: content.Rect.Width})
	section.Visible = false
	content.Rect.Y = y
	return &HorizontalSection{Section: section, Content: content, Speed: speed}
}

// Layout sizes the section for a viewport of width x height:
// height = (contentWidth - viewportWidth) * speed + viewportWidth.
func (h *HorizontalSection) Layout(width, height float64) {
	h.travel = math.Max(0, h.Content.Rect.Width-width)
	h.Section.Rect.Height = h.travel*h.Speed + width
	h.Section.Rect.Width = width
	h.Content.Rect.Y = h.Section.Rect.Y
	h.pinSpan = math.Max(0, h.Section.Rect.Height-height)
}

// Timeline returns the timeline moving and pinning the content. The
// keyframes are read from the current layout on every seek.
func (h *HorizontalSection) Timeline() *Timeline {
	tl := NewTimeline()
	tl.OnProgress = func(p float64) {
		h.Content.X = -h.travel * p
		h.Content.Y = h.pinSpan * p
	}
	return tl
}

// Mount lays the section out for the current viewport, adds both elements to
// the controller's container, registers the pinned binding and relayouts on
// every resize.
func (h *HorizontalSection) Mount(c *Controller) (BindingID, error) {
	w, vh := c.Container().Size()
	h.Layout(w, vh)
	c.Container().Add(h.Section, h.Content)

	id, err := c.RegisterScrollBinding(h.Section, h.Timeline(), PolicyToggle,
		WithStart(AnchorTopTop), WithEnd(AnchorBottomBottom))
	if err != nil {
		c.Container().Remove(h.Section)
		c.Container().Remove(h.Content)
		return 0, err
	}
	h.resize = c.OnResize(h.Layout)
	h.id = id
	return id, nil
}

// Unmount removes the binding, the resize hook and both elements from c.
func (h *HorizontalSection) Unmount(c *Controller) {
	c.UnregisterScrollBinding(h.id)
	c.RemoveResizeHook(h.resize)
	c.Container().Remove(h.Section)
	c.Container().Remove(h.Content)
	h.id = 0
}

// ID returns the binding registered by Mount.
func (h *HorizontalSection) ID() BindingID {
	return h.id
}
