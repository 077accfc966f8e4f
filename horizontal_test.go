package glide

import "testing"

func TestHorizontalSectionLayout(t *testing.T) {
	content := NewElement("strip", Rect{Width: 3200, Height: 600})
	h := NewHorizontalSection("gallery", 1000, content, 1)
	h.Layout(800, 600)

	if got := h.Section.Rect.Height; got != 3200 {
		t.Errorf("section height = %f, want (3200-800)*1+800", got)
	}
	if h.Section.Visible {
		t.Error("section spacer should not draw")
	}
	if content.Rect.Y != 1000 {
		t.Errorf("content Y = %f, want 1000", content.Rect.Y)
	}

	h.Speed = 0.5
	h.Layout(800, 600)
	if got := h.Section.Rect.Height; got != 2000 {
		t.Errorf("section height at speed 0.5 = %f, want 2000", got)
	}
}

func TestHorizontalSectionNarrowContent(t *testing.T) {
	content := NewElement("strip", Rect{Width: 500, Height: 600})
	h := NewHorizontalSection("gallery", 0, content, 0)
	if h.Speed != 1 {
		t.Errorf("Speed = %f, want default 1", h.Speed)
	}
	h.Layout(800, 600)
	h.Timeline().Seek(1)
	if content.X != 0 {
		t.Errorf("content.X = %f, want no travel", content.X)
	}
}

func TestHorizontalSectionPinsAndSlides(t *testing.T) {
	ctl := mountTest(t, DefaultConfig(), Environment{})
	content := NewElement("strip", Rect{Width: 3200, Height: 600})
	h := NewHorizontalSection("gallery", 1000, content, 1)
	id, err := h.Mount(ctl)
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if h.ID() != id {
		t.Errorf("ID() = %d, want %d", h.ID(), id)
	}
	checkOffsets(t, ctl, id, 1000, 3600)

	ctl.Start()
	stepFrames(ctl, 1)
	ctl.ScrollToWith(2300, 0, nil)
	stepFrames(ctl, 1)

	if content.X != -1200 {
		t.Errorf("content.X = %f, want -1200", content.X)
	}
	if r := content.ScreenRect(); r.Y != 0 {
		t.Errorf("content drawn at y=%f, want pinned at 0", r.Y)
	}
}

func TestHorizontalSectionRelayoutOnResize(t *testing.T) {
	ctl := mountTest(t, DefaultConfig(), Environment{})
	content := NewElement("strip", Rect{Width: 3200, Height: 600})
	h := NewHorizontalSection("gallery", 1000, content, 1)
	id, err := h.Mount(ctl)
	if err != nil {
		t.Fatal(err)
	}
	ctl.Start()
	stepFrames(ctl, 1)

	ctl.Container().Resize(800, 700, 1)
	stepFrames(ctl, 10)
	// height stays 3200; end = 1000 + 3200 - 700
	checkOffsets(t, ctl, id, 1000, 3500)
}

func TestHorizontalSectionMountFailureCleansUp(t *testing.T) {
	ctl := mountTest(t, DefaultConfig(), Environment{})
	// A portrait viewport taller than the section leaves no pinned window.
	ctl.Container().Resize(600, 800, 1)
	content := NewElement("strip", Rect{Width: 600, Height: 800})
	h := NewHorizontalSection("gallery", 1000, content, 1)
	before := len(ctl.Container().Elements())
	if _, err := h.Mount(ctl); err == nil {
		t.Fatal("expected an invalid region error")
	}
	if got := len(ctl.Container().Elements()); got != before {
		t.Errorf("elements = %d, want %d", got, before)
	}
}

func TestHorizontalSectionUnmount(t *testing.T) {
	ctl := mountTest(t, DefaultConfig(), Environment{})
	content := NewElement("strip", Rect{Width: 3200, Height: 600})
	h := NewHorizontalSection("gallery", 1000, content, 0.5)
	before := len(ctl.Container().Elements())
	if _, err := h.Mount(ctl); err != nil {
		t.Fatal(err)
	}
	ctl.Start()
	stepFrames(ctl, 1)

	h.Unmount(ctl)
	if h.ID() != 0 {
		t.Errorf("ID() = %d after Unmount, want 0", h.ID())
	}
	if n := ctl.Registry().Len(); n != 0 {
		t.Errorf("bindings = %d, want 0", n)
	}
	if got := len(ctl.Container().Elements()); got != before {
		t.Errorf("elements = %d, want %d", got, before)
	}

	height := h.Section.Rect.Height
	ctl.Container().Resize(1000, 600, 1)
	stepFrames(ctl, 10)
	if h.Section.Rect.Height != height {
		t.Errorf("section height = %f, want %f (resize hook removed)", h.Section.Rect.Height, height)
	}
}
