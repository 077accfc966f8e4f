// Package glide is a smooth-scroll and scroll-linked animation runtime for
// [Ebitengine].
//
// Glide takes over scroll input for a tall document of [Element]s, eases a
// virtual scroll position toward the position the input asks for, and drives
// scroll-bound [Timeline]s as the document moves through the viewport. One
// frame loop runs everything; one [Controller] owns its whole lifecycle.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	container := glide.NewContainer(800, 600)
//	// ... add elements ...
//	ctl, err := glide.Mount(container, glide.DefaultConfig(), glide.DetectEnvironment())
//	if err != nil && !errors.Is(err, glide.ErrCapabilityUnavailable) {
//		log.Fatal(err)
//	}
//	glide.Run(ctl, glide.RunConfig{Title: "My Page", Width: 800, Height: 600})
//
// For full control, implement [ebiten.Game] yourself: call [Controller.Start]
// once, [Controller.Step] from Update, [Container.Draw] from Draw and
// [Container.Resize] from Layout, and [Controller.Stop] when done.
//
// # Scroll emulation
//
// The [Emulator] keeps two positions: the real position, moved directly by
// wheel, keyboard and touch input, and the virtual position everything is
// drawn at. Each tick the virtual position approaches the real one with
// exponential smoothing whose time constant comes from the
// [Responsiveness] controller: fast flicks switch it to a snappier setting,
// and it settles back once input calms down.
//
// # Bindings
//
// A binding ties a [Region] (usually an Element) to a Timeline. Its scroll
// window runs from a start [Anchor] to an end Anchor, e.g. "top bottom" to
// "bottom top", and progress through that window seeks the timeline:
//
//	id, err := ctl.RegisterScrollBinding(section, glide.FadeIn(section, nil),
//		glide.PolicyReverse, glide.WithStart(glide.MustAnchor("top 80%")))
//
// Offsets are recomputed from live geometry whenever the viewport size,
// device scale factor or content height changes.
//
// Elements marked Fixed (navigation bars, overlays) are never moved by the
// virtual scroll position.
//
// [Ebitengine]: https://ebitengine.org
package glide
