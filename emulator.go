package glide

import (
	"log"
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Viewport reports live geometry of the host window and document. It is read
// on every bounds refresh and never cached.
type Viewport interface {
	// Size returns the visible area in logical pixels.
	Size() (width, height float64)
	// DeviceScaleFactor returns the current device pixel ratio.
	DeviceScaleFactor() float64
	// ContentHeight returns the full height of the scrolled document.
	ContentHeight() float64
}

// TuningSource supplies the tuning the Emulator reads once per tick.
type TuningSource interface {
	Tuning() TuningParameters
}

// scrollAnim holds an active animated ScrollTo.
type scrollAnim struct {
	tween *gween.Tween
}

type stateSubscriber struct {
	id uint32
	fn func(ScrollState)
}

// Subscription allows removing a ScrollState subscriber.
type Subscription struct {
	id uint32
}

// Emulator owns the virtual scroll position. It advances once per tick toward
// the position driven by real input and publishes a ScrollState snapshot to
// its subscribers after every step.
type Emulator struct {
	viewport Viewport
	tuning   TuningSource
	fallback TuningParameters
	logger   *log.Logger

	wheelMultiplier float64
	snapEpsilon     float64

	state       ScrollState
	scrollTween *scrollAnim

	subs   []stateSubscriber
	nextID uint32
}

// NewEmulator creates an Emulator reading geometry from viewport. Until a
// TuningSource is set, the SMOOTH tuning from cfg is used.
func NewEmulator(viewport Viewport, cfg Config, logger *log.Logger) *Emulator {
	if logger == nil {
		logger = log.Default()
	}
	e := &Emulator{
		viewport:        viewport,
		fallback:        cfg.tuning(),
		logger:          logger,
		wheelMultiplier: cfg.WheelMultiplier,
		snapEpsilon:     cfg.SnapEpsilon,
	}
	e.RefreshBounds()
	return e
}

// SetTuningSource sets where smoothing is read from each tick.
func (e *Emulator) SetTuningSource(src TuningSource) {
	e.tuning = src
}

// State returns the latest snapshot.
func (e *Emulator) State() ScrollState {
	return e.state
}

// Advance applies rawDelta (px, before the wheel multiplier) and steps the
// virtual position by dt seconds. A non-positive dt refreshes bounds and
// moves the target, but not the virtual position. NaN or infinite input is
// treated as zero and logged.
func (e *Emulator) Advance(rawDelta, dt float64) ScrollState {
	rawDelta = e.sanitize("delta", rawDelta)
	dt = e.sanitize("dt", dt)

	if dt <= 0 {
		e.RefreshBounds()
		e.applyDelta(rawDelta)
		e.state.Velocity = 0
		e.publish()
		return e.state
	}

	e.state.Time += time.Duration(dt * float64(time.Second))
	prev := e.state.VirtualPosition

	e.applyDelta(rawDelta)

	if e.scrollTween != nil {
		val, done := e.scrollTween.tween.Update(float32(dt))
		e.state.VirtualPosition = e.state.Bounds.Clamp(float64(val))
		if done {
			e.state.VirtualPosition = e.state.RealPosition
			e.scrollTween = nil
		}
	} else {
		e.approach(dt)
	}

	e.state.Velocity = (e.state.VirtualPosition - prev) / dt
	switch {
	case e.state.Velocity > 0:
		e.state.Direction = DirectionDown
	case e.state.Velocity < 0:
		e.state.Direction = DirectionUp
	}

	e.publish()
	return e.state
}

// applyDelta moves the target by rawDelta and cancels any ScrollTo.
func (e *Emulator) applyDelta(rawDelta float64) {
	if rawDelta == 0 {
		return
	}
	e.scrollTween = nil
	e.state.RealPosition = e.state.Bounds.Clamp(e.state.RealPosition + rawDelta*e.wheelMultiplier)
}

// approach moves the virtual position toward the target with frame-rate
// independent exponential smoothing. It never overshoots.
func (e *Emulator) approach(dt float64) {
	target := e.state.RealPosition
	gap := target - e.state.VirtualPosition
	if gap == 0 {
		return
	}
	smoothing := e.currentTuning().Smoothing
	if smoothing <= 0 {
		e.state.VirtualPosition = target
		return
	}
	e.state.VirtualPosition += gap * (1 - math.Exp(-dt/smoothing))
	if math.Abs(target-e.state.VirtualPosition) < e.snapEpsilon {
		e.state.VirtualPosition = target
	}
}

func (e *Emulator) currentTuning() TuningParameters {
	if e.tuning != nil {
		return e.tuning.Tuning()
	}
	return e.fallback
}

func (e *Emulator) sanitize(name string, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		e.logger.Printf("glide: ignoring invalid scroll %s %v", name, v)
		return 0
	}
	return v
}

// ScrollTo animates the position to y over duration using easeFn. A nil easeFn
// uses EaseExpo; a non-positive duration jumps.
func (e *Emulator) ScrollTo(y float64, duration time.Duration, easeFn ease.TweenFunc) {
	y = e.state.Bounds.Clamp(e.sanitize("target", y))
	if duration <= 0 {
		e.Jump(y)
		return
	}
	if easeFn == nil {
		easeFn = EaseExpo
	}
	e.state.RealPosition = y
	e.scrollTween = &scrollAnim{
		tween: gween.New(float32(e.state.VirtualPosition), float32(y), float32(duration.Seconds()), easeFn),
	}
}

// Jump moves both the target and the virtual position to y immediately.
func (e *Emulator) Jump(y float64) {
	y = e.state.Bounds.Clamp(e.sanitize("target", y))
	e.scrollTween = nil
	e.state.RealPosition = y
	e.state.VirtualPosition = y
}

// Scrolling reports whether the virtual position is still moving.
func (e *Emulator) Scrolling() bool {
	return e.scrollTween != nil || e.state.VirtualPosition != e.state.RealPosition
}

// RefreshBounds recomputes the scrollable extent from live viewport geometry
// and clamps the current positions into it.
func (e *Emulator) RefreshBounds() {
	var maxY float64
	if e.viewport != nil {
		_, h := e.viewport.Size()
		maxY = math.Max(0, e.viewport.ContentHeight()-h)
	}
	e.state.Bounds = Range{Min: 0, Max: maxY}
	e.state.RealPosition = e.state.Bounds.Clamp(e.state.RealPosition)
	e.state.VirtualPosition = e.state.Bounds.Clamp(e.state.VirtualPosition)
}

// Subscribe registers fn to receive every published snapshot.
func (e *Emulator) Subscribe(fn func(ScrollState)) Subscription {
	e.nextID++
	id := e.nextID
	e.subs = append(e.subs, stateSubscriber{id: id, fn: fn})
	return Subscription{id: id}
}

// Unsubscribe removes a subscriber. Removing during a publish takes effect on
// the next publish.
func (e *Emulator) Unsubscribe(s Subscription) {
	for i, sub := range e.subs {
		if sub.id == s.id {
			e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
			return
		}
	}
}

func (e *Emulator) publish() {
	snapshot := e.state
	subs := e.subs
	for _, sub := range subs {
		contain(e.logger, "scroll subscriber", func() { sub.fn(snapshot) })
	}
}
