package glide

import (
	"fmt"
	"log"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Region is anything with live document geometry a binding can track.
// Bounds is read on every offset recomputation.
type Region interface {
	Bounds() Rect
}

// BindingID identifies a registered binding. Zero is never issued.
type BindingID uint32

// BindingEventType identifies a region boundary crossing.
type BindingEventType uint8

const (
	BindingEnter     BindingEventType = iota // start crossed scrolling down
	BindingLeave                             // end crossed scrolling down
	BindingEnterBack                         // end crossed scrolling up
	BindingLeaveBack                         // start crossed scrolling up
	BindingComplete                          // a once binding finished
)

func (t BindingEventType) String() string {
	switch t {
	case BindingEnter:
		return "enter"
	case BindingLeave:
		return "leave"
	case BindingEnterBack:
		return "enter-back"
	case BindingLeaveBack:
		return "leave-back"
	case BindingComplete:
		return "complete"
	}
	return "unknown"
}

// BindingEvent is delivered to Registry listeners.
type BindingEvent struct {
	Type     BindingEventType
	ID       BindingID
	Progress float64
}

// BindingOption customizes a binding at Register time.
type BindingOption func(*binding)

// WithStart sets the start anchor (default AnchorTopBottom).
func WithStart(a Anchor) BindingOption {
	return func(b *binding) { b.startAnchor = a }
}

// WithEnd sets the end anchor (default AnchorBottomTop).
func WithEnd(a Anchor) BindingOption {
	return func(b *binding) { b.endAnchor = a }
}

// WithThreshold sets the progress at which a once binding completes.
func WithThreshold(p float64) BindingOption {
	return func(b *binding) { b.threshold = clamp01(p) }
}

// WithDuration switches once and reverse bindings to timed playback: entering
// the region plays the timeline over d, leaving back through the start plays
// it in reverse. Toggle bindings always scrub.
func WithDuration(d time.Duration, fn ease.TweenFunc) BindingOption {
	return func(b *binding) {
		b.duration = d
		b.playEase = fn
	}
}

// WithDelay holds timed forward playback at its start value for d after the
// region is entered. It has no effect on scrubbed bindings.
func WithDelay(d time.Duration) BindingOption {
	return func(b *binding) { b.delay = d }
}

type zone uint8

const (
	zoneBefore zone = iota
	zoneInside
	zoneAfter
)

type binding struct {
	id       BindingID
	region   Region
	timeline *Timeline
	policy   Policy

	startAnchor Anchor
	endAnchor   Anchor
	threshold   float64
	duration    time.Duration
	delay       time.Duration
	playEase    ease.TweenFunc

	start, end float64
	progress   float64
	zone       zone
	zoned      bool
	complete   bool

	playback   *gween.Tween
	playTarget float64
	delayLeft  float64
}

// Registry holds scroll bindings and maps each ScrollState onto their
// timelines.
type Registry struct {
	viewport Viewport
	logger   *log.Logger

	bindings []*binding
	nextID   BindingID

	reducedMotion bool
	lastTime      time.Duration
	hasTime       bool

	listeners      []eventListener
	nextListenerID uint32
}

type eventListener struct {
	id uint32
	fn func(BindingEvent)
}

// NewRegistry creates an empty registry reading viewport geometry from vp.
func NewRegistry(vp Viewport, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{viewport: vp, logger: logger}
}

// Register binds timeline to region. It fails with *InvalidRegionError when
// the region has no positive extent or the timeline is malformed; the binding
// is then not added.
func (r *Registry) Register(region Region, timeline *Timeline, policy Policy, opts ...BindingOption) (BindingID, error) {
	name := regionName(region)
	if region == nil || timeline == nil {
		return 0, &InvalidRegionError{Region: name, Reason: "region and timeline are required"}
	}
	if err := timeline.validate(); err != nil {
		return 0, &InvalidRegionError{Region: name, Reason: err.Error()}
	}

	b := &binding{
		region:      region,
		timeline:    timeline,
		policy:      policy,
		startAnchor: AnchorTopBottom,
		endAnchor:   AnchorBottomTop,
		threshold:   1,
	}
	for _, opt := range opts {
		opt(b)
	}

	bounds := region.Bounds()
	r.computeOffsets(b)
	if bounds.Height <= 0 || b.end <= b.start {
		return 0, &InvalidRegionError{Region: name, Start: b.start, End: b.end}
	}

	r.nextID++
	b.id = r.nextID
	r.bindings = append(r.bindings, b)

	if r.reducedMotion {
		r.resolve(b)
	} else {
		timeline.Seek(0)
	}
	return b.id, nil
}

// Unregister removes a binding. It reports whether the id was known.
func (r *Registry) Unregister(id BindingID) bool {
	for i, b := range r.bindings {
		if b.id == id {
			r.bindings = append(r.bindings[:i:i], r.bindings[i+1:]...)
			return true
		}
	}
	return false
}

// UnregisterAll removes every binding.
func (r *Registry) UnregisterAll() {
	r.bindings = nil
}

// Len returns the number of registered bindings.
func (r *Registry) Len() int {
	return len(r.bindings)
}

// RecomputeOffsets recomputes one binding's offsets from live geometry.
func (r *Registry) RecomputeOffsets(id BindingID) bool {
	b := r.find(id)
	if b == nil {
		return false
	}
	r.computeOffsets(b)
	return true
}

// RecomputeAll recomputes every binding's offsets from live geometry.
func (r *Registry) RecomputeAll() {
	for _, b := range r.bindings {
		r.computeOffsets(b)
	}
}

// Offsets returns a binding's current start and end scroll offsets.
func (r *Registry) Offsets(id BindingID) (start, end float64, ok bool) {
	b := r.find(id)
	if b == nil {
		return 0, 0, false
	}
	return b.start, b.end, true
}

// Progress returns the progress last applied to a binding's timeline.
func (r *Registry) Progress(id BindingID) (float64, bool) {
	b := r.find(id)
	if b == nil {
		return 0, false
	}
	return b.timeline.Progress(), true
}

// Complete reports whether a once binding has finished.
func (r *Registry) Complete(id BindingID) bool {
	b := r.find(id)
	return b != nil && b.complete
}

// SetReducedMotion switches reduced motion. Enabling it resolves every
// timeline to its end state immediately.
func (r *Registry) SetReducedMotion(enabled bool) {
	r.reducedMotion = enabled
	if !enabled {
		return
	}
	for _, b := range r.bindings {
		r.resolve(b)
	}
}

// OnEvent registers fn for region boundary crossings.
func (r *Registry) OnEvent(fn func(BindingEvent)) CallbackHandle {
	r.nextListenerID++
	r.listeners = append(r.listeners, eventListener{id: r.nextListenerID, fn: fn})
	return CallbackHandle{id: r.nextListenerID}
}

// RemoveListener unregisters a listener added with OnEvent.
func (r *Registry) RemoveListener(h CallbackHandle) {
	for i, l := range r.listeners {
		if l.id == h.id {
			r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
			return
		}
	}
}

// RemoveAllListeners unregisters every event listener.
func (r *Registry) RemoveAllListeners() {
	r.listeners = nil
}

// Update maps state onto every binding's timeline. A panicking binding is
// logged and skipped; the others still update.
func (r *Registry) Update(state ScrollState) {
	var dt float64
	if r.hasTime {
		dt = (state.Time - r.lastTime).Seconds()
	}
	r.lastTime = state.Time
	r.hasTime = true

	bindings := r.bindings
	for _, b := range bindings {
		contain(r.logger, fmt.Sprintf("binding %d", b.id), func() {
			r.updateBinding(b, state.VirtualPosition, dt)
		})
	}
}

func (r *Registry) updateBinding(b *binding, pos, dt float64) {
	if r.reducedMotion {
		if b.timeline.Progress() != 1 || !b.timeline.seeked {
			r.resolve(b)
		}
		return
	}
	if b.complete {
		return
	}

	p := b.progressAt(pos)
	b.progress = p
	r.crossings(b, pos)

	timed := b.duration > 0 && b.policy != PolicyToggle
	switch {
	case timed:
		r.play(b, dt)
	case b.policy == PolicyOnce:
		b.timeline.Seek(p)
		if p >= b.threshold {
			r.finish(b)
		}
	default:
		b.timeline.Seek(p)
	}
}

// progressAt maps a scroll position to [0, 1] through the binding's window.
func (b *binding) progressAt(pos float64) float64 {
	span := b.end - b.start
	if span <= 0 {
		if pos >= b.start {
			return 1
		}
		return 0
	}
	return clamp01((pos - b.start) / span)
}

// crossings emits boundary events and tracks which side of the region the
// position is on.
func (r *Registry) crossings(b *binding, pos float64) {
	z := zoneInside
	switch {
	case pos < b.start:
		z = zoneBefore
	case pos > b.end:
		z = zoneAfter
	}
	if !b.zoned {
		b.zoned = true
		b.zone = zoneBefore
	}
	prev := b.zone
	b.zone = z
	if prev == z {
		return
	}
	if z > prev {
		if prev == zoneBefore {
			r.emit(BindingEvent{Type: BindingEnter, ID: b.id, Progress: b.progress})
		}
		if z == zoneAfter {
			r.emit(BindingEvent{Type: BindingLeave, ID: b.id, Progress: b.progress})
		}
		return
	}
	if prev == zoneAfter {
		r.emit(BindingEvent{Type: BindingEnterBack, ID: b.id, Progress: b.progress})
	}
	if z == zoneBefore {
		r.emit(BindingEvent{Type: BindingLeaveBack, ID: b.id, Progress: b.progress})
	}
}

// play drives timed playback: forward once the start is crossed, backward
// (reverse policy only) once the position returns before the start.
func (r *Registry) play(b *binding, dt float64) {
	target := 0.0
	if b.zone != zoneBefore {
		target = 1
	}
	if b.policy == PolicyOnce && target == 0 && b.playback == nil {
		return
	}
	if b.policy == PolicyOnce {
		target = 1
	}

	cur := b.timeline.Progress()
	if b.playback == nil || b.playTarget != target {
		if cur == target {
			b.playback = nil
			if b.policy == PolicyOnce {
				r.finish(b)
			}
			return
		}
		remaining := b.duration.Seconds()
		if cur > target {
			remaining *= cur - target
		} else {
			remaining *= target - cur
		}
		fn := b.playEase
		if fn == nil {
			fn = ease.Linear
		}
		b.playback = gween.New(float32(cur), float32(target), float32(remaining), fn)
		b.playTarget = target
		b.delayLeft = 0
		if target > cur {
			b.delayLeft = b.delay.Seconds()
		}
	}

	if b.delayLeft > 0 {
		b.delayLeft -= dt
		if b.delayLeft > 0 {
			return
		}
		dt = -b.delayLeft
		b.delayLeft = 0
	}

	val, done := b.playback.Update(float32(dt))
	if done {
		val = float32(target)
		b.playback = nil
	}
	b.timeline.Seek(float64(val))
	if done && b.policy == PolicyOnce {
		r.finish(b)
	}
}

func (r *Registry) finish(b *binding) {
	b.timeline.Seek(1)
	b.complete = true
	r.emit(BindingEvent{Type: BindingComplete, ID: b.id, Progress: 1})
}

// resolve jumps a binding to its end state.
func (r *Registry) resolve(b *binding) {
	b.playback = nil
	b.delayLeft = 0
	b.progress = 1
	b.timeline.Seek(1)
	if b.policy == PolicyOnce {
		b.complete = true
	}
}

func (r *Registry) computeOffsets(b *binding) {
	var vh float64
	if r.viewport != nil {
		_, vh = r.viewport.Size()
	}
	bounds := b.region.Bounds()
	b.start = b.startAnchor.offset(bounds, vh)
	b.end = b.endAnchor.offset(bounds, vh)
}

func (r *Registry) find(id BindingID) *binding {
	for _, b := range r.bindings {
		if b.id == id {
			return b
		}
	}
	return nil
}

func (r *Registry) emit(e BindingEvent) {
	listeners := r.listeners
	for _, l := range listeners {
		l.fn(e)
	}
}

func regionName(region Region) string {
	if s, ok := region.(fmt.Stringer); ok && s != nil {
		return s.String()
	}
	return fmt.Sprintf("%T", region)
}
