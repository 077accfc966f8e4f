package glide

import "time"

type invalidatorState uint8

const (
	invalidatorUnmounted invalidatorState = iota // never polled; fires on first poll
	invalidatorIdle
	invalidatorPending // geometry changed, waiting for the burst to end
)

// geometry is one sample of everything that can invalidate offsets.
type geometry struct {
	width, height float64
	scale         float64
	content       float64
}

func sampleGeometry(vp Viewport) geometry {
	w, h := vp.Size()
	return geometry{width: w, height: h, scale: vp.DeviceScaleFactor(), content: vp.ContentHeight()}
}

type resizeCallback struct {
	id uint32
	fn func()
}

// Invalidator watches viewport size, device scale factor and content height.
// It fires its callbacks once on the first poll and then at most once per
// burst of changes, after the geometry has been stable for the debounce
// duration.
type Invalidator struct {
	viewport Viewport
	debounce time.Duration

	state      invalidatorState
	last       geometry
	changedAt  time.Duration
	forcedNext bool

	callbacks []resizeCallback
	nextID    uint32
	fired     int
}

// NewInvalidator creates an Invalidator polling vp.
func NewInvalidator(vp Viewport, debounce time.Duration) *Invalidator {
	return &Invalidator{viewport: vp, debounce: debounce}
}

// OnResize registers callback. Callbacks run in registration order.
func (inv *Invalidator) OnResize(callback func()) CallbackHandle {
	inv.nextID++
	inv.callbacks = append(inv.callbacks, resizeCallback{id: inv.nextID, fn: callback})
	return CallbackHandle{id: inv.nextID}
}

// Remove unregisters a callback.
func (inv *Invalidator) Remove(h CallbackHandle) {
	for i, cb := range inv.callbacks {
		if cb.id == h.id {
			inv.callbacks = append(inv.callbacks[:i:i], inv.callbacks[i+1:]...)
			return
		}
	}
}

// Detach removes every callback and returns to the unmounted state.
func (inv *Invalidator) Detach() {
	inv.callbacks = nil
	inv.state = invalidatorUnmounted
	inv.forcedNext = false
}

// Invalidate requests a recompute on the next poll regardless of geometry,
// e.g. after content was added.
func (inv *Invalidator) Invalidate() {
	inv.forcedNext = true
}

// Fired returns how many times the callbacks have run.
func (inv *Invalidator) Fired() int {
	return inv.fired
}

// Poll samples geometry at loop time now and fires callbacks when due.
// It reports whether they fired.
func (inv *Invalidator) Poll(now time.Duration) bool {
	g := sampleGeometry(inv.viewport)

	switch inv.state {
	case invalidatorUnmounted:
		inv.last = g
		inv.state = invalidatorIdle
		inv.forcedNext = false
		inv.fire()
		return true
	case invalidatorIdle:
		if g != inv.last {
			inv.last = g
			inv.changedAt = now
			inv.state = invalidatorPending
		} else if inv.forcedNext {
			inv.forcedNext = false
			inv.fire()
			return true
		}
	case invalidatorPending:
		if g != inv.last {
			inv.last = g
			inv.changedAt = now
		}
	}

	if inv.state == invalidatorPending && now-inv.changedAt >= inv.debounce {
		inv.state = invalidatorIdle
		inv.forcedNext = false
		inv.fire()
		return true
	}
	return false
}

func (inv *Invalidator) fire() {
	inv.fired++
	callbacks := inv.callbacks
	for _, cb := range callbacks {
		cb.fn()
	}
}
