package glide

import (
	"log"
	"time"
)

// FrameID identifies one scheduled frame callback.
type FrameID uint64

// FrameSource schedules callbacks for the next display frame, in the manner
// of requestAnimationFrame.
type FrameSource interface {
	// RequestFrame schedules fn for the next frame. now is the frame time.
	RequestFrame(fn func(now time.Duration)) FrameID
	// CancelFrame drops a scheduled callback. Unknown ids are ignored.
	CancelFrame(id FrameID)
}

// TickFunc receives the elapsed seconds since the previous tick. The first
// tick after Start receives 0.
type TickFunc func(dt float64)

// CallbackHandle allows removing a registered per-frame callback.
type CallbackHandle struct {
	id uint32
}

type tickCallback struct {
	id uint32
	fn TickFunc
}

// Ticker is the single frame loop. At most one frame request is outstanding
// at any time and Stop prevents every further tick, including one already
// queued.
type Ticker struct {
	frames FrameSource
	logger *log.Logger

	running bool
	gen     uint64
	pending FrameID
	queued  bool

	onTick    TickFunc
	callbacks []tickCallback
	nextID    uint32

	last    time.Duration
	hasLast bool

	lagThreshold time.Duration
	adjustedLag  time.Duration
}

// NewTicker creates a stopped Ticker on frames.
func NewTicker(frames FrameSource, logger *log.Logger) *Ticker {
	if logger == nil {
		logger = log.Default()
	}
	return &Ticker{frames: frames, logger: logger}
}

// SetLagSmoothing caps any frame delta above threshold at adjusted. A zero
// threshold disables it.
func (t *Ticker) SetLagSmoothing(threshold, adjusted time.Duration) {
	t.lagThreshold = threshold
	t.adjustedLag = adjusted
}

// Start begins ticking onTick. Calling Start while running is a no-op.
func (t *Ticker) Start(onTick TickFunc) {
	if t.running {
		return
	}
	t.running = true
	t.onTick = onTick
	t.hasLast = false
	t.gen++
	t.schedule()
}

// Stop cancels the outstanding frame. No tick runs after Stop returns, even
// if the FrameSource still delivers a callback it had already queued.
func (t *Ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	t.gen++
	if t.queued {
		t.frames.CancelFrame(t.pending)
		t.queued = false
	}
	t.onTick = nil
}

// Running reports whether the loop is active.
func (t *Ticker) Running() bool {
	return t.running
}

// Add registers fn to run every tick after the main tick function.
func (t *Ticker) Add(fn TickFunc) CallbackHandle {
	t.nextID++
	t.callbacks = append(t.callbacks, tickCallback{id: t.nextID, fn: fn})
	return CallbackHandle{id: t.nextID}
}

// Remove unregisters a callback added with Add.
func (t *Ticker) Remove(h CallbackHandle) {
	for i, cb := range t.callbacks {
		if cb.id == h.id {
			t.callbacks = append(t.callbacks[:i:i], t.callbacks[i+1:]...)
			return
		}
	}
}

// RemoveAll unregisters every callback added with Add.
func (t *Ticker) RemoveAll() {
	t.callbacks = nil
}

func (t *Ticker) schedule() {
	gen := t.gen
	t.pending = t.frames.RequestFrame(func(now time.Duration) {
		t.frame(gen, now)
	})
	t.queued = true
}

func (t *Ticker) frame(gen uint64, now time.Duration) {
	if !t.running || gen != t.gen {
		return
	}
	t.queued = false

	var dt time.Duration
	if t.hasLast {
		dt = now - t.last
	}
	t.last = now
	t.hasLast = true
	if t.lagThreshold > 0 && dt > t.lagThreshold {
		dt = t.adjustedLag
	}

	// Schedule first so a panicking tick cannot end the loop.
	t.schedule()

	secs := dt.Seconds()
	if fn := t.onTick; fn != nil {
		contain(t.logger, "tick", func() { fn(secs) })
	}
	callbacks := t.callbacks
	for _, cb := range callbacks {
		if !t.running || gen != t.gen {
			return
		}
		contain(t.logger, "tick callback", func() { cb.fn(secs) })
	}
}

// FrameQueue is a FrameSource stepped explicitly, once per display frame.
// Run steps it from the ebiten Update loop; tests step it directly.
// Callbacks requested during a step run on the following step.
type FrameQueue struct {
	now     time.Duration
	nextID  FrameID
	pending map[FrameID]func(time.Duration)
	order   []FrameID
}

// NewFrameQueue returns an empty queue at time zero.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameID]func(time.Duration))}
}

// RequestFrame implements FrameSource.
func (q *FrameQueue) RequestFrame(fn func(now time.Duration)) FrameID {
	q.nextID++
	q.pending[q.nextID] = fn
	q.order = append(q.order, q.nextID)
	return q.nextID
}

// CancelFrame implements FrameSource.
func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
}

// Pending returns the number of outstanding callbacks.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Now returns the current frame time.
func (q *FrameQueue) Now() time.Duration {
	return q.now
}

// Step advances the clock by dt and runs every callback that was pending
// when the step began.
func (q *FrameQueue) Step(dt time.Duration) {
	q.now += dt
	order := q.order
	q.order = nil
	for _, id := range order {
		fn, ok := q.pending[id]
		if !ok {
			continue
		}
		delete(q.pending, id)
		fn(q.now)
	}
}
