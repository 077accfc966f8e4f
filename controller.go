package glide

import (
	"fmt"
	"log"
	"time"

	"github.com/tanema/gween/ease"
)

// Environment describes the host the runtime is mounted in.
type Environment struct {
	// UserAgent is matched against Config.IncompatibleAgents.
	UserAgent string
	// ReducedMotion is the user's reduced-motion preference.
	ReducedMotion bool
}

// Option configures a Controller at Mount.
type Option func(*Controller)

// WithLogger routes all runtime logging to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithFrameSource replaces the default FrameQueue stepped by Step.
func WithFrameSource(fs FrameSource) Option {
	return func(c *Controller) { c.frames = fs }
}

// WithInput replaces the default ebiten input source.
func WithInput(src InputSource) Option {
	return func(c *Controller) { c.input = src }
}

// WithPositionStore enables scroll restoration through store. It only takes
// effect when Config.RestoreKey is set.
func WithPositionStore(store PositionStore) Option {
	return func(c *Controller) { c.store = store }
}

type layoutHook struct {
	id uint32
	fn func(width, height float64)
}

// Controller is the root of the runtime. It owns the Ticker, Emulator,
// Registry, Responsiveness controller and Invalidator for one Container, and
// their whole lifecycle: Mount builds them, Start runs them, Stop tears them
// down.
type Controller struct {
	cfg       Config
	env       Environment
	logger    *log.Logger
	container *Container

	frames FrameSource
	queue  *FrameQueue
	input  InputSource
	store  PositionStore

	ticker      *Ticker
	emulator    *Emulator
	registry    *Registry
	responsive  *Responsiveness
	invalidator *Invalidator

	passthrough bool
	started     bool
	listening   bool
	elapsed     time.Duration

	resizeHandle CallbackHandle
	layoutHooks  []layoutHook
	nextHookID   uint32
	userSubs     []Subscription
	injectQueue  []ScrollInput

	debug bool
	stats tickStats
}

// Mount builds the runtime for container. On an incompatible host it returns
// a passthrough Controller together with a *CapabilityUnavailableError:
// input then scrolls natively, unsmoothed, and every binding resolves to its
// end state. Any other error means nothing was mounted.
func Mount(container *Container, cfg Config, env Environment, opts ...Option) (*Controller, error) {
	if container == nil {
		return nil, fmt.Errorf("mount: container is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("mount: %w", err)
	}

	c := &Controller{cfg: cfg, env: env, container: container, debug: cfg.Debug}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	if c.frames == nil {
		c.queue = NewFrameQueue()
		c.frames = c.queue
	}
	if c.input == nil {
		c.input = NewEbitenInput(container)
	}

	c.ticker = NewTicker(c.frames, c.logger)
	c.ticker.SetLagSmoothing(cfg.LagThreshold, cfg.AdjustedLag)
	c.emulator = NewEmulator(container, cfg, c.logger)
	c.registry = NewRegistry(container, c.logger)
	c.responsive = NewResponsiveness(cfg)
	c.invalidator = NewInvalidator(container, cfg.ResizeDebounce)

	c.emulator.SetTuningSource(c.responsive)
	c.emulator.Subscribe(c.registry.Update)
	c.emulator.Subscribe(func(s ScrollState) { c.responsive.Observe(s) })

	if cfg.ReducedMotion || env.ReducedMotion {
		c.registry.SetReducedMotion(true)
	}

	if agent, bad := cfg.incompatible(env.UserAgent); bad {
		c.passthrough = true
		c.registry.SetReducedMotion(true)
		c.logger.Printf("glide: %s detected, disabling smooth scrolling", agent)
		return c, &CapabilityUnavailableError{Reason: agent + " is listed as incompatible"}
	}
	return c, nil
}

// Passthrough reports whether the controller degraded to native scrolling.
func (c *Controller) Passthrough() bool {
	return c.passthrough
}

// Running reports whether Start has been called without a matching Stop.
func (c *Controller) Running() bool {
	return c.started
}

// Start attaches input and resize listeners and starts the frame loop.
// Calling Start while running is a no-op.
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true
	c.listening = true
	c.elapsed = 0
	if c.passthrough {
		c.restore()
		return
	}
	c.resizeHandle = c.invalidator.OnResize(c.recompute)
	c.emulator.RefreshBounds()
	c.restore()
	c.ticker.Start(c.tick)
}

// Stop tears the runtime down synchronously: it stops the frame loop,
// detaches input and resize listeners, then unregisters every binding and
// drops every hook, tick callback, listener and subscriber registered
// through the Controller. No tick runs after Stop returns. Bindings and
// hooks must be registered again before the next Start.
func (c *Controller) Stop() {
	if !c.started {
		return
	}
	c.started = false

	c.ticker.Stop()

	c.listening = false
	c.injectQueue = nil
	c.invalidator.Detach()
	c.resizeHandle = CallbackHandle{}

	c.registry.UnregisterAll()
	c.registry.RemoveAllListeners()
	c.ticker.RemoveAll()
	c.layoutHooks = nil
	for _, sub := range c.userSubs {
		c.emulator.Unsubscribe(sub)
	}
	c.userSubs = nil

	c.responsive.Reset()
	c.save()
}

// Step advances one display frame of dt. Run calls it from ebiten's Update.
// With a custom FrameSource the source drives ticks and Step only handles
// passthrough input.
func (c *Controller) Step(dt time.Duration) {
	if !c.started {
		return
	}
	if c.passthrough {
		c.nativeStep()
		return
	}
	if c.queue != nil {
		c.queue.Step(dt)
	}
}

// tick is the per-frame update: geometry first, then the emulator, whose
// publish drives the registry and the responsiveness controller, then the
// element transforms.
func (c *Controller) tick(dt float64) {
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	c.elapsed += time.Duration(dt * float64(time.Second))
	c.invalidator.Poll(c.elapsed)

	in := c.pollInput()
	wheel := in.Wheel
	if in.Touch != 0 {
		touch := in.Touch * c.cfg.TouchMultiplier
		if c.cfg.SmoothTouch && c.cfg.WheelMultiplier != 0 {
			wheel += touch / c.cfg.WheelMultiplier
		} else {
			c.emulator.Jump(c.emulator.State().RealPosition + touch)
		}
	}

	state := c.emulator.Advance(wheel, dt)
	c.container.applyScroll(state.VirtualPosition)
	c.container.update(dt)

	if c.debug {
		c.stats = tickStats{
			total:    time.Since(t0),
			bindings: c.registry.Len(),
			state:    state,
			mode:     c.responsive.State(),
		}
		c.debugLog(c.stats)
	}
}

// nativeStep scrolls without emulation: input maps straight onto position.
func (c *Controller) nativeStep() {
	in := c.pollInput()
	delta := in.Wheel + in.Touch
	c.emulator.RefreshBounds()
	if delta != 0 {
		c.emulator.Jump(c.emulator.State().RealPosition + delta)
	}
	c.container.applyScroll(c.emulator.State().VirtualPosition)
}

func (c *Controller) pollInput() ScrollInput {
	if !c.listening {
		return ScrollInput{}
	}
	var in ScrollInput
	if c.input != nil {
		in = c.input.Poll()
	}
	if len(c.injectQueue) > 0 {
		injected := c.injectQueue[0]
		copy(c.injectQueue, c.injectQueue[1:])
		c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
		in.Wheel += injected.Wheel
		in.Touch += injected.Touch
	}
	return in
}

// recompute resynchronizes everything derived from geometry: layout hooks
// first, then binding offsets and scroll bounds, all from live values.
func (c *Controller) recompute() {
	w, h := c.container.Size()
	hooks := c.layoutHooks
	for _, hook := range hooks {
		hook.fn(w, h)
	}
	c.registry.RecomputeAll()
	c.emulator.RefreshBounds()
	c.registry.Update(c.emulator.State())
}

// OnResize registers a layout hook run before offsets are recomputed on
// every invalidation, e.g. to resize a section from the new viewport width.
// Hooks are dropped by Stop.
func (c *Controller) OnResize(fn func(width, height float64)) CallbackHandle {
	c.nextHookID++
	c.layoutHooks = append(c.layoutHooks, layoutHook{id: c.nextHookID, fn: fn})
	return CallbackHandle{id: c.nextHookID}
}

// RemoveResizeHook removes a hook added with OnResize.
func (c *Controller) RemoveResizeHook(h CallbackHandle) {
	for i, hook := range c.layoutHooks {
		if hook.id == h.id {
			c.layoutHooks = append(c.layoutHooks[:i:i], c.layoutHooks[i+1:]...)
			return
		}
	}
}

// Invalidate forces offsets and bounds to be recomputed on the next tick.
func (c *Controller) Invalidate() {
	c.invalidator.Invalidate()
}

// RegisterScrollBinding binds timeline to region. See Registry.Register.
func (c *Controller) RegisterScrollBinding(region Region, timeline *Timeline, policy Policy, opts ...BindingOption) (BindingID, error) {
	id, err := c.registry.Register(region, timeline, policy, opts...)
	if err != nil {
		return 0, err
	}
	if !c.passthrough {
		c.registry.Update(c.emulator.State())
	}
	return id, nil
}

// UnregisterScrollBinding removes a binding. It reports whether it existed.
func (c *Controller) UnregisterScrollBinding(id BindingID) bool {
	return c.registry.Unregister(id)
}

// ScrollTo animates to y over the configured scroll duration.
func (c *Controller) ScrollTo(y float64) {
	c.ScrollToWith(y, c.cfg.ScrollDuration, EaseExpo)
}

// ScrollToWith animates to y with an explicit duration and curve. In
// passthrough mode it jumps.
func (c *Controller) ScrollToWith(y float64, d time.Duration, fn ease.TweenFunc) {
	if c.passthrough {
		c.emulator.Jump(y)
		c.container.applyScroll(c.emulator.State().VirtualPosition)
		return
	}
	c.emulator.ScrollTo(y, d, fn)
}

// State returns the latest scroll snapshot.
func (c *Controller) State() ScrollState {
	return c.emulator.State()
}

// Tuning returns the tuning currently applied.
func (c *Controller) Tuning() TuningParameters {
	return c.responsive.Tuning()
}

// Mode returns the responsiveness state.
func (c *Controller) Mode() ResponsivenessState {
	return c.responsive.State()
}

// Subscribe registers fn for every published ScrollState until Unsubscribe
// or Stop.
func (c *Controller) Subscribe(fn func(ScrollState)) Subscription {
	sub := c.emulator.Subscribe(fn)
	c.userSubs = append(c.userSubs, sub)
	return sub
}

// Unsubscribe removes a subscriber added with Subscribe.
func (c *Controller) Unsubscribe(s Subscription) {
	c.emulator.Unsubscribe(s)
	for i, sub := range c.userSubs {
		if sub == s {
			c.userSubs = append(c.userSubs[:i:i], c.userSubs[i+1:]...)
			return
		}
	}
}

// OnBindingEvent registers fn for region boundary crossings until
// RemoveBindingListener or Stop.
func (c *Controller) OnBindingEvent(fn func(BindingEvent)) CallbackHandle {
	return c.registry.OnEvent(fn)
}

// RemoveBindingListener removes a listener added with OnBindingEvent.
func (c *Controller) RemoveBindingListener(h CallbackHandle) {
	c.registry.RemoveListener(h)
}

// AddTickCallback runs fn every tick after the scroll update until
// RemoveTickCallback or Stop.
func (c *Controller) AddTickCallback(fn TickFunc) CallbackHandle {
	return c.ticker.Add(fn)
}

// RemoveTickCallback removes a callback added with AddTickCallback.
func (c *Controller) RemoveTickCallback(h CallbackHandle) {
	c.ticker.Remove(h)
}

// Registry returns the binding registry.
func (c *Controller) Registry() *Registry {
	return c.registry
}

// Container returns the mounted container.
func (c *Controller) Container() *Container {
	return c.container
}

func (c *Controller) restore() {
	if c.store == nil || c.cfg.RestoreKey == "" {
		return
	}
	y, ok, err := c.store.LoadPosition(c.cfg.RestoreKey)
	if err != nil {
		c.logger.Printf("glide: could not restore scroll position: %v", err)
		return
	}
	if ok {
		c.emulator.RefreshBounds()
		c.emulator.Jump(y)
		c.container.applyScroll(c.emulator.State().VirtualPosition)
	}
}

func (c *Controller) save() {
	if c.store == nil || c.cfg.RestoreKey == "" {
		return
	}
	if err := c.store.SavePosition(c.cfg.RestoreKey, c.emulator.State().RealPosition); err != nil {
		c.logger.Printf("glide: could not save scroll position: %v", err)
	}
}
