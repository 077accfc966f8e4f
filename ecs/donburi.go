package ecs

import (
	"github.com/phanxgames/glide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ScrollEventType is the Donburi event type for scroll snapshots.
var ScrollEventType = events.NewEventType[glide.ScrollState]()

// BindingEventType is the Donburi event type for binding boundary crossings.
var BindingEventType = events.NewEventType[glide.BindingEvent]()

// Bridge republishes a Controller's events into a Donburi world.
type Bridge struct {
	world    donburi.World
	ctl      *glide.Controller
	sub      glide.Subscription
	listener glide.CallbackHandle
	closed   bool
}

// NewDonburiBridge subscribes to ctl. Events are queued on world and
// delivered when the world's events are processed. Stopping ctl also
// detaches the bridge.
func NewDonburiBridge(world donburi.World, ctl *glide.Controller) *Bridge {
	b := &Bridge{world: world, ctl: ctl}
	b.sub = ctl.Subscribe(func(s glide.ScrollState) {
		ScrollEventType.Publish(b.world, s)
	})
	b.listener = ctl.OnBindingEvent(func(e glide.BindingEvent) {
		BindingEventType.Publish(b.world, e)
	})
	return b
}

// Close stops republishing.
func (b *Bridge) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.ctl.Unsubscribe(b.sub)
	b.ctl.RemoveBindingListener(b.listener)
}
