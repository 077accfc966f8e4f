// Package ecs bridges glide's scroll runtime into a [Donburi] world.
//
// [NewDonburiBridge] subscribes to a Controller and republishes every
// ScrollState snapshot and binding boundary crossing as typed Donburi events.
// Subscribe to [ScrollEventType] or [BindingEventType] in your ECS systems
// and drain them with events.ProcessAllEvents.
//
// Usage:
//
//	bridge := ecs.NewDonburiBridge(world, ctl)
//	defer bridge.Close()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
