// Package ecs provides ECS adapters for ectofx.
//
// [NewDonburiSink] bridges the Director's applied triggers into a [Donburi]
// world as typed events; subscribe to [EffectEventType] to observe them.
// [SubscribeTriggers] goes the other way: game systems publish
// [TriggerEventType] events and the Director applies them when the world
// processes its event queue.
//
// Usage:
//
//	director.SetEventSink(ecs.NewDonburiSink(world))
//	ecs.SubscribeTriggers(world, director, nil)
//	ecs.TriggerEventType.Publish(world, ectofx.Event{Kind: ectofx.EventBeamStart})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
