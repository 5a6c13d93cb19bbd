// Package ecs bridges arbor button presses into a [Donburi] world.
//
// Presses are published as [PressEventType] events. Subscribe to it in your
// ECS systems and drain the queue with ProcessEvents each tick:
//
//	ecs.BindButtons(world, save, load)
//	ecs.PressEventType.Subscribe(world, onPress)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
