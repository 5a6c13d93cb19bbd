package ecs

import (
	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PressEventType is the Donburi event type for button presses.
var PressEventType = events.NewEventType[arbor.PressContext]()

// PublishPresses returns a callback that publishes every press it receives
// to PressEventType in world. Assign it to Button.OnPress.
func PublishPresses(world donburi.World) func(arbor.PressContext) {
	return func(pc arbor.PressContext) {
		PressEventType.Publish(world, pc)
	}
}

// BindButtons makes each button publish its presses into world. A callback
// already set on a button keeps running before the event is published.
func BindButtons(world donburi.World, buttons ...*arbor.Button) {
	publish := PublishPresses(world)
	for _, b := range buttons {
		prev := b.OnPress
		if prev == nil {
			b.OnPress = publish
			continue
		}
		b.OnPress = func(pc arbor.PressContext) {
			prev(pc)
			publish(pc)
		}
	}
}
