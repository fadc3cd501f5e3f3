// Package ecs provides ECS adapters for nom.
package ecs

import (
	nom "github.com/i8degrees/nomlib-sub004"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ActionEventType is the Donburi event type for action completions.
// Subscribe to this in your ECS systems to react when a named action ends.
var ActionEventType = events.NewEventType[nom.ActionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Completion events are published to ActionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) nom.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event nom.ActionEvent) {
	ActionEventType.Publish(s.world, event)
}
