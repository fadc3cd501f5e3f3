// Package ecs bridges nom's action completions into ECS worlds.
//
// The primary adapter is [NewDonburiStore], which publishes a
// nom.ActionEvent into a [Donburi] world every time a named action run by a
// Scene completes on its own. Cancelled or replaced actions publish nothing.
// Subscribe to [ActionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
