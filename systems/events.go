package systems

import (
	"prime-catacombs/ecs"
	"prime-catacombs/generation"
)

// Event type constants
const (
	EventCameraUpdate ecs.EventType = "camera_update"
	EventMovedTo      ecs.EventType = "moved_to"
	EventDoorEntered  ecs.EventType = "door_entered"
	EventTrapped      ecs.EventType = "trapped"
	EventRecovery     ecs.EventType = "recovery"
	EventTorchOut     ecs.EventType = "torch_out"
	EventRoomStalled  ecs.EventType = "room_stalled"
)

// CameraUpdateEvent is emitted whenever a camera changes state
type CameraUpdateEvent struct {
	CameraID ecs.EntityID
	From     string
	To       string
	Position int
}

// Type returns the event type
func (e CameraUpdateEvent) Type() ecs.EventType {
	return EventCameraUpdate
}

// MovedToEvent is emitted when the viewer settles in front of a slot
type MovedToEvent struct {
	Position int
}

// Type returns the event type
func (e MovedToEvent) Type() ecs.EventType {
	return EventMovedTo
}

// DoorEnteredEvent is emitted after the viewer walks through a door
type DoorEnteredEvent struct {
	Position int
	From     generation.CatacombNumber
	To       generation.CatacombNumber
	Depth    int // Doors entered in this run, including this one
}

// Type returns the event type
func (e DoorEnteredEvent) Type() ecs.EventType {
	return EventDoorEntered
}

// TrappedEvent is emitted when a room turns out to be a dead end
type TrappedEvent struct {
	Number generation.CatacombNumber
	Depth  int
}

// Type returns the event type
func (e TrappedEvent) Type() ecs.EventType {
	return EventTrapped
}

// RecoveryEvent is emitted when a door is entered at a slot without an arch
type RecoveryEvent struct {
	Position int
	Reason   string
}

// Type returns the event type
func (e RecoveryEvent) Type() ecs.EventType {
	return EventRecovery
}

// TorchOutEvent is emitted when the torch burns out
type TorchOutEvent struct {
	Depth int
}

// Type returns the event type
func (e TorchOutEvent) Type() ecs.EventType {
	return EventTorchOut
}

// RoomStalledEvent is emitted when a room could not be built
type RoomStalledEvent struct {
	Err error
}

// Type returns the event type
func (e RoomStalledEvent) Type() ecs.EventType {
	return EventRoomStalled
}
