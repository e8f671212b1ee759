package rooms

import (
	"fmt"

	"prime-catacombs/config"
	"prime-catacombs/ecs"
	"prime-catacombs/systems"
)

// Transition is what a room asks the game to do next
type Transition int

const (
	TransitionNone Transition = iota
	// TransitionTitle returns to the title room
	TransitionTitle
	// TransitionCatacombs starts a new run from the title room
	TransitionCatacombs
)

func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionTitle:
		return "title"
	case TransitionCatacombs:
		return "catacombs"
	}
	return "unknown"
}

// Room is a navigable area driven by the game loop
type Room interface {
	systems.DoorSelector
	// Update advances the room by one tick
	Update()
	World() *ecs.World
	Transition() Transition
}

// tickLength is the dt handed to the room systems
const tickLength = 1.0 / config.TicksPerSecond

// disposeAll destroys every tracked visual exactly once and reports the ones already gone
func disposeAll(world *ecs.World, ids []ecs.EntityID, log *systems.MessageLog) int {
	disposed := 0
	for _, id := range ids {
		if world.DestroyVisual(id) {
			disposed++
		} else {
			log.AddError(fmt.Sprintf("visual %d already disposed", id))
		}
	}
	return disposed
}
