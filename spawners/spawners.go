package spawners

import (
	"fmt"

	"prime-catacombs/components"
	"prime-catacombs/ecs"
	"prime-catacombs/generation"
)

// Tags shared by the visuals of a room layout
const (
	TagLayout = "layout-entity"
	TagWall   = "wall"
	TagTorch  = "torch-entity"
)

// VisualSpawner manages the creation of room visuals
type VisualSpawner struct {
	world      *ecs.World
	logMessage func(string) // Function for logging messages
}

// NewVisualSpawner creates a spawner for world; logFunc may be nil
func NewVisualSpawner(world *ecs.World, logFunc func(string)) *VisualSpawner {
	return &VisualSpawner{
		world:      world,
		logMessage: logFunc,
	}
}

// CreateArch creates an archway leading to number at position
func (s *VisualSpawner) CreateArch(position int, number generation.CatacombNumber, label string) ecs.EntityID {
	id := s.world.CreateVisual(components.Arch, &components.ArchComponent{
		Position: position,
		Number:   number,
		Label:    label,
	}, TagLayout, TagWall)
	name := "archway"
	if label != "" {
		name += " " + label
	}
	nameComp := components.NewNameComponent(name)
	s.world.AddComponent(id, components.Name, nameComp)

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("%s created at %d", nameComp, position))
	}
	return id
}

// CreateBlankWall creates a wall without a door; graffiti may be nil
func (s *VisualSpawner) CreateBlankWall(position int, graffiti *generation.Graffiti) ecs.EntityID {
	return s.world.CreateVisual(components.BlankWall, &components.BlankWallComponent{
		Position: position,
		Graffiti: graffiti,
	}, TagLayout, TagWall)
}

// CreateTorch creates an unlit torch beside the wall at position
func (s *VisualSpawner) CreateTorch(position int, intensity float64) ecs.EntityID {
	return s.world.CreateVisual(components.Torch, &components.TorchComponent{
		Position:  position,
		Intensity: intensity,
	}, TagLayout, TagTorch)
}

// CreateFloor creates the floor under the slots from..to
func (s *VisualSpawner) CreateFloor(from, to int) ecs.EntityID {
	return s.world.CreateVisual(components.Floor, &components.FloorComponent{From: from, To: to}, TagLayout)
}
