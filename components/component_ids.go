package components

import (
	"prime-catacombs/ecs"
)

// Define component IDs for the catacomb visuals
const (
	Arch ecs.ComponentID = iota
	BlankWall
	Torch
	Floor
	Camera
	Fade
	Name
)
