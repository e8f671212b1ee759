package systems

import (
	"prime-catacombs/components"
	"prime-catacombs/config"
	"prime-catacombs/ecs"
)

// TorchSystem burns down the torch timer and lights the torches near the camera
type TorchSystem struct {
	remaining int
	burntOut  bool
	onBurnOut func()
}

// NewTorchSystem creates a torch with ticks of light left
func NewTorchSystem(ticks int, onBurnOut func()) *TorchSystem {
	return &TorchSystem{
		remaining: ticks,
		onBurnOut: onBurnOut,
	}
}

// Remaining returns the ticks of light left
func (s *TorchSystem) Remaining() int {
	return s.remaining
}

// BurntOut reports whether the torch has run out
func (s *TorchSystem) BurntOut() bool {
	return s.burntOut
}

// AddTime adds ticks of light, as when a door is entered
func (s *TorchSystem) AddTime(ticks int) {
	if s.burntOut {
		return
	}
	s.remaining += ticks
}

// Intensity returns the brightness of the torches, from 0 to 1
func (s *TorchSystem) Intensity() float64 {
	return clamp(float64(s.remaining)/float64(config.TorchMaxTicks), 0, 1)
}

// Update dims the torches and burns one tick while every camera stands still
func (s *TorchSystem) Update(world *ecs.World, dt float64) {
	intensity := s.Intensity()
	for _, entity := range world.GetEntitiesWithTag("torch-entity") {
		if comp, ok := world.GetComponent(entity.ID, components.Torch); ok {
			comp.(*components.TorchComponent).Intensity = intensity
		}
	}

	if s.burntOut {
		return
	}
	for _, entity := range world.GetEntitiesWithTag("camera") {
		if comp, ok := world.GetComponent(entity.ID, components.Camera); ok && IsMoving(comp.(*components.CameraComponent)) {
			return
		}
	}

	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.burntOut = true
		if s.onBurnOut != nil {
			s.onBurnOut()
		}
	}
}

// LightTorches lights the torches of the slot at position and its neighbours
func LightTorches(world *ecs.World, position int) {
	for _, entity := range world.GetEntitiesWithTag("torch-entity") {
		comp, ok := world.GetComponent(entity.ID, components.Torch)
		if !ok {
			continue
		}
		torch := comp.(*components.TorchComponent)
		torch.Lit = torch.Position >= position-1 && torch.Position <= position+1
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
