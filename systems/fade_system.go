package systems

import (
	"prime-catacombs/components"
	"prime-catacombs/ecs"
)

// FadeHooks are called by the fade system while a fade runs
type FadeHooks struct {
	// OnStep receives the alpha before each step
	OnStep func(alpha float64)
	// OnFinish runs once, after the last step
	OnFinish func()
}

// FadeSystem advances fade overlays
type FadeSystem struct {
	hooks map[ecs.EntityID]FadeHooks
}

// NewFadeSystem creates a new fade system
func NewFadeSystem() *FadeSystem {
	return &FadeSystem{
		hooks: make(map[ecs.EntityID]FadeHooks),
	}
}

// Spawn creates a fade entity and registers its hooks
func (s *FadeSystem) Spawn(world *ecs.World, fade *components.FadeComponent, hooks FadeHooks) ecs.EntityID {
	id := world.CreateVisual(components.Fade, fade, "fade")
	s.hooks[id] = hooks
	return id
}

// Update steps every running fade
func (s *FadeSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.GetEntitiesWithTag("fade") {
		comp, ok := world.GetComponent(entity.ID, components.Fade)
		if !ok {
			continue
		}
		fade := comp.(*components.FadeComponent)
		if fade.Done {
			continue
		}

		fade.Wait--
		if fade.Wait > 0 {
			continue
		}
		fade.Wait = fade.Interval

		hooks := s.hooks[entity.ID]
		if hooks.OnStep != nil {
			hooks.OnStep(fade.Alpha)
		}
		if fade.Direction == components.FadeIn {
			fade.Alpha = snap(fade.Alpha - fade.Step)
			fade.Done = fade.Alpha == 0
		} else {
			fade.Alpha = snap(fade.Alpha + fade.Step)
			fade.Done = fade.Alpha == 1
		}

		if fade.Done {
			delete(s.hooks, entity.ID)
			if fade.Direction == components.FadeIn {
				world.DestroyVisual(entity.ID)
			}
			if hooks.OnFinish != nil {
				hooks.OnFinish()
			}
		}
	}
}

// snap clamps alpha to [0,1] and absorbs the rounding of repeated steps
func snap(alpha float64) float64 {
	const epsilon = 1e-9
	switch {
	case alpha < epsilon:
		return 0
	case alpha > 1-epsilon:
		return 1
	}
	return alpha
}

// Remove destroys a fade entity before it finishes
func (s *FadeSystem) Remove(world *ecs.World, id ecs.EntityID) {
	delete(s.hooks, id)
	world.DestroyVisual(id)
}
