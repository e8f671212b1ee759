package systems

import (
	"testing"

	"prime-catacombs/components"
	"prime-catacombs/ecs"
)

func TestFadeOutReportsAlphaAndFinishes(t *testing.T) {
	world := ecs.NewWorld()
	fades := NewFadeSystem()

	var steps []float64
	finished := 0
	fade := components.NewFadeOut(2, 0.25, 3)
	fades.Spawn(world, fade, FadeHooks{
		OnStep:   func(alpha float64) { steps = append(steps, alpha) },
		OnFinish: func() { finished++ },
	})

	// First step after interval + delay ticks, then one per interval
	for i := 0; i < 4; i++ {
		fades.Update(world, 0)
	}
	if len(steps) != 0 {
		t.Fatalf("stepped during delay: %v", steps)
	}
	fades.Update(world, 0)
	if len(steps) != 1 || steps[0] != 0 {
		t.Fatalf("steps = %v, want [0]", steps)
	}

	for i := 0; i < 20; i++ {
		fades.Update(world, 0)
	}
	want := []float64{0, 0.25, 0.5, 0.75}
	if len(steps) != len(want) {
		t.Fatalf("steps = %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d alpha = %v, want %v", i, steps[i], want[i])
		}
	}
	if finished != 1 || !fade.Done || fade.Alpha != 1 {
		t.Errorf("finished = %d done = %v alpha = %v", finished, fade.Done, fade.Alpha)
	}
}

func TestFadeInRemovesItself(t *testing.T) {
	world := ecs.NewWorld()
	fades := NewFadeSystem()
	id := fades.Spawn(world, components.NewFadeIn(2, 0.05, 1), FadeHooks{})

	for i := 0; i < 200; i++ {
		fades.Update(world, 0)
	}
	if world.GetEntity(id) != nil {
		t.Errorf("finished fade-in still in the world")
	}
}
