package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marker struct{ label string }

type pingEvent struct{ n int }

func (pingEvent) Type() EventType { return "ping" }

func TestCreateAndDestroyVisual(t *testing.T) {
	w := NewWorld()
	a := w.CreateVisual(0, &marker{"a"}, "layout")
	b := w.CreateVisual(0, &marker{"b"}, "layout", "torch")

	require.NotEqual(t, a, b)
	require.Equal(t, 2, w.EntityCount())

	assert.True(t, w.DestroyVisual(a), "first destroy")
	assert.False(t, w.DestroyVisual(a), "second destroy")
	assert.False(t, w.HasComponent(a, 0))
	assert.Len(t, w.GetEntitiesWithTag("layout"), 1)
	assert.Len(t, w.GetEntitiesWithTag("torch"), 1)

	comp, ok := w.GetComponent(b, 0)
	require.True(t, ok)
	assert.Equal(t, "b", comp.(*marker).label)
}

func TestIDsAreNotReused(t *testing.T) {
	w := NewWorld()
	first := w.CreateVisual(0, nil)
	w.DestroyVisual(first)
	second := w.CreateVisual(0, nil)
	assert.Greater(t, second, first)
}

func TestTagQueriesAreOrdered(t *testing.T) {
	w := NewWorld()
	var want []EntityID
	for i := 0; i < 20; i++ {
		want = append(want, w.CreateVisual(1, &marker{}, "slot"))
	}

	var got []EntityID
	for _, e := range w.GetEntitiesWithTag("slot") {
		got = append(got, e.ID)
	}
	assert.Equal(t, want, got)

	var byComponent []EntityID
	for _, e := range w.GetEntitiesWithComponent(1) {
		byComponent = append(byComponent, e.ID)
	}
	assert.Equal(t, want, byComponent)
}

func TestEventsDispatchInOrder(t *testing.T) {
	w := NewWorld()
	var seen []int
	w.GetEventManager().Subscribe("ping", func(e Event) {
		seen = append(seen, e.(pingEvent).n)
	})
	w.GetEventManager().Subscribe("ping", func(e Event) {
		seen = append(seen, -e.(pingEvent).n)
	})
	w.EmitEvent(pingEvent{n: 3})
	require.Equal(t, []int{3, -3}, seen)

	w.GetEventManager().Clear("ping")
	w.EmitEvent(pingEvent{n: 4})
	assert.Equal(t, []int{3, -3}, seen, "cleared handlers still ran")
}

type countingSystem struct{ ticks int }

func (s *countingSystem) Update(world *World, dt float64) { s.ticks++ }

func TestUpdateRunsSystems(t *testing.T) {
	w := NewWorld()
	a, b := &countingSystem{}, &countingSystem{}
	w.AddSystem(a)
	w.AddSystem(b)
	w.Update(1.0 / 60)
	w.Update(1.0 / 60)
	assert.Equal(t, 2, a.ticks)
	assert.Equal(t, 2, b.ticks)
}
