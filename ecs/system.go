package ecs

// System is advanced once per game tick
type System interface {
	// Update is called once per tick; dt is the tick length in seconds
	Update(world *World, dt float64)
}
