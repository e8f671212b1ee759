package systems

import (
	"prime-catacombs/ecs"
)

// TimerID names a countdown
type TimerID string

type countdown struct {
	remaining int
	period    int
	repeating bool
}

// TimerSystem runs tick countdowns and reports them when they reach zero.
// Countdowns fire in the order they were set.
type TimerSystem struct {
	timers  map[TimerID]*countdown
	order   []TimerID
	onFired func(TimerID)
}

// NewTimerSystem creates a timer system that calls onFired for every expired countdown
func NewTimerSystem(onFired func(TimerID)) *TimerSystem {
	return &TimerSystem{
		timers:  make(map[TimerID]*countdown),
		onFired: onFired,
	}
}

// SetCountdown starts or replaces a countdown; it fires after ticks ticks
func (s *TimerSystem) SetCountdown(id TimerID, ticks int, repeating bool) {
	ticks = max(ticks, 1)
	if _, exists := s.timers[id]; !exists {
		s.order = append(s.order, id)
	}
	s.timers[id] = &countdown{remaining: ticks, period: ticks, repeating: repeating}
}

// ClearCountdown stops a countdown; clearing an unknown id does nothing
func (s *TimerSystem) ClearCountdown(id TimerID) {
	if _, exists := s.timers[id]; !exists {
		return
	}
	delete(s.timers, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Active reports whether a countdown is running
func (s *TimerSystem) Active(id TimerID) bool {
	_, exists := s.timers[id]
	return exists
}

// Remaining returns the ticks left on a countdown, or 0 when it is not running
func (s *TimerSystem) Remaining(id TimerID) int {
	if t, exists := s.timers[id]; exists {
		return t.remaining
	}
	return 0
}

// Tick decrements every countdown once and fires the expired ones
func (s *TimerSystem) Tick() {
	ids := append([]TimerID(nil), s.order...)
	pending := make([]*countdown, len(ids))
	for i, id := range ids {
		pending[i] = s.timers[id]
	}

	for i, id := range ids {
		t := pending[i]
		// Skip countdowns cleared or replaced by an earlier callback
		if s.timers[id] != t {
			continue
		}
		t.remaining--
		if t.remaining > 0 {
			continue
		}
		if t.repeating {
			t.remaining = t.period
		} else {
			s.ClearCountdown(id)
		}
		if s.onFired != nil {
			s.onFired(id)
		}
	}
}

// Update ticks the timers once per frame
func (s *TimerSystem) Update(world *ecs.World, dt float64) {
	s.Tick()
}
