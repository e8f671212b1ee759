package components

import (
	"prime-catacombs/generation"
)

// ArchComponent is an enterable archway leading to the room of Number
type ArchComponent struct {
	Position int    // Relative position of the slot
	Number   generation.CatacombNumber
	Label    string // Number rendered in the room's base
}

// BlankWallComponent is a wall slot without a door
type BlankWallComponent struct {
	Position int
	Graffiti *generation.Graffiti // nil when undecorated
}

// TorchComponent is the torch hanging beside a slot
type TorchComponent struct {
	Position  int
	Lit       bool
	Intensity float64 // 0..1, follows the remaining torch time
}

// FloorComponent spans the whole room
type FloorComponent struct {
	From, To int // Relative positions covered
}

// FadeDirection tells whether a fade reveals or hides the room
type FadeDirection int

const (
	FadeIn FadeDirection = iota
	FadeOut
)

// FadeComponent is a full screen black overlay
type FadeComponent struct {
	Direction FadeDirection
	Alpha     float64 // Opacity of the overlay
	Step      float64 // Alpha change per step
	Interval  int     // Ticks between steps
	Wait      int     // Ticks until the next step
	Done      bool
}

// NewFadeIn starts fully black and clears after delay ticks
func NewFadeIn(interval int, step float64, delay int) *FadeComponent {
	return &FadeComponent{Direction: FadeIn, Alpha: 1, Step: step, Interval: max(interval, 1), Wait: max(delay, 1)}
}

// NewFadeOut starts fully transparent and darkens after delay ticks
func NewFadeOut(interval int, step float64, delay int) *FadeComponent {
	return &FadeComponent{Direction: FadeOut, Alpha: 0, Step: step, Interval: max(interval, 1), Wait: max(interval, 1) + max(delay, 1)}
}
