package config

// Game loop rate; every duration below is counted in ticks of this loop
const TicksPerSecond = 60

// Camera navigation
const (
	MovementDelayTicks = 10 // Input ignored after a camera is created
	MoveTicks          = 40 // One step left or right
	ZoomTicks          = 80 // Zooming into an archway
)

// Room composition
const (
	// Chance that a blank wall carries graffiti
	DecorationProbability = 0.5

	DefaultStartNumber = "2"
	DefaultBase        = 2
)

// Torch timer
const (
	TorchStartTicks   = 3 * 60 * TicksPerSecond
	TorchMaxTicks     = 3 * 60 * TicksPerSecond
	TorchTicksPerDoor = 5 * TicksPerSecond
	LoseDelayTicks    = 5 * TicksPerSecond
)

// Fades
const (
	FadeInInterval  = 2
	FadeInStep      = 0.05
	DeadEndDelay    = 5 * TicksPerSecond
	DeadEndInterval = 20
	DeadEndStep     = 0.05

	// How often the title screen checks whether the camera has moved
	TitleMovementCheckTicks = 11
)
