package components

// CameraState is the navigation state of a room camera
type CameraState int

const (
	CameraIdle CameraState = iota
	CameraMovingLeft
	CameraMovingRight
	CameraZoomingIn
	// CameraEntered is reached after a zoom; the room disposes the camera
	CameraEntered
)

func (s CameraState) String() string {
	switch s {
	case CameraIdle:
		return "idle"
	case CameraMovingLeft:
		return "moving left"
	case CameraMovingRight:
		return "moving right"
	case CameraZoomingIn:
		return "zooming in"
	case CameraEntered:
		return "entered"
	}
	return "unknown"
}

// CameraComponent tracks where the viewer stands in a room
type CameraComponent struct {
	RelativePosition int
	State            CameraState
	StartupDelay     int // Ticks of ignored input left after creation
	Countdown        int // Ticks left in the current animation
	Duration         int // Total ticks of the current animation
}

// Progress returns how far the current animation has run, from 0 to 1
func (c *CameraComponent) Progress() float64 {
	if c.Duration <= 0 {
		return 0
	}
	return 1 - float64(c.Countdown)/float64(c.Duration)
}

// Offset returns the eased horizontal offset of a move, in slots
func (c *CameraComponent) Offset() float64 {
	p := c.Progress()
	eased := p * p * (3 - 2*p)
	switch c.State {
	case CameraMovingLeft:
		return -eased
	case CameraMovingRight:
		return eased
	}
	return 0
}
