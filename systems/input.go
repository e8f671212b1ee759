package systems

// Direction is one of the inputs a camera reacts to
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionConfirm
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionConfirm:
		return "confirm"
	}
	return "unknown"
}

// InputSource is polled once per tick
type InputSource interface {
	IsDirectionPressed(d Direction) bool
}

// NoInput never reports a pressed direction
type NoInput struct{}

func (NoInput) IsDirectionPressed(Direction) bool { return false }

// Ambience is the looping background sound of the catacombs
type Ambience interface {
	Play(loop bool)
	Stop()
	SetVolume(volume float64)
	IsPlaying() bool
}

// SilentAmbience is used when no audio device is available
type SilentAmbience struct {
	playing bool
	volume  float64
}

func (s *SilentAmbience) Play(bool)                { s.playing = true }
func (s *SilentAmbience) Stop()                    { s.playing = false }
func (s *SilentAmbience) SetVolume(volume float64) { s.volume = volume }
func (s *SilentAmbience) IsPlaying() bool          { return s.playing }
