package sound

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"

	"prime-catacombs/systems"
)

const sampleRate = 44100

// AudioSystem plays the ambience of the catacombs
type AudioSystem struct {
	audioContext *audio.Context
	player       *audio.Player
	file         io.Closer
	path         string
	volume       float64
	log          *systems.MessageLog
}

// NewAudioSystem creates an audio system for the file at path.
// An empty path plays the synthesized drone.
func NewAudioSystem(path string, log *systems.MessageLog) *AudioSystem {
	if log == nil {
		log = systems.GetMessageLog()
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &AudioSystem{
		audioContext: ctx,
		path:         path,
		volume:       1.0,
		log:          log,
	}
}

// Play starts the ambience; loop repeats it forever
func (s *AudioSystem) Play(loop bool) {
	if s.player == nil {
		player, err := s.newPlayer(loop)
		if err != nil {
			s.log.AddError(fmt.Sprintf("Ambience unavailable: %v", err))
			return
		}
		s.player = player
	}
	s.player.SetVolume(s.volume)
	s.player.Play()
}

// Stop stops the ambience and releases the stream
func (s *AudioSystem) Stop() {
	if s.player != nil {
		s.player.Close()
		s.player = nil
	}
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
}

// IsPlaying returns whether the ambience is currently playing
func (s *AudioSystem) IsPlaying() bool {
	return s.player != nil && s.player.IsPlaying()
}

// SetVolume sets the volume for the ambience (0.0 to 1.0)
func (s *AudioSystem) SetVolume(volume float64) {
	s.volume = min(max(volume, 0), 1)
	if s.player != nil {
		s.player.SetVolume(s.volume)
	}
}

// GetVolume returns the current volume setting
func (s *AudioSystem) GetVolume() float64 {
	return s.volume
}

// Close releases the player
func (s *AudioSystem) Close() {
	s.Stop()
}

func (s *AudioSystem) newPlayer(loop bool) (*audio.Player, error) {
	stream, length, err := s.openStream()
	if err != nil {
		s.log.AddError(fmt.Sprintf("Falling back to the drone: %v", err))
		drone := Drone(sampleRate, droneSeconds)
		stream, length = bytes.NewReader(drone), int64(len(drone))
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, length)
	}
	player, err := s.audioContext.NewPlayer(src)
	if err != nil {
		s.Stop()
		return nil, fmt.Errorf("failed to create audio player: %w", err)
	}
	return player, nil
}

// openStream decodes the configured file; an empty path selects the drone
func (s *AudioSystem) openStream() (io.ReadSeeker, int64, error) {
	if s.path == "" {
		drone := Drone(sampleRate, droneSeconds)
		return bytes.NewReader(drone), int64(len(drone)), nil
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open audio file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, file)
		if err != nil {
			file.Close()
			return nil, 0, fmt.Errorf("failed to decode audio file: %w", err)
		}
		s.file = file
		return stream, stream.Length(), nil
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, file)
		if err != nil {
			file.Close()
			return nil, 0, fmt.Errorf("failed to decode audio file: %w", err)
		}
		s.file = file
		return stream, stream.Length(), nil
	}
	file.Close()
	return nil, 0, fmt.Errorf("unsupported audio format: %s", s.path)
}
