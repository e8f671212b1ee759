package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"

	"prime-catacombs/config"
	"prime-catacombs/generation"
)

// ErrInvalidSettings is returned when a settings file holds unusable values
var ErrInvalidSettings = errors.New("invalid settings")

// Settings configures a game session
type Settings struct {
	StartNumber    string `json:"startNumber"`    // Decimal number of the first room
	Base           int    `json:"base"`           // Numeral base, 2 to 36
	AllowComposite bool   `json:"allowComposite"` // Composite numbers become archways too
	Fullscreen     bool   `json:"fullscreen"`
	ShowTitle      bool   `json:"showTitle"`    // Draw the title text on the title room
	AmbiencePath   string `json:"ambiencePath"` // .ogg or .mp3 file; empty uses the built-in drone
	TorchColor     string `json:"torchColor"`   // Flame color in hex format (e.g. "#FFA030")
}

// DefaultSettings returns the settings used when no file is given
func DefaultSettings() Settings {
	return Settings{
		StartNumber: config.DefaultStartNumber,
		Base:        config.DefaultBase,
		ShowTitle:   true,
		TorchColor:  "#FFA030",
	}
}

// LoadSettingsFromFile reads a JSON settings file; missing fields keep their defaults
func LoadSettingsFromFile(filePath string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("%w: %s: %v", ErrInvalidSettings, filePath, err)
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("%s: %w", filePath, err)
	}
	return settings, nil
}

// Validate checks the base and the start number
func (s Settings) Validate() error {
	if err := generation.ValidateBase(s.Base); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if _, err := generation.SeedNumber(s.StartNumber); err != nil {
		return fmt.Errorf("%w: start number: %v", ErrInvalidSettings, err)
	}
	if s.TorchColor != "" {
		if _, ok := parseHex(s.TorchColor); !ok {
			return fmt.Errorf("%w: torch color %q", ErrInvalidSettings, s.TorchColor)
		}
	}
	return nil
}

// Torch returns the flame color, white when unset
func (s Settings) Torch() color.RGBA {
	return ParseHexColor(s.TorchColor)
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) color.RGBA {
	c, ok := parseHex(hex)
	if !ok {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}
	return c
}

func parseHex(hex string) (c color.RGBA, ok bool) {
	c.A = 0xff
	if len(hex) != 7 {
		return c, false
	}
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, false
	}
	return c, true
}
