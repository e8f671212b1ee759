package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"prime-catacombs/config"
)

// Fonts holds the faces used to draw rooms and overlays
type Fonts struct {
	Label    *text.GoTextFace // Archway numbers
	Graffiti *text.GoTextFace
	Title    *text.GoTextFace
	HUD      *text.GoTextFace
}

// LoadFonts loads the embedded Go fonts
func LoadFonts() (*Fonts, error) {
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load mono font: %w", err)
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load sans font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load sans bold font: %w", err)
	}

	return &Fonts{
		Label:    &text.GoTextFace{Source: mono, Size: config.LabelSize},
		Graffiti: &text.GoTextFace{Source: regular, Size: config.GraffitiSize},
		Title:    &text.GoTextFace{Source: bold, Size: config.TitleSize},
		HUD:      &text.GoTextFace{Source: mono, Size: 14},
	}, nil
}
