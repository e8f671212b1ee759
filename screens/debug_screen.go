package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"prime-catacombs/systems"
)

// DebugScreen shows the message log in a modal window
type DebugScreen struct {
	*BaseScreen
	log          *systems.MessageLog
	scrollOffset int
	width        int
	height       int
	background   color.Color
}

// NewDebugScreen creates a new debug screen
func NewDebugScreen(log *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		BaseScreen: NewBaseScreen(),
		log:        log,
		width:      600,
		height:     400,
		background: color.RGBA{0, 0, 0, 230},
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < len(s.log.Messages)-1 {
		s.scrollOffset++
	}

	// ESC or F1 closes the debug window
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}
	return nil
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := float32(bounds.Dx()-s.width) / 2
	y := float32(bounds.Dy()-s.height) / 2
	w, h := float32(s.width), float32(s.height)

	vector.DrawFilledRect(screen, x, y, w, h, s.background, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.White, false)
	ebitenutil.DebugPrintAt(screen, "MESSAGE LOG", int(x)+(s.width-len("MESSAGE LOG")*6)/2, int(y)+6)

	startY := 30
	lineHeight := 16
	maxLines := (s.height - startY - 20) / lineHeight
	messages := s.log.Messages

	startIdx := min(s.scrollOffset, max(len(messages)-maxLines, 0))
	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		lineY := float32(startY + i*lineHeight)
		// Color swatch for the message type
		vector.DrawFilledRect(screen, x+8, y+lineY+4, 6, 6, msg.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, int(x)+20, int(y+lineY))
	}

	if len(messages) > maxLines {
		barHeight := float32(maxLines) / float32(len(messages)) * float32(s.height-startY)
		barY := float32(startY) + float32(startIdx)/float32(len(messages))*float32(s.height-startY)
		vector.DrawFilledRect(screen, x+w-10, y+barY, 5, barHeight, color.White, false)
	}

	ebitenutil.DebugPrintAt(screen, "Up/Down: Scroll  ESC: Close", int(x)+10, int(y)+s.height-20)
}
