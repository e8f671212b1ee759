package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"prime-catacombs/config"
	"prime-catacombs/render"
	"prime-catacombs/rooms"
	"prime-catacombs/systems"
)

// RoomScreen runs a room and draws it
type RoomScreen struct {
	*BaseScreen
	room        rooms.Room
	renderer    *render.RoomRenderer
	fonts       *render.Fonts
	log         *systems.MessageLog
	screenStack *ScreenStack
}

// NewRoomScreen creates a screen for room
func NewRoomScreen(room rooms.Room, renderer *render.RoomRenderer, fonts *render.Fonts, log *systems.MessageLog) *RoomScreen {
	return &RoomScreen{
		BaseScreen:  NewBaseScreen(),
		room:        room,
		renderer:    renderer,
		fonts:       fonts,
		log:         log,
		screenStack: NewScreenStack(),
	}
}

// Room returns the room shown by the screen
func (s *RoomScreen) Room() rooms.Room {
	return s.room
}

// PushOverlay opens a modal over the room; the room is paused while it is open
func (s *RoomScreen) PushOverlay(overlay Screen) {
	s.screenStack.Push(overlay)
}

// Update advances the room and reports its transition as a screen error
func (s *RoomScreen) Update() error {
	// Toggle the message log with F1
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) && s.screenStack.Empty() {
		s.screenStack.Push(NewDebugScreen(s.log))
		return nil
	}

	if !s.screenStack.Empty() {
		return s.screenStack.Update()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if _, ok := s.room.(*rooms.TitleRoom); ok {
			return ErrQuit
		}
		return ErrReturnToTitle
	}

	s.room.Update()

	switch s.room.Transition() {
	case rooms.TransitionTitle:
		return ErrReturnToTitle
	case rooms.TransitionCatacombs:
		return ErrNewGame
	}
	return nil
}

// Draw draws the room, its HUD and any overlay
func (s *RoomScreen) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.room.World())

	switch room := s.room.(type) {
	case *rooms.TitleRoom:
		if room.ShowTitle() {
			s.renderer.DrawTitle(screen)
		}
	case *rooms.MainRoom:
		s.drawHUD(screen, room)
	}

	s.screenStack.Draw(screen)
}

func (s *RoomScreen) drawHUD(screen *ebiten.Image, room *rooms.MainRoom) {
	if err := room.Err(); err != nil {
		ebitenutil.DebugPrintAt(screen, "The catacombs collapsed: "+err.Error(), 10, config.ScreenHeight/2)
		return
	}

	stats := room.Stats()
	op := &text.DrawOptions{}
	op.GeoM.Translate(12, 10)
	op.ColorScale.ScaleWithColor(color.RGBA{200, 200, 200, 255})
	text.Draw(screen, fmt.Sprintf("Room %s  Depth %d", room.Current().Value, stats.Depth), s.fonts.HUD, op)

	// Torch gauge
	const gaugeWidth, gaugeHeight = 160, 8
	x := float32(config.ScreenWidth - gaugeWidth - 12)
	vector.StrokeRect(screen, x, 12, gaugeWidth, gaugeHeight, 1, color.RGBA{120, 110, 100, 255}, false)
	fill := float32(room.Torch().Intensity()) * gaugeWidth
	vector.DrawFilledRect(screen, x, 12, fill, gaugeHeight, color.RGBA{255, 160, 48, 255}, false)
}
