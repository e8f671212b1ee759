package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"prime-catacombs/config"
	"prime-catacombs/data"
	"prime-catacombs/generation"
	"prime-catacombs/render"
	"prime-catacombs/rooms"
	"prime-catacombs/screens"
	"prime-catacombs/sound"
	"prime-catacombs/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	settings data.Settings
	audio    *sound.AudioSystem
	fonts    *render.Fonts
	renderer *render.RoomRenderer
	log      *systems.MessageLog

	screen  *screens.RoomScreen
	lastRun *rooms.Stats
}

// NewGame creates a new game instance on the title room
func NewGame(settings data.Settings) (*Game, error) {
	fonts, err := render.LoadFonts()
	if err != nil {
		return nil, err
	}

	log := systems.GetMessageLog()
	g := &Game{
		settings: settings,
		audio:    sound.NewAudioSystem(settings.AmbiencePath, log),
		fonts:    fonts,
		renderer: render.NewRoomRenderer(fonts, settings.Torch()),
		log:      log,
	}
	g.showTitle()

	log.Add("Welcome to the prime number catacombs.")
	log.Add("Use the arrow keys to walk. Press Up to enter an archway.")
	return g, nil
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.screen.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrNewGame):
		if err := g.startRun(); err != nil {
			g.log.AddError(err.Error())
			g.showTitle()
		}
		return nil
	case errors.Is(err, screens.ErrReturnToTitle):
		if room, ok := g.screen.Room().(*rooms.MainRoom); ok {
			stats := room.Stats()
			g.lastRun = &stats
		}
		g.audio.Stop()
		g.showTitle()
		return nil
	case errors.Is(err, screens.ErrQuit):
		g.audio.Close()
		return ebiten.Termination
	}
	return err
}

// startRun replaces the title room with the first room of the catacombs
func (g *Game) startRun() error {
	start, err := generation.SeedNumber(g.settings.StartNumber)
	if err != nil {
		return err
	}
	room, err := rooms.NewMainRoom(rooms.Options{
		Start:          start,
		Base:           g.settings.Base,
		AllowComposite: g.settings.AllowComposite,
		Ambience:       g.audio,
		Input:          screens.KeyboardInput{},
		Log:            g.log,
	})
	if err != nil {
		return fmt.Errorf("starting run: %w", err)
	}
	g.screen = screens.NewRoomScreen(room, g.renderer, g.fonts, g.log)
	return nil
}

func (g *Game) showTitle() {
	title := rooms.NewTitleRoom(screens.KeyboardInput{}, g.log, g.settings.ShowTitle)
	g.screen = screens.NewRoomScreen(title, g.renderer, g.fonts, g.log)

	if g.lastRun != nil {
		summary := fmt.Sprintf("Doors entered: %d\nDeepest prime: %s\nTraps: %d",
			g.lastRun.Depth, g.lastRun.Deepest, g.lastRun.Traps)
		g.screen.PushOverlay(screens.NewModalScreen("The catacombs", summary, 320, 120))
		g.lastRun = nil
	}
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
