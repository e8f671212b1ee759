package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"prime-catacombs/config"
	"prime-catacombs/data"
)

func main() {
	settingsPath := flag.String("settings", "", "JSON settings file")
	start := flag.String("start", "", "decimal number of the first room")
	base := flag.Int("base", 0, "numeral base of the archway labels (2-36)")
	allowComposite := flag.Bool("allow-composite", false, "let composite numbers become archways")
	fullscreen := flag.Bool("fullscreen", false, "run fullscreen")
	hideTitle := flag.Bool("no-title", false, "hide the title text")
	exploreMode := flag.Bool("explore", false, "print the reachable rooms instead of playing")
	limit := flag.Int("limit", 200, "numbers printed by -explore")
	flag.Parse()

	settings := data.DefaultSettings()
	if *settingsPath != "" {
		loaded, err := data.LoadSettingsFromFile(*settingsPath)
		if err != nil {
			log.Fatal(err)
		}
		settings = loaded
	}

	// Flags override the settings file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start":
			settings.StartNumber = *start
		case "base":
			settings.Base = *base
		case "allow-composite":
			settings.AllowComposite = *allowComposite
		case "fullscreen":
			settings.Fullscreen = *fullscreen
		case "no-title":
			settings.ShowTitle = !*hideTitle
		}
	})
	if err := settings.Validate(); err != nil {
		log.Fatal(err)
	}

	if *exploreMode {
		if err := explore(os.Stdout, settings.StartNumber, settings.Base, settings.AllowComposite, *limit); err != nil {
			log.Fatal(err)
		}
		return
	}

	game, err := NewGame(settings)
	if err != nil {
		log.Fatal(err)
	}

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetWindowTitle("Prime Number Catacombs")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
