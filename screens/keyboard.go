package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"prime-catacombs/systems"
)

var directionKeys = map[systems.Direction][]ebiten.Key{
	systems.DirectionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	systems.DirectionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	systems.DirectionConfirm: {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyEnter, ebiten.KeySpace},
}

// KeyboardInput reports keys pressed during the current tick
type KeyboardInput struct{}

// IsDirectionPressed is true on the tick a key for d goes down
func (KeyboardInput) IsDirectionPressed(d systems.Direction) bool {
	for _, key := range directionKeys[d] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
