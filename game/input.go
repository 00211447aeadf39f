package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Intent carries one tick's worth of movement input. Tests drive the player
// with literal intents; the game loop fills one from the keyboard.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// readIntent polls the movement keys.
func readIntent() Intent {
	return Intent{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:      ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}
}

// breakPressed reports a break request (left click, edge triggered).
func breakPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// placePressed reports a place request (right click, edge triggered).
func placePressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

// wheelDelta returns -1 for wheel up, +1 for wheel down, 0 otherwise.
// Wheel up walks backwards through the palette, matching the hotbar order.
func wheelDelta() int {
	_, wy := ebiten.Wheel()
	switch {
	case wy > 0:
		return -1
	case wy < 0:
		return 1
	}
	return 0
}

// digitSelection returns the palette index selected by the number keys, or
// -1 when none was pressed this tick.
func digitSelection() int {
	keys := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}
	for i, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return i
		}
	}
	return -1
}
