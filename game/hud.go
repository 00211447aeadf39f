package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Hotbar layout constants.
const (
	hotbarSlots        = 5
	hotbarBottomMargin = 10
	hotbarPreviewInset = 4
	hotbarNumberOffset = 15
)

var (
	colorHotbarBack      = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	colorHotbarSlot      = color.NRGBA{R: 64, G: 64, B: 64, A: 255}
	colorHotbarHighlight = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorHotbarText      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// drawHotbar renders the block-selection bar at the bottom of the screen:
// slot frames, a color preview per palette entry, the slot number above each
// slot, and a white highlight around the selected one.
func drawHotbar(screen *ebiten.Image, cfg Config, palette []BlockType, selected int) {
	bs := cfg.BlockSize
	barWidth := bs * hotbarSlots
	barX := (cfg.ScreenWidth - barWidth) / 2
	barY := cfg.ScreenHeight - bs - hotbarBottomMargin

	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), float32(bs), colorHotbarBack, false)

	for i := 0; i < hotbarSlots; i++ {
		slotX := barX + i*bs
		vector.StrokeRect(screen, float32(slotX), float32(barY), float32(bs), float32(bs), 2, colorHotbarSlot, false)

		if i < len(palette) {
			inset := hotbarPreviewInset
			vector.DrawFilledRect(screen,
				float32(slotX+inset), float32(barY+inset),
				float32(bs-2*inset), float32(bs-2*inset),
				palette[i].Color(), false)
			vector.StrokeRect(screen,
				float32(slotX+inset), float32(barY+inset),
				float32(bs-2*inset), float32(bs-2*inset),
				1, colorBlockOutline, false)
		}

		label := fmt.Sprintf("%d", i+1)
		text.Draw(screen, label, basicfont.Face7x13, slotX+bs/2-3, barY-hotbarNumberOffset+13, colorHotbarText)

		if i == selected {
			vector.StrokeRect(screen, float32(slotX), float32(barY), float32(bs), float32(bs), 3, colorHotbarHighlight, false)
		}
	}
}

// drawDebugOverlay prints frame stats and world size in the corner.
func drawDebugOverlay(screen *ebiten.Image, world *World, player *Player) {
	hud := fmt.Sprintf("FPS: %0.1f  TPS: %0.1f\nblocks: %d\npos: (%d, %d)  grounded: %v",
		ebiten.ActualFPS(), ebiten.ActualTPS(), world.BlockCount(), player.X, player.Y, player.OnGround)
	ebitenutil.DebugPrint(screen, hud)
}
