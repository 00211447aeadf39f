package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// newPlayerSprite builds a placeholder character sprite: head, shirt, and
// legs blocks with a dark outline, plus an eye marking the facing side.
// Assets stay procedural so the game runs without any files on disk.
func newPlayerSprite(width, height int) *ebiten.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	skin := color.NRGBA{R: 224, G: 172, B: 105, A: 255}
	shirt := color.NRGBA{R: 0, G: 150, B: 200, A: 255}
	pants := color.NRGBA{R: 70, G: 70, B: 160, A: 255}
	outline := color.NRGBA{R: 20, G: 20, B: 20, A: 255}

	headEnd := height / 4
	torsoEnd := height * 5 / 8

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var clr color.NRGBA
			switch {
			case y < headEnd:
				clr = skin
			case y < torsoEnd:
				clr = shirt
			default:
				clr = pants
			}
			if x == 0 || x == width-1 || y == 0 || y == height-1 || y == headEnd || y == torsoEnd {
				clr = outline
			}
			img.SetNRGBA(x, y, clr)
		}
	}

	// Eye on the right edge of the head; the renderer mirrors the sprite
	// when the player faces left.
	eyeY := headEnd / 2
	for dy := -1; dy <= 1; dy++ {
		for dx := -2; dx <= 0; dx++ {
			img.SetNRGBA(width*3/4+dx, eyeY+dy, outline)
		}
	}

	return ebiten.NewImageFromImage(img)
}
