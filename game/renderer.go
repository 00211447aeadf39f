package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var colorBlockOutline = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// Renderer draws the world and the player camera-relative.
type Renderer struct {
	cfg          Config
	camera       *Camera
	playerSprite *ebiten.Image
}

// NewRenderer creates a renderer and its procedural player sprite.
func NewRenderer(cfg Config, camera *Camera, player *Player) *Renderer {
	return &Renderer{
		cfg:          cfg,
		camera:       camera,
		playerSprite: newPlayerSprite(player.Width, player.Height),
	}
}

// Render draws the sky, all visible blocks, and the player.
func (r *Renderer) Render(screen *ebiten.Image, world *World, player *Player) {
	screen.Fill(colorSky)
	r.renderBlocks(screen, world)
	r.renderPlayer(screen, player)
}

// renderBlocks draws every block whose rectangle reaches the screen, as a
// filled square with a one pixel outline.
func (r *Renderer) renderBlocks(screen *ebiten.Image, world *World) {
	bs := r.cfg.BlockSize
	world.EachBlock(func(_ Cell, b *Block) {
		sx, sy := r.camera.WorldToScreen(b.Rect.Min.X, b.Rect.Min.Y)
		if sx < -bs || sx > r.camera.Width || sy < -bs || sy > r.camera.Height {
			return
		}
		vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(bs), float32(bs), b.Color, false)
		vector.StrokeRect(screen, float32(sx), float32(sy), float32(bs), float32(bs), 1, colorBlockOutline, false)
	})
}

// renderPlayer draws the player sprite, mirrored when facing left.
func (r *Renderer) renderPlayer(screen *ebiten.Image, player *Player) {
	sx, sy := r.camera.WorldToScreen(player.X, player.Y)

	opts := &ebiten.DrawImageOptions{}
	if !player.FacingRight {
		opts.GeoM.Scale(-1, 1)
		opts.GeoM.Translate(float64(player.Width), 0)
	}
	opts.GeoM.Translate(float64(sx), float64(sy))
	screen.DrawImage(r.playerSprite, opts)
}
