package game

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// tickSeconds is the fixed step driven by ebiten's 60 TPS loop.
const tickSeconds = 1.0 / 60.0

// spawnClearance is how many cells above the surface the player spawns.
const spawnClearance = 3

// Game wires the world, the player, and the presentation layer into
// ebiten's fixed-step loop. All state lives here; nothing is process-global.
type Game struct {
	cfg       Config
	world     *World
	player    *Player
	camera    *Camera
	renderer  *Renderer
	particles *ParticleSystem

	palette  []BlockType
	selected int

	showDebug bool
}

// NewGame generates a world, spawns the player above the surface at the
// world's center column, and sets up rendering.
func NewGame(cfg Config) *Game {
	seed := cfg.Terrain.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := NewWorld(cfg, NewTerrain(cfg, seed))

	spawnCol := cfg.WorldWidth / 2
	spawnRow := world.SurfaceHeight(spawnCol) - spawnClearance
	player := NewPlayer(spawnCol*cfg.BlockSize, spawnRow*cfg.BlockSize, cfg)

	camera := NewCamera(cfg.ScreenWidth, cfg.ScreenHeight)
	camera.Follow(player.Rect())

	palette := []BlockType{BlockDirt, BlockStone, BlockWood}
	player.Selected = palette[0]

	return &Game{
		cfg:       cfg,
		world:     world,
		player:    player,
		camera:    camera,
		renderer:  NewRenderer(cfg, camera, player),
		particles: NewParticleSystem(seed),
		palette:   palette,
	}
}

// Update advances one tick: hotbar selection, break/place requests against
// the world, player physics, camera follow, particle aging.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showDebug = !g.showDebug
	}

	g.updateSelection()
	g.handleInteractions()

	g.player.Update(g.world, readIntent())
	g.camera.Follow(g.player.Rect())
	g.particles.Update(tickSeconds)

	return nil
}

// updateSelection cycles the palette with the mouse wheel and jumps to a
// slot with the number keys.
func (g *Game) updateSelection() {
	if d := wheelDelta(); d != 0 {
		n := len(g.palette)
		g.selected = (g.selected + d + n) % n
	}
	if i := digitSelection(); i >= 0 && i < len(g.palette) {
		g.selected = i
	}
	g.player.Selected = g.palette[g.selected]
}

// handleInteractions translates mouse clicks into break/place requests. The
// cursor is mapped through the camera into world space; the world performs
// all validation and simply declines requests out of reach.
func (g *Game) handleInteractions() {
	doBreak := breakPressed()
	doPlace := placePressed()
	if !doBreak && !doPlace {
		return
	}

	mx, my := ebiten.CursorPosition()
	wx, wy := g.camera.ScreenToWorld(mx, my)
	target := image.Pt(wx, wy)

	if doBreak {
		if b := g.world.BreakBlock(target, g.player.Center()); b != nil {
			cx := float64(b.Rect.Min.X+b.Rect.Max.X) / 2
			cy := float64(b.Rect.Min.Y+b.Rect.Max.Y) / 2
			g.particles.Burst(cx, cy, b.Color)
		}
	}
	if doPlace {
		if b := g.world.PlaceBlock(target, g.player.Rect(), g.player.Selected); b != nil {
			cx := float64(b.Rect.Min.X+b.Rect.Max.X) / 2
			cy := float64(b.Rect.Min.Y+b.Rect.Max.Y) / 2
			g.particles.Burst(cx, cy, b.Color)
		}
	}
}

// Draw renders the scene and the UI.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.world, g.player)
	g.particles.Draw(screen, g.camera)
	drawHotbar(screen, g.cfg, g.palette, g.selected)
	if g.showDebug {
		drawDebugOverlay(screen, g.world, g.player)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
