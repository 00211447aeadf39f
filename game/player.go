package game

import (
	"image"
	"math"
)

// Player dimensions relative to the block size.
const (
	playerWidthRatio  = 1.2
	playerHeightRatio = 2.6
)

// Player holds the character's kinematic state. It never mutates the world;
// it only queries collision and drives its own position and velocity each
// tick.
type Player struct {
	// X, Y is the top-left corner of the collision rectangle in pixels
	X, Y int

	// Width and Height of the collision rectangle in pixels
	Width, Height int

	// VelX is the horizontal velocity in pixels per tick, set fresh from
	// input every tick rather than accumulated
	VelX int

	// VelY is the vertical velocity in pixels per tick
	VelY float64

	// OnGround is true when the player stands on a block
	OnGround bool

	// FacingRight tracks the last horizontal movement direction
	FacingRight bool

	// Selected is the block type placed on a place request
	Selected BlockType

	spawnX, spawnY int
	cfg            Config
}

// NewPlayer creates a player with its top-left corner at the given pixel
// position, which also becomes the respawn point.
func NewPlayer(x, y int, cfg Config) *Player {
	return &Player{
		X:           x,
		Y:           y,
		Width:       int(float64(cfg.BlockSize) * playerWidthRatio),
		Height:      int(float64(cfg.BlockSize) * playerHeightRatio),
		FacingRight: true,
		Selected:    BlockDirt,
		spawnX:      x,
		spawnY:      y,
		cfg:         cfg,
	}
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}

// Center returns the center point of the collision rectangle.
func (p *Player) Center() image.Point {
	return image.Pt(p.X+p.Width/2, p.Y+p.Height/2)
}

// Respawn resets position and velocity to the spawn point.
func (p *Player) Respawn() {
	p.X = p.spawnX
	p.Y = p.spawnY
	p.VelX = 0
	p.VelY = 0
}

// checkGround probes the world with the rectangle shifted down one pixel.
func (p *Player) checkGround(w *World) bool {
	return w.CheckCollision(p.Rect().Add(image.Pt(0, 1)))
}

// Update advances the player one tick: apply movement intent, jump,
// gravity, then move and resolve against the world. Horizontal collision
// reverts the whole displacement; vertical movement is resolved one pixel
// at a time so high fall speeds cannot tunnel through a block, and stops
// exactly at the surface.
func (p *Player) Update(w *World, in Intent) {
	p.VelX = 0
	if in.MoveLeft {
		p.VelX = -p.cfg.PlayerSpeed
		p.FacingRight = false
	}
	if in.MoveRight {
		p.VelX = p.cfg.PlayerSpeed
		p.FacingRight = true
	}

	p.OnGround = p.checkGround(w)

	if in.Jump && p.OnGround {
		p.VelY = p.cfg.JumpSpeed
		p.OnGround = false
	}

	if !p.OnGround {
		p.VelY = math.Min(p.VelY+p.cfg.Gravity, p.cfg.MaxFallSpeed)
	}

	p.X += p.VelX
	if w.CheckCollision(p.Rect()) {
		p.X -= p.VelX
	}

	if p.VelY != 0 {
		step := 1
		if p.VelY < 0 {
			step = -1
		}
		for i := 0; i < absInt(int(p.VelY)); i++ {
			p.Y += step
			if w.CheckCollision(p.Rect()) {
				p.Y -= step
				p.VelY = 0
				break
			}
		}
	}

	// Fell out of the world: the only reset path, no death state.
	if p.Y > p.cfg.WorldHeight*p.cfg.BlockSize {
		p.Respawn()
	}
}
