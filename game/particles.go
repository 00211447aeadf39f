package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Dust burst tuning.
const (
	dustPerBurst     = 12
	dustSpeedMin     = 30.0 // pixels per second
	dustSpeedMax     = 90.0
	dustLifetimeMin  = 0.25 // seconds
	dustLifetimeMax  = 0.6
	dustSizeMin      = 2.0
	dustSizeMax      = 4.0
	dustGravity      = 240.0 // pixels per second^2
	maxDustParticles = 512
)

// particle is a single short-lived dust fleck in world space.
type particle struct {
	x, y     float64
	vx, vy   float64
	age      float64
	lifetime float64
	size     float64
	clr      color.NRGBA
}

// ParticleSystem holds the dust flecks emitted when blocks break or are
// placed. Purely visual; nothing reads it back.
type ParticleSystem struct {
	particles []particle
	rng       *rand.Rand
}

// NewParticleSystem creates an empty system.
func NewParticleSystem(seed int64) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]particle, 0, maxDustParticles),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Burst emits a ring of dust at the given world position, tinted by the
// block color that produced it.
func (ps *ParticleSystem) Burst(cx, cy float64, clr color.NRGBA) {
	for i := 0; i < dustPerBurst && len(ps.particles) < maxDustParticles; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := dustSpeedMin + ps.rng.Float64()*(dustSpeedMax-dustSpeedMin)
		ps.particles = append(ps.particles, particle{
			x:        cx,
			y:        cy,
			vx:       math.Cos(angle) * speed,
			vy:       math.Sin(angle)*speed - speed*0.5, // bias upward
			lifetime: dustLifetimeMin + ps.rng.Float64()*(dustLifetimeMax-dustLifetimeMin),
			size:     dustSizeMin + ps.rng.Float64()*(dustSizeMax-dustSizeMin),
			clr:      clr,
		})
	}
}

// Update ages and moves the particles, dropping the dead ones.
func (ps *ParticleSystem) Update(dt float64) {
	for i := len(ps.particles) - 1; i >= 0; i-- {
		p := &ps.particles[i]
		p.age += dt
		if p.age >= p.lifetime {
			ps.particles = append(ps.particles[:i], ps.particles[i+1:]...)
			continue
		}
		p.vy += dustGravity * dt
		p.x += p.vx * dt
		p.y += p.vy * dt
	}
}

// Draw renders the particles camera-relative, fading them out over their
// lifetime.
func (ps *ParticleSystem) Draw(screen *ebiten.Image, cam *Camera) {
	for i := range ps.particles {
		p := &ps.particles[i]
		sx, sy := cam.WorldToScreen(int(p.x), int(p.y))
		fade := 1 - p.age/p.lifetime
		clr := p.clr
		clr.A = uint8(float64(clr.A) * fade)
		vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(p.size), float32(p.size), clr, false)
	}
}
