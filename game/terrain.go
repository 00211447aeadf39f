package game

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Terrain generation modes.
const (
	TerrainModeWalk   = "walk"
	TerrainModePerlin = "perlin"
)

// Perlin sampler parameters: smoothing, frequency, octave count, and the
// horizontal sample spacing per column.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
	perlinStep  = 0.05
)

// Terrain produces the initial block layout for a world. It is a one-shot
// generator: call Generate once at startup and hand the result to the world.
type Terrain struct {
	cfg   Config
	rng   *rand.Rand
	noise *perlin.Perlin
}

// NewTerrain creates a generator for the given config and seed. The same
// seed always yields the same world.
func NewTerrain(cfg Config, seed int64) *Terrain {
	return &Terrain{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed),
	}
}

// Heights returns the surface heightmap, one row index per column. Both
// modes keep adjacent columns within one cell of each other and clamp every
// height into [WorldHeight/3, WorldHeight-10].
func (t *Terrain) Heights() []int {
	if t.cfg.Terrain.Mode == TerrainModePerlin {
		return t.perlinHeights()
	}
	return t.randomWalkHeights()
}

// randomWalkHeights perturbs the height by -1, 0, or +1 per column, starting
// from mid-height. The clamp band keeps hills away from the sky and the
// world floor.
func (t *Terrain) randomWalkHeights() []int {
	heights := make([]int, 0, t.cfg.WorldWidth)
	minH, maxH := t.clampBand()

	height := t.cfg.WorldHeight / 2
	for x := 0; x < t.cfg.WorldWidth; x++ {
		height += t.rng.Intn(3) - 1
		height = clampInt(height, minH, maxH)
		heights = append(heights, height)
	}
	return heights
}

// perlinHeights samples 1D perlin noise into the same clamp band, then
// limits each step to one cell so the continuity invariant holds in this
// mode too.
func (t *Terrain) perlinHeights() []int {
	heights := make([]int, t.cfg.WorldWidth)
	minH, maxH := t.clampBand()

	for x := range heights {
		// Noise1D returns roughly [-1, 1]; map into the band.
		n := (t.noise.Noise1D(float64(x)*perlinStep) + 1) / 2
		h := minH + int(n*float64(maxH-minH))
		heights[x] = clampInt(h, minH, maxH)
	}
	for x := 1; x < len(heights); x++ {
		heights[x] = clampInt(heights[x], heights[x-1]-1, heights[x-1]+1)
	}
	return heights
}

// clampBand returns the inclusive height range surfaces may occupy.
func (t *Terrain) clampBand() (minH, maxH int) {
	return t.cfg.WorldHeight / 3, t.cfg.WorldHeight - 10
}

// Generate builds the block map for the heightmap: grass at the surface,
// stone below it, and a dirt layer in the bottom five rows. Cells above the
// surface stay empty. The bedrock border is applied afterwards by the world.
func (t *Terrain) Generate() map[Cell]*Block {
	blocks := make(map[Cell]*Block, t.cfg.WorldWidth*t.cfg.WorldHeight/2)
	heights := t.Heights()

	for x := 0; x < t.cfg.WorldWidth; x++ {
		for y := 0; y < t.cfg.WorldHeight; y++ {
			switch {
			case y > heights[x]:
				if y < t.cfg.WorldHeight-5 {
					blocks[Cell{x, y}] = NewBlock(x, y, BlockStone, t.cfg.BlockSize)
				} else {
					blocks[Cell{x, y}] = NewBlock(x, y, BlockDirt, t.cfg.BlockSize)
				}
			case y == heights[x]:
				blocks[Cell{x, y}] = NewBlock(x, y, BlockGrass, t.cfg.BlockSize)
			}
		}
	}
	return blocks
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
