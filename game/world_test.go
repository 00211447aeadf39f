package game

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func worldConfig(width, height int) Config {
	cfg := DefaultConfig()
	cfg.WorldWidth = width
	cfg.WorldHeight = height
	return cfg
}

// shellWorld is a bedrock border with nothing inside.
func shellWorld(width, height int) *World {
	return NewWorld(worldConfig(width, height), nil)
}

// emptyWorld has no blocks at all, not even the border.
func emptyWorld(width, height int) *World {
	return &World{cfg: worldConfig(width, height), blocks: make(map[Cell]*Block)}
}

func (w *World) putBlock(x, y int, t BlockType) {
	w.blocks[Cell{x, y}] = NewBlock(x, y, t, w.cfg.BlockSize)
}

// cellCenter returns the pixel center of a cell for a 32px block size.
func cellCenter(x, y int) image.Point {
	return image.Pt(x*32+16, y*32+16)
}

func TestBedrockBorderInvariant(t *testing.T) {
	cfg := worldConfig(30, 20)
	w := NewWorld(cfg, NewTerrain(cfg, 42))

	for y := 0; y < cfg.WorldHeight; y++ {
		for _, x := range []int{0, cfg.WorldWidth - 1} {
			b := w.Block(x, y)
			require.NotNil(t, b, "border cell (%d,%d) must be occupied", x, y)
			assert.Equal(t, BlockBedrock, b.Type, "border cell (%d,%d)", x, y)
			assert.False(t, b.Breakable())
		}
	}
	for x := 0; x < cfg.WorldWidth; x++ {
		b := w.Block(x, cfg.WorldHeight-1)
		require.NotNil(t, b, "bottom cell (%d,%d) must be occupied", x, cfg.WorldHeight-1)
		assert.Equal(t, BlockBedrock, b.Type)
	}
}

func TestCheckCollision(t *testing.T) {
	w := shellWorld(10, 10)
	w.putBlock(5, 5, BlockStone)

	// A rectangle inside an empty region never collides.
	assert.False(t, w.CheckCollision(image.Rect(64, 64, 100, 100)))

	// A rectangle exactly covering an occupied cell always collides.
	assert.True(t, w.CheckCollision(image.Rect(160, 160, 192, 192)))

	// Partial overlap collides too.
	assert.True(t, w.CheckCollision(image.Rect(150, 150, 165, 165)))

	// Touching edges is not a collision.
	assert.False(t, w.CheckCollision(image.Rect(128, 128, 160, 160)))

	// Rectangles entirely outside the world never collide.
	assert.False(t, w.CheckCollision(image.Rect(-100, -100, -50, -50)))
}

func TestLineOfSightAdjacentAlwaysClear(t *testing.T) {
	w := shellWorld(10, 10)
	// Fully surround a cell; the fast path still sees every neighbor.
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx != 0 || dy != 0 {
				w.putBlock(5+dx, 5+dy, BlockStone)
			}
		}
	}

	from := cellCenter(5, 5)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			to := cellCenter(5+dx, 5+dy)
			assert.True(t, w.LineOfSight(from.X, from.Y, to.X, to.Y),
				"adjacent cell (%d,%d) must be visible", 5+dx, 5+dy)
		}
	}
}

func TestLineOfSightBlockedByIntermediateCell(t *testing.T) {
	w := emptyWorld(10, 10)
	w.putBlock(5, 4, BlockStone)

	from := cellCenter(5, 2)
	to := cellCenter(5, 6)
	assert.False(t, w.LineOfSight(from.X, from.Y, to.X, to.Y))

	// The destination cell itself never blocks.
	target := cellCenter(5, 4)
	assert.True(t, w.LineOfSight(from.X, from.Y, target.X, target.Y),
		"occupied destination must not block sight to itself")
}

func TestLineOfSightSymmetry(t *testing.T) {
	w := emptyWorld(12, 12)

	// Clear world: every pair sees every pair, both ways.
	pairs := [][4]int{
		{2, 2, 9, 9},
		{2, 9, 9, 2},
		{1, 5, 10, 5},
		{5, 1, 5, 10},
		{2, 3, 7, 5},
		{3, 2, 5, 7},
	}
	for _, p := range pairs {
		a := cellCenter(p[0], p[1])
		b := cellCenter(p[2], p[3])
		assert.Equal(t,
			w.LineOfSight(a.X, a.Y, b.X, b.Y),
			w.LineOfSight(b.X, b.Y, a.X, a.Y),
			"pair %v must be symmetric on an empty world", p)
		assert.True(t, w.LineOfSight(a.X, a.Y, b.X, b.Y))
	}

	// A blocker on the exact diagonal blocks both directions.
	w.putBlock(5, 5, BlockStone)
	a := cellCenter(2, 2)
	b := cellCenter(8, 8)
	assert.False(t, w.LineOfSight(a.X, a.Y, b.X, b.Y))
	assert.False(t, w.LineOfSight(b.X, b.Y, a.X, a.Y))

	// Same for an odd-length dominant axis, where stepping has no ties.
	w2 := emptyWorld(12, 12)
	w2.putBlock(4, 3, BlockStone)
	c := cellCenter(2, 2)
	d := cellCenter(7, 4)
	assert.False(t, w2.LineOfSight(c.X, c.Y, d.X, d.Y))
	assert.False(t, w2.LineOfSight(d.X, d.Y, c.X, c.Y))
}

func TestBreakBlockRemovesTarget(t *testing.T) {
	// Spec scenario: lone stone at (5,5), player in cell (5,3). Distance 2,
	// nothing in between.
	w := shellWorld(10, 10)
	w.putBlock(5, 5, BlockStone)

	b := w.BreakBlock(cellCenter(5, 5), cellCenter(5, 3))
	require.NotNil(t, b)
	assert.Equal(t, BlockStone, b.Type)
	assert.Nil(t, w.Block(5, 5), "broken cell must read as air")
}

func TestBreakBlockNoOps(t *testing.T) {
	w := shellWorld(10, 10)
	w.putBlock(5, 5, BlockStone)
	before := w.BlockCount()

	// Breaking air.
	assert.Nil(t, w.BreakBlock(cellCenter(3, 3), cellCenter(3, 4)))

	// Breaking out of reach (distance > 3 cells).
	assert.Nil(t, w.BreakBlock(cellCenter(5, 5), cellCenter(5, 1)))

	// Breaking bedrock, even in reach.
	assert.Nil(t, w.BreakBlock(cellCenter(0, 5), cellCenter(2, 5)))

	assert.Equal(t, before, w.BlockCount(), "failed breaks must leave the map unchanged")
	assert.NotNil(t, w.Block(5, 5))
}

func TestBreakBlockRequiresLineOfSight(t *testing.T) {
	w := shellWorld(10, 10)
	w.putBlock(5, 5, BlockStone)
	w.putBlock(5, 4, BlockStone) // wall between player and target

	assert.Nil(t, w.BreakBlock(cellCenter(5, 5), cellCenter(5, 2)))
	assert.NotNil(t, w.Block(5, 5))
}

func TestPlaceBlockRejectsFloating(t *testing.T) {
	// Spec scenario: no occupied neighbor around (5,5).
	w := shellWorld(10, 10)
	before := w.BlockCount()
	playerRect := image.Rect(96, 160, 134, 243)

	assert.Nil(t, w.PlaceBlock(cellCenter(5, 5), playerRect, BlockDirt))
	assert.Equal(t, before, w.BlockCount())
	assert.Nil(t, w.Block(5, 5))
}

func TestPlaceBlockWithSingleNeighbor(t *testing.T) {
	w := shellWorld(10, 10)
	w.putBlock(5, 6, BlockStone)
	playerRect := image.Rect(96, 160, 134, 243) // cells around (3,5)-(4,7), center cell (3,6)

	b := w.PlaceBlock(cellCenter(5, 5), playerRect, BlockWood)
	require.NotNil(t, b)
	assert.Equal(t, BlockWood, b.Type)
	require.NotNil(t, w.Block(5, 5))
	assert.Equal(t, BlockWood, w.Block(5, 5).Type)
}

func TestPlaceBlockNoOps(t *testing.T) {
	w := shellWorld(10, 10)
	w.putBlock(5, 5, BlockStone)
	playerRect := image.Rect(96, 160, 134, 243)
	before := w.BlockCount()

	// Occupied target.
	assert.Nil(t, w.PlaceBlock(cellCenter(5, 5), playerRect, BlockDirt))

	// Overlapping the player's own rectangle.
	w.putBlock(3, 5, BlockStone)
	overlapping := image.Rect(96, 192, 134, 275) // covers cell (3,6)
	assert.Nil(t, w.PlaceBlock(cellCenter(3, 6), overlapping, BlockDirt))
	assert.Nil(t, w.Block(3, 6))

	// Out of reach: neighbor exists but the player is far away.
	farRect := image.Rect(256, 32, 294, 115)
	assert.Nil(t, w.PlaceBlock(cellCenter(5, 6), farRect, BlockDirt))

	// Outside the world domain.
	assert.Nil(t, w.PlaceBlock(image.Pt(-40, 64), playerRect, BlockDirt))

	assert.Equal(t, before+1, w.BlockCount(), "only the setup block at (3,5) was added")
}

func TestSurfaceHeight(t *testing.T) {
	w := emptyWorld(10, 10)
	w.putBlock(4, 6, BlockGrass)
	w.putBlock(4, 7, BlockDirt)

	assert.Equal(t, 6, w.SurfaceHeight(4), "first occupied row scanning top-down")
	assert.Equal(t, 5, w.SurfaceHeight(2), "empty column falls back to mid-height")
}

func TestWorldNeverStoresOutOfDomainCells(t *testing.T) {
	cfg := worldConfig(20, 20)
	w := NewWorld(cfg, NewTerrain(cfg, 7))

	w.EachBlock(func(c Cell, _ *Block) {
		assert.True(t, c.X >= 0 && c.X < cfg.WorldWidth, "cell %v x out of domain", c)
		assert.True(t, c.Y >= 0 && c.Y < cfg.WorldHeight, "cell %v y out of domain", c)
	})
}
