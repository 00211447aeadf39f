package game

import "image"

// reachCells is the maximum euclidean cell distance at which the player may
// break or place blocks.
const reachCells = 3

// Cell addresses one grid-aligned unit of world space.
type Cell struct {
	X, Y int
}

// World owns the sparse cell-to-block map and answers the spatial queries
// everything else is built on: rectangle collision, line of sight, and the
// validated break/place transitions. A missing map entry is air.
type World struct {
	cfg    Config
	blocks map[Cell]*Block
}

// NewWorld creates a world from the generator's output and seals it with the
// bedrock border. A nil generator yields the bare bedrock shell, which the
// preview tool and tests build on.
func NewWorld(cfg Config, gen *Terrain) *World {
	w := &World{
		cfg:    cfg,
		blocks: make(map[Cell]*Block),
	}
	if gen != nil {
		w.blocks = gen.Generate()
	}
	w.addBedrockBorders()
	return w
}

// addBedrockBorders forces the side columns and the bottom row to bedrock,
// overwriting any terrain there. The border is unbreakable, so the player
// can never tunnel out of the world.
func (w *World) addBedrockBorders() {
	for x := 0; x < w.cfg.WorldWidth; x++ {
		y := w.cfg.WorldHeight - 1
		w.blocks[Cell{x, y}] = NewBlock(x, y, BlockBedrock, w.cfg.BlockSize)
	}
	for y := 0; y < w.cfg.WorldHeight; y++ {
		w.blocks[Cell{0, y}] = NewBlock(0, y, BlockBedrock, w.cfg.BlockSize)
		x := w.cfg.WorldWidth - 1
		w.blocks[Cell{x, y}] = NewBlock(x, y, BlockBedrock, w.cfg.BlockSize)
	}
}

// Block returns the block at cell (x, y), or nil for air.
func (w *World) Block(x, y int) *Block {
	return w.blocks[Cell{x, y}]
}

// BlockCount returns the number of occupied cells.
func (w *World) BlockCount() int {
	return len(w.blocks)
}

// EachBlock calls fn for every occupied cell. Iteration order is
// unspecified; the renderer and the preview tool only read through this.
func (w *World) EachBlock(fn func(Cell, *Block)) {
	for c, b := range w.blocks {
		fn(c, b)
	}
}

// SurfaceHeight returns the row of the first occupied cell in column x,
// scanning top-down, or mid-height when the column is entirely empty. Used
// once at startup to position the player above ground.
func (w *World) SurfaceHeight(x int) int {
	for y := 0; y < w.cfg.WorldHeight; y++ {
		if w.blocks[Cell{x, y}] != nil {
			return y
		}
	}
	return w.cfg.WorldHeight / 2
}

// CheckCollision reports whether r intersects any occupied cell. Only the
// grid cells overlapping r's bounding box are scanned, so the cost is
// proportional to the rectangle, not to the world.
func (w *World) CheckCollision(r image.Rectangle) bool {
	bs := w.cfg.BlockSize
	startX := max(0, r.Min.X/bs)
	endX := min(w.cfg.WorldWidth, r.Max.X/bs+1)
	startY := max(0, r.Min.Y/bs)
	endY := min(w.cfg.WorldHeight, r.Max.Y/bs+1)

	for x := startX; x < endX; x++ {
		for y := startY; y < endY; y++ {
			if b := w.blocks[Cell{x, y}]; b != nil && r.Overlaps(b.Rect) {
				return true
			}
		}
	}
	return false
}

// LineOfSight reports whether the straight path between two pixel-space
// points is free of blocks at cell granularity. Cells within chebyshev
// distance 1 of each other always see each other, so interaction with
// touching blocks never falls into the stepping edge cases. Longer paths
// walk the grid along the dominant axis with an integer error term; the
// error values are doubled so the half-cell start offset stays exact.
// Occupancy is checked at every visited cell except the destination.
func (w *World) LineOfSight(x1, y1, x2, y2 int) bool {
	bs := w.cfg.BlockSize
	sx, sy := floorDiv(x1, bs), floorDiv(y1, bs)
	ex, ey := floorDiv(x2, bs), floorDiv(y2, bs)

	if absInt(sx-ex) <= 1 && absInt(sy-ey) <= 1 {
		return true
	}

	dx := absInt(ex - sx)
	dy := absInt(ey - sy)
	x, y := sx, sy

	stepX := 1
	if sx > ex {
		stepX = -1
	}
	stepY := 1
	if sy > ey {
		stepY = -1
	}

	if dx > dy {
		e := dx // doubled error term, starts at 2*(dx/2)
		for x != ex {
			if (x != ex || y != ey) && w.blocks[Cell{x, y}] != nil {
				return false
			}
			e -= 2 * dy
			if e < 0 {
				y += stepY
				e += 2 * dx
			}
			x += stepX
		}
	} else {
		e := dy
		for y != ey {
			if (x != ex || y != ey) && w.blocks[Cell{x, y}] != nil {
				return false
			}
			e -= 2 * dx
			if e < 0 {
				x += stepX
				e += 2 * dy
			}
			y += stepY
		}
	}
	return true
}

// BreakBlock removes the block at the target point if the block exists, is
// breakable, lies within reach of the player point, and is in the player's
// line of sight. It returns the removed block, or nil when any check fails.
// Failing a check is a routine outcome, not an error.
func (w *World) BreakBlock(target, playerPos image.Point) *Block {
	bs := w.cfg.BlockSize
	bx, by := floorDiv(target.X, bs), floorDiv(target.Y, bs)

	b := w.blocks[Cell{bx, by}]
	if b == nil || !b.Breakable() {
		return nil
	}

	px, py := floorDiv(playerPos.X, bs), floorDiv(playerPos.Y, bs)
	if !withinReach(bx-px, by-py) {
		return nil
	}

	if !w.LineOfSight(playerPos.X, playerPos.Y, bx*bs+bs/2, by*bs+bs/2) {
		return nil
	}

	delete(w.blocks, Cell{bx, by})
	return b
}

// PlaceBlock inserts a block of type t at the target point if the cell is
// inside the world and empty, touches at least one occupied neighbor, does
// not overlap the player, and is within reach and line of sight of the
// player rectangle's center. It returns the placed block, or nil when any
// check fails.
func (w *World) PlaceBlock(target image.Point, playerRect image.Rectangle, t BlockType) *Block {
	bs := w.cfg.BlockSize
	bx, by := floorDiv(target.X, bs), floorDiv(target.Y, bs)

	// The map must never hold entries outside the world domain.
	if bx < 0 || bx >= w.cfg.WorldWidth || by < 0 || by >= w.cfg.WorldHeight {
		return nil
	}
	if w.blocks[Cell{bx, by}] != nil {
		return nil
	}
	if !w.hasAdjacentBlock(bx, by) {
		return nil
	}

	blockRect := image.Rect(bx*bs, by*bs, (bx+1)*bs, (by+1)*bs)
	if blockRect.Overlaps(playerRect) {
		return nil
	}

	cx := (playerRect.Min.X + playerRect.Max.X) / 2
	cy := (playerRect.Min.Y + playerRect.Max.Y) / 2
	px, py := floorDiv(cx, bs), floorDiv(cy, bs)
	if !withinReach(bx-px, by-py) {
		return nil
	}

	if !w.LineOfSight(cx, cy, bx*bs+bs/2, by*bs+bs/2) {
		return nil
	}

	b := NewBlock(bx, by, t, bs)
	w.blocks[Cell{bx, by}] = b
	return b
}

// hasAdjacentBlock reports whether any of the eight neighbors of (x, y) is
// occupied. Placement requires this so blocks never float disconnected from
// the world.
func (w *World) hasAdjacentBlock(x, y int) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if w.blocks[Cell{x + dx, y + dy}] != nil {
				return true
			}
		}
	}
	return false
}

// withinReach reports whether a cell offset is within the euclidean reach
// radius. Compared in squared units to stay in integers.
func withinReach(dx, dy int) bool {
	return dx*dx+dy*dy <= reachCells*reachCells
}

// floorDiv divides rounding toward negative infinity, so pixel coordinates
// left of or above the origin land in the correct cell.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
