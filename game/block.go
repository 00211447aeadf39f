package game

import (
	"image"
	"image/color"
)

// BlockType identifies what occupies a cell. The zero value is air: air is
// never stored in the world map, it is the absence of an entry.
type BlockType int

const (
	BlockAir BlockType = iota
	BlockDirt
	BlockGrass
	BlockStone
	BlockWater
	BlockBedrock
	BlockWood
)

// Color constants for blocks and environment
var (
	colorSky     = color.NRGBA{R: 135, G: 206, B: 235, A: 255}
	colorDirt    = color.NRGBA{R: 139, G: 69, B: 19, A: 255}
	colorGrass   = color.NRGBA{R: 34, G: 139, B: 34, A: 255}
	colorStone   = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	colorWater   = color.NRGBA{R: 0, G: 0, B: 255, A: 128}
	colorBedrock = color.NRGBA{R: 64, G: 64, B: 64, A: 255}
	colorWood    = color.NRGBA{R: 102, G: 51, B: 0, A: 255}
)

// Color returns the display color for the block type. Air and any
// out-of-range value map to the sky color, which only shows up in UI
// previews; the world map never stores such a block.
func (t BlockType) Color() color.NRGBA {
	switch t {
	case BlockDirt:
		return colorDirt
	case BlockGrass:
		return colorGrass
	case BlockStone:
		return colorStone
	case BlockWater:
		return colorWater
	case BlockBedrock:
		return colorBedrock
	case BlockWood:
		return colorWood
	}
	return colorSky
}

// String returns a lowercase name for logs and the preview tool.
func (t BlockType) String() string {
	switch t {
	case BlockAir:
		return "air"
	case BlockDirt:
		return "dirt"
	case BlockGrass:
		return "grass"
	case BlockStone:
		return "stone"
	case BlockWater:
		return "water"
	case BlockBedrock:
		return "bedrock"
	case BlockWood:
		return "wood"
	}
	return "unknown"
}

// Block is one occupied cell of the world. It is immutable after
// construction; breaking and placing swap whole map entries instead of
// mutating blocks in place.
type Block struct {
	// Type identifies the block category
	Type BlockType

	// Color is derived from Type once at construction
	Color color.NRGBA

	// Rect is the pixel-space rectangle covered by the block, reused by
	// collision checks and rendering
	Rect image.Rectangle
}

// NewBlock creates a block for the grid cell (x, y).
func NewBlock(x, y int, t BlockType, blockSize int) *Block {
	return &Block{
		Type:  t,
		Color: t.Color(),
		Rect:  image.Rect(x*blockSize, y*blockSize, (x+1)*blockSize, (y+1)*blockSize),
	}
}

// Breakable reports whether the player may remove this block. Only bedrock
// is unbreakable; it forms the world border.
func (b *Block) Breakable() bool {
	return b.Type != BlockBedrock
}
