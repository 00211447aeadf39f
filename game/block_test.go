package game

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockBreakability(t *testing.T) {
	breakable := []BlockType{BlockDirt, BlockGrass, BlockStone, BlockWater, BlockWood}
	for _, bt := range breakable {
		b := NewBlock(0, 0, bt, 32)
		assert.True(t, b.Breakable(), "%s should be breakable", bt)
	}

	bedrock := NewBlock(0, 0, BlockBedrock, 32)
	assert.False(t, bedrock.Breakable(), "bedrock must never be breakable")
}

func TestBlockColorMapping(t *testing.T) {
	assert.Equal(t, colorDirt, BlockDirt.Color())
	assert.Equal(t, colorGrass, BlockGrass.Color())
	assert.Equal(t, colorStone, BlockStone.Color())
	assert.Equal(t, colorWater, BlockWater.Color())
	assert.Equal(t, colorBedrock, BlockBedrock.Color())
	assert.Equal(t, colorWood, BlockWood.Color())

	// Air is the UI-preview fallback, never stored in the world.
	assert.Equal(t, colorSky, BlockAir.Color())
}

func TestBlockColorCachedAtConstruction(t *testing.T) {
	b := NewBlock(3, 7, BlockGrass, 32)
	assert.Equal(t, BlockGrass.Color(), b.Color)
}

func TestBlockRectDerivedFromGridCoords(t *testing.T) {
	b := NewBlock(3, 7, BlockStone, 32)
	assert.Equal(t, image.Rect(96, 224, 128, 256), b.Rect)
}
