package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"craft2d/game"
)

// blockRunes maps block types to preview characters.
func blockRune(t game.BlockType) byte {
	switch t {
	case game.BlockDirt:
		return ':'
	case game.BlockGrass:
		return '^'
	case game.BlockStone:
		return '#'
	case game.BlockWater:
		return '~'
	case game.BlockBedrock:
		return 'X'
	case game.BlockWood:
		return '|'
	}
	return '?'
}

func main() {
	width := flag.Int("width", 100, "world width in cells")
	height := flag.Int("height", 50, "world height in cells")
	seed := flag.Int64("seed", 0, "terrain seed (0 = from clock)")
	mode := flag.String("mode", game.TerrainModeWalk, "terrain mode: walk or perlin")
	flag.Parse()

	config := game.DefaultConfig()
	config.WorldWidth = *width
	config.WorldHeight = *height
	config.Terrain.Mode = *mode
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	world := game.NewWorld(config, game.NewTerrain(config, s))

	var sb strings.Builder
	for y := 0; y < config.WorldHeight; y++ {
		for x := 0; x < config.WorldWidth; x++ {
			if b := world.Block(x, y); b != nil {
				sb.WriteByte(blockRune(b.Type))
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())

	// Surface stats over the interior columns (the border columns are
	// solid bedrock).
	minH, maxH := config.WorldHeight, 0
	for x := 1; x < config.WorldWidth-1; x++ {
		h := world.SurfaceHeight(x)
		if h < minH {
			minH = h
		}
		if h > maxH {
			maxH = h
		}
	}
	fmt.Printf("\nseed=%d mode=%s size=%dx%d blocks=%d surface=[%d..%d]\n",
		s, config.Terrain.Mode, config.WorldWidth, config.WorldHeight,
		world.BlockCount(), minH, maxH)
}
