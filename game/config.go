package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the window, world, and physics settings
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// BlockSize is the edge length of one grid cell in pixels
	BlockSize int `yaml:"block_size"`

	// WorldWidth is the world width in cells
	WorldWidth int `yaml:"world_width"`

	// WorldHeight is the world height in cells
	WorldHeight int `yaml:"world_height"`

	// Gravity is the downward acceleration in pixels per tick squared
	Gravity float64 `yaml:"gravity"`

	// JumpSpeed is the vertical velocity applied on jump, negative is up
	JumpSpeed float64 `yaml:"jump_speed"`

	// PlayerSpeed is the horizontal speed in pixels per tick
	PlayerSpeed int `yaml:"player_speed"`

	// MaxFallSpeed caps downward velocity in pixels per tick
	MaxFallSpeed float64 `yaml:"max_fall_speed"`

	// Terrain selects the terrain generation settings
	Terrain TerrainConfig `yaml:"terrain"`
}

// TerrainConfig selects the heightmap algorithm and its seed.
type TerrainConfig struct {
	// Mode is either "walk" (random-walk heightmap) or "perlin"
	Mode string `yaml:"mode"`

	// Seed drives the generator; 0 means pick one from the clock
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the stock configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		BlockSize:    32,
		WorldWidth:   100,
		WorldHeight:  50,
		Gravity:      0.35,
		JumpSpeed:    -6,
		PlayerSpeed:  5,
		MaxFallSpeed: 10,
		Terrain: TerrainConfig{
			Mode: TerrainModeWalk,
			Seed: 0,
		},
	}
}

// LoadConfig returns the default configuration, overridden by the YAML file
// at path when path is non-empty. Fields absent from the file keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the generator and physics cannot handle.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("block size must be positive, got %d", c.BlockSize)
	}
	if c.WorldWidth < 2 || c.WorldHeight < 2 {
		return fmt.Errorf("world must be at least 2x2 cells, got %dx%d", c.WorldWidth, c.WorldHeight)
	}
	switch c.Terrain.Mode {
	case TerrainModeWalk, TerrainModePerlin:
	default:
		return fmt.Errorf("unknown terrain mode %q", c.Terrain.Mode)
	}
	return nil
}
