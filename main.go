package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"craft2d/game"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	seed := flag.Int64("seed", 0, "terrain seed override (0 keeps the config value)")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		config.Terrain.Seed = *seed
	}

	g := game.NewGame(config)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Craft 2D")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
