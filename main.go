package main

import (
	"log"

	"github.com/automoto/sparring/config"
	"github.com/automoto/sparring/fonts"
	"github.com/automoto/sparring/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

type Game struct {
	scene Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	return &Game{
		scene: scenes.NewDuelScene(config.C.Width, config.C.Height),
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window size so the arena can be resized.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Resize(width, height)
	return width, height
}

func main() {
	if err := config.ApplyTuning(config.DefaultTuning); err != nil {
		log.Fatalf("Failed to apply tuning: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame()
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
