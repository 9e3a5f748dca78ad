package scenes

import (
	"log"
	"sync"

	"github.com/automoto/sparring/assets"
	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/systems"
	"github.com/automoto/sparring/systems/factory"
	"github.com/automoto/sparring/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCellSize is the resolv cell size in pixels.
const spaceCellSize = 32

type DuelScene struct {
	ecs      *ecs.ECS
	controls *ui.ControlsUI
	width    int
	height   int
	once     sync.Once
}

// NewDuelScene creates the two-player duel for a viewport of the given size.
func NewDuelScene(width, height int) *DuelScene {
	return &DuelScene{width: width, height: height}
}

func (ds *DuelScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
	if ds.controls != nil {
		ds.controls.Update()
	}
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.SkyColor)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
	if ds.controls != nil {
		ds.controls.Draw(screen)
	}
}

// Resize adapts the arena to a new viewport size.
func (ds *DuelScene) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == ds.width && height == ds.height) {
		return
	}
	ds.width, ds.height = width, height
	if ds.ecs != nil {
		systems.ResizeArena(ds.ecs, float64(width), float64(height))
	}
}

func (ds *DuelScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first: it can request a reset that UpdateMatch performs
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateMatch)
	ecs.AddSystem(systems.WithPauseCheck(systems.WithMatchPlaying(systems.UpdateFighters)))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHUD))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawFighters)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawBanner)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ds.ecs = ecs

	// The collision space is sized generously so a larger window still fits.
	factory.CreateSpace(ds.ecs, ds.width*2, ds.height*2, spaceCellSize, spaceCellSize)

	spawnFraction := cfg.Arena.SpawnFraction
	groundRatio := cfg.Arena.GroundRatio
	if layout, err := assets.LoadArena(); err != nil {
		log.Printf("Warning: Could not load arena layout, using defaults: %v", err)
	} else {
		spawnFraction = layout.SpawnFractions()
		groundRatio = layout.GroundRatio()
	}
	factory.CreateMatch(ds.ecs, float64(ds.width), float64(ds.height), spawnFraction, groundRatio)

	controls, err := ui.NewControlsUI()
	if err != nil {
		log.Printf("Warning: Could not build control panels: %v", err)
	} else {
		ds.controls = controls
	}
}
