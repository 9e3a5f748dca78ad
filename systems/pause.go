package systems

import (
	"github.com/automoto/sparring/archetypes"
	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on P or Escape. A finished match cannot be paused.
// This system should run AFTER UpdateInput but BEFORE the simulation systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if !GetAction(&input.ActionBuffer, cfg.ActionPause).JustPressed {
		return
	}
	if !pause.IsPaused && !IsMatchPlaying(ecs) {
		return
	}
	pause.IsPaused = !pause.IsPaused
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	titleFont := fonts.BannerTitle.Get()
	title := "Paused"
	text.Draw(screen, title, titleFont, (width-textWidth(titleFont, title))/2, height/2, cfg.Pause.TextColor)

	hintFont := fonts.BannerHint.Get()
	hint := "Press P to resume"
	text.Draw(screen, hint, hintFont, (width-textWidth(hintFont, hint))/2, height/2+50, cfg.Pause.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// IsPaused returns true while the pause overlay is up.
func IsPaused(e *ecs.ECS) bool {
	return GetOrCreatePause(e).IsPaused
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = archetypes.Pause.Spawn(ecs)
	}
	return components.Pause.Get(entry)
}
