package systems

import (
	"image/color"

	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object in the space when the debug
// overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateHUD(ecs).ShowDebug {
		return
	}

	if match, ok := GetMatch(ecs); ok {
		width := float32(screen.Bounds().Dx())
		vector.FillRect(screen, 0, float32(match.GroundY), width, 1, cfg.Green, false)
		vector.FillRect(screen, float32(match.MinX), 0, 1, float32(match.GroundY), cfg.Orange, false)
		vector.FillRect(screen, float32(match.MaxX), 0, 1, float32(match.GroundY), cfg.Orange, false)
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		x, y := float32(obj.X), float32(obj.Y)

		// Determine color based on tags
		var c color.Color = cfg.Cyan
		if obj.HasTags(tags.ResolvFighter) {
			c = cfg.Blue
		} else if obj.HasTags(tags.ResolvProjectile) {
			c = cfg.Red
		}

		// Draw outline
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
