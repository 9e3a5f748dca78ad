package systems

import (
	"math"

	"github.com/automoto/sparring/assets"
	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawArena paints the floor below the ground line.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	match, ok := GetMatch(ecs)
	if !ok {
		return
	}
	camera := GetOrCreateCamera(ecs)
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	ground := float32(match.GroundY + camera.OffsetY)

	vector.DrawFilledRect(screen, 0, ground, width, height-ground, cfg.UI.FloorColor, false)
	vector.DrawFilledRect(screen, 0, ground, width, 2, cfg.UI.GroundLineColor, false)
}

// DrawFighters renders each fighter's current animation frame, then its
// projectiles.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	match, ok := GetMatch(ecs)
	if !ok {
		return
	}
	camera := GetOrCreateCamera(ecs)
	for _, e := range match.Fighters {
		if e == nil || !e.Valid() {
			continue
		}
		drawFighter(screen, e, camera)
		for _, p := range components.Fighter.Get(e).Projectiles {
			if p.Valid() {
				drawProjectile(screen, components.Projectile.Get(p), camera)
			}
		}
	}
}

func drawFighter(screen *ebiten.Image, e *donburi.Entry, camera *components.CameraData) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e).CurrentState
	animData := components.Animation.Get(e)

	frame := 0
	if animData.CurrentAnimation != nil {
		frame = animData.CurrentAnimation.Frame()
	}
	img := assets.GetFrame(fighter.PlayerIndex, state, frame)
	def := cfg.Characters[fighter.PlayerIndex].State(state)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Anchor at bottom-center so the feet sit on the fighter's position
	drawOp.GeoM.Translate(-def.Width/2, -def.Height+def.OffsetY)

	// Apply squash/stretch effect (scale around anchor point)
	ss := components.SquashStretch.Get(e)
	drawOp.GeoM.Scale(ss.ScaleX, ss.ScaleY)

	// Flip the sprite if facing left.
	scaleX := cfg.Fighter.Scale
	if fighter.Facing < 0 {
		scaleX = -scaleX
	}
	drawOp.GeoM.Scale(scaleX, cfg.Fighter.Scale)
	drawOp.GeoM.Translate(physics.X+camera.OffsetX, physics.Y+camera.OffsetY)

	if fighter.IsHit {
		tint := cfg.UI.HitFlashTint
		drawOp.ColorScale.Scale(tint[0], tint[1], tint[2], tint[3])
	}

	screen.DrawImage(img, drawOp)
}

func drawProjectile(screen *ebiten.Image, p *components.ProjectileData, camera *components.CameraData) {
	img := assets.GetProjectileImage(p.OwnerIndex)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Spin about the center
	drawOp.GeoM.Translate(-p.Width/2, -p.Height/2)
	drawOp.GeoM.Rotate(p.Rotation * math.Pi / 180)
	drawOp.GeoM.Translate(p.X+camera.OffsetX, p.Y+camera.OffsetY)

	drawOp.ColorScale.ScaleWithColor(cfg.PlayerColors[p.OwnerIndex])
	screen.DrawImage(img, drawOp)
}
