package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/sparring/archetypes"
	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// GetOrCreateHUD returns the singleton HUD component, creating if needed
func GetOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		entry = archetypes.HUD.Spawn(ecs)
		hud := components.HUD.Get(entry)
		for i := range hud.DisplayedHP {
			hud.DisplayedHP[i] = float32(cfg.Fighter.MaxHP)
			hud.TargetHP[i] = cfg.Fighter.MaxHP
		}
		hud.ShowDebug = cfg.Debug.ShowHitboxes
	}
	return components.HUD.Get(entry)
}

// UpdateHUD drains each health bar toward the fighter's real hp and fades
// the winner banner in once the match is over.
func UpdateHUD(ecs *ecs.ECS) {
	hud := GetOrCreateHUD(ecs)
	match, ok := GetMatch(ecs)
	if !ok {
		return
	}
	dt := 1 / float32(ebiten.TPS())

	for i, e := range match.Fighters {
		if e == nil || !e.Valid() {
			continue
		}
		updateHealthDrain(hud, i, components.Health.Get(e).Current, dt)
	}

	switch match.State {
	case cfg.MatchStateFinished:
		if hud.Banner == nil {
			hud.Banner = gween.New(0, 1, cfg.UI.BannerFadeSeconds, ease.OutQuad)
			hud.BannerAlpha = 0
		}
		hud.BannerAlpha, _ = hud.Banner.Update(dt)
	default:
		hud.Banner = nil
		hud.BannerAlpha = 0
	}
}

// updateHealthDrain retargets bar i when hp changes. Damage drains smoothly,
// healing (a match reset) snaps.
func updateHealthDrain(hud *components.HUDData, i, hp int, dt float32) {
	if hp != hud.TargetHP[i] {
		if float32(hp) > hud.DisplayedHP[i] {
			hud.DisplayedHP[i] = float32(hp)
			hud.Drain[i] = nil
		} else {
			hud.Drain[i] = gween.New(hud.DisplayedHP[i], float32(hp), cfg.UI.HealthDrainSeconds, ease.OutCubic)
		}
		hud.TargetHP[i] = hp
	}

	if hud.Drain[i] == nil {
		return
	}
	var finished bool
	hud.DisplayedHP[i], finished = hud.Drain[i].Update(dt)
	if finished {
		hud.DisplayedHP[i] = float32(hp)
		hud.Drain[i] = nil
	}
}

// healthColor picks the bar color for an hp value.
func healthColor(hp int) color.RGBA {
	switch {
	case hp > cfg.UI.HealthHighThreshold:
		return cfg.UI.HealthHighColor
	case hp > cfg.UI.HealthLowThreshold:
		return cfg.UI.HealthMidColor
	default:
		return cfg.UI.HealthLowColor
	}
}

// DrawHUD renders both health bars with their player labels and hp readout.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	match, ok := GetMatch(ecs)
	if !ok {
		return
	}
	hud := GetOrCreateHUD(ecs)
	width := float32(screen.Bounds().Dx())

	barW := float32(cfg.UI.HealthBarWidth)
	barH := float32(cfg.UI.HealthBarHeight)
	margin := float32(cfg.UI.HealthBarMargin)
	top := float32(cfg.UI.HealthBarTop)

	for i, e := range match.Fighters {
		if e == nil || !e.Valid() {
			continue
		}
		health := components.Health.Get(e)

		x := margin
		if i == 1 {
			x = width - margin - barW
		}

		// Background
		vector.DrawFilledRect(screen, x, top, barW, barH, cfg.UI.HealthBarBgColor, false)

		// Current HP
		ratio := hud.DisplayedHP[i] / float32(health.Max)
		if ratio < 0 {
			ratio = 0
		}
		vector.DrawFilledRect(screen, x+3, top+3, (barW-6)*ratio, barH-6, healthColor(health.Current), false)

		// Label above the bar, aligned to the outer edge
		labelFace := fonts.HUDLabel.Get()
		label := fmt.Sprintf("PLAYER %d", i+1)
		labelX := int(x)
		if i == 1 {
			labelX = int(x+barW) - textWidth(labelFace, label)
		}
		text.Draw(screen, label, labelFace, labelX, int(top)-8, cfg.PlayerColors[i])

		// Readout centered on the bar
		valueFace := fonts.HUDValue.Get()
		value := fmt.Sprintf("%d%%", health.Current)
		text.Draw(screen, value, valueFace,
			int(x+barW/2)-textWidth(valueFace, value)/2,
			int(top+barH/2)+valueFace.Metrics().Ascent.Ceil()/2,
			cfg.White)
	}
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
