package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData tracks the animated parts of the overlay.
type HUDData struct {
	// Health shown in each bar, chasing the real value
	DisplayedHP [2]float32
	TargetHP    [2]int
	Drain       [2]*gween.Tween

	// Winner banner fade, nil while the match is running
	Banner      *gween.Tween
	BannerAlpha float32

	ShowDebug bool
}

var HUD = donburi.NewComponentType[HUDData]()
