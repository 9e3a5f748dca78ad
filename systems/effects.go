package systems

import (
	"math"

	"github.com/automoto/sparring/components"
	"github.com/automoto/sparring/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects eases every squashed or stretched sprite back to its
// normal scale.
func UpdateEffects(ecs *ecs.ECS) {
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		updateSquashStretch(components.SquashStretch.Get(e))
	})
}

// updateSquashStretch lerps scale values toward target and snaps once close
func updateSquashStretch(ss *components.SquashStretchData) {
	if ss.Settled() {
		return
	}

	ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
	ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

	threshold := 0.01
	if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
		ss.ScaleX = ss.TargetX
		ss.ScaleY = ss.TargetY
	}
}

// TriggerSquashStretch deforms an entity's sprite, which then eases back to
// normal in UpdateEffects.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if !entry.HasComponent(components.SquashStretch) {
		return
	}
	ss := components.SquashStretch.Get(entry)
	ss.ScaleX = scaleX
	ss.ScaleY = scaleY
	ss.TargetX = 1.0
	ss.TargetY = 1.0
	ss.LerpSpeed = config.SquashStretch.LerpSpeed
}
