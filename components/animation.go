package components

import (
	"github.com/automoto/sparring/assets/animations"
	"github.com/automoto/sparring/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       [config.StateCount]*animations.Animation
}

// SetAnimation switches to the cycle for state, restarting it from the
// first frame. Setting the state already playing is a no-op.
func (a *AnimationData) SetAnimation(state config.StateID) {
	anim := a.Animations[state]
	if a.CurrentSheet == state && a.CurrentAnimation == anim {
		return
	}
	a.CurrentAnimation = anim
	a.CurrentSheet = state
	if anim != nil {
		anim.Restart()
		anim.Looped = false
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
