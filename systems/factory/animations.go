package factory

import (
	"fmt"

	"github.com/automoto/sparring/assets/animations"
	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
)

// GenerateAnimations creates an AnimationData component from the character
// table of the given player.
func GenerateAnimations(playerIndex int) *components.AnimationData {
	if playerIndex < 0 || playerIndex >= len(cfg.Characters) {
		panic(fmt.Sprintf("No character definition for player index: %d", playerIndex))
	}
	def := cfg.Characters[playerIndex]

	animData := &components.AnimationData{
		CurrentSheet: cfg.Idle,
	}
	for state := cfg.StateID(0); state < cfg.StateCount; state++ {
		s := def.State(state)
		animData.Animations[state] = animations.NewAnimation(s.Frames, s.FrameDelay)
	}
	animData.CurrentAnimation = animData.Animations[cfg.Idle]

	return animData
}
