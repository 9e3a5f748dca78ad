package components

import (
	cfg "github.com/automoto/sparring/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// ActionBuffer stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type ActionBuffer struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// InputData holds match-level actions (reset, debug toggle).
type InputData struct {
	ActionBuffer
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData holds the actions of the fighter it is attached to.
type PlayerInputData struct {
	ActionBuffer
	PlayerIndex int
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
