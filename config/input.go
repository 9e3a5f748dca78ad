package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionReset
	ActionToggleDebug
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to a single action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Players holds the fighter bindings, indexed by player
	Players [2]map[ActionID]InputBinding
	// Global holds match-level bindings shared by both players
	Global map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Players: [2]map[ActionID]InputBinding{
			{
				ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA}},
				ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD}},
				ActionJump:      {Keys: []ebiten.Key{ebiten.KeyW}},
				ActionAttack:    {Keys: []ebiten.Key{ebiten.KeyF}},
			},
			{
				ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
				ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
				ActionJump:      {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
				ActionAttack:    {Keys: []ebiten.Key{ebiten.KeySlash}},
			},
		},
		Global: map[ActionID]InputBinding{
			ActionReset:       {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF1}},
			ActionPause:       {Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
		},
	}
}

// MatchLegend is the key legend for the shared match controls.
const MatchLegend = "R - Restart    P - Pause    F1 - Hitboxes"

// ControlLegend returns the human-readable key legend for a player's controls.
func ControlLegend(player int) []string {
	if player == 0 {
		return []string{"A / D - Move", "W - Jump", "F - Attack"}
	}
	return []string{"Left / Right - Move", "Up - Jump", "/ - Attack"}
}
