package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer used by the duel scene.
const Default ecs.LayerID = 0

// StateID identifies a fighter's animation state. It also selects the
// collision box size, so the set is closed.
type StateID int

const (
	Idle StateID = iota
	Jump
	Attack
	StateCount // Must be last - used for array sizing
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Jump:
		return "jump"
	case Attack:
		return "attack"
	}
	return "unknown"
}

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStatePlaying  MatchStateID = iota // Fighters are simulated every tick
	MatchStateFinished                     // A fighter reached 0 HP; waiting for reset
)
