package components

import (
	"github.com/automoto/sparring/config"
	"github.com/automoto/sparring/shared/gamemath"
	"github.com/yohamta/donburi"
)

// FighterData holds a fighter's intent flags, combat timers and the
// projectiles it has fired.
type FighterData struct {
	PlayerIndex int     // 0 or 1, also selects the character table
	Facing      float64 // cfg.DirectionLeft or cfg.DirectionRight

	// Movement intent, set by the input router
	MoveLeft  bool
	MoveRight bool

	// Attack window
	IsAttacking     bool
	AttackFrames    int  // Ticks left in the attack window
	AttackConnected bool // Melee already landed during this attack

	// Hit flash
	IsHit     bool
	HitFrames int // Ticks left of the hit flash

	// Live projectiles owned by this fighter, order irrelevant
	Projectiles []*donburi.Entry
}

// HasMoveIntent reports whether either horizontal direction is held.
func (f *FighterData) HasMoveIntent() bool {
	return f.MoveLeft || f.MoveRight
}

var Fighter = donburi.NewComponentType[FighterData]()

// Box returns the fighter's collision box for the given animation state:
// the character table's size scaled by the sprite scale, centered on the
// fighter's x and standing on its feet.
func (f *FighterData) Box(p *PhysicsData, state config.StateID) gamemath.Box {
	def := config.Characters[f.PlayerIndex].State(state)
	scale := config.Fighter.Scale
	return gamemath.FeetBox(p.X, p.Y, def.Width*scale, def.Height*scale)
}
