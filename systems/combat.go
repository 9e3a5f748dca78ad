package systems

import (
	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// resolveMelee lands the attacker's melee on the defender when their boxes
// overlap during the attack window. Repeat hits from one sustained overlap
// are blocked by the gate selected in cfg.Combat.MeleeGate.
func resolveMelee(ecs *ecs.ECS, match *components.MatchData, attacker, defender *donburi.Entry) {
	af := components.Fighter.Get(attacker)
	if !af.IsAttacking {
		return
	}
	if !gamemath.Overlaps(fighterBox(attacker), fighterBox(defender)) {
		return
	}
	if meleeBlocked(af, components.Fighter.Get(defender)) {
		return
	}

	af.AttackConnected = true
	TakeDamage(ecs, defender, cfg.Combat.MeleeDamage)
	applyKnockback(match, defender, cfg.Combat.MeleeKnockback*af.Facing)
}

func meleeBlocked(attacker, defender *components.FighterData) bool {
	switch cfg.Combat.MeleeGate {
	case cfg.MeleeGatePerAttack:
		return attacker.AttackConnected
	default:
		return defender.IsHit
	}
}

// applyKnockback displaces e horizontally by dx, keeping it inside the arena.
func applyKnockback(match *components.MatchData, e *donburi.Entry, dx float64) {
	physics := components.Physics.Get(e)
	physics.X = gamemath.ClampX(physics.X+dx, match.MinX, match.MaxX)
	syncFighterObject(e)
}
