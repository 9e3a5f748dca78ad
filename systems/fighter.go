package systems

import (
	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/shared/gamemath"
	"github.com/automoto/sparring/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters simulates one tick for both fighters, player 1 first.
// A knockout halts the tick immediately.
func UpdateFighters(ecs *ecs.ECS) {
	match, ok := GetMatch(ecs)
	if !ok {
		return
	}
	for i, e := range match.Fighters {
		if match.State != cfg.MatchStatePlaying {
			return
		}
		if e == nil || !e.Valid() {
			continue
		}
		updateFighter(ecs, match, e, match.Opponent(i))
	}
}

func updateFighter(ecs *ecs.ECS, match *components.MatchData, e, opponent *donburi.Entry) {
	applyGravity(e, match)
	applyMovement(e, match)

	if opponent != nil && opponent.Valid() {
		resolveMelee(ecs, match, e, opponent)
		if match.State != cfg.MatchStatePlaying {
			return
		}
		updateProjectiles(ecs, match, e, opponent)
		if match.State != cfg.MatchStatePlaying {
			return
		}
	}

	tickTimers(e)
	advanceAnimation(e)
	syncFighterObject(e)
}

// Jump launches a grounded fighter. Calling it mid-air changes nothing.
func Jump(e *donburi.Entry) {
	physics := components.Physics.Get(e)
	if physics.Airborne {
		return
	}
	physics.VelocityY = cfg.Fighter.JumpForce
	physics.Airborne = true
	setState(e, cfg.Jump)
	TriggerSquashStretch(e, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
}

// Attack opens the attack window and fires one projectile. Calling it while
// the window is open changes nothing, which limits fire rate to one shot
// per window.
func Attack(ecs *ecs.ECS, e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	if fighter.IsAttacking {
		return
	}
	fighter.IsAttacking = true
	fighter.AttackFrames = cfg.Fighter.AttackFrames
	fighter.AttackConnected = false

	setState(e, cfg.Attack)
	components.Animation.Get(e).CurrentAnimation.Restart()

	factory.CreateProjectile(ecs, e)
}

// SetMoveIntent updates the held movement directions. Letting go of the last
// direction on the ground returns the fighter to Idle.
func SetMoveIntent(e *donburi.Entry, left, right bool) {
	fighter := components.Fighter.Get(e)
	hadIntent := fighter.HasMoveIntent()
	fighter.MoveLeft = left
	fighter.MoveRight = right

	if hadIntent && !fighter.HasMoveIntent() && !components.Physics.Get(e).Airborne {
		setState(e, cfg.Idle)
	}
}

// ReleaseAttack reverts a grounded fighter to Idle when the attack key goes
// up. The attack window itself keeps running.
func ReleaseAttack(e *donburi.Entry) {
	if components.Physics.Get(e).Airborne {
		return
	}
	setState(e, cfg.Idle)
}

// TakeDamage lowers hp by amount, floored at zero, and starts the hit flash.
// Reaching zero ends the match in the opponent's favor.
func TakeDamage(ecs *ecs.ECS, e *donburi.Entry, amount int) {
	if amount < 0 {
		amount = 0
	}
	health := components.Health.Get(e)
	health.Current = gamemath.ClampInt(health.Current-amount, 0, health.Max)

	fighter := components.Fighter.Get(e)
	fighter.IsHit = true
	fighter.HitFrames = cfg.Fighter.HitFlashFrames
	TriggerScreenShake(ecs, cfg.Camera.HitShakeIntensity, cfg.Camera.HitShakeFrames)

	if health.Current == 0 {
		finishMatch(ecs, fighter.PlayerIndex)
	}
}

func applyGravity(e *donburi.Entry, match *components.MatchData) {
	physics := components.Physics.Get(e)
	if !physics.Airborne {
		return
	}

	var landed bool
	physics.Y, physics.VelocityY, landed = gamemath.StepFall(physics.Y, physics.VelocityY, cfg.Physics.Gravity, match.GroundY)
	if !landed {
		return
	}
	physics.Airborne = false
	TriggerSquashStretch(e, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
	if !components.Fighter.Get(e).HasMoveIntent() {
		setState(e, cfg.Idle)
	}
}

func applyMovement(e *donburi.Entry, match *components.MatchData) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)

	if fighter.MoveLeft {
		physics.X = gamemath.ClampX(physics.X-cfg.Fighter.MoveSpeed, match.MinX, match.MaxX)
		fighter.Facing = cfg.DirectionLeft
		if !physics.Airborne {
			setState(e, cfg.Idle)
		}
	}
	if fighter.MoveRight {
		physics.X = gamemath.ClampX(physics.X+cfg.Fighter.MoveSpeed, match.MinX, match.MaxX)
		fighter.Facing = cfg.DirectionRight
		if !physics.Airborne {
			setState(e, cfg.Idle)
		}
	}
}

// tickTimers counts down the attack window and hit flash, clearing each
// flag when its countdown runs out.
func tickTimers(e *donburi.Entry) {
	fighter := components.Fighter.Get(e)

	if fighter.AttackFrames > 0 {
		fighter.AttackFrames--
		if fighter.AttackFrames == 0 {
			fighter.IsAttacking = false
			if !components.Physics.Get(e).Airborne {
				setState(e, cfg.Idle)
			}
		}
	}

	if fighter.HitFrames > 0 {
		fighter.HitFrames--
		if fighter.HitFrames == 0 {
			fighter.IsHit = false
		}
	}
}

func advanceAnimation(e *donburi.Entry) {
	components.State.Get(e).StateTimer++
	if anim := components.Animation.Get(e).CurrentAnimation; anim != nil {
		anim.Update()
	}
}

// setState switches the fighter's animation state. The box used for
// collisions follows the state.
func setState(e *donburi.Entry, next cfg.StateID) {
	state := components.State.Get(e)
	if state.CurrentState == next {
		return
	}
	state.CurrentState = next
	state.StateTimer = 0
	components.Animation.Get(e).SetAnimation(next)
}

// fighterBox returns the fighter's current collision box.
func fighterBox(e *donburi.Entry) gamemath.Box {
	return components.Fighter.Get(e).Box(components.Physics.Get(e), components.State.Get(e).CurrentState)
}

// syncFighterObject mirrors the fighter's box into the collision space.
func syncFighterObject(e *donburi.Entry) {
	box := fighterBox(e)
	obj := components.Object.Get(e)
	obj.X, obj.Y, obj.W, obj.H = box.X, box.Y, box.W, box.H
	obj.Update()
}
