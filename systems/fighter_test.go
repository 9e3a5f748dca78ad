package systems

import (
	"testing"

	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
)

func TestJumpOnlyFromGround(t *testing.T) {
	e, match := newTestDuel(t)
	p1 := match.Fighters[0]

	Jump(p1)
	physics := components.Physics.Get(p1)
	if !physics.Airborne || physics.VelocityY != cfg.Fighter.JumpForce {
		t.Fatalf("after jump: airborne=%v vy=%v", physics.Airborne, physics.VelocityY)
	}
	if got := components.State.Get(p1).CurrentState; got != cfg.Jump {
		t.Errorf("state = %v, want Jump", got)
	}

	tickN(e, 1)
	vy := physics.VelocityY
	Jump(p1)
	if physics.VelocityY != vy {
		t.Errorf("mid-air jump changed velocity from %v to %v", vy, physics.VelocityY)
	}
}

func TestJumpLandsOnGround(t *testing.T) {
	e, match := newTestDuel(t)
	p1 := match.Fighters[0]
	physics := components.Physics.Get(p1)

	Jump(p1)
	for i := 0; i < 200 && physics.Airborne; i++ {
		tickN(e, 1)
		if physics.Y > match.GroundY {
			t.Fatalf("tick %d: y=%v below ground %v", i, physics.Y, match.GroundY)
		}
	}

	if physics.Airborne {
		t.Fatal("fighter never landed")
	}
	if physics.Y != match.GroundY || physics.VelocityY != 0 {
		t.Errorf("landed at y=%v vy=%v, want y=%v vy=0", physics.Y, physics.VelocityY, match.GroundY)
	}
	if got := components.State.Get(p1).CurrentState; got != cfg.Idle {
		t.Errorf("state after landing = %v, want Idle", got)
	}
}

func TestAttackIsIgnoredWhileAttacking(t *testing.T) {
	e, match := newTestDuel(t)
	p1 := match.Fighters[0]

	Attack(e, p1)
	Attack(e, p1)

	fighter := components.Fighter.Get(p1)
	if !fighter.IsAttacking || fighter.AttackFrames != cfg.Fighter.AttackFrames {
		t.Errorf("attacking=%v frames=%d", fighter.IsAttacking, fighter.AttackFrames)
	}
	if len(fighter.Projectiles) != 1 {
		t.Errorf("projectiles = %d, want 1", len(fighter.Projectiles))
	}
	if got := components.State.Get(p1).CurrentState; got != cfg.Attack {
		t.Errorf("state = %v, want Attack", got)
	}
}

func TestAttackWindowExpires(t *testing.T) {
	e, match := newTestDuel(t)
	p1 := match.Fighters[0]
	fighter := components.Fighter.Get(p1)
	fighter.Facing = cfg.DirectionLeft

	Attack(e, p1)
	tickN(e, cfg.Fighter.AttackFrames-1)
	if !fighter.IsAttacking {
		t.Fatal("attack window closed early")
	}

	tickN(e, 1)
	if fighter.IsAttacking || fighter.AttackFrames != 0 {
		t.Errorf("attacking=%v frames=%d after window", fighter.IsAttacking, fighter.AttackFrames)
	}
	if got := components.State.Get(p1).CurrentState; got != cfg.Idle {
		t.Errorf("state = %v, want Idle", got)
	}

	Attack(e, p1)
	if len(fighter.Projectiles) != 1 {
		t.Errorf("second attack should fire again, have %d projectiles", len(fighter.Projectiles))
	}
}

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name     string
		amount   int
		wantHP   int
		finished bool
	}{
		{name: "normal hit", amount: 10, wantHP: 90},
		{name: "zero", amount: 0, wantHP: 100},
		{name: "negative is ignored", amount: -5, wantHP: 100},
		{name: "overkill floors at zero", amount: 150, wantHP: 0, finished: true},
		{name: "exact kill", amount: 100, wantHP: 0, finished: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, match := newTestDuel(t)
			p2 := match.Fighters[1]

			TakeDamage(e, p2, tt.amount)

			if got := components.Health.Get(p2).Current; got != tt.wantHP {
				t.Errorf("hp = %d, want %d", got, tt.wantHP)
			}
			fighter := components.Fighter.Get(p2)
			if !fighter.IsHit || fighter.HitFrames != cfg.Fighter.HitFlashFrames {
				t.Errorf("hit flash not started: isHit=%v frames=%d", fighter.IsHit, fighter.HitFrames)
			}
			if got := IsMatchFinished(e); got != tt.finished {
				t.Errorf("finished = %v, want %v", got, tt.finished)
			}
			if tt.finished && match.WinnerIndex != 0 {
				t.Errorf("winner = %d, want 0", match.WinnerIndex)
			}
		})
	}
}

func TestHitFlashExpires(t *testing.T) {
	e, match := newTestDuel(t)
	p2 := match.Fighters[1]

	TakeDamage(e, p2, 5)
	fighter := components.Fighter.Get(p2)

	tickN(e, cfg.Fighter.HitFlashFrames-1)
	if !fighter.IsHit {
		t.Fatal("hit flash ended early")
	}
	tickN(e, 1)
	if fighter.IsHit || fighter.HitFrames != 0 {
		t.Errorf("isHit=%v frames=%d after flash", fighter.IsHit, fighter.HitFrames)
	}
}

func TestMovementStaysInBounds(t *testing.T) {
	e, match := newTestDuel(t)
	p1, p2 := match.Fighters[0], match.Fighters[1]

	components.Physics.Get(p1).X = match.MinX + 5
	components.Physics.Get(p2).X = match.MaxX - 5
	SetMoveIntent(p1, true, false)
	SetMoveIntent(p2, false, true)

	tickN(e, 3)

	if got := components.Physics.Get(p1).X; got != match.MinX {
		t.Errorf("p1 x = %v, want %v", got, match.MinX)
	}
	if got := components.Physics.Get(p2).X; got != match.MaxX {
		t.Errorf("p2 x = %v, want %v", got, match.MaxX)
	}
	if got := components.Fighter.Get(p1).Facing; got != cfg.DirectionLeft {
		t.Errorf("p1 facing = %v, want left", got)
	}
	if got := components.Fighter.Get(p2).Facing; got != cfg.DirectionRight {
		t.Errorf("p2 facing = %v, want right", got)
	}
}

func TestMovementSpeed(t *testing.T) {
	e, match := newTestDuel(t)
	p1 := match.Fighters[0]

	SetMoveIntent(p1, false, true)
	tickN(e, 2)

	if got, want := components.Physics.Get(p1).X, 384+2*cfg.Fighter.MoveSpeed; got != want {
		t.Errorf("x = %v, want %v", got, want)
	}
}

func TestSetMoveIntentReturnsToIdle(t *testing.T) {
	_, match := newTestDuel(t)
	p1 := match.Fighters[0]

	setState(p1, cfg.Attack)
	SetMoveIntent(p1, false, false)
	if got := components.State.Get(p1).CurrentState; got != cfg.Attack {
		t.Errorf("no intent change should keep state, got %v", got)
	}

	SetMoveIntent(p1, true, false)
	setState(p1, cfg.Attack)
	SetMoveIntent(p1, false, false)
	if got := components.State.Get(p1).CurrentState; got != cfg.Idle {
		t.Errorf("releasing movement on the ground: state = %v, want Idle", got)
	}

	Jump(p1)
	SetMoveIntent(p1, true, false)
	SetMoveIntent(p1, false, false)
	if got := components.State.Get(p1).CurrentState; got != cfg.Jump {
		t.Errorf("releasing movement mid-air: state = %v, want Jump", got)
	}
}

func TestReleaseAttack(t *testing.T) {
	e, match := newTestDuel(t)
	p1 := match.Fighters[0]

	Attack(e, p1)
	ReleaseAttack(p1)
	if got := components.State.Get(p1).CurrentState; got != cfg.Idle {
		t.Errorf("grounded release: state = %v, want Idle", got)
	}
	if !components.Fighter.Get(p1).IsAttacking {
		t.Error("release must not close the attack window")
	}

	p2 := match.Fighters[1]
	Jump(p2)
	ReleaseAttack(p2)
	if got := components.State.Get(p2).CurrentState; got != cfg.Jump {
		t.Errorf("airborne release: state = %v, want Jump", got)
	}
}

func TestFighterObjectFollowsBox(t *testing.T) {
	e, match := newTestDuel(t)
	p1 := match.Fighters[0]

	SetMoveIntent(p1, false, true)
	tickN(e, 1)

	box := fighterBox(p1)
	obj := components.Object.Get(p1)
	if obj.X != box.X || obj.Y != box.Y || obj.W != box.W || obj.H != box.H {
		t.Errorf("object (%v, %v, %v, %v) does not match box %+v", obj.X, obj.Y, obj.W, obj.H, box)
	}
}
