package systems

import (
	"testing"

	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
)

func TestPauseToggle(t *testing.T) {
	e, _ := newTestDuel(t)
	input := getOrCreateInput(e)

	press(&input.ActionBuffer, cfg.ActionPause)
	UpdatePause(e)
	if !IsPaused(e) {
		t.Fatal("P should pause")
	}

	// Held key does not toggle again.
	press(&input.ActionBuffer, cfg.ActionPause)
	UpdatePause(e)
	if !IsPaused(e) {
		t.Fatal("holding P unpaused the match")
	}

	press(&input.ActionBuffer)
	UpdatePause(e)
	press(&input.ActionBuffer, cfg.ActionPause)
	UpdatePause(e)
	if IsPaused(e) {
		t.Error("second press should resume")
	}
}

func TestPauseFreezesFighters(t *testing.T) {
	e, match := newTestDuel(t)
	p1 := match.Fighters[0]
	GetOrCreatePause(e).IsPaused = true

	input := components.PlayerInput.Get(p1)
	press(&input.ActionBuffer, cfg.ActionMoveRight, cfg.ActionAttack)
	applyInput(e)

	fighter := components.Fighter.Get(p1)
	if fighter.MoveRight || fighter.IsAttacking {
		t.Errorf("paused match accepted input: %+v", fighter)
	}

	fighter.MoveRight = true
	update := WithPauseCheck(UpdateFighters)
	update(e)
	if got := components.Physics.Get(p1).X; got != 384 {
		t.Errorf("fighter moved to %v while paused", got)
	}

	GetOrCreatePause(e).IsPaused = false
	update(e)
	if got := components.Physics.Get(p1).X; got == 384 {
		t.Error("fighter did not move after resuming")
	}
}

func TestPauseAfterKnockout(t *testing.T) {
	e, match := newTestDuel(t)
	TakeDamage(e, match.Fighters[1], 100)

	input := getOrCreateInput(e)
	press(&input.ActionBuffer, cfg.ActionPause)
	UpdatePause(e)
	if IsPaused(e) {
		t.Error("a finished match should not pause")
	}
}

func TestResetUnpauses(t *testing.T) {
	e, _ := newTestDuel(t)
	GetOrCreatePause(e).IsPaused = true

	RequestReset(e)
	UpdateMatch(e)

	if IsPaused(e) {
		t.Error("reset should resume play")
	}
}
