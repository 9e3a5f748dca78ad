package systems

import (
	"testing"

	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
)

func TestSquashStretchSettles(t *testing.T) {
	ss := &components.SquashStretchData{ScaleX: 1.4, ScaleY: 0.7, TargetX: 1, TargetY: 1, LerpSpeed: 0.15}

	for i := 0; i < 100 && !ss.Settled(); i++ {
		prev := ss.ScaleX
		updateSquashStretch(ss)
		if ss.ScaleX > prev {
			t.Fatalf("scale moved away from target: %v -> %v", prev, ss.ScaleX)
		}
	}
	if !ss.Settled() || ss.ScaleX != 1 || ss.ScaleY != 1 {
		t.Errorf("did not settle: %+v", ss)
	}
}

func TestJumpAndLandDeformSprite(t *testing.T) {
	e, match := newTestDuel(t)
	p1 := match.Fighters[0]
	ss := components.SquashStretch.Get(p1)

	if !ss.Settled() {
		t.Fatalf("fresh fighter is deformed: %+v", ss)
	}

	Jump(p1)
	if ss.ScaleX != cfg.SquashStretch.JumpScaleX || ss.ScaleY != cfg.SquashStretch.JumpScaleY {
		t.Errorf("jump scale = (%v, %v)", ss.ScaleX, ss.ScaleY)
	}

	for i := 0; i < 200 && components.Physics.Get(p1).Airborne; i++ {
		UpdateFighters(e)
	}
	if ss.ScaleX != cfg.SquashStretch.LandScaleX || ss.ScaleY != cfg.SquashStretch.LandScaleY {
		t.Errorf("land scale = (%v, %v)", ss.ScaleX, ss.ScaleY)
	}

	for i := 0; i < 200 && !ss.Settled(); i++ {
		UpdateEffects(e)
	}
	if !ss.Settled() {
		t.Errorf("landing squash never settled: %+v", ss)
	}
}
