package systems

import (
	"math"
	"testing"

	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestDuel builds a 1280x720 arena with the ground at 576 and the
// fighters at 384 and 896.
func newTestDuel(t *testing.T) (*ecs.ECS, *components.MatchData) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 2560, 1440, 32, 32)
	factory.CreateMatch(e, 1280, 720, [2]float64{0.3, 0.7}, 0.8)

	match, ok := GetMatch(e)
	if !ok {
		t.Fatal("match singleton not created")
	}
	return e, match
}

// withMeleeGate switches the melee gate for the duration of the test.
func withMeleeGate(t *testing.T, gate cfg.MeleeGateMode) {
	t.Helper()
	prev := cfg.Combat.MeleeGate
	cfg.Combat.MeleeGate = gate
	t.Cleanup(func() { cfg.Combat.MeleeGate = prev })
}

func tickN(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		UpdateFighters(e)
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
