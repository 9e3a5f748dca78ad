package components

import (
	"math"
	"testing"

	"github.com/automoto/sparring/config"
)

func TestFighterBox(t *testing.T) {
	tests := []struct {
		name   string
		player int
		state  config.StateID
		wantW  float64
	}{
		{name: "player 1 idle", player: 0, state: config.Idle, wantW: 45 * config.Fighter.Scale},
		{name: "player 1 attack", player: 0, state: config.Attack, wantW: 50 * config.Fighter.Scale},
		{name: "player 2 idle", player: 1, state: config.Idle, wantW: 50 * config.Fighter.Scale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &FighterData{PlayerIndex: tt.player}
			p := &PhysicsData{X: 400, Y: 576}

			box := f.Box(p, tt.state)

			if math.Abs(box.W-tt.wantW) > 1e-9 {
				t.Errorf("width = %v, want %v", box.W, tt.wantW)
			}
			if math.Abs(box.X+box.W/2-400) > 1e-9 {
				t.Errorf("box not centered on x: %+v", box)
			}
			if math.Abs(box.Bottom()-576) > 1e-9 {
				t.Errorf("box bottom = %v, want 576", box.Bottom())
			}
		})
	}
}

func TestHealthFraction(t *testing.T) {
	tests := []struct {
		h    HealthData
		want float64
	}{
		{HealthData{Current: 100, Max: 100}, 1},
		{HealthData{Current: 25, Max: 100}, 0.25},
		{HealthData{Current: 0, Max: 100}, 0},
		{HealthData{Current: 5, Max: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.h.Fraction(); got != tt.want {
			t.Errorf("%+v.Fraction() = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestOpponent(t *testing.T) {
	var m MatchData
	if m.Opponent(0) != m.Fighters[1] || m.Opponent(1) != m.Fighters[0] {
		t.Error("Opponent must return the other slot")
	}
}
