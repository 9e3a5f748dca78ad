package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
)

func TestHealthColor(t *testing.T) {
	tests := []struct {
		hp   int
		want color.RGBA
	}{
		{100, cfg.UI.HealthHighColor},
		{71, cfg.UI.HealthHighColor},
		{70, cfg.UI.HealthMidColor},
		{31, cfg.UI.HealthMidColor},
		{30, cfg.UI.HealthLowColor},
		{0, cfg.UI.HealthLowColor},
	}
	for _, tt := range tests {
		if got := healthColor(tt.hp); got != tt.want {
			t.Errorf("healthColor(%d) = %v, want %v", tt.hp, got, tt.want)
		}
	}
}

func TestHealthDrain(t *testing.T) {
	hud := &components.HUDData{
		DisplayedHP: [2]float32{100, 100},
		TargetHP:    [2]int{100, 100},
	}
	const dt = float32(1.0 / 60)

	updateHealthDrain(hud, 1, 90, dt)
	if hud.Drain[1] == nil {
		t.Fatal("damage should start a drain")
	}
	if hud.DisplayedHP[1] >= 100 || hud.DisplayedHP[1] < 90 {
		t.Errorf("displayed = %v, want in [90, 100)", hud.DisplayedHP[1])
	}

	for i := 0; i < 120 && hud.Drain[1] != nil; i++ {
		updateHealthDrain(hud, 1, 90, dt)
	}
	if hud.Drain[1] != nil || hud.DisplayedHP[1] != 90 {
		t.Errorf("drain did not settle: displayed=%v", hud.DisplayedHP[1])
	}
	if hud.DisplayedHP[0] != 100 {
		t.Errorf("other bar moved to %v", hud.DisplayedHP[0])
	}

	updateHealthDrain(hud, 1, 100, dt)
	if hud.DisplayedHP[1] != 100 || hud.Drain[1] != nil {
		t.Errorf("healing should snap: displayed=%v", hud.DisplayedHP[1])
	}
}

func TestWinnerText(t *testing.T) {
	if got := WinnerText(0); got != "Player 1 Wins!" {
		t.Errorf("WinnerText(0) = %q", got)
	}
	if got := WinnerText(1); got != "Player 2 Wins!" {
		t.Errorf("WinnerText(1) = %q", got)
	}
}
