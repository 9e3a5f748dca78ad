package systems

import (
	"testing"

	cfg "github.com/automoto/sparring/config"
)

func TestScreenShakeDecays(t *testing.T) {
	e, _ := newTestDuel(t)

	TriggerScreenShake(e, 10, 5)
	camera := GetOrCreateCamera(e)

	UpdateCamera(e)
	if camera.OffsetX == 0 && camera.OffsetY == 0 {
		t.Error("shake produced no offset")
	}
	for i := 0; i < 5; i++ {
		UpdateCamera(e)
	}
	if camera.OffsetX != 0 || camera.OffsetY != 0 {
		t.Errorf("offset (%v, %v) after the shake ended", camera.OffsetX, camera.OffsetY)
	}
}

func TestWeakerShakeDoesNotInterrupt(t *testing.T) {
	e, _ := newTestDuel(t)

	TriggerScreenShake(e, 10, 20)
	TriggerScreenShake(e, 3, 5)

	shake := GetOrCreateCamera(e).Shake
	if shake.Intensity != 10 || shake.Duration != 20 {
		t.Errorf("shake = %+v, want the stronger one", shake)
	}

	TriggerScreenShake(e, 0, 0)
	if got := GetOrCreateCamera(e).Shake; got != shake {
		t.Errorf("zero-length shake changed state to %+v", got)
	}
}

func TestHitsShakeTheScreen(t *testing.T) {
	e, match := newTestDuel(t)

	TakeDamage(e, match.Fighters[1], 10)
	if got := GetOrCreateCamera(e).Shake.Intensity; got != cfg.Camera.HitShakeIntensity {
		t.Errorf("hit shake = %v, want %v", got, cfg.Camera.HitShakeIntensity)
	}

	TakeDamage(e, match.Fighters[1], 100)
	if got := GetOrCreateCamera(e).Shake.Intensity; got != cfg.Camera.KOShakeIntensity {
		t.Errorf("knockout shake = %v, want %v", got, cfg.Camera.KOShakeIntensity)
	}

	ResetMatch(e)
	camera := GetOrCreateCamera(e)
	if camera.Shake.Duration != 0 || camera.OffsetX != 0 || camera.OffsetY != 0 {
		t.Errorf("reset kept the shake: %+v", camera)
	}
}
