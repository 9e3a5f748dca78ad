package systems

import (
	"log"

	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/shared/gamemath"
	"github.com/automoto/sparring/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch handles reset requests and counts simulated ticks.
func UpdateMatch(e *ecs.ECS) {
	match, ok := GetMatch(e)
	if !ok {
		return
	}

	if match.ResetRequested {
		ResetMatch(e)
	}

	if match.State == cfg.MatchStatePlaying {
		match.Tick++
	}
}

// GetMatch returns the match singleton.
func GetMatch(e *ecs.ECS) (*components.MatchData, bool) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Match.Get(matchEntry), true
}

// RequestReset schedules a reset for the start of the next match update.
func RequestReset(e *ecs.ECS) {
	if match, ok := GetMatch(e); ok {
		match.ResetRequested = true
	}
}

// ResetMatch replaces both fighters with fresh ones at their spawn points
// and resumes play. It works from any match state.
func ResetMatch(e *ecs.ECS) {
	match, ok := GetMatch(e)
	if !ok {
		return
	}

	// Keys held through the reset stay held, not freshly pressed
	var held [2]components.ActionBuffer
	for i, fighter := range match.Fighters {
		if fighter != nil && fighter.Valid() {
			held[i] = components.PlayerInput.Get(fighter).ActionBuffer
			removeFighter(e, fighter)
		}
		match.Fighters[i] = nil
	}

	factory.SpawnFighters(e, match)
	for i, fighter := range match.Fighters {
		components.PlayerInput.Get(fighter).ActionBuffer = held[i]
	}
	match.State = cfg.MatchStatePlaying
	match.WinnerIndex = components.NoWinner
	match.Tick = 0
	match.ResetRequested = false
	GetOrCreatePause(e).IsPaused = false
	resetCamera(e)

	log.Printf("Match reset")
}

// ResizeArena adapts the arena to a new viewport. Grounded fighters stay on
// the ground, airborne ones move with it, and everyone is kept inside the
// new horizontal bounds.
func ResizeArena(e *ecs.ECS, width, height float64) {
	match, ok := GetMatch(e)
	if !ok {
		return
	}
	if match.ScreenWidth == width && match.ScreenHeight == height {
		return
	}

	oldGround := match.GroundY
	factory.SetArenaBounds(match, width, height)
	shift := match.GroundY - oldGround

	for _, fighter := range match.Fighters {
		if fighter == nil || !fighter.Valid() {
			continue
		}
		physics := components.Physics.Get(fighter)
		if physics.Airborne {
			physics.Y += shift
		} else {
			physics.Y = match.GroundY
		}
		physics.X = gamemath.ClampX(physics.X, match.MinX, match.MaxX)
		syncFighterObject(fighter)

		for _, p := range components.Fighter.Get(fighter).Projectiles {
			components.Projectile.Get(p).Y += shift
			syncProjectileObject(p)
		}
	}
}

// IsMatchPlaying returns true if the fighters are being simulated
func IsMatchPlaying(e *ecs.ECS) bool {
	match, ok := GetMatch(e)
	return ok && match.State == cfg.MatchStatePlaying
}

// IsMatchFinished returns true once a fighter has been knocked out
func IsMatchFinished(e *ecs.ECS) bool {
	match, ok := GetMatch(e)
	return ok && match.State == cfg.MatchStateFinished
}

// Winner returns the winning player index once the match is finished.
func Winner(e *ecs.ECS) (int, bool) {
	match, ok := GetMatch(e)
	if !ok || match.State != cfg.MatchStateFinished {
		return components.NoWinner, false
	}
	return match.WinnerIndex, true
}

// finishMatch ends the match after loser was knocked out. Only the first
// knockout counts.
func finishMatch(e *ecs.ECS, loser int) {
	match, ok := GetMatch(e)
	if !ok || match.State != cfg.MatchStatePlaying {
		return
	}
	match.State = cfg.MatchStateFinished
	match.WinnerIndex = 1 - loser
	TriggerScreenShake(e, cfg.Camera.KOShakeIntensity, cfg.Camera.KOShakeFrames)

	log.Printf("%s wins after %d ticks", cfg.Match.PlayerNames[match.WinnerIndex], match.Tick)
}

func removeFighter(e *ecs.ECS, fighter *donburi.Entry) {
	for _, p := range components.Fighter.Get(fighter).Projectiles {
		removeProjectile(e, p)
	}
	if spaceEntry, ok := components.Space.First(e.World); ok {
		if obj := components.Object.Get(fighter); obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	e.World.Remove(fighter.Entity())
}

// WithMatchPlaying wraps a system to skip execution once the match has ended.
func WithMatchPlaying(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsMatchPlaying(e) {
			return
		}
		system(e)
	}
}
