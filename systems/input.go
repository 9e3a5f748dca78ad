package systems

import (
	"github.com/automoto/sparring/archetypes"
	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard into the global and per-fighter action
// buffers, then routes the result to the match and the fighters. Fighters
// get no input while the match is paused or over.
// Must run BEFORE UpdatePause and UpdateMatch in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	pollBindings(&input.ActionBuffer, cfg.Input.Global)

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		playerInput := components.PlayerInput.Get(entry)
		pollBindings(&playerInput.ActionBuffer, cfg.Input.Players[playerInput.PlayerIndex])
	})

	applyInput(ecs)
}

// applyInput acts on the buffered actions without touching the keyboard.
func applyInput(ecs *ecs.ECS) {
	applyGlobalInput(ecs, getOrCreateInput(ecs))

	match, ok := GetMatch(ecs)
	if !ok || match.State != cfg.MatchStatePlaying || IsPaused(ecs) {
		return
	}
	for _, entry := range match.Fighters {
		if entry == nil || !entry.Valid() {
			continue
		}
		applyFighterInput(ecs, entry, components.PlayerInput.Get(entry))
	}
}

func applyGlobalInput(ecs *ecs.ECS, input *components.InputData) {
	if GetAction(&input.ActionBuffer, cfg.ActionReset).JustPressed {
		RequestReset(ecs)
	}
	if GetAction(&input.ActionBuffer, cfg.ActionToggleDebug).JustPressed {
		hud := GetOrCreateHUD(ecs)
		hud.ShowDebug = !hud.ShowDebug
	}
}

// applyFighterInput maps one fighter's actions onto its intent flags and
// actions.
func applyFighterInput(ecs *ecs.ECS, e *donburi.Entry, input *components.PlayerInputData) {
	left := GetAction(&input.ActionBuffer, cfg.ActionMoveLeft)
	right := GetAction(&input.ActionBuffer, cfg.ActionMoveRight)
	SetMoveIntent(e, left.Pressed, right.Pressed)

	if GetAction(&input.ActionBuffer, cfg.ActionJump).JustPressed {
		Jump(e)
	}

	attack := GetAction(&input.ActionBuffer, cfg.ActionAttack)
	if attack.JustPressed {
		Attack(ecs, e)
	}
	if attack.JustReleased {
		ReleaseAttack(e)
	}
}

// pollBindings swaps buffers, then records which bound keys are held.
func pollBindings(buf *components.ActionBuffer, bindings map[cfg.ActionID]cfg.InputBinding) {
	buf.Previous = buf.Current
	buf.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				buf.Current[actionID] = true
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(buf *components.ActionBuffer, id cfg.ActionID) components.ActionState {
	curr := buf.Current[id]
	prev := buf.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
