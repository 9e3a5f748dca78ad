package factory

import (
	"fmt"

	"github.com/automoto/sparring/archetypes"
	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns the fighter for playerIndex standing at (x, groundY).
// Player 1 starts facing right and player 2 left, toward each other.
func CreateFighter(ecs *ecs.ECS, playerIndex int, x, groundY float64) *donburi.Entry {
	if playerIndex < 0 || playerIndex > 1 {
		panic(fmt.Sprintf("invalid player index: %d", playerIndex))
	}

	fighter := archetypes.Fighter.Spawn(ecs)

	facing := cfg.DirectionRight
	if playerIndex == 1 {
		facing = cfg.DirectionLeft
	}
	components.Fighter.SetValue(fighter, components.FighterData{
		PlayerIndex: playerIndex,
		Facing:      facing,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{
		X: x,
		Y: groundY,
	})
	components.State.SetValue(fighter, components.StateData{
		CurrentState: cfg.Idle,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: cfg.Fighter.MaxHP,
		Max:     cfg.Fighter.MaxHP,
	})
	components.PlayerInput.SetValue(fighter, components.PlayerInputData{
		PlayerIndex: playerIndex,
	})
	components.Animation.Set(fighter, GenerateAnimations(playerIndex))
	components.SquashStretch.SetValue(fighter, components.SquashStretchData{
		ScaleX:    1,
		ScaleY:    1,
		TargetX:   1,
		TargetY:   1,
		LerpSpeed: cfg.SquashStretch.LerpSpeed,
	})

	box := components.Fighter.Get(fighter).Box(components.Physics.Get(fighter), cfg.Idle)
	obj := resolv.NewObject(box.X, box.Y, box.W, box.H, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return fighter
}
