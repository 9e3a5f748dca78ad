package archetypes

import (
	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.PlayerInput,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
		components.State,
		components.SquashStretch,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Match = newArchetype(
		components.Match,
	)
	Space = newArchetype(
		components.Space,
	)
	Input = newArchetype(
		components.Input,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Pause = newArchetype(
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
