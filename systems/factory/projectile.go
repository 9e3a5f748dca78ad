package factory

import (
	"github.com/automoto/sparring/archetypes"
	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/shared/gamemath"
	"github.com/automoto/sparring/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile fires a projectile from owner in the direction it faces
// and adds it to the owner's projectile collection.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	fighter := components.Fighter.Get(owner)
	physics := components.Physics.Get(owner)

	projectile := archetypes.Projectile.Spawn(ecs)

	data := components.ProjectileData{
		OwnerIndex: fighter.PlayerIndex,
		X:          physics.X + cfg.Projectile.OffsetX*fighter.Facing,
		Y:          physics.Y + cfg.Projectile.OffsetY,
		Direction:  fighter.Facing,
		Speed:      cfg.Projectile.Speed,
		Damage:     cfg.Projectile.Damage,
		Knockback:  cfg.Projectile.Knockback,
		Width:      cfg.Projectile.Width,
		Height:     cfg.Projectile.Height,
		Active:     true,
	}
	components.Projectile.SetValue(projectile, data)

	box := gamemath.CenterBox(data.X, data.Y, data.Width, data.Height)
	obj := resolv.NewObject(box.X, box.Y, box.W, box.H, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	obj.Data = projectile
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	fighter.Projectiles = append(fighter.Projectiles, projectile)
	return projectile
}
