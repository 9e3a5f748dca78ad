package systems

import (
	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updateProjectiles advances every live projectile owned by owner, hit-tests
// it against the opponent and prunes the ones that are spent.
func updateProjectiles(ecs *ecs.ECS, match *components.MatchData, owner, opponent *donburi.Entry) {
	fighter := components.Fighter.Get(owner)

	for _, e := range fighter.Projectiles {
		p := components.Projectile.Get(e)
		if !p.Active {
			continue
		}

		advanceProjectile(p, match.ScreenWidth)
		syncProjectileObject(e)
		if !p.Active {
			continue
		}

		if gamemath.Overlaps(projectileBox(p), fighterBox(opponent)) {
			p.Active = false
			TakeDamage(ecs, opponent, p.Damage)
			applyKnockback(match, opponent, p.Knockback*p.Direction)
			if match.State != cfg.MatchStatePlaying {
				break
			}
		}
	}

	pruneProjectiles(ecs, fighter)
}

// advanceProjectile moves p one tick along its direction and deactivates it
// once it leaves [0, screenWidth].
func advanceProjectile(p *components.ProjectileData, screenWidth float64) {
	p.X += p.Speed * p.Direction
	p.Rotation += cfg.Projectile.SpinSpeed
	if p.X < 0 || p.X > screenWidth {
		p.Active = false
	}
}

func projectileBox(p *components.ProjectileData) gamemath.Box {
	return gamemath.CenterBox(p.X, p.Y, p.Width, p.Height)
}

// pruneProjectiles removes inactive projectiles from the owner's collection
// and the world. Iterates in reverse so removal happens in place.
func pruneProjectiles(ecs *ecs.ECS, fighter *components.FighterData) {
	for i := len(fighter.Projectiles) - 1; i >= 0; i-- {
		e := fighter.Projectiles[i]
		if e.Valid() && components.Projectile.Get(e).Active {
			continue
		}
		removeProjectile(ecs, e)
		fighter.Projectiles = append(fighter.Projectiles[:i], fighter.Projectiles[i+1:]...)
	}
}

func removeProjectile(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(e)
		if obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

func syncProjectileObject(e *donburi.Entry) {
	p := components.Projectile.Get(e)
	box := projectileBox(p)
	obj := components.Object.Get(e)
	obj.X, obj.Y = box.X, box.Y
	obj.Update()
}
