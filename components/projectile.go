package components

import (
	"github.com/yohamta/donburi"
)

// ProjectileData is a short-lived horizontal hitbox fired by a fighter.
// (X, Y) is its center.
type ProjectileData struct {
	OwnerIndex int // PlayerIndex of the owner, selects the sprite tint
	X, Y       float64
	Direction  float64 // -1 or 1 along the horizontal axis
	Speed      float64
	Damage     int
	Knockback  float64
	Width      float64
	Height     float64
	Rotation   float64 // Degrees, render only
	Active     bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
