package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData is the kinematic state of a fighter. (X, Y) is the point
// between the fighter's feet.
type PhysicsData struct {
	X         float64
	Y         float64
	VelocityY float64
	Airborne  bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
