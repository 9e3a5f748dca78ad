package systems

import (
	"math"

	"github.com/automoto/sparring/archetypes"
	"github.com/automoto/sparring/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera advances the screen shake and recomputes the render offset.
func UpdateCamera(e *ecs.ECS) {
	updateScreenShake(GetOrCreateCamera(e))
}

// updateScreenShake applies a decaying, oscillating offset while a shake
// is running and centers the camera once it ends.
func updateScreenShake(camera *components.CameraData) {
	shake := &camera.Shake
	if shake.Elapsed >= shake.Duration {
		camera.OffsetX, camera.OffsetY = 0, 0
		return
	}
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	intensity := shake.Intensity * progress

	camera.OffsetX = math.Sin(float64(shake.Elapsed)*1.1) * intensity
	camera.OffsetY = math.Cos(float64(shake.Elapsed)*1.3) * intensity
}

// TriggerScreenShake starts a screen shake. A running shake is only
// replaced by a stronger one.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	if duration <= 0 {
		return
	}
	shake := &GetOrCreateCamera(ecs).Shake
	if shake.Elapsed < shake.Duration && intensity <= shake.Intensity {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
}

// GetOrCreateCamera returns the singleton Camera component, creating if needed.
func GetOrCreateCamera(ecs *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		entry = archetypes.Camera.Spawn(ecs)
	}
	return components.Camera.Get(entry)
}

func resetCamera(ecs *ecs.ECS) {
	*GetOrCreateCamera(ecs) = components.CameraData{}
}
