package components

import "github.com/yohamta/donburi"

// ScreenShakeData is a decaying shake. Elapsed >= Duration means idle.
type ScreenShakeData struct {
	Intensity float64 // pixels at the start of the shake
	Duration  int     // ticks
	Elapsed   int
}

// CameraData holds the render offset applied to the arena and fighters.
// The arena never scrolls, so the offset is only ever shake.
type CameraData struct {
	OffsetX, OffsetY float64
	Shake            ScreenShakeData
}

var Camera = donburi.NewComponentType[CameraData]()
