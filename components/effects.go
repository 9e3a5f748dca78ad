package components

import "github.com/yohamta/donburi"

// SquashStretchData tracks sprite scale deformation for jump/land feel
type SquashStretchData struct {
	ScaleX, ScaleY   float64 // current scale
	TargetX, TargetY float64 // lerp target (usually 1.0, 1.0)
	LerpSpeed        float64 // how fast to return to normal
}

// Settled reports whether the scale has returned to its target.
func (s *SquashStretchData) Settled() bool {
	return s.ScaleX == s.TargetX && s.ScaleY == s.TargetY
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
