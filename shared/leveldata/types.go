// Package leveldata parses arena layouts from TMX files.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

// ArenaLayout holds the fighter placement read from a TMX arena file, in
// map pixels.
type ArenaLayout struct {
	SpawnPoints []SpawnPoint
	GroundY     float64
	MapWidth    int
	MapHeight   int
}

// SpawnPoint represents a fighter spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// SpawnFractions returns each fighter's spawn x as a fraction of the map
// width, indexed by spawn index.
func (a *ArenaLayout) SpawnFractions() [2]float64 {
	var out [2]float64
	for _, sp := range a.SpawnPoints {
		if sp.Index >= 0 && sp.Index < len(out) {
			out[sp.Index] = sp.X / float64(a.MapWidth)
		}
	}
	return out
}

// GroundRatio returns the ground line as a fraction of the map height.
func (a *ArenaLayout) GroundRatio() float64 {
	return a.GroundY / float64(a.MapHeight)
}
