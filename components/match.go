package components

import (
	cfg "github.com/automoto/sparring/config"
	"github.com/yohamta/donburi"
)

// NoWinner is the WinnerIndex of a match still in progress.
const NoWinner = -1

// MatchData pairs the two fighters with the arena they fight in.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State       cfg.MatchStateID
	Fighters    [2]*donburi.Entry
	WinnerIndex int // PlayerIndex of the winner, NoWinner while playing
	Tick        int // Simulated ticks since the last reset

	// Arena geometry, recomputed on resize
	ScreenWidth  float64
	ScreenHeight float64
	GroundY      float64
	MinX         float64
	MaxX         float64

	// Spawn positions as fractions of the viewport
	SpawnFraction [2]float64
	GroundRatio   float64

	ResetRequested bool
}

// Opponent returns the fighter facing playerIndex.
func (m *MatchData) Opponent(playerIndex int) *donburi.Entry {
	return m.Fighters[1-playerIndex]
}

var Match = donburi.NewComponentType[MatchData]()
