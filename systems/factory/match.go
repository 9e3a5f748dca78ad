package factory

import (
	"github.com/automoto/sparring/archetypes"
	"github.com/automoto/sparring/components"
	cfg "github.com/automoto/sparring/config"
	"github.com/automoto/sparring/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch creates the match singleton for a viewport of the given size
// and spawns both fighters. spawnFraction and groundRatio place the fighters
// relative to the viewport.
func CreateMatch(ecs *ecs.ECS, width, height float64, spawnFraction [2]float64, groundRatio float64) *donburi.Entry {
	matchEntry := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(matchEntry, components.MatchData{
		State:         cfg.MatchStatePlaying,
		WinnerIndex:   components.NoWinner,
		SpawnFraction: spawnFraction,
		GroundRatio:   groundRatio,
	})

	match := components.Match.Get(matchEntry)
	SetArenaBounds(match, width, height)
	SpawnFighters(ecs, match)

	return matchEntry
}

// SetArenaBounds recomputes the ground line and horizontal bounds for a
// viewport of the given size.
func SetArenaBounds(match *components.MatchData, width, height float64) {
	match.ScreenWidth = width
	match.ScreenHeight = height
	match.GroundY = height * match.GroundRatio
	match.MinX = cfg.Arena.Padding
	match.MaxX = width - cfg.Arena.Padding
}

// SpawnFighters creates both fighters at their spawn points with full health.
func SpawnFighters(ecs *ecs.ECS, match *components.MatchData) {
	for i := range match.Fighters {
		x := gamemath.ClampX(match.ScreenWidth*match.SpawnFraction[i], match.MinX, match.MaxX)
		match.Fighters[i] = CreateFighter(ecs, i, x, match.GroundY)
	}
}
