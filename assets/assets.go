package assets

import (
	"embed"

	"github.com/automoto/sparring/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// ArenaPath is the embedded TMX file describing the duel arena.
const ArenaPath = "levels/arena.tmx"

// LoadArena parses the embedded arena layout.
func LoadArena() (*leveldata.ArenaLayout, error) {
	return leveldata.LoadArenaLayout(assetFS, ArenaPath)
}
