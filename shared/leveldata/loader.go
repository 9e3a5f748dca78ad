package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// ErrIncompleteArena is returned when a TMX file lacks the objects a duel needs.
var ErrIncompleteArena = errors.New("incomplete arena")

// LoadArenaLayout parses a TMX file and returns the fighter spawn points and
// ground line. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArenaLayout(fsys fs.FS, tmxPath string) (*ArenaLayout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaLayout{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
		GroundY:   -1,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "FighterSpawn":
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "Ground":
			for _, o := range og.Objects {
				if o.Name == "ground" {
					data.GroundY = o.Y
				}
			}
		}
	}

	// Sort spawns by index for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].Index < data.SpawnPoints[j].Index
	})

	if err := data.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return data, nil
}

func (a *ArenaLayout) validate() error {
	if a.MapWidth <= 0 || a.MapHeight <= 0 {
		return fmt.Errorf("%w: map has no area", ErrIncompleteArena)
	}
	if len(a.SpawnPoints) != 2 {
		return fmt.Errorf("%w: want 2 fighter spawns, got %d", ErrIncompleteArena, len(a.SpawnPoints))
	}
	for i, sp := range a.SpawnPoints {
		if sp.Index != i {
			return fmt.Errorf("%w: spawn indexes must be 0 and 1", ErrIncompleteArena)
		}
		if sp.X < 0 || sp.X > float64(a.MapWidth) {
			return fmt.Errorf("%w: spawn %d outside the map", ErrIncompleteArena, i)
		}
	}
	if a.GroundY <= 0 || a.GroundY > float64(a.MapHeight) {
		return fmt.Errorf("%w: missing or out-of-range ground line", ErrIncompleteArena)
	}
	return nil
}
