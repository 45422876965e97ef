package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LoadArena parses a TMX file and returns the arena geometry (wall rects,
// patrol blocks and the player spawn). It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		MapWidth:  arenaMap.Width * arenaMap.TileWidth,
		MapHeight: arenaMap.Height * arenaMap.TileHeight,
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case "walls":
			for _, o := range og.Objects {
				data.Walls = append(data.Walls, WallRect{
					X: o.X,
					Y: o.Y,
					W: o.Width,
					H: o.Height,
				})
			}
		case "patrols":
			for _, o := range og.Objects {
				data.Patrols = append(data.Patrols, PatrolRect{
					X:     o.X,
					Y:     o.Y,
					W:     o.Width,
					H:     o.Height,
					Range: float64(o.Properties.GetInt("range")),
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				if data.HasSpawn {
					continue
				}
				data.Spawn = SpawnPoint{
					X:      o.X,
					Y:      o.Y,
					Facing: o.Properties.GetInt("facing"),
				}
				data.HasSpawn = true
			}
		}
	}

	// A map without a spawn group still loads; callers fall back to the
	// arena centre facing 0.
	if !data.HasSpawn {
		data.Spawn = SpawnPoint{
			X: float64(data.MapWidth) / 2,
			Y: float64(data.MapHeight) / 2,
		}
	}

	return data, nil
}
