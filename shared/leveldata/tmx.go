package leveldata

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/lafriks/go-tiled"
)

// OffGridGroup is the object group whose objects become offgrid tiles.
const OffGridGroup = "offgrid"

// LoadTMX converts a Tiled map into a level. Every tile layer contributes
// on-grid tiles; the tile type is the tileset tile's "type" property, falling
// back to the layer name, and the variant is its "variant" property, falling
// back to the tile ID. Later layers win when two layers fill the same cell.
func LoadTMX(fsys fs.FS, tmxPath string) (*File, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	f := &File{
		Tilemap:  map[string]TileRecord{},
		TileSize: levelMap.TileWidth,
	}

	for _, layer := range levelMap.Layers {
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				tileType := layer.Name
				variant := int(tile.ID)
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if t := tilesetTile.Properties.GetString("type"); t != "" {
						tileType = t
					}
					if v, ok := intProperty(tilesetTile.Properties, "variant"); ok {
						variant = v
					}
				}

				f.Tilemap[GridKey(x, y)] = TileRecord{Type: tileType, Variant: variant, Pos: Point{x, y}}
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != OffGridGroup {
			continue
		}
		for _, o := range og.Objects {
			tileType := o.Properties.GetString("type")
			if tileType == "" {
				tileType = o.Name
			}
			variant, _ := intProperty(o.Properties, "variant")
			f.OffGrid = append(f.OffGrid, TileRecord{
				Type:    tileType,
				Variant: variant,
				Pos:     Point{int(o.X), int(o.Y)},
			})
		}
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return f, nil
}

func intProperty(props tiled.Properties, name string) (int, bool) {
	s := props.GetString(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
