package tilemap

import (
	"fmt"
	"io/fs"

	"github.com/automoto/ninja-platformer/shared/leveldata"
)

// FromFile builds an index from a decoded level.
func FromFile(f *leveldata.File) (*Index, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	ix := New(f.TileSize)
	for _, rec := range f.Tilemap {
		ix.Place(Tile{Type: rec.Type, Variant: rec.Variant, Pos: Coord{rec.Pos[0], rec.Pos[1]}})
	}
	for _, rec := range f.OffGrid {
		ix.AddOffGrid(Tile{Type: rec.Type, Variant: rec.Variant, Pos: Coord{rec.Pos[0], rec.Pos[1]}})
	}
	return ix, nil
}

// File converts the index back into its on-disk form.
func (ix *Index) File() *leveldata.File {
	f := &leveldata.File{
		Tilemap:  make(map[string]leveldata.TileRecord, len(ix.grid)),
		TileSize: ix.tileSize,
		OffGrid:  make([]leveldata.TileRecord, 0, len(ix.offgrid)),
	}
	for c, t := range ix.grid {
		f.Tilemap[leveldata.GridKey(c.X, c.Y)] = leveldata.TileRecord{
			Type: t.Type, Variant: t.Variant, Pos: leveldata.Point{c.X, c.Y},
		}
	}
	for _, t := range ix.offgrid {
		f.OffGrid = append(f.OffGrid, leveldata.TileRecord{
			Type: t.Type, Variant: t.Variant, Pos: leveldata.Point{t.Pos.X, t.Pos.Y},
		})
	}
	return f
}

// Load reads a level file (JSON or TMX) from fsys into a new index.
func Load(fsys fs.FS, path string) (*Index, error) {
	f, err := leveldata.Load(fsys, path)
	if err != nil {
		return nil, err
	}
	ix, err := FromFile(f)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return ix, nil
}

// Save writes the index as a JSON level.
func (ix *Index) Save(path string) error {
	return leveldata.Save(path, ix.File())
}
