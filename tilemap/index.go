// Package tilemap holds the sparse tile index a level is built from: on-grid
// tiles keyed by cell, free-floating offgrid decor, and the spatial queries
// the physics step asks of them.
package tilemap

import (
	"cmp"
	"slices"

	"github.com/automoto/ninja-platformer/config"
)

// Coord is a grid cell.
type Coord struct {
	X, Y int
}

// Tile is a placed tile. Pos is a grid cell for on-grid tiles and a pixel
// position for offgrid tiles and for tiles returned by Extract.
type Tile struct {
	Type    string
	Variant int
	Pos     Coord
}

// Kind selects tiles by (type, variant).
type Kind struct {
	Type    string
	Variant int
}

// Rules names the tile types with physics and the types the autotiler rewrites.
type Rules struct {
	Solid    map[string]bool
	Autotile map[string]bool
}

// DefaultRules builds Rules from the tile config.
func DefaultRules() Rules {
	r := Rules{Solid: map[string]bool{}, Autotile: map[string]bool{}}
	for _, t := range config.Tiles.PhysicsTypes {
		r.Solid[t] = true
	}
	for _, t := range config.Tiles.AutotileTypes {
		r.Autotile[t] = true
	}
	return r
}

// Index is the sparse tile store. It is not safe for concurrent mutation;
// a running simulation reads a Clone while an editor mutates its own copy.
type Index struct {
	tileSize int
	rules    Rules
	grid     map[Coord]Tile
	offgrid  []Tile
}

func New(tileSize int) *Index {
	return NewWithRules(tileSize, DefaultRules())
}

func NewWithRules(tileSize int, rules Rules) *Index {
	if tileSize <= 0 {
		tileSize = config.Tiles.Size
	}
	return &Index{
		tileSize: tileSize,
		rules:    rules,
		grid:     map[Coord]Tile{},
	}
}

func (ix *Index) TileSize() int { return ix.tileSize }

// Len is the number of on-grid tiles.
func (ix *Index) Len() int { return len(ix.grid) }

// Get returns the on-grid tile at c.
func (ix *Index) Get(c Coord) (Tile, bool) {
	t, ok := ix.grid[c]
	return t, ok
}

// Place stores t at the cell named by its Pos, replacing any tile there.
func (ix *Index) Place(t Tile) {
	ix.grid[t.Pos] = t
}

// Remove deletes the tile at c. Removing an empty cell is a no-op.
func (ix *Index) Remove(c Coord) bool {
	if _, ok := ix.grid[c]; !ok {
		return false
	}
	delete(ix.grid, c)
	return true
}

func (ix *Index) AddOffGrid(t Tile) {
	ix.offgrid = append(ix.offgrid, t)
}

// RemoveOffGridAt deletes the i-th offgrid tile.
func (ix *Index) RemoveOffGridAt(i int) bool {
	if i < 0 || i >= len(ix.offgrid) {
		return false
	}
	ix.offgrid = slices.Delete(ix.offgrid, i, i+1)
	return true
}

// OffGrid returns a copy of the offgrid tiles in placement order.
func (ix *Index) OffGrid() []Tile {
	return slices.Clone(ix.offgrid)
}

// Cells returns the occupied cells in row-major order.
func (ix *Index) Cells() []Coord {
	cells := make([]Coord, 0, len(ix.grid))
	for c := range ix.grid {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, func(a, b Coord) int {
		if n := cmp.Compare(a.Y, b.Y); n != 0 {
			return n
		}
		return cmp.Compare(a.X, b.X)
	})
	return cells
}

// Clone returns an independent copy sharing only the rules.
func (ix *Index) Clone() *Index {
	out := &Index{
		tileSize: ix.tileSize,
		rules:    ix.rules,
		grid:     make(map[Coord]Tile, len(ix.grid)),
		offgrid:  slices.Clone(ix.offgrid),
	}
	for c, t := range ix.grid {
		out.grid[c] = t
	}
	return out
}

// Bounds returns the pixel extent of every tile, on-grid and offgrid.
// ok is false for an empty index.
func (ix *Index) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	ts := float64(ix.tileSize)
	grow := func(x0, y0, x1, y1 float64) {
		if !ok {
			minX, minY, maxX, maxY, ok = x0, y0, x1, y1, true
			return
		}
		minX, minY = min(minX, x0), min(minY, y0)
		maxX, maxY = max(maxX, x1), max(maxY, y1)
	}
	for c := range ix.grid {
		grow(float64(c.X)*ts, float64(c.Y)*ts, float64(c.X+1)*ts, float64(c.Y+1)*ts)
	}
	for _, t := range ix.offgrid {
		grow(float64(t.Pos.X), float64(t.Pos.Y), float64(t.Pos.X)+ts, float64(t.Pos.Y)+ts)
	}
	return minX, minY, maxX, maxY, ok
}
