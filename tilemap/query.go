package tilemap

import (
	"math"

	"github.com/automoto/ninja-platformer/shared/gamemath"
)

// neighborOffsets is the 3x3 block around a cell. The order is fixed: the
// collision step resolves overlaps in this order.
var neighborOffsets = [9]Coord{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {0, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// CellOf returns the cell containing the pixel point, flooring toward
// negative infinity.
func (ix *Index) CellOf(x, y float64) Coord {
	ts := float64(ix.tileSize)
	return Coord{X: int(math.Floor(x / ts)), Y: int(math.Floor(y / ts))}
}

// Neighbors returns the on-grid tiles in the 3x3 block around the cell
// containing the point.
func (ix *Index) Neighbors(x, y float64) []Tile {
	c := ix.CellOf(x, y)
	var out []Tile
	for _, off := range neighborOffsets {
		if t, ok := ix.grid[Coord{c.X + off.X, c.Y + off.Y}]; ok {
			out = append(out, t)
		}
	}
	return out
}

// IsSolid reports whether the tile type has physics.
func (ix *Index) IsSolid(tileType string) bool {
	return ix.rules.Solid[tileType]
}

// SolidRectsNear returns the pixel boxes of solid tiles around the point.
func (ix *Index) SolidRectsNear(x, y float64) []gamemath.Rect {
	ts := float64(ix.tileSize)
	var out []gamemath.Rect
	for _, t := range ix.Neighbors(x, y) {
		if !ix.rules.Solid[t.Type] {
			continue
		}
		out = append(out, gamemath.Rect{X: float64(t.Pos.X) * ts, Y: float64(t.Pos.Y) * ts, W: ts, H: ts})
	}
	return out
}

// SolidAt returns the solid tile under the point.
func (ix *Index) SolidAt(x, y float64) (Tile, bool) {
	t, ok := ix.grid[ix.CellOf(x, y)]
	if !ok || !ix.rules.Solid[t.Type] {
		return Tile{}, false
	}
	return t, true
}
