package tilemap

import "slices"

// Extract returns copies of every tile matching one of kinds: offgrid tiles
// first in placement order, then on-grid tiles in row-major order with Pos
// scaled to pixels. Matches are removed from the index unless keep is set.
func (ix *Index) Extract(kinds []Kind, keep bool) []Tile {
	match := func(t Tile) bool {
		return slices.Contains(kinds, Kind{Type: t.Type, Variant: t.Variant})
	}

	var out []Tile
	remaining := ix.offgrid[:0:0]
	for _, t := range ix.offgrid {
		if match(t) {
			out = append(out, t)
			if keep {
				remaining = append(remaining, t)
			}
			continue
		}
		remaining = append(remaining, t)
	}
	ix.offgrid = remaining

	for _, c := range ix.Cells() {
		t := ix.grid[c]
		if !match(t) {
			continue
		}
		scaled := t
		scaled.Pos = Coord{X: t.Pos.X * ix.tileSize, Y: t.Pos.Y * ix.tileSize}
		out = append(out, scaled)
		if !keep {
			delete(ix.grid, c)
		}
	}
	return out
}
