package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func grid(ix *Index, tileType string, cells ...Coord) {
	for _, c := range cells {
		ix.Place(Tile{Type: tileType, Variant: 0, Pos: c})
	}
}

func variant(t *testing.T, ix *Index, c Coord) int {
	t.Helper()
	tile, ok := ix.Get(c)
	if !ok {
		t.Fatalf("no tile at %v", c)
	}
	return tile.Variant
}

func TestAutotileThreeByThreeBlock(t *testing.T) {
	ix := New(16)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			grid(ix, "grass", Coord{x, y})
		}
	}
	ix.Autotile()

	want := map[Coord]int{
		{0, 0}: 0, {1, 0}: 1, {2, 0}: 2,
		{0, 1}: 7, {1, 1}: 8, {2, 1}: 3,
		{0, 2}: 6, {1, 2}: 5, {2, 2}: 4,
	}
	for c, v := range want {
		assert.Equal(t, v, variant(t, ix, c), "cell %v", c)
	}
}

func TestAutotileIgnoresOtherTypesAndUnmappedSets(t *testing.T) {
	ix := New(16)
	ix.Place(Tile{Type: "grass", Variant: 4, Pos: Coord{0, 0}})
	ix.Place(Tile{Type: "stone", Variant: 6, Pos: Coord{1, 0}})
	ix.Place(Tile{Type: "decor", Variant: 3, Pos: Coord{0, 1}})
	grid(ix, "decor", Coord{1, 1})
	ix.Autotile()

	assert.Equal(t, 4, variant(t, ix, Coord{0, 0}), "no same-type neighbours")
	assert.Equal(t, 6, variant(t, ix, Coord{1, 0}))
	assert.Equal(t, 3, variant(t, ix, Coord{0, 1}), "decor is not autotiled")
}

func TestAutotileHorizontalStripKeepsEnds(t *testing.T) {
	ix := New(16)
	grid(ix, "stone", Coord{0, 0}, Coord{1, 0}, Coord{2, 0})
	ix.Place(Tile{Type: "stone", Variant: 2, Pos: Coord{0, 0}})
	ix.Autotile()

	// left/right only is not a mapped set; the single-sided ends are not either
	assert.Equal(t, 2, variant(t, ix, Coord{0, 0}))
	assert.Equal(t, 0, variant(t, ix, Coord{1, 0}))
}

func TestAutotileIsIdempotent(t *testing.T) {
	ix := New(16)
	grid(ix, "grass", Coord{0, 0}, Coord{1, 0}, Coord{0, 1}, Coord{1, 1}, Coord{2, 1}, Coord{5, 5})
	grid(ix, "stone", Coord{2, 0}, Coord{3, 0}, Coord{3, 1})
	ix.Autotile()
	once := ix.Clone()
	ix.Autotile()

	for _, c := range ix.Cells() {
		a, _ := once.Get(c)
		b, _ := ix.Get(c)
		assert.Equal(t, a, b)
	}
}
