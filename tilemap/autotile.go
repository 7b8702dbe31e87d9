package tilemap

const (
	sideRight = 1 << iota
	sideLeft
	sideUp
	sideDown
)

var autotileSides = [4]struct {
	off  Coord
	side int
}{
	{Coord{1, 0}, sideRight},
	{Coord{-1, 0}, sideLeft},
	{Coord{0, -1}, sideUp},
	{Coord{0, 1}, sideDown},
}

// autotileVariants maps the set of same-type orthogonal neighbours to the
// sprite variant. Sets missing here leave the variant alone.
var autotileVariants = map[int]int{
	sideRight | sideDown:                     0,
	sideRight | sideDown | sideLeft:          1,
	sideLeft | sideDown:                      2,
	sideLeft | sideDown | sideUp:             3,
	sideLeft | sideUp:                        4,
	sideRight | sideUp | sideLeft:            5,
	sideRight | sideUp:                       6,
	sideRight | sideDown | sideUp:            7,
	sideRight | sideLeft | sideUp | sideDown: 8,
}

// Autotile rewrites the variant of every autotile-type tile from its
// orthogonal same-type neighbours. Only types are read, so the pass is
// order independent and running it twice changes nothing.
func (ix *Index) Autotile() {
	for c, t := range ix.grid {
		if !ix.rules.Autotile[t.Type] {
			continue
		}
		mask := 0
		for _, s := range autotileSides {
			n, ok := ix.grid[Coord{c.X + s.off.X, c.Y + s.off.Y}]
			if ok && n.Type == t.Type {
				mask |= s.side
			}
		}
		if v, ok := autotileVariants[mask]; ok {
			t.Variant = v
			ix.grid[c] = t
		}
	}
}
