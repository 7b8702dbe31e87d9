package components

import (
	"math"

	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's hurtbox in the combat broad phase.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the broad phase grid. resolv coordinates are world
// coordinates shifted by Bounds.X/Y so the grid starts at zero.
type SpaceData struct {
	Space  *resolv.Space
	Bounds gamemath.Rect
}

// gridRect shifts r into grid space and widens it to whole pixels with one
// pixel to spare. resolv places an object in cells from X to X+W-1, which
// misses cells a fractional box only just reaches.
func (s *SpaceData) gridRect(r gamemath.Rect) gamemath.Rect {
	x, y := math.Floor(r.X-s.Bounds.X), math.Floor(r.Y-s.Bounds.Y)
	return gamemath.Rect{
		X: x,
		Y: y,
		W: math.Ceil(r.Right()-s.Bounds.X) - x + 1,
		H: math.Ceil(r.Bottom()-s.Bounds.Y) - y + 1,
	}
}

// Add creates a hurtbox for r tagged with tag and puts it in the grid.
func (s *SpaceData) Add(r gamemath.Rect, tag string, data interface{}) *resolv.Object {
	g := s.gridRect(r)
	obj := resolv.NewObject(g.X, g.Y, g.W, g.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, g.W, g.H))
	obj.Data = data
	s.Space.Add(obj)
	return obj
}

// Move places obj over r.
func (s *SpaceData) Move(obj *resolv.Object, r gamemath.Rect) {
	g := s.gridRect(r)
	obj.X, obj.Y = g.X, g.Y
	if obj.W != g.W || obj.H != g.H {
		obj.W, obj.H = g.W, g.H
		obj.SetShape(resolv.NewRectangle(0, 0, g.W, g.H))
	}
	obj.Update()
}

func (s *SpaceData) Remove(obj *resolv.Object) {
	s.Space.Remove(obj)
}

// Covers reports whether r lies inside the grid.
func (s *SpaceData) Covers(r gamemath.Rect) bool {
	return r.Inside(s.Bounds)
}

var Space = donburi.NewComponentType[SpaceData]()
