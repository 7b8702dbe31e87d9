package systems

import (
	"github.com/automoto/ninja-platformer/components"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hurtspacePadding extends the grid past the level's tiles so projectiles
// and falling bodies stay inside it for a while.
const hurtspacePadding = 1024

// newHurtspace sizes the broad phase grid around the level.
func newHurtspace(tiles *tilemap.Index) components.SpaceData {
	bounds := gamemath.Rect{W: 1, H: 1}
	if minX, minY, maxX, maxY, ok := tiles.Bounds(); ok {
		bounds = gamemath.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
	}
	bounds = bounds.Grow(hurtspacePadding)
	cell := tiles.TileSize() * 2
	return components.SpaceData{
		Space:  resolv.NewSpace(int(bounds.W), int(bounds.H), cell, cell),
		Bounds: bounds,
	}
}

func getSpace(ecs *ecs.ECS) *components.SpaceData {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// syncHurtbox moves an entity's hurtbox over its body.
func syncHurtbox(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	space := getSpace(ecs)
	if obj.Object == nil || space == nil {
		return
	}
	var r gamemath.Rect
	switch {
	case e.HasComponent(components.Physics):
		r = components.Physics.Get(e).Rect()
	case e.HasComponent(components.Projectile):
		pr := components.Projectile.Get(e)
		r = gamemath.Rect{X: pr.Pos.X, Y: pr.Pos.Y, W: 1, H: 1}
	default:
		return
	}
	space.Move(obj.Object, r)
}

// removeHurtbox takes an entity's hurtbox out of the grid.
func removeHurtbox(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if space := getSpace(ecs); space != nil && obj.Object != nil {
		space.Remove(obj.Object)
	}
}

// broadphaseRules out reports whether the grid proves the two boxes apart.
// The grid only answers when both boxes are inside it; otherwise the caller
// falls through to the exact test.
func broadphaseRulesOut(ecs *ecs.ECS, e *donburi.Entry, r, target gamemath.Rect, tag string) bool {
	space := getSpace(ecs)
	if space == nil || !e.HasComponent(components.Object) {
		return false
	}
	obj := components.Object.Get(e)
	if obj.Object == nil || !space.Covers(r) || !space.Covers(target) {
		return false
	}
	check := obj.Check(0, 0, tag)
	return check == nil || len(check.ObjectsByTags(tag)) == 0
}

// bodiesOverlap is the combat overlap test between two entity boxes.
func bodiesOverlap(ecs *ecs.ECS, e *donburi.Entry, r, target gamemath.Rect, tag string) bool {
	if broadphaseRulesOut(ecs, e, r, target, tag) {
		return false
	}
	return r.Overlaps(target)
}

// pointInBody is the combat test between a projectile point and a body.
func pointInBody(ecs *ecs.ECS, e *donburi.Entry, x, y float64, target gamemath.Rect, tag string) bool {
	if broadphaseRulesOut(ecs, e, gamemath.Rect{X: x, Y: y, W: 1, H: 1}, target, tag) {
		return false
	}
	return target.Contains(x, y)
}
