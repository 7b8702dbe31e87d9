package systems

import (
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SolidQuery is the part of the tile index the collision step reads.
type SolidQuery interface {
	SolidRectsNear(x, y float64) []gamemath.Rect
}

// MoveAndCollide advances a body by one tick. Horizontal motion is applied
// and resolved first, then vertical, each against the solid tiles around
// the body's position after that axis moved. Gravity is applied after
// resolution, and a vertical contact zeroes the vertical velocity.
func MoveAndCollide(p *components.PhysicsData, tiles SolidQuery, movement math.Vec2) {
	p.Collisions = components.Collisions{}

	dx := movement.X*p.SpeedMultiplier + p.Vel.X
	dy := movement.Y + p.Vel.Y

	p.Pos.X += dx
	r := p.Rect()
	for _, tile := range tiles.SolidRectsNear(p.Pos.X, p.Pos.Y) {
		if !r.Overlaps(tile) {
			continue
		}
		if dx > 0 {
			r.X = tile.Left() - r.W
			p.Collisions.Right = true
		}
		if dx < 0 {
			r.X = tile.Right()
			p.Collisions.Left = true
		}
		p.Pos.X = r.X
	}

	p.Pos.Y += dy
	r = p.Rect()
	for _, tile := range tiles.SolidRectsNear(p.Pos.X, p.Pos.Y) {
		if !r.Overlaps(tile) {
			continue
		}
		if dy > 0 {
			r.Y = tile.Top() - r.H
			p.Collisions.Down = true
		}
		if dy < 0 {
			r.Y = tile.Bottom()
			p.Collisions.Up = true
		}
		p.Pos.Y = r.Y
	}

	if movement.X > 0 {
		p.Flip = false
	}
	if movement.X < 0 {
		p.Flip = true
	}
	p.LastMovement = movement

	p.Vel.Y = min(cfg.Physics.MaxFallSpeed, p.Vel.Y+p.Gravity)
	if p.Collisions.Down || p.Collisions.Up {
		p.Vel.Y = 0
	}
}

// stepBody runs the shared per-tick body update: collision, animation and
// the hurtbox sync.
func stepBody(ecs *ecs.ECS, e *donburi.Entry, tiles SolidQuery, movement math.Vec2) {
	p := components.Physics.Get(e)
	MoveAndCollide(p, tiles, movement)

	if e.HasComponent(components.Animation) {
		if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	}
	syncHurtbox(ecs, e)
}
