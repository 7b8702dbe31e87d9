package components

import (
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Collisions records which sides touched solid tiles during the last step.
type Collisions struct {
	Up, Down, Left, Right bool
}

type PhysicsData struct {
	Pos             math.Vec2
	Width, Height   float64
	Vel             math.Vec2
	SpeedMultiplier float64
	Gravity         float64 // added to Vel.Y every tick
	Collisions      Collisions
	Flip            bool // facing left
	LastMovement    math.Vec2
}

// Rect is the body's box at its current position.
func (p *PhysicsData) Rect() gamemath.Rect {
	return gamemath.Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

// Center is the middle of the body's box.
func (p *PhysicsData) Center() math.Vec2 {
	x, y := p.Rect().Center()
	return math.Vec2{X: x, Y: y}
}

var Physics = donburi.NewComponentType[PhysicsData]()
