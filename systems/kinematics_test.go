package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/ninja-platformer/components"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func body(x, y float64) *components.PhysicsData {
	return &components.PhysicsData{
		Pos:             math.Vec2{X: x, Y: y},
		Width:           8,
		Height:          15,
		SpeedMultiplier: 1,
		Gravity:         0.1,
	}
}

func TestLandsOnTileBelow(t *testing.T) {
	ix := tilemap.New(16)
	ix.Place(tilemap.Tile{Type: "grass", Pos: tilemap.Coord{X: 0, Y: 1}})

	p := body(0, 0)
	p.Vel.Y = 5
	MoveAndCollide(p, ix, math.Vec2{})

	assert.Equal(t, 1.0, p.Pos.Y)
	assert.Equal(t, 16.0, p.Rect().Bottom())
	assert.True(t, p.Collisions.Down)
	assert.False(t, p.Collisions.Up)
	assert.Equal(t, 0.0, p.Vel.Y)
}

func TestStandingStillIsStable(t *testing.T) {
	ix := tilemap.New(16)
	for x := -1; x <= 1; x++ {
		ix.Place(tilemap.Tile{Type: "stone", Pos: tilemap.Coord{X: x, Y: 1}})
	}

	p := body(4, 1)
	for i := 0; i < 500; i++ {
		MoveAndCollide(p, ix, math.Vec2{})
		require.Equal(t, 4.0, p.Pos.X, "tick %d", i)
		require.Equal(t, 1.0, p.Pos.Y, "tick %d", i)
		require.LessOrEqual(t, p.Vel.Y, 0.1)
	}
}

func TestWallStopsHorizontalMove(t *testing.T) {
	ix := tilemap.New(16)
	ix.Place(tilemap.Tile{Type: "grass", Pos: tilemap.Coord{X: 1, Y: 0}})

	p := body(7.5, 0)
	p.Gravity = 0
	MoveAndCollide(p, ix, math.Vec2{X: 1})
	assert.Equal(t, 8.0, p.Pos.X)
	assert.True(t, p.Collisions.Right)
	assert.False(t, p.Flip)

	p = body(33, 0)
	p.Gravity = 0
	p.Vel.X = -3
	MoveAndCollide(p, ix, math.Vec2{})
	assert.Equal(t, 32.0, p.Pos.X)
	assert.True(t, p.Collisions.Left)
	assert.False(t, p.Flip, "facing follows requested movement only")
}

func TestCeilingZeroesVelocity(t *testing.T) {
	ix := tilemap.New(16)
	ix.Place(tilemap.Tile{Type: "grass", Pos: tilemap.Coord{X: 0, Y: 0}})

	p := body(2, 18)
	p.Vel.Y = -3
	MoveAndCollide(p, ix, math.Vec2{})
	assert.Equal(t, 16.0, p.Pos.Y)
	assert.True(t, p.Collisions.Up)
	assert.Equal(t, 0.0, p.Vel.Y)
}

func TestFacingFollowsRequestedMovement(t *testing.T) {
	ix := tilemap.New(16)
	p := body(0, 0)

	MoveAndCollide(p, ix, math.Vec2{X: -1})
	assert.True(t, p.Flip)
	MoveAndCollide(p, ix, math.Vec2{})
	assert.True(t, p.Flip)
	MoveAndCollide(p, ix, math.Vec2{X: 1})
	assert.False(t, p.Flip)
	assert.Equal(t, math.Vec2{X: 1}, p.LastMovement)
}

func TestSpeedMultiplierScalesRequestedMovementOnly(t *testing.T) {
	ix := tilemap.New(16)
	p := body(0, 0)
	p.SpeedMultiplier = 1.5
	p.Vel.X = 2

	MoveAndCollide(p, ix, math.Vec2{X: 1})
	assert.InDelta(t, 3.5, p.Pos.X, 1e-9)
}

func TestGravityClampsToMaxFall(t *testing.T) {
	ix := tilemap.New(16)
	p := body(0, -10000)
	for i := 0; i < 200; i++ {
		MoveAndCollide(p, ix, math.Vec2{})
	}
	assert.Equal(t, 5.0, p.Vel.Y)
}

func TestResolvedBodyNeverOverlapsSolids(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		ix := tilemap.New(16)
		for i := 0; i < 40; i++ {
			ix.Place(tilemap.Tile{Type: "grass", Pos: tilemap.Coord{X: rng.Intn(10), Y: rng.Intn(10)}})
		}

		for trial := 0; trial < 40; trial++ {
			p := body(rng.Float64()*140, rng.Float64()*140)
			if overlapsAny(p.Rect(), ix.SolidRectsNear(p.Pos.X, p.Pos.Y)) {
				continue
			}
			p.Vel = math.Vec2{X: rng.Float64()*10 - 5, Y: rng.Float64()*10 - 5}
			movement := math.Vec2{X: float64(rng.Intn(3) - 1)}

			MoveAndCollide(p, ix, movement)
			require.False(t, overlapsAny(p.Rect(), ix.SolidRectsNear(p.Pos.X, p.Pos.Y)),
				"round %d trial %d at %v", round, trial, p.Pos)
		}
	}
}

func overlapsAny(r gamemath.Rect, solids []gamemath.Rect) bool {
	for _, s := range solids {
		if r.Overlaps(s) {
			return true
		}
	}
	return false
}
