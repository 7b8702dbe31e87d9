package systems

import (
	"testing"

	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestPlayerSettlesOnSpawnFloor(t *testing.T) {
	world, _ := newTestSim(t, guardedLevel(), 1)
	tick(world, 30)

	ph := physicsOf(mustPlayer(t, world))
	assert.Equal(t, 32.0, ph.Pos.X)
	assert.Equal(t, 65.0, ph.Pos.Y)
	assert.True(t, ph.Collisions.Down || ph.Vel.Y > 0)
	assert.Equal(t, cfg.ActionIdle, components.Animation.Get(mustPlayer(t, world)).Action)
}

func TestDashTimerPhases(t *testing.T) {
	world, rec := newTestSim(t, guardedLevel(), 1)
	tick(world, 30)
	entry := mustPlayer(t, world)
	pl := components.Player.Get(entry)
	ph := physicsOf(entry)
	rec.Reset()

	require.True(t, RequestDash(world))
	assert.False(t, RequestDash(world), "a running dash cannot restart")
	assert.Equal(t, 60, pl.Dashing)

	tick(world, 1)
	assert.Equal(t, 59, pl.Dashing)
	assert.InDelta(t, 7.9, ph.Vel.X, 1e-9)
	assert.True(t, pl.Hidden())

	tick(world, 8)
	assert.Equal(t, 51, pl.Dashing)
	assert.InDelta(t, 0.7, ph.Vel.X, 1e-9, "last attack tick brakes to a tenth")
	assert.True(t, pl.Hidden())

	tick(world, 1)
	assert.Equal(t, 50, pl.Dashing)
	assert.True(t, pl.DashingHard())
	assert.False(t, pl.Hidden())

	tick(world, 1)
	assert.Equal(t, 49, pl.Dashing)
	assert.False(t, pl.DashingHard())
	assert.False(t, pl.Hidden())

	dash := 0
	for _, p := range rec.Particles {
		if p.Kind == cfg.ParticleDash {
			dash++
		}
	}
	// two bursts of 20 plus one trail particle per tick above 50
	assert.Equal(t, 2*20+9, dash)
	assert.Equal(t, 1, rec.CountSound(cfg.SoundDash))
	assert.Greater(t, ph.Pos.X, 32.0)
}

func TestDashFollowsFacing(t *testing.T) {
	world, _ := newTestSim(t, guardedLevel(), 1)
	tick(world, 30)
	entry := mustPlayer(t, world)
	physicsOf(entry).Flip = true

	require.True(t, RequestDash(world))
	assert.Equal(t, -60, components.Player.Get(entry).Dashing)
	tick(world, 1)
	assert.InDelta(t, -7.9, physicsOf(entry).Vel.X, 1e-9)
}

func TestJumpPool(t *testing.T) {
	world, rec := newTestSim(t, guardedLevel(), 1)
	tick(world, 30)
	entry := mustPlayer(t, world)
	pl := components.Player.Get(entry)
	ph := physicsOf(entry)
	require.Equal(t, 2, pl.Jumps)

	require.True(t, RequestJump(world))
	assert.Equal(t, 1, pl.Jumps)
	assert.Equal(t, -3.0, ph.Vel.Y)
	assert.Equal(t, 5, pl.AirTime)

	require.True(t, RequestJump(world))
	assert.Equal(t, 0, pl.Jumps)
	assert.False(t, RequestJump(world))
	assert.Equal(t, 2, rec.CountSound(cfg.SoundJump))

	tick(world, 3)
	assert.Equal(t, cfg.ActionJump, components.Animation.Get(entry).Action)

	tick(world, 150)
	assert.Equal(t, 2, pl.Jumps, "landing refills the pool")
	assert.LessOrEqual(t, pl.AirTime, 1)
}

func TestWallJumpLeavesOneCharge(t *testing.T) {
	world, rec := newTestSim(t, guardedLevel(), 1)
	tick(world, 30)
	entry := mustPlayer(t, world)
	pl := components.Player.Get(entry)
	ph := physicsOf(entry)

	pl.WallSlide = true
	pl.Jumps = 0
	ph.Flip = true
	ph.LastMovement = math.Vec2{X: -1}

	require.True(t, RequestJump(world))
	assert.Equal(t, 2.75, ph.Vel.X)
	assert.Equal(t, -2.75, ph.Vel.Y)
	assert.Equal(t, 1, pl.Jumps)
	assert.Equal(t, 5, pl.AirTime)
	assert.Equal(t, 1, rec.CountSound(cfg.SoundJump))

	pl.Jumps = 2
	require.True(t, RequestJump(world))
	assert.Equal(t, 1, pl.Jumps, "a wall jump sets the pool instead of spending it")
}

func TestWallJumpNeedsPushIntoWall(t *testing.T) {
	world, _ := newTestSim(t, guardedLevel(), 1)
	tick(world, 30)
	entry := mustPlayer(t, world)
	pl := components.Player.Get(entry)
	ph := physicsOf(entry)

	pl.WallSlide = true
	ph.Flip = false
	ph.LastMovement = math.Vec2{X: -1}
	ph.Vel = math.Vec2{}

	assert.False(t, RequestJump(world))
	assert.Equal(t, math.Vec2{}, ph.Vel)
	assert.Equal(t, 2, pl.Jumps)
}

func TestWallSlideAgainstWall(t *testing.T) {
	level := guardedLevel()
	for y := 0; y < 5; y++ {
		level.Place(tilemap.Tile{Type: "stone", Pos: tilemap.Coord{X: 6, Y: y}})
	}
	world, _ := newTestSim(t, level, 1)
	tick(world, 30)
	entry := mustPlayer(t, world)
	pl := components.Player.Get(entry)
	ph := physicsOf(entry)

	SetMovementIntent(world, MoveRight, true)
	tick(world, 20)
	require.True(t, RequestJump(world))

	for i := 0; i < 40 && !pl.WallSlide; i++ {
		tick(world, 1)
	}
	require.True(t, pl.WallSlide)
	assert.Equal(t, 88.0, ph.Pos.X)
	assert.False(t, ph.Flip)
	assert.LessOrEqual(t, ph.Vel.Y, 0.5)
	assert.Equal(t, cfg.ActionWallSlide, components.Animation.Get(entry).Action)

	require.True(t, RequestJump(world))
	assert.Equal(t, -2.75, ph.Vel.X)
	assert.Equal(t, 1, pl.Jumps)
}

func TestPlayerActionPriority(t *testing.T) {
	tests := []struct {
		name      string
		wallSlide bool
		airTime   int
		move      float64
		want      cfg.ActionID
	}{
		{"wall slide wins", true, 30, 1, cfg.ActionWallSlide},
		{"airborne", false, 5, 1, cfg.ActionJump},
		{"grace period still runs", false, 4, -1, cfg.ActionRun},
		{"idle", false, 0, 0, cfg.ActionIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl := &components.PlayerData{WallSlide: tt.wallSlide, AirTime: tt.airTime}
			assert.Equal(t, tt.want, playerAction(pl, math.Vec2{X: tt.move}))
		})
	}
}

func TestMovementIntent(t *testing.T) {
	world, _ := newTestSim(t, guardedLevel(), 1)
	tick(world, 30)
	entry := mustPlayer(t, world)
	ph := physicsOf(entry)

	SetMovementIntent(world, MoveLeft, true)
	tick(world, 10)
	assert.InDelta(t, 32.0-15, ph.Pos.X, 1e-9)
	assert.True(t, ph.Flip)
	assert.Equal(t, cfg.ActionRun, components.Animation.Get(entry).Action)

	SetMovementIntent(world, MoveRight, true)
	tick(world, 1)
	assert.Equal(t, cfg.ActionIdle, components.Animation.Get(entry).Action)
	assert.True(t, ph.Flip, "cancelled input keeps facing")

	SetMovementIntent(world, MoveLeft, false)
	tick(world, 1)
	assert.False(t, ph.Flip)
}

func TestFastFall(t *testing.T) {
	world, _ := newTestSim(t, guardedLevel(), 1)
	entry := mustPlayer(t, world)

	SetFastFall(world, true)
	tick(world, 1)
	assert.Equal(t, 0.3, physicsOf(entry).Gravity)

	SetFastFall(world, false)
	tick(world, 1)
	assert.Equal(t, 0.1, physicsOf(entry).Gravity)
}

func TestFallingOutStartsDeath(t *testing.T) {
	world, rec := newTestSim(t, guardedLevel(), 1)
	tick(world, 30)
	entry := mustPlayer(t, world)
	ph := physicsOf(entry)
	level := GetLevel(world)

	ph.Pos.Y = -500
	components.Player.Get(entry).AirTime = 150
	UpdatePlayer(world)

	assert.Equal(t, 1, level.DeadTimer)
	assert.Contains(t, rec.Shakes, 16.0)

	frozen := ph.Pos
	UpdatePlayer(world)
	assert.Equal(t, frozen, ph.Pos, "a dying player does not move")
	assert.False(t, RequestJump(world))
	assert.False(t, RequestDash(world))
}
