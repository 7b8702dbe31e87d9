package systems

import (
	"math"

	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Direction is a horizontal movement key.
type Direction int

const (
	MoveLeft Direction = iota
	MoveRight
)

func UpdatePlayer(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	sim := GetSimulation(ecs)
	playerEntry, ok := GetPlayer(ecs)
	if !ok || level == nil || sim == nil || level.Tiles == nil {
		return
	}
	// Input and movement stay frozen while dying.
	if level.DeadTimer != 0 {
		return
	}

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	input := components.Input.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)

	physics.Gravity = cfg.Physics.Gravity
	if input.FastFall {
		physics.Gravity = cfg.Physics.FastFallGravity
	}

	movement := dmath.Vec2{X: input.Axis()}
	stepBody(ecs, playerEntry, level.Tiles, movement)

	if !player.WallSlide {
		player.AirTime++
	}

	if player.AirTime > cfg.Player.FallDeathTime && level.DeadTimer == 0 {
		level.DeadTimer++
		sim.Effects.RequestScreenShake(cfg.Combat.ShakeIntensity)
		sim.Log.Debug("player fell out of the level")
	}

	if physics.Collisions.Down {
		player.AirTime = 0
		player.Jumps = cfg.Player.MaxJumps
	}

	player.WallSlide = false
	if (physics.Collisions.Right || physics.Collisions.Left) && player.AirTime > cfg.Player.AirGrace {
		player.WallSlide = true
		physics.Vel.Y = min(physics.Vel.Y, cfg.Player.WallSlideFall)
		physics.Flip = !physics.Collisions.Right
	}

	anim.SetAction(sim.Assets, playerAction(player, movement))

	updateDash(sim, player, physics)

	physics.Vel.X = gamemath.ApplyFriction(physics.Vel.X, cfg.Player.Friction)
}

// playerAction picks the pose from this tick's physical state:
// wall slide, then airborne, then running, then idle.
func playerAction(player *components.PlayerData, movement dmath.Vec2) cfg.ActionID {
	switch {
	case player.WallSlide:
		return cfg.ActionWallSlide
	case player.AirTime > cfg.Player.AirGrace:
		return cfg.ActionJump
	case movement.X != 0:
		return cfg.ActionRun
	}
	return cfg.ActionIdle
}

// updateDash counts the dash timer toward zero. While the timer is above
// the attack threshold the dash overrides horizontal velocity.
func updateDash(sim *components.SimulationData, player *components.PlayerData, physics *components.PhysicsData) {
	r := sim.Rand
	center := physics.Center()

	if d := gamemath.AbsInt(player.Dashing); d == cfg.Player.DashDuration || d == cfg.Player.DashHard {
		for i := 0; i < cfg.Player.DashBurst; i++ {
			angle := r.Float64() * math.Pi * 2
			speed := r.Float64()*0.5 + 0.5
			vx, vy := gamemath.Polar(angle, speed)
			sim.Effects.SpawnParticle(cfg.ParticleDash, center, dmath.Vec2{X: vx, Y: vy}, randInt(r, 0, cfg.Effects.ParticleFrames))
		}
	}

	player.Dashing = gamemath.StepToward(player.Dashing)

	if gamemath.AbsInt(player.Dashing) > cfg.Player.DashHard {
		dir := gamemath.Sign(float64(player.Dashing))
		physics.Vel.X = dir * cfg.Player.DashSpeed
		if gamemath.AbsInt(player.Dashing) == cfg.Player.DashHard+1 {
			physics.Vel.X *= cfg.Player.DashBrake
		}
		trail := dmath.Vec2{X: dir * r.Float64() * cfg.Player.DashTrailSpeed}
		sim.Effects.SpawnParticle(cfg.ParticleDash, center, trail, randInt(r, 0, cfg.Effects.ParticleFrames))
	}
}

func playerInput(ecs *ecs.ECS) (*donburi.Entry, *components.InputData, bool) {
	playerEntry, ok := GetPlayer(ecs)
	if !ok {
		return nil, nil, false
	}
	return playerEntry, components.Input.Get(playerEntry), true
}

// SetMovementIntent holds or releases a horizontal movement key.
func SetMovementIntent(ecs *ecs.ECS, dir Direction, active bool) {
	_, input, ok := playerInput(ecs)
	if !ok {
		return
	}
	switch dir {
	case MoveLeft:
		input.Left = active
	case MoveRight:
		input.Right = active
	}
}

// SetFastFall switches the player to the heavier fall gravity.
func SetFastFall(ecs *ecs.ECS, active bool) {
	if _, input, ok := playerInput(ecs); ok {
		input.FastFall = active
	}
}

// RequestJump jumps or wall jumps. A wall jump needs the player to face and
// push into the wall, and leaves exactly one jump in the pool. It reports
// whether a jump happened.
func RequestJump(ecs *ecs.ECS) bool {
	playerEntry, ok := GetPlayer(ecs)
	level := GetLevel(ecs)
	sim := GetSimulation(ecs)
	if !ok || sim == nil || (level != nil && level.DeadTimer != 0) {
		return false
	}
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	if player.WallSlide {
		var away float64
		switch {
		case physics.Flip && physics.LastMovement.X < 0:
			away = 1
		case !physics.Flip && physics.LastMovement.X > 0:
			away = -1
		default:
			return false
		}
		physics.Vel.X = away * cfg.Player.WallJumpSpeed
		physics.Vel.Y = -cfg.Player.WallJumpSpeed
		player.AirTime = cfg.Player.AirGrace + 1
		player.Jumps = 1
		sim.Effects.PlaySound(cfg.SoundJump)
		return true
	}

	if player.Jumps <= 0 {
		return false
	}
	physics.Vel.Y = -cfg.Player.JumpSpeed
	player.Jumps--
	player.AirTime = cfg.Player.AirGrace + 1
	sim.Effects.PlaySound(cfg.SoundJump)
	return true
}

// RequestDash starts a dash in the facing direction unless one is running.
func RequestDash(ecs *ecs.ECS) bool {
	playerEntry, ok := GetPlayer(ecs)
	level := GetLevel(ecs)
	sim := GetSimulation(ecs)
	if !ok || sim == nil || (level != nil && level.DeadTimer != 0) {
		return false
	}
	player := components.Player.Get(playerEntry)
	if player.Dashing != 0 {
		return false
	}
	sim.Effects.PlaySound(cfg.SoundDash)
	player.Dashing = cfg.Player.DashDuration
	if components.Physics.Get(playerEntry).Flip {
		player.Dashing = -cfg.Player.DashDuration
	}
	return true
}
