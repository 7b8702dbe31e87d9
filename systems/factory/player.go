package factory

import (
	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player. Its hurtbox is attached when a level loads.
func CreatePlayer(ecs *ecs.ECS, provider assets.Provider, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Physics.SetValue(player, components.PhysicsData{
		Pos:             math.Vec2{X: x, Y: y},
		Width:           cfg.Player.Width,
		Height:          cfg.Player.Height,
		SpeedMultiplier: cfg.Player.SpeedMultiplier,
		Gravity:         cfg.Physics.Gravity,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Player.SetValue(player, components.PlayerData{
		Jumps:  cfg.Player.MaxJumps,
		Damage: cfg.Player.Damage,
	})

	anim := components.AnimationData{Kind: cfg.KindPlayer}
	anim.SetAction(provider, cfg.ActionIdle)
	components.Animation.SetValue(player, anim)

	return player
}
