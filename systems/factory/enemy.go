package factory

import (
	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns a patrolling gunner with its hurtbox.
func CreateEnemy(ecs *ecs.ECS, provider assets.Provider, space *components.SpaceData, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	setupEnemy(enemy, provider, space, cfg.KindEnemy, x, y, cfg.Enemy.Width, cfg.Enemy.Height, cfg.Enemy.Health)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Damage:          cfg.Enemy.Damage,
		ProjectileSpeed: cfg.Enemy.ProjectileSpeed,
		Patrols:         true,
	})
	return enemy
}

// CreateBoss spawns the stationary heavy. It shares the enemy roster and
// takes dash strikes but never patrols or shoots.
func CreateBoss(ecs *ecs.ECS, provider assets.Provider, space *components.SpaceData, x, y float64) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)
	setupEnemy(boss, provider, space, cfg.KindBoss, x, y, cfg.Boss.Width, cfg.Boss.Height, cfg.Boss.Health)

	components.Enemy.SetValue(boss, components.EnemyData{
		Damage: cfg.Boss.Damage,
	})
	return boss
}

func setupEnemy(e *donburi.Entry, provider assets.Provider, space *components.SpaceData, kind string, x, y, w, h float64, hp int) {
	components.Physics.SetValue(e, components.PhysicsData{
		Pos:             math.Vec2{X: x, Y: y},
		Width:           w,
		Height:          h,
		SpeedMultiplier: 1,
		Gravity:         cfg.Physics.Gravity,
	})
	components.Health.SetValue(e, components.HealthData{Current: hp, Max: hp})

	anim := components.AnimationData{Kind: kind}
	anim.SetAction(provider, cfg.ActionIdle)
	components.Animation.SetValue(e, anim)

	if space != nil {
		obj := space.Add(components.Physics.Get(e).Rect(), tags.ResolvEnemy, e.Entity())
		components.Object.SetValue(e, components.ObjectData{Object: obj})
	}
}
