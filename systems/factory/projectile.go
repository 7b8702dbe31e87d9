package factory

import (
	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/components"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a bullet travelling horizontally at speed px/tick.
func CreateProjectile(ecs *ecs.ECS, space *components.SpaceData, pos math.Vec2, speed float64, damage int) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Pos:    pos,
		Speed:  speed,
		Damage: damage,
	})

	if space != nil {
		obj := space.Add(gamemath.Rect{X: pos.X, Y: pos.Y, W: 1, H: 1}, tags.ResolvProjectile, projectile.Entity())
		components.Object.SetValue(projectile, components.ObjectData{Object: obj})
	}
	return projectile
}
