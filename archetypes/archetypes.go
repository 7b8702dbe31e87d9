package archetypes

import (
	"github.com/automoto/ninja-platformer/components"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Input,
		components.Physics,
		components.Health,
		components.Animation,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Physics,
		components.Health,
		components.Animation,
		components.Object,
	)
	Boss = newArchetype(
		tags.Enemy,
		tags.Boss,
		components.Enemy,
		components.Physics,
		components.Health,
		components.Animation,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Spark = newArchetype(
		components.Spark,
	)
	Particle = newArchetype(
		components.Particle,
	)
	HealthBar = newArchetype(
		components.HealthBar,
	)
	Level = newArchetype(
		components.Level,
	)
	Simulation = newArchetype(
		components.Simulation,
		components.ScreenShake,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
