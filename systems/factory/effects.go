package factory

import (
	"image/color"

	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/assets/animations"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateSpark(ecs *ecs.ECS, pos math.Vec2, angle, speed float64) *donburi.Entry {
	spark := archetypes.Spark.Spawn(ecs)
	components.Spark.SetValue(spark, components.SparkData{
		Pos:   pos,
		Angle: angle,
		Speed: speed,
	})
	return spark
}

// CreateParticle spawns a particle whose animation starts at startFrame.
// A kind without a sequence gets no animation and dies on its first update.
func CreateParticle(ecs *ecs.ECS, provider assets.Provider, kind string, pos, vel math.Vec2, startFrame int) *donburi.Entry {
	particle := archetypes.Particle.Spawn(ecs)

	var anim *animations.Animation
	if seq, ok := provider.Lookup(cfg.ParticleTag(kind)); ok {
		anim = animations.NewAnimation(seq)
		anim.SetFrame(startFrame)
	}
	components.Particle.SetValue(particle, components.ParticleData{
		Kind:      kind,
		Pos:       pos,
		Vel:       vel,
		Animation: anim,
	})
	return particle
}

// CreateHealthBar spawns the floating bar that follows target.
func CreateHealthBar(ecs *ecs.ECS, target donburi.Entity, clr color.RGBA) *donburi.Entry {
	bar := archetypes.HealthBar.Spawn(ecs)
	components.HealthBar.SetValue(bar, components.HealthBarData{
		Target:       target,
		Color:        clr,
		ShrinkFactor: cfg.HealthBar.ShrinkFactor,
	})
	return bar
}
