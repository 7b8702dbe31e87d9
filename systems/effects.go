package systems

import (
	"math"

	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/automoto/ninja-platformer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// WorldEffects is the in-world effects sink: sparks and particles become
// entities updated by UpdateSparks and UpdateParticles, shake feeds the
// ScreenShake component and sounds queue until the runner drains them.
type WorldEffects struct {
	ecs    *ecs.ECS
	sounds []string
}

func NewWorldEffects(ecs *ecs.ECS) *WorldEffects {
	return &WorldEffects{ecs: ecs}
}

func (w *WorldEffects) SpawnSpark(pos dmath.Vec2, angle, speed float64) {
	factory.CreateSpark(w.ecs, pos, angle, speed)
}

func (w *WorldEffects) SpawnParticle(kind string, pos, vel dmath.Vec2, startFrame int) {
	sim := GetSimulation(w.ecs)
	if sim == nil {
		return
	}
	factory.CreateParticle(w.ecs, sim.Assets, kind, pos, vel, startFrame)
}

func (w *WorldEffects) RequestScreenShake(intensity float64) {
	entry, ok := components.ScreenShake.First(w.ecs.World)
	if !ok {
		return
	}
	components.ScreenShake.Get(entry).Start(intensity)
}

func (w *WorldEffects) PlaySound(tag string) {
	w.sounds = append(w.sounds, tag)
}

// DrainSounds returns and clears the queued sound tags.
func (w *WorldEffects) DrainSounds() []string {
	out := w.sounds
	w.sounds = nil
	return out
}

// UpdateSparks moves sparks along their heading and removes the ones that
// have slowed to a stop.
func UpdateSparks(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Spark.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Spark.Get(e)
		vx, vy := gamemath.Polar(s.Angle, s.Speed)
		s.Pos.X += vx
		s.Pos.Y += vy
		s.Speed = max(0, s.Speed-cfg.Effects.SparkDecay)
		if s.Speed == 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}

// UpdateParticles drifts particles and removes them once their animation
// has finished. Leaves sway sideways as they fall.
func UpdateParticles(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		kill := p.Animation == nil || p.Animation.Done()

		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		if p.Animation != nil {
			p.Animation.Update()
			if p.Kind == cfg.ParticleLeaf {
				p.Pos.X += math.Sin(float64(p.Animation.Frame())*cfg.Effects.LeafSwayRate) * cfg.Effects.LeafSway
			}
		}

		if kill {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}

// UpdateLeafSpawners drops leaves from tree canopies. Bigger canopies drop
// more often.
func UpdateLeafSpawners(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	sim := GetSimulation(ecs)
	if level == nil || sim == nil {
		return
	}
	r := sim.Rand
	for _, rect := range level.LeafSpawners {
		if r.Float64()*cfg.Effects.LeafChance >= rect.W*rect.H {
			continue
		}
		pos := dmath.Vec2{X: rect.X + r.Float64()*rect.W, Y: rect.Y + r.Float64()*rect.H}
		drift := cfg.Effects.LeafDrift
		if r.Intn(2) == 0 {
			drift = -drift
		}
		vel := dmath.Vec2{X: drift, Y: cfg.Effects.LeafFall}
		sim.Effects.SpawnParticle(cfg.ParticleLeaf, pos, vel, randInt(r, 0, cfg.Effects.LeafFrames))
	}
}
