// Package effects is the boundary between the simulation and everything
// that only decorates it: sparks, particles, camera shake and sound.
package effects

import "github.com/yohamta/donburi/features/math"

// Sink receives every cosmetic event the simulation emits. Calls happen on
// the simulation goroutine in tick order.
type Sink interface {
	SpawnSpark(pos math.Vec2, angle, speed float64)
	SpawnParticle(kind string, pos, vel math.Vec2, startFrame int)
	RequestScreenShake(intensity float64)
	PlaySound(tag string)
}

// Recorder counts and keeps every event. It is meant for tests and
// debugging overlays.
type Recorder struct {
	Sparks    []Spark
	Particles []Particle
	Shakes    []float64
	Sounds    []string
}

type Spark struct {
	Pos          math.Vec2
	Angle, Speed float64
}

type Particle struct {
	Kind       string
	Pos, Vel   math.Vec2
	StartFrame int
}

func (r *Recorder) SpawnSpark(pos math.Vec2, angle, speed float64) {
	r.Sparks = append(r.Sparks, Spark{Pos: pos, Angle: angle, Speed: speed})
}

func (r *Recorder) SpawnParticle(kind string, pos, vel math.Vec2, startFrame int) {
	r.Particles = append(r.Particles, Particle{Kind: kind, Pos: pos, Vel: vel, StartFrame: startFrame})
}

func (r *Recorder) RequestScreenShake(intensity float64) {
	r.Shakes = append(r.Shakes, intensity)
}

func (r *Recorder) PlaySound(tag string) {
	r.Sounds = append(r.Sounds, tag)
}

// Reset clears everything recorded so far.
func (r *Recorder) Reset() {
	*r = Recorder{}
}

// CountSound reports how many times tag was played.
func (r *Recorder) CountSound(tag string) int {
	n := 0
	for _, s := range r.Sounds {
		if s == tag {
			n++
		}
	}
	return n
}
