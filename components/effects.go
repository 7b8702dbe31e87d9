package components

import (
	"github.com/automoto/ninja-platformer/assets/animations"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SparkData is a streak that slows to a stop.
type SparkData struct {
	Pos   math.Vec2
	Angle float64
	Speed float64
}

var Spark = donburi.NewComponentType[SparkData]()

// ParticleData drifts until its non-looping animation finishes.
type ParticleData struct {
	Kind      string
	Pos       math.Vec2
	Vel       math.Vec2
	Animation *animations.Animation
}

var Particle = donburi.NewComponentType[ParticleData]()

// ScreenShakeData decays the camera shake back to zero.
type ScreenShakeData struct {
	Intensity float64
	tween     *gween.Tween
}

// Start begins a shake unless a stronger one is already running.
func (s *ScreenShakeData) Start(intensity float64) {
	if intensity <= s.Intensity {
		return
	}
	s.Intensity = intensity
	s.tween = gween.New(float32(intensity), 0, float32(intensity), ease.Linear)
}

// Step advances the decay by one tick.
func (s *ScreenShakeData) Step() {
	if s.tween == nil {
		return
	}
	v, done := s.tween.Update(1)
	s.Intensity = float64(v)
	if done {
		s.Intensity = 0
		s.tween = nil
	}
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
