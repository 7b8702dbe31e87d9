package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type HealthData struct {
	Current int
	Max     int
}

// Dead reports hp at or below zero.
func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

// HealthBarData is the floating bar above an entity.
type HealthBarData struct {
	Target       donburi.Entity
	Color        color.RGBA
	ShrinkFactor float64
	Center       math.Vec2
	Visible      bool
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
