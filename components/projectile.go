package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ProjectileData struct {
	Pos    math.Vec2
	Speed  float64 // signed horizontal px per tick
	Age    int
	Damage int
}

var Projectile = donburi.NewComponentType[ProjectileData]()
