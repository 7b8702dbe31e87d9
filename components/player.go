package components

import (
	"github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	AirTime   int
	Jumps     int
	WallSlide bool
	Dashing   int // signed dash timer; sign is the dash direction
	Damage    int
	HUDBar    gamemath.Rect
}

var Player = donburi.NewComponentType[PlayerData]()

// InputData is the player's held controls. Jump and dash are edge-triggered
// and act immediately instead of being stored here.
type InputData struct {
	Left, Right bool
	FastFall    bool
}

// Axis is the requested horizontal movement: -1, 0 or 1.
func (i *InputData) Axis() float64 {
	var x float64
	if i.Right {
		x++
	}
	if i.Left {
		x--
	}
	return x
}

var Input = donburi.NewComponentType[InputData]()

// DashingHard reports the attack phase of a dash: the player strikes
// enemies it overlaps and projectiles pass through it.
func (p *PlayerData) DashingHard() bool {
	return gamemath.AbsInt(p.Dashing) >= config.Player.DashHard
}

// Hidden reports the part of a dash where the player is not drawn.
func (p *PlayerData) Hidden() bool {
	return gamemath.AbsInt(p.Dashing) > config.Player.DashHard
}
