package systems

import (
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHealthBars re-centres every bar over its entity. Bars of dead
// entities hide, and bars whose entity is gone are removed.
func UpdateHealthBars(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		hb := components.HealthBar.Get(e)
		if !ecs.World.Valid(hb.Target) {
			toRemove = append(toRemove, e)
			return
		}
		target := ecs.World.Entry(hb.Target)
		health := components.Health.Get(target)
		hb.Visible = !health.Dead()
		if !hb.Visible {
			return
		}
		r := components.Physics.Get(target).Rect()
		hb.Center.X = r.X + r.W/2
		hb.Center.Y = r.Y - cfg.HealthBar.Lift
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}

// HealthBarGeometry returns the filled part of a floating bar and its
// one-pixel outline.
func HealthBarGeometry(hb *components.HealthBarData, health *components.HealthData) (fill, outline gamemath.Rect) {
	sf := hb.ShrinkFactor
	if sf <= 0 {
		sf = 1
	}
	left := hb.Center.X - float64(health.Max)/2/sf
	fill = gamemath.Rect{X: left, Y: hb.Center.Y, W: float64(health.Current) / sf, H: 1}
	outline = gamemath.Rect{X: left - 1, Y: hb.Center.Y - 1, W: float64(health.Max)/sf + 3, H: 4}
	return fill, outline
}

// updateHUDBar lays the player's screen-space bar along the bottom left.
func updateHUDBar(player *components.PlayerData, health *components.HealthData) {
	player.HUDBar = gamemath.Rect{
		X: cfg.HealthBar.HUDMargin,
		Y: float64(cfg.C.Height) - cfg.HealthBar.HUDMargin - cfg.HealthBar.HUDHeight,
		W: float64(max(0, health.Current)),
		H: cfg.HealthBar.HUDHeight,
	}
}
