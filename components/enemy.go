package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Walking         int // patrol ticks left
	Damage          int
	ProjectileSpeed float64
	Patrols         bool // bosses stand still
}

var Enemy = donburi.NewComponentType[EnemyData]()
