package systems

import (
	"math"

	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every bullet and resolves it against the level
// and the player. A bullet expires when it gets too old, hits a solid tile
// or hits the player; the player's already-updated position is used.
func UpdateProjectiles(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	sim := GetSimulation(ecs)
	if level == nil || sim == nil || level.Tiles == nil {
		return
	}

	roster := append([]donburi.Entity(nil), level.Projectiles...)
	for _, entity := range roster {
		if !ecs.World.Valid(entity) {
			level.Projectiles = removeEntity(level.Projectiles, entity)
			continue
		}
		entry := ecs.World.Entry(entity)
		if !stepProjectile(ecs, level, sim, entry) {
			removeProjectile(ecs, level, entry)
		}
	}
}

// stepProjectile advances one bullet and reports whether it survives.
func stepProjectile(ecs *ecs.ECS, level *components.LevelData, sim *components.SimulationData, entry *donburi.Entry) bool {
	p := components.Projectile.Get(entry)
	p.Pos.X += p.Speed
	p.Age++
	syncHurtbox(ecs, entry)

	if p.Age > cfg.Combat.ProjectileLifetime {
		return false
	}

	if _, solid := level.Tiles.SolidAt(p.Pos.X, p.Pos.Y); solid {
		back := 0.0
		if p.Speed > 0 {
			back = math.Pi
		}
		for i := 0; i < cfg.Combat.ImpactSparks; i++ {
			sim.Effects.SpawnSpark(p.Pos, sim.Rand.Float64()-0.5+back, 2+sim.Rand.Float64())
		}
		return false
	}

	playerEntry, ok := GetPlayer(ecs)
	if !ok {
		return true
	}
	player := components.Player.Get(playerEntry)
	if player.DashingHard() {
		return true
	}
	physics := components.Physics.Get(playerEntry)
	if !pointInBody(ecs, entry, p.Pos.X, p.Pos.Y, physics.Rect(), tags.ResolvPlayer) {
		return true
	}

	hitPlayer(level, sim, playerEntry, p.Damage)
	return false
}

func removeProjectile(ecs *ecs.ECS, level *components.LevelData, entry *donburi.Entry) {
	entity := entry.Entity()
	level.Projectiles = removeEntity(level.Projectiles, entity)
	removeHurtbox(ecs, entry)
	ecs.World.Remove(entity)
}
