package systems

import (
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/automoto/ninja-platformer/systems/factory"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateLevelFlow runs the transitions between levels: fade-in after a
// load, moving on once the roster is empty and reloading after a death.
func UpdateLevelFlow(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	sim := GetSimulation(ecs)
	if level == nil || sim == nil {
		return
	}
	sim.Tick++

	if entry, ok := components.ScreenShake.First(ecs.World); ok {
		components.ScreenShake.Get(entry).Step()
	}

	if len(level.Enemies) == 0 {
		level.Transition++
		if level.Transition > cfg.Level.TransitionTicks {
			advanceLevel(ecs, level, sim)
		}
	}
	if level.Transition < 0 {
		level.Transition++
	}

	if level.DeadTimer != 0 {
		level.DeadTimer++
		if level.DeadTimer >= cfg.Level.DeathFadeStart {
			level.Transition = min(cfg.Level.TransitionTicks, level.Transition+1)
		}
		if level.DeadTimer > cfg.Level.DeathReload {
			sim.Log.Debug("reloading after death", zap.Int("level", level.Index))
			RestartLevel(ecs)
		}
	}
}

// advanceLevel loads the next level. Without a next level, or when it
// fails to load, the current one restarts.
func advanceLevel(ecs *ecs.ECS, level *components.LevelData, sim *components.SimulationData) {
	if sim.NextLevel == nil {
		RestartLevel(ecs)
		return
	}
	next, index, err := sim.NextLevel(level.Index)
	if err != nil || next == nil {
		sim.Log.Warn("next level unavailable, restarting",
			zap.Int("level", level.Index),
			zap.Error(err))
		RestartLevel(ecs)
		return
	}
	sim.Log.Debug("level complete", zap.Int("from", level.Index), zap.Int("to", index))
	LoadLevel(ecs, next, index)
}

// RestartLevel reloads the current level from its pristine copy.
func RestartLevel(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil || level.Source == nil {
		return
	}
	LoadLevel(ecs, level.Source, level.Index)
}

// LoadLevel replaces the running level with a fresh copy of source. Marker
// tiles become the player's spawn point, enemies, bosses and leaf spawners;
// every transient entity from the previous level is dropped.
func LoadLevel(ecs *ecs.ECS, source *tilemap.Index, index int) {
	level := GetLevel(ecs)
	sim := GetSimulation(ecs)
	if level == nil || sim == nil || source == nil {
		return
	}

	clearLevelEntities(ecs, level)

	tiles := source.Clone()
	if cfg.Level.AutotileOnLoad {
		tiles.Autotile()
	}
	level.Source = source
	level.Tiles = tiles
	level.Index = index
	level.Loads++

	space := resetSpace(ecs, tiles)

	level.LeafSpawners = level.LeafSpawners[:0]
	for _, tree := range tiles.Extract([]tilemap.Kind{{Type: cfg.LeafTreeType, Variant: cfg.LeafTreeVariant}}, true) {
		level.LeafSpawners = append(level.LeafSpawners, gamemath.Rect{
			X: float64(tree.Pos.X) + 4,
			Y: float64(tree.Pos.Y) + 4,
			W: 23,
			H: 13,
		})
	}

	playerEntry, ok := GetPlayer(ecs)
	if !ok {
		playerEntry = factory.CreatePlayer(ecs, sim.Assets, 50, 50)
	}
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	spawners := []tilemap.Kind{
		{Type: cfg.SpawnerType, Variant: cfg.SpawnerPlayer},
		{Type: cfg.SpawnerType, Variant: cfg.SpawnerEnemy},
		{Type: cfg.SpawnerType, Variant: cfg.SpawnerBoss},
	}
	for _, spawner := range tiles.Extract(spawners, false) {
		x, y := float64(spawner.Pos.X), float64(spawner.Pos.Y)
		switch spawner.Variant {
		case cfg.SpawnerPlayer:
			physics.Pos.X, physics.Pos.Y = x, y
			player.AirTime = 0
			factory.CreateHealthBar(ecs, playerEntry.Entity(), cfg.Green)
		case cfg.SpawnerEnemy:
			enemy := factory.CreateEnemy(ecs, sim.Assets, space, x, y)
			level.Enemies = append(level.Enemies, enemy.Entity())
			factory.CreateHealthBar(ecs, enemy.Entity(), cfg.Red)
		default:
			boss := factory.CreateBoss(ecs, sim.Assets, space, x, y)
			level.Enemies = append(level.Enemies, boss.Entity())
			factory.CreateHealthBar(ecs, boss.Entity(), cfg.Red)
		}
	}

	obj := space.Add(physics.Rect(), tags.ResolvPlayer, playerEntry.Entity())
	components.Object.SetValue(playerEntry, components.ObjectData{Object: obj})

	level.DeadTimer = 0
	level.Transition = -cfg.Level.TransitionTicks

	health := components.Health.Get(playerEntry)
	health.Current = health.Max
	physics.Vel.X, physics.Vel.Y = 0, 0
	updateHUDBar(player, health)

	sim.Log.Info("level loaded",
		zap.Int("level", index),
		zap.Int("tiles", tiles.Len()),
		zap.Int("enemies", len(level.Enemies)),
		zap.Int("leaf_spawners", len(level.LeafSpawners)))
}

// resetSpace gives the level a fresh broad phase grid sized to its tiles.
func resetSpace(ecs *ecs.ECS, tiles *tilemap.Index) *components.SpaceData {
	sd := newHurtspace(tiles)
	if entry, ok := components.Space.First(ecs.World); ok {
		components.Space.SetValue(entry, sd)
		return components.Space.Get(entry)
	}
	return components.Space.Get(factory.CreateSpace(ecs, sd))
}

func clearLevelEntities(ecs *ecs.ECS, level *components.LevelData) {
	var toRemove []donburi.Entity
	collect := func(e *donburi.Entry) {
		toRemove = append(toRemove, e.Entity())
	}
	tags.Enemy.Each(ecs.World, collect)
	tags.Projectile.Each(ecs.World, collect)
	components.Spark.Each(ecs.World, collect)
	components.Particle.Each(ecs.World, collect)
	components.HealthBar.Each(ecs.World, collect)

	for _, e := range toRemove {
		if ecs.World.Valid(e) {
			ecs.World.Remove(e)
		}
	}
	level.Enemies = nil
	level.Projectiles = nil
}
