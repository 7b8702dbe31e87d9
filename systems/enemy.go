package systems

import (
	"math"

	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/systems/factory"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// UpdateEnemies runs the roster oldest first. An enemy that was already
// dead when its turn came updates once more and is then removed with a
// pair of death sparks.
func UpdateEnemies(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	sim := GetSimulation(ecs)
	if level == nil || sim == nil || level.Tiles == nil {
		return
	}

	roster := append([]donburi.Entity(nil), level.Enemies...)
	for _, entity := range roster {
		if !ecs.World.Valid(entity) {
			level.Enemies = removeEntity(level.Enemies, entity)
			continue
		}
		enemyEntry := ecs.World.Entry(entity)
		kill := components.Health.Get(enemyEntry).Dead()

		updateEnemy(ecs, level, sim, enemyEntry)

		if kill {
			killEnemy(ecs, level, sim, enemyEntry)
		}
	}
}

func killEnemy(ecs *ecs.ECS, level *components.LevelData, sim *components.SimulationData, enemyEntry *donburi.Entry) {
	center := components.Physics.Get(enemyEntry).Center()
	sim.Effects.SpawnSpark(center, 0, cfg.Combat.DeathSparkSpeed+sim.Rand.Float64())
	sim.Effects.SpawnSpark(center, math.Pi, cfg.Combat.DeathSparkSpeed+sim.Rand.Float64())

	boss := enemyEntry.HasComponent(tags.Boss)
	entity := enemyEntry.Entity()
	level.Enemies = removeEntity(level.Enemies, entity)
	removeHurtbox(ecs, enemyEntry)
	ecs.World.Remove(entity)

	sim.Log.Debug("enemy removed",
		zap.Int("remaining", len(level.Enemies)),
		zap.Bool("boss", boss))
}

func updateEnemy(ecs *ecs.ECS, level *components.LevelData, sim *components.SimulationData, enemyEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	physics := components.Physics.Get(enemyEntry)
	anim := components.Animation.Get(enemyEntry)

	var movement dmath.Vec2
	if enemy.Patrols {
		movement = patrol(ecs, level, sim, enemy, physics)
	}

	stepBody(ecs, enemyEntry, level.Tiles, movement)

	if movement.X != 0 {
		anim.SetAction(sim.Assets, cfg.ActionRun)
	} else {
		anim.SetAction(sim.Assets, cfg.ActionIdle)
	}

	checkDashStrike(ecs, sim, enemyEntry)
}

// patrol walks in bursts, turning at ledges and walls, and fires at the
// player when a burst ends facing them.
func patrol(ecs *ecs.ECS, level *components.LevelData, sim *components.SimulationData, enemy *components.EnemyData, physics *components.PhysicsData) dmath.Vec2 {
	var movement dmath.Vec2

	if enemy.Walking == 0 {
		if sim.Rand.Float64() < cfg.Enemy.WalkChance {
			enemy.Walking = randInt(sim.Rand, cfg.Enemy.WalkMin, cfg.Enemy.WalkMax)
		}
		return movement
	}

	center := physics.Center()
	ahead := cfg.Enemy.ProbeAhead
	if physics.Flip {
		ahead = -ahead
	}
	if _, ground := level.Tiles.SolidAt(center.X+ahead, physics.Pos.Y+cfg.Enemy.ProbeDown); ground {
		if physics.Collisions.Left || physics.Collisions.Right {
			physics.Flip = !physics.Flip
		} else if physics.Flip {
			movement.X = -cfg.Enemy.WalkSpeed
		} else {
			movement.X = cfg.Enemy.WalkSpeed
		}
	} else {
		physics.Flip = !physics.Flip
	}

	enemy.Walking = max(0, enemy.Walking-1)
	if enemy.Walking == 0 {
		shoot(ecs, sim, enemy, physics)
	}
	return movement
}

func shoot(ecs *ecs.ECS, sim *components.SimulationData, enemy *components.EnemyData, physics *components.PhysicsData) {
	playerEntry, ok := GetPlayer(ecs)
	if !ok {
		return
	}
	target := components.Physics.Get(playerEntry).Pos
	dx := target.X - physics.Pos.X
	dy := target.Y - physics.Pos.Y
	if math.Abs(dy) >= cfg.Enemy.ShootBand {
		return
	}

	var dir float64
	switch {
	case physics.Flip && dx < 0:
		dir = -1
	case !physics.Flip && dx > 0:
		dir = 1
	default:
		return
	}

	center := physics.Center()
	muzzle := dmath.Vec2{X: center.X + dir*cfg.Enemy.MuzzleOffset, Y: center.Y}
	sim.Effects.PlaySound(cfg.SoundShoot)
	projectile := factory.CreateProjectile(ecs, getSpace(ecs), muzzle, dir*enemy.ProjectileSpeed, enemy.Damage)
	if level := GetLevel(ecs); level != nil {
		level.Projectiles = append(level.Projectiles, projectile.Entity())
	}

	spread := 0.0
	if dir < 0 {
		spread = math.Pi
	}
	for i := 0; i < cfg.Enemy.MuzzleSparks; i++ {
		sim.Effects.SpawnSpark(muzzle, sim.Rand.Float64()-0.5+spread, 2+sim.Rand.Float64())
	}
}

func removeEntity(list []donburi.Entity, entity donburi.Entity) []donburi.Entity {
	for i, e := range list {
		if e == entity {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
