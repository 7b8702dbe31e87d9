package systems

import (
	"math"

	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// checkDashStrike lets a player in the attack phase of a dash cut through
// the enemy.
func checkDashStrike(ecs *ecs.ECS, sim *components.SimulationData, enemyEntry *donburi.Entry) {
	playerEntry, ok := GetPlayer(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if !player.DashingHard() {
		return
	}
	body := components.Physics.Get(enemyEntry).Rect()
	if !bodiesOverlap(ecs, enemyEntry, body, components.Physics.Get(playerEntry).Rect(), tags.ResolvPlayer) {
		return
	}

	health := components.Health.Get(enemyEntry)
	health.Current -= player.Damage
	sim.Effects.RequestScreenShake(cfg.Combat.ShakeIntensity)
	sim.Effects.PlaySound(cfg.SoundSlash)

	n := cfg.Combat.LethalBurst
	if !health.Dead() {
		n = randInt(sim.Rand, cfg.Combat.EnemyHitBurstMin, cfg.Combat.EnemyHitBurstMax)
	}
	emitBurst(sim, components.Physics.Get(enemyEntry).Center(), n)
}

func hitPlayer(level *components.LevelData, sim *components.SimulationData, playerEntry *donburi.Entry, damage int) {
	sim.Effects.PlaySound(cfg.SoundHit)

	health := components.Health.Get(playerEntry)
	health.Current -= damage
	sim.Effects.RequestScreenShake(cfg.Combat.ShakeIntensity)
	updateHUDBar(components.Player.Get(playerEntry), health)

	n := cfg.Combat.LethalBurst
	if health.Dead() {
		sim.Effects.PlaySound(cfg.SoundDeath)
		if level.DeadTimer == 0 {
			level.DeadTimer = 1
		}
		sim.Log.Debug("player killed")
	} else {
		n = randInt(sim.Rand, cfg.Combat.PlayerHitBurstMin, cfg.Combat.PlayerHitBurstMax)
	}
	emitBurst(sim, components.Physics.Get(playerEntry).Center(), n)
}

// emitBurst sprays n spark/particle pairs from pos. Particles fly opposite
// their spark.
func emitBurst(sim *components.SimulationData, pos dmath.Vec2, n int) {
	r := sim.Rand
	for i := 0; i < n; i++ {
		angle := r.Float64() * math.Pi * 2
		speed := r.Float64() * 5
		sim.Effects.SpawnSpark(pos, angle, 2+r.Float64())
		vel := dmath.Vec2{
			X: math.Cos(angle+math.Pi) * speed * 0.5,
			Y: math.Sin(angle+math.Pi) * speed,
		}
		sim.Effects.SpawnParticle(cfg.ParticleDash, pos, vel, randInt(r, 0, cfg.Effects.ParticleFrames))
	}
}
