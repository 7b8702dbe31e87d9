package systems

import (
	"math"
	"testing"

	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

// enemyLevel puts a gunner at (96, 64) between the player and the boss.
func enemyLevel() *tilemap.Index {
	ix := guardedLevel()
	placeSpawner(ix, cfg.SpawnerEnemy, 6, 4)
	return ix
}

func TestDashStrikeLethal(t *testing.T) {
	world, rec := newTestSim(t, enemyLevel(), 3)
	tick(world, 30)
	player := mustPlayer(t, world)
	enemy := enemyAt(t, world, 0)
	require.False(t, enemy.HasComponent(tags.Boss))

	components.Enemy.Get(enemy).Walking = 0
	components.Health.Get(enemy).Current = 1
	physicsOf(player).Pos = physicsOf(enemy).Pos
	syncHurtbox(world, player)
	components.Player.Get(player).Dashing = 55
	rec.Reset()

	UpdateEnemies(world)

	assert.True(t, components.Health.Get(enemy).Dead())
	assert.Len(t, rec.Sparks, 30)
	assert.Len(t, rec.Particles, 30)
	assert.Equal(t, []float64{16}, rec.Shakes)
	assert.Equal(t, 1, rec.CountSound(cfg.SoundSlash))
	assert.True(t, world.World.Valid(enemy.Entity()), "the killing frame keeps the enemy")
	assert.Len(t, GetLevel(world).Enemies, 2)

	components.Player.Get(player).Dashing = 0
	entity := enemy.Entity()
	rec.Reset()
	UpdateEnemies(world)

	assert.False(t, world.World.Valid(entity))
	assert.Len(t, GetLevel(world).Enemies, 1)
	require.Len(t, rec.Sparks, 2)
	assert.Equal(t, 0.0, rec.Sparks[0].Angle)
	assert.Equal(t, math.Pi, rec.Sparks[1].Angle)
	for _, s := range rec.Sparks {
		assert.GreaterOrEqual(t, s.Speed, 5.0)
		assert.Less(t, s.Speed, 6.0)
	}
}

func TestDashStrikeNonLethal(t *testing.T) {
	world, rec := newTestSim(t, enemyLevel(), 3)
	tick(world, 30)
	player := mustPlayer(t, world)
	enemy := enemyAt(t, world, 0)

	components.Enemy.Get(enemy).Walking = 0
	physicsOf(player).Pos = physicsOf(enemy).Pos
	syncHurtbox(world, player)
	components.Player.Get(player).Dashing = -50
	rec.Reset()

	UpdateEnemies(world)

	assert.Equal(t, 25, components.Health.Get(enemy).Current)
	assert.GreaterOrEqual(t, len(rec.Sparks), 4)
	assert.LessOrEqual(t, len(rec.Sparks), 7)
	assert.Equal(t, len(rec.Sparks), len(rec.Particles))
}

func TestNoStrikeOutsideAttackPhase(t *testing.T) {
	world, rec := newTestSim(t, enemyLevel(), 3)
	tick(world, 30)
	player := mustPlayer(t, world)
	enemy := enemyAt(t, world, 0)

	physicsOf(player).Pos = physicsOf(enemy).Pos
	syncHurtbox(world, player)
	components.Player.Get(player).Dashing = 49
	rec.Reset()

	UpdateEnemies(world)
	assert.Equal(t, 75, components.Health.Get(enemy).Current)
	assert.Empty(t, rec.Sparks)
}

func TestEnemyShootsWhenFacingPlayer(t *testing.T) {
	world, rec := newTestSim(t, enemyLevel(), 3)
	tick(world, 30)
	enemy := enemyAt(t, world, 0)
	ph := physicsOf(enemy)
	ph.Pos = dmath.Vec2{X: 96, Y: 65}
	ph.Flip = true
	components.Enemy.Get(enemy).Walking = 1
	physicsOf(mustPlayer(t, world)).Pos = dmath.Vec2{X: 32, Y: 65}
	rec.Reset()

	UpdateEnemies(world)

	level := GetLevel(world)
	require.Len(t, level.Projectiles, 1)
	p := components.Projectile.Get(world.World.Entry(level.Projectiles[0]))
	assert.Equal(t, -2.0, p.Speed)
	assert.Equal(t, 25, p.Damage)
	assert.Equal(t, dmath.Vec2{X: 93, Y: 72.5}, p.Pos)
	assert.Equal(t, 1, rec.CountSound(cfg.SoundShoot))
	require.Len(t, rec.Sparks, 4)
	for _, s := range rec.Sparks {
		assert.InDelta(t, math.Pi, s.Angle, 0.5)
	}
	assert.Equal(t, 95.5, ph.Pos.X)
	assert.Equal(t, cfg.ActionRun, components.Animation.Get(enemy).Action)
}

func TestEnemyHoldsFireFacingAway(t *testing.T) {
	world, rec := newTestSim(t, enemyLevel(), 3)
	tick(world, 30)
	enemy := enemyAt(t, world, 0)
	ph := physicsOf(enemy)
	ph.Pos = dmath.Vec2{X: 96, Y: 65}
	ph.Flip = false
	components.Enemy.Get(enemy).Walking = 1
	physicsOf(mustPlayer(t, world)).Pos = dmath.Vec2{X: 32, Y: 65}
	rec.Reset()

	UpdateEnemies(world)
	assert.Empty(t, GetLevel(world).Projectiles)
	assert.Zero(t, rec.CountSound(cfg.SoundShoot))
}

func TestEnemyHoldsFireOutsideBand(t *testing.T) {
	world, _ := newTestSim(t, enemyLevel(), 3)
	tick(world, 30)
	enemy := enemyAt(t, world, 0)
	ph := physicsOf(enemy)
	ph.Pos = dmath.Vec2{X: 96, Y: 65}
	ph.Flip = true
	components.Enemy.Get(enemy).Walking = 1
	physicsOf(mustPlayer(t, world)).Pos = dmath.Vec2{X: 32, Y: 49}

	UpdateEnemies(world)
	assert.Empty(t, GetLevel(world).Projectiles)
}

func TestEnemyTurnsAtLedgeAndWall(t *testing.T) {
	ix := tilemap.New(16)
	for x := 0; x < 3; x++ {
		ix.Place(tilemap.Tile{Type: "grass", Pos: tilemap.Coord{X: x, Y: 5}})
	}
	placeSpawner(ix, cfg.SpawnerPlayer, 10, 0)
	placeSpawner(ix, cfg.SpawnerEnemy, 1, 4)
	world, _ := newTestSim(t, ix, 1)

	enemy := enemyAt(t, world, 0)
	ph := physicsOf(enemy)
	ph.Pos = dmath.Vec2{X: 38, Y: 65}
	components.Enemy.Get(enemy).Walking = 10

	UpdateEnemies(world)
	assert.True(t, ph.Flip, "no ground ahead")
	assert.Equal(t, 38.0, ph.Pos.X)
	assert.Equal(t, 9, components.Enemy.Get(enemy).Walking)

	ph.Collisions.Left = true
	UpdateEnemies(world)
	assert.False(t, ph.Flip, "walked into a wall")
	assert.Equal(t, 38.0, ph.Pos.X)
}

func TestBossNeverPatrols(t *testing.T) {
	world, rec := newTestSim(t, guardedLevel(), 5)
	boss := enemyAt(t, world, 0)
	require.True(t, boss.HasComponent(tags.Boss))
	start := physicsOf(boss).Pos.X

	// keep the player in the boss's firing band
	for i := 0; i < 600; i++ {
		physicsOf(mustPlayer(t, world)).Pos = dmath.Vec2{X: start - 40, Y: 65}
		world.Update()
	}

	assert.Equal(t, start, physicsOf(boss).Pos.X)
	assert.Zero(t, components.Enemy.Get(boss).Walking)
	assert.Empty(t, GetLevel(world).Projectiles)
	assert.Zero(t, rec.CountSound(cfg.SoundShoot))
	assert.Equal(t, cfg.ActionIdle, components.Animation.Get(boss).Action)
	assert.Equal(t, 500, components.Health.Get(boss).Current)
}
