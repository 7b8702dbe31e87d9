package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/effects"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// floorLevel is a grass floor on row 5 (top edge at y=80) spanning columns
// -2 to width-1, with the player spawning at column 2.
func floorLevel(width int) *tilemap.Index {
	ix := tilemap.New(16)
	for x := -2; x < width; x++ {
		ix.Place(tilemap.Tile{Type: "grass", Pos: tilemap.Coord{X: x, Y: 5}})
	}
	placeSpawner(ix, cfg.SpawnerPlayer, 2, 4)
	return ix
}

func placeSpawner(ix *tilemap.Index, variant, x, y int) {
	ix.Place(tilemap.Tile{Type: cfg.SpawnerType, Variant: variant, Pos: tilemap.Coord{X: x, Y: y}})
}

// guardedLevel adds a boss far from the player so the roster never empties.
func guardedLevel() *tilemap.Index {
	ix := floorLevel(25)
	placeSpawner(ix, cfg.SpawnerBoss, 20, 4)
	return ix
}

func newTestSim(t *testing.T, level *tilemap.Index, seed int64) (*ecs.ECS, *effects.Recorder) {
	t.Helper()
	rec := &effects.Recorder{}
	world := NewSimulation(level, Options{
		Rand:    rand.New(rand.NewSource(seed)),
		Effects: rec,
	})
	return world, rec
}

func tick(world *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		world.Update()
	}
}

func mustPlayer(t *testing.T, world *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := GetPlayer(world)
	require.True(t, ok)
	return entry
}

func enemyAt(t *testing.T, world *ecs.ECS, i int) *donburi.Entry {
	t.Helper()
	level := GetLevel(world)
	require.Greater(t, len(level.Enemies), i)
	return world.World.Entry(level.Enemies[i])
}

func countOf[T any](world *ecs.ECS, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(world.World, func(*donburi.Entry) { n++ })
	return n
}

func physicsOf(e *donburi.Entry) *components.PhysicsData {
	return components.Physics.Get(e)
}
