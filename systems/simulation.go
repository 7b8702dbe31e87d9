package systems

import (
	"math/rand"

	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/components"
	"github.com/automoto/ninja-platformer/effects"
	"github.com/automoto/ninja-platformer/systems/factory"
	"github.com/automoto/ninja-platformer/tags"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Options configures NewSimulation. Zero values get working defaults.
type Options struct {
	// Rand drives every random choice. Two simulations with equally seeded
	// sources and the same inputs produce the same run.
	Rand *rand.Rand
	// Effects receives sparks, particles, shake and sound. Nil spawns
	// spark and particle entities into the world and queues sounds.
	Effects   effects.Sink
	Assets    assets.Provider
	Logger    *zap.Logger
	NextLevel components.NextLevelFunc
	// LevelIndex is the list position of the first level.
	LevelIndex int
}

// NewSimulation builds the world for one play session and loads the level.
// Each Update of the returned ECS is one fixed tick; systems run in this
// order: level flow, leaf spawners, enemies, player, projectiles, sparks,
// health bars, particles.
func NewSimulation(level *tilemap.Index, opts Options) *ecs.ECS {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.Assets == nil {
		opts.Assets = assets.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	world := ecs.NewECS(donburi.NewWorld())

	sink := opts.Effects
	if sink == nil {
		sink = NewWorldEffects(world)
	}
	factory.CreateSimulation(world, components.SimulationData{
		Rand:      opts.Rand,
		Effects:   sink,
		Assets:    opts.Assets,
		Log:       opts.Logger,
		NextLevel: opts.NextLevel,
	})
	factory.CreateLevel(world)

	world.AddSystem(UpdateLevelFlow)
	world.AddSystem(UpdateLeafSpawners)
	world.AddSystem(UpdateEnemies)
	world.AddSystem(UpdatePlayer)
	world.AddSystem(UpdateProjectiles)
	world.AddSystem(UpdateSparks)
	world.AddSystem(UpdateHealthBars)
	world.AddSystem(UpdateParticles)

	LoadLevel(world, level, opts.LevelIndex)
	return world
}

// GetSimulation returns the shared collaborators.
func GetSimulation(ecs *ecs.ECS) *components.SimulationData {
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Simulation.Get(entry)
}

// GetLevel returns the per-level context.
func GetLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// GetPlayer returns the player entry.
func GetPlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

// GetScreenShake returns the current camera shake in pixels.
func GetScreenShake(ecs *ecs.ECS) float64 {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return 0
	}
	return components.ScreenShake.Get(entry).Intensity
}

// randInt returns an int in [lo, hi].
func randInt(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
