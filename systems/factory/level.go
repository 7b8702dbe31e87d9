package factory

import (
	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{})
	return level
}

func CreateSimulation(ecs *ecs.ECS, sim components.SimulationData) *donburi.Entry {
	entry := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(entry, sim)
	return entry
}
