package factory

import (
	"github.com/automoto/ninja-platformer/archetypes"
	"github.com/automoto/ninja-platformer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, space components.SpaceData) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(entry, space)
	return entry
}
