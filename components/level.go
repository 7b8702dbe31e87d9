package components

import (
	"github.com/automoto/ninja-platformer/shared/gamemath"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/yohamta/donburi"
)

// LevelData is the per-level simulation context.
type LevelData struct {
	Index  int            // position in the level list
	Source *tilemap.Index // pristine copy used for restarts
	Tiles  *tilemap.Index // live index with spawners extracted

	// Enemies and Projectiles are kept in spawn order; every system walks
	// them front to back so a run is reproducible from its seed.
	Enemies      []donburi.Entity
	Projectiles  []donburi.Entity
	LeafSpawners []gamemath.Rect

	DeadTimer  int
	Transition int // negative while fading in, positive while fading out
	Loads      int
}

var Level = donburi.NewComponentType[LevelData]()
