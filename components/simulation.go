package components

import (
	"math/rand"

	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/effects"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// NextLevelFunc returns the level after current and its list position.
type NextLevelFunc func(current int) (*tilemap.Index, int, error)

// SimulationData carries the collaborators every system shares.
type SimulationData struct {
	Rand      *rand.Rand
	Effects   effects.Sink
	Assets    assets.Provider
	Log       *zap.Logger
	NextLevel NextLevelFunc
	Tick      int
}

var Simulation = donburi.NewComponentType[SimulationData]()
