package scenes

import (
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/leveldata"
	"github.com/automoto/ninja-platformer/systems"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlatformerScene plays the level list in order.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	log          *zap.Logger
	fsys         fs.FS
	levels       []string
	input        InputHandler
	camera       Camera
	watcher      *leveldata.Watcher
	sounds       *systems.WorldEffects
	savedIndex   int
}

// NewPlatformerScene loads the level list and the saved progress. Level
// paths are relative to the working directory.
func NewPlatformerScene(sc SceneChanger, logger *zap.Logger) (*PlatformerScene, error) {
	fsys := os.DirFS(".")
	levels, err := leveldata.ListLevels(fsys, cfg.Level.Dir)
	if err != nil {
		return nil, err
	}

	ps := &PlatformerScene{
		sceneChanger: sc,
		log:          logger,
		fsys:         fsys,
		levels:       levels,
	}

	start := 0
	if saved, err := systems.LoadProgress(); err == nil && saved != nil {
		start = min(saved.LevelIndex, len(levels)-1)
		ps.input.UseWASD = saved.UseWASD
	}

	first, err := tilemap.Load(fsys, levels[start])
	if err != nil {
		return nil, err
	}

	ps.ecs = systems.NewSimulation(first, systems.Options{
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:     logger,
		NextLevel:  ps.nextLevel,
		LevelIndex: start,
	})
	ps.savedIndex = start
	if sink, ok := systems.GetSimulation(ps.ecs).Effects.(*systems.WorldEffects); ok {
		ps.sounds = sink
	}

	if cfg.Level.HotReload {
		w, err := leveldata.NewWatcher(cfg.Level.Dir)
		if err != nil {
			logger.Warn("level hot reload disabled", zap.Error(err))
		} else {
			ps.watcher = w
		}
	}
	return ps, nil
}

// nextLevel moves down the list, staying on the last level once reached.
func (ps *PlatformerScene) nextLevel(current int) (*tilemap.Index, int, error) {
	next := min(current+1, len(ps.levels)-1)
	ix, err := tilemap.Load(ps.fsys, ps.levels[next])
	if err != nil {
		return nil, current, err
	}
	return ix, next, nil
}

func (ps *PlatformerScene) Update() {
	if ps.input.Update(ps.ecs) {
		ps.saveProgress()
	}
	ps.ecs.Update()
	ps.camera.Update(ps.ecs)

	if ps.sounds != nil {
		for _, tag := range ps.sounds.DrainSounds() {
			ps.log.Debug("sound", zap.String("tag", tag))
		}
	}

	if level := systems.GetLevel(ps.ecs); level != nil && level.Index != ps.savedIndex {
		ps.savedIndex = level.Index
		ps.saveProgress()
	}

	ps.pollReload()
}

func (ps *PlatformerScene) saveProgress() {
	err := systems.SaveProgress(&systems.SavedProgress{
		LevelIndex: ps.savedIndex,
		UseWASD:    ps.input.UseWASD,
	})
	if err != nil {
		ps.log.Warn("save progress", zap.Int("level", ps.savedIndex), zap.Error(err))
	}
}

// pollReload restarts the running level when its file changes on disk.
func (ps *PlatformerScene) pollReload() {
	if ps.watcher == nil {
		return
	}
	for {
		select {
		case changed := <-ps.watcher.Events:
			ps.reload(changed)
		case err := <-ps.watcher.Errors:
			ps.log.Warn("level watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (ps *PlatformerScene) reload(changed string) {
	level := systems.GetLevel(ps.ecs)
	if level == nil {
		return
	}
	current := ps.levels[level.Index]
	if filepath.ToSlash(filepath.Clean(changed)) != current {
		return
	}
	ix, err := tilemap.Load(ps.fsys, current)
	if err != nil {
		ps.log.Warn("reload failed, keeping the running level", zap.String("path", current), zap.Error(err))
		return
	}
	ps.log.Info("level changed on disk", zap.String("path", current))
	systems.LoadLevel(ps.ecs, ix, level.Index)
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	if ps.ecs == nil {
		return
	}
	ox, oy := ps.camera.Offset(ps.ecs)
	DrawWorld(ps.ecs, screen, ox, oy)
}

// Close stops the level watcher.
func (ps *PlatformerScene) Close() error {
	if ps.watcher == nil {
		return nil
	}
	return ps.watcher.Close()
}
