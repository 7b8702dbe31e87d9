package main

import (
	"errors"
	"image"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/scenes"
	"github.com/automoto/ninja-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const configPath = "config.yaml"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

func main() {
	if err := config.Load(configPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(config.Logging)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := systems.InitPersistence(logger); err != nil {
		logger.Warn("progress will not be saved", zap.Error(err))
	}

	g := &Game{}
	scene, err := scenes.NewPlatformerScene(g, logger)
	if err != nil {
		logger.Fatal("start", zap.Error(err))
	}
	defer func() { _ = scene.Close() }()
	g.scene = scene

	ebiten.SetWindowSize(config.C.Width*3, config.C.Height*3)
	ebiten.SetWindowTitle("ninja platformer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logger.Error("run", zap.Error(err))
		os.Exit(1)
	}
}
