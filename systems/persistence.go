package systems

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedProgress is what survives between runs.
type SavedProgress struct {
	LevelIndex int  `json:"levelIndex"`
	UseWASD    bool `json:"useWasd"`
}

const progressKey = "progress"

var gdataManager *gdata.Manager
var gdataInitialized bool
var persistLog = zap.NewNop()

// InitPersistence opens the per-user data store.
func InitPersistence(logger *zap.Logger) error {
	if logger != nil {
		persistLog = logger
	}
	m, err := gdata.Open(gdata.Config{
		AppName: "ninja-platformer",
	})
	if err != nil {
		persistLog.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress returns the saved progress, or nil when nothing was saved
// or the store is unavailable.
func LoadProgress() (*SavedProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		persistLog.Warn("could not load progress", zap.Error(err))
		return nil, nil
	}
	return decodeProgress(data)
}

func decodeProgress(data []byte) (*SavedProgress, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		persistLog.Warn("could not parse saved progress", zap.Error(err))
		return nil, err
	}
	if progress.LevelIndex < 0 {
		progress.LevelIndex = 0
	}
	return &progress, nil
}

// SaveProgress writes p to the store. It is a no-op without a store.
func SaveProgress(p *SavedProgress) error {
	if !gdataInitialized || gdataManager == nil || p == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// ClearProgress forgets the saved progress.
func ClearProgress() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	if err := gdataManager.SaveItem(progressKey, nil); err != nil {
		persistLog.Warn("could not clear progress", zap.Error(err))
		return err
	}
	return nil
}
