package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// file mirrors the tuning document. Each section decodes onto the live
// package value, so keys left out of the document keep their defaults.
type file struct {
	Window     *Config                 `yaml:"window"`
	Physics    *PhysicsConfig          `yaml:"physics"`
	Player     *PlayerConfig           `yaml:"player"`
	Enemy      *EnemyConfig            `yaml:"enemy"`
	Boss       *BossConfig             `yaml:"boss"`
	Combat     *CombatConfig           `yaml:"combat"`
	Effects    *EffectsConfig          `yaml:"effects"`
	Level      *LevelConfig            `yaml:"level"`
	Tiles      *TilesConfig            `yaml:"tiles"`
	HealthBar  *HealthBarConfig        `yaml:"health_bar"`
	Logging    *LoggingConfig          `yaml:"logging"`
	Animations map[string]AnimationDef `yaml:"animations"`
}

// Load overlays the YAML tuning file at path onto the current values.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply overlays a YAML document onto the current values.
func Apply(data []byte) error {
	f := file{
		Window:    C,
		Physics:   &Physics,
		Player:    &Player,
		Enemy:     &Enemy,
		Boss:      &Boss,
		Combat:    &Combat,
		Effects:   &Effects,
		Level:     &Level,
		Tiles:     &Tiles,
		HealthBar: &HealthBar,
		Logging:   &Logging,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	for tag, def := range f.Animations {
		Animations[tag] = def
	}
	return nil
}
