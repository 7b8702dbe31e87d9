package config

import "image/color"

// PhysicsConfig is shared by every moving body.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	FastFallGravity float64 `yaml:"fast_fall_gravity"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width, Height   float64 `yaml:"-"`
	Health          int     `yaml:"health"`
	Damage          int     `yaml:"damage"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	Friction        float64 `yaml:"friction"`

	// Jumping
	MaxJumps      int     `yaml:"max_jumps"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	WallJumpSpeed float64 `yaml:"wall_jump_speed"`
	AirGrace      int     `yaml:"air_grace"`       // ticks airborne before the jump pose
	FallDeathTime int     `yaml:"fall_death_time"` // ticks airborne before falling out kills
	WallSlideFall float64 `yaml:"wall_slide_fall"`

	// Dash
	DashDuration   int     `yaml:"dash_duration"`
	DashHard       int     `yaml:"dash_hard"` // |timer| at or above this is the attack phase
	DashSpeed      float64 `yaml:"dash_speed"`
	DashBrake      float64 `yaml:"dash_brake"` // speed scale on the last attack tick
	DashBurst      int     `yaml:"dash_burst"`
	DashTrailSpeed float64 `yaml:"dash_trail_speed"`
}

// EnemyConfig covers the patrolling gunner.
type EnemyConfig struct {
	Width, Height   float64 `yaml:"-"`
	Health          int     `yaml:"health"`
	Damage          int     `yaml:"damage"`
	WalkSpeed       float64 `yaml:"walk_speed"`
	WalkChance      float64 `yaml:"walk_chance"`
	WalkMin         int     `yaml:"walk_min"`
	WalkMax         int     `yaml:"walk_max"`
	ProbeAhead      float64 `yaml:"probe_ahead"`
	ProbeDown       float64 `yaml:"probe_down"`
	ShootBand       float64 `yaml:"shoot_band"`
	MuzzleOffset    float64 `yaml:"muzzle_offset"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	MuzzleSparks    int     `yaml:"muzzle_sparks"`
}

// BossConfig is the stationary heavy.
type BossConfig struct {
	Width, Height float64 `yaml:"-"`
	Health        int     `yaml:"health"`
	Damage        int     `yaml:"damage"`
}

// CombatConfig holds hit feedback and projectile tuning.
type CombatConfig struct {
	ProjectileLifetime int     `yaml:"projectile_lifetime"`
	ShakeIntensity     float64 `yaml:"shake_intensity"`
	LethalBurst        int     `yaml:"lethal_burst"`
	PlayerHitBurstMin  int     `yaml:"player_hit_burst_min"`
	PlayerHitBurstMax  int     `yaml:"player_hit_burst_max"`
	EnemyHitBurstMin   int     `yaml:"enemy_hit_burst_min"`
	EnemyHitBurstMax   int     `yaml:"enemy_hit_burst_max"`
	ImpactSparks       int     `yaml:"impact_sparks"`
	DeathSparkSpeed    float64 `yaml:"death_spark_speed"`
}

// EffectsConfig tunes sparks, particles and leaves.
type EffectsConfig struct {
	SparkDecay     float64 `yaml:"spark_decay"`
	ParticleFrames int     `yaml:"particle_frames"` // start frame is drawn from [0, ParticleFrames]
	LeafChance     float64 `yaml:"leaf_chance"`     // spawn when rand*LeafChance < spawner area
	LeafSway       float64 `yaml:"leaf_sway"`
	LeafSwayRate   float64 `yaml:"leaf_sway_rate"`
	LeafFrames     int     `yaml:"leaf_frames"`
	LeafDrift      float64 `yaml:"leaf_drift"`
	LeafFall       float64 `yaml:"leaf_fall"`
}

// LevelConfig controls level flow.
type LevelConfig struct {
	Dir             string `yaml:"dir"`
	TransitionTicks int    `yaml:"transition_ticks"`
	DeathFadeStart  int    `yaml:"death_fade_start"`
	DeathReload     int    `yaml:"death_reload"`
	AutotileOnLoad  bool   `yaml:"autotile_on_load"`
	HotReload       bool   `yaml:"hot_reload"`
}

// TilesConfig names the tile vocabulary.
type TilesConfig struct {
	Size          int      `yaml:"size"`
	PhysicsTypes  []string `yaml:"physics_types"`
	AutotileTypes []string `yaml:"autotile_types"`
}

// HealthBarConfig lays out the floating and HUD bars.
type HealthBarConfig struct {
	ShrinkFactor float64 `yaml:"shrink_factor"`
	Lift         float64 `yaml:"lift"`
	HUDMargin    float64 `yaml:"hud_margin"` // HUD bar inset from the left and bottom
	HUDHeight    float64 `yaml:"hud_height"`
}

// LoggingConfig selects the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Boss BossConfig
var Combat CombatConfig
var Effects EffectsConfig
var Level LevelConfig
var Tiles TilesConfig
var HealthBar HealthBarConfig
var Logging LoggingConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every value to its default.
func Reset() {
	C = &Config{
		Width:  320,
		Height: 240,
	}

	Physics = PhysicsConfig{
		Gravity:         0.1,
		FastFallGravity: 0.3,
		MaxFallSpeed:    5,
	}

	Player = PlayerConfig{
		Width:           8,
		Height:          15,
		Health:          100,
		Damage:          50,
		SpeedMultiplier: 1.5,
		Friction:        0.1,

		MaxJumps:      2,
		JumpSpeed:     3,
		WallJumpSpeed: 2.75,
		AirGrace:      4,
		FallDeathTime: 150,
		WallSlideFall: 0.5,

		DashDuration:   60,
		DashHard:       50,
		DashSpeed:      8,
		DashBrake:      0.1,
		DashBurst:      20,
		DashTrailSpeed: 3,
	}

	Enemy = EnemyConfig{
		Width:           8,
		Height:          15,
		Health:          75,
		Damage:          25,
		WalkSpeed:       0.5,
		WalkChance:      0.01,
		WalkMin:         30,
		WalkMax:         120,
		ProbeAhead:      7,
		ProbeDown:       23,
		ShootBand:       16,
		MuzzleOffset:    7,
		ProjectileSpeed: 2,
		MuzzleSparks:    4,
	}

	Boss = BossConfig{
		Width:  8,
		Height: 15,
		Health: 500,
		Damage: 10,
	}

	Combat = CombatConfig{
		ProjectileLifetime: 360,
		ShakeIntensity:     16,
		LethalBurst:        30,
		PlayerHitBurstMin:  5,
		PlayerHitBurstMax:  10,
		EnemyHitBurstMin:   4,
		EnemyHitBurstMax:   7,
		ImpactSparks:       4,
		DeathSparkSpeed:    5,
	}

	Effects = EffectsConfig{
		SparkDecay:     0.1,
		ParticleFrames: 7,
		LeafChance:     29999,
		LeafSway:       0.3,
		LeafSwayRate:   0.035,
		LeafFrames:     20,
		LeafDrift:      0.1,
		LeafFall:       0.3,
	}

	Level = LevelConfig{
		Dir:             "data/maps",
		TransitionTicks: 30,
		DeathFadeStart:  10,
		DeathReload:     40,
	}

	Tiles = TilesConfig{
		Size:          16,
		PhysicsTypes:  []string{"grass", "stone"},
		AutotileTypes: []string{"grass", "stone"},
	}

	HealthBar = HealthBarConfig{
		ShrinkFactor: 5,
		Lift:         5,
		HUDMargin:    10,
		HUDHeight:    10,
	}

	Animations = defaultAnimations()

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}
}
