package config

// Entity kinds. An entity's animation tag is "<kind>/<action>".
const (
	KindPlayer = "player"
	KindEnemy  = "enemy"
	KindBoss   = "boss"
)

// ActionID names the pose an entity is in.
type ActionID string

const (
	ActionIdle      ActionID = "idle"
	ActionRun       ActionID = "run"
	ActionJump      ActionID = "jump"
	ActionSlide     ActionID = "slide"
	ActionWallSlide ActionID = "wall_slide"
)

// Particle kinds. Their animation tag is "particles/<kind>".
const (
	ParticleDash = "particle"
	ParticleLeaf = "leaf"
)

// Spawner variants of the "spawners" tile type.
const (
	SpawnerType   = "spawners"
	SpawnerPlayer = 0
	SpawnerEnemy  = 1
	SpawnerBoss   = 2

	LeafTreeType    = "large_decor"
	LeafTreeVariant = 2
)

// Sound tags handed to the effects sink.
const (
	SoundJump  = "jump"
	SoundDash  = "dash"
	SoundHit   = "hit"
	SoundDeath = "death"
	SoundShoot = "shoot"
	SoundSlash = "slash"
)

// AnimationTag joins a kind and action into an asset key.
func AnimationTag(kind string, action ActionID) string {
	return kind + "/" + string(action)
}

// ParticleTag is the asset key for a particle kind.
func ParticleTag(kind string) string {
	return "particles/" + kind
}
