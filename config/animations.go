package config

// AnimationDef describes one image sequence: how many images it has, how
// many ticks each image shows, and whether it wraps.
type AnimationDef struct {
	Images   int  `yaml:"images"`
	Duration int  `yaml:"duration"`
	Loop     bool `yaml:"loop"`
}

// DefaultImageDuration is used when a definition leaves Duration at zero.
const DefaultImageDuration = 5

// Animations maps asset tags to their sequences. Image counts mirror the
// sprite folders the renderer ships with.
var Animations map[string]AnimationDef

func defaultAnimations() map[string]AnimationDef {
	return map[string]AnimationDef{
		"player/idle":       {Images: 22, Duration: 6, Loop: true},
		"player/run":        {Images: 8, Duration: 4, Loop: true},
		"player/jump":       {Images: 1, Loop: true},
		"player/slide":      {Images: 1, Loop: true},
		"player/wall_slide": {Images: 1, Loop: true},

		"enemy/idle": {Images: 16, Duration: 6, Loop: true},
		"enemy/run":  {Images: 8, Duration: 4, Loop: true},

		"boss/idle":  {Images: 16, Duration: 6, Loop: true},
		"boss/run":   {Images: 8, Loop: true},
		"boss/jump":  {Images: 1, Loop: true},
		"boss/slash": {Images: 6, Loop: true},

		"particles/leaf":     {Images: 18, Duration: 20},
		"particles/particle": {Images: 4, Duration: 6},
	}
}
