package components

import (
	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/assets/animations"
	"github.com/automoto/ninja-platformer/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Kind             string // "player", "enemy", "boss"
	Action           config.ActionID
	CurrentAnimation *animations.Animation
}

// SetAction switches pose. Switching to the current pose keeps the cursor
// running; a new pose starts a fresh cursor. A tag the provider does not
// know leaves the entity without an animation.
func (a *AnimationData) SetAction(p assets.Provider, action config.ActionID) {
	if a.Action == action && a.CurrentAnimation != nil {
		return
	}
	a.Action = action
	seq, ok := p.Lookup(config.AnimationTag(a.Kind, action))
	if !ok {
		a.CurrentAnimation = nil
		return
	}
	a.CurrentAnimation = animations.NewAnimation(seq)
}

var Animation = donburi.NewComponentType[AnimationData]()
