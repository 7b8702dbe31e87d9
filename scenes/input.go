package scenes

import (
	"github.com/automoto/ninja-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Control is a logical player control.
type Control int

const (
	ControlLeft Control = iota
	ControlRight
	ControlJump
	ControlFastFall
	ControlDash
	ControlCount // Must be last - used for array sizing
)

// InputBinding is the keys and pad buttons behind one control.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Scheme maps every control to its binding.
type Scheme [ControlCount]InputBinding

var gamepadBindings = Scheme{
	ControlLeft:     {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
	ControlRight:    {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
	ControlJump:     {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
	ControlFastFall: {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}},
	ControlDash:     {StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}},
}

// ArrowScheme is arrows to move, up to jump, down to fall faster and X to dash.
var ArrowScheme = withGamepad(Scheme{
	ControlLeft:     {Keys: []ebiten.Key{ebiten.KeyLeft}},
	ControlRight:    {Keys: []ebiten.Key{ebiten.KeyRight}},
	ControlJump:     {Keys: []ebiten.Key{ebiten.KeyUp}},
	ControlFastFall: {Keys: []ebiten.Key{ebiten.KeyDown}},
	ControlDash:     {Keys: []ebiten.Key{ebiten.KeyX}},
})

// WASDScheme is WASD with space to dash.
var WASDScheme = withGamepad(Scheme{
	ControlLeft:     {Keys: []ebiten.Key{ebiten.KeyA}},
	ControlRight:    {Keys: []ebiten.Key{ebiten.KeyD}},
	ControlJump:     {Keys: []ebiten.Key{ebiten.KeyW}},
	ControlFastFall: {Keys: []ebiten.Key{ebiten.KeyS}},
	ControlDash:     {Keys: []ebiten.Key{ebiten.KeySpace}},
})

// ToggleSchemeKey swaps between the two keyboard schemes.
const ToggleSchemeKey = ebiten.KeyC

func withGamepad(s Scheme) Scheme {
	for c := range s {
		s[c].StandardGamepadButtons = gamepadBindings[c].StandardGamepadButtons
	}
	return s
}

// InputHandler turns key state into player intents.
type InputHandler struct {
	UseWASD bool
	held    [ControlCount]bool
}

func (h *InputHandler) scheme() *Scheme {
	if h.UseWASD {
		return &WASDScheme
	}
	return &ArrowScheme
}

// Update polls input and forwards it to the simulation. It reports whether
// the scheme was toggled.
func (h *InputHandler) Update(world *ecs.ECS) bool {
	toggled := inpututil.IsKeyJustPressed(ToggleSchemeKey)
	if toggled {
		h.UseWASD = !h.UseWASD
		// release everything bound to the old scheme
		h.held = [ControlCount]bool{}
		systems.SetMovementIntent(world, systems.MoveLeft, false)
		systems.SetMovementIntent(world, systems.MoveRight, false)
		systems.SetFastFall(world, false)
	}

	s := h.scheme()
	for c := Control(0); c < ControlCount; c++ {
		pressed := isPressed(s[c])
		if pressed == h.held[c] {
			continue
		}
		h.held[c] = pressed
		h.apply(world, c, pressed)
	}
	return toggled
}

func (h *InputHandler) apply(world *ecs.ECS, c Control, pressed bool) {
	switch c {
	case ControlLeft:
		systems.SetMovementIntent(world, systems.MoveLeft, pressed)
	case ControlRight:
		systems.SetMovementIntent(world, systems.MoveRight, pressed)
	case ControlFastFall:
		systems.SetFastFall(world, pressed)
	case ControlJump:
		if pressed {
			systems.RequestJump(world)
		}
	case ControlDash:
		if pressed {
			systems.RequestDash(world)
		}
	}
}

func isPressed(b InputBinding) bool {
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}
