package scenes

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/systems"
	"github.com/automoto/ninja-platformer/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"golang.org/x/image/colornames"
)

// Camera eases toward the player a thirtieth of the way each tick.
type Camera struct {
	Scroll dmath.Vec2
}

func (c *Camera) Update(world *ecs.ECS) {
	entry, ok := systems.GetPlayer(world)
	if !ok {
		return
	}
	center := components.Physics.Get(entry).Center()
	c.Scroll.X += (center.X - float64(cfg.C.Width)/2 - c.Scroll.X) / 30
	c.Scroll.Y += (center.Y - float64(cfg.C.Height)/2 - c.Scroll.Y) / 30
}

// Offset is the integer scroll plus this tick's random shake.
func (c *Camera) Offset(world *ecs.ECS) (float64, float64) {
	x, y := math.Floor(c.Scroll.X), math.Floor(c.Scroll.Y)
	if shake := systems.GetScreenShake(world); shake > 0 {
		x += rand.Float64()*shake - shake/2
		y += rand.Float64()*shake - shake/2
	}
	return x, y
}

var tileColors = map[string]color.Color{
	"grass":       colornames.Forestgreen,
	"stone":       colornames.Slategray,
	"decor":       colornames.Darkolivegreen,
	"large_decor": colornames.Darkgreen,
}

var actionColors = map[cfg.ActionID]color.Color{
	cfg.ActionIdle:      colornames.Lightskyblue,
	cfg.ActionRun:       colornames.Deepskyblue,
	cfg.ActionJump:      colornames.Gold,
	cfg.ActionWallSlide: colornames.Orange,
}

// DrawWorld renders the simulation with plain shapes. Sprites stand in as
// rectangles tinted by action, with the animation image index shown as a
// tick along the top edge.
func DrawWorld(world *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	level := systems.GetLevel(world)
	if level == nil || level.Tiles == nil {
		return
	}
	drawTiles(screen, level.Tiles, ox, oy)

	for _, e := range level.Enemies {
		if world.World.Valid(e) {
			drawBody(screen, world.World.Entry(e), colornames.Indianred, ox, oy)
		}
	}
	if entry, ok := systems.GetPlayer(world); ok && level.DeadTimer == 0 {
		if !components.Player.Get(entry).Hidden() {
			drawBody(screen, entry, nil, ox, oy)
		}
	}

	for _, e := range level.Projectiles {
		if !world.World.Valid(e) {
			continue
		}
		p := components.Projectile.Get(world.World.Entry(e))
		vector.FillRect(screen, float32(p.Pos.X-ox-2), float32(p.Pos.Y-oy-1), 4, 2, colornames.Yellow, false)
	}

	components.Spark.Each(world.World, func(e *donburi.Entry) {
		s := components.Spark.Get(e)
		tail := s.Speed * 3
		x1 := s.Pos.X - math.Cos(s.Angle)*tail
		y1 := s.Pos.Y - math.Sin(s.Angle)*tail
		vector.StrokeLine(screen, float32(s.Pos.X-ox), float32(s.Pos.Y-oy), float32(x1-ox), float32(y1-oy), 1, color.White, false)
	})

	components.HealthBar.Each(world.World, func(e *donburi.Entry) {
		drawHealthBar(world, screen, components.HealthBar.Get(e), ox, oy)
	})

	components.Particle.Each(world.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		clr := color.Color(colornames.Lavender)
		if p.Kind == cfg.ParticleLeaf {
			clr = colornames.Yellowgreen
		}
		vector.FillRect(screen, float32(p.Pos.X-ox), float32(p.Pos.Y-oy), 1, 1, clr, false)
	})

	drawHUD(world, screen)
	drawTransition(screen, level.Transition)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("level %d", level.Index))
}

func drawTiles(screen *ebiten.Image, tiles *tilemap.Index, ox, oy float64) {
	ts := float64(tiles.TileSize())
	for _, t := range tiles.OffGrid() {
		vector.FillRect(screen, float32(float64(t.Pos.X)-ox), float32(float64(t.Pos.Y)-oy), float32(ts), float32(ts), tileColor(t.Type), false)
	}

	// only cells on screen
	x0, y0 := int(math.Floor(ox/ts)), int(math.Floor(oy/ts))
	x1, y1 := x0+cfg.C.Width/int(ts)+1, y0+cfg.C.Height/int(ts)+1
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			t, ok := tiles.Get(tilemap.Coord{X: x, Y: y})
			if !ok {
				continue
			}
			px, py := float32(float64(x)*ts-ox), float32(float64(y)*ts-oy)
			vector.FillRect(screen, px, py, float32(ts), float32(ts), tileColor(t.Type), false)
			// variant marker
			vector.FillRect(screen, px+float32(t.Variant%3)*5+1, py+float32(t.Variant/3)*5+1, 3, 3, colornames.Black, false)
		}
	}
}

func tileColor(tileType string) color.Color {
	if c, ok := tileColors[tileType]; ok {
		return c
	}
	return colornames.Dimgray
}

func drawBody(screen *ebiten.Image, e *donburi.Entry, clr color.Color, ox, oy float64) {
	ph := components.Physics.Get(e)
	anim := components.Animation.Get(e)
	if clr == nil {
		clr = actionColors[anim.Action]
		if clr == nil {
			clr = colornames.White
		}
	}
	x, y := float32(ph.Pos.X-ox), float32(ph.Pos.Y-oy)
	vector.FillRect(screen, x, y, float32(ph.Width), float32(ph.Height), clr, false)

	eye := x + float32(ph.Width) - 3
	if ph.Flip {
		eye = x + 1
	}
	vector.FillRect(screen, eye, y+3, 2, 2, colornames.Black, false)

	if anim.CurrentAnimation != nil {
		frame := anim.CurrentAnimation.Image()
		vector.FillRect(screen, x+float32(frame%int(ph.Width)), y, 1, 1, colornames.White, false)
	}
}

func drawHealthBar(world *ecs.ECS, screen *ebiten.Image, hb *components.HealthBarData, ox, oy float64) {
	if !hb.Visible || !world.World.Valid(hb.Target) {
		return
	}
	health := components.Health.Get(world.World.Entry(hb.Target))
	fill, outline := systems.HealthBarGeometry(hb, health)
	vector.FillRect(screen, float32(outline.X-ox), float32(outline.Y-oy), float32(outline.W), float32(outline.H), colornames.Black, false)
	vector.FillRect(screen, float32(fill.X-ox), float32(fill.Y-oy), float32(fill.W), float32(fill.H), hb.Color, false)
}

func drawHUD(world *ecs.ECS, screen *ebiten.Image) {
	entry, ok := systems.GetPlayer(world)
	if !ok {
		return
	}
	bar := components.Player.Get(entry).HUDBar
	health := components.Health.Get(entry)
	vector.StrokeRect(screen, float32(bar.X-1), float32(bar.Y-1), float32(health.Max+2), float32(bar.H+2), 1, colornames.Black, false)
	vector.FillRect(screen, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), cfg.Green, false)
}

// drawTransition darkens the screen while a level fades in or out.
func drawTransition(screen *ebiten.Image, transition int) {
	if transition == 0 {
		return
	}
	alpha := math.Min(1, math.Abs(float64(transition))/float64(cfg.Level.TransitionTicks))
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: uint8(alpha * 255)}, false)
}
