package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/collider/parameter"
	"github.com/lixenwraith/collider/physics"
	"github.com/lixenwraith/collider/spawn"
	"github.com/lixenwraith/collider/vmath"
)

// CellMapper converts a screen cell to world coordinates
type CellMapper interface {
	ToWorld(x, y int) vmath.Vec2
}

// buttonState is the last seen mouse button mask, tcell only reports levels
type buttonState struct {
	left, right bool
}

// HandleEvent applies one terminal event, returns false when the user asked to quit
func (g *Game) HandleEvent(ev tcell.Event, m CellMapper) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventMouse:
		g.handleMouse(ev, m)
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		g.setDirection(physics.Up)
	case tcell.KeyDown:
		g.setDirection(physics.Down)
	case tcell.KeyLeft:
		g.setDirection(physics.Left)
	case tcell.KeyRight:
		g.setDirection(physics.Right)
	case tcell.KeyRune:
		return g.handleRune(ev.Rune())
	}
	return true
}

func (g *Game) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'g':
		g.gravityOn = !g.gravityOn
		logf(levelWarning, "Gravity: %s", onOff(g.gravityOn))
	case 'p':
		g.paused = !g.paused
		if g.paused {
			g.dropHolds()
		}
		logf(levelWarning, "Paused: %t", g.paused)
	case 'r':
		n := g.world.Clear()
		g.selected = nil
		logf(levelWarning, "Removed all balls: %d", n)
	case 'v':
		g.showVectors = !g.showVectors
	case 'b':
		g.showBox = !g.showBox
	case 'c':
		g.cyclePlanet(1)
	case 'C':
		g.cyclePlanet(-1)
	case '+', '=':
		g.adjustGravity(parameter.GravityCustomStep)
	case '-', '_':
		g.adjustGravity(-parameter.GravityCustomStep)
	case 'e':
		g.adjustRestitution(parameter.RestitutionStep)
	case 'E':
		g.adjustRestitution(-parameter.RestitutionStep)
	case 'd':
		g.densityHold = !g.densityHold
		if g.densityHold {
			g.density.Reset()
		}
	case 'l':
		g.logState()
	case 'm':
		g.muted = !g.tones.ToggleMute()
	case '?':
		g.showControls = !g.showControls
		if g.showControls {
			g.dropHolds()
		}
	}
	return true
}

// dropHolds discards the ball being sized and stops the density meter
func (g *Game) dropHolds() {
	g.preview = nil
	g.densityHold = false
}

func (g *Game) handleMouse(ev *tcell.EventMouse, m CellMapper) {
	x, y := ev.Position()
	pos := m.ToWorld(x, y)
	g.cursor = pos

	buttons := ev.Buttons()
	now := buttonState{
		left:  buttons&tcell.Button1 != 0,
		right: buttons&tcell.Button2 != 0,
	}
	prev := g.buttons
	g.buttons = now

	if g.showControls {
		return
	}

	switch {
	case now.left && !prev.left:
		g.leftPress(pos)
	case !now.left && prev.left:
		g.leftRelease()
	}
	if now.right && !prev.right {
		g.rightPress(pos)
	}
}

// leftPress selects the ball under pos, or starts sizing a new one inside the spawn box
func (g *Game) leftPress(pos vmath.Vec2) {
	if g.preview != nil {
		return
	}
	if b := g.world.Select(pos); b != nil {
		g.selected = b
		g.blip()
		logf(levelInfo, "Selected: %s", b)
		return
	}
	g.selected = nil

	if g.Paused() || !inSpawnBox(pos) {
		return
	}
	g.radius.Reset()
	g.preview = &spawn.Request{
		Color:    spawn.RandomColor(g.rng),
		Radius:   g.radius.Next(),
		Position: pos,
		Density:  g.densityNow,
	}
}

// leftRelease launches the sized ball toward the center of the drag
func (g *Game) leftRelease() {
	if g.preview == nil {
		return
	}
	req := *g.preview
	g.preview = nil

	req.Velocity = req.Position.Sub(g.cursor)
	req.Density = g.densityNow

	b, err := spawn.Apply(g.world, req)
	if err != nil {
		logf(levelWarning, "Spawn rejected: %v", err)
		return
	}
	logf(levelInfo, "Created: %s", b)
}

// rightPress cancels the pending ball or removes the ball under pos
func (g *Game) rightPress(pos vmath.Vec2) {
	if g.preview != nil {
		g.preview = nil
		g.blip()
		logf(levelWarning, "Spawn cancelled")
		return
	}
	b := g.world.Select(pos)
	if b == nil {
		return
	}
	g.world.Remove(b)
	if g.selected == b {
		g.selected = nil
	}
	g.blip()
	logf(levelWarning, "Removed: %s", b)
}

func (g *Game) setDirection(d physics.Direction) {
	g.direction = d
	logf(levelWarning, "Gravity direction: %s", d)
}

// cyclePlanet steps through planets ordered by gravity, a custom g restarts at either end
func (g *Game) cyclePlanet(step int) {
	n := len(g.planets)
	switch {
	case g.planet < 0 && step > 0:
		g.planet = 0
	case g.planet < 0:
		g.planet = n - 1
	default:
		g.planet = ((g.planet+step)%n + n) % n
	}
	logf(levelWarning, "Gravity: %s (%.4f m/s²)", g.planets[g.planet], g.Gravity())
}

// adjustGravity switches to a custom g and moves it by delta
func (g *Game) adjustGravity(delta float64) {
	v := vmath.ClampScalar(roundStep(g.Gravity()+delta), parameter.GravityCustomMin, parameter.GravityCustomMax)
	g.planet = -1
	g.customG = v
	logf(levelWarning, "Gravity: custom (%.2f m/s²)", v)
}

func (g *Game) adjustRestitution(delta float64) {
	g.restitution = vmath.ClampScalar(roundStep(g.restitution+delta), 0, 1)
	logf(levelWarning, "Restitution: %.3f", g.restitution)
}

// logState dumps parameters and every ball
func (g *Game) logState() {
	logf(levelInfo, "State: gravity %s %s %.4f, e=%.3f, paused=%t, balls=%d",
		onOff(g.gravityOn), g.direction, g.Gravity(), g.restitution, g.Paused(), g.world.Len())
	for _, b := range g.world.Bodies() {
		logf(levelInfo, "%s", b)
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
