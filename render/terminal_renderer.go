package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/collider/parameter"
	"github.com/lixenwraith/collider/vmath"
)

// statusRows is the number of rows reserved under the arena
const statusRows = 2

// TerminalRenderer draws frames onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	view   Viewport
	side   float64
}

// NewTerminalRenderer creates a renderer for a square world of edge side
func NewTerminalRenderer(screen tcell.Screen, side float64) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, side: side}
	r.Resize()
	return r
}

// Resize recomputes the viewport from the current screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.view = NewViewport(r.width, r.height-statusRows, r.side)
}

// Viewport returns the active world/cell mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.view
}

// RenderFrame draws f and flushes the screen
func (r *TerminalRenderer) RenderFrame(f *Frame) {
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.Fill(' ', base)

	r.drawWalls(f, base)

	if f.ShowControls {
		r.drawControls(base)
		r.screen.Show()
		return
	}

	if f.ShowBox {
		r.drawSpawnBox(f, base)
	}
	for i := range f.Bodies {
		b := &f.Bodies[i]
		if f.ShowVectors {
			r.drawVector(b.Position, b.Position.Add(b.Velocity), base.Foreground(ToTcell(b.Color)))
		}
		r.drawDisk(b.Position, b.Radius, base.Foreground(ToTcell(b.Color)))
	}
	if f.Selected != nil {
		x, y := r.view.ToCell(f.Selected.Position)
		r.setCell(x, y, '◆', base.Foreground(RgbWall).Background(ToTcell(f.Selected.Color)))
	}
	if p := f.Preview; p != nil {
		style := base.Foreground(ToTcell(p.Color))
		r.drawVector(p.Center, p.Cursor, style)
		r.drawDisk(p.Center, p.Radius, style)
	}

	r.drawStatus(f, base)
	r.screen.Show()
}

// drawWalls frames the arena at the wall lines
func (r *TerminalRenderer) drawWalls(f *Frame, base tcell.Style) {
	style := base.Foreground(RgbWall)
	r.drawRect(f.Arena.Lower, f.Arena.Upper, style, '─', '│')
}

func (r *TerminalRenderer) drawSpawnBox(f *Frame, base tcell.Style) {
	r.drawRect(f.SpawnLower, f.SpawnUpper, base.Foreground(RgbGray), '┄', '┆')
}

// drawRect outlines the square [lo, hi]² in world units
func (r *TerminalRenderer) drawRect(lo, hi float64, style tcell.Style, horiz, vert rune) {
	x0, y0 := r.view.ToCell(vmath.Vec2{lo, hi})
	x1, y1 := r.view.ToCell(vmath.Vec2{hi, lo})
	x1 = min(x1, r.view.OriginX+r.view.Width-1)
	y1 = min(y1, r.view.OriginY+r.view.Height-1)

	for x := x0; x <= x1; x++ {
		r.setCell(x, y0, horiz, style)
		r.setCell(x, y1, horiz, style)
	}
	for y := y0; y <= y1; y++ {
		r.setCell(x0, y, vert, style)
		r.setCell(x1, y, vert, style)
	}
}

// drawDisk fills every cell whose center lies inside the disk, or the center cell when none does
func (r *TerminalRenderer) drawDisk(center vmath.Vec2, radius float64, style tcell.Style) {
	sx, sy := r.view.Scale()
	cx, cy := r.view.ToCell(center)
	rx := int(math.Ceil(radius/sx)) + 1
	ry := int(math.Ceil(radius/sy)) + 1

	filled := false
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			if vmath.Within(center, r.view.ToWorld(x, y), radius) {
				r.setCell(x, y, '█', style)
				filled = true
			}
		}
	}
	if !filled {
		r.setCell(cx, cy, '●', style)
	}
}

// drawVector plots a dotted segment from a to b
func (r *TerminalRenderer) drawVector(a, b vmath.Vec2, style tcell.Style) {
	sx, _ := r.view.Scale()
	steps := int(vmath.Distance(a, b)/sx) + 1
	for i := 1; i <= steps; i++ {
		p := a.Add(b.Sub(a).Mul(float64(i) / float64(steps)))
		x, y := r.view.ToCell(p)
		r.setCell(x, y, '·', style)
	}
}

func (r *TerminalRenderer) drawStatus(f *Frame, base tcell.Style) {
	s := f.Status
	gray := base.Foreground(RgbGray)
	row := r.height - statusRows

	state := "OFF"
	if s.GravityOn {
		state = "ON"
	}
	source := fmt.Sprintf("g = %.2f", s.G)
	if s.Planet != "" {
		source = s.Planet
	}
	line := fmt.Sprintf("GRAVITY %c: %s  %s  e = %.3f  balls: %d", s.Direction.Arrow(), state, source, s.Restitution, len(f.Bodies))
	if s.Muted {
		line += "  [MUTED]"
	}
	if s.Paused {
		line += "  PAUSED"
	}
	r.drawText(0, row, line, gray)

	switch {
	case f.Selected != nil:
		b := f.Selected
		info := fmt.Sprintf("Selected: radius %.2f  mass %.2f  density %.2f  position (%.2f, %.2f)  velocity (%.2f, %.2f)",
			b.Radius, b.Mass, b.Density, b.Position[0], b.Position[1], b.Velocity[0], b.Velocity[1])
		r.drawText(0, row+1, info, base.Foreground(RgbText))
	default:
		label := fmt.Sprintf("Density: %.2f ", f.Density)
		r.drawText(0, row+1, label, gray)
		if f.DensityHold {
			r.drawDensityBar(len([]rune(label)), row+1, f.Density, base)
		}
	}
}

// drawDensityBar renders the oscillating density as a horizontal meter
func (r *TerminalRenderer) drawDensityBar(x, y int, density float64, base tcell.Style) {
	const width = 28
	n := int(math.Round(density / parameter.DensityMax * width))
	style := base.Foreground(RgbDensityBar)
	for i := 0; i < width; i++ {
		ch := '░'
		if i < n {
			ch = '█'
		}
		r.setCell(x+i, y, ch, style)
	}
}

func (r *TerminalRenderer) drawControls(base tcell.Style) {
	top := max((r.height-len(Controls)-2)/2, 0)
	r.drawCentered(top, "CONTROLS", base.Bold(true))
	for i, line := range Controls {
		r.drawCentered(top+2+i, line, base)
	}
	r.drawCentered(top+3+len(Controls), "Press '?' to continue...", base.Foreground(RgbGray))
}

func (r *TerminalRenderer) drawCentered(y int, s string, style tcell.Style) {
	r.drawText(max((r.width-len([]rune(s)))/2, 0), y, s, style)
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.setCell(x, y, ch, style)
		x++
	}
}

// setCell clips to the screen
func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
