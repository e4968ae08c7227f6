package render

import (
	"math"

	"github.com/lixenwraith/collider/vmath"
)

// CellAspect is the height/width ratio of a terminal cell
const CellAspect = 2.0

// Viewport maps y-up world coordinates in [0, Side]² onto a centered block of cells
type Viewport struct {
	OriginX, OriginY int
	Width, Height    int
	Side             float64

	// world units per column and per row
	sx, sy float64
}

// NewViewport fits the square world of edge side into cols×rows cells
func NewViewport(cols, rows int, side float64) Viewport {
	cols = max(cols, 1)
	rows = max(rows, 1)

	sx := math.Max(side/float64(cols), side/(float64(rows)*CellAspect))
	sy := sx * CellAspect

	w := min(int(math.Ceil(side/sx)), cols)
	h := min(int(math.Ceil(side/sy)), rows)

	return Viewport{
		OriginX: (cols - w) / 2,
		OriginY: (rows - h) / 2,
		Width:   w,
		Height:  h,
		Side:    side,
		sx:      sx,
		sy:      sy,
	}
}

// ToCell returns the cell containing world point p
func (v Viewport) ToCell(p vmath.Vec2) (x, y int) {
	x = v.OriginX + int(math.Floor(p[0]/v.sx))
	y = v.OriginY + int(math.Floor((v.Side-p[1])/v.sy))
	return x, y
}

// ToWorld returns the world point at the center of cell (x, y)
func (v Viewport) ToWorld(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		(float64(x-v.OriginX) + 0.5) * v.sx,
		v.Side - (float64(y-v.OriginY)+0.5)*v.sy,
	}
}

// Scale returns world units per column and per row
func (v Viewport) Scale() (sx, sy float64) {
	return v.sx, v.sy
}
