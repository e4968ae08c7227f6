package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(255, 255, 255) // White canvas
	RgbWall       = tcell.NewRGBColor(0, 0, 0)       // Black frame
	RgbGray       = tcell.NewRGBColor(127, 127, 127) // Status text and spawn box
	RgbDensityBar = tcell.NewRGBColor(200, 0, 0)     // Red density meter
	RgbText       = tcell.NewRGBColor(0, 0, 0)
)

// ToTcell converts a body color to a terminal color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
