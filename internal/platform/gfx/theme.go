package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Palette.
var (
	ColorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorSnake      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorSnakeHead  = color.RGBA{R: 120, G: 255, B: 120, A: 255}
	ColorFood       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorCellBorder = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorTextDim    = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	ColorFocus      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorOverlay    = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// fontFace is used for all window text.
var fontFace = text.NewGoXFace(basicfont.Face7x13)

// lighten mixes c towards white by factor in [0, 1].
func lighten(c color.RGBA, factor float64) color.RGBA {
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*factor)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
