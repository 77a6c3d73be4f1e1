package gfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/menu"
)

// drawCell fills one grid cell with a 1 px black border.
func drawCell(dst *ebiten.Image, p core.Point, size int, clr color.Color) {
	x, y, s := float32(p.X*size), float32(p.Y*size), float32(size)
	vector.FillRect(dst, x, y, s, s, clr, false)
	vector.StrokeRect(dst, x, y, s, s, 1, ColorCellBorder, false)
}

// drawText draws a line of text with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, fontFace, op)
}

// drawTextCentered draws a line of text centered on (cx, cy).
func drawTextCentered(dst *ebiten.Image, s string, cx, cy int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx), float64(cy))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, fontFace, op)
}

// drawButton draws a menu button; the focused one gets a highlight border.
func drawButton(dst *ebiten.Image, b menu.Button, focused bool) {
	x, y := float32(b.Rect.X), float32(b.Rect.Y)
	w, h := float32(b.Rect.W), float32(b.Rect.H)

	fill := b.Color
	if focused {
		fill = lighten(b.Color, 0.2)
	}
	vector.FillRect(dst, x, y, w, h, fill, false)
	if focused {
		vector.StrokeRect(dst, x, y, w, h, 2, ColorFocus, false)
	}

	cx, cy := b.Rect.Center()
	drawTextCentered(dst, b.Label, cx, cy, ColorText)
}

// drawMenu draws the title, the buttons and a controls hint.
func drawMenu(dst *ebiten.Image, m *menu.Menu, title string) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	drawTextCentered(dst, title, w/2, 100, ColorText)
	for i, b := range m.Buttons() {
		drawButton(dst, b, i == m.Focus())
	}
	drawTextCentered(dst, "G: play   Esc: exit   Arrows/D-pad: select   Enter/A: confirm", w/2, h-20, ColorTextDim)
}

// drawGame draws the food, the snake and the HUD.
func drawGame(dst *ebiten.Image, g *snake.Game, cellSize int) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	if g.TooSmall() {
		drawTextCentered(dst, "Window too small", w/2, h/2, ColorText)
		return
	}

	snap := g.Snapshot()
	if snap.HasFood {
		drawCell(dst, snap.Food, cellSize, ColorFood)
	}
	// Tail first so the head stays on top
	for i := len(snap.Body) - 1; i >= 0; i-- {
		clr := ColorSnake
		if i == 0 {
			clr = ColorSnakeHead
		}
		drawCell(dst, snap.Body[i], cellSize, clr)
	}

	hud := fmt.Sprintf("Score: %d  Best: %d  Length: %d", snap.Score, snap.Best, snap.Length)
	drawText(dst, hud, 8, 4, ColorText)

	if g.Paused() {
		vector.FillRect(dst, 0, 0, float32(w), float32(h), ColorOverlay, false)
		drawTextCentered(dst, "Paused", w/2, h/2, ColorText)
		drawTextCentered(dst, "Press P to continue, Esc for menu", w/2, h/2+20, ColorTextDim)
	}
}
