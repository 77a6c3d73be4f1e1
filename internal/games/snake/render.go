package snake

import (
	"fmt"

	"github.com/vovakirdan/snake/internal/core"
)

// Terminal layout. A grid cell is two characters wide so cells look square.
const (
	hudHeight = 2
	cellChars = 2
)

// FieldSize returns the grid that fits a terminal screen of the given size,
// leaving room for the HUD and the field border.
func FieldSize(screenW, screenH int) (int, int) {
	return (screenW - 2) / cellChars, screenH - hudHeight - 2
}

// Render draws the game to a character screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	field := core.NewRect(0, hudHeight, g.cfg.GridW*cellChars+2, g.cfg.GridH+2)
	dst.DrawBox(field, core.ColorGray)

	if g.hasFood {
		g.drawCell(dst, g.food, '█', core.ColorWhite)
	}
	for i, seg := range g.snake.Body {
		if i == 0 {
			g.drawCell(dst, seg, '█', core.ColorBrightGreen)
		} else {
			g.drawCell(dst, seg, '█', core.ColorGreen)
		}
	}

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawCell fills one grid cell inside the field border.
func (g *Game) drawCell(dst *core.Screen, p core.Point, r rune, c core.Color) {
	sx := 1 + p.X*cellChars
	sy := hudHeight + 1 + p.Y
	for i := 0; i < cellChars; i++ {
		dst.SetColored(sx+i, sy, r, c)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	hud := fmt.Sprintf(" Snake | Score: %d  Best: %d  Length: %d", st.Score, st.Best, st.Length)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDefault)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
