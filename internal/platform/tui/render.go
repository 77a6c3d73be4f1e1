package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/menu"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// menuLayout sizes the menu buttons in terminal cells.
func menuLayout(w, h int) menu.Layout {
	return menu.Layout{
		ScreenW: w,
		ButtonW: 16,
		ButtonH: 3,
		Top:     core.Max(3, h/3),
		Spacing: 5,
	}
}

// renderMenu draws the title and the buttons. The focused button is marked with arrows.
func renderMenu(dst *core.Screen, m *menu.Menu, title string) {
	dst.Clear()

	buttons := m.Buttons()
	if len(buttons) > 0 {
		dst.DrawTextCentered(core.Max(0, buttons[0].Rect.Y-3), title)
	}

	for i, b := range buttons {
		dst.DrawRect(b.Rect, '█', b.Tint)
		midX, midY := b.Rect.Center()
		dst.DrawTextColored(midX-len(b.Label)/2, midY, b.Label, core.ColorWhite)

		if i == m.Focus() {
			dst.SetColored(b.Rect.X-2, midY, '▶', core.ColorBrightYellow)
			dst.SetColored(b.Rect.Right()+1, midY, '◀', core.ColorBrightYellow)
		}
	}
}
