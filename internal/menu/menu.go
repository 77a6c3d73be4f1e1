// Package menu implements the main menu: a column of clickable buttons that
// either start a game or exit. It is independent of any rendering library;
// frontends draw the buttons and feed it clicks and input frames.
package menu

import (
	"image/color"

	"github.com/vovakirdan/snake/internal/core"
)

// Choice is the outcome of a menu interaction.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoicePlay
	ChoiceExit
)

func (c Choice) String() string {
	switch c {
	case ChoicePlay:
		return "play"
	case ChoiceExit:
		return "exit"
	default:
		return "none"
	}
}

// Button colors.
var (
	PlayColor = color.RGBA{R: 0, G: 0, B: 155, A: 255}
	ExitColor = color.RGBA{R: 155, G: 0, B: 0, A: 255}
)

// Button is a labelled rectangle that yields a Choice when activated.
type Button struct {
	Label  string
	Rect   core.Rect
	Color  color.RGBA // Fill for pixel frontends
	Tint   core.Color // Fill for the terminal
	Choice Choice
}

// Layout positions the buttons. Units are whatever the frontend uses:
// pixels in the window, cells in the terminal.
type Layout struct {
	ScreenW int
	ButtonW int
	ButtonH int
	Top     int // Y of the first button
	Spacing int // Distance between button tops
}

// Menu holds the buttons and keyboard/gamepad focus.
type Menu struct {
	buttons []Button
	focus   int
}

// New creates a menu with "Play" and "Exit" buttons centered horizontally.
func New(l Layout) *Menu {
	x := (l.ScreenW - l.ButtonW) / 2
	return &Menu{
		buttons: []Button{
			{
				Label:  "Play",
				Rect:   core.NewRect(x, l.Top, l.ButtonW, l.ButtonH),
				Color:  PlayColor,
				Tint:   core.ColorBlue,
				Choice: ChoicePlay,
			},
			{
				Label:  "Exit",
				Rect:   core.NewRect(x, l.Top+l.Spacing, l.ButtonW, l.ButtonH),
				Color:  ExitColor,
				Tint:   core.ColorRed,
				Choice: ChoiceExit,
			},
		},
	}
}

// Buttons returns the menu buttons in display order.
func (m *Menu) Buttons() []Button {
	return m.buttons
}

// Focus returns the index of the focused button.
func (m *Menu) Focus() int {
	return m.focus
}

// Click returns the choice of the button under (x, y), or ChoiceNone.
func (m *Menu) Click(x, y int) Choice {
	for i, b := range m.buttons {
		if b.Rect.Contains(x, y) {
			m.focus = i
			return b.Choice
		}
	}
	return ChoiceNone
}

// Hover moves focus to the button under (x, y).
// Returns false if the point is not over a button.
func (m *Menu) Hover(x, y int) bool {
	for i, b := range m.buttons {
		if b.Rect.Contains(x, y) {
			m.focus = i
			return true
		}
	}
	return false
}

// Handle applies one frame of keyboard or gamepad input.
// Back and Quit exit, Start plays, Up/Down move focus and Confirm
// activates the focused button.
func (m *Menu) Handle(input core.InputFrame) Choice {
	switch {
	case input.Has(core.ActionQuit), input.Has(core.ActionBack):
		return ChoiceExit
	case input.Has(core.ActionStart):
		return ChoicePlay
	}

	last := len(m.buttons) - 1
	if input.Has(core.ActionUp) {
		m.focus = core.Clamp(m.focus-1, 0, last)
	}
	if input.Has(core.ActionDown) {
		m.focus = core.Clamp(m.focus+1, 0, last)
	}

	if input.Has(core.ActionConfirm) {
		return m.buttons[m.focus].Choice
	}
	return ChoiceNone
}
