package menu

import (
	"testing"

	"github.com/vovakirdan/snake/internal/core"
)

// windowLayout matches the default 800x600 window configuration.
func windowLayout() Layout {
	return Layout{
		ScreenW: 800,
		ButtonW: 200,
		ButtonH: 50,
		Top:     200,
		Spacing: 200,
	}
}

func TestNewLayout(t *testing.T) {
	m := New(windowLayout())
	buttons := m.Buttons()

	if len(buttons) != 2 {
		t.Fatalf("Expected 2 buttons, got %d", len(buttons))
	}

	play, exit := buttons[0], buttons[1]
	if play.Label != "Play" || play.Choice != ChoicePlay {
		t.Errorf("First button should be Play, got %+v", play)
	}
	if exit.Label != "Exit" || exit.Choice != ChoiceExit {
		t.Errorf("Second button should be Exit, got %+v", exit)
	}
	if play.Rect != core.NewRect(300, 200, 200, 50) {
		t.Errorf("Play rect = %+v", play.Rect)
	}
	if exit.Rect != core.NewRect(300, 400, 200, 50) {
		t.Errorf("Exit rect = %+v", exit.Rect)
	}
	if play.Color != PlayColor || exit.Color != ExitColor {
		t.Error("Buttons should be blue and red")
	}
}

func TestClick(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		expected Choice
	}{
		{"play center", 400, 225, ChoicePlay},
		{"play top-left corner", 300, 200, ChoicePlay},
		{"play right edge exclusive", 500, 225, ChoiceNone},
		{"play bottom edge exclusive", 400, 250, ChoiceNone},
		{"exit center", 400, 425, ChoiceExit},
		{"between buttons", 400, 300, ChoiceNone},
		{"background", 10, 10, ChoiceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(windowLayout())
			if got := m.Click(tt.x, tt.y); got != tt.expected {
				t.Errorf("Click(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestHover(t *testing.T) {
	m := New(windowLayout())

	if !m.Hover(400, 425) {
		t.Fatal("Hover over Exit should report true")
	}
	if m.Focus() != 1 {
		t.Errorf("Focus should move to Exit, got %d", m.Focus())
	}
	if m.Hover(0, 0) {
		t.Error("Hover over background should report false")
	}
	if m.Focus() != 1 {
		t.Error("Focus should stay when hovering the background")
	}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		actions  []core.Action
		expected Choice
	}{
		{"nothing", nil, ChoiceNone},
		{"escape exits", []core.Action{core.ActionBack}, ChoiceExit},
		{"quit exits", []core.Action{core.ActionQuit}, ChoiceExit},
		{"start plays", []core.Action{core.ActionStart}, ChoicePlay},
		{"confirm focused play", []core.Action{core.ActionConfirm}, ChoicePlay},
		{"back wins over start", []core.Action{core.ActionStart, core.ActionBack}, ChoiceExit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(windowLayout())
			input := core.NewInputFrame()
			for _, a := range tt.actions {
				input.Set(a)
			}
			if got := m.Handle(input); got != tt.expected {
				t.Errorf("Handle = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestHandleFocus(t *testing.T) {
	m := New(windowLayout())
	input := core.NewInputFrame()

	input.Set(core.ActionUp)
	m.Handle(input)
	if m.Focus() != 0 {
		t.Errorf("Focus should clamp at the first button, got %d", m.Focus())
	}

	input.Clear()
	input.Set(core.ActionDown)
	m.Handle(input)
	m.Handle(input)
	if m.Focus() != 1 {
		t.Errorf("Focus should clamp at the last button, got %d", m.Focus())
	}

	input.Clear()
	input.Set(core.ActionConfirm)
	if got := m.Handle(input); got != ChoiceExit {
		t.Errorf("Confirm on Exit should exit, got %v", got)
	}
}
