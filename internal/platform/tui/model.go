package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/vovakirdan/snake/internal/config"
	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/menu"
)

// Scene is the active screen of the terminal frontend.
type Scene int

const (
	SceneMenu Scene = iota
	ScenePlaying
)

func (s Scene) String() string {
	if s == ScenePlaying {
		return "playing"
	}
	return "menu"
}

// Model is the Bubble Tea model for the menu and the snake game.
type Model struct {
	cfg     config.Config
	logger  *log.Logger
	session *log.Logger
	keys    KeyMap
	help    help.Model

	scene      Scene
	menu       *menu.Menu
	game       *snake.Game
	screen     *core.Screen
	inputFrame core.InputFrame
	width      int
	height     int
	quitting   bool
}

// NewModel creates a model for a terminal of the given size, starting at the menu.
func NewModel(cfg config.Config, logger *log.Logger, width, height int) Model {
	m := Model{
		cfg:        cfg,
		logger:     logger,
		session:    logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		scene:      SceneMenu,
		game:       snake.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.resize(width, height)
	return m
}

// Scene returns the active scene.
func (m Model) Scene() Scene {
	return m.scene
}

// Game returns the snake game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Menu returns the main menu.
func (m Model) Menu() *menu.Menu {
	return m.menu
}

// Quitting reports whether the model asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		oldW, oldH := snake.FieldSize(m.screen.Width(), m.screen.Height())
		m.resize(msg.Width, msg.Height)
		// The field only restarts when its size actually changes
		newW, newH := snake.FieldSize(m.screen.Width(), m.screen.Height())
		if m.scene == ScenePlaying && (newW != oldW || newH != oldH) {
			m.startGame()
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.scene {
	case SceneMenu:
		frame := core.NewInputFrame()
		frame.Set(action)
		return m.applyChoice(m.menu.Handle(frame))

	case ScenePlaying:
		if action == core.ActionBack {
			m.setScene(SceneMenu)
			return m, nil
		}
		// Applied on the next tick
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse processes clicks and hover on the menu buttons.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.scene != SceneMenu {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.menu.Hover(msg.X, msg.Y)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m.applyChoice(m.menu.Click(msg.X, msg.Y))
		}
	}
	return m, nil
}

func (m Model) applyChoice(choice menu.Choice) (tea.Model, tea.Cmd) {
	switch choice {
	case menu.ChoicePlay:
		m.startGame()
	case menu.ChoiceExit:
		m.logger.Info("exit selected")
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.scene == ScenePlaying {
		result := m.game.Step(m.inputFrame)
		switch {
		case result.Ate:
			m.session.Debug("food eaten", "score", result.State.Score, "length", result.State.Length)
		case result.Crashed:
			m.session.Debug("self collision, snake reset", "best", result.State.Best)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.cfg.FPS)
}

// resize fits the screen buffer and menu layout to the terminal.
// The last row is kept for the key help line.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	screenH := core.Max(1, height-1)
	if m.screen == nil {
		m.screen = core.NewScreen(width, screenH)
	} else {
		m.screen.Resize(width, screenH)
	}

	focus := 0
	if m.menu != nil {
		focus = m.menu.Focus()
	}
	m.menu = menu.New(menuLayout(width, screenH))
	if focus > 0 {
		// Restore keyboard focus lost by rebuilding the buttons
		b := m.menu.Buttons()[core.Min(focus, len(m.menu.Buttons())-1)]
		m.menu.Hover(b.Rect.X, b.Rect.Y)
	}
}

// startGame resets the game for the current terminal size with a fresh
// seed and session id.
func (m *Model) startGame() {
	rc := m.cfg.RuntimeConfig()
	rc.GridW, rc.GridH = snake.FieldSize(m.screen.Width(), m.screen.Height())
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	m.session = m.logger.With("session", uuid.NewString())
	m.game.Reset(rc)
	m.inputFrame.Clear()
	m.session.Debug("game started", "grid", fmt.Sprintf("%dx%d", rc.GridW, rc.GridH), "seed", rc.Seed)
	m.setScene(ScenePlaying)
}

func (m *Model) setScene(s Scene) {
	if m.scene != s {
		m.logger.Debug("scene changed", "from", m.scene, "to", s)
	}
	m.scene = s
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	bindings := m.keys.MenuHelp()
	switch m.scene {
	case SceneMenu:
		renderMenu(m.screen, m.menu, m.cfg.Window.Title)
	case ScenePlaying:
		m.game.Render(m.screen)
		bindings = m.keys.GameHelp()
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.ShortHelpView(bindings))
}

// Run starts the Bubble Tea program and blocks until the player exits or ctx is cancelled.
// If play is true the menu is skipped.
func Run(ctx context.Context, cfg config.Config, logger *log.Logger, play bool) error {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	model := NewModel(cfg, logger, width, height)
	if play {
		model.startGame()
	}

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Hover moves menu focus
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		logger.Info("interrupted")
		return nil
	}
	if err != nil {
		return fmt.Errorf("terminal program: %w", err)
	}
	return nil
}
