// Package gfx runs the game in a desktop window using Ebitengine.
// It handles the window loop, keyboard, mouse and gamepad input, and drawing.
package gfx

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/snake/internal/config"
	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/menu"
)

// Scene is the active screen of the window.
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

// App implements ebiten.Game for the menu and the snake game.
type App struct {
	cfg     config.Config
	logger  *log.Logger
	session *log.Logger // Logger carrying the current play session id

	scene Scene
	menu  *menu.Menu
	game  *snake.Game
	input *Input

	// Last cursor position seen by the menu. Hover only applies when the
	// cursor moves so a resting pointer does not override keyboard focus.
	cursorX, cursorY int
	cursorSeen       bool
}

// New creates the window application.
func New(cfg config.Config, logger *log.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
		scene:  SceneMenu,
		menu: menu.New(menu.Layout{
			ScreenW: cfg.Window.Width,
			ButtonW: cfg.Menu.ButtonWidth,
			ButtonH: cfg.Menu.ButtonHeight,
			Top:     cfg.Menu.ButtonTop,
			Spacing: cfg.Menu.ButtonSpacing,
		}),
		game:  snake.New(),
		input: NewInput(),
	}
}

// Run opens the window and blocks until the player exits or closes it.
// If play is true the menu is skipped.
func (a *App) Run(play bool) error {
	if play {
		a.startGame()
	}

	ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetTPS(a.cfg.FPS)

	a.logger.Info("window opened", "width", a.cfg.Window.Width, "height", a.cfg.Window.Height, "tps", a.cfg.FPS)
	err := ebiten.RunGame(a)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("window loop: %w", err)
	}
	a.logger.Info("window closed")
	return nil
}

// Update advances one tick. Returning ebiten.Termination ends the loop.
func (a *App) Update() error {
	for _, id := range a.input.JustConnected() {
		a.logger.Info("gamepad connected", "id", id, "name", ebiten.GamepadName(id))
	}

	frame := a.input.Poll()

	switch a.scene {
	case SceneMenu:
		return a.updateMenu(frame)
	case ScenePlaying:
		a.updateGame(frame)
	}
	return nil
}

func (a *App) updateMenu(frame core.InputFrame) error {
	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	switch a.menuChoice(frame, x, y, clicked) {
	case menu.ChoicePlay:
		a.startGame()
	case menu.ChoiceExit:
		a.logger.Info("exit selected")
		return ebiten.Termination
	}
	return nil
}

// menuChoice applies one tick of pointer and key input to the menu.
func (a *App) menuChoice(frame core.InputFrame, x, y int, clicked bool) menu.Choice {
	if !a.cursorSeen || x != a.cursorX || y != a.cursorY {
		a.menu.Hover(x, y)
		a.cursorX, a.cursorY, a.cursorSeen = x, y, true
	}

	choice := a.menu.Handle(frame)
	if clicked {
		if c := a.menu.Click(x, y); c != menu.ChoiceNone {
			choice = c
		}
	}
	return choice
}

func (a *App) updateGame(frame core.InputFrame) {
	if frame.Has(core.ActionBack) {
		a.setScene(SceneMenu)
		return
	}

	result := a.game.Step(frame)
	switch {
	case result.Ate:
		a.session.Debug("food eaten", "score", result.State.Score, "length", result.State.Length)
	case result.Crashed:
		a.session.Debug("self collision, snake reset", "best", result.State.Best)
	}
}

// startGame resets the game with a fresh seed and session id.
func (a *App) startGame() {
	rc := a.cfg.RuntimeConfig()
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	a.session = a.logger.With("session", uuid.NewString())
	a.game.Reset(rc)
	a.session.Debug("game started", "grid", fmt.Sprintf("%dx%d", rc.GridW, rc.GridH), "seed", rc.Seed)
	a.setScene(ScenePlaying)
}

func (a *App) setScene(s Scene) {
	if a.scene != s {
		a.logger.Debug("scene changed", "from", a.scene, "to", s)
	}
	a.scene = s
}

// Draw renders the current scene.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	switch a.scene {
	case SceneMenu:
		drawMenu(screen, a.menu, a.cfg.Window.Title)
	case ScenePlaying:
		drawGame(screen, a.game, a.cfg.Grid.CellSize)
	}
}

// Layout keeps the logical screen at the configured window size.
func (a *App) Layout(_, _ int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}
