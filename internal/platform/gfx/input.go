package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/snake/internal/core"
)

// stickDeadzone is the axis magnitude below which a stick or hat counts as centered.
const stickDeadzone = 0.5

// keyBindings maps keyboard keys to actions.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeySpace, core.ActionConfirm},
	{ebiten.KeyEscape, core.ActionBack},
	{ebiten.KeyG, core.ActionStart},
	{ebiten.KeyP, core.ActionPause},
}

// padBindings maps standard-layout gamepad buttons to actions.
var padBindings = []struct {
	button ebiten.StandardGamepadButton
	action core.Action
}{
	{ebiten.StandardGamepadButtonLeftTop, core.ActionUp},
	{ebiten.StandardGamepadButtonLeftBottom, core.ActionDown},
	{ebiten.StandardGamepadButtonLeftLeft, core.ActionLeft},
	{ebiten.StandardGamepadButtonLeftRight, core.ActionRight},
	{ebiten.StandardGamepadButtonRightBottom, core.ActionConfirm},
	{ebiten.StandardGamepadButtonRightRight, core.ActionBack},
	{ebiten.StandardGamepadButtonCenterRight, core.ActionStart},
	{ebiten.StandardGamepadButtonCenterLeft, core.ActionPause},
}

// stickDirection converts a pair of axis values to a direction action.
// The dominant axis wins; inside the deadzone it returns ActionNone.
func stickDirection(x, y float64) core.Action {
	ax, ay := x, y
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax < stickDeadzone && ay < stickDeadzone {
		return core.ActionNone
	}
	if ax >= ay {
		if x < 0 {
			return core.ActionLeft
		}
		return core.ActionRight
	}
	if y < 0 {
		return core.ActionUp
	}
	return core.ActionDown
}

// stickEdges reports stick directions only when they change, like hat
// motion events. Holding a direction emits it once.
type stickEdges struct {
	last map[int]core.Action
}

func newStickEdges() *stickEdges {
	return &stickEdges{last: make(map[int]core.Action)}
}

// update records the current direction for a device and returns it if it
// differs from the previous one, ActionNone otherwise.
func (s *stickEdges) update(device int, dir core.Action) core.Action {
	prev := s.last[device]
	s.last[device] = dir
	if dir == prev {
		return core.ActionNone
	}
	return dir
}

// forget drops state for a disconnected device.
func (s *stickEdges) forget(device int) {
	delete(s.last, device)
}

// Input polls keyboard and gamepads once per tick.
type Input struct {
	pads  []ebiten.GamepadID
	edges *stickEdges
}

// NewInput creates an input poller.
func NewInput() *Input {
	return &Input{edges: newStickEdges()}
}

// Poll returns the actions triggered since the previous tick.
func (in *Input) Poll() core.InputFrame {
	frame := core.NewInputFrame()

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			frame.Set(b.action)
		}
	}

	in.pads = ebiten.AppendGamepadIDs(in.pads[:0])
	for _, id := range in.pads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			for _, b := range padBindings {
				if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
					frame.Set(b.action)
				}
			}
		}

		// First two axes: left stick or hat on most devices
		if ebiten.GamepadAxisCount(id) >= 2 {
			dir := stickDirection(ebiten.GamepadAxisValue(id, 0), ebiten.GamepadAxisValue(id, 1))
			frame.Set(in.edges.update(int(id), dir))
		}
	}

	for device := range in.edges.last {
		if inpututil.IsGamepadJustDisconnected(ebiten.GamepadID(device)) {
			in.edges.forget(device)
		}
	}

	return frame
}

// JustConnected returns gamepads connected since the previous tick.
func (in *Input) JustConnected() []ebiten.GamepadID {
	return inpututil.AppendJustConnectedGamepadIDs(nil)
}
