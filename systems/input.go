package systems

import (
	"math"
	"strings"
	"sync"

	"github.com/automoto/rotr/character"
	"github.com/automoto/rotr/components"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

var standardButtons = map[string]ebiten.StandardGamepadButton{
	"RightBottom":      ebiten.StandardGamepadButtonRightBottom,
	"RightRight":       ebiten.StandardGamepadButtonRightRight,
	"RightLeft":        ebiten.StandardGamepadButtonRightLeft,
	"RightTop":         ebiten.StandardGamepadButtonRightTop,
	"FrontTopLeft":     ebiten.StandardGamepadButtonFrontTopLeft,
	"FrontTopRight":    ebiten.StandardGamepadButtonFrontTopRight,
	"FrontBottomLeft":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"FrontBottomRight": ebiten.StandardGamepadButtonFrontBottomRight,
	"CenterLeft":       ebiten.StandardGamepadButtonCenterLeft,
	"CenterRight":      ebiten.StandardGamepadButtonCenterRight,
	"CenterCenter":     ebiten.StandardGamepadButtonCenterCenter,
	"LeftStick":        ebiten.StandardGamepadButtonLeftStick,
	"RightStick":       ebiten.StandardGamepadButtonRightStick,
	"LeftTop":          ebiten.StandardGamepadButtonLeftTop,
	"LeftBottom":       ebiten.StandardGamepadButtonLeftBottom,
	"LeftLeft":         ebiten.StandardGamepadButtonLeftLeft,
	"LeftRight":        ebiten.StandardGamepadButtonLeftRight,
}

var standardAxes = map[string]ebiten.StandardGamepadAxis{
	"LeftStickHorizontal":  ebiten.StandardGamepadAxisLeftStickHorizontal,
	"LeftStickVertical":    ebiten.StandardGamepadAxisLeftStickVertical,
	"RightStickHorizontal": ebiten.StandardGamepadAxisRightStickHorizontal,
	"RightStickVertical":   ebiten.StandardGamepadAxisRightStickVertical,
}

var mouseButtons = map[string]ebiten.MouseButton{
	"Left":   ebiten.MouseButtonLeft,
	"Right":  ebiten.MouseButtonRight,
	"Middle": ebiten.MouseButtonMiddle,
}

type actionInputs struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
	mouse   []ebiten.MouseButton
}

type keyScale struct {
	key   ebiten.Key
	scale float64
}

type axisInputs struct {
	keys         []keyScale
	gamepadAxis  ebiten.StandardGamepadAxis
	hasGamepad   bool
	gamepadScale float64
	mouse        string
	mouseScale   float64
}

var (
	bindingsOnce sync.Once
	actionMap    map[string]actionInputs
	axisMap      map[string]axisInputs
)

// keyByName matches ebiten's key names case-insensitively, e.g. "ShiftLeft".
func keyByName(name string) (ebiten.Key, bool) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

// resolveBindings turns the configured names into ebiten inputs once.
// Unknown names are logged and skipped.
func resolveBindings() {
	bindingsOnce.Do(func() {
		actionMap = make(map[string]actionInputs, len(cfg.Input.Actions))
		for name, b := range cfg.Input.Actions {
			var in actionInputs
			for _, k := range b.Keys {
				if key, ok := keyByName(k); ok {
					in.keys = append(in.keys, key)
				} else {
					zap.L().Warn("unknown key in binding", zap.String("action", name), zap.String("key", k))
				}
			}
			for _, btn := range b.StandardGamepadButtons {
				if gb, ok := standardButtons[btn]; ok {
					in.buttons = append(in.buttons, gb)
				} else {
					zap.L().Warn("unknown gamepad button in binding", zap.String("action", name), zap.String("button", btn))
				}
			}
			for _, mb := range b.MouseButtons {
				if m, ok := mouseButtons[mb]; ok {
					in.mouse = append(in.mouse, m)
				}
			}
			actionMap[name] = in
		}

		axisMap = make(map[string]axisInputs, len(cfg.Input.Axes))
		for name, b := range cfg.Input.Axes {
			in := axisInputs{
				gamepadScale: b.GamepadScale,
				mouse:        b.Mouse,
				mouseScale:   b.MouseScale,
			}
			for _, ks := range b.Keys {
				if key, ok := keyByName(ks.Key); ok {
					in.keys = append(in.keys, keyScale{key: key, scale: ks.Scale})
				} else {
					zap.L().Warn("unknown key in axis binding", zap.String("axis", name), zap.String("key", ks.Key))
				}
			}
			if b.StandardGamepadAxis != "" {
				in.gamepadAxis, in.hasGamepad = standardAxes[b.StandardGamepadAxis]
			}
			axisMap[name] = in
		}
	})
}

// UpdateInput polls raw input into the frame.
// Must run BEFORE UpdateInputRouting in the system order.
func UpdateInput(ecs *ecs.ECS) {
	resolveBindings()
	in := getOrCreateInput(ecs)
	f := in.Frame
	f.Begin()

	look := GetOrCreateSettings(ecs).Look()
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed, touchUsed bool

	for name, b := range actionMap {
		for _, key := range b.keys {
			if ebiten.IsKeyPressed(key) {
				f.Press(name)
				keyboardUsed = true
			}
		}
		for _, mb := range b.mouse {
			if ebiten.IsMouseButtonPressed(mb) {
				f.Press(name)
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range b.buttons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					f.Press(name)
					gamepadUsed = true
				}
			}
		}
	}

	cx, cy := ebiten.CursorPosition()
	var dx, dy float64
	if in.CursorValid {
		dx, dy = float64(cx-in.CursorX), float64(cy-in.CursorY)
	}
	in.CursorX, in.CursorY, in.CursorValid = cx, cy, true

	deadzone := cfg.C.Input.AnalogDeadzone
	for name, a := range axisMap {
		f.DeclareAxis(name)
		for _, k := range a.keys {
			if ebiten.IsKeyPressed(k.key) {
				f.AddAxis(name, k.scale)
				keyboardUsed = true
			}
		}
		if a.hasGamepad {
			for _, gpID := range gamepadIDs {
				if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
					continue
				}
				v := ebiten.StandardGamepadAxisValue(gpID, a.gamepadAxis)
				if math.Abs(v) > deadzone {
					f.AddAxis(name, v*a.gamepadScale)
					gamepadUsed = true
				}
			}
		}
		switch a.mouse {
		case "x":
			if dx != 0 {
				f.AddAxis(name, dx*a.mouseScale*look.MouseSensitivity)
			}
		case "y":
			if dy != 0 {
				f.AddAxis(name, dy*a.mouseScale*look.MouseSensitivity)
			}
		}
	}

	if look.InvertLook {
		for _, name := range []string{character.AxisLookUp, character.AxisLookUpRate} {
			if v, ok := f.Axes[name]; ok {
				f.Axes[name] = -v
			}
		}
	}

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		f.Touch(int(id), float64(x), float64(y))
		touchUsed = true
	}

	switch {
	case touchUsed:
		in.LastInputMethod = components.InputTouch
	case gamepadUsed:
		in.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		in.LastInputMethod = components.InputKeyboard
	}
}

// UpdateInputRouting dispatches the polled frame to the bound handlers.
// While paused only the window toggles reach the table.
func UpdateInputRouting(ecs *ecs.ECS) {
	in := getOrCreateInput(ecs)
	if IsPaused(ecs) {
		in.Frame.RouteActions(in.Table, cfg.ActionToggleFullscreen, cfg.ActionToggleDebug)
		return
	}
	in.Frame.Route(in.Table)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		components.Input.SetValue(entry, components.InputData{
			Frame: input.NewFrame(),
			Table: input.NewTable(),
		})
	}
	return components.Input.Get(entry)
}

// InputTable returns the scene's binding table.
func InputTable(ecs *ecs.ECS) *input.Table {
	return getOrCreateInput(ecs).Table
}
