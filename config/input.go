package config

import "github.com/automoto/rotr/character"

// Action names outside the character's own bindings.
const (
	ActionToggleFullscreen = "ToggleFullscreen"
	ActionToggleDebug      = "ToggleDebug"
	ActionPause            = "Pause"
	ActionMenuSelect       = "MenuSelect"
	ActionMenuBack         = "MenuBack"
	ActionMenuUp           = "MenuUp"
	ActionMenuDown         = "MenuDown"
	ActionMenuLeft         = "MenuLeft"
	ActionMenuRight        = "MenuRight"
)

// ActionBinding lists the physical inputs that drive one named action.
// Key and button names are resolved by the input system.
type ActionBinding struct {
	Keys                   []string
	StandardGamepadButtons []string
	MouseButtons           []string
}

// KeyScale is one key contributing a fixed value to an axis while held.
type KeyScale struct {
	Key   string
	Scale float64
}

// AxisBinding lists the inputs that feed one named axis. Contributions sum.
type AxisBinding struct {
	Keys []KeyScale

	// StandardGamepadAxis names an analog axis, e.g. "LeftStickVertical".
	StandardGamepadAxis string
	GamepadScale        float64

	// Mouse is "x" or "y": cursor movement in pixels since the last frame.
	Mouse      string
	MouseScale float64
}

// Bindings maps action and axis names to inputs.
type Bindings struct {
	Actions map[string]ActionBinding
	Axes    map[string]AxisBinding
}

// Input is the global binding table.
var Input Bindings

func init() {
	Input = Bindings{
		Actions: map[string]ActionBinding{
			character.ActionJump: {
				Keys: []string{"Space"},
				// A / Cross button
				StandardGamepadButtons: []string{"RightBottom"},
			},
			character.ActionSprint: {
				Keys:                   []string{"ShiftLeft"},
				StandardGamepadButtons: []string{"LeftStick"},
			},
			character.ActionCrawlToggle: {
				Keys: []string{"C"},
				// B / Circle button
				StandardGamepadButtons: []string{"RightRight"},
			},
			character.ActionResetVR: {
				Keys:                   []string{"R"},
				StandardGamepadButtons: []string{"CenterLeft"},
			},
			ActionToggleFullscreen: {
				Keys: []string{"F11"},
			},
			ActionToggleDebug: {
				Keys: []string{"F3"},
			},
			ActionPause: {
				Keys: []string{"Escape", "P"},
				// Start / Options button
				StandardGamepadButtons: []string{"CenterRight"},
			},
			ActionMenuSelect: {
				Keys:                   []string{"Enter", "Space"},
				StandardGamepadButtons: []string{"RightBottom"},
				MouseButtons:           []string{"Left"},
			},
			ActionMenuBack: {
				Keys:                   []string{"Backspace"},
				StandardGamepadButtons: []string{"RightRight"},
				MouseButtons:           []string{"Right"},
			},
			// D-pad
			ActionMenuUp: {
				Keys:                   []string{"ArrowUp", "W"},
				StandardGamepadButtons: []string{"LeftTop"},
			},
			ActionMenuDown: {
				Keys:                   []string{"ArrowDown", "S"},
				StandardGamepadButtons: []string{"LeftBottom"},
			},
			ActionMenuLeft: {
				Keys:                   []string{"ArrowLeft", "A"},
				StandardGamepadButtons: []string{"LeftLeft"},
			},
			ActionMenuRight: {
				Keys:                   []string{"ArrowRight", "D"},
				StandardGamepadButtons: []string{"LeftRight"},
			},
		},
		Axes: map[string]AxisBinding{
			character.AxisMoveForward: {
				Keys: []KeyScale{
					{Key: "W", Scale: 1}, {Key: "S", Scale: -1},
					{Key: "ArrowUp", Scale: 1}, {Key: "ArrowDown", Scale: -1},
				},
				// stick up reads negative
				StandardGamepadAxis: "LeftStickVertical",
				GamepadScale:        -1,
			},
			character.AxisMoveRight: {
				Keys: []KeyScale{
					{Key: "D", Scale: 1}, {Key: "A", Scale: -1},
				},
				StandardGamepadAxis: "LeftStickHorizontal",
				GamepadScale:        1,
			},
			character.AxisTurn: {
				Mouse:      "x",
				MouseScale: 1,
			},
			character.AxisTurnRate: {
				Keys: []KeyScale{
					{Key: "ArrowRight", Scale: 1}, {Key: "ArrowLeft", Scale: -1},
				},
				StandardGamepadAxis: "RightStickHorizontal",
				GamepadScale:        1,
			},
			character.AxisLookUp: {
				Mouse:      "y",
				MouseScale: -1,
			},
			character.AxisLookUpRate: {
				StandardGamepadAxis: "RightStickVertical",
				GamepadScale:        -1,
			},
		},
	}
}
