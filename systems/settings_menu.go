package systems

import (
	"fmt"

	"github.com/automoto/rotr/components"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/settings"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	menu := GetOrCreateSettingsMenu(e)
	if !menu.IsOpen {
		return
	}
	if menu.JustOpened {
		menu.JustOpened = false
		return
	}

	f := getOrCreateInput(e).Frame

	if f.Action(cfg.ActionMenuUp).JustPressed {
		menu.SelectedOption = components.SettingsMenuOption(
			(int(menu.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
	}
	if f.Action(cfg.ActionMenuDown).JustPressed {
		menu.SelectedOption = components.SettingsMenuOption(
			(int(menu.SelectedOption) + 1) % numSettingsOptions,
		)
	}

	if f.Action(cfg.ActionMenuLeft).JustPressed {
		adjustSetting(e, menu.SelectedOption, -1)
	}
	if f.Action(cfg.ActionMenuRight).JustPressed {
		adjustSetting(e, menu.SelectedOption, +1)
	}

	if f.Action(cfg.ActionMenuSelect).JustPressed {
		if menu.SelectedOption == components.SettingsOptBack {
			closeSettings(menu)
			return
		}
		adjustSetting(e, menu.SelectedOption, +1)
	}

	if f.Action(cfg.ActionMenuBack).JustPressed || f.Action(cfg.ActionPause).JustPressed {
		closeSettings(menu)
	}
}

// adjustSetting changes the selected value and saves it.
func adjustSetting(e *ecs.ECS, opt components.SettingsMenuOption, direction int) {
	s := GetOrCreateSettings(e)
	switch opt {
	case components.SettingsOptInvertLook:
		s.SetInvertLook(!s.Look().InvertLook)
		SaveCurrentSettings(s)
	case components.SettingsOptMouseSensitivity:
		s.SetMouseSensitivity(settings.StepSensitivity(s.Look().MouseSensitivity, direction))
		SaveCurrentSettings(s)
	case components.SettingsOptFullscreen:
		ToggleFullscreen(e)
	case components.SettingsOptDebugOverlay:
		ToggleDebug(e)
	}
}

// OpenSettings shows the settings overlay over the pause menu.
func OpenSettings(e *ecs.ECS) {
	menu := GetOrCreateSettingsMenu(e)
	menu.IsOpen = true
	menu.JustOpened = true
	menu.SelectedOption = components.SettingsOptInvertLook
}

func closeSettings(menu *components.SettingsMenuData) {
	menu.IsOpen = false
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SettingsMenu))
	}
	return components.SettingsMenu.Get(entry)
}

// DrawSettingsMenu renders the settings overlay
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateSettingsMenu(e)
	if !menu.IsOpen {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)

	s := GetOrCreateSettings(e)
	look := s.Look()
	options := []string{
		"Invert Look: " + onOff(look.InvertLook),
		fmt.Sprintf("Mouse Sensitivity: < %.2f >", look.MouseSensitivity),
		"Fullscreen: " + onOff(s.Fullscreen),
		"Debug Overlay: " + onOff(s.ShowDebug),
		"Back",
	}
	selected := make([]bool, len(options))
	selected[menu.SelectedOption] = true
	drawMenu(screen, options, selected)

	drawHint(screen, "Up/Down: Navigate   Left/Right: Change   Enter: Toggle   Esc: Back")
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
