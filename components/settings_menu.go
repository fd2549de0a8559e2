package components

import "github.com/yohamta/donburi"

// SettingsMenuOption represents menu items in the settings menu
type SettingsMenuOption int

const (
	SettingsOptInvertLook SettingsMenuOption = iota
	SettingsOptMouseSensitivity
	SettingsOptFullscreen
	SettingsOptDebugOverlay
	SettingsOptBack
)

// SettingsMenuData stores the settings overlay state. Values live in Settings.
type SettingsMenuData struct {
	IsOpen         bool
	SelectedOption SettingsMenuOption
	// JustOpened skips the frame whose select press opened the menu.
	JustOpened bool
}

var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
