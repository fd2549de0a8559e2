package components

import (
	"github.com/automoto/rotr/settings"
	"github.com/yohamta/donburi"
)

// SettingsData holds the player's preferences for the running game.
type SettingsData struct {
	*settings.Preferences
}

var Settings = donburi.NewComponentType[SettingsData]()
