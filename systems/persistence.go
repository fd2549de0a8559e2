package systems

import (
	"github.com/automoto/rotr/components"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/settings"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var store settings.Store

// InitPersistence opens the save location for settings storage.
func InitPersistence() error {
	s, err := settings.Open("rotr")
	if err != nil {
		zap.L().Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	store = s
	return nil
}

// LoadSettings loads settings from disk. Missing or unreadable settings yield nil.
func LoadSettings() *settings.Saved {
	saved, err := settings.Load(store)
	if err != nil {
		zap.L().Warn("could not load settings", zap.Error(err))
		return nil
	}
	return saved
}

// SaveCurrentSettings saves the scene's settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	if err := settings.Save(store, s.Saved()); err != nil {
		zap.L().Warn("could not save settings", zap.Error(err))
	}
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
func ApplySavedSettingsGlobal(saved *settings.Saved) {
	if saved == nil {
		ebiten.SetFullscreen(cfg.C.Window.Fullscreen)
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// GetOrCreateSettings returns the singleton Settings component. The config
// supplies the look settings unless the player changed them in game.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		configured := settings.Look{
			InvertLook:       cfg.C.Input.InvertLook,
			MouseSensitivity: cfg.C.Input.MouseSensitivity,
		}
		components.Settings.SetValue(entry, components.SettingsData{
			Preferences: settings.NewPreferences(configured, ebiten.IsFullscreen(), cfg.C.Debug.Overlay, LoadSettings()),
		})
	}
	return components.Settings.Get(entry)
}

// ToggleFullscreen flips fullscreen and saves the choice.
func ToggleFullscreen(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
	SaveCurrentSettings(s)
}

// ToggleDebug shows or hides the debug overlay and saves the choice.
func ToggleDebug(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.ShowDebug = !s.ShowDebug
	SaveCurrentSettings(s)
}
