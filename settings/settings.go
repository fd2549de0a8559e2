// Package settings persists the player's preferences between runs.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const itemKey = "settings"

// Saved is the settings record stored on disk. The look fields are only
// present once the player has changed them in game; absent, the config wins.
type Saved struct {
	Fullscreen       bool     `json:"fullscreen"`
	InvertLook       *bool    `json:"invertLook,omitempty"`
	MouseSensitivity *float64 `json:"mouseSensitivity,omitempty"`
	ShowDebug        bool     `json:"showDebug"`
}

// Store is the key/value storage gdata provides.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Open opens the platform save location for appName.
func Open(appName string) (Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("opening save data: %w", err)
	}
	return m, nil
}

// Load reads the saved settings. It returns nil with no error when nothing
// has been saved yet or there is no store.
func Load(s Store) (*Saved, error) {
	if s == nil {
		return nil, nil
	}

	data, err := s.LoadItem(itemKey)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved Saved
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parsing saved settings: %w", err)
	}
	return &saved, nil
}

// Save writes the settings. A nil store is ignored.
func Save(s Store, saved Saved) error {
	if s == nil {
		return nil
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("serializing settings: %w", err)
	}
	if err := s.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
