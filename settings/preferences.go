package settings

import "math"

// Look is how mouse and stick input turns the camera.
type Look struct {
	InvertLook       bool
	MouseSensitivity float64
}

// SensitivitySteps are the values the settings menu cycles through.
var SensitivitySteps = []float64{0.05, 0.1, 0.15, 0.2, 0.3, 0.5, 0.75, 1, 1.5, 2}

// Preferences is the live settings state: the configured look with the
// player's in-game overrides on top.
type Preferences struct {
	Fullscreen bool
	ShowDebug  bool

	configured  Look
	invertLook  *bool
	sensitivity *float64
}

// NewPreferences starts from the configured look and applies saved, which may be nil.
func NewPreferences(configured Look, fullscreen, showDebug bool, saved *Saved) *Preferences {
	p := &Preferences{
		Fullscreen: fullscreen,
		ShowDebug:  showDebug,
		configured: configured,
	}
	if saved == nil {
		return p
	}
	p.ShowDebug = saved.ShowDebug
	if saved.InvertLook != nil {
		v := *saved.InvertLook
		p.invertLook = &v
	}
	if saved.MouseSensitivity != nil && *saved.MouseSensitivity > 0 {
		v := *saved.MouseSensitivity
		p.sensitivity = &v
	}
	return p
}

// Look is the effective look settings.
func (p *Preferences) Look() Look {
	l := p.configured
	if p.invertLook != nil {
		l.InvertLook = *p.invertLook
	}
	if p.sensitivity != nil {
		l.MouseSensitivity = *p.sensitivity
	}
	return l
}

// SetInvertLook records a player choice that outlives config changes.
func (p *Preferences) SetInvertLook(v bool) {
	p.invertLook = &v
}

// SetMouseSensitivity records a player choice. Non-positive values are ignored.
func (p *Preferences) SetMouseSensitivity(v float64) {
	if v <= 0 {
		return
	}
	p.sensitivity = &v
}

// Saved is the record to store. Look fields the player never touched are left out.
func (p *Preferences) Saved() Saved {
	s := Saved{
		Fullscreen: p.Fullscreen,
		ShowDebug:  p.ShowDebug,
	}
	if p.invertLook != nil {
		v := *p.invertLook
		s.InvertLook = &v
	}
	if p.sensitivity != nil {
		v := *p.sensitivity
		s.MouseSensitivity = &v
	}
	return s
}

// StepSensitivity moves from the step closest to current by direction,
// stopping at either end.
func StepSensitivity(current float64, direction int) float64 {
	closest := 0
	minDiff := math.Inf(1)
	for i, step := range SensitivitySteps {
		if diff := math.Abs(current - step); diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	idx := closest + direction
	if idx < 0 {
		idx = 0
	}
	if idx >= len(SensitivitySteps) {
		idx = len(SensitivitySteps) - 1
	}
	return SensitivitySteps[idx]
}
