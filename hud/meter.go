package hud

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Meter eases a displayed fraction toward its target so bars slide instead of
// jumping.
type Meter struct {
	Duration float32 // seconds per retarget

	shown  float32
	target float32
	tween  *gween.Tween
}

// NewMeter starts full.
func NewMeter(duration float32) *Meter {
	return &Meter{Duration: duration, shown: 1, target: 1}
}

// Set retargets the meter. Values are clamped to [0, 1].
func (m *Meter) Set(target float64) {
	t := float32(target)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	if t == m.target {
		return
	}
	m.target = t
	if m.Duration <= 0 {
		m.shown = t
		m.tween = nil
		return
	}
	m.tween = gween.New(m.shown, t, m.Duration, ease.OutQuad)
}

// Update advances the tween by dt seconds.
func (m *Meter) Update(dt float32) {
	if m.tween == nil {
		return
	}
	current, finished := m.tween.Update(dt)
	m.shown = current
	if finished {
		m.shown = m.target
		m.tween = nil
	}
}

func (m *Meter) Value() float64 {
	return float64(m.shown)
}

func (m *Meter) Target() float64 {
	return float64(m.target)
}
