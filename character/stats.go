package character

import "github.com/automoto/rotr/shared/gamemath"

// Stats holds the character's health and stamina and their display percentages.
type Stats struct {
	Health            float64
	MaxHealth         float64
	HealthPercentage  float64
	Stamina           float64
	MaxStamina        float64
	StaminaPercentage float64
}

// NewStats returns stats filled to their maxima.
func NewStats(maxHealth, maxStamina float64) Stats {
	return Stats{
		Health:            maxHealth,
		MaxHealth:         maxHealth,
		HealthPercentage:  1,
		Stamina:           maxStamina,
		MaxStamina:        maxStamina,
		StaminaPercentage: 1,
	}
}

// ApplyHealthDelta adds delta to health and reports whether the character is still alive.
//
// A result at or below zero zeroes the percentage and leaves Health unclamped,
// so it can go negative. Any other result is clamped to [0, MaxHealth].
func (s *Stats) ApplyHealthDelta(delta float64) bool {
	return applyDelta(&s.Health, &s.HealthPercentage, s.MaxHealth, delta)
}

// ApplyStaminaDelta follows the same policy as ApplyHealthDelta; false means exhausted.
func (s *Stats) ApplyStaminaDelta(delta float64) bool {
	return applyDelta(&s.Stamina, &s.StaminaPercentage, s.MaxStamina, delta)
}

func (s Stats) Alive() bool {
	return s.Health > 0
}

func applyDelta(value, percentage *float64, max, delta float64) bool {
	*value += delta
	if *value <= 0 {
		*percentage = 0
		return false
	}
	*value = gamemath.Clamp(*value, 0, max)
	*percentage = *value / max
	return true
}
