package components

import "github.com/yohamta/donburi"

// DeathData marks a character whose health ran out. Timer counts down in
// seconds; at zero the scene switches to game over.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
