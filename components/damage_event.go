package components

import "github.com/yohamta/donburi"

// DamageEventData is damage queued against an entity this frame. Sources add
// to Amount; the damage system applies and clears it.
type DamageEventData struct {
	Amount float64
	Source string
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
