package components

import "github.com/yohamta/donburi"

type HazardData struct {
	Name            string
	DamagePerSecond float64
}

var Hazard = donburi.NewComponentType[HazardData]()
