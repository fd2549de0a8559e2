package systems

import (
	"github.com/automoto/rotr/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeath counts down the death timers.
func UpdateDeath(ecs *ecs.ECS) {
	dt := FrameSeconds()
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Timer > 0 {
			death.Timer -= dt
		}
	})
}

// DeathExpired reports whether a dead character has finished its death sequence.
func DeathExpired(ecs *ecs.ECS) bool {
	expired := false
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		if components.Death.Get(e).Timer <= 0 {
			expired = true
		}
	})
	return expired
}
