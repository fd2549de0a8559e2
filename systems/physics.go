package systems

import (
	"github.com/automoto/rotr/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every mover. Dead characters stop steering but
// still brake and land.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := FrameSeconds()
	components.Mover.Each(ecs.World, func(e *donburi.Entry) {
		mover := components.Mover.Get(e)
		if e.HasComponent(components.Death) {
			mover.ConsumeInputVector()
		}
		mover.Integrate(dt)
	})
}
