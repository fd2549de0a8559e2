package systems

import (
	"github.com/automoto/rotr/character"
	"github.com/automoto/rotr/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FrameSeconds is the fixed simulation step.
func FrameSeconds() float64 {
	return 1 / float64(ebiten.TPS())
}

// UpdateCharacters ticks every living character before physics runs.
// Characters that do not tick while paused are skipped when the game is paused.
func UpdateCharacters(ecs *ecs.ECS) {
	dt := FrameSeconds()
	paused := IsPaused(ecs)
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		character.TickActor(components.Character.Get(e).Character, paused, dt)
	})
}
