package systems

import (
	"github.com/automoto/rotr/components"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateHazards queues damage for characters standing in a hazard volume.
// Airborne characters are out of reach.
func UpdateHazards(ecs *ecs.ECS) {
	dt := FrameSeconds()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		mover := components.Mover.Get(e)
		if mover.IsFalling() {
			return
		}
		obj := components.Object.Get(e)
		check := obj.Check(0, 0, tags.ResolvHazard)
		if check == nil {
			return
		}
		event := components.DamageEvent.Get(e)
		for _, o := range check.ObjectsByTags(tags.ResolvHazard) {
			if !overlapping(obj.X, obj.Y, obj.W, obj.H, o.X, o.Y, o.W, o.H) {
				continue
			}
			hazardEntry, ok := o.Data.(*donburi.Entry)
			if !ok || !hazardEntry.Valid() {
				continue
			}
			hazard := components.Hazard.Get(hazardEntry)
			event.Amount += hazard.DamagePerSecond * dt
			event.Source = hazard.Name
		}
	})
}

// UpdateDamage applies queued damage through the character's health and
// starts the death sequence when health runs out.
func UpdateDamage(ecs *ecs.ECS) {
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		event := components.DamageEvent.Get(e)
		if event.Amount == 0 {
			return
		}
		amount, source := event.Amount, event.Source
		event.Amount, event.Source = 0, ""

		if e.HasComponent(components.Death) || !e.HasComponent(components.Character) {
			return
		}
		char := components.Character.Get(e)
		if char.TakeDamage(amount) {
			return
		}

		zap.L().Info("character killed", zap.String("source", source))
		e.AddComponent(components.Death)
		components.Death.SetValue(e, components.DeathData{Timer: cfg.C.Level.GameOverDelay})
		char.StopSprint()
		TriggerScreenShake(ecs, 8, 12)
	})
}

func overlapping(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}
