package archetypes

import (
	"github.com/automoto/rotr/components"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		cfg.LayerActors,
		tags.Player,
		components.Character,
		components.Mover,
		components.Object,
		components.DamageEvent,
	)
	Wall = newArchetype(
		cfg.LayerWorld,
		tags.Wall,
		components.Object,
		components.Shape,
	)
	Hazard = newArchetype(
		cfg.LayerWorld,
		tags.Hazard,
		components.Hazard,
		components.Object,
		components.Shape,
	)
	Space = newArchetype(
		cfg.LayerWorld,
		components.Space,
	)
	Level = newArchetype(
		cfg.LayerWorld,
		components.Level,
	)
	Camera = newArchetype(
		cfg.LayerWorld,
		components.Camera,
	)
	Input = newArchetype(
		cfg.LayerWorld,
		components.Input,
	)
	HUD = newArchetype(
		cfg.LayerHUD,
		components.HUD,
	)
	Settings = newArchetype(
		cfg.LayerWorld,
		components.Settings,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(layer ecs.LayerID, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      layer,
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(a.components, cs...)...,
	))
	return e
}
