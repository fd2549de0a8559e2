package factory

import (
	"github.com/automoto/rotr/archetypes"
	"github.com/automoto/rotr/assets"
	"github.com/automoto/rotr/components"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.Width, r.Height, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.Shape.SetValue(wall, components.ShapeData{Color: cfg.Wall, Filled: true})

	addToSpace(ecs, obj)
	return wall
}

// CreateHazard creates a damage volume. It is not solid: characters walk
// into it and take DamagePerSecond while inside.
func CreateHazard(ecs *ecs.ECS, h assets.HazardSpawn) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	obj := resolv.NewObject(h.X, h.Y, h.Width, h.Height, tags.ResolvHazard)
	obj.Data = hazard

	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	components.Hazard.SetValue(hazard, components.HazardData{
		Name:            h.Name,
		DamagePerSecond: h.DamagePerSecond,
	})
	components.Shape.SetValue(hazard, components.ShapeData{Color: cfg.Hazard, Filled: true})

	addToSpace(ecs, obj)
	return hazard
}
