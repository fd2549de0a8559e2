package factory

import (
	"github.com/automoto/rotr/archetypes"
	"github.com/automoto/rotr/assets"
	"github.com/automoto/rotr/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level's walls and hazards. The collision space
// must already exist.
func CreateLevel(ecs *ecs.ECS, level assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: &level})

	for _, w := range level.Walls {
		CreateWall(ecs, w)
	}
	for _, h := range level.Hazards {
		CreateHazard(ecs, h)
	}
	return entry
}
