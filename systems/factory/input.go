package factory

import (
	"github.com/automoto/rotr/archetypes"
	"github.com/automoto/rotr/components"
	"github.com/automoto/rotr/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInput creates the scene's input singleton with an empty binding table.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(entry, components.InputData{
		Frame: input.NewFrame(),
		Table: input.NewTable(),
	})
	return entry
}
