package factory

import (
	"github.com/automoto/rotr/archetypes"
	"github.com/automoto/rotr/camera"
	"github.com/automoto/rotr/components"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the camera rig looking along yaw. Its spring arm
// probes the collision space for solids.
func CreateCamera(ecs *ecs.ECS, yaw float64) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)

	rig := camera.NewRig(cfg.C.Camera.Rig(cfg.C.Window.Width, cfg.C.Window.Height, tags.ResolvSolid), yaw)
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		rig.AttachProbe(components.Space.Get(spaceEntry).Space)
	}
	components.Camera.SetValue(entry, components.CameraData{Rig: rig})
	return entry
}
