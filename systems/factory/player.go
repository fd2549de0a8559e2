package factory

import (
	"github.com/automoto/rotr/archetypes"
	"github.com/automoto/rotr/assets"
	"github.com/automoto/rotr/character"
	"github.com/automoto/rotr/components"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/input"
	"github.com/automoto/rotr/motion"
	"github.com/automoto/rotr/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreatePlayer spawns the playable character centered on the spawn point and
// binds its input handlers on b. view and headset are normally the camera rig.
func CreatePlayer(ecs *ecs.ECS, spawn assets.PlayerSpawn, b input.Binder, view character.View, headset character.Headset, clock character.Clock) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.C.Movement.CapsuleRadius * 2
	obj := resolv.NewObject(spawn.X-size/2, spawn.Y-size/2, size, size, "character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	mover := motion.NewMover(obj, cfg.C.Movement.Mover(cfg.C.Character.WalkSpeed, tags.ResolvSolid))
	mover.Facing = spawn.Facing
	components.Mover.SetValue(player, components.MoverData{Mover: mover})

	c := character.New(cfg.C.Character.Tuning(), mover, view,
		character.WithLogger(zap.L().Named("character")),
		character.WithClock(clock),
		character.WithHeadset(headset),
	)
	c.SetupInput(b)
	components.Character.SetValue(player, components.CharacterData{Character: c})

	return player
}
