package scenes

import (
	"github.com/automoto/rotr/assets"
	"github.com/automoto/rotr/camera"
	"github.com/automoto/rotr/character"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/fonts"
	"github.com/automoto/rotr/hud"
	"github.com/automoto/rotr/systems"
	"github.com/automoto/rotr/systems/factory"
	"github.com/automoto/rotr/ui"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PawnFactory spawns the player's pawn at spawn. The camera rig is its view.
type PawnFactory func(e *ecs.ECS, spawn assets.PlayerSpawn, rig *camera.Rig) *donburi.Entry

// GameMode is what a world scene is played with: the pawn to spawn and the
// HUD widget class. A nil HUDClass plays without a HUD.
type GameMode struct {
	DefaultPawn PawnFactory
	HUDClass    hud.WidgetClass
}

// DefaultGameMode plays the character with the stats panel, unless the HUD
// is disabled in the config.
func DefaultGameMode(e *ecs.ECS) GameMode {
	mode := GameMode{DefaultPawn: SpawnCharacter}
	if cfg.C.HUD.Enabled {
		mode.HUDClass = &ui.StatsWidgetClass{
			Source: func() (*character.Stats, bool) { return systems.PlayerStats(e) },
			Face:   text.NewGoXFace(fonts.Regular.Get()),
			Config: cfg.C.HUD,
		}
	}
	return mode
}

// SpawnCharacter creates the playable character, bound to the scene's input
// table and stepped by the simulation clock.
func SpawnCharacter(e *ecs.ECS, spawn assets.PlayerSpawn, rig *camera.Rig) *donburi.Entry {
	return factory.CreatePlayer(e, spawn, systems.InputTable(e), rig, rig, character.ClockFunc(systems.FrameSeconds))
}
