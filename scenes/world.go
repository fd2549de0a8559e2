package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/rotr/assets"
	"github.com/automoto/rotr/components"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/input"
	"github.com/automoto/rotr/systems"
	"github.com/automoto/rotr/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const spaceCellSize = 32

type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	newMode      func(*ecs.ECS) GameMode
	once         sync.Once
}

// NewWorldScene creates the arena scene with the default game mode.
func NewWorldScene(sc SceneChanger) *WorldScene {
	return NewWorldSceneWithMode(sc, DefaultGameMode)
}

// NewWorldSceneWithMode creates the arena scene played with the game mode
// newMode builds for the scene's ECS.
func NewWorldSceneWithMode(sc SceneChanger, newMode func(*ecs.ECS) GameMode) *WorldScene {
	return &WorldScene{sceneChanger: sc, newMode: newMode}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.DeathExpired(ws.ecs) {
		ws.end()
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	level := assets.NewLevelLoader().MustLoadLevel(cfg.C.Level.Path)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettingsMenu)
	ecs.AddSystem(systems.UpdateInputRouting)
	// Skips characters that do not tick while paused
	ecs.AddSystem(systems.UpdateCharacters)

	// Game systems frozen while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHazards))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDamage))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeath))

	ecs.AddSystem(systems.UpdateHUD)

	ecs.AddRenderer(cfg.LayerWorld, systems.DrawLevel)
	ecs.AddRenderer(cfg.LayerActors, systems.DrawCharacters)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.LayerDebug, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerMenu, systems.DrawPause)
	ecs.AddRenderer(cfg.LayerMenu, systems.DrawSettingsMenu)

	ws.ecs = ecs

	factory.CreateInput(ecs)
	table := systems.InputTable(ecs)
	table.BindAction(cfg.ActionToggleFullscreen, input.Pressed, func() { systems.ToggleFullscreen(ecs) })
	table.BindAction(cfg.ActionToggleDebug, input.Pressed, func() { systems.ToggleDebug(ecs) })
	systems.GetOrCreateSettings(ecs)

	// The space must exist before anything collidable is created.
	factory.CreateSpace(ecs, level.Width, level.Height, spaceCellSize, spaceCellSize)
	factory.CreateLevel(ecs, level)
	cameraEntry := factory.CreateCamera(ecs, level.Spawn.Facing)

	mode := ws.newMode(ecs)
	if mode.DefaultPawn != nil {
		mode.DefaultPawn(ecs, level.Spawn, components.Camera.Get(cameraEntry).Rig)
	}

	hudEntry := factory.CreateHUD(ecs, mode.HUDClass)
	h := components.HUD.Get(hudEntry)
	h.Overlay.BeginPlay(h.Viewport)

	if cfg.C.Input.CaptureCursor {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}

	zap.L().Info("scene started",
		zap.String("level", level.Name),
		zap.Int("walls", len(level.Walls)),
		zap.Int("hazards", len(level.Hazards)),
		zap.Bool("hud", mode.HUDClass != nil),
	)
}

// end releases what the scene holds outside its world.
func (ws *WorldScene) end() {
	systems.EndHUD(ws.ecs)
	if cameraEntry, ok := components.Camera.First(ws.ecs.World); ok {
		components.Camera.Get(cameraEntry).DetachProbe()
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}
