package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/input"
	"github.com/automoto/rotr/systems"
	"github.com/automoto/rotr/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger) *GameOverScene {
	return &GameOverScene{sceneChanger: sc}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdateInputRouting)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene))

	gs.ecs.AddRenderer(cfg.LayerHUD, systems.DrawGameOver)

	factory.CreateInput(gs.ecs)
	systems.InputTable(gs.ecs).BindAction(cfg.ActionToggleFullscreen, input.Pressed, func() { systems.ToggleFullscreen(gs.ecs) })
}
