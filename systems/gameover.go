package systems

import (
	"github.com/automoto/rotr/components"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger interface for changing scenes
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const gameOverLockout = 0.5 // seconds

// NewUpdateGameOver restarts the arena when MenuSelect is pressed.
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		gameOver.Elapsed += FrameSeconds()
		if gameOver.Elapsed < gameOverLockout {
			return
		}

		in := getOrCreateInput(e)
		if in.Frame.Action(cfg.ActionMenuSelect).JustPressed {
			sceneChanger.ChangeScene(createWorldScene())
		}
	}
}

// GetOrCreateGameOver returns the singleton GameOver component.
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameOver))
	}
	return components.GameOver.Get(entry)
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	titleFont := fonts.Title.Get()
	title := "YOU DIED"
	titleX := (width - text.BoundString(titleFont, title).Dx()) / 2
	text.Draw(screen, title, titleFont, titleX, height/2-20, cfg.Red)

	if GetOrCreateGameOver(e).Elapsed < gameOverLockout {
		return
	}
	promptFont := fonts.Regular.Get()
	prompt := "Press Enter to try again"
	promptX := (width - text.BoundString(promptFont, prompt).Dx()) / 2
	text.Draw(screen, prompt, promptFont, promptX, height/2+30, cfg.White)
}
