package systems

import (
	"os"

	"github.com/automoto/rotr/components"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/fonts"
	"github.com/automoto/rotr/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var pauseMenuOptions = []string{"Resume", "Settings", "Quit"}

const (
	menuItemHeight = 28.0
	menuItemGap    = 12.0
)

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	// The settings overlay handles its own back/pause input.
	if IsSettingsOpen(ecs) {
		return
	}

	pause := GetOrCreatePause(ecs)
	f := getOrCreateInput(ecs).Frame

	if f.Action(cfg.ActionPause).JustPressed {
		setPaused(ecs, !pause.IsPaused)
		return
	}

	// Only process menu input while paused
	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuQuit) + 1
	if f.Action(cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if f.Action(cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
	}

	if f.Action(cfg.ActionMenuBack).JustPressed {
		setPaused(ecs, false)
		return
	}

	if f.Action(cfg.ActionMenuSelect).JustPressed {
		switch pause.SelectedOption {
		case components.MenuResume:
			setPaused(ecs, false)
		case components.MenuSettings:
			OpenSettings(ecs)
		case components.MenuQuit:
			zap.L().Info("quit from pause menu")
			_ = zap.L().Sync()
			os.Exit(0)
		}
	}
}

// setPaused freezes or resumes the simulation. Pausing drops the player's
// held sprint and queued movement so nothing carries over on resume.
func setPaused(ecs *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = paused
	pause.SelectedOption = components.MenuResume

	if paused {
		if player, ok := tags.Player.First(ecs.World); ok {
			components.Character.Get(player).StopSprint()
			mover := components.Mover.Get(player)
			mover.StopJumping()
			mover.ConsumeInputVector()
		}
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else if cfg.C.Input.CaptureCursor {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	// The cursor mode change moves the cursor; skip that delta.
	getOrCreateInput(ecs).CursorValid = false
	zap.L().Debug("pause toggled", zap.Bool("paused", paused))
}

// IsPaused reports whether the scene's simulation is frozen.
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused || IsSettingsOpen(ecs) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	selected := make([]bool, len(pauseMenuOptions))
	selected[pause.SelectedOption] = true
	drawMenu(screen, pauseMenuOptions, selected)

	hint := getPauseHint(getOrCreateInput(ecs).LastInputMethod)
	drawHint(screen, hint)
}

// drawMenu draws the options centered on screen, highlighting selected ones.
func drawMenu(screen *ebiten.Image, options []string, selected []bool) {
	width := screen.Bounds().Dx()
	height := float64(screen.Bounds().Dy())

	totalMenuHeight := float64(len(options)) * (menuItemHeight + menuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Regular.Get()
	for i, option := range options {
		y := startY + float64(i)*(menuItemHeight+menuItemGap)

		textColor := cfg.White
		if selected[i] {
			textColor = cfg.BrightYellow
		}

		x := (width - text.BoundString(fontFace, option).Dx()) / 2
		text.Draw(screen, option, fontFace, x, int(y+menuItemHeight), textColor)
	}
}

func drawHint(screen *ebiten.Image, hint string) {
	hintFont := fonts.Small.Get()
	width := screen.Bounds().Dx()
	x := (width - text.BoundString(hintFont, hint).Dx()) / 2
	text.Draw(screen, hint, hintFont, x, screen.Bounds().Dy()-12, cfg.White)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputGamepad:
		return "D-Pad: Navigate   A: Select   Start: Resume"
	case components.InputTouch:
		return "Tap: Select"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
