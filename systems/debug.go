package systems

import (
	"fmt"

	"github.com/automoto/rotr/components"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/fonts"
	"github.com/automoto/rotr/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug shows the player's stats and movement state plus collision outlines.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.ShowDebug {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.LightBlue
			if obj.HasTags(tags.ResolvSolid) {
				c = cfg.White
			} else if obj.HasTags(tags.ResolvHazard) {
				c = cfg.Orange
			}
			x0, y0 := ScreenPoint(camera, obj.X, obj.Y)
			x1, y1 := ScreenPoint(camera, obj.X+obj.W, obj.Y)
			x2, y2 := ScreenPoint(camera, obj.X+obj.W, obj.Y+obj.H)
			x3, y3 := ScreenPoint(camera, obj.X, obj.Y+obj.H)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
			vector.StrokeLine(screen, x1, y1, x2, y2, 1, c, false)
			vector.StrokeLine(screen, x2, y2, x3, y3, 1, c, false)
			vector.StrokeLine(screen, x3, y3, x0, y0, 1, c, false)
		}
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	char := components.Character.Get(playerEntry)
	mover := components.Mover.Get(playerEntry)

	lines := []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("health %.1f/%.0f (%.2f)", char.Health, char.MaxHealth, char.HealthPercentage),
		fmt.Sprintf("stamina %.1f/%.0f (%.2f)", char.Stamina, char.MaxStamina, char.StaminaPercentage),
		fmt.Sprintf("cap %.0f  speed %.0f", mover.EffectiveMaxSpeed(), mover.Speed()),
		fmt.Sprintf("sprint %t  crouch %t  falling %t", char.IsSprinting, char.IsCrouching(), mover.IsFalling()),
		fmt.Sprintf("yaw %.1f  pitch %.1f  arm %.0f", camera.Yaw, camera.Pitch, camera.ArmLength),
	}

	face := fonts.Small.Get()
	lineHeight := face.Metrics().Height.Ceil()
	x := screen.Bounds().Dx() - 260
	vector.FillRect(screen, float32(x-8), 4, 264, float32(lineHeight*len(lines)+8), cfg.BlackOverlay, false)
	for i, line := range lines {
		text.Draw(screen, line, face, x, 8+lineHeight*(i+1)-4, cfg.White)
	}
}
