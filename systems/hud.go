package systems

import (
	"github.com/automoto/rotr/character"
	"github.com/automoto/rotr/components"
	"github.com/automoto/rotr/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHUD forwards the frame to the overlay's widget and the ebitenui tree.
func UpdateHUD(e *ecs.ECS) {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	h := components.HUD.Get(entry)
	h.Overlay.Update()
	if h.UI != nil {
		h.UI.Update()
	}
}

func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	h := components.HUD.Get(entry)
	if h.UI != nil {
		h.UI.Draw(screen)
	}
}

// EndHUD tears down the overlay's widget at the end of a scene.
func EndHUD(e *ecs.ECS) {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	components.HUD.Get(entry).Overlay.EndPlay()
}

// PlayerStats reports the living player's stats, for HUD widgets. It returns
// nil when there is no player.
func PlayerStats(e *ecs.ECS) (*character.Stats, bool) {
	entry, ok := tags.Player.First(e.World)
	if !ok || !entry.HasComponent(components.Character) {
		return nil, false
	}
	c := components.Character.Get(entry)
	return &c.Stats, c.IsSprinting
}
