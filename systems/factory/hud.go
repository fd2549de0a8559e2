package factory

import (
	"github.com/automoto/rotr/archetypes"
	"github.com/automoto/rotr/components"
	"github.com/automoto/rotr/hud"
	"github.com/automoto/rotr/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHUD creates the overlay for class over a fresh ebitenui viewport.
// The widget is not created until the scene calls BeginPlay.
func CreateHUD(ecs *ecs.ECS, class hud.WidgetClass) *donburi.Entry {
	entry := archetypes.HUD.Spawn(ecs)
	viewport := ui.NewViewport()
	components.HUD.SetValue(entry, components.HUDData{
		Overlay:  hud.NewOverlay(class),
		UI:       viewport.UI,
		Viewport: viewport,
	})
	return entry
}
