package components

import (
	"github.com/automoto/rotr/hud"
	"github.com/ebitenui/ebitenui"
	"github.com/yohamta/donburi"
)

// HUDData is the scene's overlay and the ebitenui tree its widget lives in.
type HUDData struct {
	Overlay  *hud.Overlay
	UI       *ebitenui.UI
	Viewport hud.Viewport
}

var HUD = donburi.NewComponentType[HUDData]()
