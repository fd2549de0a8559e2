package components

import (
	"github.com/automoto/rotr/camera"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	*camera.Rig
	// Shake is added to the projected view while a ScreenShake is active.
	Shake math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
