package systems

import (
	"image"
	"image/color"

	"github.com/automoto/rotr/components"
	cfg "github.com/automoto/rotr/config"
	"github.com/automoto/rotr/shared/gamemath"
	"github.com/automoto/rotr/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	// Reusable buffers for quad triangulation
	quadVertices []ebiten.Vertex
	quadIndices  []uint16
)

func init() {
	whiteImage.Fill(color.White)
}

func vec(x, y float64) gamemath.Vec2 {
	return gamemath.Vec2{X: x, Y: y}
}

// DrawLevel renders the floor and every level volume through the camera.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry).CurrentLevel
		if level != nil {
			drawRect(screen, camera, 0, 0, float64(level.Width), float64(level.Height), cfg.Floor)
		}
	}

	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		drawShape(screen, camera, entry)
	})
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		drawShape(screen, camera, entry)
	})
}

func drawShape(screen *ebiten.Image, camera *components.CameraData, entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	shape := components.Shape.Get(entry)
	drawRect(screen, camera, obj.X, obj.Y, obj.W, obj.H, shape.Color)
}

// drawRect fills a world rectangle, which the camera may have rotated.
func drawRect(screen *ebiten.Image, camera *components.CameraData, x, y, w, h float64, clr color.RGBA) {
	var path vector.Path
	x0, y0 := ScreenPoint(camera, x, y)
	path.MoveTo(x0, y0)
	path.LineTo(ScreenPoint(camera, x+w, y))
	path.LineTo(ScreenPoint(camera, x+w, y+h))
	path.LineTo(ScreenPoint(camera, x, y+h))
	path.Close()

	quadVertices, quadIndices = path.AppendVerticesAndIndicesForFilling(quadVertices[:0], quadIndices[:0])
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range quadVertices {
		quadVertices[i].SrcX = 1
		quadVertices[i].SrcY = 1
		quadVertices[i].ColorR = r * a
		quadVertices[i].ColorG = g * a
		quadVertices[i].ColorB = b * a
		quadVertices[i].ColorA = a
	}
	screen.DrawTriangles(quadVertices, quadIndices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawCharacters draws each character as a disc with a facing marker. Height
// above the floor lifts the disc off its shadow.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	zoom := float32(camera.Zoom())

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		mover := components.Mover.Get(entry)
		char := components.Character.Get(entry)
		center := mover.Center()
		radius := float32(mover.Object.W/2) * zoom

		sx, sy := ScreenPoint(camera, center.X, center.Y)
		vector.FillCircle(screen, sx, sy, radius, cfg.BlackOverlay, true)

		lift := float32(mover.Z*0.25) * zoom
		body := cfg.LightBlue
		switch {
		case entry.HasComponent(components.Death):
			body = cfg.Red
		case char.IsSprinting:
			body = cfg.BrightYellow
		case char.IsCrouching():
			body = cfg.DarkBlue
		}
		bodyRadius := radius
		if char.IsCrouching() {
			bodyRadius *= 0.8
		}
		vector.FillCircle(screen, sx, sy-lift, bodyRadius, body, true)

		nose := gamemath.Add(center, gamemath.Scale(gamemath.Direction(mover.Facing), mover.Object.W/2))
		nx, ny := ScreenPoint(camera, nose.X, nose.Y)
		vector.StrokeLine(screen, sx, sy-lift, nx, ny-lift, 3, cfg.White, true)
	})
}
