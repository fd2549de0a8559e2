package components

import (
	"image/color"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// ShapeData is how a level volume is drawn.
type ShapeData struct {
	Color  color.RGBA
	Filled bool
}

var Shape = donburi.NewComponentType[ShapeData]()
