package components

import (
	"github.com/automoto/rotr/motion"
	"github.com/yohamta/donburi"
)

// MoverData is the movement integrator the character steers. Its resolv
// object is the same one stored in Object.
type MoverData struct {
	*motion.Mover
}

var Mover = donburi.NewComponentType[MoverData]()
