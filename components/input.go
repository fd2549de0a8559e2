package components

import (
	"github.com/automoto/rotr/input"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
	InputTouch
)

// InputData holds the polled frame and the handlers bound against it.
type InputData struct {
	Frame *input.Frame
	Table *input.Table

	CursorX, CursorY int
	CursorValid      bool // false until the first poll, so the first delta is zero
	LastInputMethod  InputMethod
}

var Input = donburi.NewComponentType[InputData]()
