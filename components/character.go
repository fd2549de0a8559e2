package components

import (
	"github.com/automoto/rotr/character"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	*character.Character
}

var Character = donburi.NewComponentType[CharacterData]()
