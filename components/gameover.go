package components

import "github.com/yohamta/donburi"

// GameOverData is the game over screen's state. Input is ignored until
// Elapsed passes the lockout so a held key from the arena does not restart it.
type GameOverData struct {
	Elapsed float64
}

var GameOver = donburi.NewComponentType[GameOverData]()
