// Package assets loads the embedded arena levels.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// ErrNoSpawn is returned for a level without a PlayerSpawn object.
var ErrNoSpawn = errors.New("level has no player spawn")

type PlayerSpawn struct {
	X, Y   float64
	Facing float64 // degrees, from the "facing" property
}

// Rect is an axis-aligned level volume.
type Rect struct {
	Name                string
	X, Y, Width, Height float64
}

type HazardSpawn struct {
	Rect
	DamagePerSecond float64
}

type Level struct {
	Name    string
	Width   int
	Height  int
	Walls   []Rect
	Hazards []HazardSpawn
	Spawn   PlayerSpawn
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads from the embedded levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS reads from another file system, rooted like the embedded one.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Level{}, fmt.Errorf("loading level %s: %w", levelPath, err)
	}

	level := Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	spawned := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, rectOf(o))
			}
		case "Hazards":
			for _, o := range og.Objects {
				level.Hazards = append(level.Hazards, HazardSpawn{
					Rect:            rectOf(o),
					DamagePerSecond: o.Properties.GetFloat("damagePerSecond"),
				})
			}
		case "PlayerSpawn":
			// First spawn wins; the arena is single player.
			if len(og.Objects) == 0 || spawned {
				continue
			}
			o := og.Objects[0]
			level.Spawn = PlayerSpawn{
				X:      o.X,
				Y:      o.Y,
				Facing: o.Properties.GetFloat("facing"),
			}
			spawned = true
		}
	}

	if !spawned {
		return Level{}, fmt.Errorf("loading level %s: %w", levelPath, ErrNoSpawn)
	}
	return level, nil
}

func rectOf(o *tiled.Object) Rect {
	return Rect{
		Name:   o.Name,
		X:      o.X,
		Y:      o.Y,
		Width:  o.Width,
		Height: o.Height,
	}
}
