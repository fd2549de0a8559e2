package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel("levels/arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, 3200, level.Width)
	assert.Equal(t, 2400, level.Height)
	assert.Len(t, level.Walls, 11)
	require.Len(t, level.Hazards, 3)
	assert.Equal(t, 25.0, level.Hazards[0].DamagePerSecond)
	assert.Equal(t, "lava_west", level.Hazards[0].Name)
	assert.Equal(t, PlayerSpawn{X: 1600, Y: 1792, Facing: 270}, level.Spawn)
}

func TestArenaSpawnIsClear(t *testing.T) {
	level := NewLevelLoader().MustLoadLevel("levels/arena.tmx")
	s := level.Spawn
	for _, w := range level.Walls {
		inside := s.X >= w.X && s.X < w.X+w.Width && s.Y >= w.Y && s.Y < w.Y+w.Height
		assert.False(t, inside, "spawn inside wall %s", w.Name)
	}
	for _, h := range level.Hazards {
		inside := s.X >= h.X && s.X < h.X+h.Width && s.Y >= h.Y && s.Y < h.Y+h.Height
		assert.False(t, inside, "spawn inside hazard %s", h.Name)
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := NewLevelLoader().LoadLevel("levels/nope.tmx")
	assert.Error(t, err)
	assert.Panics(t, func() { NewLevelLoader().MustLoadLevel("levels/nope.tmx") })
}

func TestLoadLevelWithoutSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="320" height="32"/>
 </objectgroup>
</map>
`)},
	}

	_, err := NewLevelLoaderFS(fsys).LoadLevel("levels/empty.tmx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSpawn))
}
