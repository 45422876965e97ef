package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testArenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="32" tileheight="32" infinite="0" nextlayerid="4" nextobjectid="5">
 <objectgroup id="1" name="walls">
  <object id="1" x="0" y="0" width="320" height="32"/>
  <object id="2" x="0" y="224" width="320" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="patrols">
  <object id="3" x="96" y="96" width="32" height="32">
   <properties>
    <property name="range" type="int" value="64"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="PlayerSpawn">
  <object id="4" x="160" y="128">
   <properties>
    <property name="facing" type="int" value="180"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="32" tileheight="32" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="walls">
  <object id="1" x="0" y="0" width="128" height="32"/>
 </objectgroup>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{
		"arena.tmx": &fstest.MapFile{Data: []byte(testArenaTMX)},
	}

	data, err := LoadArena(fsys, "arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, 320, data.MapWidth)
	assert.Equal(t, 256, data.MapHeight)

	require.Len(t, data.Walls, 2)
	assert.Equal(t, WallRect{X: 0, Y: 224, W: 320, H: 32}, data.Walls[1])

	require.Len(t, data.Patrols, 1)
	assert.Equal(t, 64.0, data.Patrols[0].Range)
	assert.Equal(t, 96.0, data.Patrols[0].X)

	assert.True(t, data.HasSpawn)
	assert.Equal(t, 160.0, data.Spawn.X)
	assert.Equal(t, 128.0, data.Spawn.Y)
	assert.Equal(t, 180, data.Spawn.Facing)
}

func TestLoadArena_MissingSpawnFallsBackToCentre(t *testing.T) {
	fsys := fstest.MapFS{
		"arena.tmx": &fstest.MapFile{Data: []byte(noSpawnTMX)},
	}

	data, err := LoadArena(fsys, "arena.tmx")
	require.NoError(t, err)

	assert.False(t, data.HasSpawn)
	assert.Equal(t, 64.0, data.Spawn.X)
	assert.Equal(t, 64.0, data.Spawn.Y)
	assert.Zero(t, data.Spawn.Facing)
}

func TestLoadArena_MissingFile(t *testing.T) {
	_, err := LoadArena(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}
