package level

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trvswgnr/gopher-doom/engine"
	"github.com/trvswgnr/gopher-doom/model"
)

func cellCenter(cx, cy float64) geom.Vector2 {
	return geom.Vector2{X: cx * 64, Y: cy * 64}
}

func TestSample_BuildMovesSpawnsOutOfWalls(t *testing.T) {
	log, hook := test.NewNullLogger()

	grid, spawn, err := Sample(64).Build(log)
	require.NoError(t, err)
	assert.Equal(t, 10, grid.Width())
	assert.Equal(t, 10, grid.Height())

	assert.Equal(t, cellCenter(1.5, 1.5), spawn.Start)
	assert.InDelta(t, math.Pi/4, spawn.Heading, 1e-12)

	require.Len(t, spawn.Enemies, 3)
	assert.Equal(t, cellCenter(2.5, 3.5), spawn.Enemies[0].Position, "imp starts inside a wall")
	assert.Equal(t, cellCenter(5.5, 5.5), spawn.Enemies[1].Position)
	assert.Equal(t, cellCenter(7.5, 2.5), spawn.Enemies[2].Position)

	require.Len(t, spawn.PowerUps, 3)
	assert.Equal(t, cellCenter(2.5, 2.5), spawn.PowerUps[0].Position)
	assert.Equal(t, cellCenter(4.5, 4.5), spawn.PowerUps[1].Position)
	assert.Equal(t, cellCenter(5.5, 3.5), spawn.PowerUps[2].Position, "ammo starts inside a wall")

	for _, e := range spawn.Enemies {
		assert.False(t, grid.IsWallAt(e.Position.X, e.Position.Y))
	}

	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestSample_IsACopy(t *testing.T) {
	a := Sample(64)
	a.Codes[1][1] = 1
	assert.Equal(t, 0, Sample(64).Codes[1][1])
}

func TestBuild_Errors(t *testing.T) {
	_, _, err := Level{Codes: [][]int{{1, 1}, {1}}, CellSize: 64}.Build(nil)
	assert.ErrorIs(t, err, engine.ErrRaggedGrid)

	_, _, err = Level{Codes: [][]int{{1, 1}, {1, 1}}, CellSize: 64}.Build(nil)
	assert.ErrorIs(t, err, ErrNoOpenCell)
}

func levelImage() *image.NRGBA {
	rows := [][]color.RGBA{
		{ColorWall, ColorWall, ColorWall, ColorWall, ColorWall},
		{ColorWall, ColorPlayer, ColorEmpty, ColorImp, ColorWall},
		{ColorWall, ColorHealth, ColorBaron, ColorAmmo, ColorWall},
		{ColorWall, ColorWall, ColorWall, ColorWall, ColorWall},
	}
	img := image.NewNRGBA(image.Rect(0, 0, 5, 4))
	for y, row := range rows {
		for x, c := range row {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, levelImage()))

	l, err := Decode(&buf, 64)
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}, l.Codes)
	assert.Equal(t, cellCenter(1.5, 1.5), l.Spawn.Start)

	require.Len(t, l.Spawn.Enemies, 2)
	assert.Equal(t, model.Imp, l.Spawn.Enemies[0].Kind)
	assert.Equal(t, cellCenter(3.5, 1.5), l.Spawn.Enemies[0].Position)
	assert.Equal(t, model.Baron, l.Spawn.Enemies[1].Kind)

	require.Len(t, l.Spawn.PowerUps, 2)
	assert.Equal(t, model.HealthPack, l.Spawn.PowerUps[0].Kind)
	assert.Equal(t, model.AmmoPack, l.Spawn.PowerUps[1].Kind)
}

func TestDecode_Errors(t *testing.T) {
	t.Run("unknown color", func(t *testing.T) {
		img := levelImage()
		img.Set(2, 1, color.RGBA{12, 34, 56, 255})
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, img))

		_, err := Decode(&buf, 64)
		assert.ErrorIs(t, err, ErrUnknownColor)
	})

	t.Run("no player", func(t *testing.T) {
		img := levelImage()
		img.Set(1, 1, ColorEmpty)
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, img))

		_, err := Decode(&buf, 64)
		assert.ErrorIs(t, err, ErrNoPlayer)
	})

	t.Run("not an image", func(t *testing.T) {
		_, err := Decode(bytes.NewBufferString("nope"), 64)
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults to sample", func(t *testing.T) {
		l, err := Load(Definition{}, 64)
		require.NoError(t, err)
		assert.Equal(t, Sample(64), l)
	})

	t.Run("inline grid", func(t *testing.T) {
		def := Definition{
			Grid:     [][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}},
			Start:    Start{X: 1.5, Y: 1.5, Heading: 90},
			Enemies:  []Placement{{Kind: "baron", X: 1.5, Y: 1.5}},
			PowerUps: []Placement{{Kind: "armor", X: 1.2, Y: 1.2}},
		}
		l, err := Load(def, 32)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/2, l.Spawn.Heading, 1e-12)
		assert.Equal(t, geom.Vector2{X: 48, Y: 48}, l.Spawn.Start)
		assert.Equal(t, model.Baron, l.Spawn.Enemies[0].Kind)
		assert.Equal(t, model.ArmorPack, l.Spawn.PowerUps[0].Kind)
	})

	t.Run("bad kind", func(t *testing.T) {
		def := Definition{
			Grid:    [][]int{{0}},
			Enemies: []Placement{{Kind: "spider"}},
		}
		_, err := Load(def, 64)
		assert.ErrorIs(t, err, model.ErrUnknownKind)
	})

	t.Run("image file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "level.png")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, levelImage()))
		require.NoError(t, f.Close())

		l, err := Load(Definition{Image: path, Grid: [][]int{{1}}}, 64)
		require.NoError(t, err)
		assert.Len(t, l.Codes, 4)
	})

	t.Run("missing image file", func(t *testing.T) {
		_, err := Load(Definition{Image: filepath.Join(t.TempDir(), "nope.png")}, 64)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
