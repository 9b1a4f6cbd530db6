package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trvswgnr/gopher-doom/engine"
	"github.com/trvswgnr/gopher-doom/model"
)

func TestTextures_EveryIDExists(t *testing.T) {
	tex := NewTextures(32)
	ids := []int{
		WallTexture,
		model.Imp.TextureID(), model.Cacodemon.TextureID(), model.Baron.TextureID(),
		model.HealthPack.TextureID(), model.ArmorPack.TextureID(), model.AmmoPack.TextureID(),
	}
	for _, k := range []model.WeaponKind{model.Pistol, model.Shotgun, model.Plasma} {
		ids = append(ids, k.TextureID(false), k.TextureID(true))
	}
	for _, id := range ids {
		img, ok := tex.Get(id)
		require.True(t, ok, "texture %d", id)
		assert.Equal(t, image.Rect(0, 0, 32, 32), img.Rect)
	}
	assert.Len(t, tex.IDs(), len(ids))

	_, ok := tex.Get(999)
	assert.False(t, ok)
}

func TestTextures_WeaponFiringFrame(t *testing.T) {
	tex := NewTextures(100)
	tests := []struct {
		kind  model.WeaponKind
		flash image.Point
		want  color.RGBA
	}{
		{model.Pistol, image.Pt(90, 50), flashColor},
		{model.Shotgun, image.Pt(95, 50), flashColor},
		{model.Plasma, image.Pt(90, 50), plasmaColor},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			idle, ok := tex.Get(tt.kind.TextureID(false))
			require.True(t, ok)
			firing, ok := tex.Get(tt.kind.TextureID(true))
			require.True(t, ok)

			assert.NotEqual(t, idle.Pix, firing.Pix)
			assert.Equal(t, gripColor, idle.RGBAAt(50, 50))
			assert.Equal(t, gripColor, firing.RGBAAt(50, 50))
			assert.Equal(t, tt.want, firing.RGBAAt(tt.flash.X, tt.flash.Y))
			assert.Equal(t, uint8(0), idle.RGBAAt(99, 50).A, "transparent around the weapon")
		})
	}
}

func TestFramebuffer_Blend(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Clear(white)

	fb.Blend(0, 0, color.RGBA{10, 20, 30, 255})
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, fb.RGBAAt(0, 0))

	fb.Blend(1, 0, color.RGBA{64, 0, 0, 128})
	assert.Equal(t, color.RGBA{191, 127, 127, 255}, fb.RGBAAt(1, 0))

	// out of bounds is ignored
	fb.Blend(5, 5, black)
}

func TestFramebuffer_Shapes(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	fb.Clear(black)

	fb.FillRect(-5, -5, 10, 10, white)
	assert.Equal(t, white, fb.RGBAAt(4, 4))
	assert.Equal(t, black, fb.RGBAAt(5, 5))

	fb.FillCircle(15, 15, 3, white)
	assert.Equal(t, white, fb.RGBAAt(15, 15))
	assert.Equal(t, black, fb.RGBAAt(19, 19))

	fb.Clear(black)
	fb.FillTriangle(image.Pt(0, 19), image.Pt(19, 19), image.Pt(10, 10), white)
	assert.Equal(t, white, fb.RGBAAt(10, 18))
	assert.Equal(t, black, fb.RGBAAt(1, 11))
}

func TestCompositor_CeilingAndFloor(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	NewCompositor(NewTextures(16)).Compose(fb, engine.Frame{})

	assert.Equal(t, CeilingColor, fb.RGBAAt(0, 0))
	assert.Equal(t, CeilingColor, fb.RGBAAt(9, 4))
	assert.Equal(t, FloorColor, fb.RGBAAt(0, 5))
	assert.Equal(t, FloorColor, fb.RGBAAt(9, 9))
}

func TestCompositor_WallShade(t *testing.T) {
	comp := NewCompositor(NewTextures(16))
	column := func(shade float64) color.RGBA {
		fb := NewFramebuffer(4, 10)
		comp.Compose(fb, engine.Frame{Walls: []engine.WallColumn{
			{ScreenX: 2, Top: 0, Height: 10, Shade: shade, TexColumn: 3},
		}})
		return fb.RGBAAt(2, 5)
	}

	full, half := column(1), column(0.5)
	assert.NotEqual(t, FloorColor, full)
	assert.Equal(t, uint8(float64(full.R)*0.5), half.R)
	assert.Equal(t, uint8(float64(full.G)*0.5), half.G)
	assert.Equal(t, uint8(float64(full.B)*0.5), half.B)
	assert.Equal(t, uint8(255), half.A)
}

func TestCompositor_SpriteDepthTest(t *testing.T) {
	comp := NewCompositor(NewTextures(64))
	walls := make([]engine.WallColumn, 10)
	for i := range walls {
		walls[i] = engine.WallColumn{ScreenX: i, Distance: 100}
	}
	imp := engine.Sprite{ScreenX: 0, ScreenY: 0, Size: 10, TextureID: model.Imp.TextureID()}

	render := func(distance float64) *Framebuffer {
		s := imp
		s.Distance, s.Depth = distance, distance
		fb := NewFramebuffer(10, 10)
		comp.Compose(fb, engine.Frame{Walls: walls, Sprites: []engine.Sprite{s}})
		return fb
	}

	behind := render(500)
	assert.Equal(t, FloorColor, behind.RGBAAt(5, 5), "sprite behind the wall is hidden")

	front := render(50)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, front.RGBAAt(5, 5))
}

func TestCompositor_SpriteFog(t *testing.T) {
	comp := NewCompositor(NewTextures(64))
	fb := NewFramebuffer(10, 10)
	comp.Compose(fb, engine.Frame{Sprites: []engine.Sprite{
		{Size: 10, Fog: 0.5, Distance: 10, TextureID: model.Imp.TextureID()},
	}})
	assert.Equal(t, color.RGBA{127, 0, 0, 255}, fb.RGBAAt(5, 5))
}

func TestText_Draw(t *testing.T) {
	text, err := NewText(16)
	require.NoError(t, err)
	assert.Greater(t, text.Width("HELLO"), text.Width("HI"))

	fb := NewFramebuffer(100, 40)
	fb.Clear(black)
	require.NoError(t, text.Draw(fb, "HI", 5, 5, white))

	lit := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if fb.RGBAAt(x, y) != black {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
}

func TestSavePNG_RoundTrip(t *testing.T) {
	fb := NewFramebuffer(8, 4)
	fb.Clear(black)
	fb.Blend(3, 2, color.RGBA{200, 100, 50, 255})

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, SavePNG(path, fb))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, fb.Bounds(), img.Bounds())
	assert.Equal(t, color.RGBA{200, 100, 50, 255}, color.RGBAModel.Convert(img.At(3, 2)))
}

func TestSavePNG_BadPath(t *testing.T) {
	err := SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png"), NewFramebuffer(1, 1))
	assert.Error(t, err)
}

func room(w, h int) [][]int {
	codes := make([][]int, h)
	for y := range codes {
		codes[y] = make([]int, w)
		for x := range codes[y] {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				codes[y][x] = 1
			}
		}
	}
	return codes
}

func TestRenderer_Draw(t *testing.T) {
	grid, err := engine.NewGrid(room(10, 5), 64)
	require.NoError(t, err)
	scene, err := engine.NewScene(engine.DefaultConfig(), grid)
	require.NoError(t, err)

	spawn := model.Spawn{
		Start:   geom.Vector2{X: 96, Y: 160},
		Enemies: []model.EnemySpawn{{Kind: model.Imp, Position: geom.Vector2{X: 480, Y: 160}}},
	}
	sim := model.NewSimulation(scene, spawn, model.DefaultRules(64), nil)

	r, err := NewRenderer(sim, 32, 14)
	require.NoError(t, err)

	w := sim.NewWorld()
	fb, err := r.Draw(w)
	require.NoError(t, err)
	assert.Equal(t, 800, fb.Width())
	assert.Equal(t, 600, fb.Height())
	assert.Equal(t, hudGreen, fb.RGBAAt(400, 300), "crosshair")
	assert.Equal(t, gripColor, fb.RGBAAt(610, 450), "weapon view")
	assert.NotEqual(t, flashColor, fb.RGBAAt(730, 450))

	w.Weapon().Firing = true
	fb, err = r.Draw(w)
	require.NoError(t, err)
	assert.Equal(t, flashColor, fb.RGBAAt(730, 450), "muzzle flash")

	w.State = model.GameOver
	fb, err = r.Draw(w)
	require.NoError(t, err)
	assert.NotEqual(t, hudGreen, fb.RGBAAt(400, 300), "end screen shades the view")
}
