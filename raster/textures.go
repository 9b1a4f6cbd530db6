package raster

import (
	"image"
	"image/color"

	"github.com/trvswgnr/gopher-doom/model"
)

// WallTexture is the ID of the wall texture.
const WallTexture = 0

// Textures holds every generated texture keyed by texture ID.
type Textures struct {
	images map[int]*image.RGBA
}

// NewTextures generates the wall, enemy, power-up and weapon textures at
// size x size.
func NewTextures(size int) *Textures {
	t := &Textures{images: map[int]*image.RGBA{}}
	t.images[WallTexture] = brickTexture(size)
	for _, k := range []model.Kind{model.Imp, model.Cacodemon, model.Baron} {
		t.images[k.TextureID()] = enemyTexture(k, size)
	}
	for _, k := range []model.PowerUpKind{model.HealthPack, model.ArmorPack, model.AmmoPack} {
		t.images[k.TextureID()] = powerUpTexture(k, size)
	}
	for _, k := range []model.WeaponKind{model.Pistol, model.Shotgun, model.Plasma} {
		t.images[k.TextureID(false)] = weaponTexture(k, false, size)
		t.images[k.TextureID(true)] = weaponTexture(k, true, size)
	}
	return t
}

func (t *Textures) Get(id int) (*image.RGBA, bool) {
	img, ok := t.images[id]
	return img, ok
}

// IDs lists the texture IDs that exist.
func (t *Textures) IDs() []int {
	ids := make([]int, 0, len(t.images))
	for id := range t.images {
		ids = append(ids, id)
	}
	return ids
}

var (
	brickColor  = color.RGBA{150, 60, 40, 255}
	mortarColor = color.RGBA{90, 90, 90, 255}

	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func brickTexture(size int) *image.RGBA {
	fb := NewFramebuffer(size, size)
	fb.Clear(mortarColor)

	rowH := max(size/4, 2)
	brickW := max(size/2, 2)
	for row := 0; row*rowH < size; row++ {
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		for x := -offset; x < size; x += brickW {
			// vary each brick a little so the wall doesn't look flat
			v := uint8((row*7 + (x+offset)/brickW*13) % 5 * 6)
			c := color.RGBA{brickColor.R - v, brickColor.G, brickColor.B + v/2, 255}
			fb.FillRect(x+1, row*rowH+1, brickW-2, rowH-2, c)
		}
	}
	return fb.RGBA
}

var enemyColors = map[model.Kind]color.RGBA{
	model.Imp:       {255, 0, 0, 255},
	model.Cacodemon: {255, 0, 255, 255},
	model.Baron:     {139, 0, 0, 255},
}

func enemyTexture(kind model.Kind, size int) *image.RGBA {
	fb := NewFramebuffer(size, size)
	s := float64(size)
	fb.FillCircle(s/2, s/2+s/16, s/2-s/16, enemyColors[kind])

	switch kind {
	case model.Imp:
		fb.FillCircle(s/3, s/3, s/10, black)
		fb.FillCircle(2*s/3, s/3, s/10, black)
		fb.FillTriangle(image.Pt(size/4, size/4), image.Pt(size/2, 0), image.Pt(3*size/4, size/4), black)
	case model.Cacodemon:
		fb.FillCircle(s/2, s/2, s/3, white)
		fb.FillCircle(s/2, s/2, s/4, black)
		fb.FillCircle(s/2, s/2, s/8, white)
	case model.Baron:
		fb.FillCircle(s/3, s/3, s/8, black)
		fb.FillCircle(2*s/3, s/3, s/8, black)
		fb.FillTriangle(image.Pt(size/4, size/4), image.Pt(size/2, 0), image.Pt(3*size/4, size/4), black)
		fb.FillTriangle(image.Pt(size/4, size/4), image.Pt(size/2, size-1), image.Pt(3*size/4, size/4), black)
	}
	return fb.RGBA
}

var powerUpColors = map[model.PowerUpKind]color.RGBA{
	model.HealthPack: {0, 255, 0, 255},
	model.ArmorPack:  {0, 0, 255, 255},
	model.AmmoPack:   {255, 255, 0, 255},
}

func powerUpTexture(kind model.PowerUpKind, size int) *image.RGBA {
	fb := NewFramebuffer(size, size)
	s := float64(size)
	c := powerUpColors[kind]
	fb.FillCircle(s/2, s/2, s/2, c)

	switch kind {
	case model.HealthPack:
		fb.FillCircle(s/2, s/2, s/3, white)
		fb.FillCircle(s/2, s/2, s/4, c)
	case model.ArmorPack:
		fb.FillCircle(s/2, s/2, s/3, white)
		fb.FillRect(size/4, size/4, size/2, size/2, c)
	case model.AmmoPack:
		fb.FillRect(size/4, size/4, size/2, size/2, white)
	}
	return fb.RGBA
}

var (
	gripColor   = color.RGBA{100, 100, 100, 255}
	barrelColor = color.RGBA{150, 150, 150, 255}
	muzzleColor = color.RGBA{200, 200, 200, 255}
	plasmaColor = color.RGBA{0, 255, 255, 255}
	flashColor  = color.RGBA{255, 255, 0, 255}
)

// weaponTexture draws the first-person view of a weapon on a 100 unit canvas
// scaled to size. The firing frame adds the muzzle flash.
func weaponTexture(kind model.WeaponKind, firing bool, size int) *image.RGBA {
	fb := NewFramebuffer(size, size)
	k := float64(size) / 100
	rect := func(x, y, w, h float64, c color.Color) {
		fb.FillRect(int(x*k), int(y*k), max(int(w*k), 1), max(int(h*k), 1), c)
	}

	rect(20, 40, 60, 20, gripColor)
	rect(70, 45, 20, 10, barrelColor)
	switch kind {
	case model.Pistol:
		fb.FillCircle(85*k, 50*k, 5*k, muzzleColor)
	case model.Shotgun:
		rect(75, 40, 15, 20, muzzleColor)
	case model.Plasma:
		rect(75, 45, 15, 10, plasmaColor)
	}
	if !firing {
		return fb.RGBA
	}

	switch kind {
	case model.Pistol:
		fb.FillCircle(90*k, 50*k, 10*k, flashColor)
	case model.Shotgun:
		fb.FillCircle(95*k, 50*k, 15*k, flashColor)
	case model.Plasma:
		fb.FillCircle(90*k, 50*k, 20*k, plasmaColor)
	}
	return fb.RGBA
}
