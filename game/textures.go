package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/trvswgnr/gopher-doom/raster"
)

// TextureManager holds the GPU copies of the generated textures.
type TextureManager struct {
	textures map[int]*ebiten.Image
}

func NewTextureManager(src *raster.Textures) *TextureManager {
	t := &TextureManager{textures: map[int]*ebiten.Image{}}
	for _, id := range src.IDs() {
		img, _ := src.Get(id)
		t.textures[id] = ebiten.NewImageFromImage(img)
	}
	return t
}

func (t *TextureManager) TextureAt(id int) *ebiten.Image {
	return t.textures[id]
}
