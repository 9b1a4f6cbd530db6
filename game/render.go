package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trvswgnr/gopher-doom/engine"
	"github.com/trvswgnr/gopher-doom/raster"
)

func (g *Game) drawScene(screen *ebiten.Image, frame engine.Frame) {
	w, h := float32(g.cfg.Screen.Width), float32(g.cfg.Screen.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h/2, raster.CeilingColor, false)
	vector.DrawFilledRect(screen, 0, h/2, w, h-h/2, raster.FloorColor, false)

	wall := g.tex.TextureAt(raster.WallTexture)
	for _, col := range frame.Walls {
		g.drawWallColumn(screen, wall, col)
	}
	for _, s := range frame.Sprites {
		g.drawSprite(screen, s, frame.Walls)
	}
}

func (g *Game) drawWallColumn(screen, tex *ebiten.Image, col engine.WallColumn) {
	if col.Height <= 0 || tex == nil {
		return
	}
	texH := tex.Bounds().Dy()
	tx := min(col.TexColumn, tex.Bounds().Dx()-1)
	sub := tex.SubImage(image.Rect(tx, 0, tx+1, texH)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(1, float64(col.Height)/float64(texH))
	op.GeoM.Translate(float64(col.ScreenX), float64(col.Top))
	shade := float32(col.Shade)
	op.ColorScale.Scale(shade, shade, shade, 1)
	screen.DrawImage(sub, op)
}

// draw sprite column by column, skipping columns a nearer wall covers
func (g *Game) drawSprite(screen *ebiten.Image, s engine.Sprite, walls []engine.WallColumn) {
	tex := g.tex.TextureAt(s.TextureID)
	if tex == nil || s.Size <= 0 {
		return
	}
	texW, texH := tex.Bounds().Dx(), tex.Bounds().Dy()
	b := float32(max(0, min(1, s.Brightness())))

	for stripe := max(s.ScreenX, 0); stripe < min(s.ScreenX+s.Size, g.cfg.Screen.Width); stripe++ {
		if stripe < len(walls) && walls[stripe].Distance < s.Depth {
			continue
		}
		texX := (stripe - s.ScreenX) * texW / s.Size
		sub := tex.SubImage(image.Rect(texX, 0, texX+1, texH)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		op.GeoM.Scale(1, float64(s.Size)/float64(texH))
		op.GeoM.Translate(float64(stripe), float64(s.ScreenY))
		op.ColorScale.Scale(b, b, b, 1)
		screen.DrawImage(sub, op)
	}
}
