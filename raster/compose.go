package raster

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/trvswgnr/gopher-doom/engine"
)

var (
	CeilingColor = color.RGBA{50, 50, 50, 255}
	FloorColor   = color.RGBA{100, 100, 100, 255}
)

// Compositor paints engine frames into a Framebuffer.
type Compositor struct {
	tex *Textures
	// Scaler resamples texture columns and billboards.
	Scaler xdraw.Scaler
}

func NewCompositor(tex *Textures) *Compositor {
	return &Compositor{tex: tex, Scaler: xdraw.NearestNeighbor}
}

// Compose draws ceiling and floor, then wall columns, then sprites in the
// order given. Sprite columns behind a nearer wall are skipped.
func (c *Compositor) Compose(dst *Framebuffer, frame engine.Frame) {
	w, h := dst.Width(), dst.Height()
	dst.FillRect(0, 0, w, h/2, CeilingColor)
	dst.FillRect(0, h/2, w, h-h/2, FloorColor)

	wall, _ := c.tex.Get(WallTexture)
	for _, col := range frame.Walls {
		c.drawWall(dst, wall, col)
	}
	for _, s := range frame.Sprites {
		c.drawSprite(dst, s, frame.Walls)
	}
}

func (c *Compositor) drawWall(dst *Framebuffer, tex *image.RGBA, col engine.WallColumn) {
	if col.Height <= 0 || col.ScreenX < 0 || col.ScreenX >= dst.Width() {
		return
	}
	dr := image.Rect(col.ScreenX, col.Top, col.ScreenX+1, col.Top+col.Height)

	if tex == nil {
		dst.FillRect(dr.Min.X, dr.Min.Y, 1, col.Height, brickColor)
	} else {
		tx := tex.Rect.Min.X + min(col.TexColumn, tex.Rect.Dx()-1)
		sr := image.Rect(tx, tex.Rect.Min.Y, tx+1, tex.Rect.Max.Y)
		c.Scaler.Scale(dst.RGBA, dr, tex, sr, xdraw.Src, nil)
	}
	dst.scaleRGB(dr, col.Shade)
}

func (c *Compositor) drawSprite(dst *Framebuffer, s engine.Sprite, walls []engine.WallColumn) {
	tex, ok := c.tex.Get(s.TextureID)
	if !ok || s.Size <= 0 {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, s.Size, s.Size))
	c.Scaler.Scale(scaled, scaled.Rect, tex, tex.Rect, xdraw.Src, nil)

	brightness := math.Max(0, math.Min(1, s.Brightness()))
	for px := 0; px < s.Size; px++ {
		x := s.ScreenX + px
		if x < 0 || x >= dst.Width() {
			continue
		}
		if x < len(walls) && walls[x].Distance < s.Depth {
			continue
		}
		for py := 0; py < s.Size; py++ {
			p := scaled.RGBAAt(px, py)
			if p.A == 0 {
				continue
			}
			p.R = uint8(float64(p.R) * brightness)
			p.G = uint8(float64(p.G) * brightness)
			p.B = uint8(float64(p.B) * brightness)
			dst.Blend(x, s.ScreenY+py, p)
		}
	}
}
