package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Text draws strings with a TrueType font.
type Text struct {
	font *truetype.Font
	size float64
}

// NewText parses the bundled Go Regular font at the given point size.
func NewText(size float64) (*Text, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Text{font: f, size: size}, nil
}

func (t *Text) Size() float64 { return t.size }

// Face returns a font.Face for measuring or for other renderers.
func (t *Text) Face() font.Face {
	return truetype.NewFace(t.font, &truetype.Options{Size: t.size, Hinting: font.HintingFull})
}

// Width measures s in pixels.
func (t *Text) Width(s string) int {
	face := t.Face()
	defer face.Close()
	return font.MeasureString(face, s).Ceil()
}

// Draw writes s with its top-left corner at x, y.
func (t *Text) Draw(dst *Framebuffer, s string, x, y int, c color.Color) error {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(t.font)
	ctx.SetFontSize(t.size)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst.RGBA)
	ctx.SetSrc(image.NewUniform(c))
	ctx.SetHinting(font.HintingFull)

	pt := freetype.Pt(x, y+int(ctx.PointToFixed(t.size)>>6))
	if _, err := ctx.DrawString(s, pt); err != nil {
		return fmt.Errorf("draw %q: %w", s, err)
	}
	return nil
}

// DrawCentered writes s horizontally centered on cx.
func (t *Text) DrawCentered(dst *Framebuffer, s string, cx, y int, c color.Color) error {
	return t.Draw(dst, s, cx-t.Width(s)/2, y, c)
}
