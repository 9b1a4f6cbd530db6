package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Framebuffer is a software render target with a few drawing primitives.
type Framebuffer struct {
	*image.RGBA
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (f *Framebuffer) Width() int  { return f.Rect.Dx() }
func (f *Framebuffer) Height() int { return f.Rect.Dy() }

func (f *Framebuffer) Clear(c color.Color) {
	draw.Draw(f.RGBA, f.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Blend paints c over the pixel at x, y using its alpha.
func (f *Framebuffer) Blend(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(f.Rect) || c.A == 0 {
		return
	}
	if c.A == 255 {
		f.SetRGBA(x, y, c)
		return
	}

	dst := f.RGBAAt(x, y)
	sa := uint32(c.A)
	inv := 255 - sa
	// premultiplied src-over
	f.SetRGBA(x, y, color.RGBA{
		R: uint8(uint32(c.R) + uint32(dst.R)*inv/255),
		G: uint8(uint32(c.G) + uint32(dst.G)*inv/255),
		B: uint8(uint32(c.B) + uint32(dst.B)*inv/255),
		A: uint8(sa + uint32(dst.A)*inv/255),
	})
}

// FillRect fills a rectangle, blending when c is translucent.
func (f *Framebuffer) FillRect(x, y, width, height int, c color.Color) {
	r := image.Rect(x, y, x+width, y+height).Intersect(f.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(f.RGBA, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func (f *Framebuffer) FillCircle(cx, cy, radius float64, c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	r2 := radius * radius
	for y := int(math.Floor(cy - radius)); y <= int(math.Ceil(cy+radius)); y++ {
		for x := int(math.Floor(cx - radius)); x <= int(math.Ceil(cx+radius)); x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r2 {
				f.Blend(x, y, rgba)
			}
		}
	}
}

// FillTriangle fills the triangle a, b, c with a half-plane test.
func (f *Framebuffer) FillTriangle(a, b, c image.Point, col color.Color) {
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	minX, maxX := min(a.X, b.X, c.X), max(a.X, b.X, c.X)
	minY, maxY := min(a.Y, b.Y, c.Y), max(a.Y, b.Y, c.Y)

	edge := func(p, q image.Point, x, y int) int {
		return (q.X-p.X)*(y-p.Y) - (q.Y-p.Y)*(x-p.X)
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			e0, e1, e2 := edge(a, b, x, y), edge(b, c, x, y), edge(c, a, x, y)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				f.Blend(x, y, rgba)
			}
		}
	}
}

// StrokeLine stamps circles along the segment.
func (f *Framebuffer) StrokeLine(x1, y1, x2, y2, thickness float64, c color.Color) {
	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		f.FillCircle(x1, y1, thickness/2, c)
		return
	}
	dx /= dist
	dy /= dist
	for i := 0.0; i <= dist; i++ {
		f.FillCircle(x1+dx*i, y1+dy*i, thickness/2, c)
	}
}

// scaleRGB multiplies the color channels in r by k, leaving alpha alone.
func (f *Framebuffer) scaleRGB(r image.Rectangle, k float64) {
	if k >= 1 {
		return
	}
	k = math.Max(0, k)
	r = r.Intersect(f.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := f.RGBAAt(x, y)
			c.R = uint8(float64(c.R) * k)
			c.G = uint8(float64(c.G) * k)
			c.B = uint8(float64(c.B) * k)
			f.SetRGBA(x, y, c)
		}
	}
}
