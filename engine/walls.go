package engine

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// WallColumn is one vertical wall slice ready for compositing.
type WallColumn struct {
	ScreenX   int
	Top       int
	Height    int
	Shade     float64
	TexColumn int
	Distance  float64
	Axis      Axis
}

// WallRenderer casts one ray per screen column.
type WallRenderer struct {
	cfg    Config
	caster *Caster
	tanFOV float64
}

func NewWallRenderer(cfg Config, caster *Caster) *WallRenderer {
	return &WallRenderer{
		cfg:    cfg,
		caster: caster,
		tanFOV: math.Tan(cfg.HalfFOV()),
	}
}

// Render returns the wall slices for every screen column, left to right.
func (r *WallRenderer) Render(v Viewer) []WallColumn {
	cols := make([]WallColumn, r.cfg.ScreenWidth)
	r.RenderInto(v, cols)
	return cols
}

// RenderInto fills dst, which must hold ScreenWidth columns, reusing its storage.
func (r *WallRenderer) RenderInto(v Viewer, dst []WallColumn) {
	w := r.cfg.ScreenWidth
	if len(dst) < w {
		w = len(dst)
	}

	if r.cfg.Workers <= 1 {
		for x := 0; x < w; x++ {
			dst[x] = r.Column(v, x)
		}
		return
	}

	// split the screen into contiguous bands, each goroutine writes only its own indices
	band := (w + r.cfg.Workers - 1) / r.cfg.Workers
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(r.cfg.Workers)
	for start := 0; start < w; start += band {
		start, end := start, min(start+band, w)
		g.Go(func() error {
			for x := start; x < end; x++ {
				dst[x] = r.Column(v, x)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// RayAngle is the world angle of the ray through screen column x.
func (r *WallRenderer) RayAngle(v Viewer, x int) float64 {
	c := 2*float64(x)/float64(r.cfg.ScreenWidth) - 1
	return v.Heading + math.Atan(c*r.tanFOV)
}

// Column casts and projects a single screen column.
func (r *WallRenderer) Column(v Viewer, x int) WallColumn {
	angle := r.RayAngle(v, x)
	hit := r.caster.Cast(v.Position, angle)

	dist := hit.Distance
	if r.cfg.CorrectFisheye {
		dist *= math.Cos(angle - v.Heading)
	}

	h := r.ProjectHeight(dist)
	shade := 1.0
	if hit.Axis == AxisY {
		shade = r.cfg.ShadeY
	}

	return WallColumn{
		ScreenX:   x,
		Top:       (r.cfg.ScreenHeight - h) / 2,
		Height:    h,
		Shade:     shade,
		TexColumn: r.texColumn(hit.Offset),
		Distance:  dist,
		Axis:      hit.Axis,
	}
}

// ProjectHeight converts a wall distance into an on-screen slice height.
func (r *WallRenderer) ProjectHeight(dist float64) int {
	screenH := r.cfg.ScreenHeight
	if dist <= 0 {
		return screenH
	}
	h := math.Floor(float64(screenH) / dist * r.cfg.CellSize / 2)
	switch {
	case math.IsNaN(h) || h < 0:
		return 0
	case h > float64(screenH):
		return screenH
	}
	return int(h)
}

func (r *WallRenderer) texColumn(offset float64) int {
	tw := r.cfg.TextureWidth
	col := int(math.Floor(offset * float64(tw) / r.cfg.CellSize))
	if col < 0 {
		return 0
	}
	if col >= tw {
		return tw - 1
	}
	return col
}
