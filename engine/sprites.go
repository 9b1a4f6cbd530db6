package engine

import (
	"math"
	"sort"
)

// Sprite is a projected billboard. Sprites come out of Project in paint order.
type Sprite struct {
	ScreenX, ScreenY int
	Size             int
	Fog              float64
	TextureID        int
	BodyID           int
	Distance         float64
	Angle            float64
	// Depth is comparable with WallColumn.Distance for per-column occlusion.
	Depth float64
}

// Brightness is the multiplier the compositor applies for distance fog.
func (s Sprite) Brightness() float64 {
	return 1 - s.Fog
}

type spriteCandidate struct {
	body     Body
	distance float64
	angle    float64
}

// SpriteProjector turns bodies into depth-sorted billboards.
type SpriteProjector struct {
	cfg Config
}

func NewSpriteProjector(cfg Config) *SpriteProjector {
	return &SpriteProjector{cfg: cfg}
}

// Visible reports whether a body at the given distance and relative angle
// survives the view cone cull.
func (p *SpriteProjector) Visible(dist, rel float64) bool {
	if dist <= 0 || math.IsNaN(dist) {
		return false
	}
	return math.Abs(rel) < p.cfg.FOV*p.cfg.SpriteMargin
}

// Project culls, sorts farthest first and projects every alive body.
func (p *SpriteProjector) Project(v Viewer, bodies []Body) []Sprite {
	candidates := make([]spriteCandidate, 0, len(bodies))
	for _, b := range bodies {
		if !b.Alive {
			continue
		}
		dist, rel, _ := bearing(v, b.Position)
		if !p.Visible(dist, rel) {
			continue
		}
		candidates = append(candidates, spriteCandidate{body: b, distance: dist, angle: rel})
	}

	// painter's order, equal distances keep input order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance > candidates[j].distance
	})

	sprites := make([]Sprite, 0, len(candidates))
	for _, c := range candidates {
		if s, ok := p.project(c); ok {
			sprites = append(sprites, s)
		}
	}
	return sprites
}

func (p *SpriteProjector) project(c spriteCandidate) (Sprite, bool) {
	w, h := p.cfg.ScreenWidth, p.cfg.ScreenHeight

	size := math.Floor(float64(h) / c.distance * c.body.Radius)
	if size > float64(h) {
		size = float64(h)
	}
	if !(size > 0) {
		return Sprite{}, false
	}
	sz := int(size)

	screenX := int(float64(w)/2 + (c.angle/p.cfg.FOV)*float64(w) - size/2)
	screenY := (h - sz) / 2
	if screenX+sz <= 0 || screenX >= w {
		return Sprite{}, false
	}

	depth := c.distance
	if p.cfg.CorrectFisheye {
		depth *= math.Cos(c.angle)
	}

	fog := c.distance / (p.cfg.MaxDistance() / 2)
	fog = math.Max(0, math.Min(1, fog))

	return Sprite{
		ScreenX:   screenX,
		ScreenY:   screenY,
		Size:      sz,
		Fog:       fog,
		TextureID: c.body.TextureID,
		BodyID:    c.body.ID,
		Distance:  c.distance,
		Angle:     c.angle,
		Depth:     depth,
	}, true
}
