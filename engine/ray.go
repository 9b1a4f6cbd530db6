package engine

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Axis identifies which kind of grid line a ray crossed when it hit.
type Axis int

const (
	// AxisX is a hit on a vertical grid line (the ray stepped along x).
	AxisX Axis = iota
	// AxisY is a hit on a horizontal grid line (the ray stepped along y).
	AxisY
)

// Hit is the result of one cast. Distance is in world units measured along
// the ray; Offset is the position along the struck wall face in [0, CellSize).
type Hit struct {
	Distance     float64
	Offset       float64
	Axis         Axis
	CellX, CellY int
	Wall         bool
}

// ray is the DDA state for a single cast, in cell units.
type ray struct {
	originX, originY float64
	dirX, dirY       float64
	deltaX, deltaY   float64
	sideX, sideY     float64
	mapX, mapY       int
	stepX, stepY     int
	axis             Axis
	hit              bool
}

// Caster walks rays through a Grid.
type Caster struct {
	grid     *Grid
	maxDepth float64
}

// NewCaster returns a caster that gives up after maxDepth cells.
func NewCaster(grid *Grid, maxDepth float64) *Caster {
	return &Caster{grid: grid, maxDepth: maxDepth}
}

func (c *Caster) Grid() *Grid { return c.grid }

// MaxDistance is the longest distance Cast can report, in world units.
func (c *Caster) MaxDistance() float64 {
	return c.maxDepth * c.grid.cellSize
}

// Cast fires a ray from origin at the given world angle.
func (c *Caster) Cast(origin geom.Vector2, angle float64) Hit {
	return c.CastDir(origin, math.Cos(angle), math.Sin(angle))
}

// CastDir fires a ray along a unit direction vector.
func (c *Caster) CastDir(origin geom.Vector2, dirX, dirY float64) Hit {
	r := c.newRay(origin, dirX, dirY)

	for !r.hit {
		var crossed float64
		// equal side distances step x first
		if r.sideX <= r.sideY {
			crossed = r.sideX
			r.sideX += r.deltaX
			r.mapX += r.stepX
			r.axis = AxisX
		} else {
			crossed = r.sideY
			r.sideY += r.deltaY
			r.mapY += r.stepY
			r.axis = AxisY
		}

		if crossed > c.maxDepth || !c.grid.InBounds(r.mapX, r.mapY) {
			return c.miss()
		}
		if c.grid.IsWall(r.mapX, r.mapY) {
			r.hit = true
		}
	}

	// exact distance along the ray to the face that was crossed
	var dist, wall float64
	if r.axis == AxisX {
		dist = (float64(r.mapX) - r.originX + float64(1-r.stepX)/2) / r.dirX
		wall = r.originY + dist*r.dirY
	} else {
		dist = (float64(r.mapY) - r.originY + float64(1-r.stepY)/2) / r.dirY
		wall = r.originX + dist*r.dirX
	}
	if dist < 0 {
		dist = 0
	}
	if dist > c.maxDepth {
		return c.miss()
	}

	cell := c.grid.cellSize
	offset := (wall - math.Floor(wall)) * cell
	if offset >= cell {
		offset = 0
	}

	return Hit{
		Distance: dist * cell,
		Offset:   offset,
		Axis:     r.axis,
		CellX:    r.mapX,
		CellY:    r.mapY,
		Wall:     true,
	}
}

func (c *Caster) newRay(origin geom.Vector2, dirX, dirY float64) ray {
	cell := c.grid.cellSize
	r := ray{
		originX: origin.X / cell,
		originY: origin.Y / cell,
		dirX:    dirX,
		dirY:    dirY,
		deltaX:  math.Inf(1),
		deltaY:  math.Inf(1),
	}
	r.mapX = int(math.Floor(r.originX))
	r.mapY = int(math.Floor(r.originY))

	if dirX != 0 {
		r.deltaX = math.Abs(1 / dirX)
	}
	if dirY != 0 {
		r.deltaY = math.Abs(1 / dirY)
	}

	if dirX < 0 {
		r.stepX = -1
		r.sideX = (r.originX - float64(r.mapX)) * r.deltaX
	} else {
		r.stepX = 1
		r.sideX = (float64(r.mapX) + 1 - r.originX) * r.deltaX
	}
	if dirY < 0 {
		r.stepY = -1
		r.sideY = (r.originY - float64(r.mapY)) * r.deltaY
	} else {
		r.stepY = 1
		r.sideY = (float64(r.mapY) + 1 - r.originY) * r.deltaY
	}
	return r
}

func (c *Caster) miss() Hit {
	return Hit{Distance: c.MaxDistance(), Axis: AxisX, CellX: -1, CellY: -1}
}
