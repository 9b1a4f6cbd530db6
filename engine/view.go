package engine

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

const (
	Pi2    = 2 * math.Pi
	HalfPi = math.Pi / 2
)

// Viewer is the camera: a world position and a heading in radians.
type Viewer struct {
	Position geom.Vector2
	Heading  float64
}

// Body is anything drawn as a billboard or targeted by a shot.
type Body struct {
	ID        int
	Position  geom.Vector2
	Radius    float64
	Alive     bool
	TextureID int
}

// WrapAngle maps an angle into [0, 2pi).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, Pi2)
	if a < 0 {
		a += Pi2
	}
	if a >= Pi2 {
		a = 0
	}
	return a
}

// NormalizeAngle maps an angle into (-pi, pi].
func NormalizeAngle(a float64) float64 {
	if math.IsInf(a, 0) || math.IsNaN(a) {
		return 0
	}
	if math.Abs(a) > 4*Pi2 {
		a = math.Mod(a, Pi2)
	}
	for a <= -math.Pi {
		a += Pi2
	}
	for a > math.Pi {
		a -= Pi2
	}
	return a
}

// bearing returns distance and heading-relative angle from the viewer to p.
func bearing(v Viewer, p geom.Vector2) (dist, rel, abs float64) {
	dx := p.X - v.Position.X
	dy := p.Y - v.Position.Y
	dist = math.Sqrt(dx*dx + dy*dy)
	abs = math.Atan2(dy, dx)
	rel = NormalizeAngle(abs - v.Heading)
	return dist, rel, abs
}
