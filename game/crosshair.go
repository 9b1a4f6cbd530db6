package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// hitIndicatorTicks is how long the crosshair stays red after a hit.
const hitIndicatorTicks = 12

var (
	crosshairColor = color.RGBA{0, 255, 0, 255}
	hitColor       = color.RGBA{255, 0, 0, 255}
)

type Crosshairs struct {
	size     float32
	hitTimer int
}

func NewCrosshairs(size float32) *Crosshairs {
	return &Crosshairs{size: size}
}

func (c *Crosshairs) ActivateHitIndicator(hitTime int) {
	c.hitTimer = hitTime
}

func (c *Crosshairs) IsHitIndicatorActive() bool {
	return c.hitTimer > 0
}

func (c *Crosshairs) Update() {
	if c.hitTimer > 0 {
		c.hitTimer--
	}
}

func (c *Crosshairs) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	cx, cy := float32(b.Dx())/2, float32(b.Dy())/2
	col := crosshairColor
	if c.IsHitIndicatorActive() {
		col = hitColor
	}
	vector.StrokeLine(screen, cx-c.size, cy, cx+c.size, cy, 2, col, false)
	vector.StrokeLine(screen, cx, cy-c.size, cx, cy+c.size, 2, col, false)
}
