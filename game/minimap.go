package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const minimapScale = 8

var (
	minimapWall    = color.RGBA{50, 50, 50, 255}
	minimapFloor   = color.RGBA{200, 200, 200, 255}
	minimapPlayer  = color.RGBA{0, 255, 255, 255}
	minimapEnemy   = color.RGBA{255, 0, 0, 255}
	minimapPowerUp = color.RGBA{0, 200, 0, 255}
)

var emptySubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// generateStaticMinimap draws the walls once; the grid never changes.
func (g *Game) generateStaticMinimap() {
	grid := g.sim.Scene().Grid
	g.minimap = ebiten.NewImage(grid.Width()*minimapScale, grid.Height()*minimapScale)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := minimapFloor
			if grid.IsWall(x, y) {
				c = minimapWall
			}
			vector.DrawFilledRect(g.minimap, float32(x*minimapScale), float32(y*minimapScale), minimapScale, minimapScale, c, false)
		}
	}
}

func (g *Game) minimapOrigin() (float32, float32) {
	return float32(g.cfg.Screen.Width - g.minimap.Bounds().Dx() - 10), 10
}

// toMinimap converts world units to screen coordinates on the minimap.
func (g *Game) toMinimap(x, y float64) (float32, float32) {
	ox, oy := g.minimapOrigin()
	cell := g.sim.Scene().Grid.CellSize()
	return ox + float32(x/cell*minimapScale), oy + float32(y/cell*minimapScale)
}

func (g *Game) drawMinimap(screen *ebiten.Image) {
	ox, oy := g.minimapOrigin()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(g.minimap, op)

	for _, pu := range g.world.PowerUps {
		if !pu.Active {
			continue
		}
		x, y := g.toMinimap(pu.Position.X, pu.Position.Y)
		vector.DrawFilledCircle(screen, x, y, minimapScale/4, minimapPowerUp, false)
	}
	for _, e := range g.world.Entities {
		if !e.Alive {
			continue
		}
		x, y := g.toMinimap(e.Position.X, e.Position.Y)
		vector.DrawFilledCircle(screen, x, y, minimapScale/2, minimapEnemy, false)
	}
	g.drawMinimapPlayer(screen)
}

func (g *Game) drawMinimapPlayer(screen *ebiten.Image) {
	p := g.world.Player
	px, py := g.toMinimap(p.Position.X, p.Position.Y)

	triangleSize := float32(minimapScale)
	vertex := func(angle float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   px + triangleSize*float32(math.Cos(angle)),
			DstY:   py + triangleSize*float32(math.Sin(angle)),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(minimapPlayer.R) / 255,
			ColorG: float32(minimapPlayer.G) / 255,
			ColorB: float32(minimapPlayer.B) / 255,
			ColorA: 1,
		}
	}
	vertices := []ebiten.Vertex{vertex(p.Angle), vertex(p.Angle + 2.5), vertex(p.Angle - 2.5)}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, emptySubImage, nil)
}
