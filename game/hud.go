package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trvswgnr/gopher-doom/model"
)

var (
	healthColor = color.RGBA{255, 0, 0, 255}
	armorColor  = color.RGBA{0, 0, 255, 255}
	barBack     = color.RGBA{0, 0, 0, 128}
	reloadColor = color.RGBA{255, 255, 0, 255}
)

func (g *Game) drawUI(screen *ebiten.Image) {
	sw, sh := g.cfg.Screen.Width, g.cfg.Screen.Height
	p := g.world.Player

	drawBar(screen, 20, sh-40, p.Health, p.Stats.MaxHealth, healthColor)
	drawBar(screen, 20, sh-70, p.Armor, p.Stats.MaxArmor, armorColor)
	g.drawText(screen, fmt.Sprintf("Health: %d", max(p.Health, 0)), 230, sh-36, color.White)
	g.drawText(screen, fmt.Sprintf("Armor: %d", p.Armor), 230, sh-66, color.White)

	g.drawText(screen, fmt.Sprintf("Score: %d", g.world.Score), 20, 20, color.White)
	g.drawText(screen, fmt.Sprintf("High Score: %d", g.world.HighScore), 20, 40, color.White)
	g.drawText(screen, fmt.Sprintf("Kills: %d/%d", g.world.Kills, len(g.world.Entities)), 20, 60, color.White)

	if wpn := g.world.Weapon(); wpn != nil {
		g.drawWeapon(screen, wpn)
		g.drawText(screen, fmt.Sprintf("%s: %d/%d", wpn.Kind, wpn.Ammo, wpn.Stats.Capacity), sw-200, sh-36, color.White)
		if wpn.Reloading {
			g.drawText(screen, "RELOADING", sw-200, sh-66, reloadColor)
		}
	}

	if g.paused {
		g.drawText(screen, "PAUSED (P to resume)", sw/2-70, sh/2-40, reloadColor)
	}
	if g.cfg.Log.Level == "debug" {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f TPS: %0.2f", ebiten.ActualFPS(), ebiten.ActualTPS()), 10, sh-100)
	}
}

// drawWeapon puts the held weapon in the bottom-right corner, showing the
// muzzle flash frame on the tick it fires.
func (g *Game) drawWeapon(screen *ebiten.Image, wpn *model.Weapon) {
	const size = 200
	tex := g.tex.TextureAt(wpn.TextureID())
	if tex == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(size/float64(tex.Bounds().Dx()), size/float64(tex.Bounds().Dy()))
	op.GeoM.Translate(float64(g.cfg.Screen.Width-size-50), float64(g.cfg.Screen.Height-size-50))
	screen.DrawImage(tex, op)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, g.fonts.hud, op)
}

func drawBar(screen *ebiten.Image, x, y, value, maxValue int, c color.Color) {
	const width, height = 200, 20
	vector.DrawFilledRect(screen, float32(x), float32(y), width, height, barBack, false)
	if maxValue <= 0 || value <= 0 {
		return
	}
	fill := float32(width * min(value, maxValue) / maxValue)
	vector.DrawFilledRect(screen, float32(x), float32(y), fill, height, c, false)
}
