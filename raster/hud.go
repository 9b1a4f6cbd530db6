package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/trvswgnr/gopher-doom/engine"
	"github.com/trvswgnr/gopher-doom/model"
)

const (
	minimapScale = 8
	// weaponSize is the on-screen edge of the weapon view, drawn weaponSize+50
	// pixels in from the bottom-right corner.
	weaponSize = 200
)

var (
	hudRed    = color.RGBA{255, 0, 0, 255}
	hudBlue   = color.RGBA{0, 0, 255, 255}
	hudGreen  = color.RGBA{0, 255, 0, 255}
	hudYellow = color.RGBA{255, 255, 0, 255}
	hudShade  = color.RGBA{0, 0, 0, 128}
)

type label struct {
	s    string
	x, y int
	c    color.Color
}

// HUD draws the status overlays on top of a composed frame.
type HUD struct {
	text *Text
	grid *engine.Grid
	tex  *Textures
}

func NewHUD(text *Text, grid *engine.Grid, tex *Textures) *HUD {
	return &HUD{text: text, grid: grid, tex: tex}
}

func (h *HUD) Draw(dst *Framebuffer, w model.World) error {
	sw, sh := dst.Width(), dst.Height()

	h.drawWeapon(dst, w)
	h.drawCrosshair(dst)
	h.drawMinimap(dst, w)

	// health and armor bars
	drawBar(dst, 20, sh-40, 200, 20, w.Player.Health, w.Player.Stats.MaxHealth, hudRed)
	drawBar(dst, 20, sh-70, 200, 20, w.Player.Armor, w.Player.Stats.MaxArmor, hudBlue)

	lines := []label{
		{fmt.Sprintf("Health: %d", max(w.Player.Health, 0)), 230, sh - 40, white},
		{fmt.Sprintf("Armor: %d", w.Player.Armor), 230, sh - 70, white},
		{fmt.Sprintf("Score: %d", w.Score), 20, 20, white},
		{fmt.Sprintf("High Score: %d", w.HighScore), 20, 45, white},
		{fmt.Sprintf("Kills: %d/%d", w.Kills, len(w.Entities)), 20, 70, white},
	}
	if wpn := w.Weapon(); wpn != nil {
		lines = append(lines, label{fmt.Sprintf("%s: %d/%d", wpn.Kind, wpn.Ammo, wpn.Stats.Capacity), sw - 200, sh - 40, white})
		if wpn.Reloading {
			lines = append(lines, label{"RELOADING", sw - 200, sh - 70, hudYellow})
		}
	}
	for _, l := range lines {
		if err := h.text.Draw(dst, l.s, l.x, l.y, l.c); err != nil {
			return err
		}
	}

	if w.State != model.Playing {
		return h.drawEndScreen(dst, w)
	}
	return nil
}

// drawWeapon puts the held weapon in the bottom-right corner, showing the
// muzzle flash frame on the tick it fires.
func (h *HUD) drawWeapon(dst *Framebuffer, w model.World) {
	wpn := w.Weapon()
	if wpn == nil || h.tex == nil {
		return
	}
	img, ok := h.tex.Get(wpn.TextureID())
	if !ok {
		return
	}
	x, y := dst.Width()-weaponSize-50, dst.Height()-weaponSize-50
	r := image.Rect(x, y, x+weaponSize, y+weaponSize)
	xdraw.NearestNeighbor.Scale(dst.RGBA, r, img, img.Rect, xdraw.Over, nil)
}

func drawBar(dst *Framebuffer, x, y, width, height, value, maxValue int, c color.Color) {
	dst.FillRect(x, y, width, height, hudShade)
	if maxValue <= 0 || value <= 0 {
		return
	}
	fill := width * min(value, maxValue) / maxValue
	dst.FillRect(x, y, fill, height, c)
}

func (h *HUD) drawCrosshair(dst *Framebuffer) {
	cx, cy := float64(dst.Width()/2), float64(dst.Height()/2)
	dst.StrokeLine(cx-10, cy, cx+10, cy, 2, hudGreen)
	dst.StrokeLine(cx, cy-10, cx, cy+10, 2, hudGreen)
}

// drawMinimap puts a top-right overview of walls, the player and live enemies.
func (h *HUD) drawMinimap(dst *Framebuffer, w model.World) {
	if h.grid == nil {
		return
	}
	ox := dst.Width() - h.grid.Width()*minimapScale - 10
	oy := 10
	for y := 0; y < h.grid.Height(); y++ {
		for x := 0; x < h.grid.Width(); x++ {
			c := color.RGBA{200, 200, 200, 255}
			if h.grid.IsWall(x, y) {
				c = color.RGBA{50, 50, 50, 255}
			}
			dst.FillRect(ox+x*minimapScale, oy+y*minimapScale, minimapScale, minimapScale, c)
		}
	}

	toMap := func(wx, wy float64) (float64, float64) {
		cell := h.grid.CellSize()
		return float64(ox) + wx/cell*minimapScale, float64(oy) + wy/cell*minimapScale
	}

	for _, e := range w.Entities {
		if !e.Alive {
			continue
		}
		ex, ey := toMap(e.Position.X, e.Position.Y)
		dst.FillCircle(ex, ey, minimapScale/2, hudRed)
	}

	px, py := toMap(w.Player.Position.X, w.Player.Position.Y)
	a := w.Player.Angle
	size := float64(minimapScale)
	pt := func(angle float64) image.Point {
		return image.Pt(int(px+size*math.Cos(angle)), int(py+size*math.Sin(angle)))
	}
	dst.FillTriangle(pt(a), pt(a+2.5), pt(a-2.5), color.RGBA{0, 255, 255, 255})
}

func (h *HUD) drawEndScreen(dst *Framebuffer, w model.World) error {
	sw, sh := dst.Width(), dst.Height()
	dst.FillRect(0, 0, sw, sh, hudShade)

	title, c := "GAME OVER", color.Color(hudRed)
	if w.State == model.Win {
		title, c = "YOU WIN", hudGreen
	}
	if err := h.text.DrawCentered(dst, title, sw/2, sh/3, c); err != nil {
		return err
	}

	stats := []string{
		fmt.Sprintf("Score: %d", w.Score),
		fmt.Sprintf("High Score: %d", w.HighScore),
		fmt.Sprintf("Kills: %d/%d", w.Kills, len(w.Entities)),
		"",
		"Press R to Restart",
		"Press ESC to Quit",
	}
	for i, s := range stats {
		if err := h.text.DrawCentered(dst, s, sw/2, sh/2+i*30, white); err != nil {
			return err
		}
	}
	return nil
}
