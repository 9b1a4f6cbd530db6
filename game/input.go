package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/trvswgnr/gopher-doom/model"
)

// readInput polls keyboard and mouse into one tick of player intent.
func (g *Game) readInput() model.Input {
	var in model.Input

	// if p, pause game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		if g.paused {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
			g.mouseX, g.mouseY = math.MinInt32, math.MinInt32
		}
	}
	if g.paused {
		return in
	}

	if g.world.State != model.Playing {
		in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
		return in
	}

	moveModifier := 1.0
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		moveModifier = 2.0
	}

	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)

		// reset initial mouse capture position
		g.mouseX, g.mouseY = math.MinInt32, math.MinInt32
	}

	x, y := ebiten.CursorPosition()
	if g.mouseX == math.MinInt32 && g.mouseY == math.MinInt32 {
		// initialize first position to establish delta
		if x != 0 && y != 0 {
			g.mouseX, g.mouseY = x, y
		}
	} else {
		dx := x - g.mouseX
		g.mouseX, g.mouseY = x, y
		in.Turn += g.cfg.Player.MouseSensitivity * float64(dx)
	}

	rot := g.cfg.Player.RotationSpeed
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.Turn -= rot
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.Turn += rot
	}

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Move += moveModifier
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.Move -= moveModifier
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Strafe -= moveModifier
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Strafe += moveModifier
	}

	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Reload = inpututil.IsKeyJustPressed(ebiten.KeyR)

	for slot, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3} {
		if inpututil.IsKeyJustPressed(key) {
			in.Select = slot + 1
		}
	}
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 && in.Select == 0 {
		in.Select = nextSlot(g.world.Current, len(g.world.Weapons), wheelY > 0)
	}
	return in
}

// nextSlot cycles the weapon slot, returned 1-based.
func nextSlot(current, n int, forward bool) int {
	if n == 0 {
		return 0
	}
	if forward {
		return (current+1)%n + 1
	}
	return (current-1+n)%n + 1
}
