package model

import (
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-doom/engine"
)

// PlayerStats are the tunables for the player body.
type PlayerStats struct {
	Speed         float64
	RotationSpeed float64
	Size          float64
	MaxHealth     int
	MaxArmor      int
}

func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		Speed:         5,
		RotationSpeed: 0.1,
		Size:          10,
		MaxHealth:     100,
		MaxArmor:      100,
	}
}

type Player struct {
	Position geom.Vector2
	Angle    float64
	Health   int
	Armor    int
	Stats    PlayerStats
	Moved    bool
}

func NewPlayer(x, y, angle float64, stats PlayerStats) Player {
	return Player{
		Position: geom.Vector2{X: x, Y: y},
		Angle:    engine.WrapAngle(angle),
		Health:   stats.MaxHealth,
		Stats:    stats,
	}
}

func (p *Player) Viewer() engine.Viewer {
	return engine.Viewer{Position: p.Position, Heading: p.Angle}
}

func (p *Player) Alive() bool {
	return p.Health > 0
}

// Place teleports the player, rejecting positions in a wall or off the grid.
func (p *Player) Place(grid *engine.Grid, pos geom.Vector2, angle float64) error {
	if grid.IsWallAt(pos.X, pos.Y) {
		return fmt.Errorf("%w: (%.1f, %.1f)", ErrBlocked, pos.X, pos.Y)
	}
	p.Position = pos
	p.Angle = engine.WrapAngle(angle)
	return nil
}

// Rotate turns the player heading, keeping it in [0, 2pi).
func (p *Player) Rotate(delta float64) {
	if delta == 0 {
		return
	}
	p.Angle = engine.WrapAngle(p.Angle + delta)
	p.Moved = true
}

// Move walks the player forward/backward and strafes, checking each axis
// separately against the grid so the player slides along walls.
func (p *Player) Move(grid *engine.Grid, forward, strafe float64) bool {
	var dx, dy float64
	if forward != 0 {
		dx += math.Cos(p.Angle) * p.Stats.Speed * forward
		dy += math.Sin(p.Angle) * p.Stats.Speed * forward
	}
	if strafe != 0 {
		dx += math.Cos(p.Angle+engine.HalfPi) * p.Stats.Speed * strafe
		dy += math.Sin(p.Angle+engine.HalfPi) * p.Stats.Speed * strafe
	}
	if dx == 0 && dy == 0 {
		return false
	}

	pos, moved := slide(grid, p.Position, dx, dy, p.Stats.Size)
	if moved {
		p.Position = pos
		p.Moved = true
	}
	return moved
}

// slide applies dx then dy, each only if both margin probes on that axis are clear.
func slide(grid *engine.Grid, pos geom.Vector2, dx, dy, margin float64) (geom.Vector2, bool) {
	next := pos
	if dx != 0 {
		nx := pos.X + dx
		if !grid.IsWallAt(nx+margin, pos.Y) && !grid.IsWallAt(nx-margin, pos.Y) {
			next.X = nx
		}
	}
	if dy != 0 {
		ny := pos.Y + dy
		if !grid.IsWallAt(next.X, ny+margin) && !grid.IsWallAt(next.X, ny-margin) {
			next.Y = ny
		}
	}
	return next, next != pos
}

// TakeDamage applies damage to armor first and the remainder to health.
// It returns the amount that reached health.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if p.Armor > 0 {
		if p.Armor >= amount {
			p.Armor -= amount
			return 0
		}
		amount -= p.Armor
		p.Armor = 0
	}
	p.Health -= amount
	return amount
}

func (p *Player) Heal(amount int) {
	p.Health = min(p.Health+amount, p.Stats.MaxHealth)
}

func (p *Player) AddArmor(amount int) {
	p.Armor = min(p.Armor+amount, p.Stats.MaxArmor)
}
