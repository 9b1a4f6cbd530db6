package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-doom/engine"
)

type PowerUpKind int

const (
	HealthPack PowerUpKind = iota
	ArmorPack
	AmmoPack
)

var powerUpNames = [...]string{"health", "armor", "ammo"}

func (k PowerUpKind) String() string {
	if k < 0 || int(k) >= len(powerUpNames) {
		return fmt.Sprintf("powerup(%d)", int(k))
	}
	return powerUpNames[k]
}

func ParsePowerUpKind(name string) (PowerUpKind, error) {
	for i, n := range powerUpNames {
		if strings.EqualFold(n, name) {
			return PowerUpKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: power-up %q", ErrUnknownKind, name)
}

func (k PowerUpKind) TextureID() int {
	return PowerUpTextureBase + int(k)
}

// Value is how much health or armor the pickup grants. Ammo pickups refill
// every weapon instead.
func (k PowerUpKind) Value() int {
	switch k {
	case HealthPack, ArmorPack:
		return 25
	case AmmoPack:
		return 50
	}
	return 0
}

type PowerUp struct {
	ID       int
	Kind     PowerUpKind
	Position geom.Vector2
	Radius   float64
	Active   bool
}

func NewPowerUp(id int, kind PowerUpKind, x, y, cellSize float64) PowerUp {
	return PowerUp{
		ID:       id,
		Kind:     kind,
		Position: geom.Vector2{X: x, Y: y},
		Radius:   cellSize / 4,
		Active:   true,
	}
}

func (p *PowerUp) Body() engine.Body {
	return engine.Body{
		ID:        p.ID,
		Position:  p.Position,
		Radius:    p.Radius,
		Alive:     p.Active,
		TextureID: p.Kind.TextureID(),
	}
}

// InReach reports whether pos is close enough to pick the power-up up.
func (p *PowerUp) InReach(pos geom.Vector2, reach float64) bool {
	if !p.Active {
		return false
	}
	return math.Hypot(pos.X-p.Position.X, pos.Y-p.Position.Y) < reach
}
