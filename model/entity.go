package model

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-doom/engine"
)

// Kind is the closed set of enemy types.
type Kind int

const (
	Imp Kind = iota
	Cacodemon
	Baron
)

var kindNames = [...]string{"imp", "cacodemon", "baron"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a name such as "imp" to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// TextureID is the billboard texture for the kind.
func (k Kind) TextureID() int {
	return EnemyTextureBase + int(k)
}

// KindStats are the per-kind attributes, fixed at construction.
type KindStats struct {
	Health      int
	Speed       float64
	AttackRange float64
	Damage      int
	AttackRate  time.Duration
	Score       int
}

var kindStats = map[Kind]KindStats{
	Imp:       {Health: 100, Speed: 2, AttackRange: 200, Damage: 10, AttackRate: 1000 * time.Millisecond, Score: 100},
	Cacodemon: {Health: 150, Speed: 3, AttackRange: 300, Damage: 15, AttackRate: 800 * time.Millisecond, Score: 200},
	Baron:     {Health: 300, Speed: 1.5, AttackRange: 400, Damage: 25, AttackRate: 1500 * time.Millisecond, Score: 500},
}

func (k Kind) Stats() KindStats {
	return kindStats[k]
}

// Entity is an enemy. Dead entities stay in the world for bookkeeping.
type Entity struct {
	ID       int
	Kind     Kind
	Stats    KindStats
	Position geom.Vector2
	Radius   float64
	Health   int
	Alive    bool
	Cooldown time.Duration
}

func NewEntity(id int, kind Kind, x, y, cellSize float64) Entity {
	stats := kind.Stats()
	return Entity{
		ID:       id,
		Kind:     kind,
		Stats:    stats,
		Position: geom.Vector2{X: x, Y: y},
		Radius:   cellSize / 2,
		Health:   stats.Health,
		Alive:    true,
	}
}

func (e *Entity) Body() engine.Body {
	return engine.Body{
		ID:        e.ID,
		Position:  e.Position,
		Radius:    e.Radius,
		Alive:     e.Alive,
		TextureID: e.Kind.TextureID(),
	}
}

// TakeDamage lowers health and reports whether this hit killed the entity.
func (e *Entity) TakeDamage(amount int) bool {
	if !e.Alive {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Alive = false
		return true
	}
	return false
}

// Update chases the player while within attack range and reports whether the
// entity attacks this tick.
func (e *Entity) Update(grid *engine.Grid, target geom.Vector2, dt time.Duration) bool {
	if !e.Alive {
		return false
	}
	if e.Cooldown > 0 {
		e.Cooldown -= dt
	}

	dx := target.X - e.Position.X
	dy := target.Y - e.Position.Y
	dist := math.Hypot(dx, dy)
	if dist >= e.Stats.AttackRange {
		return false
	}

	if dist > 0 {
		step := e.Stats.Speed / dist
		// keep a small margin so enemies don't clip into walls
		e.Position, _ = slide(grid, e.Position, dx*step, dy*step, e.Radius/4)
	}

	if dist < e.Radius*2 && e.Cooldown <= 0 {
		e.Cooldown = e.Stats.AttackRate
		return true
	}
	return false
}
