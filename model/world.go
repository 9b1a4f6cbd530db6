package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-doom/engine"
)

var (
	ErrUnknownKind = errors.New("unknown kind")
	ErrBlocked     = errors.New("position is not open floor")
)

const (
	// PowerUpIDBase offsets power-up body IDs so they never collide with entity IDs.
	PowerUpIDBase = 1000

	EnemyTextureBase   = 1
	PowerUpTextureBase = 16
	WeaponTextureBase  = 32
)

// State is the session phase.
type State int

const (
	Playing State = iota
	GameOver
	Win
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	case Win:
		return "win"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

type EnemySpawn struct {
	Kind     Kind
	Position geom.Vector2
}

type PowerUpSpawn struct {
	Kind     PowerUpKind
	Position geom.Vector2
}

// Spawn is the starting layout of a level: where the player begins and what
// is placed around the map.
type Spawn struct {
	Start    geom.Vector2
	Heading  float64
	Enemies  []EnemySpawn
	PowerUps []PowerUpSpawn
}

// Rules are the session-wide tunables.
type Rules struct {
	Player   PlayerStats
	CellSize float64
	// FallbackDamage is dealt per shot when the player has no weapons.
	FallbackDamage int
	// PickupReach is how close the player must be to collect a power-up.
	PickupReach float64
}

func DefaultRules(cellSize float64) Rules {
	return Rules{
		Player:         DefaultPlayerStats(),
		CellSize:       cellSize,
		FallbackDamage: 25,
		PickupReach:    cellSize,
	}
}

// World is the whole mutable session state. It holds only values so a copy
// taken with Clone shares nothing with its source.
type World struct {
	Player    Player
	Entities  []Entity
	PowerUps  []PowerUp
	Weapons   []Weapon
	Current   int
	Score     int
	HighScore int
	Kills     int
	State     State
	Tick      int
	Elapsed   time.Duration
}

// NewWorld lays out a fresh session from a spawn description.
func NewWorld(spawn Spawn, rules Rules) World {
	w := World{
		Player:  NewPlayer(spawn.Start.X, spawn.Start.Y, spawn.Heading, rules.Player),
		Weapons: DefaultArsenal(),
		State:   Playing,
	}
	for i, es := range spawn.Enemies {
		w.Entities = append(w.Entities, NewEntity(i+1, es.Kind, es.Position.X, es.Position.Y, rules.CellSize))
	}
	for i, ps := range spawn.PowerUps {
		w.PowerUps = append(w.PowerUps, NewPowerUp(PowerUpIDBase+i, ps.Kind, ps.Position.X, ps.Position.Y, rules.CellSize))
	}
	return w
}

// Clone deep copies the world.
func (w World) Clone() World {
	c, err := Clone(&w)
	if err != nil {
		// World holds only plain values and slices of them, copier cannot fail on it
		panic(err)
	}
	return *c
}

// Weapon returns the selected weapon, or nil when the player is unarmed.
func (w *World) Weapon() *Weapon {
	if w.Current < 0 || w.Current >= len(w.Weapons) {
		return nil
	}
	return &w.Weapons[w.Current]
}

// Entity finds an entity by ID.
func (w *World) Entity(id int) *Entity {
	for i := range w.Entities {
		if w.Entities[i].ID == id {
			return &w.Entities[i]
		}
	}
	return nil
}

// Remaining counts the entities still alive.
func (w *World) Remaining() int {
	n := 0
	for i := range w.Entities {
		if w.Entities[i].Alive {
			n++
		}
	}
	return n
}

func (w *World) AddScore(points int) {
	w.Score += points
	if w.Score > w.HighScore {
		w.HighScore = w.Score
	}
}

// Bodies lists every billboard in the world, entities first.
func (w *World) Bodies() []engine.Body {
	bodies := make([]engine.Body, 0, len(w.Entities)+len(w.PowerUps))
	for i := range w.Entities {
		bodies = append(bodies, w.Entities[i].Body())
	}
	for i := range w.PowerUps {
		bodies = append(bodies, w.PowerUps[i].Body())
	}
	return bodies
}

// Targets returns the entities as shot targets, in storage order.
func (w *World) Targets() []engine.Target {
	targets := make([]engine.Target, len(w.Entities))
	for i := range w.Entities {
		targets[i] = &w.Entities[i]
	}
	return targets
}
