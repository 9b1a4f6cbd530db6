package level

import (
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-doom/model"
)

// Placement puts a thing of the named kind at a position given in cells.
type Placement struct {
	Kind string  `mapstructure:"kind"`
	X    float64 `mapstructure:"x"`
	Y    float64 `mapstructure:"y"`
}

// Start is the player start in cells, heading in degrees.
type Start struct {
	X       float64 `mapstructure:"x"`
	Y       float64 `mapstructure:"y"`
	Heading float64 `mapstructure:"heading"`
}

// Definition is a level written out in a config file.
type Definition struct {
	Image    string      `mapstructure:"image"`
	Grid     [][]int     `mapstructure:"grid"`
	Start    Start       `mapstructure:"start"`
	Enemies  []Placement `mapstructure:"enemies"`
	PowerUps []Placement `mapstructure:"powerups"`
}

// FromDefinition builds a level from an inline grid definition.
func FromDefinition(def Definition, cellSize float64) (Level, error) {
	c := func(x, y float64) geom.Vector2 {
		return geom.Vector2{X: x * cellSize, Y: y * cellSize}
	}

	l := Level{
		Codes:    def.Grid,
		CellSize: cellSize,
		Spawn: model.Spawn{
			Start:   c(def.Start.X, def.Start.Y),
			Heading: def.Start.Heading * math.Pi / 180,
		},
	}
	for _, p := range def.Enemies {
		kind, err := model.ParseKind(p.Kind)
		if err != nil {
			return Level{}, fmt.Errorf("level enemy: %w", err)
		}
		l.Spawn.Enemies = append(l.Spawn.Enemies, model.EnemySpawn{Kind: kind, Position: c(p.X, p.Y)})
	}
	for _, p := range def.PowerUps {
		kind, err := model.ParsePowerUpKind(p.Kind)
		if err != nil {
			return Level{}, fmt.Errorf("level power-up: %w", err)
		}
		l.Spawn.PowerUps = append(l.Spawn.PowerUps, model.PowerUpSpawn{Kind: kind, Position: c(p.X, p.Y)})
	}
	return l, nil
}

// Load picks the level source: an image if one is named, then an inline
// grid, then the built-in sample.
func Load(def Definition, cellSize float64) (Level, error) {
	switch {
	case def.Image != "":
		return LoadImage(def.Image, cellSize)
	case len(def.Grid) > 0:
		return FromDefinition(def, cellSize)
	}
	return Sample(cellSize), nil
}
