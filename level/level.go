package level

import (
	"errors"
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/sirupsen/logrus"

	"github.com/trvswgnr/gopher-doom/engine"
	"github.com/trvswgnr/gopher-doom/model"
)

var (
	ErrNoOpenCell   = errors.New("level has no open cell")
	ErrUnknownColor = errors.New("unknown level color")
	ErrNoPlayer     = errors.New("level has no player start")
)

// Level is a map plus what to place on it, in world units.
type Level struct {
	Codes    [][]int
	CellSize float64
	Spawn    model.Spawn
}

var sampleCodes = [][]int{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 1, 1, 0, 1, 0, 0, 1},
	{1, 0, 0, 1, 0, 0, 1, 0, 0, 1},
	{1, 0, 0, 1, 0, 0, 1, 0, 0, 1},
	{1, 0, 0, 1, 0, 1, 1, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// Sample is the built-in 10x10 level.
func Sample(cellSize float64) Level {
	codes := make([][]int, len(sampleCodes))
	for y, row := range sampleCodes {
		codes[y] = append([]int(nil), row...)
	}
	c := func(cx, cy float64) geom.Vector2 {
		return geom.Vector2{X: cx * cellSize, Y: cy * cellSize}
	}
	return Level{
		Codes:    codes,
		CellSize: cellSize,
		Spawn: model.Spawn{
			Start:   c(1.5, 1.5),
			Heading: math.Pi / 4,
			Enemies: []model.EnemySpawn{
				{Kind: model.Imp, Position: c(3.5, 3.5)},
				{Kind: model.Cacodemon, Position: c(5.5, 5.5)},
				{Kind: model.Baron, Position: c(7.5, 2.5)},
			},
			PowerUps: []model.PowerUpSpawn{
				{Kind: model.HealthPack, Position: c(2.5, 2.5)},
				{Kind: model.ArmorPack, Position: c(4.5, 4.5)},
				{Kind: model.AmmoPack, Position: c(6.5, 3.5)},
			},
		},
	}
}

// Build makes the grid and returns a spawn where nothing starts inside a
// wall. Misplaced spawns move to the nearest open cell center.
func (l Level) Build(log logrus.FieldLogger) (*engine.Grid, model.Spawn, error) {
	grid, err := engine.NewGrid(l.Codes, l.CellSize)
	if err != nil {
		return nil, model.Spawn{}, fmt.Errorf("build level grid: %w", err)
	}

	spawn := model.Spawn{Heading: l.Spawn.Heading}
	relocate := func(what string, p geom.Vector2) (geom.Vector2, error) {
		if !grid.IsWallAt(p.X, p.Y) {
			return p, nil
		}
		moved, err := nearestOpen(grid, p)
		if err != nil {
			return p, err
		}
		if log != nil {
			log.WithFields(logrus.Fields{
				"spawn": what,
				"from":  fmt.Sprintf("%.1f,%.1f", p.X, p.Y),
				"to":    fmt.Sprintf("%.1f,%.1f", moved.X, moved.Y),
			}).Warn("spawn inside wall, moved")
		}
		return moved, nil
	}

	if spawn.Start, err = relocate("player", l.Spawn.Start); err != nil {
		return nil, model.Spawn{}, err
	}
	for _, e := range l.Spawn.Enemies {
		if e.Position, err = relocate(e.Kind.String(), e.Position); err != nil {
			return nil, model.Spawn{}, err
		}
		spawn.Enemies = append(spawn.Enemies, e)
	}
	for _, p := range l.Spawn.PowerUps {
		if p.Position, err = relocate(p.Kind.String(), p.Position); err != nil {
			return nil, model.Spawn{}, err
		}
		spawn.PowerUps = append(spawn.PowerUps, p)
	}
	return grid, spawn, nil
}

// nearestOpen searches outward from p's cell for the closest empty cell.
func nearestOpen(grid *engine.Grid, p geom.Vector2) (geom.Vector2, error) {
	type cellIndex struct{ x, y int }

	sx, sy := grid.CellOf(p.X, p.Y)
	sx = clampInt(sx, 0, grid.Width()-1)
	sy = clampInt(sy, 0, grid.Height()-1)

	seen := map[cellIndex]bool{{sx, sy}: true}
	queue := []cellIndex{{sx, sy}}
	dirs := []cellIndex{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if !grid.IsWall(c.x, c.y) {
			size := grid.CellSize()
			return geom.Vector2{X: (float64(c.x) + 0.5) * size, Y: (float64(c.y) + 0.5) * size}, nil
		}
		for _, d := range dirs {
			n := cellIndex{c.x + d.x, c.y + d.y}
			if grid.InBounds(n.x, n.y) && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return p, ErrNoOpenCell
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
