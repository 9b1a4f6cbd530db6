package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(t *testing.T, codes [][]int, mutate ...func(*Config)) *Scene {
	t.Helper()
	cfg := DefaultConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	s, err := NewScene(cfg, mustGrid(t, codes))
	require.NoError(t, err)
	return s
}

func TestWallRenderer_HeightNonIncreasingInDistance(t *testing.T) {
	s := newTestScene(t, sampleCodes)
	h := s.Config.ScreenHeight

	prev := h
	for d := 0.0; d <= 2000; d += 0.75 {
		got := s.Walls.ProjectHeight(d)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, h)
		assert.LessOrEqual(t, got, prev, "distance %v", d)
		prev = got
	}
	assert.Equal(t, h, s.Walls.ProjectHeight(-3))
	assert.Equal(t, h, s.Walls.ProjectHeight(0))
	assert.Equal(t, 0, s.Walls.ProjectHeight(math.Inf(1)))
}

func TestWallRenderer_ColumnsOrderedAndClamped(t *testing.T) {
	s := newTestScene(t, sampleCodes)
	v := Viewer{Position: cellPos(1.5, 1.5), Heading: math.Pi / 4}

	cols := s.Walls.Render(v)
	require.Len(t, cols, s.Config.ScreenWidth)
	for x, c := range cols {
		assert.Equal(t, x, c.ScreenX)
		assert.GreaterOrEqual(t, c.Height, 0)
		assert.LessOrEqual(t, c.Height, s.Config.ScreenHeight)
		assert.GreaterOrEqual(t, c.Top, 0)
		assert.LessOrEqual(t, c.Top, s.Config.ScreenHeight)
		assert.GreaterOrEqual(t, c.TexColumn, 0)
		assert.Less(t, c.TexColumn, s.Config.TextureWidth)
		if c.Axis == AxisX {
			assert.Equal(t, 1.0, c.Shade)
		} else {
			assert.Equal(t, s.Config.ShadeY, c.Shade)
		}
	}
}

func TestWallRenderer_FisheyeCorrectionFlattensWall(t *testing.T) {
	s := newTestScene(t, borderCodes(30, 30))
	// facing the east wall squarely, its face is 14 cells away
	v := Viewer{Position: cellPos(15, 15), Heading: 0}

	for _, c := range s.Walls.Render(v) {
		assert.Equal(t, AxisX, c.Axis)
		assert.InDelta(t, 14*64.0, c.Distance, 1e-6)
		assert.Equal(t, 21, c.Height)
	}
}

func TestWallRenderer_WithoutFisheyeCorrection(t *testing.T) {
	s := newTestScene(t, borderCodes(30, 30), func(c *Config) { c.CorrectFisheye = false })
	v := Viewer{Position: cellPos(15, 15), Heading: 0}

	cols := s.Walls.Render(v)
	mid := cols[len(cols)/2]
	edge := cols[0]
	assert.Greater(t, edge.Distance, mid.Distance)
	assert.Less(t, edge.Height, mid.Height)
}

func TestWallRenderer_ParallelMatchesSequential(t *testing.T) {
	seq := newTestScene(t, sampleCodes)
	par := newTestScene(t, sampleCodes, func(c *Config) { c.Workers = 4 })

	for _, heading := range []float64{0, 1, math.Pi / 4, 3, 5.5} {
		v := Viewer{Position: cellPos(2.2, 7.6), Heading: heading}
		assert.Equal(t, seq.Walls.Render(v), par.Walls.Render(v))
	}
}

func TestWallRenderer_RayAngleSpansFOV(t *testing.T) {
	s := newTestScene(t, sampleCodes)
	v := Viewer{Heading: 1}

	assert.InDelta(t, 1-s.Config.HalfFOV(), s.Walls.RayAngle(v, 0), 1e-12)
	assert.InDelta(t, 1.0, s.Walls.RayAngle(v, s.Config.ScreenWidth/2), 1e-12)
}
