package engine

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by Config.Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid engine config")

// Config holds the fixed screen and world geometry the engine projects with.
type Config struct {
	ScreenWidth  int
	ScreenHeight int

	// FOV is the full horizontal field of view in radians.
	FOV float64

	// MaxDepth is the furthest a ray travels, in cells.
	MaxDepth float64
	CellSize float64

	// ShadeY is the brightness of walls hit on a y-side.
	ShadeY float64

	// SpriteMargin scales FOV to give the sprite culling cone.
	SpriteMargin float64

	TextureWidth   int
	Workers        int
	CorrectFisheye bool
}

// DefaultConfig mirrors the classic 800x600, 60 degree setup with 64 unit cells.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:    800,
		ScreenHeight:   600,
		FOV:            math.Pi / 3,
		MaxDepth:       20,
		CellSize:       64,
		ShadeY:         0.7,
		SpriteMargin:   1 / 1.5,
		TextureWidth:   64,
		Workers:        1,
		CorrectFisheye: true,
	}
}

func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.FOV <= 0 || c.FOV >= math.Pi:
		return fmt.Errorf("%w: fov %.4f rad must be in (0, pi)", ErrInvalidConfig, c.FOV)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth %.2f", ErrInvalidConfig, c.MaxDepth)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %.2f", ErrInvalidConfig, c.CellSize)
	case c.ShadeY < 0 || c.ShadeY > 1:
		return fmt.Errorf("%w: y-side shade %.2f must be in [0, 1]", ErrInvalidConfig, c.ShadeY)
	case c.SpriteMargin <= 0:
		return fmt.Errorf("%w: sprite margin %.2f", ErrInvalidConfig, c.SpriteMargin)
	case c.TextureWidth <= 0:
		return fmt.Errorf("%w: texture width %d", ErrInvalidConfig, c.TextureWidth)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// HalfFOV is half of the horizontal field of view.
func (c Config) HalfFOV() float64 {
	return c.FOV / 2
}

// MaxDistance is MaxDepth expressed in world units.
func (c Config) MaxDistance() float64 {
	return c.MaxDepth * c.CellSize
}
