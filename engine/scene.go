package engine

// Frame is everything the compositor needs for one frame: walls by column,
// then sprites in paint order.
type Frame struct {
	Walls   []WallColumn
	Sprites []Sprite
}

// Scene wires the grid, caster, wall renderer, sprite projector and resolver
// around one Config.
type Scene struct {
	Config   Config
	Grid     *Grid
	Caster   *Caster
	Walls    *WallRenderer
	Sprites  *SpriteProjector
	Resolver *Resolver
}

// NewScene validates cfg and builds the per-frame pipeline over grid.
func NewScene(cfg Config, grid *Grid) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if grid == nil {
		return nil, ErrEmptyGrid
	}
	// the grid's own cell size wins so world coordinates agree with collision
	cfg.CellSize = grid.CellSize()

	caster := NewCaster(grid, cfg.MaxDepth)
	return &Scene{
		Config:   cfg,
		Grid:     grid,
		Caster:   caster,
		Walls:    NewWallRenderer(cfg, caster),
		Sprites:  NewSpriteProjector(cfg),
		Resolver: NewResolver(cfg, caster),
	}, nil
}

// Render produces a complete frame for the viewer and bodies.
func (s *Scene) Render(v Viewer, bodies []Body) Frame {
	return Frame{
		Walls:   s.Walls.Render(v),
		Sprites: s.Sprites.Project(v, bodies),
	}
}
