package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/trvswgnr/gopher-doom/config"
	"github.com/trvswgnr/gopher-doom/model"
	"github.com/trvswgnr/gopher-doom/raster"
)

// Game is the ebiten front end: it feeds input to the simulation each tick
// and draws the latest world.
type Game struct {
	cfg *config.Config
	sim *model.Simulation
	log logrus.FieldLogger

	world  model.World
	paused bool

	tex        *TextureManager
	fonts      *fonts
	minimap    *ebiten.Image
	crosshairs *Crosshairs
	overlay    *overlay
	sounds     *Sounds

	mouseX, mouseY int
}

func New(cfg *config.Config, sim *model.Simulation, log logrus.FieldLogger) (*Game, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		sim:        sim,
		log:        log,
		world:      sim.NewWorld(),
		tex:        NewTextureManager(raster.NewTextures(cfg.Engine.TextureSize)),
		fonts:      f,
		crosshairs: NewCrosshairs(10),
		overlay:    newOverlay(f),
		sounds:     NewSounds(cfg.Audio.Enabled, cfg.Audio.Volume, log),
	}
	g.generateStaticMinimap()
	g.mouseX, g.mouseY = math.MinInt32, math.MinInt32
	return g, nil
}

// Run opens the window and blocks until the player quits.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.cfg.Screen.Width, g.cfg.Screen.Height)
	ebiten.SetWindowTitle(g.cfg.Screen.Title)
	ebiten.SetFullscreen(g.cfg.Screen.Fullscreen)
	ebiten.SetTPS(model.TickRate)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	g.log.WithFields(logrus.Fields{
		"width":    g.cfg.Screen.Width,
		"height":   g.cfg.Screen.Height,
		"enemies":  len(g.world.Entities),
		"powerups": len(g.world.PowerUps),
	}).Info("starting game")

	// RunGame reports a nil error when Update returns ebiten.Termination.
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	g.log.WithFields(logrus.Fields{
		"score":      g.world.Score,
		"high_score": g.world.HighScore,
		"ticks":      g.world.Tick,
	}).Info("game closed")
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Update is called every tick (1/60 [s]).
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := g.readInput()
	g.crosshairs.Update()
	if g.paused {
		return nil
	}

	next, events := g.sim.Step(g.world, in)
	g.world = next
	g.handleEvents(events)

	if g.world.State != model.Playing {
		g.overlay.set(g.world)
		g.overlay.Update()
	}
	return nil
}

func (g *Game) handleEvents(events []model.Event) {
	g.sounds.Handle(events)
	for _, e := range events {
		switch e.Kind {
		case model.EventHit:
			g.crosshairs.ActivateHitIndicator(hitIndicatorTicks)
		case model.EventStateChange:
			if e.State == model.Playing {
				ebiten.SetCursorMode(ebiten.CursorModeCaptured)
				g.mouseX, g.mouseY = math.MinInt32, math.MinInt32
			} else {
				ebiten.SetCursorMode(ebiten.CursorModeVisible)
			}
		}
		g.log.WithFields(logrus.Fields{
			"event":  e.Kind,
			"id":     e.ID,
			"amount": e.Amount,
		}).Trace("event")
	}
}

// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen, g.sim.Render(g.world))
	g.crosshairs.Draw(screen)
	g.drawMinimap(screen)
	g.drawUI(screen)

	if g.world.State != model.Playing {
		g.overlay.Draw(screen)
	}
}
