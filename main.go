package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trvswgnr/gopher-doom/config"
	"github.com/trvswgnr/gopher-doom/engine"
	"github.com/trvswgnr/gopher-doom/game"
	"github.com/trvswgnr/gopher-doom/level"
	"github.com/trvswgnr/gopher-doom/logger"
	"github.com/trvswgnr/gopher-doom/model"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "doom",
	Short:         "A raycasting first person shooter",
	Long:          `doom runs a grid based raycasting shooter in a window. Shoot every enemy to win.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&configPath, "config", "c", "", "config file (default ./doom.yaml if present)")
	f.Int("width", 800, "screen width in pixels")
	f.Int("height", 600, "screen height in pixels")
	f.Bool("fullscreen", false, "run fullscreen")
	f.Float64("fov", 60, "horizontal field of view in degrees")
	f.Int("workers", 1, "goroutines used to cast wall columns")
	f.String("level", "", "PNG level image")
	f.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	f.String("log-format", "text", "log format (text, json)")
	f.Bool("mute", false, "disable audio")

	rootCmd.AddCommand(snapshotCmd, versionCmd)
}

// session is everything a command needs to run the game headless or windowed.
type session struct {
	cfg *config.Config
	log *logrus.Logger
	sim *model.Simulation
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	lvl, err := level.Load(cfg.Level, cfg.Engine.CellSize)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	grid, spawn, err := lvl.Build(log)
	if err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}
	scene, err := engine.NewScene(cfg.EngineConfig(), grid)
	if err != nil {
		return nil, fmt.Errorf("create scene: %w", err)
	}

	log.WithFields(logrus.Fields{
		"grid":     fmt.Sprintf("%dx%d", grid.Width(), grid.Height()),
		"enemies":  len(spawn.Enemies),
		"powerups": len(spawn.PowerUps),
		"workers":  cfg.Engine.Workers,
	}).Debug("level loaded")

	return &session{
		cfg: cfg,
		log: log,
		sim: model.NewSimulation(scene, spawn, cfg.Rules(), log),
	}, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	g, err := game.New(s.cfg, s.sim, s.log)
	if err != nil {
		return err
	}
	return g.Run()
}
