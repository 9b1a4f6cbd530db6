package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/trvswgnr/gopher-doom/engine"
	"github.com/trvswgnr/gopher-doom/level"
	"github.com/trvswgnr/gopher-doom/model"
)

const EnvPrefix = "DOOM"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Screen Screen           `mapstructure:"screen"`
	Engine Engine           `mapstructure:"engine"`
	Player Player           `mapstructure:"player"`
	Combat Combat           `mapstructure:"combat"`
	Level  level.Definition `mapstructure:"level"`
	Log    Log              `mapstructure:"log"`
	Audio  Audio            `mapstructure:"audio"`
}

type Screen struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Title      string `mapstructure:"title"`
	Fullscreen bool   `mapstructure:"fullscreen"`
}

type Engine struct {
	FOVDegrees     float64 `mapstructure:"fov_degrees"`
	MaxDepth       float64 `mapstructure:"max_depth"`
	CellSize       float64 `mapstructure:"cell_size"`
	ShadeY         float64 `mapstructure:"shade_y"`
	SpriteMargin   float64 `mapstructure:"sprite_margin"`
	TextureSize    int     `mapstructure:"texture_size"`
	Workers        int     `mapstructure:"workers"`
	CorrectFisheye bool    `mapstructure:"correct_fisheye"`
}

type Player struct {
	Speed            float64 `mapstructure:"speed"`
	RotationSpeed    float64 `mapstructure:"rotation_speed"`
	MouseSensitivity float64 `mapstructure:"mouse_sensitivity"`
	Size             float64 `mapstructure:"size"`
	MaxHealth        int     `mapstructure:"max_health"`
	MaxArmor         int     `mapstructure:"max_armor"`
}

type Combat struct {
	FallbackDamage int `mapstructure:"fallback_damage"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Audio struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("screen.width", 800)
	v.SetDefault("screen.height", 600)
	v.SetDefault("screen.title", "gopher-doom")
	v.SetDefault("screen.fullscreen", false)

	v.SetDefault("engine.fov_degrees", 60.0)
	v.SetDefault("engine.max_depth", 20.0)
	v.SetDefault("engine.cell_size", 64.0)
	v.SetDefault("engine.shade_y", 0.7)
	v.SetDefault("engine.sprite_margin", 1/1.5)
	v.SetDefault("engine.texture_size", 64)
	v.SetDefault("engine.workers", 1)
	v.SetDefault("engine.correct_fisheye", true)

	v.SetDefault("player.speed", 5.0)
	v.SetDefault("player.rotation_speed", 0.1)
	v.SetDefault("player.mouse_sensitivity", 0.003)
	v.SetDefault("player.size", 10.0)
	v.SetDefault("player.max_health", 100)
	v.SetDefault("player.max_armor", 100)

	v.SetDefault("combat.fallback_damage", 25)

	v.SetDefault("level.image", "")
	v.SetDefault("level.grid", [][]int{})
	v.SetDefault("level.start.x", 1.5)
	v.SetDefault("level.start.y", 1.5)
	v.SetDefault("level.start.heading", 45.0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
}

// flagKeys maps command line flag names onto config keys.
var flagKeys = map[string]string{
	"width":      "screen.width",
	"height":     "screen.height",
	"fullscreen": "screen.fullscreen",
	"fov":        "engine.fov_degrees",
	"workers":    "engine.workers",
	"level":      "level.image",
	"log-level":  "log.level",
	"log-format": "log.format",
	"mute":       "audio.enabled",
}

// Load reads defaults, then the config file, then DOOM_* environment
// variables, then any of flags that were set. An empty path looks for an
// optional doom.yaml in the working directory.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("doom")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if name == "mute" {
				// --mute is the inverse of audio.enabled
				v.Set(key, f.Value.String() != "true")
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch {
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed %.2f", ErrInvalid, c.Player.Speed)
	case c.Player.Size < 0 || c.Player.Size >= c.Engine.CellSize/2:
		return fmt.Errorf("%w: player size %.2f must be below half a cell", ErrInvalid, c.Player.Size)
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: max health %d", ErrInvalid, c.Player.MaxHealth)
	case c.Player.MaxArmor < 0:
		return fmt.Errorf("%w: max armor %d", ErrInvalid, c.Player.MaxArmor)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %.2f must be in [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

// EngineConfig converts the engine section into the renderer's settings.
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		ScreenWidth:    c.Screen.Width,
		ScreenHeight:   c.Screen.Height,
		FOV:            c.Engine.FOVDegrees * math.Pi / 180,
		MaxDepth:       c.Engine.MaxDepth,
		CellSize:       c.Engine.CellSize,
		ShadeY:         c.Engine.ShadeY,
		SpriteMargin:   c.Engine.SpriteMargin,
		TextureWidth:   c.Engine.TextureSize,
		Workers:        c.Engine.Workers,
		CorrectFisheye: c.Engine.CorrectFisheye,
	}
}

// Rules converts the player and combat sections into simulation rules.
func (c *Config) Rules() model.Rules {
	rules := model.DefaultRules(c.Engine.CellSize)
	rules.Player = model.PlayerStats{
		Speed:         c.Player.Speed,
		RotationSpeed: c.Player.RotationSpeed,
		Size:          c.Player.Size,
		MaxHealth:     c.Player.MaxHealth,
		MaxArmor:      c.Player.MaxArmor,
	}
	rules.FallbackDamage = c.Combat.FallbackDamage
	return rules
}
