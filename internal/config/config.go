// Package config loads the YAML configuration shared by the game binaries.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window Window `yaml:"window"`
	Maze   Maze   `yaml:"maze"`
	Player Player `yaml:"player"`
	Render Render `yaml:"render"`
	Log    Log    `yaml:"log"`
}

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type Maze struct {
	Width   int   `yaml:"width"`
	Height  int   `yaml:"height"`
	MaxSize int   `yaml:"max_size"`
	Growth  int   `yaml:"growth"` // cells added per dimension each level
	Seed    int64 `yaml:"seed"`   // 0 = time seeded
}

type Player struct {
	MoveSpeed float64 `yaml:"move_speed"` // cells per tick
	TurnSpeed float64 `yaml:"turn_speed"` // radians per tick
}

type Render struct {
	Columns     int     `yaml:"columns"`
	FOVDeg      float64 `yaml:"fov_deg"`
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
	MinimapZoom float64 `yaml:"minimap_zoom"`
	ShowMinimap bool    `yaml:"show_minimap"`
	ShowHUD     bool    `yaml:"show_hud"`
}

type Log struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // console or json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{Title: "Maze Caster", Width: 960, Height: 600},
		Maze:   Maze{Width: 21, Height: 21, MaxSize: 61, Growth: 2},
		Player: Player{MoveSpeed: 0.05, TurnSpeed: 0.035},
		Render: Render{
			Columns:     240,
			FOVDeg:      90,
			Near:        0.25,
			Far:         10,
			MinimapZoom: 6,
			ShowHUD:     true,
		},
		Log: Log{Level: "info", Encoding: "console"},
	}
}

// Load decodes YAML from r over the defaults and validates the result.
// Fields missing from the document keep their default values.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile loads path, or returns the defaults when path is empty.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path) // #nosec G304 -- operator-supplied config path
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	cfg, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every out-of-range field at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Maze.Growth >= 0, "maze.growth %d must not be negative", c.Maze.Growth)
	check(c.Player.MoveSpeed > 0 && c.Player.MoveSpeed < 1, "player.move_speed %g must be in (0,1)", c.Player.MoveSpeed)
	check(c.Player.TurnSpeed > 0, "player.turn_speed %g must be positive", c.Player.TurnSpeed)
	check(c.Render.Columns > 0, "render.columns %d must be positive", c.Render.Columns)
	check(c.Render.FOVDeg > 0 && c.Render.FOVDeg < 180, "render.fov_deg %g must be in (0,180)", c.Render.FOVDeg)
	check(c.Render.Near > 0, "render.near %g must be positive", c.Render.Near)
	check(c.Render.Far > c.Render.Near, "render.far %g must exceed render.near %g", c.Render.Far, c.Render.Near)
	check(c.Render.MinimapZoom > 0, "render.minimap_zoom %g must be positive", c.Render.MinimapZoom)
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		check(false, "log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		check(false, "log.encoding %q is not console or json", c.Log.Encoding)
	}
	return errors.Join(errs...)
}
