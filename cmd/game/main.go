package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Garsondee/Maze-Caster/internal/config"
	"github.com/Garsondee/Maze-Caster/internal/game"
	"github.com/Garsondee/Maze-Caster/internal/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "maze-caster:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("maze-caster", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to a YAML config file")
	width := fs.Int("width", 0, "level-one maze width (cells)")
	height := fs.Int("height", 0, "level-one maze height (cells)")
	seed := fs.Int64("seed", 0, "maze seed (0 = time seeded)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	minimap := fs.Bool("minimap", false, "start with the minimap shown")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadFile(*cfgPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Maze.Width = *width
		case "height":
			cfg.Maze.Height = *height
		case "seed":
			cfg.Maze.Seed = *seed
		case "log-level":
			cfg.Log.Level = *logLevel
		case "minimap":
			cfg.Render.ShowMinimap = *minimap
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	base, err := logging.New(logging.Options{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		return err
	}
	defer func() { _ = base.Sync() }()
	logger, _ := logging.WithSession(base)

	g, err := game.New(game.OptionsFromConfig(cfg, logger))
	if err != nil {
		return err
	}
	logger.Info("starting", zap.Int64("seed", cfg.Maze.Seed), zap.Int("width", cfg.Maze.Width), zap.Int("height", cfg.Maze.Height))

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", zap.Error(err))
		return err
	}
	logger.Info("bye", zap.Int("level", g.State().Level), zap.Int("ticks", g.State().Tick))
	return nil
}
