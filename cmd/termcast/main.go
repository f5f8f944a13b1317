package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/Maze-Caster/internal/config"
	"github.com/Garsondee/Maze-Caster/internal/logging"
	"github.com/Garsondee/Maze-Caster/internal/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "termcast:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("termcast", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to a YAML config file")
	width := fs.Int("width", 0, "level-one maze width (cells)")
	height := fs.Int("height", 0, "level-one maze height (cells)")
	seed := fs.Int64("seed", 0, "maze seed (0 = time seeded)")
	minimap := fs.Bool("minimap", false, "start with the minimap shown")
	logFile := fs.String("log-file", "", "write logs here (the terminal is busy drawing)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
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
		case "minimap":
			cfg.Render.ShowMinimap = *minimap
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := zap.NewNop()
	if *logFile != "" {
		base, err := logging.New(logging.Options{Level: cfg.Log.Level, Encoding: "json", Outputs: []string{*logFile}})
		if err != nil {
			return err
		}
		defer func() { _ = base.Sync() }()
		logger, _ = logging.WithSession(base)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := term.New(screen, term.Options{Config: cfg, Logger: logger})
	return app.Run(ctx)
}
