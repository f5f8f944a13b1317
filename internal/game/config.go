package game

import (
	"github.com/Garsondee/Maze-Caster/internal/config"
	"go.uber.org/zap"
)

// SessionOptionsFromConfig maps the maze and player settings onto a Session.
func SessionOptionsFromConfig(cfg config.Config) []SessionOption {
	return []SessionOption{
		WithMazeSize(cfg.Maze.Width, cfg.Maze.Height),
		WithMaxMazeSize(cfg.Maze.MaxSize),
		WithLevelGrowth(cfg.Maze.Growth),
		WithSpeeds(cfg.Player.MoveSpeed, cfg.Player.TurnSpeed),
		WithSeed(cfg.Maze.Seed),
	}
}

func RenderOptionsFromConfig(cfg config.Config) RenderOptions {
	return RenderOptions{
		Columns: cfg.Render.Columns,
		FOVDeg:  cfg.Render.FOVDeg,
		Near:    cfg.Render.Near,
		Far:     cfg.Render.Far,
	}
}

// OptionsFromConfig builds the windowed game options.
func OptionsFromConfig(cfg config.Config, logger *zap.Logger) Options {
	return Options{
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Render:      RenderOptionsFromConfig(cfg),
		MinimapZoom: cfg.Render.MinimapZoom,
		ShowMinimap: cfg.Render.ShowMinimap,
		ShowHUD:     cfg.Render.ShowHUD,
		Session:     SessionOptionsFromConfig(cfg),
		Logger:      logger,
	}
}
