package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Garsondee/Maze-Caster/internal/config"
	"github.com/Garsondee/Maze-Caster/internal/game"
)

const (
	defaultTick  = 16 * time.Millisecond // ~60 FPS
	eventBuffer  = 64
	terminalZoom = 1.0
)

var (
	statusFG = color.RGBA{R: 230, G: 230, B: 210, A: 255}
	statusBG = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	goalFG   = color.RGBA{R: 90, G: 220, B: 110, A: 255}
)

type Options struct {
	Config     config.Config
	Logger     *zap.Logger
	Tick       time.Duration
	HoldWindow time.Duration
}

// App is the terminal frontend around a game Session.
type App struct {
	screen   tcell.Screen
	surface  *Surface
	session  *game.Session
	state    game.State
	renderer *game.Renderer
	keys     *Keys
	events   *game.EventLog
	logger   *zap.Logger
	tick     time.Duration
}

// New builds an App on an initialised screen and generates the first maze.
func New(screen tcell.Screen, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tick := opts.Tick
	if tick <= 0 {
		tick = defaultTick
	}
	sessionOpts := append([]game.SessionOption{game.WithLogger(logger)}, game.SessionOptionsFromConfig(opts.Config)...)
	render := game.RenderOptionsFromConfig(opts.Config)

	a := &App{
		screen:   screen,
		surface:  NewSurface(screen),
		session:  game.NewSession(sessionOpts...),
		renderer: game.NewRenderer(render),
		keys:     NewKeys(opts.HoldWindow),
		events:   game.NewEventLog(),
		logger:   logger,
		tick:     tick,
	}
	var evs []game.Event
	a.state, evs = a.session.Begin()
	a.state.ShowMinimap = opts.Config.Render.ShowMinimap
	a.record(evs)
	return a
}

// State returns the current session state.
func (a *App) State() game.State { return a.state }

// HandleEvent applies one terminal event. It returns false once the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.keys.Press(ActionFor(ev))
		return !a.keys.QuitRequested()
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Step advances the session by one tick of sampled input.
func (a *App) Step() {
	var evs []game.Event
	a.state, evs = a.session.Step(a.state, a.keys.Sample())
	a.record(evs)
}

func (a *App) record(evs []game.Event) {
	for _, ev := range evs {
		if ev.Kind == game.EventCopyRequested {
			if err := game.CopySceneASCII(a.state.Scene); err != nil {
				a.logger.Warn("clipboard copy failed", zap.Error(err))
				ev.Message = err.Error()
			}
		}
		a.events.Add(ev)
	}
}

// Draw renders the current state without showing it.
func (a *App) Draw() {
	w, h := a.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	a.renderer.Columns = w
	a.renderer.Draw(a.surface, a.state.Player, a.state.Scene)
	if a.state.ShowMinimap {
		a.renderer.DrawMinimap(a.surface, a.state.Player, a.state.Scene, terminalZoom)
	}

	status := fmt.Sprintf(" level %d  %dx%d  seed %d ", a.state.Level, a.state.Scene.Width, a.state.Scene.Height, a.session.Seed())
	a.surface.FillRect(0, float64(h-1), float64(w), 1, statusBG)
	a.surface.Text(0, h-1, status, statusFG, statusBG)
	if vis := a.events.Visible(a.state.Tick); len(vis) > 0 {
		last := vis[len(vis)-1]
		fg := statusFG
		if last.Kind == game.EventGoalReached {
			fg = goalFG
		}
		a.surface.Text(len(status)+1, h-1, last.Message, fg, statusBG)
	}
}

// Run drives the app until ctx is cancelled or a quit key is pressed. It
// finalises the screen before returning.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})

	g.Go(func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			}
		}
	})

	g.Go(func() error {
		defer a.screen.Fini()
		defer close(done)

		ticker := time.NewTicker(a.tick)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if !a.HandleEvent(ev) {
					a.logger.Info("quit", zap.Int("level", a.state.Level), zap.Int("ticks", a.state.Tick))
					return nil
				}
			case <-ticker.C:
				a.Step()
				a.Draw()
				a.screen.Show()
			}
		}
	})

	return g.Wait()
}
