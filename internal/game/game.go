package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

// Options configures the windowed game.
type Options struct {
	Width       int // logical screen width in pixels
	Height      int // logical screen height in pixels
	Render      RenderOptions
	MinimapZoom float64
	ShowMinimap bool
	ShowHUD     bool
	Session     []SessionOption
	Logger      *zap.Logger
}

// Game is the ebiten frontend: it samples input, steps the session and
// draws the raycast view with its overlays.
type Game struct {
	width  int
	height int

	session  *Session
	state    State
	renderer *Renderer
	zoom     float64
	showHUD  bool

	eventLog *EventLog
	face     *text.GoTextFace
	logger   *zap.Logger

	// Set in Draw, reused across frames.
	surface *EbitenSurface
	screen  *ebiten.Image
}

// New builds a Game and generates its first maze.
func New(opts Options) (*Game, error) {
	if opts.Width <= 0 {
		opts.Width = 960
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	face, err := newHUDFace()
	if err != nil {
		return nil, err
	}
	sessionOpts := append([]SessionOption{WithLogger(logger)}, opts.Session...)
	g := &Game{
		width:    opts.Width,
		height:   opts.Height,
		session:  NewSession(sessionOpts...),
		renderer: NewRenderer(opts.Render),
		zoom:     opts.MinimapZoom,
		showHUD:  opts.ShowHUD,
		eventLog: NewEventLog(),
		face:     face,
		logger:   logger,
	}
	var evs []Event
	g.state, evs = g.session.Begin()
	g.state.ShowMinimap = opts.ShowMinimap
	g.handleEvents(evs)
	return g, nil
}

// State returns the current session state.
func (g *Game) State() State { return g.state }

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	var evs []Event
	g.state, evs = g.session.Step(g.state, sampleInput())
	g.handleEvents(evs)
	return nil
}

func (g *Game) handleEvents(evs []Event) {
	for _, ev := range evs {
		if ev.Kind == EventCopyRequested {
			if err := CopySceneASCII(g.state.Scene); err != nil {
				g.logger.Warn("clipboard copy failed", zap.Error(err))
				ev.Message = err.Error()
			}
		}
		g.eventLog.Add(ev)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen != screen {
		g.screen = screen
		g.surface = NewEbitenSurface(screen)
	}
	g.renderer.Draw(g.surface, g.state.Player, g.state.Scene)

	// Crosshair.
	cx, cy := float32(g.width)/2, float32(g.height)/2
	cross := color.RGBA{R: 255, G: 255, B: 255, A: 90}
	vector.StrokeLine(screen, cx-6, cy, cx+6, cy, 1, cross, false)
	vector.StrokeLine(screen, cx, cy-6, cx, cy+6, 1, cross, false)

	if g.state.ShowMinimap {
		g.renderer.DrawMinimap(g.surface, g.state.Player, g.state.Scene, g.zoom)
	}
	if g.showHUD {
		drawHUD(screen, g.face, hudLines(g.state, g.session.Seed(), ebiten.ActualFPS()))
	}
	g.eventLog.Draw(screen, g.face, g.state.Tick)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
