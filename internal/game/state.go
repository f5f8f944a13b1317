package game

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Input is everything sampled from the input collaborator for one tick.
// Intent keys are level-held; the remaining flags are edge-triggered.
type Input struct {
	Intent
	ToggleMinimap bool
	NewMaze       bool
	CopyMaze      bool
}

// EventKind classifies session events.
type EventKind int

const (
	EventMazeReady EventKind = iota
	EventGoalReached
	EventMinimapToggled
	EventCopyRequested
)

func (k EventKind) String() string {
	switch k {
	case EventMazeReady:
		return "maze_ready"
	case EventGoalReached:
		return "goal_reached"
	case EventMinimapToggled:
		return "minimap"
	case EventCopyRequested:
		return "copy"
	default:
		return "unknown"
	}
}

// Event is something a tick produced that frontends may want to show.
type Event struct {
	Kind    EventKind
	Tick    int
	Level   int
	Message string
}

// State is the whole per-session game state. Step returns a new State each
// tick; the Scene pointer is shared and never written after generation.
type State struct {
	Scene          *Scene
	Player         Player
	Tick           int
	Level          int
	LevelStartTick int
	ShowMinimap    bool
}

// Session owns the rules that turn one State into the next: maze sizing,
// player rates and the random source for new mazes.
type Session struct {
	baseWidth  int
	baseHeight int
	maxSize    int
	growth     int
	moveSpeed  float64
	turnSpeed  float64
	rng        *rand.Rand
	seed       int64
	logger     *zap.Logger
	fixed      *Scene
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithMazeSize sets the level-one maze dimensions.
func WithMazeSize(w, h int) SessionOption {
	return func(s *Session) {
		s.baseWidth = w
		s.baseHeight = h
	}
}

// WithMaxMazeSize caps maze growth between levels.
func WithMaxMazeSize(n int) SessionOption {
	return func(s *Session) { s.maxSize = n }
}

// WithLevelGrowth sets how many cells each dimension grows per level.
func WithLevelGrowth(n int) SessionOption {
	return func(s *Session) { s.growth = n }
}

// WithSpeeds sets the player's move and turn rates per tick.
func WithSpeeds(move, turn float64) SessionOption {
	return func(s *Session) {
		s.moveSpeed = move
		s.turnSpeed = turn
	}
}

// WithSeed makes maze generation reproducible. A zero seed means time-seeded.
func WithSeed(seed int64) SessionOption {
	return func(s *Session) {
		if seed == 0 {
			return
		}
		s.seed = seed
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- maze layout only
	}
}

// WithLogger routes session events to l.
func WithLogger(l *zap.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFixedScene starts level one on sc instead of a generated maze.
func WithFixedScene(sc *Scene) SessionOption {
	return func(s *Session) { s.fixed = sc }
}

// NewSession builds a session; unset options take defaults.
func NewSession(opts ...SessionOption) *Session {
	seed := time.Now().UnixNano()
	s := &Session{
		baseWidth:  21,
		baseHeight: 21,
		maxSize:    MaxMazeSize,
		growth:     2,
		moveSpeed:  defaultMoveSpeed,
		turnSpeed:  defaultTurnSpeed,
		seed:       seed,
		rng:        rand.New(rand.NewSource(seed)), // #nosec G404 -- maze layout only
		logger:     zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Seed returns the seed of the session's maze source.
func (s *Session) Seed() int64 { return s.seed }

// levelSize returns the clamped maze dimensions for a level.
func (s *Session) levelSize(level int) (int, int) {
	grow := s.growth * (level - 1)
	w, h := s.baseWidth+grow, s.baseHeight+grow
	if s.maxSize > 0 {
		w, h = min(w, s.maxSize), min(h, s.maxSize)
	}
	return ClampMazeSize(w), ClampMazeSize(h)
}

// Begin creates the level-one state.
func (s *Session) Begin() (State, []Event) {
	return s.enterLevel(State{}, 1, s.fixed)
}

func (s *Session) enterLevel(prev State, level int, sc *Scene) (State, []Event) {
	if sc == nil {
		w, h := s.levelSize(level)
		sc = GenerateMaze(w, h, s.rng)
	}
	next := State{
		Scene:          sc,
		Player:         NewPlayer(sc, s.moveSpeed, s.turnSpeed),
		Tick:           prev.Tick,
		Level:          level,
		LevelStartTick: prev.Tick,
		ShowMinimap:    prev.ShowMinimap,
	}
	stats := AnalyzeMaze(sc)
	s.logger.Info("maze ready",
		zap.Int("level", level),
		zap.Int64("seed", s.seed),
		zap.Int("width", sc.Width),
		zap.Int("height", sc.Height),
		zap.Int("solution_len", stats.SolutionLen),
		zap.Int("dead_ends", stats.DeadEnds),
		zap.Uint64("fingerprint", stats.Fingerprint),
	)
	ev := Event{
		Kind:    EventMazeReady,
		Tick:    next.Tick,
		Level:   level,
		Message: fmt.Sprintf("level %d: %dx%d maze, exit %d cells away", level, sc.Width, sc.Height, stats.SolutionLen),
	}
	return next, []Event{ev}
}

// Step advances st by one tick of input.
func (s *Session) Step(st State, in Input) (State, []Event) {
	var events []Event
	next := st
	next.Tick++

	if in.ToggleMinimap {
		next.ShowMinimap = !next.ShowMinimap
		events = append(events, Event{Kind: EventMinimapToggled, Tick: next.Tick, Level: next.Level,
			Message: fmt.Sprintf("minimap %s", onOff(next.ShowMinimap))})
	}
	if in.CopyMaze {
		events = append(events, Event{Kind: EventCopyRequested, Tick: next.Tick, Level: next.Level,
			Message: "copy maze to clipboard"})
	}
	if in.NewMaze {
		lvl, evs := s.enterLevel(next, next.Level, nil)
		return lvl, append(events, evs...)
	}

	next.Player = st.Player.Update(in.Intent, st.Scene)

	col, row := CellOf(next.Player.Position)
	if st.Scene.At(col, row) == CellGoal {
		took := next.Tick - st.LevelStartTick
		s.logger.Info("goal reached", zap.Int("level", st.Level), zap.Int("ticks", took))
		events = append(events, Event{Kind: EventGoalReached, Tick: next.Tick, Level: st.Level,
			Message: fmt.Sprintf("level %d cleared in %d ticks", st.Level, took)})
		lvl, evs := s.enterLevel(next, st.Level+1, nil)
		return lvl, append(events, evs...)
	}
	return next, events
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
