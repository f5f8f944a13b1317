package game

import (
	"fmt"
	"math"
)

// Script decides the input for a tick from the current state.
type Script func(tick int, st State) Input

// TestSim is a headless session harness used by tests and the headless
// report. It runs Session.Step without Ebiten and records a SimLog.
type TestSim struct {
	Session  *Session
	State    State
	SimLog   *SimLog
	Renderer *Renderer
	Events   []Event

	sessionOpts []SessionOption
	script      Script
	pose        *Player
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // session options, scene, verbose: applied first
	simOptPlayer                      // pose overrides: applied after the first level exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSessionOptions forwards options to the underlying Session.
func WithSessionOptions(opts ...SessionOption) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.sessionOpts = append(ts.sessionOpts, opts...)
	}}
}

// WithScene plays level one on a hand-built ASCII scene.
func WithScene(rows ...string) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.sessionOpts = append(ts.sessionOpts, WithFixedScene(MustParseScene(rows...)))
	}}
}

// WithVerbose enables per-tick pose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithScript sets the input source. The default holds no keys.
func WithScript(s Script) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.script = s
	}}
}

// WithPose places the level-one player at (x, y) facing dir.
func WithPose(x, y, dir float64) SimOption {
	return SimOption{simOptPlayer, func(ts *TestSim) {
		p := ts.State.Player
		p.Position = Vec2{x, y}
		p.Direction = dir
		ts.pose = &p
	}}
}

// NewTestSim constructs a TestSim from the given options in two passes:
//  1. Infrastructure (session options, scene, verbose, script)
//  2. Begin level one, then apply pose overrides
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		SimLog:      NewSimLog(false),
		Renderer:    NewRenderer(RenderOptions{}),
		sessionOpts: []SessionOption{WithSeed(1)},
		script:      func(int, State) Input { return Input{} },
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.Session = NewSession(ts.sessionOpts...)
	var evs []Event
	ts.State, evs = ts.Session.Begin()
	for _, o := range opts {
		if o.kind == simOptPlayer {
			o.fn(ts)
		}
	}
	if ts.pose != nil {
		ts.State.Player = *ts.pose
	}
	ts.record(evs)
	return ts
}

// RunTicks advances the simulation n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.step()
	}
}

// RunUntil steps until done returns true or maxTicks elapse. It reports
// whether done was satisfied.
func (ts *TestSim) RunUntil(done func(*TestSim) bool, maxTicks int) bool {
	for i := 0; i < maxTicks; i++ {
		if done(ts) {
			return true
		}
		ts.step()
	}
	return done(ts)
}

// Frame casts one frame of strips for the current pose, for assertions.
func (ts *TestSim) Frame(screenH float64) []Strip {
	return ts.Renderer.CastStrips(ts.State.Player, ts.State.Scene, screenH)
}

func (ts *TestSim) step() {
	prev := ts.State
	in := ts.script(prev.Tick+1, prev)
	next, evs := ts.Session.Step(prev, in)
	ts.State = next

	tick := next.Tick
	wantsMove := in.Forward || in.Back || in.StrafeLeft || in.StrafeRight
	if next.Level == prev.Level && next.Scene == prev.Scene {
		switch {
		case wantsMove && !prev.Player.Moved(next.Player):
			ts.SimLog.Add(tick, "move", "blocked",
				fmt.Sprintf("(%.2f,%.2f) dir=%.2f", prev.Player.Position.X, prev.Player.Position.Y, next.Player.Direction), 0)
		case wantsMove:
			ts.SimLog.AddVerbose(tick, "move", "pose",
				fmt.Sprintf("(%.2f,%.2f)", next.Player.Position.X, next.Player.Position.Y),
				prev.Player.Position.DistanceTo(next.Player.Position))
		}
		if next.Player.Direction != prev.Player.Direction {
			ts.SimLog.AddVerbose(tick, "turn", "heading", fmt.Sprintf("%.3f", next.Player.Direction), next.Player.Direction)
		}
	}
	ts.record(evs)
}

func (ts *TestSim) record(evs []Event) {
	for _, ev := range evs {
		ts.Events = append(ts.Events, ev)
		ts.SimLog.Add(ev.Tick, "level", ev.Kind.String(), ev.Message, float64(ev.Level))
	}
}

// HoldScript presses the same keys every tick.
func HoldScript(in Intent) Script {
	return func(int, State) Input { return Input{Intent: in} }
}

// AutopilotScript walks the BFS solution of whatever scene is current. From
// any cell on the path it aims at the centre of the following cell, turning
// in place until the heading is within one turn step or the way ahead is
// clear.
func AutopilotScript() Script {
	var (
		scene *Scene
		path  [][2]int
		index map[[2]int]int
		last  int
	)
	return func(_ int, st State) Input {
		if st.Scene != scene {
			scene = st.Scene
			path = SolvePath(scene)
			index = make(map[[2]int]int, len(path))
			for i, c := range path {
				index[c] = i
			}
			last = 0
		}
		if len(path) == 0 {
			return Input{}
		}
		p := st.Player
		col, row := CellOf(p.Position)
		// Off the path: head back to the last path cell visited.
		next := last
		if i, ok := index[[2]int{col, row}]; ok {
			last = i
			next = min(i+1, len(path)-1)
		}
		target := cellCentre(path[next])
		want := math.Atan2(target.Y-p.Position.Y, target.X-p.Position.X)
		diff := normalizeAngle(want - p.Direction)
		ahead := p.Position.Add(p.Forward().Scale(p.MoveSpeed))
		blocked := !st.Scene.IsOpen(CellOf(ahead))
		switch {
		case diff > p.TurnSpeed, blocked && diff >= 0:
			return Input{Intent: Intent{TurnRight: true}}
		case diff < -p.TurnSpeed, blocked:
			return Input{Intent: Intent{TurnLeft: true}}
		default:
			return Input{Intent: Intent{Forward: true}}
		}
	}
}

func cellCentre(c [2]int) Vec2 {
	return Vec2{float64(c[0]) + 0.5, float64(c[1]) + 0.5}
}
