package game

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var exitCorridor = []string{
	"#####",
	"#S..G",
	"#####",
}

func TestSessionBeginLevelOne(t *testing.T) {
	sess := NewSession(WithSeed(5), WithMazeSize(11, 9))
	st, evs := sess.Begin()
	if st.Level != 1 || st.Tick != 0 {
		t.Fatalf("expected level 1 at tick 0, got level=%d tick=%d", st.Level, st.Tick)
	}
	if st.Scene.Width != 11 || st.Scene.Height != 9 {
		t.Fatalf("expected 11x9 maze, got %dx%d", st.Scene.Width, st.Scene.Height)
	}
	if !st.Player.Position.Equals(st.Scene.Start) {
		t.Fatalf("player should spawn at start, got %v", st.Player.Position)
	}
	if len(evs) != 1 || evs[0].Kind != EventMazeReady {
		t.Fatalf("expected a single maze_ready event, got %+v", evs)
	}
	if sess.Seed() != 5 {
		t.Fatalf("expected seed 5, got %d", sess.Seed())
	}
}

func TestSessionGoalStartsNextLevel(t *testing.T) {
	ts := NewTestSim(
		WithScene(exitCorridor...),
		WithSessionOptions(WithMazeSize(9, 9), WithLevelGrowth(2)),
		WithScript(HoldScript(Intent{Forward: true})),
	)
	if !ts.RunUntil(func(ts *TestSim) bool { return ts.State.Level == 2 }, 200) {
		t.Fatalf("expected to reach the goal, player at %v\n%s", ts.State.Player.Position, ts.SimLog.Format())
	}
	if ts.State.Scene.Width != 11 || ts.State.Scene.Height != 11 {
		t.Fatalf("level 2 should grow to 11x11, got %dx%d", ts.State.Scene.Width, ts.State.Scene.Height)
	}
	if ts.State.LevelStartTick != ts.State.Tick {
		t.Fatalf("level start tick %d should equal the transition tick %d", ts.State.LevelStartTick, ts.State.Tick)
	}
	goal, ok := ts.SimLog.LastOf("level", "goal_reached")
	if !ok || goal.NumVal != 1 {
		t.Fatalf("expected goal_reached for level 1, got %+v ok=%v", goal, ok)
	}
	// 2.5 cells at 0.05 per tick.
	if goal.Tick < 50 || goal.Tick > 52 {
		t.Fatalf("expected the goal around tick 50, got %d", goal.Tick)
	}
	if !ts.SimLog.HasEntry("level", "maze_ready", "level 2") {
		t.Fatalf("expected a maze_ready entry for level 2\n%s", ts.SimLog.Format())
	}
}

func TestSessionLevelSizeCapped(t *testing.T) {
	sess := NewSession(WithMazeSize(21, 15), WithLevelGrowth(4), WithMaxMazeSize(27))
	w, h := sess.levelSize(5)
	if w != 27 || h != 27 {
		t.Fatalf("expected growth capped at 27x27, got %dx%d", w, h)
	}
	if w, h := sess.levelSize(1); w != 21 || h != 15 {
		t.Fatalf("level 1 should use the base size, got %dx%d", w, h)
	}
}

func TestSessionToggleAndCopyEvents(t *testing.T) {
	sess := NewSession(WithSeed(3), WithMazeSize(9, 9))
	st, _ := sess.Begin()

	next, evs := sess.Step(st, Input{ToggleMinimap: true, CopyMaze: true})
	if !next.ShowMinimap || st.ShowMinimap {
		t.Fatalf("toggle should flip the new state only: prev=%v next=%v", st.ShowMinimap, next.ShowMinimap)
	}
	if len(evs) != 2 || evs[0].Kind != EventMinimapToggled || evs[1].Kind != EventCopyRequested {
		t.Fatalf("expected minimap then copy events, got %+v", evs)
	}
	if evs[0].Message != "minimap on" {
		t.Fatalf("unexpected toggle message %q", evs[0].Message)
	}
	if next.Tick != 1 || st.Tick != 0 {
		t.Fatalf("Step must return a new state: prev tick=%d next tick=%d", st.Tick, next.Tick)
	}
}

func TestSessionNewMazeKeepsLevel(t *testing.T) {
	sess := NewSession(WithSeed(11), WithMazeSize(9, 9))
	st, _ := sess.Begin()
	st.ShowMinimap = true

	next, evs := sess.Step(st, Input{NewMaze: true})
	if next.Level != st.Level {
		t.Fatalf("new maze should keep the level, got %d", next.Level)
	}
	if next.Scene == st.Scene {
		t.Fatal("new maze should replace the scene")
	}
	if !next.ShowMinimap {
		t.Fatal("minimap setting should survive a new maze")
	}
	if len(evs) != 1 || evs[0].Kind != EventMazeReady {
		t.Fatalf("expected maze_ready, got %+v", evs)
	}
}

func TestSessionLogsMazeAndGoal(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ts := NewTestSim(
		WithScene(exitCorridor...),
		WithSessionOptions(WithLogger(zap.New(core)), WithMazeSize(7, 7)),
		WithScript(HoldScript(Intent{Forward: true})),
	)
	ts.RunUntil(func(ts *TestSim) bool { return ts.State.Level == 2 }, 200)

	ready := logs.FilterMessage("maze ready").All()
	if len(ready) != 2 {
		t.Fatalf("expected two maze ready logs, got %d", len(ready))
	}
	if lvl := ready[1].ContextMap()["level"]; lvl != int64(2) {
		t.Fatalf("expected level=2 on the second log, got %v", lvl)
	}
	if n := logs.FilterMessage("goal reached").Len(); n != 1 {
		t.Fatalf("expected one goal log, got %d", n)
	}
}

func TestEventKindString(t *testing.T) {
	kinds := map[EventKind]string{
		EventMazeReady:      "maze_ready",
		EventGoalReached:    "goal_reached",
		EventMinimapToggled: "minimap",
		EventCopyRequested:  "copy",
		EventKind(99):       "unknown",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Fatalf("%d: got %q want %q", k, got, want)
		}
	}
}
