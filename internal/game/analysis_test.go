package game

import "testing"

func TestAnalyzeMazeCorridor(t *testing.T) {
	s := MustParseScene(
		"#####",
		"#S..G",
		"#####",
	)
	st := AnalyzeMaze(s)
	if st.OpenCells != 4 || st.Reachable != 4 {
		t.Fatalf("expected 4 open and reachable, got open=%d reachable=%d", st.OpenCells, st.Reachable)
	}
	if st.DeadEnds != 2 || st.Junctions != 0 {
		t.Fatalf("expected 2 dead ends and no junctions, got %d/%d", st.DeadEnds, st.Junctions)
	}
	if st.Edges != 3 || !st.Acyclic || !st.Connected {
		t.Fatalf("corridor should be a connected tree: edges=%d acyclic=%v connected=%v", st.Edges, st.Acyclic, st.Connected)
	}
	if st.SolutionLen != 4 || st.GoalCount != 1 {
		t.Fatalf("expected solution length 4 and one goal, got %d/%d", st.SolutionLen, st.GoalCount)
	}
}

func TestAnalyzeMazeDetectsIsland(t *testing.T) {
	s := MustParseScene(
		"#######",
		"#S.#..#",
		"#######",
	)
	st := AnalyzeMaze(s)
	if st.Connected {
		t.Fatal("island of two cells should make the scene disconnected")
	}
	if st.Reachable != 2 || st.OpenCells != 4 {
		t.Fatalf("expected 2/4 reachable, got %d/%d", st.Reachable, st.OpenCells)
	}
	if st.Acyclic {
		t.Fatal("a disconnected scene is never reported acyclic")
	}
	if st.SolutionLen != 0 {
		t.Fatalf("no goal means no solution, got %d", st.SolutionLen)
	}
}

func TestSolvePathEndsAtGoal(t *testing.T) {
	s := MustParseScene(
		"#####",
		"#S#.#",
		"#.#.#",
		"#...#",
		"###G#",
	)
	path := SolvePath(s)
	want := [][2]int{{1, 1}, {1, 2}, {1, 3}, {2, 3}, {3, 3}, {3, 4}}
	if len(path) != len(want) {
		t.Fatalf("expected %d cells, got %v", len(want), path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("step %d: got %v want %v (path %v)", i, path[i], want[i], path)
		}
	}
}

func TestFingerprintIgnoresStart(t *testing.T) {
	a := MustParseScene("#S..#")
	b := MustParseScene("#..S#")
	c := MustParseScene("#.#.#")
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("start position should not change the fingerprint")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatal("different layouts should fingerprint differently")
	}
}
