package game

import (
	"math/rand"
	"testing"
)

func TestClampMazeSize(t *testing.T) {
	cases := map[int]int{
		-3:  5,
		4:   5,
		5:   5,
		6:   7,
		20:  21,
		21:  21,
		249: 249,
		250: 249,
		999: 249,
	}
	for in, want := range cases {
		if got := ClampMazeSize(in); got != want {
			t.Fatalf("ClampMazeSize(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestGenerateMazeIsPerfect(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- test determinism
		s := GenerateMaze(15, 11, rng)
		st := AnalyzeMaze(s)
		if s.Width != 15 || s.Height != 11 {
			t.Fatalf("seed %d: expected 15x11, got %dx%d", seed, s.Width, s.Height)
		}
		if !st.Connected {
			t.Fatalf("seed %d: maze not connected (%d/%d reachable)\n%s", seed, st.Reachable, st.OpenCells, s)
		}
		if !st.Acyclic {
			t.Fatalf("seed %d: maze has cycles (edges=%d open=%d)\n%s", seed, st.Edges, st.OpenCells, s)
		}
		if st.GoalCount != 1 {
			t.Fatalf("seed %d: expected one goal, got %d", seed, st.GoalCount)
		}
		if st.SolutionLen < 2 {
			t.Fatalf("seed %d: expected a path to the goal, len=%d", seed, st.SolutionLen)
		}
	}
}

func TestGenerateMazeBorderIsWallExceptGoal(t *testing.T) {
	rng := rand.New(rand.NewSource(9)) // #nosec G404 -- test determinism
	s := GenerateMaze(9, 9, rng)
	gc, gr, _ := s.Goal()
	for col := 0; col < s.Width; col++ {
		for _, row := range []int{0, s.Height - 1} {
			if (col != gc || row != gr) && !s.IsWall(col, row) {
				t.Fatalf("border cell (%d,%d) should be wall\n%s", col, row, s)
			}
		}
	}
	for row := 0; row < s.Height; row++ {
		for _, col := range []int{0, s.Width - 1} {
			if (col != gc || row != gr) && !s.IsWall(col, row) {
				t.Fatalf("border cell (%d,%d) should be wall\n%s", col, row, s)
			}
		}
	}
}

func TestGenerateMazeStartFacesGoalSide(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- test determinism
		s := GenerateMaze(11, 13, rng)
		gc, gr, ok := s.Goal()
		if !ok {
			t.Fatalf("seed %d: no goal", seed)
		}
		sc, sr := CellOf(s.Start)
		if sc != gc && sr != gr {
			t.Fatalf("seed %d: start (%d,%d) not across from goal (%d,%d)", seed, sc, sr, gc, gr)
		}
		if sc%2 != 1 || sr%2 != 1 {
			t.Fatalf("seed %d: start (%d,%d) should be an odd carved cell", seed, sc, sr)
		}
		toGoal := cellCentre([2]int{gc, gr}).Sub(s.Start)
		if toGoal.Dot(Vec2FromAngle(s.Facing)) <= 0 {
			t.Fatalf("seed %d: facing %.2f points away from the goal", seed, s.Facing)
		}
	}
}

func TestGenerateMazeDeterministicPerSeed(t *testing.T) {
	a := GenerateMaze(21, 21, rand.New(rand.NewSource(77))) // #nosec G404 -- test determinism
	b := GenerateMaze(21, 21, rand.New(rand.NewSource(77))) // #nosec G404 -- test determinism
	c := GenerateMaze(21, 21, rand.New(rand.NewSource(78))) // #nosec G404 -- test determinism
	if a.String() != b.String() {
		t.Fatal("same seed should give the same maze")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatal("different seeds should give different mazes")
	}
}

func TestGenerateMazeClampsAndNilRng(t *testing.T) {
	s := GenerateMaze(2, 8, nil)
	if s.Width != 5 || s.Height != 9 {
		t.Fatalf("expected 5x9 after clamping, got %dx%d", s.Width, s.Height)
	}
	if st := AnalyzeMaze(s); !st.Connected || !st.Acyclic {
		t.Fatalf("clamped maze should still be perfect\n%s", s)
	}
}
