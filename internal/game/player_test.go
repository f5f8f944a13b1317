package game

import (
	"math"
	"testing"
)

func corridorScene() *Scene {
	return MustParseScene(
		"######",
		"#S...#",
		"######",
	)
}

func TestNewPlayerDefaults(t *testing.T) {
	s := corridorScene()
	s.Facing = math.Pi
	p := NewPlayer(s, 0, -1)
	if !p.Position.Equals(s.Start) || p.Direction != math.Pi {
		t.Fatalf("expected spawn at start facing pi, got %v dir=%v", p.Position, p.Direction)
	}
	if p.MoveSpeed != defaultMoveSpeed || p.TurnSpeed != defaultTurnSpeed {
		t.Fatalf("expected default rates, got move=%v turn=%v", p.MoveSpeed, p.TurnSpeed)
	}
}

func TestPlayerUpdateForward(t *testing.T) {
	s := corridorScene()
	p := NewPlayer(s, 0.25, 0.1)
	next := p.Update(Intent{Forward: true}, s)
	if !approxVec(next.Position, Vec2{1.75, 1.5}) {
		t.Fatalf("expected (1.75,1.5), got %v", next.Position)
	}
	if !p.Position.Equals(s.Start) {
		t.Fatal("Update must not modify the receiver")
	}
}

func TestPlayerUpdateBlockedStillTurns(t *testing.T) {
	s := corridorScene()
	p := NewPlayer(s, 0.75, 0.1)
	p.Direction = math.Pi // facing the west wall at x=1

	next := p.Update(Intent{Forward: true, TurnRight: true}, s)
	if next.Moved(p) {
		t.Fatalf("move into the wall should be rejected, got %v", next.Position)
	}
	if !approx(next.Direction, math.Pi+0.1) {
		t.Fatalf("rotation should still apply, got %v", next.Direction)
	}
}

func TestPlayerUpdateBlockedByBounds(t *testing.T) {
	s := MustParseScene("S.G")
	p := NewPlayer(s, 0.75, 0.1)
	p.Direction = -math.Pi / 2
	if next := p.Update(Intent{Forward: true}, s); next.Moved(p) {
		t.Fatalf("leaving the grid should be rejected, got %v", next.Position)
	}
}

func TestPlayerUpdateDiagonalNotNormalised(t *testing.T) {
	s := NewScene(5, 5, CellEmpty)
	s.Start = Vec2{2.5, 2.5}
	p := NewPlayer(s, 0.1, 0.1)
	next := p.Update(Intent{Forward: true, StrafeRight: true}, s)
	got := p.Position.DistanceTo(next.Position)
	if !approx(got, 0.1*math.Sqrt2) {
		t.Fatalf("forward+strafe should cover %.4f, got %.4f", 0.1*math.Sqrt2, got)
	}
	// Strafe right is +90 degrees: with heading 0 that is +y.
	if next.Position.Y <= p.Position.Y {
		t.Fatalf("strafe right should move +y at heading 0, got %v", next.Position)
	}
}

func TestPlayerOpposedKeysCancel(t *testing.T) {
	s := NewScene(5, 5, CellEmpty)
	s.Start = Vec2{2.5, 2.5}
	p := NewPlayer(s, 0.1, 0.1)
	next := p.Update(Intent{Forward: true, Back: true, TurnLeft: true, TurnRight: true}, s)
	if !approxVec(next.Position, p.Position) || next.Direction != p.Direction {
		t.Fatalf("opposed keys should cancel, got %v dir=%v", next.Position, next.Direction)
	}
}

func TestFOVRangeSpansNearPlane(t *testing.T) {
	p := Player{Position: Vec2{2, 2}, Direction: 0}
	left, right := p.FOVRange(0.5, math.Pi/2)
	if !approxVec(left, Vec2{2.5, 1.5}) || !approxVec(right, Vec2{2.5, 2.5}) {
		t.Fatalf("expected (2.5,1.5)..(2.5,2.5), got %v..%v", left, right)
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := map[float64]float64{
		0:               0,
		3 * math.Pi:     math.Pi,
		-3 * math.Pi:    -math.Pi,
		2.5 * math.Pi:   0.5 * math.Pi,
		-0.5 * math.Pi:  -0.5 * math.Pi,
		7*math.Pi + 0.1: -math.Pi + 0.1,
	}
	for in, want := range cases {
		if got := normalizeAngle(in); !approx(got, want) {
			t.Fatalf("normalizeAngle(%v) = %v, want %v", in, got, want)
		}
	}
}
