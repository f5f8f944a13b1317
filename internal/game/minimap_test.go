package game

import "testing"

func minimapScene() *Scene {
	return MustParseScene(
		"#####",
		"#S..G",
		"#.#.#",
		"#####",
	)
}

func TestDrawMinimapCellsAndGrid(t *testing.T) {
	s := minimapScene()
	p := NewPlayer(s, 0, 0)
	r := NewRenderer(RenderOptions{})
	dst := &recordSurface{w: 400, h: 300}
	r.DrawMinimap(dst, p, s, 8)

	walls := 0
	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			if s.IsWall(col, row) {
				walls++
			}
		}
	}
	if got := dst.countColour(minimapWall); got != walls {
		t.Fatalf("expected %d wall fills, got %d", walls, got)
	}
	if got := dst.countColour(minimapGoal); got != 1 {
		t.Fatalf("expected one goal fill, got %d", got)
	}
	if f := dst.fills[0]; f.c != minimapBackground || f.w != 40 || f.h != 32 {
		t.Fatalf("background should cover the scene at zoom 8, got %+v", f)
	}
	// Grid lines plus two FOV edges and the near plane.
	if want := (s.Width + 1) + (s.Height + 1) + 3; dst.lines != want {
		t.Fatalf("expected %d lines, got %d", want, dst.lines)
	}
	if dst.points != 1 {
		t.Fatalf("expected the player point, got %d", dst.points)
	}
}

func TestDrawMinimapSmallZoomSkipsGrid(t *testing.T) {
	s := minimapScene()
	p := NewPlayer(s, 0, 0)
	r := NewRenderer(RenderOptions{})
	dst := &recordSurface{w: 80, h: 24}
	r.DrawMinimap(dst, p, s, 1)
	if dst.lines != 3 {
		t.Fatalf("zoom 1 should draw only the FOV lines, got %d", dst.lines)
	}
}

func TestDrawMinimapDefaultZoom(t *testing.T) {
	s := minimapScene()
	dst := &recordSurface{w: 400, h: 300}
	NewRenderer(RenderOptions{}).DrawMinimap(dst, NewPlayer(s, 0, 0), s, 0)
	if f := dst.fills[0]; f.w != float64(s.Width)*defaultMinimapZoom {
		t.Fatalf("zero zoom should use the default, got width %v", f.w)
	}
}
