package game

import (
	"math"
	"strings"
	"testing"
)

func TestEventLogRingOrder(t *testing.T) {
	el := NewEventLog()
	for i := 1; i <= eventLogMaxEntries+3; i++ {
		el.Add(Event{Tick: i})
	}
	got := el.Recent()
	if len(got) != eventLogMaxEntries {
		t.Fatalf("expected %d entries, got %d", eventLogMaxEntries, len(got))
	}
	if got[0].Tick != 4 || got[len(got)-1].Tick != eventLogMaxEntries+3 {
		t.Fatalf("expected oldest=4 newest=%d, got %d..%d", eventLogMaxEntries+3, got[0].Tick, got[len(got)-1].Tick)
	}
}

func TestEventLogVisibleFades(t *testing.T) {
	el := NewEventLog()
	el.Add(Event{Tick: 0, Message: "old"})
	el.Add(Event{Tick: 500, Message: "new"})
	vis := el.Visible(eventLogFadeTicks + 100)
	if len(vis) != 1 || vis[0].Message != "new" {
		t.Fatalf("expected only the new entry, got %+v", vis)
	}
	if n := len(NewEventLog().Visible(0)); n != 0 {
		t.Fatalf("empty log should show nothing, got %d", n)
	}
}

func TestHUDLines(t *testing.T) {
	s := MustParseScene(exitCorridor...)
	st := State{Scene: s, Player: NewPlayer(s, 0, 0), Level: 3}
	st.Player.Direction = 3*math.Pi - 0.001 // wraps to just under 180
	lines := hudLines(st, 42, 59.6)
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"level 3", "maze 5x3", "seed 42", "fps 60", "heading +180"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in HUD:\n%s", want, joined)
		}
	}
}
