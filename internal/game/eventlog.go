package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	eventLogMaxEntries = 8
	eventLogLineHeight = 16
	eventLogFadeTicks  = 600 // entries older than this are hidden
)

// EventLog is a small ring buffer of session events shown over the view.
type EventLog struct {
	entries []Event
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{entries: make([]Event, eventLogMaxEntries)}
}

// Add appends an entry, dropping the oldest when full.
func (el *EventLog) Add(ev Event) {
	el.entries[el.head] = ev
	el.head = (el.head + 1) % eventLogMaxEntries
	if el.count < eventLogMaxEntries {
		el.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []Event {
	result := make([]Event, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + eventLogMaxEntries) % eventLogMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Visible returns the recent entries that have not faded by tick now.
func (el *EventLog) Visible(now int) []Event {
	var out []Event
	for _, ev := range el.Recent() {
		if now-ev.Tick <= eventLogFadeTicks {
			out = append(out, ev)
		}
	}
	return out
}

// Draw renders the visible entries bottom-left, newest last.
func (el *EventLog) Draw(screen *ebiten.Image, face text.Face, now int) {
	vis := el.Visible(now)
	if len(vis) == 0 {
		return
	}
	h := screen.Bounds().Dy()
	top := h - 8 - len(vis)*eventLogLineHeight
	vector.FillRect(screen, 4, float32(top-4), 420, float32(len(vis)*eventLogLineHeight+8), color.RGBA{R: 0, G: 0, B: 0, A: 140}, false)
	for i, ev := range vis {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, float64(top+i*eventLogLineHeight))
		c := color.RGBA{R: 200, G: 210, B: 200, A: 255}
		if ev.Kind == EventGoalReached {
			c = color.RGBA{R: 110, G: 230, B: 120, A: 255}
		}
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, fmt.Sprintf("[%05d] %s", ev.Tick, ev.Message), face, op)
	}
}
