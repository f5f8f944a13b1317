package term

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Maze-Caster/internal/game"
)

type Action int

const (
	ActNone Action = iota
	ActForward
	ActBack
	ActStrafeLeft
	ActStrafeRight
	ActTurnLeft
	ActTurnRight
	ActMinimap
	ActNewMaze
	ActCopy
	ActQuit
)

// DefaultHoldWindow covers the gap between a key press and the terminal's
// first auto-repeat.
const DefaultHoldWindow = 120 * time.Millisecond

// ActionFor maps a key event to the action it triggers.
func ActionFor(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActQuit
	case tcell.KeyUp:
		return ActForward
	case tcell.KeyDown:
		return ActBack
	case tcell.KeyLeft:
		return ActTurnLeft
	case tcell.KeyRight:
		return ActTurnRight
	case tcell.KeyRune:
	default:
		return ActNone
	}
	switch ev.Rune() {
	case 'w', 'W':
		return ActForward
	case 's', 'S':
		return ActBack
	case 'a', 'A':
		return ActStrafeLeft
	case 'd', 'D':
		return ActStrafeRight
	case 'q', 'Q':
		return ActTurnLeft
	case 'e', 'E':
		return ActTurnRight
	case 'm', 'M':
		return ActMinimap
	case 'r', 'R':
		return ActNewMaze
	case 'c', 'C':
		return ActCopy
	}
	return ActNone
}

// Keys turns the terminal's press-only key stream into game input.
// Movement actions stay held for a window after their last press; toggle
// actions fire once per press.
type Keys struct {
	mu      sync.Mutex
	hold    time.Duration
	now     func() time.Time
	seen    map[Action]time.Time
	pending map[Action]bool
}

func NewKeys(hold time.Duration) *Keys {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Keys{
		hold:    hold,
		now:     time.Now,
		seen:    make(map[Action]time.Time),
		pending: make(map[Action]bool),
	}
}

// Press records one press of a.
func (k *Keys) Press(a Action) {
	if a == ActNone {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	switch a {
	case ActMinimap, ActNewMaze, ActCopy, ActQuit:
		k.pending[a] = true
	default:
		k.seen[a] = k.now()
	}
}

// Sample returns the input for the current tick and consumes toggles.
func (k *Keys) Sample() game.Input {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.now()
	held := func(a Action) bool {
		t, ok := k.seen[a]
		return ok && now.Sub(t) <= k.hold
	}
	in := game.Input{
		Intent: game.Intent{
			Forward:     held(ActForward),
			Back:        held(ActBack),
			StrafeLeft:  held(ActStrafeLeft),
			StrafeRight: held(ActStrafeRight),
			TurnLeft:    held(ActTurnLeft),
			TurnRight:   held(ActTurnRight),
		},
		ToggleMinimap: k.pending[ActMinimap],
		NewMaze:       k.pending[ActNewMaze],
		CopyMaze:      k.pending[ActCopy],
	}
	delete(k.pending, ActMinimap)
	delete(k.pending, ActNewMaze)
	delete(k.pending, ActCopy)
	return in
}

// QuitRequested reports whether a quit key has been pressed.
func (k *Keys) QuitRequested() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pending[ActQuit]
}
