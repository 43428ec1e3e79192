// Package input turns terminal key events into per-tick directives and match commands.
package input

import (
	"time"

	"ArcadePong/core"

	"github.com/gdamore/tcell"
)

// HoldDuration is how long a movement key stays held after its last press.
// Terminals send no key-up events, only repeats while a key is down.
const HoldDuration = 120 * time.Millisecond

// Command is a discrete action raised by a single key press.
type Command int

const (
	None Command = iota
	Start
	TogglePause
	Quit
)

// Tracker remembers when each movement key was last seen.
type Tracker struct {
	hold     time.Duration
	lastSeen map[core.Directive]time.Time
}

func NewTracker(hold time.Duration) *Tracker {
	return &Tracker{
		hold:     hold,
		lastSeen: make(map[core.Directive]time.Time),
	}
}

// HandleKey records movement keys and returns the command bound to the key, if any.
//
//	a / z      left paddle up / down
//	l / m      right paddle up / down (arrow keys too)
//	space      pause / resume
//	enter / s  start or restart
//	q / esc    quit
func (t *Tracker) HandleKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		t.press(core.RightUp, ev.When())
		return None
	case tcell.KeyDown:
		t.press(core.RightDown, ev.When())
		return None
	case tcell.KeyEnter:
		return Start
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyRune:
	default:
		return None
	}

	switch ev.Rune() {
	case 'a', 'A':
		t.press(core.LeftUp, ev.When())
	case 'z', 'Z':
		t.press(core.LeftDown, ev.When())
	case 'l', 'L':
		t.press(core.RightUp, ev.When())
	case 'm', 'M':
		t.press(core.RightDown, ev.When())
	case ' ':
		return TogglePause
	case 's', 'S':
		return Start
	case 'q', 'Q':
		return Quit
	}
	return None
}

func (t *Tracker) press(d core.Directive, at time.Time) {
	t.lastSeen[d] = at
}

// Directives returns every movement key seen within the hold window before now.
func (t *Tracker) Directives(now time.Time) core.Directives {
	var set core.Directives
	for d, at := range t.lastSeen {
		if now.Sub(at) < t.hold {
			set = set.With(d)
		}
	}
	return set
}

// Reset forgets all held keys, e.g. when a new match starts.
func (t *Tracker) Reset() {
	for d := range t.lastSeen {
		delete(t.lastSeen, d)
	}
}
