package input

import (
	"testing"
	"time"

	"ArcadePong/core"

	"github.com/gdamore/tcell"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleKeyCommands(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Command
	}{
		{"space", runeKey(' '), TogglePause},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Start},
		{"s", runeKey('s'), Start},
		{"q", runeKey('q'), Quit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Quit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Quit},
		{"movement", runeKey('a'), None},
		{"unbound", runeKey('x'), None},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), None},
	}

	for _, c := range cases {
		if got := NewTracker(HoldDuration).HandleKey(c.ev); got != c.want {
			t.Errorf("%s: got command %d, want %d", c.name, got, c.want)
		}
	}
}

func TestDirectivesFromHeldKeys(t *testing.T) {
	tr := NewTracker(HoldDuration)
	ev := runeKey('a')
	tr.HandleKey(ev)
	tr.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	pressed := ev.When()

	d := tr.Directives(pressed.Add(HoldDuration / 2))
	if d != core.NewDirectives(core.LeftUp, core.RightDown) {
		t.Fatalf("expected {LeftUp,RightDown}, got %s", d)
	}

	if d := tr.Directives(pressed.Add(time.Second)); d != 0 {
		t.Fatalf("expected keys released after hold window, got %s", d)
	}
}

func TestDirectivesAllMovementKeys(t *testing.T) {
	tr := NewTracker(time.Hour)
	for _, r := range "azlm" {
		tr.HandleKey(runeKey(r))
	}

	want := core.NewDirectives(core.LeftUp, core.LeftDown, core.RightUp, core.RightDown)
	if d := tr.Directives(time.Now()); d != want {
		t.Fatalf("expected %s, got %s", want, d)
	}

	tr.Reset()
	if d := tr.Directives(time.Now()); d != 0 {
		t.Fatalf("expected empty set after reset, got %s", d)
	}
}
