package core

import "fmt"

type PhaseKind int

const (
	Idle PhaseKind = iota
	Playing
	Paused
	Finished
)

func (k PhaseKind) String() string {
	switch k {
	case Idle:
		return "Idle"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Finished:
		return "Finished"
	}
	return fmt.Sprintf("PhaseKind(%d)", int(k))
}

// Phase is the match state. Winner is only meaningful when Kind is Finished.
type Phase struct {
	Kind   PhaseKind
	Winner Side
}

func (p Phase) String() string {
	if p.Kind == Finished {
		return fmt.Sprintf("Finished(%s)", p.Winner)
	}
	return p.Kind.String()
}

type Score struct {
	Left, Right int
}

func (s Score) Of(side Side) int {
	if side == Left {
		return s.Left
	}
	return s.Right
}

// PhaseController gates the physics step and owns the score.
//
//	Idle --Start--> Playing <--TogglePause--> Paused
//	Playing --Award reaches threshold--> Finished
//	any --Start--> Playing (score reset)
type PhaseController struct {
	phase Phase
	score Score
}

func (c *PhaseController) Phase() Phase {
	return c.phase
}

func (c *PhaseController) Score() Score {
	return c.score
}

// Running reports whether the physics step may run this tick.
func (c *PhaseController) Running() bool {
	return c.phase.Kind == Playing
}

// Start begins a fresh match from any phase.
func (c *PhaseController) Start() {
	c.score = Score{}
	c.phase = Phase{Kind: Playing}
}

// TogglePause switches between Playing and Paused and reports whether it did anything.
// Idle and Finished are left untouched.
func (c *PhaseController) TogglePause() bool {
	switch c.phase.Kind {
	case Playing:
		c.phase.Kind = Paused
	case Paused:
		c.phase.Kind = Playing
	default:
		return false
	}
	return true
}

// Award gives side a point and reports whether that point won the match.
// Calling it outside Playing is a programming error.
func (c *PhaseController) Award(side Side, winningScore int) bool {
	if c.phase.Kind != Playing {
		panic(fmt.Sprintf("core: point awarded while %s", c.phase))
	}

	if side == Left {
		c.score.Left++
	} else {
		c.score.Right++
	}

	if c.score.Of(side) >= winningScore {
		c.phase = Phase{Kind: Finished, Winner: side}
		return true
	}
	return false
}
