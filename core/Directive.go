package core

import (
	"fmt"
	"strings"
)

// Directive is a normalized movement intent supplied by the input collaborator.
type Directive uint8

const (
	LeftUp Directive = iota
	LeftDown
	RightUp
	RightDown

	directiveCount
)

var directiveNames = [directiveCount]string{"LeftUp", "LeftDown", "RightUp", "RightDown"}

func (d Directive) String() string {
	if d >= directiveCount {
		return fmt.Sprintf("Directive(%d)", uint8(d))
	}
	return directiveNames[d]
}

// Directives is the set of directives active during one tick.
// The zero value is the empty set.
type Directives uint8

// NewDirectives panics on a value outside the four known directives.
func NewDirectives(ds ...Directive) Directives {
	var set Directives
	for _, d := range ds {
		set = set.With(d)
	}
	return set
}

func (s Directives) With(d Directive) Directives {
	mustDirective(d)
	return s | 1<<d
}

func (s Directives) Has(d Directive) bool {
	mustDirective(d)
	return s&(1<<d) != 0
}

func (s Directives) String() string {
	var names []string
	for d := Directive(0); d < directiveCount; d++ {
		if s.Has(d) {
			names = append(names, d.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// up and down return the directive pair that steers the paddle on side.
func up(side Side) Directive {
	if side == Left {
		return LeftUp
	}
	return RightUp
}

func down(side Side) Directive {
	if side == Left {
		return LeftDown
	}
	return RightDown
}

func mustDirective(d Directive) {
	if d >= directiveCount {
		panic(fmt.Sprintf("core: unknown directive %d", uint8(d)))
	}
}
