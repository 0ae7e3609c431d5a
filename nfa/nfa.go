package nfa

import (
	"fmt"
	"strings"
	"sync"

	"github.com/coregx/tinyregex/syntax"
)

// StateID uniquely identifies an NFA state. It indexes the NFA's state arena.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// Edge is an outgoing transition of a state.
//
// An epsilon edge (Consume == false) always carries syntax.Any and is taken
// without reading input. A consuming edge reads one rune and is taken when
// Cond accepts it.
type Edge struct {
	Next    StateID
	Consume bool
	Cond    syntax.Condition
}

// State is a single NFA state.
type State struct {
	id StateID

	// mustBeStart is set only on the node produced by '^'
	mustBeStart bool

	// mustBeEnd is set only on the node produced by '$'
	mustBeEnd bool

	// isEnd marks the single accepting state
	isEnd bool

	edges []Edge
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// IsMatch returns true if this is the accepting state
func (s *State) IsMatch() bool {
	return s.isEnd
}

// MustBeStart reports whether the state is only live at input position 0.
func (s *State) MustBeStart() bool {
	return s.mustBeStart
}

// MustBeEnd reports whether the state is only live at the end of the input.
func (s *State) MustBeEnd() bool {
	return s.mustBeEnd
}

// Edges returns the outgoing edges in insertion order.
// The slice must not be modified.
func (s *State) Edges() []Edge {
	return s.edges
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "State(%d", s.id)
	if s.mustBeStart {
		sb.WriteString(", ^")
	}
	if s.mustBeEnd {
		sb.WriteString(", $")
	}
	if s.isEnd {
		sb.WriteString(", Match")
	}
	for _, e := range s.edges {
		if e.Consume {
			fmt.Fprintf(&sb, ", %s -> %d", e.Cond, e.Next)
		} else {
			fmt.Fprintf(&sb, ", eps -> %d", e.Next)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// NFA is a compiled Thompson NFA.
//
// The state graph is immutable once Build returns, so an NFA can be queried
// from many goroutines at once. Per-query scratch space comes from a pool.
type NFA struct {
	states []State
	start  StateID
	match  StateID

	pool sync.Pool
}

// Start returns the starting state ID of the NFA
func (n *NFA) Start() StateID {
	return n.start
}

// Match returns the ID of the accepting state.
func (n *NFA) Match() StateID {
	return n.match
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsMatch returns true if the given state is the accepting state
func (n *NFA) IsMatch(id StateID) bool {
	if s := n.State(id); s != nil {
		return s.IsMatch()
	}
	return false
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// String returns a dump of every state, one per line.
func (n *NFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "NFA{states: %d, start: %d, match: %d}\n", len(n.states), n.start, n.match)
	for i := range n.states {
		sb.WriteString("  ")
		sb.WriteString(n.states[i].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
