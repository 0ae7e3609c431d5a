package nfa

import (
	"fmt"

	"github.com/coregx/tinyregex/syntax"
)

// Builder constructs NFAs incrementally using a low-level API.
// This provides full control over NFA construction and is used by Compile.
//
// States are only ever appended; IDs handed out stay valid until Build.
type Builder struct {
	states []State
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
	}
}

// AddState adds a plain state without edges and returns its ID
func (b *Builder) AddState() StateID {
	//nolint:gosec // G115: state counts stay far below 2^32
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id})
	return id
}

// AddStartAnchor adds a zero-width state that is only live at input position 0.
func (b *Builder) AddStartAnchor() StateID {
	id := b.AddState()
	b.states[id].mustBeStart = true
	return id
}

// AddEndAnchor adds a zero-width state that is only live at the end of input.
func (b *Builder) AddEndAnchor() StateID {
	id := b.AddState()
	b.states[id].mustBeEnd = true
	return id
}

// AddEpsilon appends an epsilon edge from -> to.
func (b *Builder) AddEpsilon(from, to StateID) {
	b.states[from].edges = append(b.states[from].edges, Edge{Next: to, Cond: syntax.Any})
}

// AddConsume appends an edge from -> to that consumes one rune accepted by cond.
func (b *Builder) AddConsume(from, to StateID, cond syntax.Condition) {
	b.states[from].edges = append(b.states[from].edges, Edge{Next: to, Consume: true, Cond: cond})
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.states)
}

// Clone copies the subgraph reachable from entry into fresh states and
// returns the copies of entry and exit.
//
// Anchor flags are copied; edges to states outside the reachable set are
// dropped. The copy shares no state with the original.
func (b *Builder) Clone(entry, exit StateID) (StateID, StateID) {
	visited := b.reachable(entry)

	remap := make(map[StateID]StateID, len(visited))
	for _, old := range visited {
		id := b.AddState()
		b.states[id].mustBeStart = b.states[old].mustBeStart
		b.states[id].mustBeEnd = b.states[old].mustBeEnd
		remap[old] = id
	}
	for _, old := range visited {
		from := remap[old]
		for _, e := range b.states[old].edges {
			to, ok := remap[e.Next]
			if !ok {
				continue
			}
			b.states[from].edges = append(b.states[from].edges, Edge{Next: to, Consume: e.Consume, Cond: e.Cond})
		}
	}

	newExit, ok := remap[exit]
	if !ok {
		// exit not reachable from entry: give the clone a detached exit
		newExit = b.AddState()
	}
	return remap[entry], newExit
}

// reachable returns every state reachable from root over all edges, in
// depth-first discovery order.
func (b *Builder) reachable(root StateID) []StateID {
	seen := make([]bool, len(b.states))
	order := []StateID{root}
	seen[root] = true
	stack := []StateID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range b.states[id].edges {
			if !seen[e.Next] {
				seen[e.Next] = true
				order = append(order, e.Next)
				stack = append(stack, e.Next)
			}
		}
	}
	return order
}

// Validate checks that the NFA is well-formed:
// - start and match states are valid
// - all edge targets point to valid states
func (b *Builder) Validate(start, match StateID) error {
	if int(start) >= len(b.states) {
		return &BuildError{Message: "start state out of bounds", StateID: start}
	}
	if int(match) >= len(b.states) {
		return &BuildError{Message: "match state out of bounds", StateID: match}
	}
	for i := range b.states {
		for j, e := range b.states[i].edges {
			if int(e.Next) >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("invalid edge %d target %d", j, e.Next),
					StateID: StateID(i),
				}
			}
		}
	}
	return nil
}

// Build finalizes and returns the constructed NFA.
//
// The match state is marked accepting, and the arena is compacted to the
// states reachable from start so that States() reports the live automaton.
// Match() is InvalidState if the accepting state cannot be reached.
func (b *Builder) Build(start, match StateID) (*NFA, error) {
	if err := b.Validate(start, match); err != nil {
		return nil, err
	}
	b.states[match].isEnd = true

	live := b.reachable(start)
	remap := make([]StateID, len(b.states))
	for i := range remap {
		remap[i] = InvalidState
	}
	for i, old := range live {
		//nolint:gosec // G115: bounded by len(b.states)
		remap[old] = StateID(i)
	}

	states := make([]State, len(live))
	for i, old := range live {
		src := &b.states[old]
		dst := &states[i]
		//nolint:gosec // G115: bounded by len(b.states)
		dst.id = StateID(i)
		dst.mustBeStart = src.mustBeStart
		dst.mustBeEnd = src.mustBeEnd
		dst.isEnd = src.isEnd
		dst.edges = make([]Edge, len(src.edges))
		for j, e := range src.edges {
			dst.edges[j] = Edge{Next: remap[e.Next], Consume: e.Consume, Cond: e.Cond}
		}
	}

	n := &NFA{
		states: states,
		start:  remap[start],
		match:  remap[match],
	}
	n.pool.New = func() any {
		return newSearchState(len(n.states))
	}
	return n, nil
}
