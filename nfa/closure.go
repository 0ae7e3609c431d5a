package nfa

import (
	"github.com/coregx/tinyregex/internal/sparse"
)

// SearchState holds the mutable scratch space of one query.
// It is taken from the NFA's pool for the duration of a query, so the same
// NFA can serve concurrent queries.
type SearchState struct {
	cur, next       *sparse.Set
	curMap, nextMap *sparse.StartMap
	scratch         *sparse.Set
	stack           []StateID
	one             [1]int
}

func newSearchState(states int) *SearchState {
	return &SearchState{
		cur:     sparse.NewSet(states),
		next:    sparse.NewSet(states),
		curMap:  sparse.NewStartMap(states),
		nextMap: sparse.NewStartMap(states),
		scratch: sparse.NewSet(states),
		stack:   make([]StateID, 0, 16),
	}
}

func (n *NFA) getSearchState() *SearchState {
	return n.pool.Get().(*SearchState)
}

func (n *NFA) putSearchState(s *SearchState) {
	n.pool.Put(s)
}

// admits reports whether state id may be active at a position with the given
// absolute boundary flags. '^' states need position 0 of the whole input and
// '$' states need its end, whatever window the query scans.
func (n *NFA) admits(id StateID, atStart, atEnd bool) bool {
	s := &n.states[id]
	return (atStart || !s.mustBeStart) && (atEnd || !s.mustBeEnd)
}

// closureSet adds the epsilon-closure of id to set.
//
// A state already in set is skipped together with its closure: within one
// step every closure uses the same boundary flags, so the closure of a member
// is already present.
func (n *NFA) closureSet(id StateID, atStart, atEnd bool, set *sparse.Set, st *SearchState) {
	if !n.admits(id, atStart, atEnd) || !set.Add(uint32(id)) {
		return
	}
	stack := append(st.stack[:0], id)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.states[s].edges {
			if !e.Consume && n.admits(e.Next, atStart, atEnd) && set.Add(uint32(e.Next)) {
				stack = append(stack, e.Next)
			}
		}
	}
	st.stack = stack
}

// closureStarts merges starts into every state of the epsilon-closure of id.
//
// Unlike closureSet, presence in m does not end the walk: a state reached
// again may carry start positions its closure has not seen yet.
func (n *NFA) closureStarts(id StateID, atStart, atEnd bool, starts []int, m *sparse.StartMap, st *SearchState) {
	st.scratch.Clear()
	n.closureSet(id, atStart, atEnd, st.scratch, st)
	for _, s := range st.scratch.Values() {
		m.Add(s, starts)
	}
}
