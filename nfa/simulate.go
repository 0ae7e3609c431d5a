package nfa

import (
	"slices"
	"unicode/utf8"

	"github.com/coregx/tinyregex/internal/sparse"
)

// Skipper moves a scan cursor forward to the next position where a match can
// begin. Next returns a position in [at, end], or -1 when no match can begin
// in [at, end). A prefilter built from the pattern's literals implements it.
type Skipper interface {
	Next(input string, at, end int) int
}

// Matches reports whether input[start:end] as a whole is accepted.
//
// Anchors are evaluated against the whole input: '^' only holds at offset 0
// and '$' only at len(input), even when the window is narrower.
func (n *NFA) Matches(input string, start, end int) bool {
	st := n.getSearchState()
	defer n.putSearchState(st)

	cur, next := st.cur, st.next
	cur.Clear()
	n.closureSet(n.start, start == 0, start == len(input), cur, st)

	for pos := start; pos < end && cur.Len() > 0; {
		r, w := utf8.DecodeRuneInString(input[pos:end])
		npos := pos + w
		atEnd := npos == len(input)

		next.Clear()
		for _, id := range cur.Values() {
			for _, e := range n.states[id].edges {
				if e.Consume && e.Cond.Test(r) {
					n.closureSet(e.Next, false, atEnd, next, st)
				}
			}
		}
		cur, next = next, cur
		pos = npos
	}

	for _, id := range cur.Values() {
		if n.states[id].isEnd {
			return true
		}
	}
	return false
}

// step advances every state in cur over rune r and collects the closures of
// the targets, with their start sets, into next.
func (n *NFA) step(cur, next *sparse.StartMap, r rune, atEnd bool, st *SearchState) {
	next.Clear()
	for _, id := range cur.States() {
		starts := cur.Starts(id)
		for _, e := range n.states[id].edges {
			if e.Consume && e.Cond.Test(r) {
				n.closureStarts(e.Next, false, atEnd, starts, next, st)
			}
		}
	}
}

// ForEachMatch reports maximal matches in [start, end), which may overlap.
//
// Every start position is tracked independently and keeps the longest end of
// a non-empty match beginning there. A start whose longest match lies inside
// the match of an earlier start is not reported, so "a+" over "aaabaa" yields
// [0,3) and [4,6) while "aba" over "ababa" yields [0,3) and [2,5).
//
// fn is called in ascending start order after the whole window is scanned.
// If fn returns true the enumeration stops and ForEachMatch returns true.
func (n *NFA) ForEachMatch(input string, start, end int, fn func(start, end int) bool) bool {
	st := n.getSearchState()
	defer n.putSearchState(st)

	cur, next := st.curMap, st.nextMap
	cur.Clear()
	longest := make(map[int]int)

	for pos := start; pos < end; {
		st.one[0] = pos
		n.closureStarts(n.start, pos == 0, false, st.one[:], cur, st)

		r, w := utf8.DecodeRuneInString(input[pos:end])
		npos := pos + w
		n.step(cur, next, r, npos == len(input), st)

		for _, id := range next.States() {
			if n.states[id].isEnd {
				for _, s := range next.Starts(id) {
					longest[s] = npos
				}
			}
		}
		cur, next = next, cur
		pos = npos
	}

	starts := make([]int, 0, len(longest))
	for s := range longest {
		starts = append(starts, s)
	}
	slices.Sort(starts)
	reach := -1
	for _, s := range starts {
		e := longest[s]
		if e <= reach {
			continue
		}
		reach = e
		if fn(s, e) {
			return true
		}
	}
	return false
}

// ForEachNonOverlappingMatch reports leftmost, locally longest matches that
// do not overlap, in order. See ForEachNonOverlappingMatchSkip.
func (n *NFA) ForEachNonOverlappingMatch(input string, start, end int, fn func(start, end int) bool) bool {
	return n.ForEachNonOverlappingMatchSkip(input, start, end, nil, fn)
}

// ForEachNonOverlappingMatchSkip scans [start, end) with a cursor. At each
// cursor position it runs a simulation seeded only there and keeps the
// longest end reached by an accepting state that traces back to the cursor.
// A match [pos, end) is reported and the cursor jumps to its end; without a
// match the cursor moves one rune.
//
// Only non-empty matches are reported. If fn returns true the scan stops and
// the method returns true. skip may be nil.
func (n *NFA) ForEachNonOverlappingMatchSkip(input string, start, end int, skip Skipper, fn func(start, end int) bool) bool {
	st := n.getSearchState()
	defer n.putSearchState(st)

	for pos := start; pos < end; {
		if skip != nil {
			if pos = skip.Next(input, pos, end); pos < 0 || pos >= end {
				return false
			}
		}

		if matchEnd := n.longestAt(input, pos, end, st); matchEnd >= 0 {
			if fn(pos, matchEnd) {
				return true
			}
			pos = matchEnd
			continue
		}
		_, w := utf8.DecodeRuneInString(input[pos:end])
		pos += w
	}
	return false
}

// longestAt returns the end of the longest non-empty match beginning at pos
// and ending at or before end, or -1.
func (n *NFA) longestAt(input string, pos, end int, st *SearchState) int {
	cur, next := st.curMap, st.nextMap
	cur.Clear()
	st.one[0] = pos
	n.closureStarts(n.start, pos == 0, false, st.one[:], cur, st)

	longest := -1
	for i := pos; i < end && cur.Len() > 0; {
		r, w := utf8.DecodeRuneInString(input[i:end])
		ni := i + w
		n.step(cur, next, r, ni == len(input), st)

		for _, id := range next.States() {
			if n.states[id].isEnd && sparse.HasStart(next.Starts(id), pos) {
				longest = ni
			}
		}
		cur, next = next, cur
		i = ni
	}
	return longest
}
