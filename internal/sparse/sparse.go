// Package sparse provides the state containers used by NFA simulation.
//
// Set is a sparse set of state IDs with O(1) insert, membership and clear,
// iterated in insertion order. StartMap pairs each active state with the
// sorted set of start positions that reached it.
package sparse

// Set is a set of uint32 values below a fixed capacity.
// The sparse array maps a value to its index in dense; a value is present
// when that index is in range and dense points back at it.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// NewSet creates a set able to hold values in [0, capacity).
func NewSet(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Add inserts v and reports whether it was newly added.
// Panics if v >= capacity.
func (s *Set) Add(v uint32) bool {
	if s.Contains(v) {
		return false
	}
	//nolint:gosec // G115: len(dense) < capacity which fits in uint32
	s.sparse[v] = uint32(len(s.dense))
	s.dense = append(s.dense, v)
	return true
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v uint32) bool {
	if int(v) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[v]
	return int(idx) < len(s.dense) && s.dense[idx] == v
}

// Clear empties the set in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// Values returns the values in insertion order.
// The slice is only valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}

// StartMap maps active states to the start positions that reached them.
// Start sets are kept sorted and free of duplicates so that two maps built
// from the same inputs compare equal regardless of merge order.
type StartMap struct {
	keys   *Set
	starts [][]int
}

// NewStartMap creates a map for states in [0, capacity).
func NewStartMap(capacity int) *StartMap {
	return &StartMap{
		keys:   NewSet(capacity),
		starts: make([][]int, capacity),
	}
}

// Add merges starts into the start set of state.
func (m *StartMap) Add(state uint32, starts []int) {
	if m.keys.Add(state) {
		m.starts[state] = append(m.starts[state][:0], starts...)
		return
	}
	m.starts[state] = union(m.starts[state], starts)
}

// Starts returns the sorted start set of state, or nil when absent.
func (m *StartMap) Starts(state uint32) []int {
	if !m.keys.Contains(state) {
		return nil
	}
	return m.starts[state]
}

// States returns the active states in insertion order.
func (m *StartMap) States() []uint32 {
	return m.keys.Values()
}

// Len returns the number of active states.
func (m *StartMap) Len() int {
	return m.keys.Len()
}

// Clear removes every state, keeping the start slices for reuse.
func (m *StartMap) Clear() {
	m.keys.Clear()
}

// HasStart reports whether the sorted slice starts contains pos.
func HasStart(starts []int, pos int) bool {
	lo, hi := 0, len(starts)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case starts[mid] == pos:
			return true
		case starts[mid] < pos:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}

// union merges two sorted duplicate-free slices. a may be reused.
func union(a, b []int) []int {
	if len(b) == 0 {
		return a
	}
	// Common case: b adds nothing new.
	subset := true
	for _, v := range b {
		if !HasStart(a, v) {
			subset = false
			break
		}
	}
	if subset {
		return a
	}
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
