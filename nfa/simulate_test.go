package nfa

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type span [2]int

func mustCompile(t *testing.T, pattern string) *NFA {
	t.Helper()
	n, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", pattern, err)
	}
	return n
}

func overlapping(n *NFA, input string, start, end int) []span {
	var got []span
	n.ForEachMatch(input, start, end, func(s, e int) bool {
		got = append(got, span{s, e})
		return false
	})
	return got
}

func nonOverlapping(n *NFA, input string, start, end int) []span {
	var got []span
	n.ForEachNonOverlappingMatch(input, start, end, func(s, e int) bool {
		got = append(got, span{s, e})
		return false
	})
	return got
}

func TestMatches_Window(t *testing.T) {
	tests := []struct {
		pattern    string
		input      string
		start, end int
		want       bool
	}{
		{"a", "ba", 1, 2, true},
		{"^a", "ba", 1, 2, false},
		{"^a", "ab", 0, 1, true},
		{"a$", "ab", 0, 1, false},
		{"a$", "ba", 1, 2, true},
		{"^$", "", 0, 0, true},
		{"^$", "a", 0, 0, false},
		{"^$", "a", 1, 1, false},
		{"$", "ab", 2, 2, true},
		{"b*", "abc", 1, 1, true},
		{"bc", "abcd", 1, 3, true},
		{"bc", "abcd", 1, 4, false},
	}

	for _, tt := range tests {
		n := mustCompile(t, tt.pattern)
		if got := n.Matches(tt.input, tt.start, tt.end); got != tt.want {
			t.Errorf("%q.Matches(%q, %d, %d) = %v, want %v",
				tt.pattern, tt.input, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestMatches_UTF8(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{".", "é", true},
		{"..", "é", false},
		{"é+", "ééé", true},
		{"[à-ü]", "é", true},
		{`\w\w`, "日本", true},
		{"a.c", "a😀c", true},
	}

	for _, tt := range tests {
		n := mustCompile(t, tt.pattern)
		if got := n.Matches(tt.input, 0, len(tt.input)); got != tt.want {
			t.Errorf("%q.Matches(%q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
		}
	}
}

func TestForEachMatch(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    []span
	}{
		{"a+", "aaabaa", []span{{0, 3}, {4, 6}}},
		{"aba", "ababa", []span{{0, 3}, {2, 5}}},
		{"a|ab", "abab", []span{{0, 2}, {2, 4}}},
		{"ab|b", "ab", []span{{0, 2}}},
		{"a*", "bbb", nil},
		{"^$", "", nil},
		{"^a", "aa", []span{{0, 1}}},
		{"a$", "aa", []span{{1, 2}}},
		{"é", "xéyé", []span{{1, 3}, {4, 6}}},
		{"([A-Z][a-z]+|dog|cat)+[0-9]*", "JohnCat9 DogCat123 dogcat", []span{{0, 8}, {9, 18}, {19, 25}}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			n := mustCompile(t, tt.pattern)
			got := overlapping(n, tt.input, 0, len(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ForEachMatch mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestForEachNonOverlappingMatch(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    []span
	}{
		{"a+", "aaabaa", []span{{0, 3}, {4, 6}}},
		{"aba", "ababa", []span{{0, 3}}},
		{"a|ab", "abab", []span{{0, 2}, {2, 4}}},
		{`\d+`, "a1b22c333", []span{{1, 2}, {3, 5}, {6, 9}}},
		{"a*", "bab", []span{{1, 2}}},
		{"^a", "aa", []span{{0, 1}}},
		{"a$", "aa", []span{{1, 2}}},
		{"x", "", nil},
		{"([A-Z][a-z]+|dog|cat)+[0-9]*", "JohnCat9 DogCat123 dogcat", []span{{0, 8}, {9, 18}, {19, 25}}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			n := mustCompile(t, tt.pattern)
			got := nonOverlapping(n, tt.input, 0, len(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ForEachNonOverlappingMatch mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnumeration_WindowAnchors(t *testing.T) {
	n := mustCompile(t, "^a")
	if got := overlapping(n, "aa", 1, 2); got != nil {
		t.Errorf("ForEachMatch(^a, window [1,2)) = %v, want none", got)
	}
	if got := nonOverlapping(n, "aa", 1, 2); got != nil {
		t.Errorf("ForEachNonOverlappingMatch(^a, window [1,2)) = %v, want none", got)
	}

	n = mustCompile(t, "a$")
	if got := nonOverlapping(n, "aa", 0, 1); got != nil {
		t.Errorf("ForEachNonOverlappingMatch(a$, window [0,1)) = %v, want none", got)
	}

	n = mustCompile(t, "b+")
	want := []span{{2, 4}}
	if diff := cmp.Diff(want, overlapping(n, "abbbb", 2, 4)); diff != "" {
		t.Errorf("window does not bound matches (-want +got):\n%s", diff)
	}
}

func TestEnumeration_EarlyStop(t *testing.T) {
	n := mustCompile(t, "a")
	enumerations := map[string]func(string, int, int, func(int, int) bool) bool{
		"ForEachMatch":               n.ForEachMatch,
		"ForEachNonOverlappingMatch": n.ForEachNonOverlappingMatch,
	}

	for name, each := range enumerations {
		calls := 0
		stopped := each("aaa", 0, 3, func(int, int) bool {
			calls++
			return true
		})
		if !stopped {
			t.Errorf("%s returned false after the callback stopped it", name)
		}
		if calls != 1 {
			t.Errorf("%s invoked the callback %d times, want 1", name, calls)
		}
	}
}

type skipTo struct{ pos int }

func (s skipTo) Next(_ string, at, end int) int {
	if at <= s.pos && s.pos < end {
		return s.pos
	}
	return -1
}

func TestForEachNonOverlappingMatchSkip(t *testing.T) {
	n := mustCompile(t, "ab")
	var got []span
	n.ForEachNonOverlappingMatchSkip("ababab", 0, 6, skipTo{pos: 2}, func(s, e int) bool {
		got = append(got, span{s, e})
		return false
	})
	if diff := cmp.Diff([]span{{2, 4}}, got); diff != "" {
		t.Errorf("skip mismatch (-want +got):\n%s", diff)
	}
}

func TestSimulation_Concurrent(t *testing.T) {
	n := mustCompile(t, "(cat|dog)+s?")
	const input = "cats dogcat catdogs"
	want := nonOverlapping(n, input, 0, len(input))

	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if diff := cmp.Diff(want, nonOverlapping(n, input, 0, len(input))); diff != "" {
					errs <- diff
					return
				}
				if !n.Matches("catdogs", 0, 7) {
					errs <- "Matches(catdogs) = false"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
