// Package tinyregex provides a small regular expression engine built on a
// Thompson NFA.
//
// Patterns support literals, '.', the escapes \d \D \w \W \s \S, bracket
// classes with ranges and negation, grouping, alternation, the quantifiers
// * + ? and {m}, {m,}, {,n}, {m,n}, and the anchors ^ and $. There are no
// capture groups, backreferences or lookaround.
//
// Matching simulates every NFA path at once, so a query costs
// O(len(input) * states) and never backtracks.
//
// Basic usage:
//
//	re, err := tinyregex.Compile(`^(cat|dog){2,3}a?$`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.Matches("catdogcat") // true
//
//	re = tinyregex.MustCompile(`a+`)
//	re.ForEachNonOverlappingMatch("aaabaa", func(start, end int) bool {
//	    fmt.Println(start, end) // 0 3, then 4 6
//	    return false
//	})
//
// Positions are byte offsets into the input. Each step of a match consumes
// one UTF-8 encoded rune, and windows must start and end on rune boundaries.
// Anchors always refer to the whole input: '^' holds only at offset 0 and '$'
// only at len(input), whatever window a query scans.
package tinyregex

import (
	"go.uber.org/zap"

	"github.com/coregx/tinyregex/literal"
	"github.com/coregx/tinyregex/nfa"
	"github.com/coregx/tinyregex/prefilter"
	"github.com/coregx/tinyregex/syntax"
)

var (
	// ErrSyntax is matched by errors.Is for every pattern syntax error.
	ErrSyntax = syntax.ErrSyntax

	// ErrInternal is matched by errors.Is when automaton construction breaks
	// one of its own invariants.
	ErrInternal = nfa.ErrInternal
)

// Callback receives one match [start, end). Returning true stops the
// enumeration.
type Callback func(start, end int) bool

// Regex represents a compiled regular expression.
//
// A Regex is immutable and safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := tinyregex.MustCompile(`[A-Z][a-z]+`)
//	if re.Contains("hello World") {
//	    println("matched!")
//	}
type Regex struct {
	nfa       *nfa.NFA
	prefilter *prefilter.Prefilter
	pattern   string
}

// Compile compiles a regular expression pattern with the default
// configuration.
//
// The empty pattern is equivalent to "^$". Syntax errors are returned as
// *syntax.Error and match ErrSyntax under errors.Is.
//
// Example:
//
//	re, err := tinyregex.Compile(`\d{3}-\d{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a regular expression pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var word = tinyregex.MustCompile(`\w+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("tinyregex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Bounded repetitions copy their operand once per repetition slot, so
// patterns such as (a{100}){100} produce large automata.
//
// Example:
//
//	config := tinyregex.DefaultConfig()
//	config.Logger = logger
//	re, err := tinyregex.CompileWithConfig("(start|end)", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	expr := pattern
	if expr == "" {
		expr = "^$"
	}
	postfix, err := syntax.Parse(expr)
	if err != nil {
		return nil, err
	}
	n, err := nfa.CompileParsed(expr, postfix)
	if err != nil {
		return nil, err
	}

	re := &Regex{nfa: n, pattern: pattern}
	log := config.logger()
	if config.EnablePrefilter {
		ext := literal.New(literal.ExtractorConfig{MaxLiterals: config.MaxLiterals})
		if seq := ext.Extract(postfix); seq != nil {
			pf, err := prefilter.New(seq)
			if err != nil {
				log.Debug("prefilter disabled", zap.String("pattern", pattern), zap.Error(err))
			} else {
				re.prefilter = pf
			}
		}
	}

	log.Debug("compiled pattern",
		zap.String("pattern", pattern),
		zap.Int("states", n.States()),
		zap.String("prefilter", re.prefilterKind()),
	)
	return re, nil
}

func (r *Regex) prefilterKind() string {
	if r.prefilter == nil {
		return "none"
	}
	return "aho-corasick"
}

// skipper returns the prefilter as an nfa.Skipper, or a nil interface.
func (r *Regex) skipper() nfa.Skipper {
	if r.prefilter == nil {
		return nil
	}
	return r.prefilter
}

// checkWindow panics when [start, end) is not a window of input.
func checkWindow(input string, start, end int) {
	if start < 0 || end > len(input) || start > end {
		panic("tinyregex: window out of range")
	}
}

// Matches reports whether the whole input is matched by the pattern.
//
// Example:
//
//	re := tinyregex.MustCompile(`a{2,3}`)
//	re.Matches("aaa")  // true
//	re.Matches("aaaa") // false
func (r *Regex) Matches(input string) bool {
	return r.nfa.Matches(input, 0, len(input))
}

// MatchesIn reports whether input[start:end] as a whole is matched. Anchors
// still refer to the whole input, so `^a` does not match the window [1,2)
// of "ba".
func (r *Regex) MatchesIn(input string, start, end int) bool {
	checkWindow(input, start, end)
	return r.nfa.Matches(input, start, end)
}

// Contains reports whether some non-empty substring of input is matched.
func (r *Regex) Contains(input string) bool {
	return r.ContainsIn(input, 0, len(input))
}

// ContainsIn reports whether some non-empty substring of input[start:end]
// is matched.
func (r *Regex) ContainsIn(input string, start, end int) bool {
	checkWindow(input, start, end)
	if r.prefilter != nil {
		return r.prefilter.IsMatch(input[start:end])
	}
	return r.nfa.ForEachNonOverlappingMatch(input, start, end, func(int, int) bool {
		return true
	})
}

// ForEachMatch calls cb for every maximal match in input, in ascending start
// order. Matches may overlap, but none is reported inside an earlier one.
// It returns true when cb stopped the enumeration.
//
// Example:
//
//	re := tinyregex.MustCompile(`aba`)
//	re.ForEachMatch("ababa", func(start, end int) bool {
//	    fmt.Println(start, end) // 0 3, then 2 5
//	    return false
//	})
func (r *Regex) ForEachMatch(input string, cb Callback) bool {
	return r.ForEachMatchIn(input, 0, len(input), cb)
}

// ForEachMatchIn is ForEachMatch restricted to input[start:end].
func (r *Regex) ForEachMatchIn(input string, start, end int, cb Callback) bool {
	checkWindow(input, start, end)
	if r.prefilter != nil && !r.prefilter.IsMatch(input[start:end]) {
		return false
	}
	return r.nfa.ForEachMatch(input, start, end, cb)
}

// ForEachNonOverlappingMatch calls cb for the leftmost-longest matches of
// input, left to right, resuming after each match.
// It returns true when cb stopped the enumeration.
func (r *Regex) ForEachNonOverlappingMatch(input string, cb Callback) bool {
	return r.ForEachNonOverlappingMatchIn(input, 0, len(input), cb)
}

// ForEachNonOverlappingMatchIn is ForEachNonOverlappingMatch restricted to
// input[start:end].
func (r *Regex) ForEachNonOverlappingMatchIn(input string, start, end int, cb Callback) bool {
	checkWindow(input, start, end)
	if r.prefilter != nil && !r.prefilter.IsMatch(input[start:end]) {
		return false
	}
	return r.nfa.ForEachNonOverlappingMatchSkip(input, start, end, r.skipper(), cb)
}

// FindAllIndex returns the locations of successive non-overlapping matches
// of the pattern in input. If n >= 0, it returns at most n matches.
// Returns nil if there is no match.
//
// Example:
//
//	re := tinyregex.MustCompile(`\d+`)
//	re.FindAllIndex("a1b22c333", -1) // [[1 2] [3 5] [6 9]]
func (r *Regex) FindAllIndex(input string, n int) [][]int {
	if n == 0 {
		return nil
	}
	var out [][]int
	r.ForEachNonOverlappingMatch(input, func(start, end int) bool {
		out = append(out, []int{start, end})
		return n > 0 && len(out) >= n
	})
	return out
}

// CountMatches returns the number of matches ForEachMatch reports for input.
func (r *Regex) CountMatches(input string) int {
	count := 0
	r.ForEachMatch(input, func(int, int) bool {
		count++
		return false
	})
	return count
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}

// States returns the number of states in the compiled automaton.
func (r *Regex) States() int {
	return r.nfa.States()
}
