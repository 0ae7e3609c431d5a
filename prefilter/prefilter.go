// Package prefilter provides fast candidate filtering for patterns whose
// matches form a finite literal set.
//
// The literals are compiled into an Aho-Corasick automaton. Because every
// match of such a pattern is one of the literals, the automaton alone
// decides containment, and a window without any literal holds no match.
// The set of first runes lets a scan cursor skip positions where no literal
// can begin.
//
// Example usage:
//
//	postfix, _ := syntax.Parse("(start|end)")
//	seq := literal.New(literal.DefaultConfig()).Extract(postfix)
//	pf, err := prefilter.New(seq)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pf.IsMatch("1end2") // true
package prefilter

import (
	"strings"
	"unsafe"

	"github.com/coregx/ahocorasick"
	"github.com/pkg/errors"

	"github.com/coregx/tinyregex/literal"
)

// ErrNoLiterals is returned by New for an empty literal sequence.
var ErrNoLiterals = errors.New("prefilter: no literals")

// Prefilter answers literal-occurrence questions for a finite literal set.
// It is immutable and safe for concurrent use.
type Prefilter struct {
	automaton *ahocorasick.Automaton
	first     string
	literals  int
}

// New builds a prefilter for seq.
func New(seq *literal.Seq) (*Prefilter, error) {
	if seq.IsEmpty() {
		return nil, ErrNoLiterals
	}
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "prefilter: build Aho-Corasick automaton")
	}
	return &Prefilter{
		automaton: auto,
		first:     seq.FirstRunes(),
		literals:  seq.Len(),
	}, nil
}

// IsMatch reports whether any literal occurs in haystack.
func (p *Prefilter) IsMatch(haystack string) bool {
	return p.automaton.IsMatch(bytesOf(haystack))
}

// bytesOf views s as a byte slice without copying. The automaton only reads
// the haystack.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Next returns the first position in [at, end) where a literal can begin,
// or -1. It implements nfa.Skipper.
func (p *Prefilter) Next(input string, at, end int) int {
	idx := strings.IndexAny(input[at:end], p.first)
	if idx < 0 {
		return -1
	}
	return at + idx
}

// Literals returns the number of literals the prefilter was built from.
func (p *Prefilter) Literals() int {
	return p.literals
}
