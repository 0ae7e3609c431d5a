// Package literal extracts the literal strings a pattern can match.
//
// When a pattern is built only from plain runes, concatenation and
// alternation (for example "(start|end)" or "abc"), the set of strings it
// matches is finite and known at compile time. That set feeds the
// Aho-Corasick prefilter.
//
// Key concepts:
//   - A Literal is a concrete byte sequence that the pattern matches
//   - A Seq is the set of alternative literals (e.g., from /foo|bar/)
package literal

import (
	"strings"
	"unicode/utf8"
)

// Literal is one string the pattern matches in full.
type Literal struct {
	Bytes []byte
}

// NewLiteral creates a new Literal from the given byte sequence.
//
// Example:
//
//	lit := literal.NewLiteral([]byte("hello"))
//	fmt.Println(lit.Len()) // Output: 5
func NewLiteral(b []byte) Literal {
	return Literal{Bytes: b}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns the literal text.
func (l Literal) String() string {
	return string(l.Bytes)
}

// Seq is a set of alternative literals without duplicates, kept in the order
// they were first produced.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo")),
//	    literal.NewLiteral([]byte("bar")),
//	)
//	fmt.Printf("Sequence has %d literals\n", seq.Len()) // Output: Sequence has 2 literals
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals, dropping duplicates.
func NewSeq(lits ...Literal) *Seq {
	s := &Seq{literals: make([]Literal, 0, len(lits))}
	for _, l := range lits {
		s.add(l)
	}
	return s
}

func (s *Seq) add(l Literal) {
	for _, x := range s.literals {
		if string(x.Bytes) == string(l.Bytes) {
			return
		}
	}
	s.literals = append(s.literals, l)
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// FirstRunes returns, as a string, every rune that begins some literal.
// Every match of the pattern starts with one of them.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("start")),
//	    literal.NewLiteral([]byte("end")),
//	    literal.NewLiteral([]byte("stop")),
//	)
//	fmt.Println(seq.FirstRunes()) // Output: se
func (s *Seq) FirstRunes() string {
	var sb strings.Builder
	for _, l := range s.literals {
		r, _ := utf8.DecodeRune(l.Bytes)
		if !strings.ContainsRune(sb.String(), r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// cross returns every concatenation a+b, or nil when the product would hold
// more than limit literals.
func cross(a, b *Seq, limit int) *Seq {
	if a.Len()*b.Len() > limit {
		return nil
	}
	out := &Seq{literals: make([]Literal, 0, a.Len()*b.Len())}
	for _, x := range a.literals {
		for _, y := range b.literals {
			buf := make([]byte, 0, len(x.Bytes)+len(y.Bytes))
			buf = append(buf, x.Bytes...)
			buf = append(buf, y.Bytes...)
			out.add(Literal{Bytes: buf})
		}
	}
	return out
}

// union returns the literals of a followed by the new literals of b, or nil
// when the result would hold more than limit literals.
func union(a, b *Seq, limit int) *Seq {
	out := NewSeq(a.literals...)
	for _, y := range b.literals {
		out.add(y)
	}
	if out.Len() > limit {
		return nil
	}
	return out
}
