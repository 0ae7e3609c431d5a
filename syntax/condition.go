// Package syntax turns a pattern string into the token stream consumed by the
// NFA builder.
//
// The package covers three steps:
//   - Condition: the single-rune predicates carried by consuming edges
//   - Tokenize: a left-to-right scan producing typed tokens with explicit
//     concatenation markers
//   - ToPostfix: operator-precedence reordering of the tokens into postfix form
//
// Example:
//
//	tokens, err := syntax.Tokenize(`(cat|dog)+\d`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	postfix, err := syntax.ToPostfix(tokens)
package syntax

import (
	"strconv"
	"strings"
	"unicode"
)

// Condition is a predicate over a single rune. Every consuming NFA edge
// carries one.
type Condition interface {
	// Test reports whether r satisfies the condition.
	Test(r rune) bool

	// String returns a short human-readable form used in debug output.
	String() string
}

// Any is the always-true condition. It is used for '.' and for every
// epsilon edge.
var Any Condition = anyCondition{}

type anyCondition struct{}

func (anyCondition) Test(rune) bool  { return true }
func (anyCondition) String() string { return "any" }

// Equal matches exactly one rune.
//
// Literal extraction relies on being able to type-assert a Condition to Equal
// and read the rune back.
type Equal rune

// Test implements Condition.
func (e Equal) Test(r rune) bool { return rune(e) == r }

// String implements Condition.
func (e Equal) String() string { return strconv.QuoteRune(rune(e)) }

// Predefined shorthand classes.
var (
	Digit    Condition = predicate{name: `\d`, fn: isDigit}
	NotDigit Condition = predicate{name: `\D`, fn: isDigit, negate: true}
	Word     Condition = predicate{name: `\w`, fn: isWord}
	NotWord  Condition = predicate{name: `\W`, fn: isWord, negate: true}
	Space    Condition = predicate{name: `\s`, fn: isSpace}
	NotSpace Condition = predicate{name: `\S`, fn: isSpace, negate: true}
)

type predicate struct {
	name   string
	fn     func(rune) bool
	negate bool
}

func (p predicate) Test(r rune) bool { return p.fn(r) != p.negate }
func (p predicate) String() string  { return p.name }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isSpace accepts space, tab, CR, LF and form feed only.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\f':
		return true
	}
	return false
}

// RuneRange is an inclusive rune range [Lo, Hi] inside a character class.
// A range with Lo > Hi is empty.
type RuneRange struct {
	Lo, Hi rune
}

// Class is a bracket expression such as [a-z_] or [^0-9].
type Class struct {
	Runes  []rune
	Ranges []RuneRange
	Negate bool
}

// Test implements Condition.
func (c *Class) Test(r rune) bool {
	return c.contains(r) != c.Negate
}

func (c *Class) contains(r rune) bool {
	for _, x := range c.Runes {
		if x == r {
			return true
		}
	}
	for _, rg := range c.Ranges {
		if r >= rg.Lo && r <= rg.Hi {
			return true
		}
	}
	return false
}

// String implements Condition.
func (c *Class) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	if c.Negate {
		sb.WriteByte('^')
	}
	for _, r := range c.Runes {
		sb.WriteRune(r)
	}
	for _, rg := range c.Ranges {
		sb.WriteRune(rg.Lo)
		sb.WriteByte('-')
		sb.WriteRune(rg.Hi)
	}
	sb.WriteByte(']')
	return sb.String()
}
