package syntax

import "fmt"

// Kind identifies the type of a token.
type Kind uint8

const (
	// Literal consumes one rune satisfying the token's condition
	Literal Kind = iota

	// Concat is inserted by the tokenizer between sequenced tokens
	Concat

	// Alt is '|'
	Alt

	// Star is '*'
	Star

	// Plus is '+'
	Plus

	// Question is '?'
	Question

	// Repeat is a bounded repetition {m}, {m,} or {m,n}
	Repeat

	// Open is '('
	Open

	// Close is ')'
	Close

	// StartAnchor is '^'
	StartAnchor

	// EndAnchor is '$'
	EndAnchor
)

// String returns a human-readable representation of the Kind
func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Concat:
		return "Concat"
	case Alt:
		return "Alt"
	case Star:
		return "Star"
	case Plus:
		return "Plus"
	case Question:
		return "Question"
	case Repeat:
		return "Repeat"
	case Open:
		return "Open"
	case Close:
		return "Close"
	case StartAnchor:
		return "StartAnchor"
	case EndAnchor:
		return "EndAnchor"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// IsOperator reports whether the kind is resolved by operator precedence.
func (k Kind) IsOperator() bool {
	return k.precedence() > 0
}

// precedence: Alt < Concat < postfix quantifiers. Non-operators return 0.
func (k Kind) precedence() int {
	switch k {
	case Alt:
		return 1
	case Concat:
		return 2
	case Star, Plus, Question, Repeat:
		return 3
	default:
		return 0
	}
}

// Unbounded is the Max of a repetition without an upper bound, as in {2,}.
const Unbounded = -1

// Token is one element of a tokenized pattern.
// Cond is set only for Literal; Min and Max only for Repeat.
type Token struct {
	Kind Kind
	Cond Condition
	Min  int
	Max  int
}

// String returns a compact form such as Literal('a') or Repeat{2,}.
func (t Token) String() string {
	switch t.Kind {
	case Literal:
		return fmt.Sprintf("Literal(%s)", t.Cond)
	case Repeat:
		if t.Max == Unbounded {
			return fmt.Sprintf("Repeat{%d,}", t.Min)
		}
		return fmt.Sprintf("Repeat{%d,%d}", t.Min, t.Max)
	default:
		return t.Kind.String()
	}
}

func op(k Kind) Token {
	return Token{Kind: k}
}

func lit(c Condition) Token {
	return Token{Kind: Literal, Cond: c}
}
