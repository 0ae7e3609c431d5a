package syntax

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Tokenize converts a pattern into a flat token sequence with explicit Concat
// tokens between every pair of tokens that must be sequenced.
//
// The scan is a single left-to-right pass without backtracking. It fails only
// on malformed syntax: an unterminated class or repetition, a trailing
// backslash, or a bad repetition body.
//
// Example:
//
//	tokens, _ := syntax.Tokenize("ab*")
//	// Literal('a') Concat Literal('b') Star
func Tokenize(pattern string) ([]Token, error) {
	base, err := scan(pattern)
	if err != nil {
		return nil, err
	}
	return insertConcat(base), nil
}

// scan produces the base tokens without Concat markers.
func scan(pattern string) ([]Token, error) {
	tokens := make([]Token, 0, len(pattern))
	for i := 0; i < len(pattern); {
		c, size := utf8.DecodeRuneInString(pattern[i:])
		switch c {
		case '(':
			tokens = append(tokens, op(Open))
		case ')':
			tokens = append(tokens, op(Close))
		case '|':
			tokens = append(tokens, op(Alt))
		case '*':
			tokens = append(tokens, op(Star))
		case '+':
			tokens = append(tokens, op(Plus))
		case '?':
			tokens = append(tokens, op(Question))
		case '.':
			tokens = append(tokens, lit(Any))
		case '^':
			tokens = append(tokens, op(StartAnchor))
		case '$':
			tokens = append(tokens, op(EndAnchor))
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return nil, &Error{Code: ErrMissingBracket, Expr: pattern[i:], Pos: i}
			}
			content := pattern[i+1 : i+1+end]
			tokens = append(tokens, lit(parseClass(content)))
			size = end + 2
		case '\\':
			if i+1 >= len(pattern) {
				return nil, &Error{Code: ErrTrailingBackslash, Expr: pattern[i:], Pos: i}
			}
			next, n := utf8.DecodeRuneInString(pattern[i+1:])
			tokens = append(tokens, lit(escape(next)))
			size = 1 + n
		case '{':
			end := strings.IndexByte(pattern[i+1:], '}')
			if end < 0 {
				return nil, &Error{Code: ErrMissingBrace, Expr: pattern[i:], Pos: i}
			}
			body := pattern[i+1 : i+1+end]
			lo, hi, ok := parseRepeat(body)
			if !ok {
				return nil, &Error{Code: ErrInvalidRepeatSize, Expr: "{" + body + "}", Pos: i}
			}
			tokens = append(tokens, Token{Kind: Repeat, Min: lo, Max: hi})
			size = end + 2
		default:
			tokens = append(tokens, lit(Equal(c)))
		}
		i += size
	}
	return tokens, nil
}

// escape maps the rune after a backslash to its condition.
func escape(r rune) Condition {
	switch r {
	case 'd':
		return Digit
	case 'D':
		return NotDigit
	case 'w':
		return Word
	case 'W':
		return NotWord
	case 's':
		return Space
	case 'S':
		return NotSpace
	default:
		return Equal(r)
	}
}

// parseClass builds the condition for the text between '[' and ']'.
// A leading '^' negates the class. "x-y" is a range only when a rune follows
// the '-', so a trailing '-' is a literal member.
func parseClass(content string) *Class {
	class := &Class{}
	runes := []rune(content)
	i := 0
	if len(runes) > 0 && runes[0] == '^' {
		class.Negate = true
		i = 1
	}
	for i < len(runes) {
		if i+2 < len(runes) && runes[i+1] == '-' {
			class.Ranges = append(class.Ranges, RuneRange{Lo: runes[i], Hi: runes[i+2]})
			i += 3
			continue
		}
		class.Runes = append(class.Runes, runes[i])
		i++
	}
	return class
}

// parseRepeat parses the body of {m}, {m,}, {,n} or {m,n}.
func parseRepeat(body string) (lo, hi int, ok bool) {
	parts := strings.Split(body, ",")
	var err error
	switch len(parts) {
	case 1:
		if lo, err = strconv.Atoi(parts[0]); err != nil {
			return 0, 0, false
		}
		hi = lo
	case 2:
		if parts[0] != "" {
			if lo, err = strconv.Atoi(parts[0]); err != nil {
				return 0, 0, false
			}
		}
		hi = Unbounded
		if parts[1] != "" {
			if hi, err = strconv.Atoi(parts[1]); err != nil || hi < 0 {
				return 0, 0, false
			}
		}
	default:
		return 0, 0, false
	}
	if lo < 0 {
		return 0, 0, false
	}
	if hi != Unbounded && hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}

// insertConcat adds a Concat token between A and B when A ends an operand
// and B begins one.
func insertConcat(tokens []Token) []Token {
	if len(tokens) == 0 {
		return tokens
	}
	result := make([]Token, 0, 2*len(tokens))
	for j, t := range tokens {
		result = append(result, t)
		if j+1 < len(tokens) && endsOperand(t.Kind) && beginsOperand(tokens[j+1].Kind) {
			result = append(result, op(Concat))
		}
	}
	return result
}

func endsOperand(k Kind) bool {
	switch k {
	case Literal, Star, Plus, Question, Close, StartAnchor, Repeat:
		return true
	}
	return false
}

func beginsOperand(k Kind) bool {
	switch k {
	case Literal, Open, EndAnchor:
		return true
	}
	return false
}
