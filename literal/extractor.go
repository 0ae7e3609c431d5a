package literal

import (
	"unicode/utf8"

	"github.com/coregx/tinyregex/syntax"
)

// ExtractorConfig configures literal extraction.
type ExtractorConfig struct {
	// MaxLiterals caps the size of the extracted set. Patterns whose literal
	// set would be larger are treated as non-literal.
	MaxLiterals int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{MaxLiterals: 64}
}

// Extractor computes the literal set of a postfix token stream.
type Extractor struct {
	config ExtractorConfig
}

// New creates an extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	if config.MaxLiterals <= 0 {
		config.MaxLiterals = DefaultConfig().MaxLiterals
	}
	return &Extractor{config: config}
}

// Extract returns the complete set of strings matched by the postfix
// pattern, or nil when the pattern is not a pure literal set.
//
// A pattern is a pure literal set when every Literal token matches exactly
// one rune other than utf8.RuneError and the only operators are Concat and
// Alt. Anchors, classes, '.' and quantifiers all disqualify it.
//
// Example:
//
//	postfix, _ := syntax.Parse("(start|end)")
//	seq := literal.New(literal.DefaultConfig()).Extract(postfix)
//	// seq holds "start" and "end"
func (e *Extractor) Extract(postfix []syntax.Token) *Seq {
	// nil entries mark operands that are not literal sets
	stack := make([]*Seq, 0, 8)
	limit := e.config.MaxLiterals

	for _, t := range postfix {
		switch t.Kind {
		case syntax.Literal:
			eq, ok := t.Cond.(syntax.Equal)
			// RuneError also stands for invalid input bytes, which no
			// byte-level literal can represent.
			if !ok || rune(eq) == utf8.RuneError {
				stack = append(stack, nil)
				continue
			}
			buf := utf8.AppendRune(nil, rune(eq))
			stack = append(stack, NewSeq(Literal{Bytes: buf}))

		case syntax.StartAnchor, syntax.EndAnchor:
			stack = append(stack, nil)

		case syntax.Concat, syntax.Alt:
			if len(stack) < 2 {
				return nil
			}
			b, a := stack[len(stack)-1], stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			var out *Seq
			if a != nil && b != nil {
				if t.Kind == syntax.Concat {
					out = cross(a, b, limit)
				} else {
					out = union(a, b, limit)
				}
			}
			stack = append(stack, out)

		case syntax.Star, syntax.Plus, syntax.Question, syntax.Repeat:
			if len(stack) < 1 {
				return nil
			}
			stack[len(stack)-1] = nil

		default:
			return nil
		}
	}

	if len(stack) != 1 || stack[0].IsEmpty() {
		return nil
	}
	return stack[0]
}
