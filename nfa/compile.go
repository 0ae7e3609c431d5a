package nfa

import (
	"github.com/pkg/errors"

	"github.com/coregx/tinyregex/syntax"
)

// fragment is an open sub-automaton for one parsed sub-expression.
// exit has no outgoing edges until a later combinator attaches them.
type fragment struct {
	entry StateID
	exit  StateID
}

// Compile parses pattern and compiles it into an NFA.
//
// Syntax problems are returned as *syntax.Error (errors.Is(err,
// syntax.ErrSyntax)); a violated builder invariant as *BuildError
// (errors.Is(err, ErrInternal)).
//
// Bounded repetition clones its operand once per repetition slot, so the
// automaton grows linearly with the bounds and multiplicatively with nesting.
func Compile(pattern string) (*NFA, error) {
	postfix, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return CompileParsed(pattern, postfix)
}

// CompileParsed compiles the postfix form of pattern, as returned by
// syntax.Parse. Errors are reported against pattern like Compile does.
func CompileParsed(pattern string, postfix []syntax.Token) (*NFA, error) {
	n, err := CompilePostfix(postfix)
	if err != nil {
		if se, ok := err.(*syntax.Error); ok {
			se.Expr = pattern
			return nil, se
		}
		return nil, errors.Wrapf(err, "compile %q", pattern)
	}
	return n, nil
}

// CompilePostfix builds an NFA from a postfix token stream produced by
// syntax.ToPostfix.
func CompilePostfix(postfix []syntax.Token) (*NFA, error) {
	c := &compiler{
		builder: NewBuilderWithCapacity(2 * len(postfix)),
		stack:   make([]fragment, 0, 8),
	}
	for _, t := range postfix {
		if err := c.apply(t); err != nil {
			return nil, err
		}
	}

	switch len(c.stack) {
	case 0:
		return nil, &BuildError{Message: "empty fragment stack", StateID: InvalidState}
	case 1:
	default:
		return nil, &syntax.Error{Code: syntax.ErrMissingOperator, Pos: -1}
	}

	f := c.stack[0]
	return c.builder.Build(f.entry, f.exit)
}

type compiler struct {
	builder *Builder
	stack   []fragment
}

func (c *compiler) push(f fragment) {
	c.stack = append(c.stack, f)
}

func (c *compiler) pop() fragment {
	f := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return f
}

// operands pops the n operands of t, failing with a syntax error when the
// stack is too short.
func (c *compiler) operands(t syntax.Token, n int) error {
	if len(c.stack) >= n {
		return nil
	}
	code := syntax.ErrMissingOperand
	if n == 1 {
		code = syntax.ErrMissingRepeatArgument
	}
	return &syntax.Error{Code: code, Expr: t.String(), Pos: -1}
}

func (c *compiler) apply(t syntax.Token) error {
	switch t.Kind {
	case syntax.Literal:
		c.push(c.literal(t.Cond))

	case syntax.StartAnchor:
		s := c.builder.AddStartAnchor()
		c.push(fragment{s, s})

	case syntax.EndAnchor:
		s := c.builder.AddEndAnchor()
		c.push(fragment{s, s})

	case syntax.Concat, syntax.Alt:
		if err := c.operands(t, 2); err != nil {
			return err
		}
		b := c.pop()
		a := c.pop()
		if t.Kind == syntax.Concat {
			c.push(c.concat(a, b))
		} else {
			c.push(c.alt(a, b))
		}

	case syntax.Star, syntax.Plus, syntax.Question, syntax.Repeat:
		if err := c.operands(t, 1); err != nil {
			return err
		}
		e := c.pop()
		switch t.Kind {
		case syntax.Star:
			c.push(c.star(e))
		case syntax.Plus:
			c.push(c.plus(e))
		case syntax.Question:
			c.push(c.question(e))
		default:
			c.push(c.repeat(e, t.Min, t.Max))
		}

	default:
		// Open and Close are consumed by ToPostfix
		return &BuildError{Message: "unexpected token " + t.String(), StateID: InvalidState}
	}
	return nil
}

func (c *compiler) literal(cond syntax.Condition) fragment {
	from := c.builder.AddState()
	to := c.builder.AddState()
	c.builder.AddConsume(from, to, cond)
	return fragment{from, to}
}

// empty returns a zero-width fragment on a single state.
func (c *compiler) empty() fragment {
	s := c.builder.AddState()
	return fragment{s, s}
}

func (c *compiler) clone(f fragment) fragment {
	entry, exit := c.builder.Clone(f.entry, f.exit)
	return fragment{entry, exit}
}

func (c *compiler) concat(a, b fragment) fragment {
	c.builder.AddEpsilon(a.exit, b.entry)
	return fragment{a.entry, b.exit}
}

func (c *compiler) alt(a, b fragment) fragment {
	from := c.builder.AddState()
	to := c.builder.AddState()
	c.builder.AddEpsilon(from, a.entry)
	c.builder.AddEpsilon(from, b.entry)
	c.builder.AddEpsilon(a.exit, to)
	c.builder.AddEpsilon(b.exit, to)
	return fragment{from, to}
}

func (c *compiler) star(e fragment) fragment {
	from := c.builder.AddState()
	to := c.builder.AddState()
	c.builder.AddEpsilon(from, e.entry)
	c.builder.AddEpsilon(from, to)
	c.builder.AddEpsilon(e.exit, e.entry)
	c.builder.AddEpsilon(e.exit, to)
	return fragment{from, to}
}

// plus is e followed by a star over a clone of e.
func (c *compiler) plus(e fragment) fragment {
	loop := c.star(c.clone(e))
	return c.concat(e, loop)
}

func (c *compiler) question(e fragment) fragment {
	from := c.builder.AddState()
	to := c.builder.AddState()
	c.builder.AddEpsilon(from, e.entry)
	c.builder.AddEpsilon(from, to)
	c.builder.AddEpsilon(e.exit, to)
	return fragment{from, to}
}

// repeat builds e{lo,hi}: lo mandatory clones, then either hi-lo optional
// clones in sequence or, when unbounded, a star over one more clone.
// e itself is only a template and ends up unreachable.
func (c *compiler) repeat(e fragment, lo, hi int) fragment {
	required := c.exact(e, lo)
	if hi == syntax.Unbounded {
		return c.concat(required, c.star(c.clone(e)))
	}
	return c.concat(required, c.optional(e, hi-lo))
}

func (c *compiler) exact(e fragment, times int) fragment {
	if times == 0 {
		return c.empty()
	}
	acc := c.clone(e)
	for i := 1; i < times; i++ {
		acc = c.concat(acc, c.clone(e))
	}
	return acc
}

func (c *compiler) optional(e fragment, times int) fragment {
	if times == 0 {
		return c.empty()
	}
	acc := c.question(c.clone(e))
	for i := 1; i < times; i++ {
		acc = c.concat(acc, c.question(c.clone(e)))
	}
	return acc
}
