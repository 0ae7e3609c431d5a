package syntax

// ToPostfix reorders a token stream into postfix form using the
// shunting-yard algorithm.
//
// Precedence is Alt < Concat < {Star, Plus, Question, Repeat}; every operator
// is left-associative. Parentheses only group and never appear in the output.
//
// Example:
//
//	tokens, _ := syntax.Tokenize("a|bc")
//	postfix, _ := syntax.ToPostfix(tokens)
//	// Literal('a') Literal('b') Literal('c') Concat Alt
func ToPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	stack := make([]Token, 0, 8)

	for _, t := range tokens {
		switch {
		case t.Kind == Open:
			stack = append(stack, t)

		case t.Kind == Close:
			for len(stack) > 0 && stack[len(stack)-1].Kind != Open {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &Error{Code: ErrUnexpectedParen, Expr: ")", Pos: -1}
			}
			stack = stack[:len(stack)-1]

		case t.Kind.IsOperator():
			p := t.Kind.precedence()
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == Open || top.Kind.precedence() < p {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)

		default:
			// Literal and anchors are operands
			output = append(output, t)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == Open || top.Kind == Close {
			return nil, &Error{Code: ErrMissingParen, Expr: "(", Pos: -1}
		}
		output = append(output, top)
	}

	return output, nil
}

// Parse tokenizes pattern and returns its postfix form. Errors without a
// precise position report the whole pattern as the offending expression.
func Parse(pattern string) ([]Token, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		if se, ok := err.(*Error); ok && se.Pos < 0 {
			se.Expr = pattern
		}
		return nil, err
	}
	return postfix, nil
}
