// Package nfa compiles postfix token streams into Thompson NFAs and runs them.
//
// Construction follows Thompson's method extended with zero-width anchor
// states and bounded repetition by fragment cloning. States live in an arena
// and refer to each other by StateID, so loops need no reference cycles.
//
// Three simulations walk the automaton without backtracking:
//   - Matches: does the whole window match
//   - ForEachMatch: longest match per start position, possibly overlapping
//   - ForEachNonOverlappingMatch: leftmost, locally longest, non-overlapping
package nfa

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInternal signals a builder invariant violation, such as an empty
// fragment stack once the postfix stream is consumed.
var ErrInternal = errors.New("internal NFA invariant violation")

// BuildError represents an error during NFA construction via the Builder API
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}

// Unwrap makes errors.Is(err, ErrInternal) succeed.
func (e *BuildError) Unwrap() error {
	return ErrInternal
}
