package automaton

import "errors"

var (
	// ErrMalformedAutomaton is returned when an automaton violates its structural invariants:
	// undeclared state or symbol references, a missing start state, conflicting DFA entries.
	ErrMalformedAutomaton = errors.New("malformed automaton")

	// ErrDuplicateStateName is returned when a state name is declared more than once.
	ErrDuplicateStateName = errors.New("duplicate state name")

	// ErrMalformedTransitionSpec is returned when a transition description does not parse
	// into (source, symbol, destination).
	ErrMalformedTransitionSpec = errors.New("malformed transition spec")

	// ErrNotFound is returned for a reverse lookup of a canonical name that was never registered.
	ErrNotFound = errors.New("not found")

	// ErrUndefinedSymbol is returned when a symbol outside the alphabet is requested.
	ErrUndefinedSymbol = errors.New("undefined symbol")

	// ErrTooComplex is returned when determinizing would exceed the configured state limit.
	ErrTooComplex = errors.New("too complex to determinize")
)
