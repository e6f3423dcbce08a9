package automaton

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// DFA is an immutable deterministic finite automaton. It may be partial: a missing
// (state, symbol) entry means the input is rejected.
type DFA struct {
	universe

	// table[state*NumSymbols()+symbol] is the target state, or -1.
	table []int

	start  int
	accept *bitset.BitSet

	// dead is the index of the synthetic dead state, or -1.
	dead int

	// origin is the canonicalizer whose subsets the states denote; nil for hand-built DFAs.
	origin *Canonicalizer
}

// NewDFA validates and builds a DFA from its boundary description. Repeating a
// (state, symbol) entry is allowed only when it names the same target.
func NewDFA(states, alphabet []string, transitions []Transition, start string, accept []string) (*DFA, error) {
	u, err := newUniverse(states, alphabet)
	if err != nil {
		return nil, err
	}

	d := &DFA{
		universe: u,
		table:    grow(make([]int, 0, len(u.states)*len(u.alphabet)), len(u.states)*len(u.alphabet), -1),
		accept:   bitset.New(uint(len(u.states))),
		dead:     -1,
	}

	var errs []error
	malformed := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrMalformedAutomaton}, args...)...))
	}

	if s, ok := u.index[start]; !ok {
		malformed("start state %q is not declared", start)
	} else {
		d.start = s
	}

	for _, name := range accept {
		s, ok := u.index[name]
		if !ok {
			malformed("accept state %q is not declared", name)
			continue
		}
		d.accept.Set(uint(s))
	}

	for _, t := range transitions {
		src, srcOK := u.index[t.Source]
		dst, dstOK := u.index[t.Target]
		sym, symOK := u.symbols[t.Symbol]
		if !srcOK {
			malformed("transition source %q is not declared", t.Source)
		}
		if !dstOK {
			malformed("transition target %q is not declared", t.Target)
		}
		if !symOK {
			malformed("transition symbol %q is not in the alphabet", t.Symbol)
		}
		if !srcOK || !dstOK || !symOK {
			continue
		}
		slot := src*len(u.alphabet) + sym
		if prev := d.table[slot]; prev != -1 && prev != dst {
			malformed("(%q, %q) leads to both %q and %q", t.Source, t.Symbol, u.states[prev], t.Target)
			continue
		}
		d.table[slot] = dst
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return d, nil
}

// Start Returns the initial state.
func (d *DFA) Start() int {
	return d.start
}

// IsAccept Returns true if this state is an accept state.
func (d *DFA) IsAccept(state int) bool {
	return d.accept.Test(uint(state))
}

// Step Performs lookup in transitions. Returns the destination state, or -1 if there is no
// outgoing transition for symbol.
func (d *DFA) Step(state, symbol int) int {
	return d.table[state*len(d.alphabet)+symbol]
}

// IsTotal Returns true if every (state, symbol) pair has a destination.
func (d *DFA) IsTotal() bool {
	for _, dest := range d.table {
		if dest == -1 {
			return false
		}
	}
	return true
}

// DeadState Returns the synthetic dead state, or -1 if this DFA has none.
func (d *DFA) DeadState() int {
	return d.dead
}

// NumTransitions How many defined (state, symbol) entries this DFA has.
func (d *DFA) NumTransitions() int {
	count := 0
	for _, dest := range d.table {
		if dest != -1 {
			count++
		}
	}
	return count
}

// Transitions Returns every defined entry as a triple, ordered by state, then by symbol in
// alphabetical order.
func (d *DFA) Transitions() []Transition {
	order := d.sortedSymbols()
	result := make([]Transition, 0, len(d.table))
	for s := range d.states {
		for _, sym := range order {
			dest := d.Step(s, sym)
			if dest == -1 {
				continue
			}
			result = append(result, Transition{
				Source: d.states[s],
				Symbol: d.alphabet[sym],
				Target: d.states[dest],
			})
		}
	}
	return result
}

// AcceptStates Returns the names of the accept states in state order.
func (d *DFA) AcceptStates() []string {
	result := make([]string, 0, d.accept.Count())
	for s, ok := d.accept.NextSet(0); ok && int(s) < len(d.states); s, ok = d.accept.NextSet(s + 1) {
		result = append(result, d.states[s])
	}
	return result
}

// Canonicalizer Returns the registry that produced this DFA, or nil if it was built by hand.
// The DFA keeps its own copy of the state names, so registering further subsets does not
// change it.
func (d *DFA) Canonicalizer() *Canonicalizer {
	return d.origin
}

// Subset Returns the names of the NFA states the given DFA state stands for. The dead state
// stands for the empty set.
func (d *DFA) Subset(state int) ([]string, error) {
	if state == d.dead {
		return []string{}, nil
	}
	if d.origin == nil {
		return nil, fmt.Errorf("%w: state %q has no recorded subset", ErrNotFound, d.StateName(state))
	}
	return d.origin.Members(d.StateName(state))
}
