package automaton

import (
	"fmt"
	"sort"
)

// Automaton is the read-only view shared by NFA and DFA. States and symbols are dense
// indices; names are only used at the boundary.
type Automaton interface {
	NumStates() int
	StateName(state int) string
	StateIndex(name string) (int, bool)
	Alphabet() []string
	Start() int
	IsAccept(state int) bool
}

var (
	_ Automaton = &NFA{}
	_ Automaton = &DFA{}
)

// Transition is one (source, symbol, target) triple, the form in which automatons cross the
// package boundary.
type Transition struct {
	Source string `yaml:"source"`
	Symbol string `yaml:"symbol"`
	Target string `yaml:"target"`
}

// String renders the transition as "source,symbol,target".
func (t Transition) String() string {
	return t.Source + "," + t.Symbol + "," + t.Target
}

// universe holds the state and symbol names of an automaton together with their reverse
// indices.
type universe struct {
	states   []string
	index    map[string]int
	alphabet []string
	symbols  map[string]int
}

func newUniverse(states, alphabet []string) (universe, error) {
	u := universe{
		states:   make([]string, 0, len(states)),
		index:    make(map[string]int, len(states)),
		alphabet: make([]string, 0, len(alphabet)),
		symbols:  make(map[string]int, len(alphabet)),
	}
	for _, name := range states {
		if name == "" {
			return u, fmt.Errorf("%w: empty state name", ErrMalformedAutomaton)
		}
		if _, ok := u.index[name]; ok {
			return u, fmt.Errorf("%w: %q", ErrDuplicateStateName, name)
		}
		u.index[name] = len(u.states)
		u.states = append(u.states, name)
	}
	for _, sym := range alphabet {
		if sym == "" {
			return u, fmt.Errorf("%w: empty symbol", ErrMalformedAutomaton)
		}
		if _, ok := u.symbols[sym]; ok {
			return u, fmt.Errorf("%w: symbol %q declared twice", ErrMalformedAutomaton, sym)
		}
		u.symbols[sym] = len(u.alphabet)
		u.alphabet = append(u.alphabet, sym)
	}
	return u, nil
}

// NumStates How many states this automaton has.
func (u *universe) NumStates() int {
	return len(u.states)
}

// StateName Returns the name of the given state.
func (u *universe) StateName(state int) string {
	return u.states[state]
}

// StateIndex Returns the index of the named state.
func (u *universe) StateIndex(name string) (int, bool) {
	i, ok := u.index[name]
	return i, ok
}

// Alphabet Returns a copy of the alphabet in declaration order.
func (u *universe) Alphabet() []string {
	return append([]string(nil), u.alphabet...)
}

// NumSymbols How many symbols the alphabet has.
func (u *universe) NumSymbols() int {
	return len(u.alphabet)
}

// Symbol Returns the symbol with the given index.
func (u *universe) Symbol(sym int) string {
	return u.alphabet[sym]
}

// SymbolIndex Returns the index of the given symbol, or ErrUndefinedSymbol.
func (u *universe) SymbolIndex(sym string) (int, error) {
	i, ok := u.symbols[sym]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUndefinedSymbol, sym)
	}
	return i, nil
}

// sortedSymbols returns symbol indices ordered alphabetically by symbol name.
func (u *universe) sortedSymbols() []int {
	order := make([]int, len(u.alphabet))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return u.alphabet[order[i]] < u.alphabet[order[j]]
	})
	return order
}
