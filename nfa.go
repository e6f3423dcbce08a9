package automaton

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// NFA is an immutable nondeterministic finite automaton, optionally with epsilon moves.
// Build one with NFABuilder.
type NFA struct {
	universe

	// delta[state][symbol] holds the target states, or nil when there is no transition.
	delta [][]*bitset.BitSet

	// eps[state] holds the epsilon targets of state, or nil.
	eps []*bitset.BitSet

	start  int
	accept *bitset.BitSet
}

// Start Returns the initial state.
func (n *NFA) Start() int {
	return n.start
}

// IsAccept Returns true if this state is an accept state.
func (n *NFA) IsAccept(state int) bool {
	return n.accept.Test(uint(state))
}

// Targets Returns the states reached from state on symbol, or nil. The result must not be
// modified.
func (n *NFA) Targets(state, symbol int) *bitset.BitSet {
	return n.delta[state][symbol]
}

// HasEpsilon Returns true if any state has an epsilon move.
func (n *NFA) HasEpsilon() bool {
	for _, e := range n.eps {
		if e != nil && e.Any() {
			return true
		}
	}
	return false
}

// Transitions Returns every symbol transition as a triple, ordered by source state, then
// symbol, then target.
func (n *NFA) Transitions() []Transition {
	result := make([]Transition, 0)
	for s, row := range n.delta {
		for sym, targets := range row {
			if targets == nil {
				continue
			}
			for t, ok := targets.NextSet(0); ok; t, ok = targets.NextSet(t + 1) {
				result = append(result, Transition{
					Source: n.states[s],
					Symbol: n.alphabet[sym],
					Target: n.states[t],
				})
			}
		}
	}
	return result
}

// Epsilons Returns every epsilon move as a (source, target) pair of names.
func (n *NFA) Epsilons() [][2]string {
	result := make([][2]string, 0)
	for s, targets := range n.eps {
		if targets == nil {
			continue
		}
		for t, ok := targets.NextSet(0); ok; t, ok = targets.NextSet(t + 1) {
			result = append(result, [2]string{n.states[s], n.states[t]})
		}
	}
	return result
}

// closure extends set in place with every state reachable through epsilon moves.
func (n *NFA) closure(set *StateSet) {
	if n.eps == nil {
		return
	}
	workList := set.GetArray()
	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]

		targets := n.eps[s]
		if targets == nil {
			continue
		}
		for t, ok := targets.NextSet(0); ok; t, ok = targets.NextSet(t + 1) {
			if set.Add(int(t)) {
				workList = append(workList, int(t))
			}
		}
	}
}

type move struct {
	source, symbol, target string
	epsilon                bool
}

// NFABuilder accumulates the parts of an NFA. Problems are collected as they are found and
// reported together by Build, so a builder can be fed straight from user input.
type NFABuilder struct {
	states   []string
	alphabet []string
	moves    []move
	start    *string
	accept   []string
}

func NewNFABuilder() *NFABuilder {
	return &NFABuilder{}
}

// AddState Declares a state. Declaring the same name twice makes Build fail.
func (b *NFABuilder) AddState(names ...string) *NFABuilder {
	b.states = append(b.states, names...)
	return b
}

// AddSymbol Declares alphabet symbols.
func (b *NFABuilder) AddSymbol(symbols ...string) *NFABuilder {
	b.alphabet = append(b.alphabet, symbols...)
	return b
}

// AddTransition Adds source -symbol-> target. Several targets for the same (source, symbol)
// are unioned.
func (b *NFABuilder) AddTransition(source, symbol, target string) *NFABuilder {
	b.moves = append(b.moves, move{source: source, symbol: symbol, target: target})
	return b
}

// AddEpsilon Adds an epsilon move from source to target.
func (b *NFABuilder) AddEpsilon(source, target string) *NFABuilder {
	b.moves = append(b.moves, move{source: source, target: target, epsilon: true})
	return b
}

func (b *NFABuilder) SetStart(name string) *NFABuilder {
	b.start = &name
	return b
}

func (b *NFABuilder) SetAccept(names ...string) *NFABuilder {
	b.accept = append(b.accept, names...)
	return b
}

// Build validates everything added so far and returns the NFA.
func (b *NFABuilder) Build() (*NFA, error) {
	u, err := newUniverse(b.states, b.alphabet)
	if err != nil {
		return nil, err
	}

	n := &NFA{
		universe: u,
		delta:    make([][]*bitset.BitSet, len(u.states)),
		accept:   bitset.New(uint(len(u.states))),
	}
	for s := range n.delta {
		n.delta[s] = make([]*bitset.BitSet, len(u.alphabet))
	}

	var errs []error
	malformed := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrMalformedAutomaton}, args...)...))
	}

	if b.start == nil {
		malformed("no start state")
	} else if s, ok := u.index[*b.start]; !ok {
		malformed("start state %q is not declared", *b.start)
	} else {
		n.start = s
	}

	for _, name := range b.accept {
		s, ok := u.index[name]
		if !ok {
			malformed("accept state %q is not declared", name)
			continue
		}
		n.accept.Set(uint(s))
	}

	for _, m := range b.moves {
		src, srcOK := u.index[m.source]
		dst, dstOK := u.index[m.target]
		if !srcOK {
			malformed("transition source %q is not declared", m.source)
		}
		if !dstOK {
			malformed("transition target %q is not declared", m.target)
		}
		if m.epsilon {
			if srcOK && dstOK {
				if n.eps == nil {
					n.eps = make([]*bitset.BitSet, len(u.states))
				}
				if n.eps[src] == nil {
					n.eps[src] = bitset.New(uint(len(u.states)))
				}
				n.eps[src].Set(uint(dst))
			}
			continue
		}
		sym, symOK := u.symbols[m.symbol]
		if !symOK {
			malformed("transition symbol %q is not in the alphabet", m.symbol)
		}
		if !srcOK || !dstOK || !symOK {
			continue
		}
		if n.delta[src][sym] == nil {
			n.delta[src][sym] = bitset.New(uint(len(u.states)))
		}
		n.delta[src][sym].Set(uint(dst))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return n, nil
}
