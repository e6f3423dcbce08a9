package automaton

import (
	"fmt"
	"maps"
	"slices"

	u "github.com/araddon/gou"
	"github.com/bits-and-blooms/bitset"
)

// DefaultStateLimit is the default maximum number of DFA states Determinize will create.
const DefaultStateLimit = 10000

type determinizeOptions struct {
	total      bool
	stateLimit int
}

type DeterminizeOption func(*determinizeOptions)

// WithTotal makes Determinize route every missing transition to a single dead state.
func WithTotal(total bool) DeterminizeOption {
	return func(o *determinizeOptions) {
		o.total = total
	}
}

// WithStateLimit bounds the number of DFA states; a non-positive limit disables the check.
func WithStateLimit(limit int) DeterminizeOption {
	return func(o *determinizeOptions) {
		o.stateLimit = limit
	}
}

// Determinize Determinizes the given NFA with the powerset construction. Only subsets
// reachable from the start state become DFA states. Symbols are explored in alphabetical
// order, so the same NFA always yields the same state numbering.
// Worst case complexity: exponential in number of states.
//
// Returns ErrTooComplex if more than the configured state limit would be created.
func Determinize(n *NFA, options ...DeterminizeOption) (*DFA, error) {
	opts := &determinizeOptions{stateLimit: DefaultStateLimit}
	for _, fn := range options {
		fn(opts)
	}

	numSymbols := n.NumSymbols()
	order := n.sortedSymbols()
	c := NewCanonicalizer(n)

	initial := NewStateSet(n.NumStates())
	initial.Add(n.Start())
	n.closure(initial)
	start, _ := c.Canonicalize(initial)

	worklist := []int{start}
	table := grow(make([]int, 0, numSymbols), numSymbols, -1)
	next := NewStateSet(n.NumStates())

	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]
		current := c.subsets[id]

		for _, sym := range order {
			next.Clear()
			for _, s := range current.GetArray() {
				row := n.delta[s]
				if sym >= len(row) {
					return nil, fmt.Errorf("%w: symbol index %d in state %q", ErrUndefinedSymbol, sym, n.StateName(s))
				}
				if targets := row[sym]; targets != nil {
					next.Union(targets)
				}
			}
			n.closure(next)

			if next.Size() == 0 && !opts.total {
				continue
			}

			dest, isNew := c.Canonicalize(next)
			if isNew {
				if opts.stateLimit > 0 && c.Len() > opts.stateLimit {
					return nil, fmt.Errorf("%w: more than %d states", ErrTooComplex, opts.stateLimit)
				}
				worklist = append(worklist, dest)
				table = grow(table, c.Len()*numSymbols, -1)
			}
			table[id*numSymbols+sym] = dest
		}
	}

	d := &DFA{
		universe: universe{
			states:   slices.Clone(c.names),
			index:    maps.Clone(c.byName),
			alphabet: n.alphabet,
			symbols:  n.symbols,
		},
		table:  table,
		start:  start,
		accept: bitset.New(uint(c.Len())),
		dead:   c.DeadState(),
		origin: c,
	}
	for id := range c.subsets {
		if c.IsAccept(id) {
			d.accept.Set(uint(id))
		}
	}

	u.Debugf("determinized %d NFA states into %d DFA states (total=%v)", n.NumStates(), c.Len(), opts.total)
	return d, nil
}

// Totalize Returns a DFA in which every (state, symbol) pair has a destination. Missing
// entries go to one added non-accepting dead state that loops to itself on every symbol. A
// DFA that is already total is returned as is.
func Totalize(d *DFA) (*DFA, error) {
	if d.IsTotal() {
		return d, nil
	}

	name := DeadStateName
	for i := 1; ; i++ {
		if _, taken := d.index[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s#%d", DeadStateName, i)
	}

	states := append(append(make([]string, 0, len(d.states)+1), d.states...), name)
	uni, err := newUniverse(states, d.alphabet)
	if err != nil {
		return nil, err
	}

	dead := len(d.states)
	numSymbols := len(d.alphabet)
	table := grow(append(make([]int, 0, len(d.table)+numSymbols), d.table...), len(d.table)+numSymbols, dead)
	for i, dest := range table {
		if dest == -1 {
			table[i] = dead
		}
	}

	u.Debugf("totalized DFA with dead state %q", name)
	return &DFA{
		universe: uni,
		table:    table,
		start:    d.start,
		accept:   d.accept.Clone(),
		dead:     dead,
		origin:   d.origin,
	}, nil
}

// Reachable Returns the states reachable from the start state.
func Reachable(d *DFA) *bitset.BitSet {
	seen := bitset.New(uint(d.NumStates()))
	workList := []int{d.Start()}
	seen.Set(uint(d.Start()))

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		for sym := 0; sym < d.NumSymbols(); sym++ {
			dest := d.Step(state, sym)
			if dest != -1 && !seen.Test(uint(dest)) {
				seen.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return seen
}

// IsEmpty Returns true if the given DFA accepts no strings.
func IsEmpty(d *DFA) bool {
	if d.IsAccept(d.Start()) {
		return false
	}
	return Reachable(d).IntersectionCardinality(d.accept) == 0
}
