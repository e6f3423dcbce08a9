package automaton

// Run Returns true if the DFA accepts the given symbol sequence. Unknown symbols and missing
// transitions reject.
func Run(d *DFA, symbols ...string) bool {
	ok, err := d.Accepts(symbols)
	return err == nil && ok
}

// Accepts Follows the single deterministic path for symbols. A missing transition rejects;
// a symbol outside the alphabet is an ErrUndefinedSymbol.
func (d *DFA) Accepts(symbols []string) (bool, error) {
	state := d.Start()
	for _, sym := range symbols {
		i, err := d.SymbolIndex(sym)
		if err != nil {
			return false, err
		}
		state = d.Step(state, i)
		if state == -1 {
			return false, nil
		}
	}
	return d.IsAccept(state), nil
}

// Accepts Tracks every branch at once and accepts if any branch ends in an accept state.
func (n *NFA) Accepts(symbols []string) (bool, error) {
	current := NewStateSet(n.NumStates())
	current.Add(n.Start())
	n.closure(current)
	next := NewStateSet(n.NumStates())

	for _, sym := range symbols {
		i, err := n.SymbolIndex(sym)
		if err != nil {
			return false, err
		}
		next.Clear()
		for _, s := range current.GetArray() {
			if targets := n.delta[s][i]; targets != nil {
				next.Union(targets)
			}
		}
		n.closure(next)
		if next.Size() == 0 {
			return false, nil
		}
		current, next = next, current
	}
	return current.bits.IntersectionCardinality(n.accept) > 0, nil
}
