package automaton

import "strconv"

// Automata builds small, commonly needed NFAs over a given alphabet. States are named q0,
// q1, ... in creation order.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new NFA with the empty language.
func (*Automata) MakeEmpty(alphabet []string) (*NFA, error) {
	return NewNFABuilder().
		AddState("q0").
		AddSymbol(alphabet...).
		SetStart("q0").
		Build()
}

// MakeEmptyString
// Returns a new NFA that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabet []string) (*NFA, error) {
	return NewNFABuilder().
		AddState("q0").
		AddSymbol(alphabet...).
		SetStart("q0").
		SetAccept("q0").
		Build()
}

// MakeAnyString
// Returns a new NFA that accepts all strings over the alphabet.
func (*Automata) MakeAnyString(alphabet []string) (*NFA, error) {
	b := NewNFABuilder().
		AddState("q0").
		AddSymbol(alphabet...).
		SetStart("q0").
		SetAccept("q0")
	for _, sym := range alphabet {
		b.AddTransition("q0", sym, "q0")
	}
	return b.Build()
}

// MakeString
// Returns a new NFA that accepts exactly the given symbol sequence.
func (*Automata) MakeString(alphabet []string, symbols ...string) (*NFA, error) {
	b := NewNFABuilder().AddSymbol(alphabet...).SetStart("q0")
	b.AddState("q0")
	for i, sym := range symbols {
		from, to := "q"+strconv.Itoa(i), "q"+strconv.Itoa(i+1)
		b.AddState(to)
		b.AddTransition(from, sym, to)
	}
	return b.SetAccept("q" + strconv.Itoa(len(symbols))).Build()
}
