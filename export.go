package automaton

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// EpsilonLabel labels epsilon moves when an NFA is exported.
const EpsilonLabel = "ε"

// Result is an automaton flattened into names and triples, ready to be drawn or written out.
type Result struct {
	States      []string     `yaml:"states"`
	Alphabet    []string     `yaml:"alphabet"`
	Transitions []Transition `yaml:"transitions"`
	Start       string       `yaml:"start"`
	Accept      []string     `yaml:"accept"`
}

// Export flattens a DFA. States keep their numbering order, transitions are ordered by
// source state and then by symbol.
func Export(d *DFA) *Result {
	return &Result{
		States:      append([]string(nil), d.states...),
		Alphabet:    d.Alphabet(),
		Transitions: d.Transitions(),
		Start:       d.StateName(d.Start()),
		Accept:      d.AcceptStates(),
	}
}

// ExportNFA flattens an NFA. Epsilon moves appear as transitions labelled EpsilonLabel.
func ExportNFA(n *NFA) *Result {
	transitions := n.Transitions()
	for _, e := range n.Epsilons() {
		transitions = append(transitions, Transition{Source: e[0], Symbol: EpsilonLabel, Target: e[1]})
	}
	accept := make([]string, 0)
	for s := range n.states {
		if n.IsAccept(s) {
			accept = append(accept, n.states[s])
		}
	}
	return &Result{
		States:      append([]string(nil), n.states...),
		Alphabet:    n.Alphabet(),
		Transitions: transitions,
		Start:       n.StateName(n.Start()),
		Accept:      accept,
	}
}

// IsAccept reports whether the named state is accepting.
func (r *Result) IsAccept(state string) bool {
	for _, s := range r.Accept {
		if s == state {
			return true
		}
	}
	return false
}

// String renders the result in the same comma separated syntax the CLI reads.
func (r *Result) String() string {
	triples := make([]string, len(r.Transitions))
	for i, t := range r.Transitions {
		triples[i] = t.String()
	}
	var sb strings.Builder
	sb.WriteString("states: " + strings.Join(r.States, ",") + "\n")
	sb.WriteString("alphabet: " + strings.Join(r.Alphabet, ",") + "\n")
	sb.WriteString("start: " + r.Start + "\n")
	sb.WriteString("accept: " + strings.Join(r.Accept, ",") + "\n")
	sb.WriteString("transitions: " + strings.Join(triples, ";") + "\n")
	return sb.String()
}

// YAML renders the result as a YAML document.
func (r *Result) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
