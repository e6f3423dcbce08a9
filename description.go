package automaton

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Description is the raw, unvalidated form of an NFA as a user writes it down.
type Description struct {
	Version     int      `yaml:"version"`
	States      []string `yaml:"states"`
	Alphabet    []string `yaml:"alphabet"`
	Transitions []string `yaml:"transitions"`
	Epsilon     []string `yaml:"epsilon,omitempty"`
	Start       string   `yaml:"start"`
	Accept      []string `yaml:"accept"`
}

func LoadDescription(path string) (*Description, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDescription(b)
}

func ParseDescription(b []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(b, &desc); err != nil {
		return nil, err
	}

	if desc.Version != 1 {
		return nil, fmt.Errorf("unsupported automaton description version: %d", desc.Version)
	}

	return &desc, nil
}

// NFA validates the description and builds the automaton. Duplicate state names and
// unparsable transitions are rejected before any construction begins.
func (d *Description) NFA() (*NFA, error) {
	seen := make(map[string]struct{}, len(d.States))
	for _, name := range d.States {
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStateName, name)
		}
		seen[name] = struct{}{}
	}

	transitions := make([]Transition, 0, len(d.Transitions))
	for _, s := range d.Transitions {
		t, err := ParseTransition(s)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, t)
	}

	b := NewNFABuilder().
		AddState(d.States...).
		AddSymbol(d.Alphabet...).
		SetAccept(d.Accept...)
	if d.Start != "" {
		b.SetStart(d.Start)
	}
	for _, t := range transitions {
		b.AddTransition(t.Source, t.Symbol, t.Target)
	}
	for _, s := range d.Epsilon {
		src, dst, err := ParseEpsilon(s)
		if err != nil {
			return nil, err
		}
		b.AddEpsilon(src, dst)
	}
	return b.Build()
}
