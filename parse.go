package automaton

import (
	"fmt"
	"strings"
)

// ParseList splits a comma separated list, trimming blanks and dropping empty items.
func ParseList(s string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ParseTransitions parses "src,sym,dst;src,sym,dst;...". Empty fragments between
// semicolons are skipped.
func ParseTransitions(s string) ([]Transition, error) {
	result := make([]Transition, 0)
	for _, fragment := range strings.Split(s, ";") {
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		t, err := ParseTransition(fragment)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}

// ParseTransition parses a single "src,sym,dst" triple.
func ParseTransition(s string) (Transition, error) {
	fields, err := splitFields(s, ",", 3)
	if err != nil {
		return Transition{}, err
	}
	return Transition{Source: fields[0], Symbol: fields[1], Target: fields[2]}, nil
}

// ParseArrowTransitions parses the transitions of one state written as "sym->dst, sym->dst".
func ParseArrowTransitions(source, s string) ([]Transition, error) {
	result := make([]Transition, 0)
	for _, fragment := range strings.Split(s, ",") {
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		fields, err := splitFields(fragment, "->", 2)
		if err != nil {
			return nil, err
		}
		result = append(result, Transition{Source: source, Symbol: fields[0], Target: fields[1]})
	}
	return result, nil
}

// ParseStateTransitions parses one state and its transitions written as "src: sym->dst, ...".
// A state without a colon has no outgoing transitions.
func ParseStateTransitions(s string) (source string, transitions []Transition, err error) {
	name, arrows, _ := strings.Cut(s, ":")
	if source = strings.TrimSpace(name); source == "" {
		return "", nil, fmt.Errorf("%w: %q has no state name", ErrMalformedTransitionSpec, s)
	}
	if transitions, err = ParseArrowTransitions(source, arrows); err != nil {
		return "", nil, err
	}
	return source, transitions, nil
}

// ParseEpsilon parses a single "src,dst" epsilon move.
func ParseEpsilon(s string) (source, target string, err error) {
	fields, err := splitFields(s, ",", 2)
	if err != nil {
		return "", "", err
	}
	return fields[0], fields[1], nil
}

func splitFields(s, sep string, want int) ([]string, error) {
	fields := strings.Split(s, sep)
	if len(fields) != want {
		return nil, fmt.Errorf("%w: %q has %d fields, want %d", ErrMalformedTransitionSpec, s, len(fields), want)
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
		if fields[i] == "" {
			return nil, fmt.Errorf("%w: %q has an empty field", ErrMalformedTransitionSpec, s)
		}
	}
	return fields, nil
}
