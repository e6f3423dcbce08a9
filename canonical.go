package automaton

import (
	"fmt"
	"sort"
	"strings"

	u "github.com/araddon/gou"
)

// DeadStateName is the name of the shared dead state. It is also the canonical name of the
// empty subset.
const DeadStateName = "{}"

// Canonicalizer assigns every distinct subset of one NFA's states a dense DFA state id and an
// order independent name. A Canonicalizer is scoped to a single NFA: names are only unique
// within that NFA's state universe.
type Canonicalizer struct {
	nfa     *NFA
	ids     *HashMap[int]
	subsets []*FrozenIntSet
	names   []string
	byName  map[string]int
	dead    int
}

func NewCanonicalizer(n *NFA) *Canonicalizer {
	return &Canonicalizer{
		nfa:    n,
		ids:    NewHashMap[int](WithCapacity(n.NumStates())),
		byName: make(map[string]int),
		dead:   -1,
	}
}

// Canonicalize Returns the id of set, registering it on first sight. isNew reports whether
// this call registered it. The empty set always maps to the single dead state.
func (c *Canonicalizer) Canonicalize(set *StateSet) (id int, isNew bool) {
	if set.Size() == 0 {
		return c.Dead()
	}
	if id, ok := c.ids.Get(set); ok {
		return id, false
	}
	return c.register(set.Freeze()), true
}

// Dead Returns the id of the dead state, registering it the first time.
func (c *Canonicalizer) Dead() (id int, isNew bool) {
	if c.dead != -1 {
		return c.dead, false
	}
	c.dead = c.register(FreezeStates())
	u.Debugf("registered dead state %d", c.dead)
	return c.dead, true
}

func (c *Canonicalizer) register(frozen *FrozenIntSet) int {
	id := len(c.subsets)
	name := c.nameOf(frozen)
	c.ids.Set(frozen, id)
	c.subsets = append(c.subsets, frozen)
	c.names = append(c.names, name)
	c.byName[name] = id
	return id
}

// Len How many subsets have been registered.
func (c *Canonicalizer) Len() int {
	return len(c.subsets)
}

// DeadState Returns the id of the dead state, or -1 if none was registered.
func (c *Canonicalizer) DeadState() int {
	return c.dead
}

// Name Returns the canonical name of a registered id.
func (c *Canonicalizer) Name(id int) (string, error) {
	if id < 0 || id >= len(c.names) {
		return "", fmt.Errorf("%w: subset id %d", ErrNotFound, id)
	}
	return c.names[id], nil
}

// Subset Returns the registered set with the given id.
func (c *Canonicalizer) Subset(id int) (*FrozenIntSet, error) {
	if id < 0 || id >= len(c.subsets) {
		return nil, fmt.Errorf("%w: subset id %d", ErrNotFound, id)
	}
	return c.subsets[id], nil
}

// Lookup Returns the set registered under name.
func (c *Canonicalizer) Lookup(name string) (*FrozenIntSet, error) {
	id, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: canonical name %q", ErrNotFound, name)
	}
	return c.subsets[id], nil
}

// Members Returns the NFA state names of the set registered under name, sorted.
func (c *Canonicalizer) Members(name string) ([]string, error) {
	set, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	members := make([]string, 0, set.Size())
	for _, s := range set.GetArray() {
		members = append(members, c.nfa.StateName(s))
	}
	sort.Strings(members)
	return members, nil
}

// IsAccept reports whether the subset with the given id contains an NFA accept state.
func (c *Canonicalizer) IsAccept(id int) bool {
	return c.subsets[id].Intersects(c.nfa.accept)
}

func (c *Canonicalizer) nameOf(set *FrozenIntSet) string {
	members := make([]string, 0, set.Size())
	for _, s := range set.GetArray() {
		members = append(members, c.nfa.StateName(s))
	}
	return CanonicalName(members)
}

// CanonicalName Returns "{a,b,...}" for the given state names in any order. Backslash, comma
// and braces inside a name are escaped with a backslash, so distinct sets of non-empty names
// never share a name. Automatons reject empty state names, which would render like "{}".
func CanonicalName(states []string) string {
	escaped := make([]string, len(states))
	for i, s := range states {
		escaped[i] = nameEscaper.Replace(s)
	}
	sort.Strings(escaped)
	return "{" + strings.Join(escaped, ",") + "}"
}

var nameEscaper = strings.NewReplacer(`\`, `\\`, `,`, `\,`, `{`, `\{`, `}`, `\}`)
