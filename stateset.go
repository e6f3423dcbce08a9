package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// IntSet is a set of NFA state indices usable as a HashMap key.
type IntSet interface {
	Hashable

	GetArray() []int

	Size() int

	Contains(state int) bool
}

var _ IntSet = &StateSet{}

// StateSet is a mutable set of NFA states. The hash is cached and recomputed only after the
// contents change.
type StateSet struct {
	bits        *bitset.BitSet
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet(numStates int) *StateSet {
	return &StateSet{
		bits: bitset.New(uint(numStates)),
	}
}

// Hash is order independent: the size plus the sum of the mixed members.
func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = hashStates(s.GetArray())
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	return sameMembers(s, other)
}

// GetArray Returns the members in ascending order.
func (s *StateSet) GetArray() []int {
	values := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return values
}

func (s *StateSet) Size() int {
	return int(s.bits.Count())
}

func (s *StateSet) Contains(state int) bool {
	return s.bits.Test(uint(state))
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

// Add Adds a single state, reporting whether it was absent before.
func (s *StateSet) Add(state int) bool {
	if s.bits.Test(uint(state)) {
		return false
	}
	s.bits.Set(uint(state))
	s.keyChanged()
	return true
}

// Union Adds every state set in other.
func (s *StateSet) Union(other *bitset.BitSet) {
	s.bits.InPlaceUnion(other)
	s.keyChanged()
}

// Clear Empties the set so it can be reused.
func (s *StateSet) Clear() {
	s.bits.ClearAll()
	s.keyChanged()
}

// Freeze Returns an immutable snapshot of this set.
func (s *StateSet) Freeze() *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), s.Hash())
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet is an immutable, sorted set of NFA states with a precomputed hash.
type FrozenIntSet struct {
	values   []int
	bits     *bitset.BitSet
	hashCode uint64
}

// NewFrozenIntSet wraps values, which must be sorted and free of duplicates. The hashCode
// must be the one StateSet.Hash would compute for the same members.
func NewFrozenIntSet(values []int, hashCode uint64) *FrozenIntSet {
	bits := bitset.New(0)
	for _, v := range values {
		bits.Set(uint(v))
	}
	return &FrozenIntSet{values: values, bits: bits, hashCode: hashCode}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenIntSet) Equals(other Hashable) bool {
	if f == nil {
		switch ptr := other.(type) {
		case *FrozenIntSet:
			return ptr == nil
		case *StateSet:
			return ptr == nil
		default:
			return false
		}
	}
	return sameMembers(f, other)
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

func (f *FrozenIntSet) Contains(state int) bool {
	_, found := slices.BinarySearch(f.values, state)
	return found
}

// Intersects reports whether this set shares at least one member with other.
func (f *FrozenIntSet) Intersects(other *bitset.BitSet) bool {
	return f.bits.IntersectionCardinality(other) > 0
}

// FreezeStates Returns the frozen set of the given states in any order, duplicates allowed.
func FreezeStates(states ...int) *FrozenIntSet {
	values := slices.Clone(states)
	slices.Sort(values)
	values = slices.Compact(values)
	return NewFrozenIntSet(values, hashStates(values))
}

func hashStates(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h += uint64(mix(v))
	}
	return h
}

func sameMembers(a IntSet, other Hashable) bool {
	switch ptr := other.(type) {
	case *FrozenIntSet:
		if ptr == nil {
			return false
		}
	case *StateSet:
		if ptr == nil {
			return false
		}
	}
	b, ok := other.(IntSet)
	if !ok {
		return false
	}
	if a.Size() != b.Size() || a.Hash() != b.Hash() {
		return false
	}
	for _, v := range a.GetArray() {
		if !b.Contains(v) {
			return false
		}
	}
	return true
}
