package automaton

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNFABuilder(t *testing.T) {
	t.Run("UnionsTargets", func(t *testing.T) {
		n, err := NewNFABuilder().
			AddState("q0", "q1", "q2").
			AddSymbol("a").
			AddTransition("q0", "a", "q1").
			AddTransition("q0", "a", "q2").
			AddTransition("q0", "a", "q1").
			SetStart("q0").
			SetAccept("q2").
			Build()
		require.NoError(t, err)

		assert.Equal(t, 3, n.NumStates())
		assert.Equal(t, 0, n.Start())
		assert.True(t, n.IsAccept(2))
		assert.False(t, n.IsAccept(0))
		assert.Equal(t, uint(2), n.Targets(0, 0).Count())
		assert.Nil(t, n.Targets(1, 0))
		assert.Equal(t, []Transition{
			{Source: "q0", Symbol: "a", Target: "q1"},
			{Source: "q0", Symbol: "a", Target: "q2"},
		}, n.Transitions())
		assert.False(t, n.HasEpsilon())
	})

	t.Run("Epsilon", func(t *testing.T) {
		n, err := NewNFABuilder().
			AddState("q0", "q1").
			AddEpsilon("q0", "q1").
			SetStart("q0").
			Build()
		require.NoError(t, err)
		assert.True(t, n.HasEpsilon())
		assert.Equal(t, [][2]string{{"q0", "q1"}}, n.Epsilons())
	})

	tests := []struct {
		name    string
		builder *NFABuilder
		want    error
	}{
		{
			name:    "no start",
			builder: NewNFABuilder().AddState("q0"),
			want:    ErrMalformedAutomaton,
		},
		{
			name:    "undeclared start",
			builder: NewNFABuilder().AddState("q0").SetStart("q9"),
			want:    ErrMalformedAutomaton,
		},
		{
			name:    "undeclared accept",
			builder: NewNFABuilder().AddState("q0").SetStart("q0").SetAccept("q9"),
			want:    ErrMalformedAutomaton,
		},
		{
			name: "undeclared target",
			builder: NewNFABuilder().AddState("q0").AddSymbol("a").SetStart("q0").
				AddTransition("q0", "a", "q9"),
			want: ErrMalformedAutomaton,
		},
		{
			name: "undeclared symbol",
			builder: NewNFABuilder().AddState("q0").AddSymbol("a").SetStart("q0").
				AddTransition("q0", "b", "q0"),
			want: ErrMalformedAutomaton,
		},
		{
			name:    "undeclared epsilon source",
			builder: NewNFABuilder().AddState("q0").SetStart("q0").AddEpsilon("q9", "q0"),
			want:    ErrMalformedAutomaton,
		},
		{
			name:    "duplicate symbol",
			builder: NewNFABuilder().AddState("q0").AddSymbol("a", "a").SetStart("q0"),
			want:    ErrMalformedAutomaton,
		},
		{
			name:    "empty state name",
			builder: NewNFABuilder().AddState("q0", "").SetStart("q0"),
			want:    ErrMalformedAutomaton,
		},
		{
			name:    "empty symbol",
			builder: NewNFABuilder().AddState("q0").AddSymbol("").SetStart("q0"),
			want:    ErrMalformedAutomaton,
		},
		{
			name:    "duplicate state",
			builder: NewNFABuilder().AddState("q0", "q0").SetStart("q0"),
			want:    ErrDuplicateStateName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.builder.Build()
			assert.Nil(t, n)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	t.Run("ReportsEveryProblem", func(t *testing.T) {
		_, err := NewNFABuilder().
			AddState("q0").
			AddSymbol("a").
			SetStart("q9").
			AddTransition("q0", "b", "q8").
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"q9"`)
		assert.Contains(t, err.Error(), `"q8"`)
		assert.Contains(t, err.Error(), `"b"`)
	})
}

func TestNFA_Accepts(t *testing.T) {
	n, err := NewNFABuilder().
		AddState("q0", "q1", "q2").
		AddSymbol("a", "b").
		AddTransition("q0", "a", "q0").
		AddTransition("q0", "b", "q0").
		AddTransition("q0", "a", "q1").
		AddTransition("q1", "b", "q2").
		SetStart("q0").
		SetAccept("q2").
		Build()
	require.NoError(t, err)

	tests := []struct {
		input []string
		want  bool
	}{
		{nil, false},
		{[]string{"a", "b"}, true},
		{[]string{"b", "a", "b"}, true},
		{[]string{"a", "b", "a"}, false},
		{[]string{"b"}, false},
	}
	for _, tt := range tests {
		got, err := n.Accepts(tt.input)
		assert.NoError(t, err)
		assert.Equalf(t, tt.want, got, "Accepts(%v)", tt.input)
	}

	_, err = n.Accepts([]string{"c"})
	assert.ErrorIs(t, err, ErrUndefinedSymbol)
}
