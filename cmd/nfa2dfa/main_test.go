package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	automaton "github.com/geange/powerset"
)

var scenarioFlags = []string{
	"-states", "q0, q1",
	"-alphabet", "a,b",
	"-transitions", "q0,a,q0;q0,a,q1;q0,b,q0;q1,b,q1",
	"-start", "q0",
	"-accept", "q1",
	"-loglevel", "error",
}

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(append(scenarioFlags, "-format", "text"), &out))
	assert.Contains(t, out.String(), "states: {q0},{q0,q1}\n")
	assert.Contains(t, out.String(), "accept: {q0,q1}\n")
}

func TestRunTotalYAML(t *testing.T) {
	var out bytes.Buffer
	args := []string{
		"-states", "q0",
		"-alphabet", "a,b",
		"-transitions", "q0,a,q0",
		"-start", "q0",
		"-accept", "q0",
		"-total",
		"-format", "yaml",
		"-loglevel", "error",
	}
	require.NoError(t, run(args, &out))
	assert.Contains(t, out.String(), automaton.DeadStateName)
}

func TestRunDotToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dfa.dot")
	var out bytes.Buffer
	require.NoError(t, run(append(scenarioFlags, "-out", path), &out))
	assert.Empty(t, out.String())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(b)), "digraph"))
	assert.Contains(t, string(b), "doublecircle")
}

func TestRunDrawNFA(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(append(scenarioFlags, "-nfa", "-format", "text"), &out))
	assert.Contains(t, out.String(), "states: q0,q1\n")
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nfa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: 1
states: [q0, q1, q2]
alphabet: [a, b]
transitions: ["q0,a,q1", "q1,b,q2"]
epsilon: ["q0,q1"]
start: q0
accept: [q2]
`), 0o600))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", path, "-format", "text", "-loglevel", "error"}, &out))
	assert.Contains(t, out.String(), "start: {q0,q1}\n")
}

func TestRunCheck(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(append(scenarioFlags, "-check", "b a b"), &out))
	assert.Equal(t, "nfa: accept\ndfa: accept\n", out.String())

	out.Reset()
	require.NoError(t, run(append(scenarioFlags, "-check", "b b"), &out))
	assert.Equal(t, "nfa: reject\ndfa: reject\n", out.String())

	out.Reset()
	require.NoError(t, run(append(scenarioFlags, "-check", ""), &out))
	assert.Equal(t, "nfa: reject\ndfa: reject\n", out.String())

	out.Reset()
	err := run(append(scenarioFlags, "-check", "c"), &out)
	assert.ErrorIs(t, err, automaton.ErrUndefinedSymbol)
}

var handDFAFlags = []string{
	"-dfa",
	"-state", "q0: a->q1, b->q0",
	"-state", "q1: b->q1",
	"-states", "q1,q2",
	"-start", "q0",
	"-accept", "q1",
	"-loglevel", "error",
}

func TestRunHandDFA(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(append(handDFAFlags, "-format", "text"), &out))
		assert.Equal(t, "states: q0,q1,q2\n"+
			"alphabet: a,b\n"+
			"start: q0\n"+
			"accept: q1\n"+
			"transitions: q0,a,q1;q0,b,q0;q1,b,q1\n", out.String())
	})

	t.Run("DotToFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dfa.dot")
		var out bytes.Buffer
		require.NoError(t, run(append(handDFAFlags, "-out", path), &out))

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(string(b)), "digraph"))
		assert.Equal(t, 1, strings.Count(string(b), "doublecircle"))
	})

	t.Run("Total", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(append(handDFAFlags, "-total", "-format", "text"), &out))
		assert.Contains(t, out.String(), "states: q0,q1,q2,{}\n")
		assert.Contains(t, out.String(), "q1,a,{}")
	})

	t.Run("Check", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(append(handDFAFlags, "-check", "b a b"), &out))
		assert.Equal(t, "dfa: accept\n", out.String())

		out.Reset()
		require.NoError(t, run(append(handDFAFlags, "-check", ""), &out))
		assert.Equal(t, "dfa: reject\n", out.String())
	})

	t.Run("ExplicitAlphabet", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(append(handDFAFlags, "-alphabet", "b,a,c", "-format", "text"), &out))
		assert.Contains(t, out.String(), "alphabet: b,a,c\n")
	})
}

func TestRunHandDFAErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"undeclared target", []string{"-dfa", "-state", "q0: a->q9", "-start", "q0"}, automaton.ErrMalformedAutomaton},
		{"two targets", []string{"-dfa", "-state", "q0: a->q0, a->q1", "-state", "q1", "-start", "q0"}, automaton.ErrMalformedAutomaton},
		{"bad arrow", []string{"-dfa", "-state", "q0: a-q0", "-start", "q0"}, automaton.ErrMalformedTransitionSpec},
		{"duplicate state", []string{"-dfa", "-state", "q0", "-state", "q0", "-start", "q0"}, automaton.ErrDuplicateStateName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(append(tt.args, "-loglevel", "error"), &out)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("with nfa", func(t *testing.T) {
		var out bytes.Buffer
		err := run(append(handDFAFlags, "-nfa"), &out)
		assert.ErrorContains(t, err, "cannot be combined")
	})
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"duplicate state", []string{"-states", "q0,q0", "-start", "q0"}, automaton.ErrDuplicateStateName},
		{"bad transition", []string{"-states", "q0", "-alphabet", "a", "-transitions", "q0,a", "-start", "q0"}, automaton.ErrMalformedTransitionSpec},
		{"missing start", []string{"-states", "q0"}, automaton.ErrMalformedAutomaton},
		{"state limit", append(scenarioFlags, "-max-states", "1"), automaton.ErrTooComplex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(append(tt.args, "-loglevel", "error"), &out)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		var out bytes.Buffer
		err := run(append(scenarioFlags, "-format", "png"), &out)
		assert.ErrorContains(t, err, "unknown format")
	})

	t.Run("unwritable output", func(t *testing.T) {
		var out bytes.Buffer
		err := run(append(scenarioFlags, "-out", t.TempDir()), &out)
		assert.Error(t, err)
	})

	t.Run("missing config", func(t *testing.T) {
		var out bytes.Buffer
		err := run([]string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, &out)
		assert.Error(t, err)
	})
}
