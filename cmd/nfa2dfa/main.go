// Command nfa2dfa converts an NFA into an equivalent DFA and writes it as a Graphviz DOT
// document, YAML or plain text. With -dfa it draws a hand-entered DFA instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	u "github.com/araddon/gou"

	automaton "github.com/geange/powerset"
	"github.com/geange/powerset/dot"
)

var errDisagree = errors.New("NFA and DFA disagree")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("nfa2dfa", flag.ContinueOnError)
	var (
		configFile  = fs.String("config", "", "automaton description file (yaml)")
		states      = fs.String("states", "", "comma separated NFA states")
		alphabet    = fs.String("alphabet", "", "comma separated alphabet")
		transitions = fs.String("transitions", "", "transitions as state,symbol,next_state;...")
		epsilon     = fs.String("epsilon", "", "epsilon moves as state,next_state;...")
		start       = fs.String("start", "", "start state")
		accept      = fs.String("accept", "", "comma separated accepting states")
		total       = fs.Bool("total", false, "route missing transitions to a dead state")
		maxStates   = fs.Int("max-states", automaton.DefaultStateLimit, "maximum number of DFA states, 0 for no limit")
		format      = fs.String("format", "dot", "output format [dot|yaml|text]")
		outFile     = fs.String("out", "", "output file, stdout if empty")
		drawNFA     = fs.Bool("nfa", false, "write the input NFA instead of the DFA")
		handDFA     = fs.Bool("dfa", false, "draw the DFA given by -state flags instead of converting an NFA")
		logLevel    = fs.String("loglevel", "warn", "log level [debug|info|warn|error]")

		stateSpecs []string
		check      []string
		checkSet   bool
	)
	fs.Func("state", "with -dfa, one state and its transitions as state: symbol->next_state, ... (repeatable)", func(s string) error {
		stateSpecs = append(stateSpecs, s)
		return nil
	})
	fs.Func("check", "space separated symbols to run on the automatons, empty for the empty string", func(s string) error {
		check, checkSet = strings.Fields(s), true
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return err
	}

	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	if *handDFA {
		if *drawNFA {
			return errors.New("-nfa and -dfa cannot be combined")
		}
		dfa, err := parseDFA(stateSpecs, *states, *alphabet, *start, *accept)
		if err != nil {
			return err
		}
		if *total {
			if dfa, err = automaton.Totalize(dfa); err != nil {
				return err
			}
		}
		if checkSet {
			ok, err := dfa.Accepts(check)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(stdout, "dfa: %s\n", verdict(ok))
			return err
		}
		return writeResult(stdout, *outFile, *format, automaton.Export(dfa))
	}

	var desc *automaton.Description
	if *configFile != "" {
		var err error
		if desc, err = automaton.LoadDescription(*configFile); err != nil {
			return fmt.Errorf("could not load %s: %w", *configFile, err)
		}
	} else {
		desc = &automaton.Description{
			Version:     1,
			States:      automaton.ParseList(*states),
			Alphabet:    automaton.ParseList(*alphabet),
			Transitions: splitSpecs(*transitions),
			Epsilon:     splitSpecs(*epsilon),
			Start:       strings.TrimSpace(*start),
			Accept:      automaton.ParseList(*accept),
		}
	}

	nfa, err := desc.NFA()
	if err != nil {
		return err
	}
	dfa, err := automaton.Determinize(nfa,
		automaton.WithTotal(*total),
		automaton.WithStateLimit(*maxStates))
	if err != nil {
		return err
	}
	u.Infof("converted %d NFA states into %d DFA states", nfa.NumStates(), dfa.NumStates())

	if checkSet {
		return runCheck(stdout, nfa, dfa, check)
	}

	result := automaton.Export(dfa)
	if *drawNFA {
		result = automaton.ExportNFA(nfa)
	}
	return writeResult(stdout, *outFile, *format, result)
}

// parseDFA builds a DFA from per-state specs. States are declared in the order of their specs,
// followed by any extra names in states. An empty alphabet is taken from the transitions in
// order of first use.
func parseDFA(specs []string, states, alphabet, start, accept string) (*automaton.DFA, error) {
	var (
		names       []string
		transitions []automaton.Transition
	)
	for _, spec := range specs {
		source, ts, err := automaton.ParseStateTransitions(spec)
		if err != nil {
			return nil, err
		}
		names = append(names, source)
		transitions = append(transitions, ts...)
	}

	declared := make(map[string]bool, len(names))
	for _, name := range names {
		declared[name] = true
	}
	for _, name := range automaton.ParseList(states) {
		if !declared[name] {
			declared[name] = true
			names = append(names, name)
		}
	}

	symbols := automaton.ParseList(alphabet)
	if len(symbols) == 0 {
		seen := make(map[string]bool)
		for _, t := range transitions {
			if !seen[t.Symbol] {
				seen[t.Symbol] = true
				symbols = append(symbols, t.Symbol)
			}
		}
	}

	return automaton.NewDFA(names, symbols, transitions, strings.TrimSpace(start), automaton.ParseList(accept))
}

// writeResult renders result to the named file, or to stdout if path is empty.
func writeResult(stdout io.Writer, path, format string, result *automaton.Result) (err error) {
	if path == "" {
		return render(stdout, format, result)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render(f, format, result)
}

func render(w io.Writer, format string, result *automaton.Result) error {
	switch format {
	case "dot":
		return dot.Write(w, result)
	case "yaml":
		b, err := result.YAML()
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "text":
		_, err := io.WriteString(w, result.String())
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// splitSpecs splits semicolon separated specs, leaving each one for the description to parse.
func splitSpecs(s string) []string {
	specs := make([]string, 0)
	for _, spec := range strings.Split(s, ";") {
		if spec = strings.TrimSpace(spec); spec != "" {
			specs = append(specs, spec)
		}
	}
	return specs
}

func runCheck(w io.Writer, nfa *automaton.NFA, dfa *automaton.DFA, symbols []string) error {
	nfaOK, err := nfa.Accepts(symbols)
	if err != nil {
		return err
	}
	dfaOK, err := dfa.Accepts(symbols)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "nfa: %s\ndfa: %s\n", verdict(nfaOK), verdict(dfaOK))
	if nfaOK != dfaOK {
		return fmt.Errorf("%w on %q", errDisagree, strings.Join(symbols, " "))
	}
	return nil
}

func verdict(accepted bool) string {
	if accepted {
		return "accept"
	}
	return "reject"
}
