// Package dot draws automatons as Graphviz DOT documents.
package dot

import (
	"io"
	"strings"

	"github.com/emicklei/dot"

	automaton "github.com/geange/powerset"
)

// Render returns the DOT document for r. States are circles, accept states double circles,
// and an invisible node points at the start state. Transitions between the same pair of
// states share one edge whose label lists their symbols.
func Render(r *automaton.Result) string {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	nodes := make(map[string]dot.Node, len(r.States))
	for _, s := range r.States {
		shape := "circle"
		if r.IsAccept(s) {
			shape = "doublecircle"
		}
		nodes[s] = g.Node(s).Attr("shape", shape)
	}

	startID := "start"
	for {
		if _, taken := nodes[startID]; !taken {
			break
		}
		startID = "_" + startID
	}
	start := g.Node(startID).Attr("shape", "none").Attr("label", "")
	g.Edge(start, nodes[r.Start])

	type pair struct{ from, to string }
	labels := make(map[pair][]string)
	order := make([]pair, 0)
	for _, t := range r.Transitions {
		p := pair{t.Source, t.Target}
		if _, ok := labels[p]; !ok {
			order = append(order, p)
		}
		labels[p] = append(labels[p], t.Symbol)
	}
	for _, p := range order {
		g.Edge(nodes[p.from], nodes[p.to], strings.Join(labels[p], ","))
	}

	return g.String()
}

// Write writes the DOT document for r to w.
func Write(w io.Writer, r *automaton.Result) error {
	_, err := io.WriteString(w, Render(r))
	return err
}
