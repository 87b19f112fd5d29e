package ipp

import (
	"fmt"
	"io"
	"sort"

	"github.com/awalterschulze/gographviz"
)

// WriteSpeciesGraph renders the species connectivity graph of store --
// one node per species, one directed edge per ordered pair with a direct
// pwaln -- as Graphviz DOT, for debugging which species the search can
// actually reach from a given reference. Uses the same gographviz.Graph
// construction pattern used for the assembly-graph exporter in
// constructdbg.go's GraphvizDBGArr, applied here to the species graph
// instead of the assembly graph.
func WriteSpeciesGraph(w io.Writer, store *Store) error {
	g := gographviz.NewGraph()
	g.SetName("G")
	g.SetDir(true)
	g.SetStrict(false)

	species := make(map[string]struct{})
	for sp1, inner := range store.pwalns {
		species[sp1] = struct{}{}
		for sp2 := range inner {
			species[sp2] = struct{}{}
		}
	}
	names := make([]string, 0, len(species))
	for sp := range species {
		names = append(names, sp)
	}
	sort.Strings(names)

	for _, sp := range names {
		if err := g.AddNode("G", quoteDOT(sp), nil); err != nil {
			return fmt.Errorf("ipp: graph: %w", err)
		}
	}

	for _, sp1 := range names {
		for sp2 := range store.pwalns[sp1] {
			attr := map[string]string{
				"label": fmt.Sprintf("%q", fmt.Sprintf("%d", numPwalnEntries(store.pwalns[sp1][sp2]))),
			}
			if err := g.AddEdge(quoteDOT(sp1), quoteDOT(sp2), true, attr); err != nil {
				return fmt.Errorf("ipp: graph: %w", err)
			}
		}
	}

	_, err := io.WriteString(w, g.String())
	return err
}

func numPwalnEntries(pwaln Pwaln) int {
	n := 0
	for _, entries := range pwaln {
		n += len(entries)
	}
	return n
}

func quoteDOT(s string) string {
	return fmt.Sprintf("%q", s)
}
