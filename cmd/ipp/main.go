// Command ipp is a thin CLI shim over the ipp engine. It wires flags to
// Store methods and prints results; it carries no projection logic of
// its own.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jwaldrip/odin/cli"

	"github.com/mikstapes/ipp/coordlist"
	"github.com/mikstapes/ipp/ipp"
)

var app = cli.New("1.0.0", "Interpolated Point Projection engine", func(c cli.Command) {})

func init() {
	app.DefineStringFlag("pwalns", "", "path to the binary pwaln file")
	app.DefineStringFlag("sizesDir", "", "directory of <species>.sizes files")
	app.DefineIntFlag("halfLife", 100000, "half-life distance in bp")

	app.DefineSubCommand("load", "load a pwaln store and print summary stats", cmdLoad)

	project := app.DefineSubCommand("project", "project one or more coordinates", cmdProject)
	{
		project.DefineStringFlag("ref", "", "reference species")
		project.DefineStringFlag("qry", "", "query species")
		project.DefineStringFlag("coord", "", "single coordinate as chrom:loc")
		project.DefineStringFlag("coordFile", "", "tab-separated file of name/chrom/loc triples")
		project.DefineIntFlag("cores", 1, "number of worker goroutines")
	}

	graph := app.DefineSubCommand("graph", "emit a Graphviz DOT of the species connectivity graph", cmdGraph)
	{
		graph.DefineStringFlag("out", "species.dot", "output DOT file")
	}
}

func main() {
	app.Start()
}

func loadStore(c cli.Command) *ipp.Store {
	root := c
	for root.Parent() != nil {
		root = root.Parent()
	}
	pwalnsPath := root.Flag("pwalns").Get().(string)
	sizesDir := root.Flag("sizesDir").Get().(string)
	halfLife := root.Flag("halfLife").Get().(int)
	if pwalnsPath == "" {
		log.Fatalf("[ipp] -pwalns is required")
	}

	store := ipp.NewStore()
	if err := store.LoadPwalns(pwalnsPath); err != nil {
		log.Fatalf("[ipp] load pwalns: %v", err)
	}
	if sizesDir != "" {
		if err := store.LoadGenomeSizes(sizesDir); err != nil {
			log.Fatalf("[ipp] load genome sizes: %v", err)
		}
	}
	if err := store.SetHalfLifeDistance(uint32(halfLife)); err != nil {
		log.Fatalf("[ipp] set half-life: %v", err)
	}
	return store
}

func cmdLoad(c cli.Command) {
	store := loadStore(c)
	stats := store.Stats()
	fmt.Printf("species=%d chroms=%d pairs=%d entries=%d\n",
		stats.NumSpecies, stats.NumChroms, stats.NumPwalnPairs, stats.NumPwalnEntries)
}

func cmdProject(c cli.Command) {
	store := loadStore(c)

	ref := c.Flag("ref").Get().(string)
	qry := c.Flag("qry").Get().(string)
	nCores := c.Flag("cores").Get().(int)
	if ref == "" || qry == "" {
		log.Fatalf("[ipp] -ref and -qry are required")
	}

	var named []coordlist.NamedCoord
	if single := c.Flag("coord").Get().(string); single != "" {
		chrom, loc, err := splitChromLoc(single)
		if err != nil {
			log.Fatalf("[ipp] %v", err)
		}
		named = []coordlist.NamedCoord{{Name: single, ChromName: chrom, Loc: loc}}
	} else if file := c.Flag("coordFile").Get().(string); file != "" {
		var err error
		named, err = coordlist.ReadCoords(file)
		if err != nil {
			log.Fatalf("[ipp] %v", err)
		}
	} else {
		log.Fatalf("[ipp] one of -coord or -coordFile is required")
	}

	refCoords := make([]ipp.Coords, len(named))
	byCoord := make(map[ipp.Coords]string, len(named))
	for i, n := range named {
		chromID, err := store.ChromIDFromName(n.ChromName)
		if err != nil {
			log.Fatalf("[ipp] %v", err)
		}
		coord := ipp.Coords{Chrom: chromID, Loc: n.Loc}
		refCoords[i] = coord
		byCoord[coord] = n.Name
	}

	err := store.ProjectCoords(ref, qry, refCoords, nCores, func(refCoord ipp.Coords, projection ipp.CoordProjection) {
		node, ok := projection.MultiShortestPath[qry]
		if !ok {
			fmt.Printf("%s\tNA\n", byCoord[refCoord])
			return
		}
		fmt.Printf("%s\t%s\t%.6f\t%v\n", byCoord[refCoord], node.Coords, node.Score, projection.Path(qry))
	})
	if err != nil {
		log.Fatalf("[ipp] %v", err)
	}
}

func cmdGraph(c cli.Command) {
	store := loadStore(c)
	out := c.Flag("out").Get().(string)

	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("[ipp] create %s: %v", out, err)
	}
	defer f.Close()

	if err := ipp.WriteSpeciesGraph(f, store); err != nil {
		log.Fatalf("[ipp] write graph: %v", err)
	}
}

func splitChromLoc(s string) (chrom string, loc uint32, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("coordinate %q must be chrom:loc", s)
	}
	n, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return parts[0], uint32(n), nil
}
