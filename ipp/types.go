// Package ipp implements the Interpolated Point Projection engine: it
// projects a genomic coordinate from a reference species to a query
// species by walking a graph of pairwise whole-genome alignments.
package ipp

import "fmt"

// ChromID indexes the global, species-agnostic chromosome name table.
// The same id space is shared across all species; presence of an id does
// not imply it applies to any particular species.
type ChromID uint16

// Coords is a position on some species' genome. Ordering is lexicographic
// on (Chrom, Loc), which is required by the search's priority-queue
// tie-break.
type Coords struct {
	Chrom ChromID
	Loc   uint32
}

// Less orders Coords lexicographically by (Chrom, Loc).
func (c Coords) Less(o Coords) bool {
	if c.Chrom != o.Chrom {
		return c.Chrom < o.Chrom
	}
	return c.Loc < o.Loc
}

func (c Coords) String() string {
	return fmt.Sprintf("%d:%d", c.Chrom, c.Loc)
}

// PwalnEntry is one ungapped alignment block between a ref and a qry
// species. RefChrom/QryChrom index the shared chromosome table.
type PwalnEntry struct {
	RefStart uint32
	RefEnd   uint32
	QryStart uint32
	QryEnd   uint32
	RefChrom ChromID
	QryChrom ChromID
}

// IsQryReversed reports whether the block aligns to the qry minus strand.
func (e PwalnEntry) IsQryReversed() bool {
	return e.QryStart > e.QryEnd
}

// pwalnEntrySize is the on-disk, packed size of one PwalnEntry: four
// uint32 fields plus two uint16 fields, 20 bytes total.
const pwalnEntrySize = 4*4 + 2*2

// Pwaln is one species pair's alignment set, bucketed by ref chromosome.
// Each bucket is sorted by (RefStart, RefEnd) ascending.
type Pwaln map[ChromID][]PwalnEntry

// PwalnStore is the full nested container: species -> species -> Pwaln.
// A missing inner map means no direct alignment exists for that ordered
// pair; a present (possibly empty) Pwaln means one does.
type PwalnStore map[string]map[string]Pwaln

// GenomeSizes maps a species name to its total base pairs.
type GenomeSizes map[string]uint64

// ShortestPathNode is one species' best-known entry in a projection's
// search tree: the cumulative score to reach it, the predecessor species
// that produced that score, the projected coordinate, and the anchor pair
// used for the incoming edge (empty for the source species).
type ShortestPathNode struct {
	Score       float64
	Predecessor string
	Coords      Coords
	Anchors     [2]PwalnEntry
}

// CoordProjection is the result of one projectCoord call: the full search
// tree (species -> best node) plus, if a direct ref->qry hop was ever
// evaluated during the search, that hop's result regardless of whether it
// ended up on the winning path.
type CoordProjection struct {
	MultiShortestPath map[string]ShortestPathNode
	Direct            *DirectProjection
}

// DirectProjection is the lone-hop ref->qry projection recorded by the
// search whenever it evaluates that edge directly, independent of the
// search outcome.
type DirectProjection struct {
	Score   float64
	Coords  Coords
	Anchors [2]PwalnEntry
}

// Path follows predecessors from species back to the reference species
// that seeded coordProjection, returning the path in ref-to-species order.
// Path panics if species is not present in the search tree; callers
// should check MultiShortestPath[species] first.
func (cp CoordProjection) Path(species string) []string {
	var rev []string
	for s := species; s != ""; {
		rev = append(rev, s)
		node, ok := cp.MultiShortestPath[s]
		if !ok {
			panic(fmt.Sprintf("ipp: species %q not in search tree", s))
		}
		s = node.Predecessor
	}
	path := make([]string, len(rev))
	for i, s := range rev {
		path[len(rev)-1-i] = s
	}
	return path
}
