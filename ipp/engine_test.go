package ipp

import (
	"path/filepath"
	"testing"
)

func TestStoreSetHalfLifeDistanceRejectsZero(t *testing.T) {
	s := NewStore()
	if err := s.SetHalfLifeDistance(0); err == nil {
		t.Fatalf("expected an error for half-life 0")
	}
}

func TestStoreChromNameRoundTrip(t *testing.T) {
	entries := []PwalnEntry{{RefStart: 100, RefEnd: 200, QryStart: 1000, QryEnd: 1100}}
	data := buildPwalnBinary([]string{"chr1", "chr2"}, entries)
	path := writeTempFile(t, data)

	s := NewStore()
	if err := s.LoadPwalns(path); err != nil {
		t.Fatalf("LoadPwalns: %v", err)
	}

	id, err := s.ChromIDFromName("chr2")
	if err != nil {
		t.Fatalf("ChromIDFromName: %v", err)
	}
	name, err := s.ChromName(id)
	if err != nil {
		t.Fatalf("ChromName: %v", err)
	}
	if name != "chr2" {
		t.Fatalf("name = %q, want chr2", name)
	}

	_, err = s.ChromIDFromName("no-such-chrom")
	if err == nil {
		t.Fatalf("expected an error for an unknown chromosome name")
	}
	if _, ok := err.(*UnknownChromosomeError); !ok {
		t.Fatalf("got error of type %T, want *UnknownChromosomeError", err)
	}
}

func TestStoreLoadGenomeSizesRequiresPwalnsFirst(t *testing.T) {
	s := NewStore()
	if err := s.LoadGenomeSizes(t.TempDir()); err == nil {
		t.Fatalf("expected an error when LoadGenomeSizes precedes LoadPwalns")
	}
}

func TestStoreProjectCoordsEndToEnd(t *testing.T) {
	entries := []PwalnEntry{
		{RefStart: 100, RefEnd: 200, QryStart: 1000, QryEnd: 1100, RefChrom: 0, QryChrom: 0},
		{RefStart: 300, RefEnd: 400, QryStart: 1200, QryEnd: 1300, RefChrom: 0, QryChrom: 0},
		{RefStart: 500, RefEnd: 600, QryStart: 1400, QryEnd: 1500, RefChrom: 0, QryChrom: 0},
		{RefStart: 700, RefEnd: 800, QryStart: 1600, QryEnd: 1700, RefChrom: 0, QryChrom: 0},
		{RefStart: 900, RefEnd: 1000, QryStart: 1800, QryEnd: 1900, RefChrom: 0, QryChrom: 0},
	}
	data := buildPwalnBinary([]string{"chr1"}, entries)
	path := writeTempFile(t, data)

	dir := filepath.Dir(path)
	writeSizesFile(t, dir, "A", "chr1\t1000000000\n")
	writeSizesFile(t, dir, "B", "chr1\t1000000000\n")

	s := NewStore()
	if err := s.LoadPwalns(path); err != nil {
		t.Fatalf("LoadPwalns: %v", err)
	}
	if err := s.LoadGenomeSizes(dir); err != nil {
		t.Fatalf("LoadGenomeSizes: %v", err)
	}
	if err := s.SetHalfLifeDistance(100000); err != nil {
		t.Fatalf("SetHalfLifeDistance: %v", err)
	}

	var results []CoordProjection
	err := s.ProjectCoords("A", "B", []Coords{{Chrom: 0, Loc: 250}}, 1, func(_ Coords, p CoordProjection) {
		results = append(results, p)
	})
	if err != nil {
		t.Fatalf("ProjectCoords: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	node, ok := results[0].MultiShortestPath["B"]
	if !ok {
		t.Fatalf("expected B to be reached")
	}
	if node.Coords.Loc != 1150 {
		t.Fatalf("qryLoc = %d, want 1150", node.Coords.Loc)
	}
}

func TestStoreProjectCoordsRequiresHalfLife(t *testing.T) {
	s := NewStore()
	entries := []PwalnEntry{{RefStart: 100, RefEnd: 200, QryStart: 1000, QryEnd: 1100}}
	data := buildPwalnBinary([]string{"chr1"}, entries)
	path := writeTempFile(t, data)
	if err := s.LoadPwalns(path); err != nil {
		t.Fatalf("LoadPwalns: %v", err)
	}

	err := s.ProjectCoords("A", "B", []Coords{{Loc: 1}}, 1, func(Coords, CoordProjection) {})
	if err == nil {
		t.Fatalf("expected an error when half-life was never set")
	}
}

func TestStoreStats(t *testing.T) {
	entries := []PwalnEntry{{RefStart: 100, RefEnd: 200, QryStart: 1000, QryEnd: 1100}}
	data := buildPwalnBinary([]string{"chr1", "chr2"}, entries)
	path := writeTempFile(t, data)

	s := NewStore()
	if err := s.LoadPwalns(path); err != nil {
		t.Fatalf("LoadPwalns: %v", err)
	}
	stats := s.Stats()
	if stats.NumChroms != 2 {
		t.Fatalf("NumChroms = %d, want 2", stats.NumChroms)
	}
	if stats.NumSpecies != 2 {
		t.Fatalf("NumSpecies = %d, want 2", stats.NumSpecies)
	}
	if stats.NumPwalnPairs != 1 {
		t.Fatalf("NumPwalnPairs = %d, want 1", stats.NumPwalnPairs)
	}
	if stats.NumPwalnEntries != 1 {
		t.Fatalf("NumPwalnEntries = %d, want 1", stats.NumPwalnEntries)
	}
}
