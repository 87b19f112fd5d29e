package ipp

import "fmt"

// Store owns all state loaded by an engine: the chromosome dictionary,
// the pwaln store, the genome size table, and the process-wide
// half-life scalar. Once LoadPwalns, LoadGenomeSizes and
// SetHalfLifeDistance have run, every method is a pure read of this
// state; concurrent ProjectCoords calls never mutate it, so they need no
// locking against each other.
type Store struct {
	chroms   []string
	chromIdx map[string]ChromID
	pwalns   PwalnStore
	sizes    GenomeSizes
	halfLife uint32
}

// NewStore returns an empty, unloaded Store.
func NewStore() *Store {
	return &Store{}
}

// LoadPwalns populates the chromosome dictionary and the pwaln store from
// the binary file at path, replacing any previously loaded state.
// Loading is all-or-nothing: on error the previously loaded chromosome
// dictionary, pwaln store and genome size table are discarded, leaving
// the Store empty.
func (s *Store) LoadPwalns(path string) error {
	chroms, pwalns, err := parsePwalnFile(path)
	if err != nil {
		s.chroms = nil
		s.chromIdx = nil
		s.pwalns = nil
		s.sizes = nil
		return err
	}
	idx := make(map[string]ChromID, len(chroms))
	for i, name := range chroms {
		idx[name] = ChromID(i)
	}
	s.chroms = chroms
	s.chromIdx = idx
	s.pwalns = pwalns
	s.sizes = nil // stale relative to the new pwaln store; must be reloaded
	return nil
}

// LoadGenomeSizes populates the genome size table for every species that
// appears as a ref (outer) key of the pwaln store. Must be called after
// LoadPwalns.
func (s *Store) LoadGenomeSizes(dir string) error {
	if s.pwalns == nil {
		return fmt.Errorf("ipp: LoadGenomeSizes called before LoadPwalns")
	}
	sizes, err := LoadGenomeSizes(dir, s.pwalns)
	if err != nil {
		return err
	}
	s.sizes = sizes
	return nil
}

// SetHalfLifeDistance sets the global half-life distance used by every
// subsequent projection. It must precede any ProjectCoords call and must
// not be changed while one is in flight. Zero is rejected: it would make
// the scaling factor infinite.
func (s *Store) SetHalfLifeDistance(halfLife uint32) error {
	if halfLife == 0 {
		return fmt.Errorf("ipp: half-life distance must be > 0")
	}
	s.halfLife = halfLife
	return nil
}

// ChromIDFromName looks up a chromosome name in the dictionary.
func (s *Store) ChromIDFromName(name string) (ChromID, error) {
	id, ok := s.chromIdx[name]
	if !ok {
		return 0, &UnknownChromosomeError{Name: name}
	}
	return id, nil
}

// ChromName returns the name of the chromosome with the given id.
func (s *Store) ChromName(id ChromID) (string, error) {
	if int(id) >= len(s.chroms) {
		return "", &UnknownChromosomeError{Name: fmt.Sprintf("#%d", id)}
	}
	return s.chroms[id], nil
}

// ProjectCoords drives the worker pool over coords, projecting each
// from refSpecies to qrySpecies and invoking onJobDone once per
// successfully completed job. See OnJobDone for the callback ordering
// guarantee.
func (s *Store) ProjectCoords(refSpecies, qrySpecies string, coords []Coords, nCores int, onJobDone OnJobDone) error {
	if s.halfLife == 0 {
		return fmt.Errorf("ipp: half-life distance not set")
	}
	run := func(refCoord Coords) (CoordProjection, error) {
		return projectCoord(s.pwalns, s.sizes, refSpecies, qrySpecies, refCoord, s.halfLife)
	}
	return projectCoordsPool(coords, nCores, run, onJobDone)
}

// Stats summarizes a loaded Store: the number of known species, the
// total number of pwaln entries across every species pair and ref
// chromosome bucket, and the size of the chromosome dictionary.
type Stats struct {
	NumSpecies      int
	NumChroms       int
	NumPwalnPairs   int
	NumPwalnEntries int
}

// Stats computes a summary of the loaded store. Pure arithmetic over the
// pwaln store; cheap enough to call per CLI invocation.
func (s *Store) Stats() Stats {
	species := make(map[string]struct{})
	st := Stats{NumChroms: len(s.chroms)}
	for sp1, inner := range s.pwalns {
		species[sp1] = struct{}{}
		for sp2, pwaln := range inner {
			species[sp2] = struct{}{}
			st.NumPwalnPairs++
			for _, entries := range pwaln {
				st.NumPwalnEntries += len(entries)
			}
		}
	}
	st.NumSpecies = len(species)
	return st
}
