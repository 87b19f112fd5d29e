package ipp

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// snapshotData is the gob-encodable mirror of Store: gob requires
// exported fields, which Store intentionally does not have (its state is
// read-only to everyone outside this package once loaded).
type snapshotData struct {
	Chroms   []string
	ChromIdx map[string]ChromID
	Pwalns   PwalnStore
	Sizes    GenomeSizes
	HalfLife uint32
}

// SaveSnapshot writes a gob+zstd encoded copy of store to w, for a fast
// reload path that skips re-parsing the pwaln binary and .sizes files.
func SaveSnapshot(w io.Writer, store *Store) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("ipp: snapshot: %w", err)
	}
	defer zw.Close()

	data := snapshotData{
		Chroms:   store.chroms,
		ChromIdx: store.chromIdx,
		Pwalns:   store.pwalns,
		Sizes:    store.sizes,
		HalfLife: store.halfLife,
	}
	if err := gob.NewEncoder(zw).Encode(data); err != nil {
		return fmt.Errorf("ipp: snapshot: %w", err)
	}
	return zw.Close()
}

// LoadSnapshot reads a Store back from a stream written by SaveSnapshot.
func LoadSnapshot(r io.Reader) (*Store, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("ipp: snapshot: %w", err)
	}
	defer zr.Close()

	var data snapshotData
	if err := gob.NewDecoder(zr).Decode(&data); err != nil {
		return nil, fmt.Errorf("ipp: snapshot: %w", err)
	}

	return &Store{
		chroms:   data.Chroms,
		chromIdx: data.ChromIdx,
		pwalns:   data.Pwalns,
		sizes:    data.Sizes,
		halfLife: data.HalfLife,
	}, nil
}
