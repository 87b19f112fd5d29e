package ipp

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is wrapped by LoadPwalns and LoadGenomeSizes when a
// required input file does not exist.
var ErrFileNotFound = errors.New("ipp: file not found")

// ErrUnexpectedEOF is wrapped by LoadPwalns when the pwaln binary ends
// before a fixed-width record it started reading is complete.
var ErrUnexpectedEOF = errors.New("ipp: unexpected EOF")

// ErrTrailingBytes is returned by LoadPwalns when bytes remain in the
// pwaln binary past the last record its header describes.
var ErrTrailingBytes = errors.New("ipp: trailing bytes after last expected record")

// MalformedBinaryError is returned by LoadPwalns when the pwaln binary is
// structurally invalid in a way that is not an unexpected EOF or trailing
// bytes -- e.g. a ref_start >= ref_end block, or qry_start == qry_end.
type MalformedBinaryError struct {
	Reason string
}

func (e *MalformedBinaryError) Error() string {
	return fmt.Sprintf("ipp: malformed pwaln binary: %s", e.Reason)
}

// MalformedSizesLineError is returned by LoadGenomeSizes when a line in a
// .sizes file has no tab separator or no base-10 integer after the tab.
type MalformedSizesLineError struct {
	Path string
	Line int
}

func (e *MalformedSizesLineError) Error() string {
	return fmt.Sprintf("ipp: %s:%d: malformed sizes line (no tab separator or bad length)", e.Path, e.Line)
}

// UnknownChromosomeError is returned by ChromIDFromName for a name that
// was never loaded into the chromosome dictionary.
type UnknownChromosomeError struct {
	Name string
}

func (e *UnknownChromosomeError) Error() string {
	return fmt.Sprintf("ipp: unknown chromosome: %q", e.Name)
}

// UnknownSpeciesError is returned by projectCoord (and so, wrapped in a
// WorkerFailureError, by ProjectCoords) when the reference species has no
// entry in the genome size table. A missing .sizes file is reported by
// LoadGenomeSizes as ErrFileNotFound instead. At the edge layer an
// intermediate species with no outgoing pwalns is expected and treated as
// "no edge", not an error.
type UnknownSpeciesError struct {
	Name string
}

func (e *UnknownSpeciesError) Error() string {
	return fmt.Sprintf("ipp: unknown species: %q", e.Name)
}

// InvariantViolationError signals a programmer error detected by an
// assertion -- e.g. anchors out of order after the collinearity filter.
// These are not meant to be recovered from by callers.
type InvariantViolationError struct {
	What string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("ipp: invariant violated: %s", e.What)
}

// WorkerFailureError wraps the first failure observed by the worker
// pool, surfaced once to the caller of ProjectCoords after all workers
// have drained.
type WorkerFailureError struct {
	RefCoord Coords
	Inner    error
}

func (e *WorkerFailureError) Error() string {
	return fmt.Sprintf("ipp: worker failed on %s: %v", e.RefCoord, e.Inner)
}

func (e *WorkerFailureError) Unwrap() error {
	return e.Inner
}
