package ipp

import "math"

// scalingFactor derives the constant S that makes the projection score
// equal 0.5 at distance halfLife in the reference species:
//
//	S = -halfLife / (refGenomeSize * ln(0.5)) = halfLife / (refGenomeSize * ln 2)
//
// It is computed once per search (from the reference species' genome
// size) and held constant across every hop; only the per-hop genome size
// varies in projectionScore below.
func scalingFactor(halfLife uint32, refGenomeSize uint64) float64 {
	return -1.0 * float64(halfLife) / (float64(refGenomeSize) * math.Log(0.5))
}

// projectionScore returns the per-hop score for a location loc lying
// between leftBound and rightBound (inclusive-exclusive, per the anchor
// selector's invariant), given the current hop's genome size and the
// search-wide scaling factor. The score is exp(-d / (genomeSize *
// scalingFactor)) where d is the distance to the nearer bound; it is
// exactly 1.0 only when d is 0. When loc lies on an alignment block,
// callers do not call this function and use a score of 1.0 directly.
func projectionScore(loc, leftBound, rightBound uint32, genomeSize uint64, scaling float64) float64 {
	d := minU32(loc-leftBound, rightBound-loc)
	return math.Exp(-1.0 * float64(d) / (float64(genomeSize) * scaling))
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
