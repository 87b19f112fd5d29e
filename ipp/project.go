package ipp

// edgeProjection is the result of interpolating one ref->qry hop: the
// per-hop score, the projected coordinate in the qry species, and the
// anchor pair the interpolation was derived from.
type edgeProjection struct {
	Score      float64
	NextCoords Coords
	Anchors    [2]PwalnEntry
}

// projectEdge interpolates refCoords from refSpecies to qrySpecies across
// one pwaln. It returns (nil, nil) whenever no projection exists for this
// edge -- missing pwaln, no surviving anchors, or (in the gap case) a
// refSpecies absent from sizes -- since an intermediate species legitimately
// lacking outgoing data is not an error. It returns a non-nil error only
// for a genuine invariant violation.
func projectEdge(store PwalnStore, sizes GenomeSizes, refSpecies, qrySpecies string, refCoords Coords, scaling float64) (*edgeProjection, error) {
	inner, ok := store[refSpecies]
	if !ok {
		return nil, nil
	}
	pwaln, ok := inner[qrySpecies]
	if !ok {
		return nil, nil
	}

	anchors, ok := selectAnchors(pwaln, refCoords)
	if !ok {
		return nil, nil
	}

	refLoc := refCoords.Loc
	isReversed := anchors.Upstream.IsQryReversed()

	// Under reversed strand, the "smaller" qry coordinate of the upstream
	// ref-anchor is downstream.QryEnd, not upstream.QryStart.
	var qryUpStart, qryUpEnd uint32
	if !isReversed {
		qryUpStart, qryUpEnd = anchors.Upstream.QryStart, anchors.Upstream.QryEnd
	} else {
		qryUpStart, qryUpEnd = anchors.Downstream.QryEnd, anchors.Downstream.QryStart
	}
	if qryUpStart >= qryUpEnd {
		return nil, &InvariantViolationError{What: "qry_up_start >= qry_up_end"}
	}

	var refLeft, refRight, qryLeft, qryRight uint32
	var score float64

	if anchors.Upstream == anchors.Downstream {
		refLeft, refRight = anchors.Upstream.RefStart, anchors.Upstream.RefEnd
		qryLeft, qryRight = qryUpStart, qryUpEnd
		score = 1.0
	} else {
		var qryDownStart, qryDownEnd uint32
		if !isReversed {
			qryDownStart, qryDownEnd = anchors.Downstream.QryStart, anchors.Downstream.QryEnd
		} else {
			qryDownStart, qryDownEnd = anchors.Upstream.QryEnd, anchors.Upstream.QryStart
		}
		if !(qryUpEnd <= qryDownStart && qryDownStart < qryDownEnd) {
			return nil, &InvariantViolationError{What: "qry anchors out of order across the gap"}
		}

		refLeft, refRight = anchors.Upstream.RefEnd, anchors.Downstream.RefStart
		qryLeft, qryRight = qryUpEnd, qryDownStart

		refGenomeSize, ok := sizes[refSpecies]
		if !ok {
			return nil, nil
		}
		score = projectionScore(refLoc, refLeft, refRight, refGenomeSize, scaling)
	}
	if !(refLeft <= refLoc && refLoc < refRight) {
		return nil, &InvariantViolationError{What: "refLoc outside [refLeft, refRight)"}
	}

	relLoc := float64(refLoc-refLeft) / float64(refRight-refLeft)
	qryLoc := qryLeft + uint32(relLoc*float64(qryRight-qryLeft))

	return &edgeProjection{
		Score:      score,
		NextCoords: Coords{Chrom: anchors.Upstream.QryChrom, Loc: qryLoc},
		Anchors:    [2]PwalnEntry{anchors.Upstream, anchors.Downstream},
	}, nil
}
