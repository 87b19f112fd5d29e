package ipp

import "testing"

const testQryChrom ChromID = 7

func collinearForward(refStart, step uint32, n int, qryStart uint32, chrom ChromID) []PwalnEntry {
	out := make([]PwalnEntry, n)
	for i := 0; i < n; i++ {
		rs := refStart + uint32(i)*step
		qs := qryStart + uint32(i)*step
		out[i] = PwalnEntry{RefStart: rs, RefEnd: rs + step - 1, QryStart: qs, QryEnd: qs + step - 1, QryChrom: chrom}
	}
	return out
}

func TestSelectAnchorsOverlapBlock(t *testing.T) {
	entries := []PwalnEntry{
		{RefStart: 0, RefEnd: 50, QryStart: 900, QryEnd: 950, QryChrom: testQryChrom},
		{RefStart: 50, RefEnd: 99, QryStart: 950, QryEnd: 999, QryChrom: testQryChrom},
		{RefStart: 100, RefEnd: 200, QryStart: 1000, QryEnd: 1100, QryChrom: testQryChrom}, // overlap
		{RefStart: 210, RefEnd: 260, QryStart: 1150, QryEnd: 1200, QryChrom: testQryChrom},
		{RefStart: 300, RefEnd: 350, QryStart: 1300, QryEnd: 1350, QryChrom: testQryChrom},
	}
	pwaln := Pwaln{0: entries}

	pair, ok := selectAnchors(pwaln, Coords{Chrom: 0, Loc: 150})
	if !ok {
		t.Fatalf("expected anchors to be found")
	}
	want := entries[2]
	if pair.Upstream != want || pair.Downstream != want {
		t.Fatalf("got %+v, want (%+v, %+v)", pair, want, want)
	}
}

func TestSelectAnchorsGapForward(t *testing.T) {
	entries := []PwalnEntry{
		{RefStart: 100, RefEnd: 200, QryStart: 1000, QryEnd: 1100, QryChrom: testQryChrom},
		{RefStart: 300, RefEnd: 400, QryStart: 1200, QryEnd: 1300, QryChrom: testQryChrom},
		{RefStart: 500, RefEnd: 600, QryStart: 1400, QryEnd: 1500, QryChrom: testQryChrom},
		{RefStart: 700, RefEnd: 800, QryStart: 1600, QryEnd: 1700, QryChrom: testQryChrom},
		{RefStart: 900, RefEnd: 1000, QryStart: 1800, QryEnd: 1900, QryChrom: testQryChrom},
	}
	pwaln := Pwaln{0: entries}

	pair, ok := selectAnchors(pwaln, Coords{Chrom: 0, Loc: 250})
	if !ok {
		t.Fatalf("expected anchors to be found")
	}
	if pair.Upstream != entries[0] {
		t.Fatalf("upstream = %+v, want %+v", pair.Upstream, entries[0])
	}
	if pair.Downstream != entries[1] {
		t.Fatalf("downstream = %+v, want %+v", pair.Downstream, entries[1])
	}
}

func TestSelectAnchorsRefEndIsExclusiveUpstream(t *testing.T) {
	// refLoc exactly at an anchor's ref_end: that anchor counts as
	// upstream, not overlap (ref_end is exclusive).
	entries := []PwalnEntry{
		{RefStart: 0, RefEnd: 100, QryStart: 1000, QryEnd: 1100, QryChrom: testQryChrom},
		{RefStart: 200, RefEnd: 300, QryStart: 1200, QryEnd: 1300, QryChrom: testQryChrom},
		{RefStart: 400, RefEnd: 500, QryStart: 1400, QryEnd: 1500, QryChrom: testQryChrom},
		{RefStart: 600, RefEnd: 700, QryStart: 1600, QryEnd: 1700, QryChrom: testQryChrom},
		{RefStart: 800, RefEnd: 900, QryStart: 1800, QryEnd: 1900, QryChrom: testQryChrom},
	}
	pwaln := Pwaln{0: entries}

	pair, ok := selectAnchors(pwaln, Coords{Chrom: 0, Loc: 100})
	if !ok {
		t.Fatalf("expected anchors to be found")
	}
	if pair.Upstream != entries[0] {
		t.Fatalf("expected entries[0] to be selected as upstream (ref_end exclusive), got %+v", pair.Upstream)
	}
}

func TestSelectAnchorsSingleAnchorSideReturnsNone(t *testing.T) {
	// Only upstream anchors exist, no downstream: must return false.
	entries := []PwalnEntry{
		{RefStart: 0, RefEnd: 50, QryStart: 900, QryEnd: 950, QryChrom: testQryChrom},
	}
	pwaln := Pwaln{0: entries}

	_, ok := selectAnchors(pwaln, Coords{Chrom: 0, Loc: 100})
	if ok {
		t.Fatalf("expected no anchors with only one-sided candidates")
	}
}

func TestSelectAnchorsMajorChromosomeFilter(t *testing.T) {
	const majorChrom ChromID = 1
	const minorChrom ChromID = 2

	var entries []PwalnEntry
	// 9 upstream entries to majorChrom, collinear.
	for i := 0; i < 9; i++ {
		rs := uint32(i * 10)
		qs := uint32(1000 + i*10)
		entries = append(entries, PwalnEntry{RefStart: rs, RefEnd: rs + 9, QryStart: qs, QryEnd: qs + 9, QryChrom: majorChrom})
	}
	// 2 upstream-adjacent entries to minorChrom, interleaved in ref order but outliers in qry.
	entries = append(entries,
		PwalnEntry{RefStart: 95, RefEnd: 98, QryStart: 5000, QryEnd: 5003, QryChrom: minorChrom},
		PwalnEntry{RefStart: 99, RefEnd: 100, QryStart: 5010, QryEnd: 5013, QryChrom: minorChrom},
	)
	// 9 downstream entries to majorChrom, collinear, refLoc falls before them.
	for i := 0; i < 9; i++ {
		rs := uint32(200 + i*10)
		qs := uint32(2000 + i*10)
		entries = append(entries, PwalnEntry{RefStart: rs, RefEnd: rs + 9, QryStart: qs, QryEnd: qs + 9, QryChrom: majorChrom})
	}

	// Sort by RefStart ascending as the store invariant requires.
	sorted := append([]PwalnEntry(nil), entries...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].RefStart > sorted[j].RefStart; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	pwaln := Pwaln{0: sorted}

	pair, ok := selectAnchors(pwaln, Coords{Chrom: 0, Loc: 150})
	if !ok {
		t.Fatalf("expected anchors to survive the major-chromosome filter")
	}
	if pair.Upstream.QryChrom != majorChrom || pair.Downstream.QryChrom != majorChrom {
		t.Fatalf("expected survivors restricted to major chrom %d, got upstream=%d downstream=%d",
			majorChrom, pair.Upstream.QryChrom, pair.Downstream.QryChrom)
	}
}

func TestSelectAnchorsReversedStrandInvariant(t *testing.T) {
	entries := []PwalnEntry{
		{RefStart: 100, RefEnd: 200, QryStart: 1100, QryEnd: 1000, QryChrom: testQryChrom},
		{RefStart: 300, RefEnd: 400, QryStart: 900, QryEnd: 800, QryChrom: testQryChrom},
		{RefStart: 500, RefEnd: 600, QryStart: 700, QryEnd: 600, QryChrom: testQryChrom},
		{RefStart: 700, RefEnd: 800, QryStart: 500, QryEnd: 400, QryChrom: testQryChrom},
		{RefStart: 900, RefEnd: 1000, QryStart: 300, QryEnd: 200, QryChrom: testQryChrom},
	}
	pwaln := Pwaln{0: entries}

	pair, ok := selectAnchors(pwaln, Coords{Chrom: 0, Loc: 250})
	if !ok {
		t.Fatalf("expected anchors to be found")
	}
	if !pair.Upstream.IsQryReversed() || !pair.Downstream.IsQryReversed() {
		t.Fatalf("expected both anchors on the reverse strand")
	}
	if pair.Upstream != entries[0] || pair.Downstream != entries[1] {
		t.Fatalf("got upstream=%+v downstream=%+v", pair.Upstream, pair.Downstream)
	}
}
