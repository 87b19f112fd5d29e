package ipp

// longestSubsequence finds the longest strictly increasing subsequence of
// seq, considering only elements for which filter returns true, ordered
// by the (qryStart, qryEnd) projections (callers pass negated projections
// to search for a decreasing subsequence on the reverse strand). Result
// preserves seq's original order. O(n log k) patience-sort, grounded on
// original_source/ipp.cpp's longestSubsequence.
func longestSubsequence(seq []PwalnEntry, filter func(PwalnEntry) bool, qryStart, qryEnd func(PwalnEntry) int) []PwalnEntry {
	if len(seq) == 0 {
		return nil
	}

	// m[k] is the index into seq of the smallest qryEnd terminating an
	// increasing subsequence of length k+1. prev[i] backtracks from seq[i]
	// to the element preceding it in its subsequence.
	m := make([]int, 0, len(seq))
	prev := make([]int, len(seq))

	for i, e := range seq {
		if !filter(e) {
			continue
		}

		if len(m) == 0 {
			m = append(m, i)
			continue
		}

		last := m[len(m)-1]
		if qryEnd(seq[last]) <= qryStart(e) {
			prev[i] = last
			m = append(m, i)
			continue
		}

		// Binary search for the smallest u with qryEnd(seq[m[u]]) > qryStart(e).
		u, v := 0, len(m)-1
		for u < v {
			mid := (u + v) / 2
			if qryEnd(seq[m[mid]]) <= qryStart(e) {
				u = mid + 1
			} else {
				v = mid
			}
		}

		if qryEnd(e) < qryEnd(seq[m[u]]) {
			if u > 0 {
				prev[i] = m[u-1]
			}
			m[u] = i
		}
	}

	if len(m) == 0 {
		return nil
	}

	res := make([]PwalnEntry, len(m))
	v := m[len(m)-1]
	for u := len(m); u > 0; u-- {
		res[u-1] = seq[v]
		v = prev[v]
	}
	return res
}

// longestCollinearSubsequence runs longestSubsequence twice over seq --
// once over forward-strand entries ordered by (+QryStart, +QryEnd), once
// over reverse-strand entries ordered by (-QryStart, -QryEnd) -- and keeps
// the longer result, forward on a tie. Grounded on original_source/
// ipp.cpp's Ipp::longestSubsequence (the public, strand-dispatching one).
func longestCollinearSubsequence(seq []PwalnEntry) []PwalnEntry {
	inc := longestSubsequence(seq,
		func(e PwalnEntry) bool { return !e.IsQryReversed() },
		func(e PwalnEntry) int { return int(e.QryStart) },
		func(e PwalnEntry) int { return int(e.QryEnd) },
	)
	dec := longestSubsequence(seq,
		func(e PwalnEntry) bool { return e.IsQryReversed() },
		func(e PwalnEntry) int { return -int(e.QryStart) },
		func(e PwalnEntry) int { return -int(e.QryEnd) },
	)
	if len(dec) > len(inc) {
		return dec
	}
	return inc
}
