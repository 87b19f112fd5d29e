package ipp

import "container/heap"

// pqEntry is one candidate in the best-first search: a cumulative score
// to reach species at coords. Scores multiply along a path (every edge
// weight is <=1), so the search is a max-heap on score rather than the
// usual min-heap on distance.
type pqEntry struct {
	score   float64
	species string
	coords  Coords
}

// priorityQueue orders pqEntry by (score desc, species asc, coords asc):
// a deterministic tie-break so two runs over the same input always
// explore candidates in the same order.
type priorityQueue []pqEntry

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score > pq[j].score
	}
	if pq[i].species != pq[j].species {
		return pq[i].species < pq[j].species
	}
	return pq[i].coords.Less(pq[j].coords)
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) { *pq = append(*pq, x.(pqEntry)) }

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]
	return e
}

// projectCoord runs the best-first search for one ref coordinate,
// reusing projectEdge as its edge oracle. Grounded on
// original_source/ipp.cpp's Ipp::projectCoord.
func projectCoord(store PwalnStore, sizes GenomeSizes, refSpecies, qrySpecies string, refCoords Coords, halfLife uint32) (CoordProjection, error) {
	refGenomeSize, ok := sizes[refSpecies]
	if !ok {
		return CoordProjection{}, &UnknownSpeciesError{Name: refSpecies}
	}
	scaling := scalingFactor(halfLife, refGenomeSize)

	cp := CoordProjection{MultiShortestPath: make(map[string]ShortestPathNode)}
	cp.MultiShortestPath[refSpecies] = ShortestPathNode{Score: 1.0, Coords: refCoords}

	pq := &priorityQueue{{score: 1.0, species: refSpecies, coords: refCoords}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(pqEntry)

		if best, ok := cp.MultiShortestPath[current.species]; ok && best.Score > current.score {
			continue // stale: current.species was already reached by a faster path
		}

		if current.species == qrySpecies {
			break
		}

		for nxtSpecies := range store[current.species] {
			if best, ok := cp.MultiShortestPath[nxtSpecies]; ok && current.score <= best.Score {
				continue // multiplying by a weight <=1 cannot improve on an existing faster path
			}

			proj, err := projectEdge(store, sizes, current.species, nxtSpecies, current.coords, scaling)
			if err != nil {
				return cp, err
			}
			if proj == nil {
				continue
			}

			if current.species == refSpecies && nxtSpecies == qrySpecies {
				cp.Direct = &DirectProjection{Score: proj.Score, Coords: proj.NextCoords, Anchors: proj.Anchors}
			}

			nextScore := current.score * proj.Score
			if best, ok := cp.MultiShortestPath[nxtSpecies]; ok && nextScore <= best.Score {
				continue
			}

			cp.MultiShortestPath[nxtSpecies] = ShortestPathNode{
				Score:       nextScore,
				Predecessor: current.species,
				Coords:      proj.NextCoords,
				Anchors:     proj.Anchors,
			}
			heap.Push(pq, pqEntry{score: nextScore, species: nxtSpecies, coords: proj.NextCoords})
		}
	}

	return cp, nil
}
