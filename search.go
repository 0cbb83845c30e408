package linebreak

import "math"

// insertAt inserts v into s at index i, shifting the tail right.
func insertAt(s []int, i, v int) []int {
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// removedNode records an active node that left the active list during the
// scan of a single candidate breakpoint, together with the adjustment
// ratio it had there. It is the raw material for the overfull fallback
// in the (rare) case every active node is eliminated.
type removedNode struct {
	idx int
	r   float64
}

// search runs the §4.8 active-list algorithm over items and returns the
// arena holding every breakpoint node considered, plus the arena index of
// the best node reaching the end of the paragraph. It never looks at
// anything but the Item stream, the precomputed prefix sums, and opts —
// the whole algorithm is pure numeric search over the lattice described in
// §3.3.
func search(items []Item, p *prefixSums, targetWidth float64, opts Options) (*nodeArena, int, error) {
	arena := newNodeArena()
	active := []int{arena.sentinel()}

	for b := 0; b < len(items); b++ {
		if !isLegalBreak(items, b) {
			continue
		}

		pb := penaltyAt(items, b)
		forced := isForcedBreak(items, b)
		bFlagged := flagged(items, b)

		var afterB int
		haveAfterB := false

		var removedHere []removedNode

		aIdx := 0
		for aIdx < len(active) {
			var Ac [4]int
			var Dc [4]float64
			var Rc [4]float64
			for c := range Ac {
				Ac[c] = -1
				Dc[c] = math.Inf(1)
			}
			D := math.Inf(1)
			blockLine := arena.get(active[aIdx]).line

			for {
				aNodeIdx := active[aIdx]
				aNode := arena.get(aNodeIdx)
				r := adjustmentRatio(items, p, aNode.after, b, targetWidth)

				if r < -1 || forced {
					removedHere = append(removedHere, removedNode{idx: aNodeIdx, r: r})
					active = append(active[:aIdx], active[aIdx+1:]...)
				} else {
					aIdx++
				}

				if r >= -1 && r < opts.PTolerance {
					c := classify(r)
					d := demerits(opts, r, pb, aNode.totdemerits, aNode.fitness, c, flagged(items, aNode.position), bFlagged)
					if d < Dc[c] {
						Ac[c] = aNodeIdx
						Dc[c] = d
						Rc[c] = r
						if d < D {
							D = d
						}
					}
				}

				if aIdx >= len(active) || arena.get(active[aIdx]).line > blockLine {
					break
				}
			}

			if !math.IsInf(D, 1) {
				if !haveAfterB {
					afterB = after(items, b)
					haveAfterB = true
				}
				for c := 0; c < 4; c++ {
					if Ac[c] == -1 {
						continue
					}
					parent := arena.get(Ac[c])
					newIdx := arena.add(node{
						position:    b,
						after:       afterB,
						line:        parent.line + 1,
						fitness:     fitness(c),
						totdemerits: Dc[c],
						adjratio:    Rc[c],
						previous:    Ac[c],
					})
					active = insertAt(active, aIdx, newIdx)
					aIdx++
				}
			}
		}

		if len(active) == 0 {
			if len(removedHere) == 0 {
				return nil, -1, newError(CodeNoSolution, "no active breakpoint survives item %d and none existed to fall back on", b)
			}
			if !haveAfterB {
				afterB = after(items, b)
			}
			active = overfullFallback(arena, removedHere, pb, bFlagged, afterB, b, items, opts)
		}
	}

	best, err := bestNode(arena, active)
	if err != nil {
		return nil, -1, err
	}
	return arena, best, nil
}

// overfullFallback implements §4.8 step 4: when every active node has been
// eliminated (the paragraph is locally too tight for any feasible break, or
// a forced break swept the whole active list), force a break anyway. Every
// node that was just removed is given the adjustment ratio it would have
// had if shrink were unlimited (r' = max(-1, r)), and the usual per-fitness-
// class minima become the new, sole, active set.
func overfullFallback(arena *nodeArena, removedHere []removedNode, pb float64, bFlagged bool, afterB, b int, items []Item, opts Options) []int {
	var Ac [4]int
	var Dc [4]float64
	var Rc [4]float64
	for c := range Ac {
		Ac[c] = -1
		Dc[c] = math.Inf(1)
	}

	for _, rn := range removedHere {
		aNode := arena.get(rn.idx)
		rPrime := rn.r
		if rPrime < -1 {
			rPrime = -1
		}
		c := classify(rPrime)
		d := demerits(opts, rPrime, pb, aNode.totdemerits, aNode.fitness, c, flagged(items, aNode.position), bFlagged)
		// <= rather than <: every removed node is a real candidate here, and
		// when a removed node's line falls short with no stretch at all
		// (r = +Inf, which the clamp above leaves as is) d is +Inf — a strict
		// < would leave Ac[c] at its sentinel -1 and
		// silently drop the only available fallback for that class.
		if d <= Dc[c] {
			Ac[c] = rn.idx
			Dc[c] = d
			Rc[c] = rPrime
		}
	}

	var active []int
	for c := 0; c < 4; c++ {
		if Ac[c] == -1 {
			continue
		}
		parent := arena.get(Ac[c])
		newIdx := arena.add(node{
			position:    b,
			after:       afterB,
			line:        parent.line + 1,
			fitness:     fitness(c),
			totdemerits: Dc[c],
			adjratio:    Rc[c],
			previous:    Ac[c],
		})
		active = append(active, newIdx)
	}
	return active
}

// bestNode picks the surviving active node with the lowest total demerits —
// the candidate the outer driver must have arranged to be the unique
// terminator (the final forced break of the paragraph).
func bestNode(arena *nodeArena, active []int) (int, error) {
	if len(active) == 0 {
		return -1, newError(CodeNoSolution, "active list empty at end of paragraph")
	}
	best := active[0]
	for _, idx := range active[1:] {
		if arena.get(idx).totdemerits < arena.get(best).totdemerits {
			best = idx
		}
	}
	return best, nil
}
