package canvasflow

import "math"

// resolveCurrent returns the index of the item whose center is nearest the
// viewport center. Ties go to the lowest index. Returns 0 for an empty list.
func resolveCurrent(items []item, g viewGeometry) int {
	current := 0
	best := math.Inf(1)
	for i := range items {
		d := math.Abs(g.centerX - items[i].center(g.halfWidth))
		if d < best {
			best = d
			current = i
		}
	}
	return current
}

// assignDepth writes a depth rank to every item. Ranks are a permutation of
// 0..n-1: the current item gets n-1 and ranks decrease with index distance
// from it. At equal distance the left neighbour ranks above the right one.
func assignDepth(items []item, current int) {
	n := len(items)
	if n == 0 {
		return
	}
	rank := n - 1
	items[current].Depth = rank
	for d := 1; current-d >= 0 || current+d < n; d++ {
		if l := current - d; l >= 0 {
			rank--
			items[l].Depth = rank
		}
		if r := current + d; r < n {
			rank--
			items[r].Depth = rank
		}
	}
}
