package dbscan

import "sort"

// canonicalizeTentative renumbers the tentative labels produced by the
// sequential or frontier expansion modes so that cluster ids form a dense
// prefix ordered by each component's minimum input index, then assigns
// every non-core point a border label. Any pre-existing label on a
// non-core point is ignored: sequential and frontier expansion may have
// written a tentative label into a border point in passing, but the only
// authoritative assignment for non-core points is the smallest-adjacent
// -canonical-label rule applied here.
func canonicalizeTentative(g *grid, xs []uint32, xStride int, ys []uint32, yStride int, n int, eps uint32, isCore []uint8, labels []int32) {
	componentMin := map[int32]int32{}
	for i := 0; i < n; i++ {
		if isCore[i] == 0 {
			continue
		}
		raw := labels[i]
		if existing, ok := componentMin[raw]; !ok || int32(i) < existing {
			componentMin[raw] = int32(i)
		}
	}

	rank := rankByMinIndex(componentMin)

	for i := 0; i < n; i++ {
		if isCore[i] != 0 {
			labels[i] = rank[labels[i]]
		} else {
			labels[i] = -1
		}
	}

	assignBorderLabels(g, xs, xStride, ys, yStride, n, eps, isCore, labels)
}

// canonicalizeUnionFind computes, per component root in uf, the minimum
// input index among its core members, ranks components by that minimum,
// writes canonical labels into every core point, and assigns border
// points.
func canonicalizeUnionFind(g *grid, xs []uint32, xStride int, ys []uint32, yStride int, n int, eps uint32, isCore []uint8, uf *concurrentUnionFind, labels []int32) {
	rootFor := make([]uint32, n)
	componentMin := map[int32]int32{}

	for i := 0; i < n; i++ {
		if isCore[i] == 0 {
			continue
		}
		root := uf.find(uint32(i))
		rootFor[i] = root
		key := int32(root)
		if existing, ok := componentMin[key]; !ok || int32(i) < existing {
			componentMin[key] = int32(i)
		}
	}

	rank := rankByMinIndex(componentMin)

	for i := 0; i < n; i++ {
		if isCore[i] != 0 {
			labels[i] = rank[int32(rootFor[i])]
		} else {
			labels[i] = -1
		}
	}

	assignBorderLabels(g, xs, xStride, ys, yStride, n, eps, isCore, labels)
}

// rankByMinIndex assigns dense ids 0, 1, ... to raw component keys in
// ascending order of their recorded minimum input index.
func rankByMinIndex(componentMin map[int32]int32) map[int32]int32 {
	type entry struct {
		rawID, minIndex int32
	}
	entries := make([]entry, 0, len(componentMin))
	for rawID, minIndex := range componentMin {
		entries = append(entries, entry{rawID, minIndex})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].minIndex < entries[j].minIndex })

	rank := make(map[int32]int32, len(entries))
	for i, e := range entries {
		rank[e.rawID] = int32(i)
	}
	return rank
}

// assignBorderLabels gives every non-core point the smallest canonical
// label among its adjacent core points, or leaves it at -1 (noise) if it
// has none. "Smallest" rather than "first" is required so that every
// expansion mode agrees on the label of a border point touched by more
// than one core cluster.
func assignBorderLabels(g *grid, xs []uint32, xStride int, ys []uint32, yStride int, n int, eps uint32, isCore []uint8, labels []int32) {
	for i := 0; i < n; i++ {
		if isCore[i] != 0 {
			continue
		}

		best := int32(-1)
		forEachNeighbor(g, xs, xStride, ys, yStride, int32(i), eps, func(neighbor int32) bool {
			if isCore[neighbor] == 0 {
				return true
			}
			candidate := labels[neighbor]
			if candidate != -1 && (best == -1 || candidate < best) {
				best = candidate
			}
			return true
		})
		labels[i] = best
	}
}
