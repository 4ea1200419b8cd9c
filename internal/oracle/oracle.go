// Package oracle implements a naive O(n^2) DBSCAN over Euclidean distance,
// used as a correctness reference in tests and as the baseline run of the
// validator tool: it never canonicalizes
// the way the grid core does, but it agrees with the grid core's label
// partition on datasets where L1 and L2 distance produce the same
// neighborhoods (axis-aligned integer grids at small eps).
//
// Unlike the reference implementation this is grounded on, the border
// -assignment rule here does not depend on visitation order: a point's
// label is decided once, after every point's core/noise status is known,
// by scanning its neighbors against the final partition rather than by
// upgrading a "-2" placeholder the moment some other point's expansion
// happens to visit it first.
package oracle

import (
	"github.com/gridcluster/dbscan"
)

// Cluster runs naive DBSCAN over points with Euclidean distance. eps is the
// L2 radius; minSamples is the minimum inclusive neighborhood size for a
// point to be core, matching the grid core's semantics.
func Cluster(points []dbscan.Point, eps float64, minSamples int) []int32 {
	n := len(points)
	labels := make([]int32, n)
	for i := range labels {
		labels[i] = -1
	}
	if n == 0 {
		return labels
	}

	neighbors := make([][]int, n)
	isCore := make([]bool, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if squaredDistance(points[i], points[j]) <= eps*eps {
				neighbors[i] = append(neighbors[i], j)
			}
		}
		if len(neighbors[i]) >= minSamples {
			isCore[i] = true
		}
	}

	var nextLabel int32
	queue := make([]int, 0, n)
	for seed := 0; seed < n; seed++ {
		if !isCore[seed] || labels[seed] != -1 {
			continue
		}

		label := nextLabel
		nextLabel++
		labels[seed] = label
		queue = queue[:0]
		queue = append(queue, seed)

		for len(queue) > 0 {
			current := queue[len(queue)-1]
			queue = queue[:len(queue)-1]

			for _, neighbor := range neighbors[current] {
				if labels[neighbor] != -1 {
					continue
				}
				labels[neighbor] = label
				if isCore[neighbor] {
					queue = append(queue, neighbor)
				}
			}
		}
	}

	// Border assignment is order-independent: every non-core point re-picks
	// the smallest label among its core neighbors from the now-final
	// partition, overwriting whatever it was tentatively assigned above.
	for i := 0; i < n; i++ {
		if isCore[i] {
			continue
		}
		best := int32(-1)
		for _, neighbor := range neighbors[i] {
			if !isCore[neighbor] {
				continue
			}
			if best == -1 || labels[neighbor] < best {
				best = labels[neighbor]
			}
		}
		labels[i] = best
	}

	return labels
}

// CountClusters returns the number of distinct non-negative labels in
// labels. Sentinel noise (-1) is never counted, matching the grid core's
// convention and correcting the reference variant that counted raw roots
// including sentinels.
func CountClusters(labels []int32) int {
	seen := map[int32]struct{}{}
	for _, label := range labels {
		if label >= 0 {
			seen[label] = struct{}{}
		}
	}
	return len(seen)
}

func squaredDistance(a, b dbscan.Point) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	return dx*dx + dy*dy
}
