package dbscan

// expandSequential assigns tentative labels to core points with a plain
// depth-first stack walk in input order. Neighbors of the node being popped
// are materialized into a buffer before any label is touched, so the
// expansion is immaterial to re-entrancy of the neighbor enumerator's
// callback.
func expandSequential(g *grid, xs []uint32, xStride int, ys []uint32, yStride int, n int, eps uint32, isCore []uint8, labels []int32) {
	stack := make([]int32, 0, n)
	neighborBuf := make([]int32, 0, 64)

	var nextLabel int32
	for i := 0; i < n; i++ {
		if isCore[i] == 0 || labels[i] != -1 {
			continue
		}

		labels[i] = nextLabel
		stack = stack[:0]
		stack = append(stack, int32(i))

		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			neighborBuf = neighborBuf[:0]
			forEachNeighbor(g, xs, xStride, ys, yStride, current, eps, func(neighbor int32) bool {
				neighborBuf = append(neighborBuf, neighbor)
				return true
			})

			for _, neighbor := range neighborBuf {
				if labels[neighbor] == -1 {
					labels[neighbor] = nextLabel
					if isCore[neighbor] != 0 {
						stack = append(stack, neighbor)
					}
				}
			}
		}

		nextLabel++
	}
}
