package dbscan

// expandUnionFind builds a lock-free disjoint-set over core points by
// uniting every core point with each of its core neighbors, in parallel.
// It stops at producing the component forest; ranking components by their
// minimum-input-index member, writing canonical labels, and assigning
// border points are done once, uniformly for every expansion mode, by
// canonicalize (see canonicalize.go); an earlier variant inlined that
// logic into this mode alone, which produced labels inconsistent with
// the other two modes and is deliberately not reproduced here.
func expandUnionFind(g *grid, xs []uint32, xStride int, ys []uint32, yStride int, n int, eps uint32, isCore []uint8, numThreads, chunkSize int) *concurrentUnionFind {
	uf := newConcurrentUnionFind(n, isCore)

	unionChunk := chunkSize
	if unionChunk <= 0 {
		unionChunk = 512
	}

	run(0, n, numThreads, unionChunk, func(begin, end int) {
		for idx := begin; idx < end; idx++ {
			if isCore[idx] == 0 {
				continue
			}

			forEachNeighbor(g, xs, xStride, ys, yStride, int32(idx), eps, func(neighbor int32) bool {
				if isCore[neighbor] != 0 {
					uf.unite(uint32(idx), uint32(neighbor))
				}
				return true
			})
		}
	})

	return uf
}
