package dbscan

// classifyCore runs a scheduled pass over [0, n) marking isCore[i] = 1
// whenever point i's inclusive eps-neighborhood has at least minSamples
// members. Each goroutine's writes land in a disjoint slice of isCore, so
// no synchronization beyond the scheduler's join is needed.
func classifyCore(g *grid, xs []uint32, xStride int, ys []uint32, yStride int, n int, eps, minSamples uint32, numThreads, chunkSize int, tr *tracer) []uint8 {
	isCore := make([]uint8, n)

	coreChunk := chunkSize
	if coreChunk <= 0 {
		coreChunk = 512
	}

	stop := tr.start("core_detection")
	run(0, n, numThreads, coreChunk, func(begin, end int) {
		for idx := begin; idx < end; idx++ {
			var count uint32
			forEachNeighbor(g, xs, xStride, ys, yStride, int32(idx), eps, func(int32) bool {
				count++
				return count < minSamples
			})
			if count >= minSamples {
				isCore[idx] = 1
			}
		}
	})
	stop()

	return isCore
}
