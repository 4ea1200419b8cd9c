package dbscan

import "sync"

// expandFrontier assigns tentative labels with a parallel BFS. A single
// control goroutine walks seeds in input order; each discovered seed grows
// its component across goroutines in rounds, claiming labels with CAS so
// many workers can race to label the same neighbor without double-claiming
// it. Labels written here are not yet canonical - canonicalize overwrites
// every non-core point's label afterward regardless of what is recorded
// here.
func expandFrontier(g *grid, xs []uint32, xStride int, ys []uint32, yStride int, n int, eps uint32, isCore []uint8, labels []int32, numThreads, chunkSize int) {
	shared := make([]atomicInt32, n)
	for i := 0; i < n; i++ {
		shared[i].store(labels[i])
	}

	frontierChunk := chunkSize
	if frontierChunk <= 0 {
		frontierChunk = 64
	}

	var nextLabel int32
	frontier := make([]int32, 0, 256)

	for seed := 0; seed < n; seed++ {
		if isCore[seed] == 0 || shared[seed].load() != -1 {
			continue
		}

		label := nextLabel
		nextLabel++
		shared[seed].store(label)
		frontier = frontier[:0]
		frontier = append(frontier, int32(seed))

		for len(frontier) > 0 {
			var mu sync.Mutex
			nextFrontier := make([]int32, 0, len(frontier))

			run(0, len(frontier), numThreads, frontierChunk, func(begin, end int) {
				localNext := make([]int32, 0, 32)
				neighborBuf := make([]int32, 0, 64)

				for idx := begin; idx < end; idx++ {
					current := frontier[idx]

					neighborBuf = neighborBuf[:0]
					forEachNeighbor(g, xs, xStride, ys, yStride, current, eps, func(neighbor int32) bool {
						neighborBuf = append(neighborBuf, neighbor)
						return true
					})

					for _, neighbor := range neighborBuf {
						if isCore[neighbor] != 0 {
							if shared[neighbor].compareAndSwap(-1, label) {
								localNext = append(localNext, neighbor)
							}
						} else {
							shared[neighbor].compareAndSwap(-1, label)
						}
					}
				}

				if len(localNext) > 0 {
					localNext = sortAndDedupInt32(localNext)
					mu.Lock()
					nextFrontier = append(nextFrontier, localNext...)
					mu.Unlock()
				}
			})

			if len(nextFrontier) == 0 {
				break
			}

			nextFrontier = sortAndDedupInt32(nextFrontier)
			frontier = append(frontier[:0], nextFrontier...)
		}
	}

	for i := 0; i < n; i++ {
		labels[i] = shared[i].load()
	}
}
