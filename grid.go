package dbscan

import "sort"

// packCell combines a cell's (cx, cy) coordinates into a single sortable
// key. Cell size equals eps, so any L1-neighbor of a point lies within the
// 3x3 block of cells around that point's own cell.
func packCell(cx, cy uint32) uint64 {
	return uint64(cx)<<32 | uint64(cy)
}

// cellOf maps a coordinate value to its cell index along one axis.
func cellOf(value, cellSize uint32) uint32 {
	return value / cellSize
}

// grid is the spatial index built once per clustering call: a per-point
// cell assignment plus a CSR-style directory mapping each occupied cell to
// a contiguous run of point indices in ordered.
type grid struct {
	cellX, cellY []uint32
	key          []uint64

	// ordered is a permutation of [0, n) sorted ascending by (key, index);
	// the tie-break on index makes the sort - and therefore every
	// downstream neighbor enumeration - deterministic.
	ordered []int32

	// uniqueKeys[c] is the key of the c-th occupied cell in ascending
	// order; offsets[c]..offsets[c+1] is the run of ordered-positions
	// belonging to that cell. offsets has len(uniqueKeys)+1 entries.
	uniqueKeys []uint64
	offsets    []int32
}

// buildGrid runs the three-phase grid construction described by the core:
// cell encoding (parallel), index sort, and CSR directory build
// (single-threaded scan of the sorted permutation).
func buildGrid(xs []uint32, xStride int, ys []uint32, yStride int, n int, eps uint32, numThreads, chunkSize int, tr *tracer) *grid {
	g := &grid{
		cellX: make([]uint32, n),
		cellY: make([]uint32, n),
		key:   make([]uint64, n),
	}

	indexChunk := chunkSize
	if indexChunk <= 0 {
		indexChunk = 1024
	}

	stop := tr.start("precompute_cells")
	run(0, n, numThreads, indexChunk, func(begin, end int) {
		for i := begin; i < end; i++ {
			cx := cellOf(xs[i*xStride], eps)
			cy := cellOf(ys[i*yStride], eps)
			g.cellX[i] = cx
			g.cellY[i] = cy
			g.key[i] = packCell(cx, cy)
		}
	})
	stop()

	g.ordered = make([]int32, n)
	for i := range g.ordered {
		g.ordered[i] = int32(i)
	}

	stop = tr.start("sort_indices")
	sort.Slice(g.ordered, func(a, b int) bool {
		lhs, rhs := g.ordered[a], g.ordered[b]
		keyLHS, keyRHS := g.key[lhs], g.key[rhs]
		if keyLHS == keyRHS {
			return lhs < rhs
		}
		return keyLHS < keyRHS
	})
	stop()

	stop = tr.start("build_cell_offsets")
	g.uniqueKeys = make([]uint64, 0, n)
	g.offsets = make([]int32, 0, n+1)

	pos := 0
	for pos < n {
		key := g.key[g.ordered[pos]]
		g.uniqueKeys = append(g.uniqueKeys, key)
		g.offsets = append(g.offsets, int32(pos))

		for pos++; pos < n && g.key[g.ordered[pos]] == key; pos++ {
		}
	}
	g.offsets = append(g.offsets, int32(n))
	stop()

	return g
}

// cellIndex returns the position of key in uniqueKeys, or -1 if the cell is
// unoccupied.
func (g *grid) cellIndex(key uint64) int {
	idx := sort.Search(len(g.uniqueKeys), func(i int) bool { return g.uniqueKeys[i] >= key })
	if idx < len(g.uniqueKeys) && g.uniqueKeys[idx] == key {
		return idx
	}
	return -1
}
