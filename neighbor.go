package dbscan

// forEachNeighbor visits every point p (including the query point itself)
// such that L1(p, q) <= eps, where q is the point at pointIndex. It walks
// the nine cells around q's cell in row-major (dx, dy) order, binary
// searches each into the grid's cell directory, and scans the matching
// run of ordered positions, checking exact L1 distance with saturating
// unsigned subtraction promoted to a 64-bit sum.
//
// visit is called once per matching neighbor in ordered-position order; a
// false return stops enumeration early (used by the core classifier to
// bail out once min_samples is reached).
func forEachNeighbor(g *grid, xs []uint32, xStride int, ys []uint32, yStride int, pointIndex int32, eps uint32, visit func(neighbor int32) bool) {
	baseCX := g.cellX[pointIndex]
	baseCY := g.cellY[pointIndex]
	xa := xs[int(pointIndex)*xStride]
	ya := ys[int(pointIndex)*yStride]

	for dx := -1; dx <= 1; dx++ {
		nx := int64(baseCX) + int64(dx)
		if nx < 0 {
			continue
		}

		for dy := -1; dy <= 1; dy++ {
			ny := int64(baseCY) + int64(dy)
			if ny < 0 {
				continue
			}

			key := packCell(uint32(nx), uint32(ny))
			cellIdx := g.cellIndex(key)
			if cellIdx < 0 {
				continue
			}

			begin := g.offsets[cellIdx]
			end := g.offsets[cellIdx+1]

			for pos := begin; pos < end; pos++ {
				neighborIdx := g.ordered[pos]

				xb := xs[int(neighborIdx)*xStride]
				yb := ys[int(neighborIdx)*yStride]

				var dxAbs, dyAbs uint32
				if xa > xb {
					dxAbs = xa - xb
				} else {
					dxAbs = xb - xa
				}
				if ya > yb {
					dyAbs = ya - yb
				} else {
					dyAbs = yb - ya
				}

				manhattan := uint64(dxAbs) + uint64(dyAbs)
				if manhattan <= uint64(eps) {
					if !visit(neighborIdx) {
						return
					}
				}
			}
		}
	}
}
