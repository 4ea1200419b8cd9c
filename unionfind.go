package dbscan

import (
	"fmt"
	"math"
	"sync/atomic"
)

// invalidParent marks a slot as absent: the point it belongs to is not a
// core point and never participates in union-find expansion.
const invalidParent uint32 = math.MaxUint32

// concurrentUnionFind is a lock-free disjoint-set over integer ids backed by
// a flat array of atomics. find uses path-splitting with a CAS-published
// shortcut; unite always links the larger-indexed root to the smaller, which
// is the deterministic tie-break the rest of the core depends on to make
// expansion output independent of goroutine interleaving.
type concurrentUnionFind struct {
	parent []atomic.Uint32
}

// newConcurrentUnionFind creates a disjoint-set of size n. isCore[i] decides
// whether slot i starts as its own root (core point) or absent
// (non-core point, sentinel parent).
func newConcurrentUnionFind(n int, isCore []uint8) *concurrentUnionFind {
	uf := &concurrentUnionFind{parent: make([]atomic.Uint32, n)}
	for i := 0; i < n; i++ {
		if isCore[i] != 0 {
			uf.parent[i].Store(uint32(i))
		} else {
			uf.parent[i].Store(invalidParent)
		}
	}
	return uf
}

// find returns the root of i, or invalidParent if i was never a core point.
// On the way back up, it publishes each visited node's parent pointer
// straight to the discovered root via CAS, without clobbering a link that a
// concurrent unite has already advanced past what this walk saw.
func (uf *concurrentUnionFind) find(i uint32) uint32 {
	if int(i) >= len(uf.parent) {
		panic(fmt.Sprintf("dbscan: union-find index %d out of range [0, %d)", i, len(uf.parent)))
	}

	node := i
	parent := uf.parent[node].Load()
	if parent == invalidParent {
		return invalidParent
	}

	for {
		grandparent := uf.parent[parent].Load()
		if grandparent == parent {
			break
		}
		// Path-splitting: point node directly at its grandparent so the next
		// walk through this slot skips one hop, without disturbing a link
		// some other goroutine may have already advanced further.
		uf.parent[node].CompareAndSwap(parent, grandparent)
		node = parent
		parent = uf.parent[node].Load()
		if parent == invalidParent {
			return invalidParent
		}
	}

	// Publish the root to every node on the path from i. Links only ever
	// point to smaller indices, so a link already at or below root is at
	// least as new as this walk and is left alone.
	root := parent
	for node = i; node != root; {
		p := uf.parent[node].Load()
		if p <= root {
			break
		}
		uf.parent[node].CompareAndSwap(p, root)
		node = p
	}
	return root
}

// unite merges the components containing i and j, idempotently. If both
// resolve to the same root, or either is absent (non-core), it is a no-op.
// Otherwise the larger-indexed root is linked under the smaller; on a lost
// CAS race the whole operation retries from scratch against fresh roots.
func (uf *concurrentUnionFind) unite(i, j uint32) {
	for {
		a := uf.find(i)
		b := uf.find(j)
		if a == invalidParent || b == invalidParent || a == b {
			return
		}

		if a < b {
			if uf.parent[b].CompareAndSwap(b, a) {
				return
			}
		} else {
			if uf.parent[a].CompareAndSwap(a, b) {
				return
			}
		}
	}
}
