package dbscan

import (
	"sync"
	"testing"
)

func allCore(n int) []uint8 {
	isCore := make([]uint8, n)
	for i := range isCore {
		isCore[i] = 1
	}
	return isCore
}

func TestUnionFind_SingletonsStartAsOwnRoot(t *testing.T) {
	uf := newConcurrentUnionFind(5, allCore(5))
	for i := uint32(0); i < 5; i++ {
		if root := uf.find(i); root != i {
			t.Errorf("find(%d) = %d, want %d", i, root, i)
		}
	}
}

func TestUnionFind_NonCorePointsAreAbsent(t *testing.T) {
	isCore := []uint8{1, 0, 1}
	uf := newConcurrentUnionFind(3, isCore)
	if root := uf.find(1); root != invalidParent {
		t.Errorf("find(1) = %d, want invalidParent", root)
	}
}

func TestUnionFind_UniteMergesTwoComponents(t *testing.T) {
	uf := newConcurrentUnionFind(4, allCore(4))
	uf.unite(0, 1)
	if uf.find(0) != uf.find(1) {
		t.Errorf("0 and 1 should share a root after unite")
	}
	if uf.find(2) == uf.find(0) {
		t.Errorf("2 should not share a root with 0 before being united")
	}
}

func TestUnionFind_UniteWithNonCoreIsNoOp(t *testing.T) {
	isCore := []uint8{1, 0}
	uf := newConcurrentUnionFind(2, isCore)
	uf.unite(0, 1)
	if root := uf.find(1); root != invalidParent {
		t.Errorf("uniting with a non-core point must not make it resolvable, got root %d", root)
	}
}

func TestUnionFind_RootIsAlwaysSmallestIndexInChain(t *testing.T) {
	n := 50
	uf := newConcurrentUnionFind(n, allCore(n))
	for i := 1; i < n; i++ {
		uf.unite(uint32(i-1), uint32(i))
	}
	for i := 0; i < n; i++ {
		if root := uf.find(uint32(i)); root != 0 {
			t.Errorf("find(%d) = %d, want 0 (the smallest index in the chain)", i, root)
		}
	}
}

// TestUnionFind_ConcurrentUniteIsDeterministic stress-tests that concurrent,
// differently-ordered unite calls over the same edge set always converge to
// the same partition of roots, with every component's root equal to its
// smallest member.
func TestUnionFind_ConcurrentUniteIsDeterministic(t *testing.T) {
	n := 2000
	edges := make([][2]uint32, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]uint32{uint32(i - 1), uint32(i)})
	}
	for i := 0; i+100 < n; i += 100 {
		edges = append(edges, [2]uint32{uint32(i), uint32(i + 100)})
	}

	for trial := 0; trial < 8; trial++ {
		uf := newConcurrentUnionFind(n, allCore(n))

		var wg sync.WaitGroup
		numWorkers := 8
		wg.Add(numWorkers)
		for w := 0; w < numWorkers; w++ {
			w := w
			go func() {
				defer wg.Done()
				for i := w; i < len(edges); i += numWorkers {
					uf.unite(edges[i][0], edges[i][1])
				}
			}()
		}
		wg.Wait()

		for i := 0; i < n; i++ {
			if root := uf.find(uint32(i)); root != 0 {
				t.Fatalf("trial %d: find(%d) = %d, want 0", trial, i, root)
			}
		}
	}
}

// TestUnionFind_ConcurrentDisjointComponentsStayDisjoint checks that union
// operations confined to one half of the id space never leak a root into
// the other half, even under concurrent execution.
func TestUnionFind_ConcurrentDisjointComponentsStayDisjoint(t *testing.T) {
	n := 1000
	half := n / 2
	uf := newConcurrentUnionFind(n, allCore(n))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i < half; i++ {
			uf.unite(0, uint32(i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := half + 1; i < n; i++ {
			uf.unite(uint32(half), uint32(i))
		}
	}()
	wg.Wait()

	for i := 0; i < half; i++ {
		if root := uf.find(uint32(i)); root != 0 {
			t.Errorf("find(%d) = %d, want 0", i, root)
		}
	}
	for i := half; i < n; i++ {
		if root := uf.find(uint32(i)); root != uint32(half) {
			t.Errorf("find(%d) = %d, want %d", i, root, half)
		}
	}
}

func TestUnionFind_FindOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected find to panic on an out-of-range index")
		}
	}()
	uf := newConcurrentUnionFind(2, allCore(2))
	uf.find(5)
}
