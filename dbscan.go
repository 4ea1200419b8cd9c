package dbscan

import "fmt"

// Mode selects which cluster-expansion strategy labels core points. All
// three produce byte-identical label vectors for the same input,
// regardless of thread count or chunk size.
type Mode int

const (
	// ModeSequential expands components with a single-goroutine stack
	// walk in input order.
	ModeSequential Mode = iota
	// ModeFrontierParallel expands components with a parallel BFS over
	// atomic-CAS-claimed labels.
	ModeFrontierParallel
	// ModeUnionFind expands components by uniting core-to-core eps edges
	// in a lock-free disjoint-set.
	ModeUnionFind
)

// Point is a 2D point with unsigned integer coordinates, addressed by its
// 0-based input index.
type Point struct {
	X, Y uint32
}

// Params controls a clustering call.
type Params struct {
	// Eps is the L1 radius defining the eps-neighborhood. Must be >= 1.
	Eps uint32
	// MinSamples is the minimum inclusive neighborhood size for a point to
	// be classified as core. Must be >= 1.
	MinSamples uint32
	// NumThreads caps the number of goroutines used by each parallel
	// phase. 0 means "use runtime.NumCPU(), at least 1".
	NumThreads int
	// ChunkSize controls how work is split across goroutines within a
	// phase. 0 means "use that phase's default".
	ChunkSize int
}

// Result is the output of a clustering call.
type Result struct {
	// Labels assigns each point either a non-negative cluster id or -1
	// (noise). Cluster ids form a dense prefix of the non-negative
	// integers, ordered by the smallest input index among each cluster's
	// core points; border points do not affect the ordering.
	Labels []int32
	// PerfTiming records the wall-clock duration of each named phase, in
	// the order the phases ran.
	PerfTiming []TimingEntry
}

// validateParams checks that params describe a valid clustering call.
func validateParams(params Params) error {
	if params.Eps == 0 {
		return fmt.Errorf("dbscan: Eps must be >= 1, got %d", params.Eps)
	}
	if params.MinSamples == 0 {
		return fmt.Errorf("dbscan: MinSamples must be >= 1, got %d", params.MinSamples)
	}
	return nil
}

// Cluster performs grid DBSCAN over points using L1 distance. It is an AoS
// convenience wrapper around ClusterStrided: coordinates are read with
// stride 1 from two synthesized views over points.
func Cluster(points []Point, params Params, mode Mode) (*Result, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	n := len(points)
	xs := make([]uint32, n)
	ys := make([]uint32, n)
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return clusterValidated(xs, 1, ys, 1, n, params, mode)
}

// ClusterStrided performs grid DBSCAN over coordinates held in two strided
// buffers. xStride and yStride are measured in units of one uint32
// element, letting callers cluster columns of a larger struct-of-arrays
// table without copying.
//
// ClusterStrided rejects eps == 0 or minSamples == 0 at entry, before
// allocating anything. count == 0 returns an empty result without error.
func ClusterStrided(xs []uint32, xStride int, ys []uint32, yStride int, count int, params Params, mode Mode) (*Result, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	if count > 0 && (xStride <= 0 || yStride <= 0) {
		return nil, fmt.Errorf("dbscan: xStride and yStride must be positive when count > 0")
	}
	if count > 0 && ((count-1)*xStride >= len(xs) || (count-1)*yStride >= len(ys)) {
		return nil, fmt.Errorf("dbscan: coordinate buffers are too short for count=%d with the given strides", count)
	}

	return clusterValidated(xs, xStride, ys, yStride, count, params, mode)
}

// clusterValidated runs the full pipeline once params have already been
// checked: grid index -> core mask -> expansion mode -> canonical labels
// -> border assignment -> result.
func clusterValidated(xs []uint32, xStride int, ys []uint32, yStride int, n int, params Params, mode Mode) (*Result, error) {
	tr := &tracer{}
	stopTotal := tr.start("total")

	if n == 0 {
		stopTotal()
		return &Result{Labels: []int32{}, PerfTiming: tr.entries}, nil
	}

	g := buildGrid(xs, xStride, ys, yStride, n, params.Eps, params.NumThreads, params.ChunkSize, tr)
	isCore := classifyCore(g, xs, xStride, ys, yStride, n, params.Eps, params.MinSamples, params.NumThreads, params.ChunkSize, tr)

	labels := make([]int32, n)
	for i := range labels {
		labels[i] = -1
	}

	stopExpand := tr.start("cluster_expansion")
	switch mode {
	case ModeSequential:
		expandSequential(g, xs, xStride, ys, yStride, n, params.Eps, isCore, labels)
		canonicalizeTentative(g, xs, xStride, ys, yStride, n, params.Eps, isCore, labels)
	case ModeFrontierParallel:
		expandFrontier(g, xs, xStride, ys, yStride, n, params.Eps, isCore, labels, params.NumThreads, params.ChunkSize)
		canonicalizeTentative(g, xs, xStride, ys, yStride, n, params.Eps, isCore, labels)
	case ModeUnionFind:
		uf := expandUnionFind(g, xs, xStride, ys, yStride, n, params.Eps, isCore, params.NumThreads, params.ChunkSize)
		canonicalizeUnionFind(g, xs, xStride, ys, yStride, n, params.Eps, isCore, uf, labels)
	default:
		return nil, fmt.Errorf("dbscan: unknown expansion mode %d", mode)
	}
	stopExpand()
	stopTotal()

	return &Result{Labels: labels, PerfTiming: tr.entries}, nil
}
