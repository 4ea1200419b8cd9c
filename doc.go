// Package dbscan implements DBSCAN clustering over 2D point sets with
// integer coordinates, using a uniform spatial grid and L1 (Manhattan)
// distance.
//
// Clustering is deterministic with respect to input order and identical
// across execution modes: the sequential, frontier-parallel, and
// lock-free-union-find expansion strategies all produce byte-identical
// label vectors for the same input, regardless of thread count or chunk
// size.
//
// Basic usage:
//
//	points := []dbscan.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 20, Y: 20}}
//	params := dbscan.Params{Eps: 2, MinSamples: 2}
//	result, err := dbscan.Cluster(points, params, dbscan.ModeSequential)
//	// result.Labels[i] is the cluster ID for point i (-1 = noise)
//
// For coordinates already held in separate strided buffers (e.g. columns of
// a larger struct-of-arrays table), use ClusterStrided directly.
package dbscan
