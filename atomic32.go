package dbscan

import (
	"sort"
	"sync/atomic"
)

// atomicInt32 is a thin wrapper around atomic.Int32 that stores DBSCAN
// labels, which are signed (-1 for unset/noise).
type atomicInt32 struct {
	v atomic.Int32
}

func (a *atomicInt32) store(v int32)     { a.v.Store(v) }
func (a *atomicInt32) load() int32       { return a.v.Load() }
func (a *atomicInt32) compareAndSwap(old, new int32) bool {
	return a.v.CompareAndSwap(old, new)
}

// sortAndDedupInt32 sorts s ascending and removes duplicates in place,
// returning the deduplicated prefix length via a slice re-slice. Batches
// from different goroutines must be canonicalized this way before merging:
// two workers may both claim the same neighbor transitively, and CAS alone
// decides ownership but not a scheduling-independent traversal order.
func sortAndDedupInt32(s []int32) []int32 {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	if len(s) == 0 {
		return s
	}
	w := 1
	for r := 1; r < len(s); r++ {
		if s[r] != s[w-1] {
			s[w] = s[r]
			w++
		}
	}
	return s[:w]
}
