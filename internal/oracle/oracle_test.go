package oracle

import (
	"testing"

	"github.com/gridcluster/dbscan"
)

func TestCluster_TwoLineSegmentsPlusOutlier(t *testing.T) {
	points := []dbscan.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 10, Y: 0}, {X: 11, Y: 0}, {X: 12, Y: 0},
		{X: 100, Y: 0},
	}
	labels := Cluster(points, 1.5, 2)
	want := []int32{0, 0, 0, 1, 1, 1, -1}
	for i, l := range want {
		if labels[i] != l {
			t.Errorf("labels[%d] = %d, want %d", i, labels[i], l)
		}
	}
}

func TestCluster_NoCorePoints(t *testing.T) {
	points := []dbscan.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}
	labels := Cluster(points, 2, 3)
	for i, l := range labels {
		if l != -1 {
			t.Errorf("labels[%d] = %d, want -1", i, l)
		}
	}
}

func TestCluster_EmptyInput(t *testing.T) {
	labels := Cluster(nil, 1, 1)
	if len(labels) != 0 {
		t.Errorf("got %d labels, want 0", len(labels))
	}
}

func TestCountClusters(t *testing.T) {
	if n := CountClusters([]int32{-1, 0, 0, 1, -1, 2}); n != 3 {
		t.Errorf("CountClusters = %d, want 3", n)
	}
	if n := CountClusters([]int32{-1, -1}); n != 0 {
		t.Errorf("CountClusters = %d, want 0", n)
	}
	if n := CountClusters(nil); n != 0 {
		t.Errorf("CountClusters(nil) = %d, want 0", n)
	}
}

// TestCluster_AgreesWithGridCoreOnAxisAlignedPoints exercises property 9:
// on a dataset where every pair of points that matters is axis-aligned (so
// L1 distance and L2 distance coincide), the L2 oracle's partition matches
// the grid core's L1 partition exactly.
func TestCluster_AgreesWithGridCoreOnAxisAlignedPoints(t *testing.T) {
	points := []dbscan.Point{
		{X: 0, Y: 5}, {X: 1, Y: 5}, {X: 2, Y: 5}, {X: 3, Y: 5},
		{X: 20, Y: 5}, {X: 21, Y: 5}, {X: 22, Y: 5},
		{X: 99, Y: 5},
	}
	eps := uint32(1)
	minSamples := uint32(3)

	gridResult, err := dbscan.Cluster(points, dbscan.Params{Eps: eps, MinSamples: minSamples}, dbscan.ModeSequential)
	if err != nil {
		t.Fatalf("grid Cluster: %v", err)
	}

	oracleLabels := Cluster(points, float64(eps), int(minSamples))

	if len(gridResult.Labels) != len(oracleLabels) {
		t.Fatalf("label count mismatch: grid=%d oracle=%d", len(gridResult.Labels), len(oracleLabels))
	}

	// Both assign cluster ids densely ordered by minimum member index, so
	// they agree label-for-label, not merely partition-for-partition.
	for i := range gridResult.Labels {
		if gridResult.Labels[i] != oracleLabels[i] {
			t.Errorf("point %d: grid label %d != oracle label %d", i, gridResult.Labels[i], oracleLabels[i])
		}
	}
}
