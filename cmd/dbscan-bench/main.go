// Command dbscan-bench runs Cluster across all three expansion modes and a
// small matrix of thread/chunk-size combinations over a fixture, printing
// each run's phase timing breakdown. It is ad-hoc tooling, not part of the
// core's tested surface.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gridcluster/dbscan"
	"github.com/gridcluster/dbscan/internal/fixture"
)

func main() {
	dataPath := flag.String("data", "data.bin", "path to the data fixture")
	eps := flag.Uint("eps", 60, "DBSCAN epsilon radius")
	minSamples := flag.Uint("min-samples", 16, "DBSCAN min_samples")
	flag.Parse()

	points, err := fixture.LoadData(*dataPath)
	if err != nil {
		log.Fatalf("load data fixture: %v", err)
	}
	fmt.Printf("Loaded %d points from %s\n", len(points), *dataPath)

	modes := []struct {
		name string
		mode dbscan.Mode
	}{
		{"sequential", dbscan.ModeSequential},
		{"frontier", dbscan.ModeFrontierParallel},
		{"unionfind", dbscan.ModeUnionFind},
	}

	threadCounts := []int{1, 2, 4, 8}
	chunkSizes := []int{0, 256}

	for _, m := range modes {
		for _, threads := range threadCounts {
			for _, chunk := range chunkSizes {
				params := dbscan.Params{
					Eps:        uint32(*eps),
					MinSamples: uint32(*minSamples),
					NumThreads: threads,
					ChunkSize:  chunk,
				}
				result, err := dbscan.Cluster(points, params, m.mode)
				if err != nil {
					log.Fatalf("%s threads=%d chunk=%d: %v", m.name, threads, chunk, err)
				}

				fmt.Printf("\n[%s] threads=%d chunk=%d\n", m.name, threads, chunk)
				for _, entry := range result.PerfTiming {
					fmt.Printf("  %-20s %10.3f ms\n", entry.Label, entry.DurationMS)
				}
			}
		}
	}
}
