// Command dbscan-gen generates a synthetic fixture pair: a data file of
// (y, x) points drawn from a uniform background plus a number of Gaussian
// clusters, and a truth file labeling each point with the Gaussian cluster
// it came from (background points are truth-noise).
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"

	"github.com/gridcluster/dbscan"
	"github.com/gridcluster/dbscan/internal/fixture"
)

func main() {
	uniformCount := flag.Int("uniform-count", 200_000, "number of uniform background points")
	clusterCount := flag.Int("cluster-count", 100, "number of Gaussian clusters")
	pointsPerCluster := flag.Int("points-per-cluster", 256, "number of points sampled per Gaussian cluster")
	areaWidth := flag.Int("area-width", 1_000_000, "width/height of the square area in pixels")
	clusterSigma := flag.Float64("cluster-sigma", 50.0/3.0, "standard deviation of each Gaussian cluster, in pixels")
	eps := flag.Float64("eps", 60.0, "DBSCAN epsilon used only to label the run, not to regenerate truth")
	minSamples := flag.Int("min-samples", 16, "DBSCAN min_samples used only to label the run, not to regenerate truth")
	seed := flag.Uint64("seed", 42, "seed for the random number generator")
	dataFile := flag.String("data-file", "", "path to the output data fixture (default: a generated name)")
	truthFile := flag.String("truth-file", "", "path to the output truth fixture (default: a generated name)")
	compressed := flag.Bool("compressed", false, "write the data fixture behind a zstd envelope")
	flag.Parse()

	if *uniformCount < 0 || *clusterCount < 0 || *pointsPerCluster < 0 {
		log.Fatal("uniform-count, cluster-count, and points-per-cluster must be non-negative")
	}
	if *areaWidth <= 0 {
		log.Fatal("area-width must be positive")
	}

	dataPath, truthPath := *dataFile, *truthFile
	if dataPath == "" || truthPath == "" {
		runID := uuid.New().String()
		if dataPath == "" {
			dataPath = fmt.Sprintf("dbscan-%s-data.bin", runID)
		}
		if truthPath == "" {
			truthPath = fmt.Sprintf("dbscan-%s-truth.bin", runID)
		}
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	points := make([]dbscan.Point, 0, *uniformCount+*clusterCount**pointsPerCluster)
	labels := make([]int32, 0, cap(points))

	for i := 0; i < *uniformCount; i++ {
		points = append(points, dbscan.Point{
			X: quantize(rng.Float64()*float64(*areaWidth), *areaWidth),
			Y: quantize(rng.Float64()*float64(*areaWidth), *areaWidth),
		})
		labels = append(labels, -1)
	}

	for c := 0; c < *clusterCount; c++ {
		centerX := rng.Float64() * float64(*areaWidth)
		centerY := rng.Float64() * float64(*areaWidth)
		for p := 0; p < *pointsPerCluster; p++ {
			points = append(points, dbscan.Point{
				X: quantize(centerX+rng.NormFloat64()**clusterSigma, *areaWidth),
				Y: quantize(centerY+rng.NormFloat64()**clusterSigma, *areaWidth),
			})
			labels = append(labels, int32(c))
		}
	}

	if len(points) == 0 {
		log.Fatal("no points generated; adjust the generator parameters")
	}

	shuffle(rng, points, labels)

	if *compressed {
		if err := fixture.SaveDataCompressed(dataPath, points); err != nil {
			log.Fatalf("write data fixture: %v", err)
		}
	} else {
		if err := fixture.SaveData(dataPath, points); err != nil {
			log.Fatalf("write data fixture: %v", err)
		}
	}
	if err := fixture.SaveTruth(truthPath, labels); err != nil {
		log.Fatalf("write truth fixture: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Generated %d total points.\n", len(points))
	fmt.Fprintf(os.Stdout, "Uniform points: %d, clustered points: %d.\n", *uniformCount, len(points)-*uniformCount)
	fmt.Fprintf(os.Stdout, "Truth clusters: %d (generated for eps=%.2f, min-samples=%d).\n", *clusterCount, *eps, *minSamples)
	fmt.Fprintf(os.Stdout, "Data written to %s and labels to %s.\n", dataPath, truthPath)
}

// quantize rounds a continuous coordinate to the nearest pixel and clamps it
// into [0, width), matching the reference generator's round-then-clip.
func quantize(value float64, width int) uint32 {
	rounded := math.Round(value)
	if rounded < 0 {
		rounded = 0
	}
	if rounded > float64(width-1) {
		rounded = float64(width - 1)
	}
	return uint32(rounded)
}

// shuffle randomizes points and labels together (Fisher-Yates) so the
// background/cluster origin of a point isn't recoverable from its position
// in the fixture.
func shuffle(rng *rand.Rand, points []dbscan.Point, labels []int32) {
	for i := len(points) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		points[i], points[j] = points[j], points[i]
		labels[i], labels[j] = labels[j], labels[i]
	}
}
