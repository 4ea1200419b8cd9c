// Package metrics scores a clustering against a ground-truth labeling,
// used by the validator tool to report how closely an implementation's
// output matches a truth fixture.
package metrics

import "gonum.org/v1/gonum/stat/combin"

// AdjustedRandIndex computes the adjusted Rand index between two label
// assignments of the same n points. Both slices may use -1 for noise; noise
// is treated as an ordinary label value, not special-cased, since ARI only
// cares about co-membership agreement.
//
// Returns 1 for identical partitions (up to a relabeling) and 0 for
// agreement no better than chance. When the denominator degenerates (for
// example both partitions put every point in a single class) it returns 1
// if the partitions agree and 0 otherwise, never NaN.
func AdjustedRandIndex(predicted, truth []int32) float64 {
	if len(predicted) != len(truth) {
		panic("metrics: predicted and truth must have the same length")
	}
	n := len(predicted)
	if n == 0 {
		return 1
	}

	contingency := map[[2]int32]int{}
	rowCount := map[int32]int{}
	colCount := map[int32]int{}
	for i := 0; i < n; i++ {
		key := [2]int32{predicted[i], truth[i]}
		contingency[key]++
		rowCount[predicted[i]]++
		colCount[truth[i]]++
	}

	pairCount := func(count int) float64 {
		if count < 2 {
			return 0
		}
		return float64(combin.Binomial(count, 2))
	}

	var index float64
	for _, count := range contingency {
		index += pairCount(count)
	}

	var rowSum, colSum float64
	for _, count := range rowCount {
		rowSum += pairCount(count)
	}
	for _, count := range colCount {
		colSum += pairCount(count)
	}

	totalPairs := pairCount(n)
	if totalPairs == 0 {
		return 1
	}

	expectedIndex := rowSum * colSum / totalPairs
	maxIndex := 0.5 * (rowSum + colSum)

	denominator := maxIndex - expectedIndex
	if denominator == 0 {
		if index == expectedIndex {
			return 1
		}
		return 0
	}
	return (index - expectedIndex) / denominator
}

// BestAccuracy scores predicted against truth after relabeling predicted's
// cluster ids to best match truth's, greedily assigning each predicted
// label to the truth label it overlaps most. This is a simpler, order
// -sensitive complement to AdjustedRandIndex, reported alongside it by the
// validator tool.
func BestAccuracy(predicted, truth []int32) float64 {
	if len(predicted) != len(truth) {
		panic("metrics: predicted and truth must have the same length")
	}
	n := len(predicted)
	if n == 0 {
		return 1
	}

	overlap := map[int32]map[int32]int{}
	for i := 0; i < n; i++ {
		p, tr := predicted[i], truth[i]
		if overlap[p] == nil {
			overlap[p] = map[int32]int{}
		}
		overlap[p][tr]++
	}

	bestMatch := map[int32]int32{}
	for p, counts := range overlap {
		var best int32 = -1
		bestCount := -1
		for tr, count := range counts {
			if count > bestCount {
				best = tr
				bestCount = count
			}
		}
		bestMatch[p] = best
	}

	correct := 0
	for i := 0; i < n; i++ {
		if bestMatch[predicted[i]] == truth[i] {
			correct++
		}
	}
	return float64(correct) / float64(n)
}
