// Package model_selection provides the seeded train/test partitioning step.
package model_selection

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// TrainTestSplit draws floor(fraction*n) row indices without replacement as
// the train partition; the complement is the test partition. Both slices are
// ascending. For a fixed seed and n the partition is bit-for-bit
// reproducible; every call redraws independently, nothing is cached.
func TrainTestSplit(n int, fraction float64, seed int64) (train, test []int, err error) {
	if n <= 0 {
		return nil, nil, errors.NewValueError("model_selection.TrainTestSplit", "n must be positive")
	}
	if fraction <= 0 || fraction >= 1 {
		return nil, nil, errors.NewValueError("model_selection.TrainTestSplit", "fraction must be in (0, 1)")
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	r.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	// Nudge past the binary representation so e.g. 0.7*10 floors to 7, not 6.
	trainSize := int(math.Floor(fraction*float64(n) + 1e-9))
	train = make([]int, trainSize)
	copy(train, indices[:trainSize])
	test = make([]int, n-trainSize)
	copy(test, indices[trainSize:])

	sort.Ints(train)
	sort.Ints(test)
	return train, test, nil
}
