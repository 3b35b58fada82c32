package classifier

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/custseg/metrics"
	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// Importance is one feature's contribution score.
type Importance struct {
	Feature string
	Score   float64
}

// PermutationImportance scores each feature by the accuracy the fitted model
// loses when that feature's column is shuffled. Neither backend reports its
// internal split statistics, so importance is computed model-agnostically
// against the fitted model.
//
// Scores are clamped at zero, normalized to sum to 1, and ranked descending;
// ties rank by feature name ascending so the table is deterministic. The
// permutation draws come from the given seed, so a fixed seed reproduces the
// ranking exactly.
func PermutationImportance(model Classifier, X *mat.Dense, y []string, features []string, seed int64) ([]Importance, error) {
	r, c := X.Dims()
	if c != len(features) {
		return nil, errors.NewShapeMismatchError("classifier.PermutationImportance", len(features), c, 1)
	}
	if len(y) != r {
		return nil, errors.NewShapeMismatchError("classifier.PermutationImportance", r, len(y), 0)
	}

	baselinePred, err := model.Predict(X)
	if err != nil {
		return nil, err
	}
	baseline, err := metrics.Accuracy(y, baselinePred)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	scores := make([]Importance, c)
	permuted := mat.NewDense(r, c, nil)
	column := make([]float64, r)

	for j := 0; j < c; j++ {
		permuted.Copy(X)
		mat.Col(column, j, X)
		rng.Shuffle(r, func(a, b int) {
			column[a], column[b] = column[b], column[a]
		})
		permuted.SetCol(j, column)

		pred, err := model.Predict(permuted)
		if err != nil {
			return nil, err
		}
		acc, err := metrics.Accuracy(y, pred)
		if err != nil {
			return nil, err
		}

		score := baseline - acc
		if score < 0 {
			score = 0
		}
		scores[j] = Importance{Feature: features[j], Score: score}
	}

	total := 0.0
	for _, imp := range scores {
		total += imp.Score
	}
	if total > 0 {
		for i := range scores {
			scores[i].Score /= total
		}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Feature < scores[j].Feature
	})
	return scores, nil
}
