// Package classifier wraps the two model backends behind one train/predict
// contract. The backends are consumed as black boxes: a bagged-tree ensemble
// from golearn and an RBF-kernel SVM from the pure-Go libsvm port. Only the
// adapter contract is owned here.
package classifier

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// Classifier is the contract every backend satisfies.
type Classifier interface {
	// Fit trains the backend on the design matrix and its aligned labels.
	Fit(X mat.Matrix, y []string) error

	// Predict returns one label per row of X.
	Predict(X mat.Matrix) ([]string, error)

	// Classes returns the sorted distinct labels seen during fitting.
	Classes() []string
}

// ProbabilityPredictor is the optional capability of backends that can
// estimate class probabilities.
type ProbabilityPredictor interface {
	// PredictProba returns per-row class probabilities, columns ordered as
	// Classes().
	PredictProba(X mat.Matrix) (*mat.Dense, error)
}

// Backend names accepted by New.
const (
	BackendRandomForest = "random_forest"
	BackendSVM          = "svm"
)

// Config resolves the model setup once at pipeline construction:
// which columns are features, which is the label, and the backend knobs.
type Config struct {
	// Features names the design-matrix columns, in order.
	Features []string

	// Label names the target column.
	Label string

	// Trees is the ensemble size for the forest backend. Default 500.
	Trees int

	// Seed drives the permutation-importance draws.
	Seed int64
}

func (c Config) withDefaults() Config {
	if c.Trees <= 0 {
		c.Trees = 500
	}
	return c
}

// New creates a backend by name.
func New(backend string, cfg Config) (Classifier, error) {
	if len(cfg.Features) == 0 {
		return nil, errors.NewValueError("classifier.New", "config must name at least one feature")
	}
	switch backend {
	case BackendRandomForest:
		return NewRandomForest(cfg), nil
	case BackendSVM:
		return NewSVM(cfg), nil
	}
	return nil, errors.NewValueError("classifier.New", "unknown backend "+backend)
}

// distinctSorted returns the sorted distinct labels of y, failing when the
// label distribution is degenerate (fewer than two classes): no backend can
// fit a one-class problem, and surfacing it here names the real cause.
func distinctSorted(backend string, y []string) ([]string, error) {
	seen := make(map[string]bool)
	var classes []string
	for _, label := range y {
		if !seen[label] {
			seen[label] = true
			classes = append(classes, label)
		}
	}
	if len(classes) < 2 {
		return nil, errors.NewConvergenceError(backend, "degenerate label distribution: need at least 2 classes", nil)
	}
	sort.Strings(classes)
	return classes, nil
}
