package classifier

import (
	"math"

	"github.com/sjwhitworth/golearn/ensemble"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/custseg/core"
	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// RandomForest is the bagged-ensemble-of-decision-trees backend, wrapping
// golearn's random forest. Each tree samples floor(sqrt(p)) features.
type RandomForest struct {
	core.BaseEstimator

	cfg     Config
	classes []string
	forest  *ensemble.RandomForest
}

// NewRandomForest creates an unfitted forest backend from the resolved
// configuration.
func NewRandomForest(cfg Config) *RandomForest {
	return &RandomForest{cfg: cfg.withDefaults()}
}

// Fit trains the ensemble. Backend failure surfaces as ConvergenceError and
// is never retried: refitting the same inputs reproduces the same failure.
func (rf *RandomForest) Fit(X mat.Matrix, y []string) error {
	classes, err := distinctSorted(BackendRandomForest, y)
	if err != nil {
		return err
	}

	train, err := instancesFromMatrix(X, y, rf.cfg.Features, classes)
	if err != nil {
		return err
	}

	mtry := int(math.Sqrt(float64(len(rf.cfg.Features))))
	if mtry < 1 {
		mtry = 1
	}
	forest := ensemble.NewRandomForest(rf.cfg.Trees, mtry)
	if err := forest.Fit(train); err != nil {
		return errors.NewConvergenceError(BackendRandomForest, "ensemble fit failed", err)
	}

	rf.classes = classes
	rf.forest = forest
	rf.SetFitted()
	return nil
}

// Predict returns one segment label per row of X.
func (rf *RandomForest) Predict(X mat.Matrix) ([]string, error) {
	if !rf.IsFitted() {
		return nil, errors.NewNotFittedError("RandomForest", "Predict")
	}

	r, _ := X.Dims()
	// Placeholder classes; golearn grids always carry a class column, and
	// the values are ignored during prediction.
	placeholder := make([]string, r)
	for i := range placeholder {
		placeholder[i] = rf.classes[0]
	}
	test, err := instancesFromMatrix(X, placeholder, rf.cfg.Features, rf.classes)
	if err != nil {
		return nil, err
	}

	pred, err := rf.forest.Predict(test)
	if err != nil {
		return nil, errors.Wrap(err, "RandomForest.Predict")
	}
	return classesFromPredictions(pred), nil
}

// Classes returns the sorted labels seen during fitting.
func (rf *RandomForest) Classes() []string {
	out := make([]string, len(rf.classes))
	copy(out, rf.classes)
	return out
}
