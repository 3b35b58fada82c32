package classifier

import (
	"bufio"
	"fmt"
	"os"

	libSvm "github.com/ewalker544/libsvm-go"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/custseg/core"
	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// SVM is the max-margin kernel backend: C-SVC with a radial kernel and
// probability estimation enabled, from the pure-Go libsvm port.
//
// The port builds problems from libsvm-format sources, so Fit serializes the
// train matrix to a temporary file with classes mapped to integer codes and
// removes it once the problem is constructed.
type SVM struct {
	core.BaseEstimator

	cfg Config

	// C is the soft-margin cost. Default 1.
	C float64
	// Gamma is the RBF kernel width. Zero means 1/p, the libsvm default.
	Gamma float64

	classes []string
	model   *libSvm.Model
}

// NewSVM creates an unfitted SVM backend from the resolved configuration.
func NewSVM(cfg Config) *SVM {
	return &SVM{cfg: cfg.withDefaults(), C: 1.0}
}

// Fit trains the SVM. Backend failure surfaces as ConvergenceError.
func (s *SVM) Fit(X mat.Matrix, y []string) error {
	classes, err := distinctSorted(BackendSVM, y)
	if err != nil {
		return err
	}
	r, c := X.Dims()
	if c != len(s.cfg.Features) {
		return errors.NewShapeMismatchError("SVM.Fit", len(s.cfg.Features), c, 1)
	}
	if len(y) != r {
		return errors.NewShapeMismatchError("SVM.Fit", r, len(y), 0)
	}

	codes := make(map[string]int, len(classes))
	for i, class := range classes {
		codes[class] = i
	}

	path, err := s.writeProblem(X, y, codes)
	if path != "" {
		defer os.Remove(path)
	}
	if err != nil {
		return err
	}

	gamma := s.Gamma
	if gamma == 0 {
		gamma = 1.0 / float64(c)
	}
	param := libSvm.NewParameter()
	param.SvmType = libSvm.C_SVC
	param.KernelType = libSvm.RBF
	param.C = s.C
	param.Gamma = gamma
	param.Probability = true
	// The solver reports its iterations on stdout otherwise, interleaving
	// with the printed tables.
	param.QuietMode = true

	problem, err := libSvm.NewProblem(path, param)
	if err != nil {
		return errors.NewConvergenceError(BackendSVM, "problem construction failed", err)
	}

	model := libSvm.NewModel(param)
	if err := model.Train(problem); err != nil {
		return errors.NewConvergenceError(BackendSVM, "training failed", err)
	}

	s.classes = classes
	s.model = model
	s.SetFitted()
	return nil
}

// writeProblem serializes the train matrix in libsvm sparse format:
// "<code> 1:<v1> 2:<v2> ...". Returns the temp file path.
func (s *SVM) writeProblem(X mat.Matrix, y []string, codes map[string]int) (string, error) {
	f, err := os.CreateTemp("", "custseg-svm-*.libsvm")
	if err != nil {
		return "", errors.NewIOError("SVM.Fit", "temp problem file", err)
	}
	path := f.Name()

	w := bufio.NewWriter(f)
	r, c := X.Dims()
	for i := 0; i < r; i++ {
		fmt.Fprintf(w, "%d", codes[y[i]])
		for j := 0; j < c; j++ {
			fmt.Fprintf(w, " %d:%g", j+1, X.At(i, j))
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return path, errors.NewIOError("SVM.Fit", path, err)
	}
	if err := f.Close(); err != nil {
		return path, errors.NewIOError("SVM.Fit", path, err)
	}
	return path, nil
}

func (s *SVM) vector(X mat.Matrix, i int) map[int]float64 {
	_, c := X.Dims()
	x := make(map[int]float64, c)
	for j := 0; j < c; j++ {
		x[j+1] = X.At(i, j)
	}
	return x
}

// Predict returns one segment label per row of X.
func (s *SVM) Predict(X mat.Matrix) ([]string, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("SVM", "Predict")
	}
	r, c := X.Dims()
	if c != len(s.cfg.Features) {
		return nil, errors.NewShapeMismatchError("SVM.Predict", len(s.cfg.Features), c, 1)
	}

	out := make([]string, r)
	for i := 0; i < r; i++ {
		code := int(s.model.Predict(s.vector(X, i)))
		if code < 0 || code >= len(s.classes) {
			return nil, errors.NewValueError("SVM.Predict", "backend returned unknown class code")
		}
		out[i] = s.classes[code]
	}
	return out, nil
}

// PredictProba returns per-row class probabilities with columns ordered as
// Classes().
func (s *SVM) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("SVM", "PredictProba")
	}
	r, c := X.Dims()
	if c != len(s.cfg.Features) {
		return nil, errors.NewShapeMismatchError("SVM.PredictProba", len(s.cfg.Features), c, 1)
	}

	// libsvm orders probability estimates by its internal label order.
	order := s.model.Labels()
	result := mat.NewDense(r, len(s.classes), nil)
	for i := 0; i < r; i++ {
		_, probs := s.model.PredictProbability(s.vector(X, i))
		if len(probs) != len(order) {
			return nil, errors.NewShapeMismatchError("SVM.PredictProba", len(order), len(probs), 1)
		}
		for k, code := range order {
			if code < 0 || code >= len(s.classes) {
				return nil, errors.NewValueError("SVM.PredictProba", "backend returned unknown class code")
			}
			result.Set(i, code, probs[k])
		}
	}
	return result, nil
}

// Classes returns the sorted labels seen during fitting.
func (s *SVM) Classes() []string {
	out := make([]string, len(s.classes))
	copy(out, s.classes)
	return out
}
