// Package preprocessing provides the leakage-safe feature transforms: the
// standard scaler fitted on the train partition only, and the categorical
// encoder that builds the numeric design matrix.
package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/custseg/core"
	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// StandardScaler standardizes columns to mean 0 and standard deviation 1.
//
// Fit must be called with the train partition only; Transform then applies
// the train statistics to train and test alike, so that no test information
// leaks into the scaling parameters. The standard deviation is the sample
// deviation (n-1 divisor).
type StandardScaler struct {
	core.BaseEstimator

	// Columns names the scaled columns; errors and logs use these names.
	Columns []string

	// Mean holds the per-column train mean.
	Mean []float64

	// Scale holds the per-column train sample standard deviation.
	Scale []float64
}

// NewStandardScaler creates a scaler for the named columns. The column count
// fixes the expected width of every matrix passed to Fit and Transform.
func NewStandardScaler(columns []string) *StandardScaler {
	return &StandardScaler{Columns: columns}
}

// Fit computes per-column mean and sample standard deviation from the train
// partition. A column with zero variance fails with DegenerateFeatureError:
// dividing by a zero deviation would propagate NaN/Inf silently, and a
// constant train feature means the split or the data is broken.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.Wrap(errors.ErrEmptyData, "StandardScaler.Fit")
	}
	if c != len(s.Columns) {
		return errors.NewShapeMismatchError("StandardScaler.Fit", len(s.Columns), c, 1)
	}
	if r < 2 {
		return errors.NewValueError("StandardScaler.Fit", "need at least 2 rows for a sample standard deviation")
	}

	s.Mean = make([]float64, c)
	s.Scale = make([]float64, c)

	column := make([]float64, r)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			column[i] = X.At(i, j)
		}
		mean, std := stat.MeanStdDev(column, nil)
		if std == 0 {
			return errors.NewDegenerateFeatureError(s.Columns[j], mean)
		}
		s.Mean[j] = mean
		s.Scale[j] = std
	}

	s.SetFitted()
	return nil
}

// Transform standardizes X with the fitted train statistics.
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}

	r, c := X.Dims()
	if c != len(s.Columns) {
		return nil, errors.NewShapeMismatchError("StandardScaler.Transform", len(s.Columns), c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, (X.At(i, j)-s.Mean[j])/s.Scale[j])
		}
	}
	return result, nil
}

// FitTransform fits on X and transforms the same X.
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform maps standardized values back to the original scale.
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "InverseTransform")
	}

	r, c := X.Dims()
	if c != len(s.Columns) {
		return nil, errors.NewShapeMismatchError("StandardScaler.InverseTransform", len(s.Columns), c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, X.At(i, j)*s.Scale[j]+s.Mean[j])
		}
	}
	return result, nil
}

// String returns a short description of the scaler.
func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return fmt.Sprintf("StandardScaler(columns=%v)", s.Columns)
	}
	return fmt.Sprintf("StandardScaler(columns=%v, mean=%v, scale=%v)", s.Columns, s.Mean, s.Scale)
}
