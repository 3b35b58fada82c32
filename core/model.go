// Package core defines the estimator contracts shared by the pipeline
// stages: fitted-state tracking and the transformer interface implemented by
// the preprocessing steps.
package core

import "gonum.org/v1/gonum/mat"

// Transformer is the contract implemented by the preprocessing steps.
type Transformer interface {
	// Fit learns the transform parameters from training data only.
	Fit(X mat.Matrix) error

	// Transform applies the fitted parameters to data.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform fits on X and transforms the same X.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// EstimatorState tracks whether an estimator has been fitted.
type EstimatorState int

const (
	// NotFitted means Fit has not been called yet.
	NotFitted EstimatorState = iota
	// Fitted means the estimator holds learned parameters.
	Fitted
)

// BaseEstimator is embedded by every fittable component to carry its state.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the estimator has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the estimator as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the estimator to its unfitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
