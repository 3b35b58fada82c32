// Package errors provides the structured error taxonomy for the segmentation
// pipeline. Every stage failure is represented by a typed error created here,
// carrying a stack trace via cockroachdb/errors and structured fields for
// zerolog emission.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// IOError indicates that an input source could not be read or parsed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("custseg: %s: cannot read %q: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("custseg: %s: cannot read %q", e.Op, e.Path)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *IOError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("path", e.Path).
		Str("type", "IOError")
}

// NewIOError creates a new IOError with a stack trace attached.
func NewIOError(op, path string, err error) error {
	ioErr := &IOError{Op: op, Path: path, Err: err}
	return errors.WithStack(ioErr)
}

// SchemaError indicates that an input header does not match the expected
// column set.
type SchemaError struct {
	Op      string
	Missing []string
	Got     []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("custseg: %s: header missing expected columns %v (got %v)", e.Op, e.Missing, e.Got)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *SchemaError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Strs("missing_columns", e.Missing).
		Strs("got_columns", e.Got).
		Str("type", "SchemaError")
}

// NewSchemaError creates a new SchemaError with a stack trace attached.
func NewSchemaError(op string, missing, got []string) error {
	schemaErr := &SchemaError{Op: op, Missing: missing, Got: got}
	return errors.WithStack(schemaErr)
}

// DegenerateFeatureError indicates a continuous feature with zero variance on
// the train partition. Scaling such a feature would divide by zero, so the
// scaler refuses it instead of emitting NaN/Inf.
type DegenerateFeatureError struct {
	Feature string
	Mean    float64
}

func (e *DegenerateFeatureError) Error() string {
	return fmt.Sprintf("custseg: feature %q is constant on the train partition (value %g); drop it or fix the split before scaling", e.Feature, e.Mean)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *DegenerateFeatureError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("feature", e.Feature).
		Float64("mean", e.Mean).
		Str("type", "DegenerateFeatureError")
}

// NewDegenerateFeatureError creates a new DegenerateFeatureError with a stack
// trace attached.
func NewDegenerateFeatureError(feature string, mean float64) error {
	degErr := &DegenerateFeatureError{Feature: feature, Mean: mean}
	return errors.WithStack(degErr)
}

// ConvergenceError indicates that a classifier backend failed to fit. The
// failure is surfaced to the caller, never retried: training is deterministic
// given its inputs.
type ConvergenceError struct {
	Backend string
	Reason  string
	Err     error
}

func (e *ConvergenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("custseg: %s backend failed to fit: %s: %v", e.Backend, e.Reason, e.Err)
	}
	return fmt.Sprintf("custseg: %s backend failed to fit: %s", e.Backend, e.Reason)
}

func (e *ConvergenceError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *ConvergenceError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("backend", e.Backend).
		Str("reason", e.Reason).
		Str("type", "ConvergenceError")
}

// NewConvergenceError creates a new ConvergenceError with a stack trace
// attached.
func NewConvergenceError(backend, reason string, err error) error {
	convErr := &ConvergenceError{Backend: backend, Reason: reason, Err: err}
	return errors.WithStack(convErr)
}

// ShapeMismatchError indicates that two order-aligned sequences or matrix
// dimensions disagree.
type ShapeMismatchError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *ShapeMismatchError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("custseg: %s: shape mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *ShapeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "ShapeMismatchError")
}

// NewShapeMismatchError creates a new ShapeMismatchError with a stack trace
// attached.
func NewShapeMismatchError(op string, expected, got, axis int) error {
	shapeErr := &ShapeMismatchError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(shapeErr)
}

// NotFittedError indicates that Predict or Transform was called on an
// estimator before Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("custseg: %s: this estimator is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a new NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// ValueError indicates an argument whose value is invalid for the operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("custseg: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *ValueError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "ValueError")
}

// NewValueError creates a new ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be cast to the target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	shared sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives no rows.
	ErrEmptyData = New("empty data")
)
