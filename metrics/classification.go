// Package metrics evaluates classifier output: the confusion matrix over
// predicted vs. actual labels and the accuracy derived from it.
package metrics

import (
	"sort"

	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// ConfusionMatrix cross-tabulates predicted against actual label counts.
// It is square over the union of observed labels; the diagonal holds the
// correct predictions.
type ConfusionMatrix struct {
	labels []string
	counts map[string]map[string]int // predicted -> actual -> count
	total  int
}

// NewConfusionMatrix builds the matrix from two order-aligned label
// sequences. It fails with ShapeMismatchError when the lengths differ.
func NewConfusionMatrix(yTrue, yPred []string) (*ConfusionMatrix, error) {
	if len(yTrue) != len(yPred) {
		return nil, errors.NewShapeMismatchError("metrics.NewConfusionMatrix", len(yTrue), len(yPred), 0)
	}
	if len(yTrue) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "metrics.NewConfusionMatrix")
	}

	seen := make(map[string]bool)
	counts := make(map[string]map[string]int)
	for i := range yTrue {
		seen[yTrue[i]] = true
		seen[yPred[i]] = true
		if counts[yPred[i]] == nil {
			counts[yPred[i]] = make(map[string]int)
		}
		counts[yPred[i]][yTrue[i]]++
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return &ConfusionMatrix{labels: labels, counts: counts, total: len(yTrue)}, nil
}

// Labels returns the sorted union of observed label values.
func (cm *ConfusionMatrix) Labels() []string {
	out := make([]string, len(cm.labels))
	copy(out, cm.labels)
	return out
}

// Count returns the number of records predicted as predicted with actual
// label actual.
func (cm *ConfusionMatrix) Count(predicted, actual string) int {
	return cm.counts[predicted][actual]
}

// PredictedTotal returns how many records were predicted as label.
func (cm *ConfusionMatrix) PredictedTotal(label string) int {
	total := 0
	for _, count := range cm.counts[label] {
		total += count
	}
	return total
}

// ActualTotal returns how many records actually carry label.
func (cm *ConfusionMatrix) ActualTotal(label string) int {
	total := 0
	for _, row := range cm.counts {
		total += row[label]
	}
	return total
}

// Total returns the number of evaluated records.
func (cm *ConfusionMatrix) Total() int {
	return cm.total
}

// Accuracy is the diagonal sum over the total: the fraction of records whose
// predicted label equals the actual label. Always in [0, 1].
func (cm *ConfusionMatrix) Accuracy() float64 {
	correct := 0
	for _, label := range cm.labels {
		correct += cm.counts[label][label]
	}
	return float64(correct) / float64(cm.total)
}

// Accuracy builds the confusion matrix and returns its accuracy in one call.
func Accuracy(yTrue, yPred []string) (float64, error) {
	cm, err := NewConfusionMatrix(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return cm.Accuracy(), nil
}
