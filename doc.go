// Package custseg implements a customer segmentation training pipeline.
//
// The pipeline loads a customer CSV, drops incomplete records, splits the
// data with a seeded shuffle, standardizes the continuous features with
// statistics fitted on the training partition only, and trains two
// classification backends (a random forest and an RBF-kernel SVM). The
// trained models are evaluated with confusion-matrix accuracy, ranked by
// permutation feature importance, and summarized as per-segment profiles.
//
// Packages:
//
//   - dataset: CSV loading, typing, and descriptive summaries
//   - model_selection: seeded train/test splitting
//   - preprocessing: categorical encoding and standard scaling
//   - classifier: forest and SVM backends behind a common interface
//   - metrics: confusion matrix and accuracy
//   - profile: per-segment descriptive statistics
//   - pipeline: end-to-end orchestration
//   - report: chart rendering for importances and distributions
//
// The cmd/custseg command wires the pipeline behind a CLI.
package custseg
