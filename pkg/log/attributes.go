package log

// Standard attribute keys for pipeline stages. Using these consistently keeps
// one run's log lines joinable by stage and model.
const (
	// StageKey names the pipeline stage emitting the line.
	// Values: "load", "type", "split", "scale", "train", "evaluate", "profile".
	StageKey = "stage"

	// ModelNameKey identifies the classifier backend.
	// Values: "random_forest", "svm".
	ModelNameKey = "model.name"

	// RowsKey is the number of records at this point of the pipeline.
	RowsKey = "data.rows"

	// DroppedKey is the number of incomplete records removed by typing.
	DroppedKey = "data.dropped"

	// FeaturesKey is the number of feature columns in the design matrix.
	FeaturesKey = "data.features"

	// SeedKey is the split/permutation seed for the run.
	SeedKey = "seed"

	// AccuracyKey is a model's test accuracy.
	AccuracyKey = "metric.accuracy"
)
