// Package pipeline wires the stages into the single linear pass: load, type,
// split, encode, scale, train, evaluate, profile. Each stage runs to
// completion before the next; any failure aborts the run with the failing
// stage named, and nothing is retried.
package pipeline

import (
	"log/slog"

	"github.com/YuminosukeSato/custseg/classifier"
	"github.com/YuminosukeSato/custseg/dataset"
	"github.com/YuminosukeSato/custseg/metrics"
	"github.com/YuminosukeSato/custseg/model_selection"
	"github.com/YuminosukeSato/custseg/pkg/errors"
	"github.com/YuminosukeSato/custseg/pkg/log"
	"github.com/YuminosukeSato/custseg/preprocessing"
	"github.com/YuminosukeSato/custseg/profile"
)

// Config is the explicit run configuration. There is no package-level state:
// the seed and fraction travel through this struct only.
type Config struct {
	// InputPath is the delimited source with a header row.
	InputPath string

	// Fraction of records drawn into the train partition. Default 0.8.
	Fraction float64

	// Seed drives the split and the importance permutations.
	Seed int64

	// Trees is the forest ensemble size. Default 500.
	Trees int
}

// Validate fills defaults and rejects unusable configurations.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.NewValueError("pipeline.Config", "input path is required")
	}
	if c.Fraction == 0 {
		c.Fraction = 0.8
	}
	if c.Fraction <= 0 || c.Fraction >= 1 {
		return errors.NewValueError("pipeline.Config", "fraction must be in (0, 1)")
	}
	if c.Trees == 0 {
		c.Trees = 500
	}
	if c.Trees < 0 {
		return errors.NewValueError("pipeline.Config", "trees must be positive")
	}
	return nil
}

// Evaluation is one backend's test-set result.
type Evaluation struct {
	Model    string
	Accuracy float64
	Matrix   *metrics.ConfusionMatrix
}

// Results carries every structured output of a run, so callers and tests can
// assert on values instead of printed text.
type Results struct {
	Rows      int // complete records after typing
	Dropped   int // records removed for missing fields
	TrainSize int
	TestSize  int

	Evaluations []Evaluation
	Importances []classifier.Importance
	Profiles    []profile.SegmentProfile

	// Dataset is the typed, unscaled dataset, for reporting layers that
	// render distributions.
	Dataset *dataset.Dataset
}

// Run executes the full pipeline.
func Run(cfg Config) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := slog.Default()

	raw, err := dataset.Load(cfg.InputPath)
	if err != nil {
		return nil, errors.Wrap(err, "load stage")
	}

	typed, dropped, err := dataset.Type(raw)
	if err != nil {
		return nil, errors.Wrap(err, "type stage")
	}
	logger.Info("dataset typed",
		log.StageKey, "type",
		log.RowsKey, typed.Len(),
		log.DroppedKey, dropped,
	)
	if typed.Len() == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "type stage: no complete records")
	}

	trainIdx, testIdx, err := model_selection.TrainTestSplit(typed.Len(), cfg.Fraction, cfg.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "split stage")
	}
	trainSet, err := typed.Subset(trainIdx)
	if err != nil {
		return nil, errors.Wrap(err, "split stage")
	}
	testSet, err := typed.Subset(testIdx)
	if err != nil {
		return nil, errors.Wrap(err, "split stage")
	}
	logger.Info("dataset split",
		log.StageKey, "split",
		log.SeedKey, cfg.Seed,
		"train_rows", trainSet.Len(),
		"test_rows", testSet.Len(),
	)

	// Level maps are fixed on the full typed dataset, like factor levels in
	// the source data; only the scaler statistics are train-only.
	encoder := preprocessing.NewEncoder()
	if err := encoder.Fit(typed); err != nil {
		return nil, errors.Wrap(err, "encode stage")
	}
	trainX, trainY, err := encoder.Transform(trainSet)
	if err != nil {
		return nil, errors.Wrap(err, "encode stage")
	}
	testX, testY, err := encoder.Transform(testSet)
	if err != nil {
		return nil, errors.Wrap(err, "encode stage")
	}

	continuousIdx := preprocessing.ContinuousIndices()
	scaler := preprocessing.NewStandardScaler(dataset.ContinuousFeatures())
	scaledTrain, err := scaler.FitTransform(preprocessing.ExtractColumns(trainX, continuousIdx))
	if err != nil {
		return nil, errors.Wrap(err, "scale stage")
	}
	preprocessing.SetColumns(trainX, continuousIdx, scaledTrain)
	scaledTest, err := scaler.Transform(preprocessing.ExtractColumns(testX, continuousIdx))
	if err != nil {
		return nil, errors.Wrap(err, "scale stage")
	}
	preprocessing.SetColumns(testX, continuousIdx, scaledTest)
	logger.Info("continuous features scaled",
		log.StageKey, "scale",
		log.FeaturesKey, len(continuousIdx),
	)

	features := preprocessing.FeatureNames()
	clsCfg := classifier.Config{
		Features: features,
		Label:    dataset.ColSegmentation,
		Trees:    cfg.Trees,
		Seed:     cfg.Seed,
	}

	results := &Results{
		Rows:      typed.Len(),
		Dropped:   dropped,
		TrainSize: trainSet.Len(),
		TestSize:  testSet.Len(),
		Dataset:   typed,
	}

	for _, backend := range []string{classifier.BackendRandomForest, classifier.BackendSVM} {
		model, err := classifier.New(backend, clsCfg)
		if err != nil {
			return nil, errors.Wrap(err, "train stage")
		}
		if err := model.Fit(trainX, trainY); err != nil {
			return nil, errors.Wrap(err, "train stage")
		}

		pred, err := model.Predict(testX)
		if err != nil {
			return nil, errors.Wrap(err, "evaluate stage")
		}
		cm, err := metrics.NewConfusionMatrix(testY, pred)
		if err != nil {
			return nil, errors.Wrap(err, "evaluate stage")
		}
		results.Evaluations = append(results.Evaluations, Evaluation{
			Model:    backend,
			Accuracy: cm.Accuracy(),
			Matrix:   cm,
		})
		logger.Info("model evaluated",
			log.StageKey, "evaluate",
			log.ModelNameKey, backend,
			log.AccuracyKey, cm.Accuracy(),
		)

		// The importance table reports the ensemble model, as the business
		// report does.
		if backend == classifier.BackendRandomForest {
			imps, err := classifier.PermutationImportance(model, trainX, trainY, features, cfg.Seed)
			if err != nil {
				return nil, errors.Wrap(err, "evaluate stage")
			}
			results.Importances = imps
		}
	}

	profiles, err := profile.BySegment(typed)
	if err != nil {
		return nil, errors.Wrap(err, "profile stage")
	}
	results.Profiles = profiles
	logger.Info("segments profiled",
		log.StageKey, "profile",
		"segments", len(profiles),
	)

	return results, nil
}
