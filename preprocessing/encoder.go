package preprocessing

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/custseg/core"
	"github.com/YuminosukeSato/custseg/dataset"
	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// Encoder turns a typed dataset into the numeric design matrix the
// classifier backends consume. Nominal columns are integer-coded with level
// maps built at fit time (levels sorted, so the coding is deterministic);
// Spending_Score keeps its fixed ordinal codes; continuous columns pass
// through unchanged.
type Encoder struct {
	core.BaseEstimator

	levels map[string]map[string]float64
}

// NewEncoder creates an unfitted encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// FeatureNames lists the design-matrix columns in schema order.
func FeatureNames() []string {
	return []string{
		dataset.ColGender, dataset.ColEverMarried, dataset.ColAge,
		dataset.ColGraduated, dataset.ColProfession, dataset.ColWorkExperience,
		dataset.ColSpendingScore, dataset.ColFamilySize, dataset.ColVar1,
	}
}

// ContinuousIndices returns the design-matrix column indices of the
// continuous features, the ones the scaler operates on.
func ContinuousIndices() []int {
	continuous := make(map[string]bool)
	for _, name := range dataset.ContinuousFeatures() {
		continuous[name] = true
	}
	var indices []int
	for i, name := range FeatureNames() {
		if continuous[name] {
			indices = append(indices, i)
		}
	}
	return indices
}

var nominalColumns = []struct {
	name  string
	value func(dataset.Record) string
}{
	{dataset.ColGender, func(r dataset.Record) string { return r.Gender }},
	{dataset.ColEverMarried, func(r dataset.Record) string { return r.EverMarried }},
	{dataset.ColGraduated, func(r dataset.Record) string { return r.Graduated }},
	{dataset.ColProfession, func(r dataset.Record) string { return r.Profession }},
	{dataset.ColVar1, func(r dataset.Record) string { return r.Var1 }},
}

// Fit builds the nominal level maps from the given dataset. The maps carry
// no train statistics, so fitting on the full typed dataset before the split
// is not leakage; it only fixes the level enumeration, like factor levels in
// the source data.
func (e *Encoder) Fit(ds *dataset.Dataset) error {
	if ds.Len() == 0 {
		return errors.Wrap(errors.ErrEmptyData, "Encoder.Fit")
	}

	e.levels = make(map[string]map[string]float64, len(nominalColumns))
	for _, col := range nominalColumns {
		seen := make(map[string]bool)
		for _, rec := range ds.Records {
			seen[col.value(rec)] = true
		}
		names := make([]string, 0, len(seen))
		for name := range seen {
			names = append(names, name)
		}
		sort.Strings(names)

		codes := make(map[string]float64, len(names))
		for i, name := range names {
			codes[name] = float64(i)
		}
		e.levels[col.name] = codes
	}

	e.SetFitted()
	return nil
}

// Transform encodes the dataset into a design matrix and the aligned label
// slice. A level unseen at fit time is an error, not a silent new code.
func (e *Encoder) Transform(ds *dataset.Dataset) (*mat.Dense, []string, error) {
	if !e.IsFitted() {
		return nil, nil, errors.NewNotFittedError("Encoder", "Transform")
	}
	if ds.Len() == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, "Encoder.Transform")
	}

	names := FeatureNames()
	X := mat.NewDense(ds.Len(), len(names), nil)
	labels := make([]string, ds.Len())

	for i, rec := range ds.Records {
		row := map[string]float64{
			dataset.ColAge:            rec.Age,
			dataset.ColWorkExperience: rec.WorkExperience,
			dataset.ColFamilySize:     rec.FamilySize,
			dataset.ColSpendingScore:  float64(rec.SpendingScore),
		}
		for _, col := range nominalColumns {
			code, ok := e.levels[col.name][col.value(rec)]
			if !ok {
				return nil, nil, errors.NewValueError("Encoder.Transform",
					"unseen level "+col.value(rec)+" in column "+col.name)
			}
			row[col.name] = code
		}

		for j, name := range names {
			X.Set(i, j, row[name])
		}
		labels[i] = rec.Segmentation
	}
	return X, labels, nil
}

// FitTransform fits the level maps on ds and encodes the same ds.
func (e *Encoder) FitTransform(ds *dataset.Dataset) (*mat.Dense, []string, error) {
	if err := e.Fit(ds); err != nil {
		return nil, nil, err
	}
	return e.Transform(ds)
}
