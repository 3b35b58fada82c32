package classifier

import (
	"github.com/sjwhitworth/golearn/base"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// instancesFromMatrix builds a golearn data grid from the numeric design
// matrix. Every feature becomes a float attribute named after its column;
// the class is a categorical attribute. classes must list every label the
// grid may carry, so the class attribute knows the full level set even when
// y is a placeholder at prediction time.
func instancesFromMatrix(X mat.Matrix, y []string, features, classes []string) (*base.DenseInstances, error) {
	r, c := X.Dims()
	if c != len(features) {
		return nil, errors.NewShapeMismatchError("classifier.instancesFromMatrix", len(features), c, 1)
	}
	if len(y) != r {
		return nil, errors.NewShapeMismatchError("classifier.instancesFromMatrix", r, len(y), 0)
	}

	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, 0, c)
	for _, name := range features {
		specs = append(specs, inst.AddAttribute(base.NewFloatAttribute(name)))
	}

	classAttr := new(base.CategoricalAttribute)
	classAttr.SetName("class")
	// Register every class value up front; categorical attributes learn
	// values on first use, and the prediction grid must be able to represent
	// any class the model emits.
	for _, class := range classes {
		classAttr.GetSysValFromString(class)
	}
	classSpec := inst.AddAttribute(classAttr)
	if err := inst.AddClassAttribute(classAttr); err != nil {
		return nil, errors.Wrap(err, "classifier.instancesFromMatrix")
	}

	if err := inst.Extend(r); err != nil {
		return nil, errors.Wrap(err, "classifier.instancesFromMatrix")
	}
	for i := 0; i < r; i++ {
		for j, spec := range specs {
			inst.Set(spec, i, base.PackFloatToBytes(X.At(i, j)))
		}
		inst.Set(classSpec, i, classAttr.GetSysValFromString(y[i]))
	}
	return inst, nil
}

// classesFromPredictions reads the predicted class of every row.
func classesFromPredictions(pred base.FixedDataGrid) []string {
	_, rows := pred.Size()
	out := make([]string, rows)
	for i := 0; i < rows; i++ {
		out[i] = base.GetClass(pred, i)
	}
	return out
}
