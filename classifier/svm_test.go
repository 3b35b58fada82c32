package classifier

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// threeClusterFixture returns well-separated 2D clusters. The first row is a
// "C" record so the backend's internal label order differs from the sorted
// class order.
func threeClusterFixture() (*mat.Dense, []string) {
	var data []float64
	var y []string

	clusters := []struct {
		label  string
		cx, cy float64
	}{
		{"C", 10, 10},
		{"A", 0, 0},
		{"B", 0, 10},
	}
	offsets := [][2]float64{
		{0, 0}, {0.3, 0.1}, {-0.2, 0.4}, {0.1, -0.3},
		{0.4, 0.2}, {-0.3, -0.1}, {0.2, 0.3}, {-0.1, 0.2},
	}
	for _, cl := range clusters {
		for _, off := range offsets {
			data = append(data, cl.cx+off[0], cl.cy+off[1])
			y = append(y, cl.label)
		}
	}
	return mat.NewDense(len(y), 2, data), y
}

func TestSVMPredictProba(t *testing.T) {
	X, y := threeClusterFixture()

	svm := NewSVM(testConfig())
	if err := svm.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	classes := svm.Classes()
	if len(classes) != 3 {
		t.Fatalf("Classes() = %v, want 3 classes", classes)
	}
	for i := 1; i < len(classes); i++ {
		if classes[i] <= classes[i-1] {
			t.Fatalf("Classes() = %v, want ascending order", classes)
		}
	}

	probs, err := svm.PredictProba(X)
	if err != nil {
		t.Fatalf("PredictProba failed: %v", err)
	}

	r, c := probs.Dims()
	rows, _ := X.Dims()
	if r != rows || c != len(classes) {
		t.Fatalf("probability matrix is %dx%d, want %dx%d", r, c, rows, len(classes))
	}

	for i := 0; i < r; i++ {
		sum := 0.0
		for j := 0; j < c; j++ {
			p := probs.At(i, j)
			if p < 0 || p > 1 {
				t.Fatalf("probability out of range at (%d,%d): %g", i, j, p)
			}
			sum += p
		}
		if math.Abs(sum-1) > 1e-6 {
			t.Errorf("row %d probabilities sum to %g, want 1", i, sum)
		}
	}

	// Columns must line up with Classes(): for every training point the
	// highest-probability column must name its own cluster. The clusters
	// are far apart, so anything else means the column remapping is wrong.
	for i := 0; i < r; i++ {
		best := 0
		for j := 1; j < c; j++ {
			if probs.At(i, j) > probs.At(i, best) {
				best = j
			}
		}
		if classes[best] != y[i] {
			t.Errorf("row %d: highest-probability column is %s, want %s", i, classes[best], y[i])
		}
	}
}

func TestSVMPredictProbaBeforeFit(t *testing.T) {
	svm := NewSVM(testConfig())
	_, err := svm.PredictProba(mat.NewDense(1, 2, []float64{1, 2}))
	if err == nil {
		t.Fatal("expected NotFittedError before Fit")
	}
	var nfErr *errors.NotFittedError
	if !errors.As(err, &nfErr) {
		t.Errorf("expected *NotFittedError, got %T: %v", err, err)
	}
}

func TestSVMPredictProbaShapeCheck(t *testing.T) {
	X, y := threeClusterFixture()
	svm := NewSVM(testConfig())
	if err := svm.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	_, err := svm.PredictProba(mat.NewDense(1, 3, []float64{1, 2, 3}))
	if err == nil {
		t.Fatal("expected error for wrong feature count")
	}
	var shapeErr *errors.ShapeMismatchError
	if !errors.As(err, &shapeErr) {
		t.Errorf("expected *ShapeMismatchError, got %T: %v", err, err)
	}
}
