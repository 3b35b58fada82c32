package preprocessing

import "gonum.org/v1/gonum/mat"

// ExtractColumns copies the given columns of X into a new matrix, preserving
// row order.
func ExtractColumns(X *mat.Dense, cols []int) *mat.Dense {
	r, _ := X.Dims()
	out := mat.NewDense(r, len(cols), nil)
	for i := 0; i < r; i++ {
		for j, col := range cols {
			out.Set(i, j, X.At(i, col))
		}
	}
	return out
}

// SetColumns writes V back into the given columns of X.
func SetColumns(X *mat.Dense, cols []int, V mat.Matrix) {
	r, _ := V.Dims()
	for i := 0; i < r; i++ {
		for j, col := range cols {
			X.Set(i, col, V.At(i, j))
		}
	}
}
