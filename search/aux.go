package search

import "github.com/cosmin/motion-search/mvfield"

// Aux carries the per-macroblock scratch values the search kernels produce
// but mvfield.Cell has no room for: the raw 16x16 luma variance and the
// chosen mode's residual MSE, both needed by the analyzer to compute
// spatial_variance and ac_energy/error_sum (4.4.4). It is laid out with the
// same guard-bordered indexing as the Field it accompanies.
type Aux struct {
	Variance []int
	MSE      []int
}

// NewAux allocates an Aux sized to match field's guard-bordered grid.
func NewAux(field *mvfield.Field) *Aux {
	n := len(field.Cells)
	return &Aux{Variance: make([]int, n), MSE: make([]int, n)}
}

func (a *Aux) set(field *mvfield.Field, i, j, variance, mse int) {
	idx := field.Index(i, j)
	a.Variance[idx] = variance
	a.MSE[idx] = mse
}

// MeanVariance returns the mean of Variance over the field's interior
// (non-guard) macroblocks.
func (a *Aux) MeanVariance(field *mvfield.Field) float64 {
	sum := 0
	for j := 0; j < field.MBRows; j++ {
		for i := 0; i < field.MBCols; i++ {
			sum += a.Variance[field.Index(i, j)]
		}
	}
	n := field.MBCols * field.MBRows
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
