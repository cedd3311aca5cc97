package search

import (
	"github.com/cosmin/motion-search/frame"
	"github.com/cosmin/motion-search/mvfield"
)

// PredictSpatial implements the I-picture search (4.4.1): every macroblock
// is coded INTRA against the best of its top/left/DC predictor. It resets
// field, fills it, and returns the frame's error_sum (sum of per-MB MSE).
func PredictSpatial(field *mvfield.Field, cur *frame.YUVFrame, aux *Aux) int {
	field.Reset()
	scratch := make([]byte, len(cur.Y.Pixels()))
	errorSum := 0
	for j := 0; j < field.MBRows; j++ {
		for i := 0; i < field.MBCols; i++ {
			sad, mse, variance := bestIntra(cur.Y, i, j, scratch)
			bits := phi(variance, mse)
			field.Set(i, j, mvfield.Cell{Mode: mvfield.ModeIntra, SAD: sad, Bits: bits})
			aux.set(field, i, j, variance, mse)
			errorSum += mse
		}
	}
	return errorSum
}
