package search

import (
	"github.com/cosmin/motion-search/frame"
	"github.com/cosmin/motion-search/mvfield"
)

// PredictTemporal implements the P-picture search (4.4.2): for every
// macroblock, a full search plus diamond refinement around the median MV
// predictor, then a mode decision between that inter candidate and the
// intra candidate of 4.4.1. It resets field, fills it, and returns the
// frame's error_sum.
func PredictTemporal(field *mvfield.Field, cur, ref *frame.YUVFrame, aux *Aux) int {
	field.Reset()
	scratch := make([]byte, len(cur.Y.Pixels()))
	errorSum := 0
	for j := 0; j < field.MBRows; j++ {
		for i := 0; i < field.MBCols; i++ {
			predictor := predictorMV(field, i, j)
			mv, sadInter := fullSearchRefine(cur.Y, ref.Y, i, j, predictor)
			mseInter := mseAt(cur.Y, ref.Y, i, j, mv)
			dmv := mv.Sub(predictor)
			interCost := sadInter + Lambda*mvBitsProxy(dmv.X, dmv.Y)

			sadIntra, mseIntra, variance := bestIntra(cur.Y, i, j, scratch)
			intraCost := sadIntra

			var cell mvfield.Cell
			var chosenMSE int
			if intraCost <= interCost {
				chosenMSE = mseIntra
				cell = mvfield.Cell{
					Mode: mvfield.ModeIntra,
					SAD:  sadIntra,
					Bits: phi(variance, mseIntra),
				}
			} else {
				chosenMSE = mseInter
				cell = mvfield.Cell{
					Mode: mvfield.ModeInterP,
					MV:   mv,
					SAD:  sadInter,
					Bits: phi(variance, mseInter) + mvBitsProxy(dmv.X, dmv.Y),
				}
			}
			field.Set(i, j, cell)
			aux.set(field, i, j, variance, chosenMSE)
			errorSum += chosenMSE
		}
	}
	return errorSum
}
