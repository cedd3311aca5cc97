package search

import (
	"github.com/cosmin/motion-search/frame"
	"github.com/cosmin/motion-search/kernel"
	"github.com/cosmin/motion-search/mvfield"
)

// bidirWeights returns the normalized (td_y, td_x) interpolation weights of
// 4.4.3: (td_bwd, td_fwd) * 32768 / (td_fwd + td_bwd), integer-rounded.
func bidirWeights(tdFwd, tdBwd int) (tdY, tdX int) {
	sum := tdFwd + tdBwd
	half := sum / 2
	tdY = (tdBwd*32768 + half) / sum
	tdX = (tdFwd*32768 + half) / sum
	return tdY, tdX
}

// PredictBidirectional implements the B-picture search (4.4.3): for every
// macroblock, independent forward and backward motion searches (each as in
// 4.4.2, using fwdField/bwdField purely for predictor continuity across the
// raster scan), then a four-way mode decision among intra, forward-only,
// backward-only and the weighted bidirectional interpolation. Ties are
// broken in listed order (intra > fwd > bwd > bi): later candidates must
// strictly beat the current best to replace it. It resets field,
// fwdField and bwdField, fills field, and returns the frame's error_sum.
func PredictBidirectional(field *mvfield.Field, cur, fwd, bwd *frame.YUVFrame, fwdField, bwdField *mvfield.Field, aux *Aux) int {
	field.Reset()
	fwdField.Reset()
	bwdField.Reset()
	scratch := make([]byte, len(cur.Y.Pixels()))

	// Temporal distances are unsigned: a B picture coded against an anchor
	// that precedes it on both sides (a truncated subGOP) still gets
	// positive, equal weights.
	tdFwd := cur.SequenceIndex - fwd.SequenceIndex
	if tdFwd < 0 {
		tdFwd = -tdFwd
	}
	tdBwd := bwd.SequenceIndex - cur.SequenceIndex
	if tdBwd < 0 {
		tdBwd = -tdBwd
	}
	tdY, tdX := bidirWeights(tdFwd, tdBwd)

	errorSum := 0
	for j := 0; j < field.MBRows; j++ {
		for i := 0; i < field.MBCols; i++ {
			predFwd := predictorMV(fwdField, i, j)
			fwdMV, fwdSAD := fullSearchRefine(cur.Y, fwd.Y, i, j, predFwd)
			fwdField.Set(i, j, mvfield.Cell{Mode: mvfield.ModeInterP, MV: fwdMV, SAD: fwdSAD})

			predBwd := predictorMV(bwdField, i, j)
			bwdMV, bwdSAD := fullSearchRefine(cur.Y, bwd.Y, i, j, predBwd)
			bwdField.Set(i, j, mvfield.Cell{Mode: mvfield.ModeInterP, MV: bwdMV, SAD: bwdSAD})

			sadIntra, mseIntra, variance := bestIntra(cur.Y, i, j, scratch)

			dmvFwd := fwdMV.Sub(predFwd)
			mseFwd := mseAt(cur.Y, fwd.Y, i, j, fwdMV)
			costFwd := fwdSAD + Lambda*mvBitsProxy(dmvFwd.X, dmvFwd.Y)

			dmvBwd := bwdMV.Sub(predBwd)
			mseBwd := mseAt(cur.Y, bwd.Y, i, j, bwdMV)
			costBwd := bwdSAD + Lambda*mvBitsProxy(dmvBwd.X, dmvBwd.Y)

			mseBi := bidirMSEAt(cur.Y, fwd.Y, bwd.Y, i, j, fwdMV, bwdMV, tdY, tdX)
			costBi := mseBi + Lambda*(mvBitsProxy(dmvFwd.X, dmvFwd.Y)+mvBitsProxy(dmvBwd.X, dmvBwd.Y))

			bestMode := mvfield.ModeIntra
			bestCost := sadIntra
			bestMSE := mseIntra
			bestMV := mvfield.MV{}
			bestBits := phi(variance, mseIntra)

			if costFwd < bestCost {
				bestMode, bestCost, bestMSE, bestMV = mvfield.ModeInterP, costFwd, mseFwd, fwdMV
				bestBits = phi(variance, mseFwd) + mvBitsProxy(dmvFwd.X, dmvFwd.Y)
			}
			if costBwd < bestCost {
				bestMode, bestCost, bestMSE, bestMV = mvfield.ModeInterP, costBwd, mseBwd, bwdMV
				bestBits = phi(variance, mseBwd) + mvBitsProxy(dmvBwd.X, dmvBwd.Y)
			}
			if costBi < bestCost {
				bestMode, bestMSE, bestMV = mvfield.ModeInterB, mseBi, mvfield.MV{}
				bestBits = phi(variance, mseBi) + mvBitsProxy(dmvFwd.X, dmvFwd.Y) + mvBitsProxy(dmvBwd.X, dmvBwd.Y)
			}

			field.Set(i, j, mvfield.Cell{Mode: bestMode, MV: bestMV, SAD: bestCost, Bits: bestBits})
			aux.set(field, i, j, variance, bestMSE)
			errorSum += bestMSE
		}
	}
	return errorSum
}

func bidirMSEAt(cur, fwdPlane, bwdPlane *frame.PaddedPlane, i, j int, fwdMV, bwdMV mvfield.MV, tdY, tdX int) int {
	stride := cur.Stride
	curIdx := cur.Index(i*frame.MBSize, j*frame.MBSize)
	fwdIdx := fwdPlane.Index(i*frame.MBSize+int(fwdMV.X), j*frame.MBSize+int(fwdMV.Y))
	bwdIdx := bwdPlane.Index(i*frame.MBSize+int(bwdMV.X), j*frame.MBSize+int(bwdMV.Y))
	return kernel.Active.BidirMSE16(cur.Pixels(), fwdPlane.Pixels(), bwdPlane.Pixels(), curIdx, fwdIdx, bwdIdx, stride, frame.MBSize, tdY, tdX)
}
