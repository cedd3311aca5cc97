package search

import (
	"github.com/cosmin/motion-search/frame"
	"github.com/cosmin/motion-search/kernel"
)

const (
	predTop = iota
	predLeft
	predDC
)

// buildIntraPredictor writes a 16x16 predicted block into scratch at the
// same linear offsets the real block occupies in plane, so kernel SAD/MSE
// can compare the two with a single shared stride. kind selects the
// neighbor: the row immediately above the block, the column immediately
// to its left, or the flat DC value. Reading one row/column short of the
// block's top-left corner is always safe, even at the frame edge, because
// planes are replicate-padded before search runs (4.2): row -1 already
// equals row 0, column -1 already equals column 0.
func buildIntraPredictor(plane *frame.PaddedPlane, i, j, kind int, scratch []byte) {
	stride := plane.Stride
	x0, y0 := i*frame.MBSize, j*frame.MBSize
	base := plane.Index(x0, y0)
	switch kind {
	case predTop:
		rowStart := plane.Index(x0, y0-1)
		row := plane.Pixels()[rowStart : rowStart+frame.MBSize]
		for r := 0; r < frame.MBSize; r++ {
			copy(scratch[base+r*stride:base+r*stride+frame.MBSize], row)
		}
	case predLeft:
		for r := 0; r < frame.MBSize; r++ {
			v := plane.At(x0-1, y0+r)
			dst := scratch[base+r*stride : base+r*stride+frame.MBSize]
			for c := range dst {
				dst[c] = v
			}
		}
	case predDC:
		for r := 0; r < frame.MBSize; r++ {
			dst := scratch[base+r*stride : base+r*stride+frame.MBSize]
			for c := range dst {
				dst[c] = DCPredictor
			}
		}
	}
}

// bestIntra returns the lowest-SAD intra prediction for macroblock (i,j):
// the minimum over the top-neighbor, left-neighbor and DC predictors, the
// MSE of that winning predictor, and the block's own 16x16 variance.
func bestIntra(plane *frame.PaddedPlane, i, j int, scratch []byte) (sad, mse, variance int) {
	base := plane.Index(i*frame.MBSize, j*frame.MBSize)
	stride := plane.Stride
	variance = kernel.Active.Variance16(plane.Pixels(), base, stride, frame.MBSize)

	bestSAD := -1
	bestMSE := 0
	for _, kind := range [...]int{predTop, predLeft, predDC} {
		buildIntraPredictor(plane, i, j, kind, scratch)
		s := kernel.Active.SAD16(plane.Pixels(), scratch, base, base, stride, frame.MBSize, 0)
		if bestSAD < 0 || s < bestSAD {
			bestSAD = s
			bestMSE = kernel.Active.MSE16(plane.Pixels(), scratch, base, base, stride, frame.MBSize)
		}
	}
	return bestSAD, bestMSE, variance
}
