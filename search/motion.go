package search

import (
	"github.com/cosmin/motion-search/frame"
	"github.com/cosmin/motion-search/kernel"
	"github.com/cosmin/motion-search/mvfield"
)

func median3(a, b, c int32) int32 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return b
}

// predictorMV is the median-of-3 motion vector predictor of 4.4.2: the
// median, component-wise, of the MVs already stored at (i-1,j), (i,j-1)
// and (i+1,j-1). Raster-order processing guarantees all three are already
// set (the guard border supplies (0,0) where they fall outside the grid),
// so this never needs a bounds check.
func predictorMV(field *mvfield.Field, i, j int) mvfield.MV {
	left := field.At(i-1, j).MV
	top := field.At(i, j-1).MV
	topRight := field.At(i+1, j-1).MV
	return mvfield.MV{
		X: median3(left.X, top.X, topRight.X),
		Y: median3(left.Y, top.Y, topRight.Y),
	}
}

// clampMV keeps a candidate motion vector addressable within ref's padded
// bounds for the macroblock at (i,j): the predictor chain can in principle
// drift across many frames, but the plane itself only ever offers HPad/VPad
// samples of padding around the visible area.
func clampMV(ref *frame.PaddedPlane, i, j int, mv mvfield.MV) mvfield.MV {
	x0, y0 := i*frame.MBSize, j*frame.MBSize
	minX, maxX := int32(-ref.HPad-x0), int32(ref.Width+ref.HPad-frame.MBSize-x0)
	minY, maxY := int32(-ref.VPad-y0), int32(ref.Height+ref.VPad-frame.MBSize-y0)
	if mv.X < minX {
		mv.X = minX
	} else if mv.X > maxX {
		mv.X = maxX
	}
	if mv.Y < minY {
		mv.Y = minY
	} else if mv.Y > maxY {
		mv.Y = maxY
	}
	return mv
}

// fullSearchRefine performs the integer full search of 4.4.2 within
// +/-Range samples of predictor, pruned by early-exit SAD, followed by one
// diamond refinement step. It returns the winning motion vector and its
// SAD against ref.
func fullSearchRefine(cur, ref *frame.PaddedPlane, i, j int, predictor mvfield.MV) (best mvfield.MV, bestSAD int) {
	stride := cur.Stride
	curIdx := cur.Index(i*frame.MBSize, j*frame.MBSize)
	predictor = clampMV(ref, i, j, predictor)

	best = predictor
	bestSAD = -1
	for dy := -int32(Range); dy <= Range; dy++ {
		for dx := -int32(Range); dx <= Range; dx++ {
			mv := clampMV(ref, i, j, mvfield.MV{X: predictor.X + dx, Y: predictor.Y + dy})
			refIdx := ref.Index(i*frame.MBSize+int(mv.X), j*frame.MBSize+int(mv.Y))
			exit := 0
			if bestSAD >= 0 {
				exit = bestSAD
			}
			sad := kernel.Active.SAD16(cur.Pixels(), ref.Pixels(), curIdx, refIdx, stride, frame.MBSize, exit)
			if bestSAD < 0 || sad < bestSAD {
				bestSAD = sad
				best = mv
			}
		}
	}

	// Diamond refinement: one step of (+-1,0),(0,+-1) around the winner.
	type step struct{ dx, dy int32 }
	for _, s := range [...]step{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		mv := clampMV(ref, i, j, mvfield.MV{X: best.X + s.dx, Y: best.Y + s.dy})
		refIdx := ref.Index(i*frame.MBSize+int(mv.X), j*frame.MBSize+int(mv.Y))
		sad := kernel.Active.SAD16(cur.Pixels(), ref.Pixels(), curIdx, refIdx, stride, frame.MBSize, bestSAD)
		if sad < bestSAD {
			bestSAD = sad
			best = mv
		}
	}
	return best, bestSAD
}

// mseAt returns the MSE of the macroblock at (i,j) in cur against ref at
// the given motion vector.
func mseAt(cur, ref *frame.PaddedPlane, i, j int, mv mvfield.MV) int {
	stride := cur.Stride
	curIdx := cur.Index(i*frame.MBSize, j*frame.MBSize)
	refIdx := ref.Index(i*frame.MBSize+int(mv.X), j*frame.MBSize+int(mv.Y))
	return kernel.Active.MSE16(cur.Pixels(), ref.Pixels(), curIdx, refIdx, stride, frame.MBSize)
}
