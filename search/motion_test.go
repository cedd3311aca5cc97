package search

import (
	"testing"

	"github.com/cosmin/motion-search/frame"
	"github.com/cosmin/motion-search/mvfield"
)

func TestMedian3(t *testing.T) {
	cases := []struct {
		a, b, c, want int32
	}{
		{1, 2, 3, 2},
		{3, 2, 1, 2},
		{2, 2, 2, 2},
		{-5, 0, 5, 0},
		{5, 5, 1, 5},
	}
	for _, c := range cases {
		if got := median3(c.a, c.b, c.c); got != c.want {
			t.Errorf("median3(%d,%d,%d) = %d, want %d", c.a, c.b, c.c, got, c.want)
		}
	}
}

func TestPredictorMVUsesGuardBorderOnFirstRowCol(t *testing.T) {
	f := mvfield.NewField(4, 4)
	f.Reset()
	// With every neighbor defaulted to (0,0) from Reset, the predictor at
	// the top-left macroblock must be (0,0) too, with no bounds panic.
	mv := predictorMV(f, 0, 0)
	if mv != (mvfield.MV{}) {
		t.Errorf("predictorMV at (0,0) = %+v, want zero", mv)
	}
}

func TestPredictorMVTakesMedianOfNeighbors(t *testing.T) {
	f := mvfield.NewField(4, 4)
	f.Reset()
	f.At(0, 1).MV = mvfield.MV{X: 1, Y: 1}  // left of (1,1)... actually left neighbor of (1,1) is (0,1)
	f.At(1, 0).MV = mvfield.MV{X: 5, Y: 5}  // top neighbor of (1,1)
	f.At(2, 0).MV = mvfield.MV{X: 3, Y: 3}  // top-right neighbor of (1,1)
	mv := predictorMV(f, 1, 1)
	if mv.X != 3 || mv.Y != 3 {
		t.Errorf("predictorMV(1,1) = %+v, want median (3,3)", mv)
	}
}

func TestClampMVKeepsCandidateWithinPadding(t *testing.T) {
	dim := frame.Dim{Width: 32, Height: 32}
	plane := frame.NewPaddedPlane(dim.Width, dim.Height, 8, 8)
	mv := clampMV(plane, 0, 0, mvfield.MV{X: -1000, Y: 1000})
	if mv.X < -8 || mv.X > int32(plane.Width+plane.HPad-frame.MBSize) {
		t.Errorf("clampMV did not bound X: got %d", mv.X)
	}
	if mv.Y > int32(plane.Height+plane.VPad-frame.MBSize) {
		t.Errorf("clampMV did not bound Y: got %d", mv.Y)
	}
}

func TestFullSearchRefineFindsExactMatch(t *testing.T) {
	dim := frame.Dim{Width: 32, Height: 32}
	cur := frame.NewPaddedPlane(dim.Width, dim.Height, 32, 32)
	ref := frame.NewPaddedPlane(dim.Width, dim.Height, 32, 32)

	// Fill ref with a non-linear pattern, then build cur as ref shifted by
	// (3, -2), so the only zero-SAD match in the window is that exact
	// displacement (a linear gradient would also match along a whole line
	// of other displacements).
	for y := -32; y < dim.Height+32; y++ {
		for x := -32; x < dim.Width+32; x++ {
			ref.Set(x, y, byte((x*x+3*y*y+x*y)&0xff))
		}
	}
	for y := 0; y < dim.Height; y++ {
		for x := 0; x < dim.Width; x++ {
			cur.Set(x, y, ref.At(x+3, y-2))
		}
	}

	mv, sad := fullSearchRefine(cur, ref, 0, 0, mvfield.MV{})
	if sad != 0 {
		t.Errorf("fullSearchRefine SAD = %d, want 0 at the true displacement", sad)
	}
	if mv.X != 3 || mv.Y != -2 {
		t.Errorf("fullSearchRefine MV = %+v, want (3,-2)", mv)
	}
}
