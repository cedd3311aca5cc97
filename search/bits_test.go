package search

import "testing"

func TestLog2i(t *testing.T) {
	cases := []struct{ x, want int }{
		{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {255, 7}, {256, 8},
	}
	for _, c := range cases {
		if got := log2i(c.x); got != c.want {
			t.Errorf("log2i(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestPhiIsMonotonicInVarianceAndMSE(t *testing.T) {
	base := phi(0, 0)
	if phi(100, 0) <= base {
		t.Error("phi did not increase with variance")
	}
	if phi(0, 100) <= base {
		t.Error("phi did not increase with MSE")
	}
	if base != phiBaseBits {
		t.Errorf("phi(0,0) = %d, want the base bits constant %d", base, phiBaseBits)
	}
}

func TestMVBitsProxyZeroIsCheapest(t *testing.T) {
	zero := mvBitsProxy(0, 0)
	if zero != mvBitsBase {
		t.Errorf("mvBitsProxy(0,0) = %d, want mvBitsBase %d", zero, mvBitsBase)
	}
	if mvBitsProxy(10, 0) <= zero {
		t.Error("mvBitsProxy did not grow with a nonzero x component")
	}
	if mvBitsProxy(0, -10) <= zero {
		t.Error("mvBitsProxy did not grow with a nonzero (negative) y component")
	}
}

func TestWeightShiftZeroBitsIsZero(t *testing.T) {
	if got := WeightShift(0, WeightI); got != 0 {
		t.Errorf("WeightShift(0, WeightI) = %d, want 0", got)
	}
}

func TestWeightShiftOrdering(t *testing.T) {
	const bits = 1000
	wi := WeightShift(bits, WeightI)
	wp := WeightShift(bits, WeightP)
	wb := WeightShift(bits, WeightB)
	if !(wi >= wp && wp >= wb) {
		t.Errorf("weight ordering broken: I=%d P=%d B=%d, want I>=P>=B", wi, wp, wb)
	}
}

func TestBidirWeightsEqualDistanceIsHalfHalf(t *testing.T) {
	tdY, tdX := bidirWeights(1, 1)
	if tdY != 16384 || tdX != 16384 {
		t.Errorf("bidirWeights(1,1) = (%d,%d), want (16384,16384)", tdY, tdX)
	}
}

func TestBidirWeightsCloserRefGetsMoreWeight(t *testing.T) {
	// fwd distance 1, bwd distance 3: the forward reference is closer, so
	// PredictBidirectional's interpolation gives it the larger weight, tdY
	// (it is paired with the forward plane in kernel.BidirMSE's ref1*tdY
	// term; tdX, paired with the backward plane, is weighted by tdFwd and
	// so comes out smaller here).
	tdY, tdX := bidirWeights(1, 3)
	if tdY <= tdX {
		t.Errorf("bidirWeights(1,3) = (tdY=%d, tdX=%d), want tdY > tdX", tdY, tdX)
	}
}
