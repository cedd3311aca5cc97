package motionsearch

import (
	"math"
	"testing"
)

func TestClamp01(t *testing.T) {
	cases := []struct{ x, want float64 }{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1},
	}
	for _, c := range cases {
		if got := clamp01(c.x); got != c.want {
			t.Errorf("clamp01(%v) = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestNormalizeAllFieldsAreBounded(t *testing.T) {
	acc := &frameAccum{
		spatialVariance: 1e9,
		motionMagnitude: 1e9,
		acEnergy:        1e9,
		mse:             1e9,
		bitsWeighted:    1 << 30,
	}
	weights := DefaultWeights()
	ns, nm, nr, ne, bpp, sv1, sv2 := normalize(acc, 176*144, 176, 144, weights, ScoreV2)
	for name, v := range map[string]float64{
		"normSpatial": ns, "normMotion": nm, "normResidual": nr, "normError": ne,
		"scoreV1": sv1, "scoreV2": sv2,
	} {
		if v < 0 || v > 1 {
			t.Errorf("%s = %v, want it clamped to [0,1]", name, v)
		}
	}
	if bpp <= 0 {
		t.Errorf("bitsPerPixel = %v, want > 0 for a nonzero weighted bit count", bpp)
	}
}

func TestNormalizeZeroAccumIsZero(t *testing.T) {
	acc := &frameAccum{}
	weights := DefaultWeights()
	ns, nm, nr, ne, bpp, sv1, sv2 := normalize(acc, 176*144, 176, 144, weights, ScoreV1)
	for name, v := range map[string]float64{
		"normSpatial": ns, "normMotion": nm, "normResidual": nr, "normError": ne,
		"bitsPerPixel": bpp, "scoreV1": sv1, "scoreV2": sv2,
	} {
		if v != 0 {
			t.Errorf("%s = %v, want 0 for an all-zero accumulator", name, v)
		}
	}
}

func TestNormalizeScoreV1IsTwiceBitsPerPixel(t *testing.T) {
	acc := &frameAccum{bitsWeighted: 1000}
	weights := DefaultWeights()
	_, _, _, _, bpp, sv1, _ := normalize(acc, 1000, 100, 10, weights, ScoreV1)
	if want := clamp01(2 * bpp); sv1 != want {
		t.Errorf("scoreV1 = %v, want %v (2 * bitsPerPixel, clamped)", sv1, want)
	}
}

func TestNormalizeMotionUsesDiagonal(t *testing.T) {
	acc := &frameAccum{motionMagnitude: 10}
	weights := DefaultWeights()
	diag := 0.1 * math.Sqrt(float64(100*100+100*100))
	_, nm, _, _, _, _, _ := normalize(acc, 100*100, 100, 100, weights, ScoreV1)
	want := clamp01(10 / diag)
	if nm != want {
		t.Errorf("normMotion = %v, want %v", nm, want)
	}
}
