package kernel

import (
	"math/rand"
	"testing"
)

func randBlock(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)
	r.Read(buf)
	return buf
}

func TestSADPortableMatchesScalar(t *testing.T) {
	const stride, bh = 24, 16
	cur := randBlock(stride*bh, 1)
	ref := randBlock(stride*bh, 2)

	for _, bw := range []int{16, 8, 4} {
		var scalar, portable func([]byte, []byte, int, int, int, int, int) int
		switch bw {
		case 16:
			scalar, portable = SAD16Scalar, sad16Portable
		case 8:
			scalar, portable = SAD8Scalar, sad8Portable
		case 4:
			scalar, portable = SAD4Scalar, sad4Portable
		}
		want := scalar(cur, ref, 0, 0, stride, bh, 0)
		got := portable(cur, ref, 0, 0, stride, bh, 0)
		if got != want {
			t.Errorf("bw=%d: portable SAD %d != scalar SAD %d", bw, got, want)
		}
	}
}

func TestSADEarlyExitNeverUndershoots(t *testing.T) {
	const stride, bh = 20, 16
	cur := randBlock(stride*bh, 3)
	ref := randBlock(stride*bh, 4)

	full := SAD16Scalar(cur, ref, 0, 0, stride, bh, 0)
	early := sad16Portable(cur, ref, 0, 0, stride, bh, full/2)
	if early < full/2 {
		t.Errorf("early-exit SAD %d undershoots the early-exit threshold %d (true sum %d)", early, full/2, full)
	}
}

func TestMSEAndACEnergyPortableMatchScalar(t *testing.T) {
	const stride, bh = 20, 16
	cur := randBlock(stride*bh, 5)
	ref := randBlock(stride*bh, 6)

	for _, bw := range []int{16, 8, 4} {
		var mseScalar, acScalar, mseP, acP func([]byte, []byte, int, int, int, int) int
		switch bw {
		case 16:
			mseScalar, acScalar, mseP, acP = MSE16Scalar, ACEnergy16Scalar, mse16Portable, acEnergy16Portable
		case 8:
			mseScalar, acScalar, mseP, acP = MSE8Scalar, ACEnergy8Scalar, mse8Portable, acEnergy8Portable
		case 4:
			mseScalar, acScalar, mseP, acP = MSE4Scalar, ACEnergy4Scalar, mse4Portable, acEnergy4Portable
		}
		if got, want := mseP(cur, ref, 0, 0, stride, bh), mseScalar(cur, ref, 0, 0, stride, bh); got != want {
			t.Errorf("bw=%d: portable MSE %d != scalar MSE %d", bw, got, want)
		}
		if got, want := acP(cur, ref, 0, 0, stride, bh), acScalar(cur, ref, 0, 0, stride, bh); got != want {
			t.Errorf("bw=%d: portable AC energy %d != scalar AC energy %d", bw, got, want)
		}
	}
}

func TestBidirMSEPortableMatchesScalar(t *testing.T) {
	const stride, bh = 20, 16
	cur := randBlock(stride*bh, 7)
	ref1 := randBlock(stride*bh, 8)
	ref2 := randBlock(stride*bh, 9)
	tdY, tdX := 16384, 16384

	want := BidirMSE16Scalar(cur, ref1, ref2, 0, 0, 0, stride, bh, tdY, tdX)
	got := bidirMSE16Portable(cur, ref1, ref2, 0, 0, 0, stride, bh, tdY, tdX)
	if got != want {
		t.Errorf("portable bidir MSE %d != scalar bidir MSE %d", got, want)
	}
}

func TestVarianceConstantBlockIsZero(t *testing.T) {
	buf := make([]byte, 16*16)
	for i := range buf {
		buf[i] = 100
	}
	if v := Variance16Scalar(buf, 0, 16, 16); v != 0 {
		t.Errorf("Variance16Scalar of a constant block = %d, want 0", v)
	}
}

func TestVarianceNonNegative(t *testing.T) {
	buf := randBlock(16*16, 11)
	if v := Variance16Scalar(buf, 0, 16, 16); v < 0 {
		t.Errorf("Variance16Scalar = %d, want >= 0", v)
	}
}

func TestInitSelectsAConsistentBackend(t *testing.T) {
	Init()
	if Active.Backend != BackendScalar && Active.Backend != BackendPortableSIMD {
		t.Errorf("Init selected an unknown backend %v", Active.Backend)
	}
	if Active.SAD16 == nil || Active.Variance16 == nil || Active.MSE16 == nil {
		t.Error("Init left a nil kernel function in the active table")
	}
}
