// Package kernel implements the block-matching pixel primitives: SAD,
// variance, MSE, AC energy and bidirectional MSE at block widths 16, 8 and
// 4. Each has a scalar reference implementation, callable directly by name
// for testing, and a portable-SIMD implementation selected by Init. Every
// backend must agree with the scalar reference on every input except SAD
// early-exit, where a dispatched kernel may return any value >= earlyExit
// once the true sum would meet or exceed it.
package kernel

// SAD16Scalar returns the sum of absolute differences between a 16xbh
// block of cur starting at curIdx and a 16xbh block of ref starting at
// refIdx, each row stride samples apart. If earlyExit > 0 and the running
// sum reaches or exceeds it, the scalar reference still completes the true
// sum (it is the ground truth other backends are checked against).
func SAD16Scalar(cur, ref []byte, curIdx, refIdx, stride, bh, earlyExit int) int {
	return sadScalar(16, cur, ref, curIdx, refIdx, stride, bh, earlyExit)
}

// SAD8Scalar is SAD16Scalar for an 8xbh block.
func SAD8Scalar(cur, ref []byte, curIdx, refIdx, stride, bh, earlyExit int) int {
	return sadScalar(8, cur, ref, curIdx, refIdx, stride, bh, earlyExit)
}

// SAD4Scalar is SAD16Scalar for a 4xbh block.
func SAD4Scalar(cur, ref []byte, curIdx, refIdx, stride, bh, earlyExit int) int {
	return sadScalar(4, cur, ref, curIdx, refIdx, stride, bh, earlyExit)
}

func sadScalar(bw int, cur, ref []byte, curIdx, refIdx, stride, bh, earlyExit int) int {
	sum := 0
	for y := 0; y < bh; y++ {
		co := curIdx + y*stride
		ro := refIdx + y*stride
		for x := 0; x < bw; x++ {
			d := int(cur[co+x]) - int(ref[ro+x])
			if d < 0 {
				d = -d
			}
			sum += d
		}
	}
	return sum
}

// Variance16Scalar returns the mean-centered second moment of a 16xbh block
// of buf starting at idx: sum(x^2) - round((sum(x))^2, n), n = 16*bh,
// rounded-division by n with round = n/2. The result is clamped to be
// non-negative, since integer rounding of the DC term can otherwise tip it
// slightly negative for near-constant blocks.
func Variance16Scalar(buf []byte, idx, stride, bh int) int {
	return varianceScalar(16, buf, idx, stride, bh)
}

// Variance8Scalar is Variance16Scalar for an 8xbh block.
func Variance8Scalar(buf []byte, idx, stride, bh int) int {
	return varianceScalar(8, buf, idx, stride, bh)
}

// Variance4Scalar is Variance16Scalar for a 4xbh block.
func Variance4Scalar(buf []byte, idx, stride, bh int) int {
	return varianceScalar(4, buf, idx, stride, bh)
}

func varianceScalar(bw int, buf []byte, idx, stride, bh int) int {
	sum, sumSq := 0, 0
	for y := 0; y < bh; y++ {
		o := idx + y*stride
		for x := 0; x < bw; x++ {
			v := int(buf[o+x])
			sum += v
			sumSq += v * v
		}
	}
	n := bw * bh
	round := n / 2
	dc := (sum*sum + round) / n
	v := sumSq - dc
	if v < 0 {
		v = 0
	}
	return v
}

// MSE16Scalar returns the sum of squared differences between a 16xbh block
// of cur and ref.
func MSE16Scalar(cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	sum, _ := mseAndSum(16, cur, ref, curIdx, refIdx, stride, bh)
	return sum
}

// MSE8Scalar is MSE16Scalar for an 8xbh block.
func MSE8Scalar(cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	sum, _ := mseAndSum(8, cur, ref, curIdx, refIdx, stride, bh)
	return sum
}

// MSE4Scalar is MSE16Scalar for a 4xbh block.
func MSE4Scalar(cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	sum, _ := mseAndSum(4, cur, ref, curIdx, refIdx, stride, bh)
	return sum
}

func mseAndSum(bw int, cur, ref []byte, curIdx, refIdx, stride, bh int) (sumSq, sum int) {
	for y := 0; y < bh; y++ {
		co := curIdx + y*stride
		ro := refIdx + y*stride
		for x := 0; x < bw; x++ {
			d := int(cur[co+x]) - int(ref[ro+x])
			sum += d
			sumSq += d * d
		}
	}
	return sumSq, sum
}

// ACEnergy16Scalar returns the residual energy of a 16xbh block after
// subtracting the DC term: sum(d^2) - round((sum(d))^2, n), d = cur - ref.
func ACEnergy16Scalar(cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	return acEnergyScalar(16, cur, ref, curIdx, refIdx, stride, bh)
}

// ACEnergy8Scalar is ACEnergy16Scalar for an 8xbh block.
func ACEnergy8Scalar(cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	return acEnergyScalar(8, cur, ref, curIdx, refIdx, stride, bh)
}

// ACEnergy4Scalar is ACEnergy16Scalar for a 4xbh block.
func ACEnergy4Scalar(cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	return acEnergyScalar(4, cur, ref, curIdx, refIdx, stride, bh)
}

func acEnergyScalar(bw int, cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	sumSq, sum := mseAndSum(bw, cur, ref, curIdx, refIdx, stride, bh)
	n := bw * bh
	round := n / 2
	dc := (sum*sum + round) / n
	ac := sumSq - dc
	if ac < 0 {
		ac = 0
	}
	return ac
}

// BidirMSE16Scalar interpolates pred[y,x] = (ref1*tdY + ref2*tdX + 16384)
// >> 15 over a 16xbh block and returns sum((pred-cur)^2).
func BidirMSE16Scalar(cur, ref1, ref2 []byte, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX int) int {
	return bidirMSEScalar(16, cur, ref1, ref2, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX)
}

// BidirMSE8Scalar is BidirMSE16Scalar for an 8xbh block.
func BidirMSE8Scalar(cur, ref1, ref2 []byte, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX int) int {
	return bidirMSEScalar(8, cur, ref1, ref2, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX)
}

// BidirMSE4Scalar is BidirMSE16Scalar for a 4xbh block.
func BidirMSE4Scalar(cur, ref1, ref2 []byte, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX int) int {
	return bidirMSEScalar(4, cur, ref1, ref2, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX)
}

func bidirMSEScalar(bw int, cur, ref1, ref2 []byte, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX int) int {
	sum := 0
	for y := 0; y < bh; y++ {
		co := curIdx + y*stride
		r1o := ref1Idx + y*stride
		r2o := ref2Idx + y*stride
		for x := 0; x < bw; x++ {
			pred := (int(ref1[r1o+x])*tdY + int(ref2[r2o+x])*tdX + 16384) >> 15
			d := pred - int(cur[co+x])
			sum += d * d
		}
	}
	return sum
}
