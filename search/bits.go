package search

import stdbits "math/bits"

// The bit-proxy formula and its constants are implementation-internal but
// frozen: any change alters every bit sum ever produced by this analyzer,
// breaking property 6 (determinism across versions rather than within one
// run). phiVarianceWeight, phiMSEWeight, phiBaseBits, mvBitsBase and
// WeightI/WeightP/WeightB, together with Range and Lambda in lambda.go, are
// the full set of frozen constants this implementation publishes per the
// bit-proxy design note.
const (
	phiVarianceWeight = 3
	phiMSEWeight      = 5
	phiBaseBits       = 8

	mvBitsBase = 4
)

// log2i is the integer floor(log2(x)) used by the bit-proxy formula, via
// leading-zero count rather than floating point, so the proxy never depends
// on a rounding mode. log2i(0) is defined as 0.
func log2i(x int) int {
	if x <= 0 {
		return 0
	}
	return stdbits.Len(uint(x)) - 1
}

// phi is the integer bit-cost proxy for a macroblock: a·log2(variance+1) +
// b·log2(mse+1) + c, computed identically regardless of which predictor
// produced variance/mse so that per-frame bit sums stay comparable and
// reproducible.
func phi(variance, mse int) int {
	return phiVarianceWeight*log2i(variance+1) + phiMSEWeight*log2i(mse+1) + phiBaseBits
}

// mvBitsProxy is the integer bit cost of coding a motion-vector delta from
// its predictor: cheap for (0,0), growing with log2 of each component's
// magnitude, mirroring an exp-Golomb-coded MV delta without implementing
// one.
func mvBitsProxy(dx, dy int32) int {
	return 2*(log2i(absI32(dx)+1)+log2i(absI32(dy)+1)) + mvBitsBase
}

func absI32(x int32) int {
	if x < 0 {
		return int(-x)
	}
	return int(x)
}

// weightShift applies the per-picture-type QP-step approximation to a raw
// bit sum: (bits * weight + 128) >> 8. I pictures use the lowest QP and so
// carry the most bits per the formula's weighting.
func weightShift(bits, weight int) int {
	return (bits*weight + 128) >> 8
}

// Picture-type bit weights, frozen alongside the rest of the proxy.
const (
	WeightI = 282
	WeightP = 269
	WeightB = 256
)

// WeightShift is the exported form of weightShift, used by the analyzer to
// turn a frame's raw Field.Bits() into the type-weighted bit proxy of
// 4.4.4.
func WeightShift(bits, weight int) int {
	return weightShift(bits, weight)
}
