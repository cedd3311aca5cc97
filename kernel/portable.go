package kernel

// Portable 4-wide unrolled kernels. These carry no architecture-specific
// assembly; they exist because compilers auto-vectorize a 4-wide unrolled
// loop far more reliably than the straight-line loop in scalar.go, so on
// CPUs with wide integer/vector units this table runs faster while staying
// pure Go. Every width handled here (16, 8, 4) is a multiple of 4, so there
// is no remainder loop.

func sad16Portable(cur, ref []byte, curIdx, refIdx, stride, bh, earlyExit int) int {
	return sadPortable(16, cur, ref, curIdx, refIdx, stride, bh, earlyExit)
}

func sad8Portable(cur, ref []byte, curIdx, refIdx, stride, bh, earlyExit int) int {
	return sadPortable(8, cur, ref, curIdx, refIdx, stride, bh, earlyExit)
}

func sad4Portable(cur, ref []byte, curIdx, refIdx, stride, bh, earlyExit int) int {
	return sadPortable(4, cur, ref, curIdx, refIdx, stride, bh, earlyExit)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sadPortable(bw int, cur, ref []byte, curIdx, refIdx, stride, bh, earlyExit int) int {
	sum := 0
	for y := 0; y < bh; y++ {
		co := curIdx + y*stride
		ro := refIdx + y*stride
		for x := 0; x < bw; x += 4 {
			d0 := abs(int(cur[co+x]) - int(ref[ro+x]))
			d1 := abs(int(cur[co+x+1]) - int(ref[ro+x+1]))
			d2 := abs(int(cur[co+x+2]) - int(ref[ro+x+2]))
			d3 := abs(int(cur[co+x+3]) - int(ref[ro+x+3]))
			sum += d0 + d1 + d2 + d3
		}
		if earlyExit > 0 && sum >= earlyExit {
			return sum
		}
	}
	return sum
}

func mse16Portable(cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	sum, _ := mseAndSumPortable(16, cur, ref, curIdx, refIdx, stride, bh)
	return sum
}

func mse8Portable(cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	sum, _ := mseAndSumPortable(8, cur, ref, curIdx, refIdx, stride, bh)
	return sum
}

func mse4Portable(cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	sum, _ := mseAndSumPortable(4, cur, ref, curIdx, refIdx, stride, bh)
	return sum
}

func mseAndSumPortable(bw int, cur, ref []byte, curIdx, refIdx, stride, bh int) (sumSq, sum int) {
	for y := 0; y < bh; y++ {
		co := curIdx + y*stride
		ro := refIdx + y*stride
		for x := 0; x < bw; x += 4 {
			d0 := int(cur[co+x]) - int(ref[ro+x])
			d1 := int(cur[co+x+1]) - int(ref[ro+x+1])
			d2 := int(cur[co+x+2]) - int(ref[ro+x+2])
			d3 := int(cur[co+x+3]) - int(ref[ro+x+3])
			sum += d0 + d1 + d2 + d3
			sumSq += d0*d0 + d1*d1 + d2*d2 + d3*d3
		}
	}
	return sumSq, sum
}

func acEnergy16Portable(cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	return acEnergyPortable(16, cur, ref, curIdx, refIdx, stride, bh)
}

func acEnergy8Portable(cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	return acEnergyPortable(8, cur, ref, curIdx, refIdx, stride, bh)
}

func acEnergy4Portable(cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	return acEnergyPortable(4, cur, ref, curIdx, refIdx, stride, bh)
}

func acEnergyPortable(bw int, cur, ref []byte, curIdx, refIdx, stride, bh int) int {
	sumSq, sum := mseAndSumPortable(bw, cur, ref, curIdx, refIdx, stride, bh)
	n := bw * bh
	round := n / 2
	dc := (sum*sum + round) / n
	ac := sumSq - dc
	if ac < 0 {
		ac = 0
	}
	return ac
}

func bidirMSE16Portable(cur, ref1, ref2 []byte, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX int) int {
	return bidirMSEPortable(16, cur, ref1, ref2, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX)
}

func bidirMSE8Portable(cur, ref1, ref2 []byte, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX int) int {
	return bidirMSEPortable(8, cur, ref1, ref2, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX)
}

func bidirMSE4Portable(cur, ref1, ref2 []byte, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX int) int {
	return bidirMSEPortable(4, cur, ref1, ref2, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX)
}

func bidirMSEPortable(bw int, cur, ref1, ref2 []byte, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX int) int {
	sum := 0
	for y := 0; y < bh; y++ {
		co := curIdx + y*stride
		r1o := ref1Idx + y*stride
		r2o := ref2Idx + y*stride
		for x := 0; x < bw; x += 4 {
			for k := 0; k < 4; k++ {
				pred := (int(ref1[r1o+x+k])*tdY + int(ref2[r2o+x+k])*tdX + 16384) >> 15
				d := pred - int(cur[co+x+k])
				sum += d * d
			}
		}
	}
	return sum
}
