package kernel

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/cpu"
)

// Backend identifies which kernel implementation Table was built from.
type Backend int

const (
	// BackendScalar is the portable reference implementation in scalar.go.
	BackendScalar Backend = iota
	// BackendPortableSIMD is the 4-wide unrolled implementation in
	// portable.go, selected on CPUs that expose wide integer/vector
	// execution units even though no architecture-specific assembly is
	// used; "portable" because the same Go source serves every GOARCH.
	BackendPortableSIMD
)

func (b Backend) String() string {
	switch b {
	case BackendPortableSIMD:
		return "portable-simd"
	default:
		return "scalar"
	}
}

// SAD is the signature shared by every SAD_N implementation. earlyExit, when
// positive, lets a backend abort once the running sum is certain to reach or
// exceed it; the returned value is then only guaranteed to be >= earlyExit.
type SAD func(cur, ref []byte, curIdx, refIdx, stride, bh, earlyExit int) int

// Variance is the signature shared by every variance_N implementation.
type Variance func(buf []byte, idx, stride, bh int) int

// MSE is the signature shared by every mse_N and ac_energy_N implementation.
type MSE func(cur, ref []byte, curIdx, refIdx, stride, bh int) int

// BidirMSE is the signature shared by every bidir_mse_N implementation.
type BidirMSE func(cur, ref1, ref2 []byte, curIdx, ref1Idx, ref2Idx, stride, bh, tdY, tdX int) int

// Table is a flat table of kernel function pointers for one backend, at
// block widths 16, 8 and 4.
type Table struct {
	Backend Backend

	SAD16, SAD8, SAD4                   SAD
	Variance16, Variance8, Variance4    Variance
	MSE16, MSE8, MSE4                   MSE
	ACEnergy16, ACEnergy8, ACEnergy4     MSE
	BidirMSE16, BidirMSE8, BidirMSE4     BidirMSE
}

// ScalarTable is the scalar reference table. It is exported so tests and
// the dispatch selection logic can compare any other backend against it
// directly, by name.
var ScalarTable = Table{
	Backend:     BackendScalar,
	SAD16:       SAD16Scalar,
	SAD8:        SAD8Scalar,
	SAD4:        SAD4Scalar,
	Variance16:  Variance16Scalar,
	Variance8:   Variance8Scalar,
	Variance4:   Variance4Scalar,
	MSE16:       MSE16Scalar,
	MSE8:        MSE8Scalar,
	MSE4:        MSE4Scalar,
	ACEnergy16:  ACEnergy16Scalar,
	ACEnergy8:   ACEnergy8Scalar,
	ACEnergy4:   ACEnergy4Scalar,
	BidirMSE16:  BidirMSE16Scalar,
	BidirMSE8:   BidirMSE8Scalar,
	BidirMSE4:   BidirMSE4Scalar,
}

var portableTable = Table{
	Backend:     BackendPortableSIMD,
	SAD16:       sad16Portable,
	SAD8:        sad8Portable,
	SAD4:        sad4Portable,
	Variance16:  Variance16Scalar,
	Variance8:   Variance8Scalar,
	Variance4:   Variance4Scalar,
	MSE16:       mse16Portable,
	MSE8:        mse8Portable,
	MSE4:        mse4Portable,
	ACEnergy16:  acEnergy16Portable,
	ACEnergy8:   acEnergy8Portable,
	ACEnergy4:   acEnergy4Portable,
	BidirMSE16:  bidirMSE16Portable,
	BidirMSE8:   bidirMSE8Portable,
	BidirMSE4:   bidirMSE4Portable,
}

// Active is the dispatch table selected by Init. Analyzer code calls
// through Active rather than the per-backend tables directly.
var Active = ScalarTable

func init() {
	Init()
}

// Init probes CPU features and selects the fastest kernel table. It runs
// automatically at process start via init, and is exported so the CLI can
// log the selection and tests can force a re-probe after manipulating
// environment state.
func Init() {
	if cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD {
		Active = portableTable
	} else {
		Active = ScalarTable
	}
	logrus.WithField("backend", Active.Backend).Debug("kernel dispatch table selected")
}
