// Package motionsearch is a video complexity analyzer: it simulates the
// motion-estimation front end of a block-based video codec to estimate,
// per frame and per group-of-pictures, how expensive the frame would be to
// compress.
package motionsearch

import (
	"math"

	"github.com/cosmin/motion-search/frame"
	"github.com/cosmin/motion-search/meta"
	"github.com/cosmin/motion-search/mvfield"
	"github.com/cosmin/motion-search/search"
	"github.com/cosmin/motion-search/trace"
	"github.com/sirupsen/logrus"
)

// frameAccum is the internal per-frame accumulator filled while a search
// runs; normalize() turns it into the derived/normalized/score fields of a
// meta.FrameRecord.
type frameAccum struct {
	seqIndex int
	picType  meta.PictureType

	errorSum     int
	bitsRaw      int
	bitsWeighted int

	countIntra, countInterP, countInterB int

	spatialVariance float64
	motionMagnitude float64
	acEnergy        float64
	mse             float64

	mvStats meta.MVStats
}

// Analyzer drives the GOP/subGOP state machine of 4.5: for each input
// picture it runs the matching search (spatial/temporal/bidirectional),
// folds the result into a frame record, and restores display order before
// handing the record list back to the caller.
type Analyzer struct {
	cfg Config
	src FrameSource
	dim frame.Dim

	hpad, vpad int

	// slots is the frame ring: subGOPSize()+1 entries, slot 0 the current
	// anchor, slot subGOPSize() the next anchor, and the slots between
	// them the B pictures of the current subGOP.
	slots []*frame.YUVFrame

	pField    *mvfield.Field
	bOutField *mvfield.Field
	bFwdField *mvfield.Field
	bBwdField *mvfield.Field
	aux       *search.Aux

	nextSeq int

	// traceWriter, when non-nil, receives one WriteMB call per macroblock
	// per frame (3.3). It is a pure side channel: its presence changes no
	// other output.
	traceWriter *trace.Writer
}

// SetTraceWriter attaches an optional per-macroblock trace sink (3.3). Pass
// nil to disable tracing, the default.
func (a *Analyzer) SetTraceWriter(w *trace.Writer) {
	a.traceWriter = w
}

// NewAnalyzer validates cfg and the source's dimensions and allocates the
// frame ring and motion-vector fields.
func NewAnalyzer(src FrameSource, cfg Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := src.Dim()
	dim := frame.Dim{Width: w, Height: h}
	if err := dim.Validate(); err != nil {
		return nil, wrapError(KindInvalidConfig, err)
	}

	a := &Analyzer{
		cfg:  cfg,
		src:  src,
		dim:  dim,
		hpad: frame.DefaultHPad,
		vpad: frame.DefaultVPad,
	}

	slotCount := cfg.SubGOPSize() + 1
	a.slots = make([]*frame.YUVFrame, slotCount)
	for i := range a.slots {
		a.slots[i] = frame.NewYUVFrame(dim, a.hpad, a.vpad)
	}

	mbCols, mbRows := dim.MBCols(), dim.MBRows()
	a.pField = mvfield.NewField(mbCols, mbRows)
	a.bOutField = mvfield.NewField(mbCols, mbRows)
	a.bFwdField = mvfield.NewField(mbCols, mbRows)
	a.bBwdField = mvfield.NewField(mbCols, mbRows)
	a.aux = search.NewAux(a.pField)

	return a, nil
}

// planeRows builds the [][]byte row view a FrameSource.Read call fills.
func planeRows(p *frame.PaddedPlane) [][]byte {
	rows := make([][]byte, p.Height)
	for y := 0; y < p.Height; y++ {
		rows[y] = p.VisibleRow(y)
	}
	return rows
}

// fillSlot reads the next source frame into slots[idx]. It returns false,
// nil on a clean end-of-stream and propagates any other error.
func (a *Analyzer) fillSlot(idx int) (bool, error) {
	f := a.slots[idx]
	err := a.src.Read(planeRows(f.Y), planeRows(f.U), planeRows(f.V))
	if err != nil {
		if IsEndOfStream(err) {
			return false, nil
		}
		return false, err
	}
	f.SequenceIndex = a.nextSeq
	a.nextSeq++
	f.ExtendAll()
	return true, nil
}

// fillAhead reads into slots[1..n], stopping early on end-of-stream, and
// returns how many slots it actually filled.
func (a *Analyzer) fillAhead(n int) (int, error) {
	for i := 1; i <= n; i++ {
		ok, err := a.fillSlot(i)
		if err != nil {
			return i - 1, err
		}
		if !ok {
			return i - 1, nil
		}
	}
	return n, nil
}

func (a *Analyzer) swapAnchor(subgop int) {
	a.slots[0], a.slots[subgop] = a.slots[subgop], a.slots[0]
}

// Analyze drives the state machine to completion or end-of-stream and
// returns the display-ordered frame records.
func (a *Analyzer) Analyze() ([]meta.FrameRecord, error) {
	subgop := a.cfg.SubGOPSize()
	gopSize := a.cfg.GOPSize

	var pending *meta.FrameRecord
	var output []meta.FrameRecord
	flush := func() {
		if pending != nil {
			output = append(output, *pending)
			pending = nil
		}
	}

	firstOfGOP := true
	framesInGOP := 0

	for {
		if firstOfGOP {
			ok, err := a.fillSlot(0)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			rec, err := a.runSpatial(a.slots[0])
			if err != nil {
				return nil, err
			}
			flush()
			pending = &rec
			framesInGOP = 1
			firstOfGOP = false
		} else {
			a.swapAnchor(subgop)
		}

		filled, err := a.fillAhead(subgop)
		if err != nil {
			return nil, err
		}
		if filled == 0 {
			break
		}
		if filled < subgop {
			// The source ran out before a full subGOP could be read: no
			// second anchor exists to complete a proper P search, so the
			// truncation is itself treated as a flush trigger (like the
			// next I/P would be) and the leftover frames are coded as B
			// against the current anchor in both directions.
			flush()
			for b := 1; b <= filled; b++ {
				rec, err := a.runBidirectional(a.slots[b], a.slots[0], a.slots[0])
				if err != nil {
					return nil, err
				}
				output = append(output, rec)
			}
			framesInGOP += filled
			break
		}

		pRec, err := a.runTemporal(a.slots[subgop], a.slots[0])
		if err != nil {
			return nil, err
		}
		flush()
		pending = &pRec
		for b := 1; b < subgop; b++ {
			rec, err := a.runBidirectional(a.slots[b], a.slots[0], a.slots[subgop])
			if err != nil {
				return nil, err
			}
			output = append(output, rec)
		}
		framesInGOP += filled

		if framesInGOP >= gopSize {
			firstOfGOP = true
			framesInGOP = 0
		}
	}
	flush()

	logrus.WithField("frames", len(output)).Debug("analysis complete")
	return output, nil
}

func (a *Analyzer) runSpatial(cur *frame.YUVFrame) (meta.FrameRecord, error) {
	errorSum := search.PredictSpatial(a.pField, cur, a.aux)
	acc, err := a.buildAccum(cur, meta.PictureI, a.pField, errorSum)
	if err != nil {
		return meta.FrameRecord{}, err
	}
	return a.buildRecord(acc), nil
}

func (a *Analyzer) runTemporal(cur, ref *frame.YUVFrame) (meta.FrameRecord, error) {
	errorSum := search.PredictTemporal(a.pField, cur, ref, a.aux)
	acc, err := a.buildAccum(cur, meta.PictureP, a.pField, errorSum)
	if err != nil {
		return meta.FrameRecord{}, err
	}
	return a.buildRecord(acc), nil
}

func (a *Analyzer) runBidirectional(cur, fwd, bwd *frame.YUVFrame) (meta.FrameRecord, error) {
	errorSum := search.PredictBidirectional(a.bOutField, cur, fwd, bwd, a.bFwdField, a.bBwdField, a.aux)
	acc, err := a.buildAccum(cur, meta.PictureB, a.bOutField, errorSum)
	if err != nil {
		return meta.FrameRecord{}, err
	}
	return a.buildRecord(acc), nil
}

func (a *Analyzer) buildAccum(cur *frame.YUVFrame, picType meta.PictureType, field *mvfield.Field, errorSum int) (*frameAccum, error) {
	mbCols, mbRows := field.MBCols, field.MBRows
	n := mbCols * mbRows

	acc := &frameAccum{
		seqIndex:    cur.SequenceIndex,
		picType:     picType,
		errorSum:    errorSum,
		acEnergy:    float64(errorSum),
		mse:         float64(errorSum),
		countIntra:  field.CountIntra(),
		countInterP: field.CountInterP(),
		countInterB: field.CountInterB(),
		bitsRaw:     field.Bits(),
	}

	var weight int
	switch picType {
	case meta.PictureI:
		weight = search.WeightI
	case meta.PictureP:
		weight = search.WeightP
	default:
		weight = search.WeightB
	}
	acc.bitsWeighted = search.WeightShift(acc.bitsRaw, weight)

	acc.spatialVariance = a.aux.MeanVariance(field)

	var sumMag float64
	var sumInterMag, maxMag float64
	zeroCount, interCount := 0, 0
	for j := 0; j < mbRows; j++ {
		for i := 0; i < mbCols; i++ {
			c := field.At(i, j)
			mag := math.Hypot(float64(c.MV.X), float64(c.MV.Y))
			sumMag += mag
			if c.Mode == mvfield.ModeInterP || c.Mode == mvfield.ModeInterB {
				sumInterMag += mag
				if mag > maxMag {
					maxMag = mag
				}
				if c.MV.X == 0 && c.MV.Y == 0 {
					zeroCount++
				}
				interCount++
			}
			if a.traceWriter != nil {
				if err := a.traceWriter.WriteMB(c.Mode, c.MV, c.SAD); err != nil {
					return nil, wrapError(KindOutputWrite, err)
				}
			}
		}
	}
	if n > 0 {
		acc.motionMagnitude = sumMag / float64(n)
	}
	if interCount > 0 {
		acc.mvStats.MeanMagnitude = sumInterMag / float64(interCount)
	}
	acc.mvStats.MaxMagnitude = maxMag
	acc.mvStats.ZeroMVCount = zeroCount
	acc.mvStats.TotalMVCount = interCount

	return acc, nil
}

func (a *Analyzer) buildRecord(acc *frameAccum) meta.FrameRecord {
	n := a.dim.Width * a.dim.Height
	ns, nm, nr, ne, bpp, sv1, sv2 := normalize(acc, n, a.dim.Width, a.dim.Height, a.cfg.Weights, a.cfg.Score)
	return meta.FrameRecord{
		PicNum:          acc.seqIndex,
		PicType:         acc.picType,
		Error:           acc.errorSum,
		Bits:            acc.bitsWeighted,
		CountIntra:      acc.countIntra,
		CountInterP:     acc.countInterP,
		CountInterB:     acc.countInterB,
		SpatialVariance: acc.spatialVariance,
		MotionMagnitude: acc.motionMagnitude,
		ACEnergy:        acc.acEnergy,
		MSE:             acc.mse,
		BitsPerPixel:    bpp,
		NormSpatial:     ns,
		NormMotion:      nm,
		NormResidual:    nr,
		NormError:       ne,
		ScoreV1:         sv1,
		ScoreV2:         sv2,
		MVStats:         acc.mvStats,
	}
}
