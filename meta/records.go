package meta

// PictureType is the coding role assigned to a frame by the GOP/subGOP
// state machine.
type PictureType int

const (
	PictureI PictureType = iota
	PictureP
	PictureB
)

func (t PictureType) String() string {
	switch t {
	case PictureI:
		return "I"
	case PictureP:
		return "P"
	case PictureB:
		return "B"
	default:
		return "?"
	}
}

// MarshalText lets the JSON/XML writers emit PictureType as "I"/"P"/"B"
// instead of the underlying integer, without either writer package having
// to know about this type.
func (t PictureType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// MVStats is the motion-vector summary of 3.2: the original analyzer's
// mean/max magnitude and zero-MV count, kept alongside the unified
// motion_magnitude mean in FrameRecord rather than replacing it.
type MVStats struct {
	MeanMagnitude float64 `json:"mean_magnitude" xml:"mean_magnitude"`
	MaxMagnitude  float64 `json:"max_magnitude" xml:"max_magnitude"`
	ZeroMVCount   int     `json:"zero_mv_count" xml:"zero_mv_count"`
	TotalMVCount  int     `json:"total_mv_count" xml:"total_mv_count"`
}

// ZeroMVFraction returns the fraction of inter macroblocks with a zero
// motion vector, or 0 if the frame had no inter macroblocks.
func (s MVStats) ZeroMVFraction() float64 {
	if s.TotalMVCount == 0 {
		return 0
	}
	return float64(s.ZeroMVCount) / float64(s.TotalMVCount)
}

// FrameRecord is the per-frame output of the analyzer (§3, §4.7).
type FrameRecord struct {
	PicNum   int         `json:"picNum" xml:"picNum"`
	PicType  PictureType `json:"picType" xml:"picType"`
	Error    int         `json:"error" xml:"error"`
	Bits     int         `json:"bits" xml:"bits"`

	CountIntra  int `json:"count_I" xml:"count_I"`
	CountInterP int `json:"count_P" xml:"count_P"`
	CountInterB int `json:"count_B" xml:"count_B"`

	SpatialVariance float64 `json:"spatial_variance" xml:"spatial_variance"`
	MotionMagnitude float64 `json:"motion_magnitude" xml:"motion_magnitude"`
	ACEnergy        float64 `json:"ac_energy" xml:"ac_energy"`
	MSE             float64 `json:"mse" xml:"mse"`
	BitsPerPixel    float64 `json:"bits_per_pixel" xml:"bits_per_pixel"`

	NormSpatial  float64 `json:"norm_spatial" xml:"norm_spatial"`
	NormMotion   float64 `json:"norm_motion" xml:"norm_motion"`
	NormResidual float64 `json:"norm_residual" xml:"norm_residual"`
	NormError    float64 `json:"norm_error" xml:"norm_error"`

	ScoreV1 float64 `json:"score_v1" xml:"score_v1"`
	ScoreV2 float64 `json:"score_v2" xml:"score_v2"`

	MVStats MVStats `json:"mv_stats" xml:"mv_stats"`
}

// GOPRecord is the per-GOP aggregate of §4.7: a GOP begins at each
// I-record and ends before the next I-record or at end-of-list.
type GOPRecord struct {
	GOPIndex           int `json:"gop_num" xml:"gop_num"`
	StartSequenceIndex int `json:"start_frame" xml:"start_frame"`
	EndSequenceIndex   int `json:"end_frame" xml:"end_frame"`

	TotalBits    int     `json:"total_bits" xml:"total_bits"`
	AvgScoreV2   float64 `json:"avg_complexity" xml:"avg_complexity"`
	CountIntra   int     `json:"i_frame_count" xml:"i_frame_count"`
	CountInterP  int     `json:"p_frame_count" xml:"p_frame_count"`
	CountInterB  int     `json:"b_frame_count" xml:"b_frame_count"`

	// Frames is populated only when the CLI's -detail flag is "gop"
	// (3.1); "frame" detail leaves it nil and the records are carried by
	// the flat AnalysisResults.Frames list instead.
	Frames []FrameRecord `json:"frames,omitempty" xml:"frames>frame,omitempty"`
}

// AnalysisResults bundles the metadata, GOP list and display-ordered frame
// list handed to the writer package.
type AnalysisResults struct {
	Metadata VideoMetadata `json:"metadata" xml:"metadata"`
	GOPs     []GOPRecord   `json:"gops" xml:"gops>gop"`

	// Frames holds every frame record in display order. Writers consult
	// Detail to decide whether to also emit it verbatim (flat CSV/"frame"
	// detail) or omit it in favor of the nested per-GOP Frames (3.1).
	Frames []FrameRecord `json:"frames,omitempty" xml:"-"`

	// Detail records which -detail level produced this result, so a
	// writer can decide what to include without the caller re-threading
	// the flag value through every call.
	Detail string `json:"-" xml:"-"`
}
