package motionsearch

// ScoreVersion selects between the two unified complexity scores of 4.6.
type ScoreVersion int

const (
	ScoreV1 ScoreVersion = iota
	ScoreV2
)

// DetailLevel selects whether per-frame records nest under their GOP in
// the output (3.1).
type DetailLevel int

const (
	DetailFrame DetailLevel = iota
	DetailGOP
)

// Config holds every analyzer parameter validated once at startup, the way
// the teacher validates sample rate/channel count/bits-per-sample inline
// in encodeFrameHeader.
type Config struct {
	GOPSize int
	BFrames int
	Score   ScoreVersion
	Detail  DetailLevel
	Weights ComplexityWeights
}

// DefaultConfig returns the specification's default parameters: gop_size
// 150, bframes 0, score v1, frame detail, default weights.
func DefaultConfig() Config {
	return Config{
		GOPSize: 150,
		BFrames: 0,
		Score:   ScoreV1,
		Detail:  DetailFrame,
		Weights: DefaultWeights(),
	}
}

// Validate rejects gop_size<1, bframes<0, or invalid weights with
// KindInvalidConfig.
func (c Config) Validate() error {
	if c.GOPSize < 1 {
		return newError(KindInvalidConfig, "gop_size must be >= 1, got %d", c.GOPSize)
	}
	if c.BFrames < 0 {
		return newError(KindInvalidConfig, "bframes must be >= 0, got %d", c.BFrames)
	}
	return c.Weights.Validate()
}

// SubGOPSize is bframes+1: the anchor-to-anchor interval length.
func (c Config) SubGOPSize() int {
	return c.BFrames + 1
}
