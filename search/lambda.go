// Package search implements the three macroblock search kernels (spatial,
// temporal, bidirectional) that fill an mvfield.Field for one frame. It is
// the only package that knows the per-MB algorithm; mvfield only stores the
// result, frame only owns the pixel buffers, kernel only computes block
// metrics.
package search

// Range is the full-search window radius, in samples, around the motion
// vector predictor. It is frozen: changing it changes every bit proxy the
// analyzer has ever produced, so it is published here rather than left
// configurable.
const Range = 16

// Lambda is the fixed integer Lagrangian multiplier used to weigh motion
// vector bits against SAD in the mode-decision cost. Frozen for the same
// reproducibility reason as Range; see the bit-proxy constants design note.
const Lambda = 4

// DCPredictor is the flat intra predictor value used when neither the
// upper nor the left neighbor block is available or cheaper.
const DCPredictor = 128
