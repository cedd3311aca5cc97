package motionsearch

import "math"

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// normalize fills a frame record's derived/normalized/score fields from
// its raw metrics, per 4.6. n is width*height (W*H); w/h are needed
// separately for norm_motion's diagonal term.
func normalize(rec *frameAccum, n, width, height int, weights ComplexityWeights, score ScoreVersion) (normSpatial, normMotion, normResidual, normError, bitsPerPixel, scoreV1, scoreV2 float64) {
	const sampleRangeSq = 255 * 255 // 65025

	normSpatial = clamp01(math.Sqrt(rec.spatialVariance / sampleRangeSq))
	diag := 0.1 * math.Sqrt(float64(width*width+height*height))
	if diag > 0 {
		normMotion = clamp01(rec.motionMagnitude / diag)
	}
	normResidual = clamp01((rec.acEnergy / float64(n)) / 255)
	normError = clamp01(math.Sqrt(rec.mse / sampleRangeSq))

	bitsPerPixel = float64(rec.bitsWeighted) / float64(n)
	scoreV1 = clamp01(2 * bitsPerPixel)
	scoreV2 = clamp01(weights.Spatial*normSpatial + weights.Motion*normMotion + weights.Residual*normResidual + weights.Error*normError)

	return normSpatial, normMotion, normResidual, normError, bitsPerPixel, scoreV1, scoreV2
}
