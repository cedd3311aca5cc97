package motionsearch

import (
	"math"

	"github.com/sirupsen/logrus"
)

// ComplexityWeights are the w_s/w_m/w_r/w_e coefficients of score_v2
// (4.6). The zero value is invalid; use DefaultWeights.
type ComplexityWeights struct {
	Spatial  float64
	Motion   float64
	Residual float64
	Error    float64
}

// DefaultWeights returns the specification's default weights (0.25, 0.30,
// 0.25, 0.20).
func DefaultWeights() ComplexityWeights {
	return ComplexityWeights{Spatial: 0.25, Motion: 0.30, Residual: 0.25, Error: 0.20}
}

const weightSumTolerance = 1e-6

// Validate rejects negative weights with KindInvalidConfig and logs a
// KindWarning if the weights do not sum to 1+-1e-6; non-unit weights are
// otherwise accepted and used as given, per §7.
func (w ComplexityWeights) Validate() error {
	if w.Spatial < 0 || w.Motion < 0 || w.Residual < 0 || w.Error < 0 {
		return newError(KindInvalidConfig, "negative complexity weight: %+v", w)
	}
	sum := w.Spatial + w.Motion + w.Residual + w.Error
	if math.Abs(sum-1.0) > weightSumTolerance {
		logrus.WithField("sum", sum).Warn("complexity weights do not sum to 1.0; proceeding with the given weights")
	}
	return nil
}
