package registration

import (
	"math"

	"med-register/internal/imagef"
)

const defaultGradientStep = 1e-5

// gradientNoiseFloor is the relative resolution credited to a pair of cost
// evaluations. When the +step and -step costs agree to within this fraction
// of their magnitude, the difference is interpolation rounding rather than
// slope; dividing it by 2*step would amplify it into a confident-looking
// gradient, so the partial reports as zero instead. Without this, flat
// directions of the cost surface (rotating a circle about its own center)
// pick up a spurious drift that Adam's normalized steps act on at full
// speed.
const gradientNoiseFloor = 1e-7

// costGradient estimates the partial derivatives of the SSD cost with
// respect to each transform parameter by symmetric finite differences.
// Each parameter costs two resamples and two cost evaluations, which makes
// this the dominant expense of the whole optimization.
func costGradient(fixed, moving *imagef.Gray, p Params, step float64) [4]float64 {
	base := p.vec()

	var grad [4]float64
	for i := range base {
		plus := base
		plus[i] += step
		minus := base
		minus[i] -= step

		costPlus := SSD(fixed, Resample(moving, paramsFromVec(plus)))
		costMinus := SSD(fixed, Resample(moving, paramsFromVec(minus)))

		diff := costPlus - costMinus
		if math.Abs(diff) <= gradientNoiseFloor*math.Max(costPlus, costMinus) {
			continue
		}
		grad[i] = diff / (2 * step)
	}
	return grad
}
