package registration

import (
	"math"

	"med-register/internal/imagef"
)

// ProgressRecord describes one solver iteration. Records are handed to the
// caller's ProgressFunc as they happen; the solver itself never prints.
type ProgressRecord struct {
	Level      int
	Iteration  int
	Iterations int
	Cost       float64
	Params     Params
}

// ProgressFunc receives per-iteration telemetry from the solver.
type ProgressFunc func(ProgressRecord)

// SolverOptions configures a single Adam run at one pyramid level.
// Zero-valued hyperparameters take the usual Adam defaults
// (beta1=0.9, beta2=0.999, epsilon=1e-8), so an explicit zero for any of
// them is not expressible; callers wanting momentum effectively off should
// pass a small positive value instead.
type SolverOptions struct {
	LearningRate float64
	Iterations   int
	Trainable    Mask
	Beta1        float64
	Beta2        float64
	Epsilon      float64
	GradientStep float64
	Level        int          // reported in progress records
	Progress     ProgressFunc // optional
}

func (o SolverOptions) withDefaults() SolverOptions {
	if o.Beta1 == 0 {
		o.Beta1 = 0.9
	}
	if o.Beta2 == 0 {
		o.Beta2 = 0.999
	}
	if o.Epsilon == 0 {
		o.Epsilon = 1e-8
	}
	if o.GradientStep == 0 {
		o.GradientStep = defaultGradientStep
	}
	return o
}

// Optimize runs Adam for a fixed number of iterations and returns the final
// parameters along with the per-iteration cost history.
//
// Each iteration resamples the moving image under the current parameters,
// evaluates the cost against the fixed image, estimates the gradient by
// finite differences, and applies the bias-corrected Adam update to every
// trainable parameter. Moment estimates start at zero on every call; there
// is no convergence-based early stop.
func Optimize(fixed, moving *imagef.Gray, initial Params, opts SolverOptions) (Params, []float64) {
	opts = opts.withDefaults()

	params := initial.vec()
	history := make([]float64, 0, opts.Iterations)
	var m, v [4]float64

	for t := 1; t <= opts.Iterations; t++ {
		transformed := Resample(moving, paramsFromVec(params))
		cost := SSD(fixed, transformed)
		history = append(history, cost)

		grad := costGradient(fixed, moving, paramsFromVec(params), opts.GradientStep)

		biasCorrection1 := 1 - math.Pow(opts.Beta1, float64(t))
		biasCorrection2 := 1 - math.Pow(opts.Beta2, float64(t))

		for i := range params {
			m[i] = opts.Beta1*m[i] + (1-opts.Beta1)*grad[i]
			v[i] = opts.Beta2*v[i] + (1-opts.Beta2)*grad[i]*grad[i]

			if !opts.Trainable[i] {
				continue
			}

			mHat := m[i] / biasCorrection1
			vHat := v[i] / biasCorrection2
			params[i] -= opts.LearningRate * mHat / (math.Sqrt(vHat) + opts.Epsilon)
		}

		if opts.Progress != nil {
			opts.Progress(ProgressRecord{
				Level:      opts.Level,
				Iteration:  t,
				Iterations: opts.Iterations,
				Cost:       cost,
				Params:     paramsFromVec(params),
			})
		}
	}

	return paramsFromVec(params), history
}
