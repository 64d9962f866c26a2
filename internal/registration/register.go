// Package registration estimates the similarity transform (uniform scale,
// rotation, translation) that aligns a moving grayscale image to a fixed
// reference image by minimizing the sum of squared intensity differences
// over a coarse-to-fine image pyramid.
package registration

import (
	"errors"
	"fmt"

	"med-register/internal/imagef"
)

// Options configures a full registration run.
type Options struct {
	Levels       int     // pyramid levels, coarsest processed first
	LearningRate float64 // Adam step size, shared by all levels
	Iterations   int     // Adam iterations per level
	GradientStep float64 // finite-difference step, 0 means the default
	Progress     ProgressFunc
}

// DefaultOptions returns the standard registration schedule: 5 pyramid
// levels with 300 Adam iterations per level at learning rate 0.1.
func DefaultOptions() Options {
	return Options{
		Levels:       5,
		LearningRate: 0.1,
		Iterations:   300,
	}
}

// Result holds the output of a registration run.
type Result struct {
	// Params is the estimated similarity transform, with translation in
	// full-resolution pixels.
	Params Params
	// CostHistory is the per-iteration SSD cost, concatenated across all
	// pyramid levels in coarse-to-fine order. Diagnostics only.
	CostHistory []float64
	// Registered is the moving image resampled under Params, on the fixed
	// image's pixel grid.
	Registered *imagef.Gray
}

// Register aligns the moving image to the fixed image.
//
// The moving image is first resized onto the fixed image's pixel grid if
// the dimensions differ. Both images are then decomposed into pyramids and
// the solver runs once per level, coarsest first. Translation parameters
// are divided by 2^level on the way into a level and multiplied back on the
// way out, so they always carry full-resolution pixel units between levels;
// scale and rotation are resolution-invariant and pass through unchanged.
// When more than one level is used, the coarsest trains translation only;
// every other level trains all four parameters. Solver moments restart from
// zero at every level, only the parameter values carry over.
func Register(fixed, moving *imagef.Gray, opts Options) (*Result, error) {
	if fixed == nil || moving == nil {
		return nil, errors.New("nil input image")
	}
	if fixed.W < 1 || fixed.H < 1 {
		return nil, errors.New("empty fixed image")
	}
	if moving.W < 1 || moving.H < 1 {
		return nil, errors.New("empty moving image")
	}
	if opts.Levels < 1 {
		return nil, fmt.Errorf("levels must be >= 1, got %d", opts.Levels)
	}
	if opts.LearningRate <= 0 {
		return nil, fmt.Errorf("learning rate must be positive, got %g", opts.LearningRate)
	}
	if opts.Iterations < 1 {
		return nil, fmt.Errorf("iterations must be >= 1, got %d", opts.Iterations)
	}
	if min(fixed.W, fixed.H)>>uint(opts.Levels-1) < 1 {
		return nil, fmt.Errorf("image %dx%d too small for %d pyramid levels", fixed.W, fixed.H, opts.Levels)
	}

	if moving.W != fixed.W || moving.H != fixed.H {
		moving = moving.Resize(fixed.W, fixed.H)
	}

	fixedPyramid, err := BuildPyramid(fixed, opts.Levels)
	if err != nil {
		return nil, fmt.Errorf("fixed pyramid: %w", err)
	}
	movingPyramid, err := BuildPyramid(moving, opts.Levels)
	if err != nil {
		return nil, fmt.Errorf("moving pyramid: %w", err)
	}

	best := IdentityParams()
	var history []float64

	for level := opts.Levels - 1; level >= 0; level-- {
		scaleFactor := float64(int(1) << uint(level))

		current := best
		current.Tx /= scaleFactor
		current.Ty /= scaleFactor

		trainable := AllTrainable()
		if level == opts.Levels-1 && opts.Levels > 1 {
			// Rotation about the image center trades off against translation
			// along a near-flat valley of the cost surface, and the coarsest
			// level carries the whole initial offset, so the solver can wander
			// down that valley before the offset is resolved. The coarsest
			// level therefore optimizes translation alone; scale and rotation
			// open up once the finer levels start from a translated-into-place
			// estimate.
			trainable = TranslationOnly()
		}

		var levelHistory []float64
		current, levelHistory = Optimize(fixedPyramid[level], movingPyramid[level], current, SolverOptions{
			LearningRate: opts.LearningRate,
			Iterations:   opts.Iterations,
			Trainable:    trainable,
			GradientStep: opts.GradientStep,
			Level:        level,
			Progress:     opts.Progress,
		})
		history = append(history, levelHistory...)

		current.Tx *= scaleFactor
		current.Ty *= scaleFactor
		best = current
	}

	return &Result{
		Params:      best,
		CostHistory: history,
		Registered:  Resample(moving, best),
	}, nil
}
