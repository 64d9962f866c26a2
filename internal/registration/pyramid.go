package registration

import (
	"fmt"

	"med-register/internal/imagef"
)

// BuildPyramid returns a coarse-to-fine image pyramid with the given number
// of levels. Index 0 is the input image itself; each subsequent level is the
// previous one downsampled by 0.5x per axis.
func BuildPyramid(img *imagef.Gray, levels int) ([]*imagef.Gray, error) {
	if levels < 1 {
		return nil, fmt.Errorf("pyramid levels must be >= 1, got %d", levels)
	}

	pyramid := make([]*imagef.Gray, levels)
	pyramid[0] = img
	for i := 1; i < levels; i++ {
		pyramid[i] = pyramid[i-1].Downsample()
	}
	return pyramid, nil
}
