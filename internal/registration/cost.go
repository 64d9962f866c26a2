package registration

import "med-register/internal/imagef"

// SSD returns the sum of squared intensity differences between two
// equally-shaped images. Zero means a pixel-exact match. Shape agreement is
// the caller's contract and is not re-checked here.
func SSD(a, b *imagef.Gray) float64 {
	var sum float64
	for i, av := range a.Pix {
		d := av - b.Pix[i]
		sum += d * d
	}
	return sum
}
