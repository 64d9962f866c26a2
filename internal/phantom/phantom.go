// Package phantom synthesizes simple geometric test images for exercising
// and validating the registration pipeline.
package phantom

import (
	"math"

	"med-register/internal/imagef"
	"med-register/pkg/geometry"
)

// Shape selects the figure drawn into a phantom image.
type Shape int

const (
	Circle Shape = iota
	Rectangle
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Rectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// New renders a filled shape of the given half-size centered in a w x h
// image, intensity 1 on a 0 background.
func New(w, h int, shape Shape, halfSize float64) *imagef.Gray {
	center := geometry.NewPoint2D(float64(w)/2, float64(h)/2)
	return NewAt(w, h, shape, halfSize, center)
}

// NewAt renders a filled shape of the given half-size at an arbitrary
// center. Useful for producing image pairs with a known offset.
func NewAt(w, h int, shape Shape, halfSize float64, center geometry.Point2D) *imagef.Gray {
	img := imagef.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := geometry.NewPoint2D(float64(x), float64(y))
			if contains(shape, halfSize, center, p) {
				img.Set(x, y, 1)
			}
		}
	}
	return img
}

func contains(shape Shape, halfSize float64, center, p geometry.Point2D) bool {
	switch shape {
	case Circle:
		return p.Distance(center) <= halfSize
	case Rectangle:
		d := p.Sub(center)
		return math.Abs(d.X) <= halfSize && math.Abs(d.Y) <= halfSize
	default:
		return false
	}
}
