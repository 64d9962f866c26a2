package registration

import (
	"math"

	"med-register/internal/imagef"
	"med-register/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// Resample applies the forward similarity transform p to an image and
// returns the result at the same dimensions. The transform pivots about the
// image center and is realized by inverse mapping: each output pixel looks
// up its source coordinate under the inverse transform and samples there
// with bilinear interpolation. Samples outside the image resolve to 0.
func Resample(img *imagef.Gray, p Params) *imagef.Gray {
	inv := inverseMap(img.W, img.H, p)

	out := imagef.New(img.W, img.H)
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			src := inv.Apply(geometry.Point2D{X: float64(x), Y: float64(y)})
			out.Pix[y*img.W+x] = sampleBilinear(img, src.X, src.Y)
		}
	}
	return out
}

// inverseMap derives the output-to-source affine map for the forward
// similarity transform p on a w x h image.
//
// The derivation works in (row, col) axis order: the inverse linear part is
// the rotation by -theta scaled by 1/s, and the offset composes the
// center pivot with the translation, which enters as (ty, tx) to match the
// row/column ordering. A scale of exactly 0 falls back to an inverse scale
// of 1; callers should treat s=0 as invalid input rather than rely on this.
func inverseMap(w, h int, p Params) geometry.AffineTransform {
	thetaRad := p.Theta * math.Pi / 180.0

	invScale := 1.0
	if p.Scale != 0 {
		invScale = 1.0 / p.Scale
	}
	invTheta := -thetaRad

	rot := mat.NewDense(2, 2, []float64{
		math.Cos(invTheta), -math.Sin(invTheta),
		math.Sin(invTheta), math.Cos(invTheta),
	})
	var m mat.Dense
	m.Scale(invScale, rot)

	center := mat.NewVecDense(2, []float64{float64(h) / 2.0, float64(w) / 2.0})
	translation := mat.NewVecDense(2, []float64{p.Ty, p.Tx})

	var mCenter, mTranslation mat.VecDense
	mCenter.MulVec(&m, center)
	mTranslation.MulVec(&m, translation)

	offRow := center.AtVec(0) - mCenter.AtVec(0) - mTranslation.AtVec(0)
	offCol := center.AtVec(1) - mCenter.AtVec(1) - mTranslation.AtVec(1)

	// Reorder from (row, col) into the (x, y) convention of AffineTransform:
	// srcX = m11*x + m10*y + offCol, srcY = m01*x + m00*y + offRow.
	return geometry.AffineTransform{
		A: m.At(1, 1), B: m.At(1, 0), TX: offCol,
		C: m.At(0, 1), D: m.At(0, 0), TY: offRow,
	}
}

// sampleBilinear reads the image at a fractional coordinate with first-order
// interpolation. Neighbors outside the image contribute the constant 0.
func sampleBilinear(img *imagef.Gray, x, y float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	v00 := pixelOrZero(img, x0, y0)
	v10 := pixelOrZero(img, x0+1, y0)
	v01 := pixelOrZero(img, x0, y0+1)
	v11 := pixelOrZero(img, x0+1, y0+1)

	top := v00*(1-fx) + v10*fx
	bottom := v01*(1-fx) + v11*fx
	return top*(1-fy) + bottom*fy
}

func pixelOrZero(img *imagef.Gray, x, y int) float64 {
	if x < 0 || y < 0 || x >= img.W || y >= img.H {
		return 0
	}
	return img.Pix[y*img.W+x]
}
