package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func pointsEqual(p1, p2 Point2D) bool {
	return almostEqual(p1.X, p2.X) && almostEqual(p1.Y, p2.Y)
}

func TestAffineApply(t *testing.T) {
	tests := []struct {
		name      string
		point     Point2D
		transform AffineTransform
		want      Point2D
	}{
		{
			name:      "identity",
			point:     Point2D{X: 10, Y: 20},
			transform: Identity(),
			want:      Point2D{X: 10, Y: 20},
		},
		{
			name:      "translation only",
			point:     Point2D{X: 5, Y: 5},
			transform: Translation(10, 15),
			want:      Point2D{X: 15, Y: 20},
		},
		{
			name:      "uniform scale 2x",
			point:     Point2D{X: 3, Y: -4},
			transform: Scaling(2),
			want:      Point2D{X: 6, Y: -8},
		},
		{
			name:      "rotate 90 degrees",
			point:     Point2D{X: 1, Y: 0},
			transform: Rotation(math.Pi / 2),
			want:      Point2D{X: 0, Y: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transform.Apply(tt.point)
			if !pointsEqual(got, tt.want) {
				t.Errorf("Apply(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestAffineComposeInverse(t *testing.T) {
	xform := Translation(12, -7).Compose(Rotation(0.3)).Compose(Scaling(1.5))
	inv, ok := xform.Inverse()
	if !ok {
		t.Fatal("transform should be invertible")
	}

	p := Point2D{X: 42, Y: 17}
	back := inv.Apply(xform.Apply(p))
	if !pointsEqual(back, p) {
		t.Errorf("inverse round trip: got %v, want %v", back, p)
	}
}

func TestAffineInverseSingular(t *testing.T) {
	degenerate := AffineTransform{} // zero matrix
	if _, ok := degenerate.Inverse(); ok {
		t.Error("zero matrix should not be invertible")
	}
}

func TestSimilarityDecomposition(t *testing.T) {
	angle := 0.42
	scale := 1.75
	xform := Rotation(angle).Compose(Scaling(scale))

	if got := xform.RotationAngle(); !almostEqual(got, angle) {
		t.Errorf("RotationAngle() = %v, want %v", got, angle)
	}
	if got := xform.ScaleFactor(); !almostEqual(got, scale) {
		t.Errorf("ScaleFactor() = %v, want %v", got, scale)
	}
}

func TestPointOps(t *testing.T) {
	a := NewPoint2D(3, 4)
	b := NewPoint2D(0, 0)

	if d := a.Distance(b); !almostEqual(d, 5) {
		t.Errorf("Distance = %v, want 5", d)
	}
	if got := a.Add(b); !pointsEqual(got, a) {
		t.Errorf("Add zero changed point: %v", got)
	}
	if got := a.Sub(a); !pointsEqual(got, b) {
		t.Errorf("Sub self = %v, want origin", got)
	}
	if got := a.Scale(2); !pointsEqual(got, Point2D{X: 6, Y: 8}) {
		t.Errorf("Scale = %v", got)
	}
}
