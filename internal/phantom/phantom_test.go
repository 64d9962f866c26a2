package phantom

import (
	"testing"

	"med-register/pkg/geometry"
)

func TestCirclePhantom(t *testing.T) {
	img := New(64, 64, Circle, 10)

	if img.At(32, 32) != 1 {
		t.Error("center should be inside the circle")
	}
	if img.At(0, 0) != 0 {
		t.Error("corner should be background")
	}
	if img.At(32, 41) != 1 {
		t.Error("point 9px below center should be inside radius 10")
	}
	if img.At(32, 44) != 0 {
		t.Error("point 12px below center should be outside radius 10")
	}
}

func TestRectanglePhantom(t *testing.T) {
	img := New(64, 64, Rectangle, 10)

	if img.At(41, 41) != 1 {
		t.Error("corner of the square should be filled")
	}
	if img.At(44, 32) != 0 {
		t.Error("point past the half-size should be background")
	}
}

func TestNewAtOffset(t *testing.T) {
	img := NewAt(64, 64, Circle, 5, geometry.NewPoint2D(10, 20))

	if img.At(10, 20) != 1 {
		t.Error("shifted center should be filled")
	}
	if img.At(32, 32) != 0 {
		t.Error("image center should be background for an offset phantom")
	}
}

func TestShapeString(t *testing.T) {
	if Circle.String() != "circle" || Rectangle.String() != "rectangle" {
		t.Error("unexpected shape names")
	}
	if Shape(99).String() != "unknown" {
		t.Error("unexpected fallback name")
	}
}

func TestPhantomBinary(t *testing.T) {
	img := New(32, 32, Circle, 8)
	for i, v := range img.Pix {
		if v != 0 && v != 1 {
			t.Fatalf("pixel %d has non-binary intensity %v", i, v)
		}
	}
}
