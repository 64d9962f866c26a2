package registration

import (
	"testing"

	"med-register/internal/imagef"
	"med-register/internal/phantom"

	"github.com/stretchr/testify/require"
)

func TestSSDZeroAtMatch(t *testing.T) {
	img := phantom.New(32, 32, phantom.Circle, 8)
	require.Equal(t, 0.0, SSD(img, img))

	clone := img.Clone()
	require.Equal(t, 0.0, SSD(img, clone))
}

func TestSSDNonNegative(t *testing.T) {
	a := phantom.New(32, 32, phantom.Circle, 8)
	b := phantom.New(32, 32, phantom.Rectangle, 8)

	require.GreaterOrEqual(t, SSD(a, b), 0.0)
	require.Greater(t, SSD(a, b), 0.0, "distinct shapes must have positive cost")
}

func TestSSDKnownValue(t *testing.T) {
	a := imagef.New(2, 2)
	b := imagef.New(2, 2)
	a.Set(0, 0, 1.0)
	a.Set(1, 1, 0.5)
	b.Set(1, 0, 0.25)

	// (1-0)^2 + (0-0.25)^2 + (0-0)^2 + (0.5-0)^2 = 1.3125
	require.InDelta(t, 1.3125, SSD(a, b), 1e-12)
}

func TestSSDSymmetric(t *testing.T) {
	a := phantom.New(16, 16, phantom.Circle, 4)
	b := phantom.New(16, 16, phantom.Rectangle, 5)

	require.InDelta(t, SSD(a, b), SSD(b, a), 1e-12)
}
