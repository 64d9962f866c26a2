// Package imagef provides grayscale images as float64 intensity grids
// normalized to [0,1], with loading, conversion, and resampling helpers.
package imagef

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// Gray is a grayscale image stored as a flat row-major slice of float64
// intensities in [0,1].
type Gray struct {
	W, H int
	Pix  []float64 // len W*H, index y*W+x
}

// New creates a zero-filled Gray of the given dimensions.
func New(w, h int) *Gray {
	return &Gray{W: w, H: h, Pix: make([]float64, w*h)}
}

// At returns the intensity at (x, y). No bounds check.
func (g *Gray) At(x, y int) float64 {
	return g.Pix[y*g.W+x]
}

// Set stores an intensity at (x, y). No bounds check.
func (g *Gray) Set(x, y int, v float64) {
	g.Pix[y*g.W+x] = v
}

// Clone returns a deep copy.
func (g *Gray) Clone() *Gray {
	out := New(g.W, g.H)
	copy(out.Pix, g.Pix)
	return out
}

// FromImage converts any image.Image to a normalized grayscale Gray using
// the standard luminance weights.
func FromImage(img image.Image) *Gray {
	bounds := img.Bounds()
	out := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			c := color.Gray16Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray16)
			out.Pix[y*out.W+x] = float64(c.Y) / 65535.0
		}
	}
	return out
}

// ToImage converts back to a 16-bit grayscale image, clamping to [0,1].
func (g *Gray) ToImage() *image.Gray16 {
	out := image.NewGray16(image.Rect(0, 0, g.W, g.H))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := g.Pix[y*g.W+x]
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			out.SetGray16(x, y, color.Gray16{Y: uint16(v*65535 + 0.5)})
		}
	}
	return out
}

// Resize returns the image resampled to w x h using a Catmull-Rom filter.
// Used to bring a moving image onto the fixed image's pixel grid before
// registration.
func (g *Gray) Resize(w, h int) *Gray {
	if w == g.W && h == g.H {
		return g.Clone()
	}
	src := g.ToImage()
	dst := image.NewGray16(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}

// Downsample returns the image reduced by 0.5x per axis with 2x2 area
// averaging. Output dimensions are round(0.5*dim), never below 1.
func (g *Gray) Downsample() *Gray {
	nw := int(math.Round(float64(g.W) * 0.5))
	nh := int(math.Round(float64(g.H) * 0.5))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	out := New(nw, nh)
	for y := 0; y < nh; y++ {
		for x := 0; x < nw; x++ {
			sx := 2 * x
			sy := 2 * y
			var sum float64
			var n int
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					px, py := sx+dx, sy+dy
					if px >= g.W || py >= g.H {
						continue
					}
					sum += g.Pix[py*g.W+px]
					n++
				}
			}
			out.Pix[y*nw+x] = sum / float64(n)
		}
	}
	return out
}

// Load reads and decodes an image file (PNG, JPEG, or TIFF) and converts
// it to a normalized grayscale Gray.
func Load(path string) (*Gray, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return FromImage(img), nil
}
