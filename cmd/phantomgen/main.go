// Command phantomgen writes synthetic phantom images for exercising the
// registration pipeline, optionally pushed through a similarity transform
// to produce a known-offset test pair.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"med-register/internal/phantom"
	"med-register/internal/registration"
)

func main() {
	size := flag.Int("size", 256, "Image width and height in pixels")
	shapeName := flag.String("shape", "circle", "Phantom shape: circle or rectangle")
	halfSize := flag.Float64("radius", 50, "Shape radius (circle) or half-width (rectangle)")
	outPath := flag.String("o", "phantom.png", "Output PNG path")

	scale := flag.Float64("s", 1, "Applied similarity transform: uniform scale")
	theta := flag.Float64("theta", 0, "Applied similarity transform: rotation in degrees")
	tx := flag.Float64("tx", 0, "Applied similarity transform: x translation in pixels")
	ty := flag.Float64("ty", 0, "Applied similarity transform: y translation in pixels")
	flag.Parse()

	var shape phantom.Shape
	switch *shapeName {
	case "circle":
		shape = phantom.Circle
	case "rectangle":
		shape = phantom.Rectangle
	default:
		fmt.Fprintf(os.Stderr, "Unknown shape %q (want circle or rectangle)\n", *shapeName)
		os.Exit(1)
	}

	img := phantom.New(*size, *size, shape, *halfSize)

	params := registration.Params{Scale: *scale, Theta: *theta, Tx: *tx, Ty: *ty}
	if params != registration.IdentityParams() {
		fmt.Printf("Applying transform: s=%.3f theta=%.3f tx=%.2f ty=%.2f\n",
			params.Scale, params.Theta, params.Tx, params.Ty)
		img = registration.Resample(img, params)
	}

	file, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img.ToImage()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %dx%d %s phantom to %s\n", *size, *size, shape, *outPath)
}
