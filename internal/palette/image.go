package palette

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"
)

// FromImage flattens an image into pixel samples for Extract.
//
// When the image holds more pixels than sampleCap, it is first downscaled
// with a nearest-neighbor resize so the flattened result fits the cap.
// Nearest-neighbor keeps original pixel colors (no resampling blur) and is
// deterministic, so repeated extractions of the same image agree.
//
// Transparent pixels are kept; filtering against the alpha threshold is
// Extract's job.
func FromImage(img image.Image, sampleCap int) []Pixel {
	if sampleCap <= 0 {
		sampleCap = DefaultOptions.SampleCap
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	if w*h > sampleCap {
		// Area scales with the square of the side factor.
		side := math.Sqrt(float64(sampleCap) / float64(w*h))
		nw := maxInt(1, int(float64(w)*side))
		nh := maxInt(1, int(float64(h)*side))
		img = transform.Resize(img, nw, nh, transform.NearestNeighbor)
		bounds = img.Bounds()
	}

	pixels := make([]Pixel, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			// Convert from 16-bit to 8-bit
			pixels = append(pixels, Pixel{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: uint8(a >> 8),
			})
		}
	}
	return pixels
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
