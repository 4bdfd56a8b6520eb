package colorspace

import "math"

// Approximate RYB "artist pigment" space. This is a heuristic transform,
// not a physical one: it extracts the shared whiteness component, folds the
// red/green overlap into yellow, and renormalizes magnitude. The exact
// order of the min/max extraction steps is load-bearing — changing it
// changes the blended colors — so both directions keep the sequence fixed
// even though the round trip is only approximate.

// ToRYB converts an RGB color to RYB coordinates, each in [0,255].
func ToRYB(c RGB) (ry, yy, by float64) {
	r := float64(c.R)
	g := float64(c.G)
	b := float64(c.B)

	// Remove whiteness.
	w := math.Min(r, math.Min(g, b))
	r -= w
	g -= w
	b -= w

	maxG := math.Max(r, math.Max(g, b))

	// Reallocate the red/green overlap into yellow.
	y := math.Min(r, g)
	r -= y
	g -= y

	// Remaining green splits evenly between yellow and blue.
	if b > 0 && g > 0 {
		b /= 2.0
		g /= 2.0
	}
	y += g
	b += g

	// Renormalize magnitude.
	maxY := math.Max(r, math.Max(y, b))
	if maxY > 0 {
		n := maxG / maxY
		r *= n
		y *= n
		b *= n
	}

	return r + w, y + w, b + w
}

// RYBToRGB converts RYB coordinates (each in [0,255]) back to 8-bit RGB.
// Reconstruction is approximate by design.
func RYBToRGB(ry, yy, by float64) RGB {
	r := ry
	y := yy
	b := by

	w := math.Min(r, math.Min(y, b))
	r -= w
	y -= w
	b -= w

	maxY := math.Max(r, math.Max(y, b))

	// Green is the yellow/blue overlap.
	g := math.Min(y, b)
	y -= g
	b -= g

	if b > 0 && g > 0 {
		b *= 2.0
		g *= 2.0
	}

	// Residual yellow feeds both red and green.
	r += y
	g += y

	maxG := math.Max(r, math.Max(g, b))
	if maxG > 0 {
		n := maxY / maxG
		r *= n
		g *= n
		b *= n
	}

	return RGB{
		R: clampChannel(r + w),
		G: clampChannel(g + w),
		B: clampChannel(b + w),
	}
}
