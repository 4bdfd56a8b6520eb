package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// SRGBToLinear converts a single sRGB channel value in [0,1] to linear
// light using the standard piecewise gamma curve.
func SRGBToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a single linear-light channel value in [0,1] back
// to gamma-encoded sRGB.
func LinearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// ToXYZ converts an RGB color to CIEXYZ (D65 white point).
func ToXYZ(c RGB) (x, y, z float64) {
	return c.Colorful().Xyz()
}

// XYZToRGB converts CIEXYZ coordinates (D65) back to 8-bit RGB, clamping
// out-of-gamut results.
func XYZToRGB(x, y, z float64) RGB {
	return FromColorful(colorful.Xyz(x, y, z))
}

// ToLab converts an RGB color to CIELAB on the conventional scale
// (L 0-100, a/b roughly -128..127, D65 white point).
func ToLab(c RGB) (l, a, b float64) {
	l, a, b = c.Colorful().Lab()
	return l * 100.0, a * 100.0, b * 100.0
}

// XYZToLab converts CIEXYZ coordinates (D65) to CIELAB on the
// conventional 0-100 lightness scale.
func XYZToLab(x, y, z float64) (l, a, b float64) {
	l, a, b = colorful.XyzToLab(x, y, z)
	return l * 100.0, a * 100.0, b * 100.0
}

// LabToRGB converts CIELAB coordinates on the conventional scale back to
// 8-bit RGB, clamping out-of-gamut results.
func LabToRGB(l, a, b float64) RGB {
	return FromColorful(colorful.Lab(l/100.0, a/100.0, b/100.0))
}

// ToHSV converts an RGB color to HSV with hue in degrees and
// saturation/value as percentages.
func ToHSV(c RGB) HSV {
	h, s, v := c.Colorful().Hsv()
	return HSV{
		H: wrapHueDeg(h),
		S: roundPercent(s),
		V: roundPercent(v),
	}
}

// HSVToRGB converts an HSV color back to 8-bit RGB.
func HSVToRGB(c HSV) RGB {
	return FromColorful(colorful.Hsv(float64(c.H), float64(c.S)/100.0, float64(c.V)/100.0))
}

// ToHSL converts an RGB color to HSL with hue in degrees and
// saturation/lightness as percentages. Hue is 0 when saturation is 0.
func ToHSL(c RGB) HSL {
	h, s, l := c.Colorful().Hsl()
	return HSL{
		H: wrapHueDeg(h),
		S: roundPercent(s),
		L: roundPercent(l),
	}
}

// HSLToRGB converts an HSL color back to 8-bit RGB.
func HSLToRGB(c HSL) RGB {
	return FromColorful(colorful.Hsl(float64(c.H), float64(c.S)/100.0, float64(c.L)/100.0))
}

// wrapHueDeg rounds a hue in degrees to the nearest integer and wraps it
// into [0,360).
func wrapHueDeg(h float64) int {
	d := int(math.Round(h)) % 360
	if d < 0 {
		d += 360
	}
	return d
}

// roundPercent rounds a [0,1] fraction to an integer percentage, clamped
// to [0,100].
func roundPercent(v float64) int {
	p := int(math.Round(v * 100.0))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
