package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// OKLab conversion, implemented from Björn Ottosson's published matrices.
// go-colorful (as of v1.2.0) has no OKLab support, so the pipeline lives
// here: linear sRGB -> LMS -> cube root -> Lab-like coordinates. L is in
// [0,1]; a and b are roughly within [-0.4, 0.4].

// ToOKLab converts an RGB color to OKLab coordinates.
func ToOKLab(c RGB) (okl, oka, okb float64) {
	r, g, b := c.Colorful().LinearRgb()

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	okl = 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	oka = 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	okb = 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
	return okl, oka, okb
}

// OKLabToRGB converts OKLab coordinates back to 8-bit RGB, clamping
// out-of-gamut results.
func OKLabToRGB(okl, oka, okb float64) RGB {
	lp := okl + 0.3963377774*oka + 0.2158037573*okb
	mp := okl - 0.1055613458*oka - 0.0638541728*okb
	sp := okl - 0.0894841775*oka - 1.2914855480*okb

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return FromColorful(colorful.LinearRgb(r, g, b))
}
