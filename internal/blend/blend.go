package blend

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/glamkit/dyematch/internal/colorspace"
)

// Mode selects the blending model.
//
// Mode is a closed enumeration; ParseMode is the boundary for external
// mode strings and rejects anything it does not recognize.
type Mode int

const (
	ModeRGB Mode = iota
	ModeLab
	ModeOKLab
	ModeRYB
	ModeHSL
	ModeSpectral
)

var modeNames = map[Mode]string{
	ModeRGB:      "rgb",
	ModeLab:      "lab",
	ModeOKLab:    "oklab",
	ModeRYB:      "ryb",
	ModeHSL:      "hsl",
	ModeSpectral: "spectral",
}

// String returns the boundary identifier for the mode.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts a boundary mode string into a Mode.
//
// Valid identifiers are "rgb", "lab", "oklab", "ryb", "hsl", and
// "spectral". Anything else is an error; there is no silent fallback.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if s == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown blend mode %q (valid: rgb, lab, oklab, ryb, hsl, spectral)", s)
}

// Result pairs a blended color with its canonical hex string. It is a
// plain value produced fresh on every Blend call.
type Result struct {
	Hex string         `json:"hex"` // Canonical "#RRGGBB" uppercase form
	RGB colorspace.RGB `json:"rgb"` // 8-bit components
}

// Blend mixes colors a and b under the given mode.
//
// ratio is clamped to [0,1]: 0 yields exactly a, 1 yields exactly b, and
// 0.5 an equal mix. The boundary ratios short-circuit before any color
// space conversion, so they are exact for every mode rather than subject
// to round-trip rounding.
func Blend(a, b colorspace.RGB, mode Mode, ratio float64) Result {
	if ratio <= 0 {
		return resultOf(a)
	}
	if ratio >= 1 {
		return resultOf(b)
	}

	var mixed colorspace.RGB
	switch mode {
	case ModeLab:
		mixed = blendLab(a, b, ratio)
	case ModeOKLab:
		mixed = blendOKLab(a, b, ratio)
	case ModeRYB:
		mixed = blendRYB(a, b, ratio)
	case ModeHSL:
		mixed = blendHSL(a, b, ratio)
	case ModeSpectral:
		mixed = blendSpectral(a, b, ratio)
	default:
		mixed = blendRGB(a, b, ratio)
	}
	return resultOf(mixed)
}

func resultOf(c colorspace.RGB) Result {
	return Result{Hex: c.Hex(), RGB: c}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func blendRGB(a, b colorspace.RGB, t float64) colorspace.RGB {
	return colorspace.RGB{
		R: roundChannel(lerp(float64(a.R), float64(b.R), t)),
		G: roundChannel(lerp(float64(a.G), float64(b.G), t)),
		B: roundChannel(lerp(float64(a.B), float64(b.B), t)),
	}
}

func blendLab(a, b colorspace.RGB, t float64) colorspace.RGB {
	return colorspace.FromColorful(a.Colorful().BlendLab(b.Colorful(), t))
}

func blendOKLab(a, b colorspace.RGB, t float64) colorspace.RGB {
	l1, a1, b1 := colorspace.ToOKLab(a)
	l2, a2, b2 := colorspace.ToOKLab(b)
	return colorspace.OKLabToRGB(lerp(l1, l2, t), lerp(a1, a2, t), lerp(b1, b2, t))
}

func blendRYB(a, b colorspace.RGB, t float64) colorspace.RGB {
	r1, y1, b1 := colorspace.ToRYB(a)
	r2, y2, b2 := colorspace.ToRYB(b)
	return colorspace.RYBToRGB(lerp(r1, r2, t), lerp(y1, y2, t), lerp(b1, b2, t))
}

// blendHSL interpolates saturation and lightness linearly and hue along
// the shorter arc of the color wheel.
func blendHSL(a, b colorspace.RGB, t float64) colorspace.RGB {
	h1, s1, l1 := a.Colorful().Hsl()
	h2, s2, l2 := b.Colorful().Hsl()

	delta := h2 - h1
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	h := math.Mod(h1+delta*t, 360)
	if h < 0 {
		h += 360
	}

	return colorspace.FromColorful(colorful.Hsl(h, lerp(s1, s2, t), lerp(l1, l2, t)))
}

// Kubelka-Munk reflectance is clamped away from the 0/1 endpoints to keep
// the K/S ratio finite.
const (
	reflectanceMin = 0.001
	reflectanceMax = 0.999
)

// blendSpectral approximates Kubelka-Munk pigment mixing: per channel,
// reflectance is converted to an absorption/scattering ratio
// K/S = (1-R)^2 / 2R, the ratios are interpolated, and the result is
// inverted via R = 1 + K/S - sqrt((K/S)^2 + 2 K/S).
func blendSpectral(a, b colorspace.RGB, t float64) colorspace.RGB {
	mix := func(ca, cb uint8) uint8 {
		ra := clampReflectance(float64(ca) / 255.0)
		rb := clampReflectance(float64(cb) / 255.0)

		ksa := (1 - ra) * (1 - ra) / (2 * ra)
		ksb := (1 - rb) * (1 - rb) / (2 * rb)
		ks := lerp(ksa, ksb, t)

		r := 1 + ks - math.Sqrt(ks*ks+2*ks)
		return roundChannel(r * 255.0)
	}

	return colorspace.RGB{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
	}
}

func clampReflectance(r float64) float64 {
	if r < reflectanceMin {
		return reflectanceMin
	}
	if r > reflectanceMax {
		return reflectanceMax
	}
	return r
}

func roundChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
