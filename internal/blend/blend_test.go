package blend

import (
	"testing"

	"github.com/glamkit/dyematch/internal/colorspace"
)

var allModes = []Mode{ModeRGB, ModeLab, ModeOKLab, ModeRYB, ModeHSL, ModeSpectral}

func hex(t *testing.T, s string) colorspace.RGB {
	t.Helper()
	c, err := colorspace.ParseHex(s)
	if err != nil {
		t.Fatalf("bad test hex %q: %v", s, err)
	}
	return c
}

func TestBlend_BoundaryRatiosExact(t *testing.T) {
	a := hex(t, "#E29B93")
	b := hex(t, "#1F3C5C")

	for _, mode := range allModes {
		t.Run(mode.String(), func(t *testing.T) {
			if got := Blend(a, b, mode, 0); got.RGB != a {
				t.Errorf("ratio 0: got %s, want %s exactly", got.Hex, a.Hex())
			}
			if got := Blend(a, b, mode, 1); got.RGB != b {
				t.Errorf("ratio 1: got %s, want %s exactly", got.Hex, b.Hex())
			}
			// Out-of-range ratios clamp silently.
			if got := Blend(a, b, mode, -0.7); got.RGB != a {
				t.Errorf("ratio -0.7: got %s, want %s", got.Hex, a.Hex())
			}
			if got := Blend(a, b, mode, 1.7); got.RGB != b {
				t.Errorf("ratio 1.7: got %s, want %s", got.Hex, b.Hex())
			}
		})
	}
}

func TestBlend_RGBMidpoint(t *testing.T) {
	got := Blend(hex(t, "#FF0000"), hex(t, "#0000FF"), ModeRGB, 0.5)
	if got.Hex != "#800080" {
		t.Errorf("rgb mid of red and blue: got %s, want #800080", got.Hex)
	}
}

func TestBlend_HSLShortestArc(t *testing.T) {
	// Red (hue 0) to blue (hue 240): the short arc runs through 300, not
	// through the ~120 green that naive interpolation would give.
	got := Blend(hex(t, "#FF0000"), hex(t, "#0000FF"), ModeHSL, 0.5)
	h := colorspace.ToHSV(got.RGB).H
	if h < 280 || h > 320 {
		t.Errorf("hsl mid of red and blue: hue %d, want near 300 (got %s)", h, got.Hex)
	}
}

func TestBlend_HSLWrapsThroughZero(t *testing.T) {
	// Hues 350 and 10 interpolate through 0/360, not through 180.
	a := colorspace.HSLToRGB(colorspace.HSL{H: 350, S: 100, L: 50})
	b := colorspace.HSLToRGB(colorspace.HSL{H: 10, S: 100, L: 50})

	got := Blend(a, b, ModeHSL, 0.5)
	h := colorspace.ToHSV(got.RGB).H
	if h > 15 && h < 345 {
		t.Errorf("hue %d crossed the long arc (got %s)", h, got.Hex)
	}
}

func TestBlend_RYBRedYellowMakesOrange(t *testing.T) {
	got := Blend(hex(t, "#FF0000"), hex(t, "#FFFF00"), ModeRYB, 0.5)
	h := colorspace.ToHSV(got.RGB).H
	if h < 20 || h > 45 {
		t.Errorf("ryb mid of red and yellow: hue %d, want orange (got %s)", h, got.Hex)
	}
}

func TestBlend_OKLabRedBlueStaysPurple(t *testing.T) {
	got := Blend(hex(t, "#FF0000"), hex(t, "#0000FF"), ModeOKLab, 0.5)
	h := colorspace.ToHSV(got.RGB).H
	if h < 250 || h > 330 {
		t.Errorf("oklab mid of red and blue: hue %d, want purple range (got %s)", h, got.Hex)
	}
}

func TestBlend_SpectralDarkensWhiteBlackMix(t *testing.T) {
	// Pigment mixing is subtractive: a white/black mix lands far darker
	// than the RGB average.
	got := Blend(hex(t, "#FFFFFF"), hex(t, "#000000"), ModeSpectral, 0.5)
	if got.RGB.R != got.RGB.G || got.RGB.G != got.RGB.B {
		t.Errorf("white/black mix should stay neutral, got %s", got.Hex)
	}
	if got.RGB.R > 60 {
		t.Errorf("spectral white/black mix should be dark, got %s", got.Hex)
	}
}

func TestBlend_SpectralStableAtExtremes(t *testing.T) {
	// Reflectance clamping keeps the K/S transform finite at pure white
	// and pure black; self-blends reproduce the input within rounding.
	white := hex(t, "#FFFFFF")
	black := hex(t, "#000000")

	if got := Blend(white, white, ModeSpectral, 0.5); got.RGB != white {
		t.Errorf("white self-blend: got %s", got.Hex)
	}
	if got := Blend(black, black, ModeSpectral, 0.5); got.RGB != black {
		t.Errorf("black self-blend: got %s", got.Hex)
	}
}

func TestBlend_MidpointSymmetric(t *testing.T) {
	a := hex(t, "#C07933")
	b := hex(t, "#4A8C3C")

	for _, mode := range allModes {
		t.Run(mode.String(), func(t *testing.T) {
			ab := Blend(a, b, mode, 0.5)
			ba := Blend(b, a, mode, 0.5)
			if ab.RGB != ba.RGB {
				t.Errorf("midpoint not symmetric: %s vs %s", ab.Hex, ba.Hex)
			}
		})
	}
}

func TestBlend_HexMatchesRGB(t *testing.T) {
	got := Blend(hex(t, "#123456"), hex(t, "#ABCDEF"), ModeLab, 0.25)
	if got.Hex != got.RGB.Hex() {
		t.Errorf("hex %s does not match rgb %s", got.Hex, got.RGB.Hex())
	}
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"rgb", "lab", "oklab", "ryb", "hsl", "spectral"} {
		t.Run(name, func(t *testing.T) {
			m, err := ParseMode(name)
			if err != nil {
				t.Fatalf("ParseMode(%q) failed: %v", name, err)
			}
			if m.String() != name {
				t.Errorf("String() round trip: got %q, want %q", m.String(), name)
			}
		})
	}
}

func TestParseMode_Unknown(t *testing.T) {
	for _, s := range []string{"", "RGB", "average", "spectral "} {
		if _, err := ParseMode(s); err == nil {
			t.Errorf("ParseMode(%q) should fail", s)
		}
	}
}
