package colorspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSV represents a color in HSV (Hue, Saturation, Value) color space.
type HSV struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	V int `json:"v"` // Value: 0-100 percent (0=black, 100=brightest)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// HSL is often more intuitive for color manipulation than RGB:
//   - Hue represents the color type (red, green, blue, etc.)
//   - Saturation represents color intensity (gray to vivid)
//   - Lightness represents brightness (black to white)
type HSL struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ParseHex parses a hex color string into an RGB value.
//
// The input must be exactly 6 hexadecimal digits, optionally prefixed with
// "#". Case is ignored. Three-digit shorthand such as "#F00" is rejected;
// expanding shorthand is the responsibility of the input-resolution layer,
// not this engine.
//
// Returns:
//   - RGB: The parsed color.
//   - error: Non-nil if the string is not a 6-digit hex color.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Hex returns the canonical "#RRGGBB" uppercase hex form of the color.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Colorful converts the color to a go-colorful Color with channels
// normalized to [0,1].
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts a go-colorful Color back to 8-bit RGB, clamping
// out-of-gamut channels into the valid range before rounding.
func FromColorful(cc colorful.Color) RGB {
	cc = cc.Clamped()
	return RGB{
		R: uint8(math.Round(cc.R * 255.0)),
		G: uint8(math.Round(cc.G * 255.0)),
		B: uint8(math.Round(cc.B * 255.0)),
	}
}

// clampChannel rounds a float channel value to the nearest 8-bit integer,
// clamping to [0,255].
func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
