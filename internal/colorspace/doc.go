// Package colorspace provides color representations, conversions between
// color spaces, and perceptual distance metrics for the dye matching engine.
//
// This package implements the numeric core that every other engine package
// builds on: sRGB gamma handling, CIEXYZ/CIELAB, OKLab, an approximate RYB
// "artist pigment" space, and the cylindrical HSL/HSV transforms, plus the
// distance metrics (RGB Euclidean, CIE76, CIEDE2000, OKLab, HyAB) used for
// nearest-dye search.
//
// # Value Ranges
//
// Public boundaries use 8-bit integer channels:
//   - RGB: 0-255 per channel
//   - HSV/HSL: hue 0-360 degrees, saturation/value/lightness 0-100 percent
//
// Conversions compute in float64 internally and round and clamp results
// before returning them across the boundary. Round-tripping an RGB value
// through CIELAB or OKLab reproduces every channel within +/-1.
//
// # Distance Scales
//
// CIELAB-family metrics (CIE76, CIEDE2000, HyAB) and the OKLab metric are
// reported on the conventional 0-100 delta-E scale; go-colorful internally
// normalizes L to [0,1], so its results are scaled up by 100 here. The RGB
// metric keeps its native 0-441.67 range. Quality classifies any of these
// into the five presentation tiers shared by all callers.
//
// # Dependencies
//
// CIELAB, HSL/HSV, CIE76, and CIEDE2000 are delegated to
// github.com/lucasb-eyer/go-colorful. OKLab and RYB have no counterpart in
// that library and are implemented here from the published OKLab matrices
// and the fixed whiteness-extraction RYB heuristic.
package colorspace
