// Package blend mixes two colors under a selectable blending model.
//
// Six models are supported, each with its own forward/inverse color space
// conversion pair:
//
//   - rgb: per-channel linear interpolation in 8-bit RGB
//   - lab: interpolation in CIELAB
//   - oklab: interpolation in OKLab; unlike CIELAB it keeps a blue/red mix
//     out of the muddy purple region, closer to artist intuition
//   - ryb: interpolation in the approximate artist-pigment RYB space, so
//     red+yellow mixes toward orange instead of the RGB average
//   - hsl: interpolation in HSL with hue taken along the shorter arc of
//     the color wheel
//   - spectral: an approximate Kubelka-Munk pigment model blending
//     per-channel absorption/scattering ratios
//
// The mix ratio is clamped to [0,1] (0 is pure A, 1 is pure B); ratio is
// an internal tuning knob, so out-of-range values are clamped rather than
// rejected. Boundary ratios return the inputs exactly. All modes produce
// an 8-bit RGB triple and its canonical uppercase hex string.
package blend
