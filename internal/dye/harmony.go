package dye

import (
	"github.com/glamkit/dyematch/internal/colorspace"
)

// Harmony helpers. Target hues are computed analytically in HSV — the
// companion keeps the input's saturation and value and only rotates the
// hue — then each target color is matched against the database with
// FindClosest. Results within one call never repeat a dye.

// FindComplementary returns the dye closest to the target's complement
// (hue rotated 180 degrees).
func (m *Matcher) FindComplementary(target colorspace.RGB) (Match, bool) {
	matches := m.matchHueOffsets(target, []int{180}, false)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

// FindAnalogous returns dyes closest to the two analogous companions of
// the target (hue rotated +/-30 degrees).
func (m *Matcher) FindAnalogous(target colorspace.RGB) []Match {
	return m.matchHueOffsets(target, []int{-30, 30}, false)
}

// FindTriadic returns dyes closest to the vertices of the target's triadic
// triangle (hue rotated 0, +120, and -120 degrees). The dye matching the
// base color itself is excluded, so the base never appears in its own
// companion list; at most 3 companions are returned.
func (m *Matcher) FindTriadic(target colorspace.RGB) []Match {
	return m.matchHueOffsets(target, []int{0, 120, 240}, true)
}

// matchHueOffsets matches one companion per hue offset, accumulating found
// IDs into the exclusion set to avoid duplicates. With excludeBase set the
// dye closest to the unrotated target is excluded up front.
func (m *Matcher) matchHueOffsets(target colorspace.RGB, offsets []int, excludeBase bool) []Match {
	hsv := colorspace.ToHSV(target)

	excluded := make(map[int]bool)
	if excludeBase {
		if base, ok := m.findClosest(target, nil); ok {
			excluded[base.Dye.ID] = true
		}
	}

	var out []Match
	for _, off := range offsets {
		companion := colorspace.HSV{H: wrapDegrees(hsv.H + off), S: hsv.S, V: hsv.V}
		match, ok := m.findClosest(colorspace.HSVToRGB(companion), excluded)
		if !ok {
			continue
		}
		out = append(out, match)
		excluded[match.Dye.ID] = true
	}
	return out
}

func wrapDegrees(d int) int {
	d %= 360
	if d < 0 {
		d += 360
	}
	return d
}
