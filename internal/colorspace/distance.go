package colorspace

import (
	"fmt"
	"math"
)

// Metric selects the color-difference model used when comparing two colors.
//
// Metric is a closed enumeration: engine functions only accept the values
// below, and ParseMetric is the single place an external metric string is
// turned into one. An unrecognized string is an error at that boundary, so
// the engine itself never sees an invalid metric.
type Metric int

const (
	// MetricRGB is plain Euclidean distance in 8-bit RGB space,
	// range 0 to ~441.67.
	MetricRGB Metric = iota

	// MetricCIE76 is Euclidean distance in CIELAB.
	MetricCIE76

	// MetricCIEDE2000 is the full CIE industry-standard formula with
	// chroma and hue weighting. The default for dye matching because it
	// best matches human perception.
	MetricCIEDE2000

	// MetricOKLab is Euclidean distance in OKLab, reported on the 0-100
	// delta-E scale.
	MetricOKLab

	// MetricHyAB sums the absolute lightness difference with the
	// Euclidean distance of the two remaining CIELAB channels. More
	// robust than CIE76 for very large color differences.
	MetricHyAB
)

// metricNames maps each Metric to its boundary identifier.
var metricNames = map[Metric]string{
	MetricRGB:       "rgb",
	MetricCIE76:     "cie76",
	MetricCIEDE2000: "ciede2000",
	MetricOKLab:     "oklab",
	MetricHyAB:      "hyab",
}

// String returns the boundary identifier for the metric.
func (m Metric) String() string {
	if s, ok := metricNames[m]; ok {
		return s
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

// ParseMetric converts a boundary metric string into a Metric.
//
// Valid identifiers are "rgb", "cie76", "ciede2000", "oklab", and "hyab".
// Anything else is an error; there is no silent fallback.
func ParseMetric(s string) (Metric, error) {
	for m, name := range metricNames {
		if s == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown distance metric %q (valid: rgb, cie76, ciede2000, oklab, hyab)", s)
}

// Distance computes the difference between two colors under the given
// metric. The result is non-negative, larger means more different, and it
// is 0 iff the colors are identical in the metric's space.
func Distance(a, b RGB, m Metric) float64 {
	switch m {
	case MetricCIE76:
		return a.Colorful().DistanceLab(b.Colorful()) * 100.0
	case MetricCIEDE2000:
		return a.Colorful().DistanceCIEDE2000(b.Colorful()) * 100.0
	case MetricOKLab:
		l1, a1, b1 := ToOKLab(a)
		l2, a2, b2 := ToOKLab(b)
		return math.Sqrt(sq(l1-l2)+sq(a1-a2)+sq(b1-b2)) * 100.0
	case MetricHyAB:
		l1, a1, b1 := ToLab(a)
		l2, a2, b2 := ToLab(b)
		return math.Abs(l1-l2) + math.Sqrt(sq(a1-a2)+sq(b1-b2))
	default:
		return DistanceRGB(a, b)
	}
}

// DistanceRGB computes plain Euclidean distance in 8-bit RGB space.
func DistanceRGB(a, b RGB) float64 {
	return DistanceRGBWeighted(a, b, 1, 1, 1)
}

// DistanceRGBWeighted computes Euclidean distance in 8-bit RGB space with
// per-channel weights, for callers that want to bias particular channels.
func DistanceRGBWeighted(a, b RGB, wr, wg, wb float64) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(wr*dr*dr + wg*dg*dg + wb*db*db)
}

// Quality classifies a distance value into the presentation tier shared by
// all distance-consuming callers.
//
// Tiers: 0 is "perfect", under 10 "excellent", under 25 "good", under 50
// "fair", everything else "approximate". Boundaries belong to the lower
// tier: a distance of exactly 10 is "good", not "excellent".
func Quality(d float64) string {
	switch {
	case d == 0:
		return "perfect"
	case d < 10:
		return "excellent"
	case d < 25:
		return "good"
	case d < 50:
		return "fair"
	default:
		return "approximate"
	}
}

func sq(v float64) float64 { return v * v }
