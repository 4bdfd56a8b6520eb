package palette

import (
	"fmt"
	"math"
	"sort"

	"github.com/glamkit/dyematch/internal/colorspace"
)

// Pixel is one image sample with an alpha channel.
type Pixel struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255, 0 = transparent)
}

// MaxClusters is the largest cluster count Extract accepts.
const MaxClusters = 5

// Options bounds a palette extraction. Start from DefaultOptions and
// override what you need.
type Options struct {
	// Clusters is the target cluster count K, 1 to MaxClusters. The
	// effective count shrinks when the input has fewer distinct colors.
	Clusters int

	// AlphaThreshold discards pixels whose alpha is below it before
	// clustering. 0 keeps every pixel.
	AlphaThreshold uint8

	// MaxIterations caps the k-means refinement loop.
	MaxIterations int

	// SampleCap bounds how many opaque pixels are clustered; larger
	// inputs are thinned with a fixed stride.
	SampleCap int
}

// DefaultOptions are the bounds ordinary callers use.
var DefaultOptions = Options{
	Clusters:       5,
	AlphaThreshold: 128,
	MaxIterations:  30,
	SampleCap:      4096,
}

// Cluster is one extracted dominant color.
type Cluster struct {
	// Color is the cluster centroid, rounded to 8-bit RGB.
	Color colorspace.RGB `json:"color"`

	// Dominance is the percentage of sampled pixels assigned to this
	// cluster, 0-100. Dominances of one extraction sum to ~100, subject
	// to rounding.
	Dominance int `json:"dominance"`

	// Pixels is the number of sampled pixels assigned to this cluster.
	Pixels int `json:"pixels"`
}

// centroid is a cluster center with float precision between iterations.
type centroid struct {
	r, g, b float64
}

// Extract clusters the opaque pixels of an image into the dominant colors.
//
// Pixels below opts.AlphaThreshold are discarded first; if nothing
// survives, the result is an empty slice with a nil error — "no usable
// pixels" is an expected outcome, not a failure. Clusters come back in
// descending dominance order.
//
// Returns an error only for a cluster count outside [1, MaxClusters],
// which is a programming error on the caller's side.
func Extract(pixels []Pixel, opts Options) ([]Cluster, error) {
	if opts.Clusters < 1 || opts.Clusters > MaxClusters {
		return nil, fmt.Errorf("cluster count %d out of range [1,%d]", opts.Clusters, MaxClusters)
	}
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultOptions.MaxIterations
	}
	sampleCap := opts.SampleCap
	if sampleCap <= 0 {
		sampleCap = DefaultOptions.SampleCap
	}

	samples := opaqueSamples(pixels, opts.AlphaThreshold, sampleCap)
	if len(samples) == 0 {
		return []Cluster{}, nil
	}

	centroids := seedCentroids(samples, opts.Clusters)
	assignment := make([]int, len(samples))
	for i := range assignment {
		assignment[i] = -1
	}

	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, p := range samples {
			best := nearestCentroid(p, centroids)
			if assignment[i] != best {
				assignment[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}
		recomputeCentroids(centroids, samples, assignment)
	}

	return buildClusters(centroids, samples, assignment), nil
}

// opaqueSamples filters transparent pixels and thins the survivors to the
// sample cap with a fixed stride, keeping the result deterministic.
func opaqueSamples(pixels []Pixel, alphaThreshold uint8, sampleCap int) []colorspace.RGB {
	opaque := make([]colorspace.RGB, 0, len(pixels))
	for _, p := range pixels {
		if p.A < alphaThreshold {
			continue
		}
		opaque = append(opaque, colorspace.RGB{R: p.R, G: p.G, B: p.B})
	}

	if len(opaque) <= sampleCap {
		return opaque
	}
	stride := (len(opaque) + sampleCap - 1) / sampleCap
	sampled := make([]colorspace.RGB, 0, sampleCap)
	for i := 0; i < len(opaque); i += stride {
		sampled = append(sampled, opaque[i])
	}
	return sampled
}

// seedCentroids picks the initial centers: distinct sampled colors at
// evenly spaced positions of the first-seen distinct sequence. The
// effective count shrinks to the distinct-color count, so no two seeds
// coincide and no cluster starts empty by construction.
func seedCentroids(samples []colorspace.RGB, k int) []centroid {
	seen := make(map[colorspace.RGB]bool)
	var distinct []colorspace.RGB
	for _, s := range samples {
		if !seen[s] {
			seen[s] = true
			distinct = append(distinct, s)
		}
	}

	if k > len(distinct) {
		k = len(distinct)
	}
	centroids := make([]centroid, k)
	for i := 0; i < k; i++ {
		s := distinct[i*len(distinct)/k]
		centroids[i] = centroid{r: float64(s.R), g: float64(s.G), b: float64(s.B)}
	}
	return centroids
}

// nearestCentroid returns the index of the centroid closest to p by
// squared RGB distance; ties go to the lowest index.
func nearestCentroid(p colorspace.RGB, centroids []centroid) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, c := range centroids {
		dr := float64(p.R) - c.r
		dg := float64(p.G) - c.g
		db := float64(p.B) - c.b
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// recomputeCentroids moves every centroid to the mean of its assigned
// samples. A centroid that lost all its samples keeps its position.
func recomputeCentroids(centroids []centroid, samples []colorspace.RGB, assignment []int) {
	sums := make([]centroid, len(centroids))
	counts := make([]int, len(centroids))
	for i, p := range samples {
		c := assignment[i]
		sums[c].r += float64(p.R)
		sums[c].g += float64(p.G)
		sums[c].b += float64(p.B)
		counts[c]++
	}
	for i := range centroids {
		if counts[i] == 0 {
			continue
		}
		n := float64(counts[i])
		centroids[i] = centroid{r: sums[i].r / n, g: sums[i].g / n, b: sums[i].b / n}
	}
}

// buildClusters turns the final centroids and assignment into the public
// result: empty clusters dropped, dominance computed against the sampled
// total, ordered by descending dominance.
func buildClusters(centroids []centroid, samples []colorspace.RGB, assignment []int) []Cluster {
	counts := make([]int, len(centroids))
	for _, c := range assignment {
		counts[c]++
	}

	total := len(samples)
	clusters := make([]Cluster, 0, len(centroids))
	for i, c := range centroids {
		if counts[i] == 0 {
			continue
		}
		clusters = append(clusters, Cluster{
			Color: colorspace.RGB{
				R: roundChannel(c.r),
				G: roundChannel(c.g),
				B: roundChannel(c.b),
			},
			Dominance: int(math.Round(float64(counts[i]) / float64(total) * 100)),
			Pixels:    counts[i],
		})
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Dominance > clusters[j].Dominance
	})
	return clusters
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
