package palette

import (
	"github.com/glamkit/dyematch/internal/colorspace"
	"github.com/glamkit/dyematch/internal/dye"
)

// Match combines an extracted cluster with its closest dye.
//
// It is created per extraction and consumed immediately by presentation
// layers; nothing in the engine retains it.
type Match struct {
	// Color is the extracted cluster color.
	Color colorspace.RGB `json:"color"`

	// Hex is the canonical hex form of Color.
	Hex string `json:"hex"`

	// Dominance is the cluster's share of sampled pixels, 0-100.
	Dominance int `json:"dominance"`

	// Dye is the closest database record to Color.
	Dye dye.Record `json:"dye"`

	// Distance is the perceptual distance between Color and Dye under
	// the matcher's metric.
	Distance float64 `json:"distance"`

	// Quality is the presentation tier for Distance.
	Quality string `json:"quality"`
}

// categoryAttempts bounds the discard loop when a category is excluded;
// large enough that only a database dominated by that category hits it.
const categoryAttempts = 16

// MatchClusters maps each cluster to its closest dye.
func MatchClusters(m *dye.Matcher, clusters []Cluster) []Match {
	out := make([]Match, 0, len(clusters))
	for _, c := range clusters {
		dm, ok := m.FindClosest(c.Color)
		if !ok {
			continue
		}
		out = append(out, newMatch(c, dm))
	}
	return out
}

// MatchClustersExcluding maps each cluster to its closest dye outside the
// given category. Callers matching user images normally exclude
// CategoryFacewear so generic facewear entries never shadow real dyes.
// Clusters with no eligible dye are dropped.
func MatchClustersExcluding(m *dye.Matcher, clusters []Cluster, category dye.Category) []Match {
	out := make([]Match, 0, len(clusters))
	for _, c := range clusters {
		dm, ok := m.FindClosestExcludingCategory(c.Color, category, categoryAttempts)
		if !ok {
			continue
		}
		out = append(out, newMatch(c, dm))
	}
	return out
}

func newMatch(c Cluster, dm dye.Match) Match {
	return Match{
		Color:     c.Color,
		Hex:       c.Color.Hex(),
		Dominance: c.Dominance,
		Dye:       dm.Dye,
		Distance:  dm.Distance,
		Quality:   dm.Quality,
	}
}
