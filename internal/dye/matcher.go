package dye

import (
	"sort"

	"github.com/glamkit/dyematch/internal/colorspace"
)

// Match pairs a dye record with its distance from a search target.
type Match struct {
	// Dye is the matched record.
	Dye Record `json:"dye"`

	// Distance is the perceptual distance between the target and the
	// record under the matcher's metric.
	Distance float64 `json:"distance"`

	// Quality is the presentation tier for Distance ("perfect",
	// "excellent", "good", "fair", or "approximate").
	Quality string `json:"quality"`
}

// Matcher answers nearest-neighbor and range queries over a Database under
// one fixed distance metric.
//
// A Matcher holds no mutable state and is safe for concurrent use.
type Matcher struct {
	db     *Database
	metric colorspace.Metric
}

// NewMatcher binds a database to a distance metric.
func NewMatcher(db *Database, metric colorspace.Metric) *Matcher {
	return &Matcher{db: db, metric: metric}
}

// Metric returns the metric the matcher searches under.
func (m *Matcher) Metric() colorspace.Metric {
	return m.metric
}

// FindClosest returns the non-excluded record closest to target.
//
// The scan is linear over the whole database; ties break toward the lowest
// dye ID. The ok result is false only when every record is excluded —
// a normal outcome, not an error.
func (m *Matcher) FindClosest(target colorspace.RGB, excludeIDs ...int) (Match, bool) {
	excluded := make(map[int]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	return m.findClosest(target, excluded)
}

// findClosest is FindClosest with a caller-owned exclusion set, so the
// iterative searches can accumulate exclusions without rebuilding maps.
func (m *Matcher) findClosest(target colorspace.RGB, excluded map[int]bool) (Match, bool) {
	best := Match{}
	found := false

	// Records are in ascending ID order, so the strict < keeps the lowest
	// ID on ties.
	for _, r := range m.db.records {
		if excluded[r.ID] {
			continue
		}
		d := colorspace.Distance(target, r.RGB, m.metric)
		if !found || d < best.Distance {
			best = Match{Dye: r, Distance: d, Quality: colorspace.Quality(d)}
			found = true
		}
	}
	return best, found
}

// FindClosestExcludingCategory returns the closest record outside the
// forbidden category.
//
// It repeatedly takes the closest remaining record and discards it when it
// falls in the category, up to maxAttempts discards. The attempt cap
// guards against databases dominated by the forbidden category; when it is
// exhausted, or when exclusions empty the database, ok is false.
func (m *Matcher) FindClosestExcludingCategory(target colorspace.RGB, category Category, maxAttempts int) (Match, bool) {
	excluded := make(map[int]bool)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		match, ok := m.findClosest(target, excluded)
		if !ok {
			return Match{}, false
		}
		if match.Dye.Category != category {
			return match, true
		}
		excluded[match.Dye.ID] = true
	}
	return Match{}, false
}

// FindTopN returns up to n distinct matches in ascending distance order.
//
// Each result is found by re-running the closest search with all earlier
// results excluded, so distances are non-decreasing and no dye repeats.
// Fewer than n matches are returned only when exclusions and database size
// leave fewer eligible records.
func (m *Matcher) FindTopN(target colorspace.RGB, n int, excludeIDs ...int) []Match {
	excluded := make(map[int]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	var out []Match
	for len(out) < n {
		match, ok := m.findClosest(target, excluded)
		if !ok {
			break
		}
		out = append(out, match)
		excluded[match.Dye.ID] = true
	}
	return out
}

// FindWithinDistance returns every record within maxDistance of target,
// sorted ascending by distance (ties toward the lowest ID). A limit of 0
// means no limit; a positive limit truncates the sorted result.
func (m *Matcher) FindWithinDistance(target colorspace.RGB, maxDistance float64, limit int) []Match {
	var out []Match
	for _, r := range m.db.records {
		d := colorspace.Distance(target, r.RGB, m.metric)
		if d <= maxDistance {
			out = append(out, Match{Dye: r, Distance: d, Quality: colorspace.Quality(d)})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Dye.ID < out[j].Dye.ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
