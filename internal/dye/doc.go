// Package dye provides the fixed dye database and nearest-neighbor search
// over it.
//
// The database is an immutable, process-lifetime collection of dye records
// loaded once from an embedded JSON document (or from caller-supplied data
// in tests). Every record carries mutually consistent hex, RGB, and HSV
// representations, a category tag, and acquisition metadata for callers
// that filter by market availability.
//
// # Searching
//
// A Matcher binds a Database to one distance metric from
// internal/colorspace and answers closest-dye, top-N, range, and
// color-harmony queries with a linear scan. At this scale (low hundreds of
// records) a scan beats a spatial index on both simplicity and constant
// factors. Ties are broken toward the lowest dye ID so results are
// deterministic.
//
// "No match" is a normal outcome reported through an ok bool, never an
// error: it occurs only when exclusions exhaust the database.
//
// # Thread Safety
//
// A Database is never mutated after construction, so it and any Matchers
// bound to it are safe for concurrent use without locking.
//
// # The Facewear Category
//
// Facewear records use generic color words ("Red", "Blue") rather than dye
// names. Name-based resolution skips them, and most matching callers
// exclude the category so that generic entries never shadow real dyes.
package dye
