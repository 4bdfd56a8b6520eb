package dye

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/glamkit/dyematch/internal/colorspace"
)

//go:embed dyes.json
var defaultData []byte

// Database is the immutable, process-lifetime dye collection.
//
// Construct one per process with LoadDefault (or NewDatabase for fixture
// data in tests) and share it by pointer; it is never mutated after
// construction, so no locking is needed.
type Database struct {
	records []Record
	byID    map[int]int // ID -> index into records
}

// LoadDefault builds the database from the embedded dye data.
func LoadDefault() (*Database, error) {
	return NewDatabase(defaultData)
}

// NewDatabase builds a database from a JSON array of dye records.
//
// Each record's RGB and HSV fields are derived from its hex string, the hex
// string is canonicalized to uppercase "#RRGGBB" form, and records are
// sorted by ID for stable iteration.
//
// Returns an error for malformed JSON, an empty record set, a malformed
// hex string, or a duplicate ID. These are contract violations of the data
// source and fail loudly at startup rather than surfacing later as wrong
// matches.
func NewDatabase(jsonData []byte) (*Database, error) {
	var records []Record
	if err := json.Unmarshal(jsonData, &records); err != nil {
		return nil, fmt.Errorf("failed to parse dye data: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dye database is empty")
	}

	byID := make(map[int]int, len(records))
	for i := range records {
		r := &records[i]

		rgb, err := colorspace.ParseHex(r.Hex)
		if err != nil {
			return nil, fmt.Errorf("dye %d (%s): %w", r.ID, r.Name, err)
		}
		r.Hex = rgb.Hex()
		r.RGB = rgb
		r.HSV = colorspace.ToHSV(rgb)

		if _, err := ParseCategory(string(r.Category)); err != nil {
			return nil, fmt.Errorf("dye %d (%s): %w", r.ID, r.Name, err)
		}
		if _, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate dye id %d", r.ID)
		}
		byID[r.ID] = i
	}

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	for i := range records {
		byID[records[i].ID] = i
	}

	return &Database{records: records, byID: byID}, nil
}

// Len returns the number of records.
func (db *Database) Len() int {
	return len(db.records)
}

// All returns every record in ascending ID order. The returned slice is
// shared and must be treated as read-only.
func (db *Database) All() []Record {
	return db.records
}

// ByID looks up a record by its database identifier.
func (db *Database) ByID(id int) (Record, bool) {
	i, ok := db.byID[id]
	if !ok {
		return Record{}, false
	}
	return db.records[i], true
}

// ByCategory returns every record in the given category, in ID order.
func (db *Database) ByCategory(c Category) []Record {
	var out []Record
	for _, r := range db.records {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}
