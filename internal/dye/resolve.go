package dye

import (
	"fmt"
	"strings"

	"github.com/glamkit/dyematch/internal/colorspace"
)

// ResolvedColor is a color a caller specified, canonicalized.
//
// It is a transient value owned by the caller; the engine never retains
// it. Dye is non-nil only when the input was recognized as a database
// entry name.
type ResolvedColor struct {
	// Hex is the canonical "#RRGGBB" uppercase form of the input.
	Hex string `json:"hex"`

	// RGB is the parsed color.
	RGB colorspace.RGB `json:"rgb"`

	// Dye links back to the database record when the input was a dye
	// name, nil otherwise.
	Dye *Record `json:"dye,omitempty"`
}

// Resolve canonicalizes user color input: a dye name (case-insensitive,
// Facewear entries excluded because their names are generic color words)
// or a 6-digit hex string with optional "#".
//
// An input that is neither is an error; shorthand hex like "#F00" must be
// expanded before it reaches the engine.
func Resolve(db *Database, input string) (ResolvedColor, error) {
	trimmed := strings.TrimSpace(input)

	for i := range db.records {
		r := &db.records[i]
		if r.Category == CategoryFacewear {
			continue
		}
		if strings.EqualFold(r.Name, trimmed) {
			return ResolvedColor{Hex: r.Hex, RGB: r.RGB, Dye: r}, nil
		}
	}

	rgb, err := colorspace.ParseHex(trimmed)
	if err != nil {
		return ResolvedColor{}, fmt.Errorf("%q is neither a dye name nor a hex color: %w", input, err)
	}
	return ResolvedColor{Hex: rgb.Hex(), RGB: rgb}, nil
}
