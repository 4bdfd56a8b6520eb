package dye

import (
	"fmt"

	"github.com/glamkit/dyematch/internal/colorspace"
)

// Category groups dyes the way the in-game dye window does.
//
// Category is a closed string enumeration; ParseCategory is the boundary
// for external category strings.
type Category string

const (
	CategoryGrey   Category = "Grey"
	CategoryRed    Category = "Red"
	CategoryBrown  Category = "Brown"
	CategoryYellow Category = "Yellow"
	CategoryGreen  Category = "Green"
	CategoryBlue   Category = "Blue"
	CategoryPurple Category = "Purple"

	// CategoryRare holds metallic, pearlescent, and pastel dyes that are
	// not sold by ordinary vendors.
	CategoryRare Category = "Rare"

	// CategoryFacewear is reserved for facewear color entries whose names
	// are generic color words rather than dye names. Most name-based
	// search paths filter this category out.
	CategoryFacewear Category = "Facewear"
)

// categories lists every valid Category.
var categories = []Category{
	CategoryGrey,
	CategoryRed,
	CategoryBrown,
	CategoryYellow,
	CategoryGreen,
	CategoryBlue,
	CategoryPurple,
	CategoryRare,
	CategoryFacewear,
}

// ParseCategory validates an external category string.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown dye category %q", s)
}

// Record is one entry of the dye database.
//
// Records are immutable after the database is built. The Hex, RGB, and HSV
// fields always describe the same color: RGB and HSV are derived from Hex
// at load time, so they never drift apart.
type Record struct {
	// ID is the database identifier, unique and stable. Ties in distance
	// searches resolve toward the lowest ID.
	ID int `json:"id"`

	// ItemID is the external item identifier collaborators use for
	// localization and market lookups.
	ItemID int `json:"item_id"`

	// Name is the source-language canonical display name (not localized).
	Name string `json:"name"`

	// Hex is the canonical "#RRGGBB" uppercase color string.
	Hex string `json:"hex"`

	// RGB is the parsed color, derived from Hex.
	RGB colorspace.RGB `json:"rgb"`

	// HSV is the parsed color in HSV, derived from Hex.
	HSV colorspace.HSV `json:"hsv"`

	// Category is the dye window grouping.
	Category Category `json:"category"`

	// Acquisition is a free-text classification of how the dye is
	// obtained ("vendor", "crafted", ...), used by callers for market
	// filtering.
	Acquisition string `json:"acquisition"`

	// Cost is the acquisition cost in whatever currency the acquisition
	// method implies.
	Cost int `json:"cost"`
}
