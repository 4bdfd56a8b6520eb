package dye

import (
	"testing"

	"github.com/glamkit/dyematch/internal/colorspace"
)

// primariesDB is a small fixture with one dye per primary/secondary color.
func primariesDB(t *testing.T) *Database {
	t.Helper()
	return fixtureDB(t,
		rec(1, "Crimson", "#FF0000", CategoryRed),
		rec(2, "Cyan Glaze", "#00FFFF", CategoryBlue),
		rec(3, "Verdant", "#00FF00", CategoryGreen),
		rec(4, "Cobalt", "#0000FF", CategoryBlue),
		rec(5, "Fuchsia", "#FF00FF", CategoryPurple),
	)
}

func mustHex(t *testing.T, s string) colorspace.RGB {
	t.Helper()
	c, err := colorspace.ParseHex(s)
	if err != nil {
		t.Fatalf("bad test hex %q: %v", s, err)
	}
	return c
}

func TestFindClosest_ExactMatch(t *testing.T) {
	// Matching #FF0000 against Jet Black, Snow White, and Dalamud Red
	// returns Dalamud Red at distance zero.
	db := fixtureDB(t,
		rec(1, "Jet Black", "#000000", CategoryRare),
		rec(2, "Snow White", "#FFFFFF", CategoryGrey),
		rec(3, "Dalamud Red", "#FF0000", CategoryRed),
	)
	m := NewMatcher(db, colorspace.MetricRGB)

	match, ok := m.FindClosest(mustHex(t, "#FF0000"))
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Dye.Name != "Dalamud Red" {
		t.Errorf("got %s, want Dalamud Red", match.Dye.Name)
	}
	if match.Distance != 0 {
		t.Errorf("distance: got %f, want 0", match.Distance)
	}
	if match.Quality != "perfect" {
		t.Errorf("quality: got %s, want perfect", match.Quality)
	}
}

func TestFindClosest_MinimumProperty(t *testing.T) {
	db, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}

	targets := []string{"#FF0000", "#123456", "#A0B0C0", "#000001", "#7F7F7F"}
	for _, metric := range []colorspace.Metric{colorspace.MetricRGB, colorspace.MetricCIEDE2000, colorspace.MetricOKLab} {
		m := NewMatcher(db, metric)
		for _, hex := range targets {
			target := mustHex(t, hex)
			match, ok := m.FindClosest(target)
			if !ok {
				t.Fatalf("no match for %s", hex)
			}
			for _, r := range db.All() {
				if d := colorspace.Distance(target, r.RGB, metric); d < match.Distance {
					t.Errorf("%s/%s: %s at %f beats returned %s at %f",
						metric, hex, r.Name, d, match.Dye.Name, match.Distance)
				}
			}
		}
	}
}

func TestFindClosest_TieBreaksToLowestID(t *testing.T) {
	db := fixtureDB(t,
		rec(7, "Later Twin", "#336699", CategoryBlue),
		rec(2, "Earlier Twin", "#336699", CategoryBlue),
	)
	m := NewMatcher(db, colorspace.MetricCIEDE2000)

	match, ok := m.FindClosest(mustHex(t, "#336699"))
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Dye.ID != 2 {
		t.Errorf("tie should resolve to lowest ID: got %d", match.Dye.ID)
	}
}

func TestFindClosest_Exclusions(t *testing.T) {
	db := primariesDB(t)
	m := NewMatcher(db, colorspace.MetricRGB)
	target := mustHex(t, "#FF0000")

	match, ok := m.FindClosest(target, 1)
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Dye.ID == 1 {
		t.Error("excluded dye was returned")
	}

	// Excluding everything is a normal no-match outcome.
	if _, ok := m.FindClosest(target, 1, 2, 3, 4, 5); ok {
		t.Error("expected no match when every dye is excluded")
	}
}

func TestFindClosestExcludingCategory(t *testing.T) {
	db := fixtureDB(t,
		rec(1, "Red", "#FF0000", CategoryFacewear),
		rec(2, "Dalamud Red", "#F40000", CategoryRed),
		rec(3, "Cobalt", "#0000FF", CategoryBlue),
	)
	m := NewMatcher(db, colorspace.MetricRGB)
	target := mustHex(t, "#FF0000")

	match, ok := m.FindClosestExcludingCategory(target, CategoryFacewear, 10)
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Dye.Name != "Dalamud Red" {
		t.Errorf("got %s, want the closest non-Facewear dye", match.Dye.Name)
	}
}

func TestFindClosestExcludingCategory_Exhausted(t *testing.T) {
	db := fixtureDB(t,
		rec(1, "Red", "#FF0000", CategoryFacewear),
		rec(2, "Blue", "#0000FF", CategoryFacewear),
	)
	m := NewMatcher(db, colorspace.MetricRGB)
	target := mustHex(t, "#FF0000")

	// Every record is in the forbidden category.
	if _, ok := m.FindClosestExcludingCategory(target, CategoryFacewear, 10); ok {
		t.Error("expected no match when the category covers the database")
	}

	// The attempt cap also ends the search.
	if _, ok := m.FindClosestExcludingCategory(target, CategoryFacewear, 1); ok {
		t.Error("expected no match when attempts are exhausted")
	}
}

func TestFindTopN(t *testing.T) {
	db := primariesDB(t)
	m := NewMatcher(db, colorspace.MetricRGB)

	matches := m.FindTopN(mustHex(t, "#FF0000"), 3)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}

	seen := make(map[int]bool)
	for i, match := range matches {
		if seen[match.Dye.ID] {
			t.Errorf("duplicate dye %d in results", match.Dye.ID)
		}
		seen[match.Dye.ID] = true
		if i > 0 && matches[i].Distance < matches[i-1].Distance {
			t.Errorf("distances decrease at %d: %f after %f", i, matches[i].Distance, matches[i-1].Distance)
		}
	}

	if matches[0].Dye.Name != "Crimson" {
		t.Errorf("first match: got %s, want Crimson", matches[0].Dye.Name)
	}
}

func TestFindTopN_ExhaustsDatabase(t *testing.T) {
	db := primariesDB(t)
	m := NewMatcher(db, colorspace.MetricRGB)

	matches := m.FindTopN(mustHex(t, "#FF0000"), 50)
	if len(matches) != db.Len() {
		t.Errorf("expected %d matches for oversized n, got %d", db.Len(), len(matches))
	}
}

func TestFindWithinDistance(t *testing.T) {
	db := fixtureDB(t,
		rec(1, "Exact", "#808080", CategoryGrey),
		rec(2, "Near", "#808090", CategoryGrey),
		rec(3, "Far", "#FFFFFF", CategoryGrey),
	)
	m := NewMatcher(db, colorspace.MetricRGB)
	target := mustHex(t, "#808080")

	matches := m.FindWithinDistance(target, 16, 0)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches within 16, got %d", len(matches))
	}
	if matches[0].Dye.Name != "Exact" || matches[1].Dye.Name != "Near" {
		t.Errorf("wrong order: %s, %s", matches[0].Dye.Name, matches[1].Dye.Name)
	}

	// The boundary is inclusive: Near sits exactly at distance 16.
	if matches[1].Distance != 16 {
		t.Errorf("Near distance: got %f, want 16", matches[1].Distance)
	}

	if got := m.FindWithinDistance(target, 16, 1); len(got) != 1 {
		t.Errorf("limit not applied: got %d matches", len(got))
	}

	if got := m.FindWithinDistance(mustHex(t, "#008000"), 1, 0); len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}

func TestFindComplementary(t *testing.T) {
	db := primariesDB(t)
	m := NewMatcher(db, colorspace.MetricRGB)

	match, ok := m.FindComplementary(mustHex(t, "#FF0000"))
	if !ok {
		t.Fatal("expected a complementary match")
	}
	if match.Dye.Name != "Cyan Glaze" {
		t.Errorf("complement of red: got %s, want Cyan Glaze", match.Dye.Name)
	}
}

func TestFindTriadic(t *testing.T) {
	db := primariesDB(t)
	m := NewMatcher(db, colorspace.MetricRGB)

	matches := m.FindTriadic(mustHex(t, "#FF0000"))
	if len(matches) == 0 || len(matches) > 3 {
		t.Fatalf("expected 1-3 companions, got %d", len(matches))
	}

	seen := make(map[int]bool)
	for _, match := range matches {
		if match.Dye.Name == "Crimson" {
			t.Error("base color appeared in its own companion list")
		}
		if seen[match.Dye.ID] {
			t.Errorf("duplicate companion %s", match.Dye.Name)
		}
		seen[match.Dye.ID] = true
	}

	// The 120/240 degree vertices are exact dyes in this fixture.
	if !seen[3] || !seen[4] {
		t.Errorf("expected Verdant and Cobalt among companions, got %+v", matches)
	}
}

func TestFindAnalogous(t *testing.T) {
	db := primariesDB(t)
	m := NewMatcher(db, colorspace.MetricRGB)

	matches := m.FindAnalogous(mustHex(t, "#FF0000"))
	if len(matches) != 2 {
		t.Fatalf("expected 2 analogous companions, got %d", len(matches))
	}
	if matches[0].Dye.ID == matches[1].Dye.ID {
		t.Error("analogous companions should be distinct")
	}
}

func TestResolve(t *testing.T) {
	db := fixtureDB(t,
		rec(1, "Dalamud Red", "#792A2A", CategoryRed),
		rec(2, "Red", "#A82A2A", CategoryFacewear),
	)

	t.Run("dye name", func(t *testing.T) {
		r, err := Resolve(db, "dalamud red")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if r.Dye == nil || r.Dye.ID != 1 {
			t.Fatalf("expected link to dye 1, got %+v", r.Dye)
		}
		if r.Hex != "#792A2A" {
			t.Errorf("hex: got %s, want #792A2A", r.Hex)
		}
	})

	t.Run("facewear name skipped", func(t *testing.T) {
		// "Red" is a Facewear entry; as a bare word it is not valid hex
		// either, so resolution fails.
		if _, err := Resolve(db, "Red"); err == nil {
			t.Error("Facewear names should not resolve")
		}
	})

	t.Run("hex input", func(t *testing.T) {
		r, err := Resolve(db, "ff8040")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if r.Dye != nil {
			t.Error("hex input should not link to a dye")
		}
		if r.Hex != "#FF8040" {
			t.Errorf("hex: got %s, want #FF8040", r.Hex)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, input := range []string{"", "not a dye", "#F00"} {
			if _, err := Resolve(db, input); err == nil {
				t.Errorf("Resolve(%q) should fail", input)
			}
		}
	})
}
