package utils

import (
	"testing"

	"loop/internal/models"
)

func sample() []models.University {
	return []models.University{
		{ID: 1, Title: "MIT", Country: "United States", Region: "Massachusetts", Address: "77 Massachusetts Ave, Cambridge", Rating: 3},
		{ID: 2, Title: "ETH Zurich", Country: "Switzerland", Region: "Zurich", Address: "Ramistrasse 101", Rating: 5},
		{ID: 3, Title: "University of Melbourne", Country: "Australia", Region: "Victoria", Address: "Parkville VIC 3010", Rating: 0},
	}
}

func TestFilterUniversitiesEmptyQuery(t *testing.T) {
	unis := sample()
	got := FilterUniversities(unis, "")
	if len(got) != len(unis) {
		t.Errorf("Expected %d universities for empty query, got %d", len(unis), len(got))
	}

	got = FilterUniversities(unis, "   ")
	if len(got) != len(unis) {
		t.Errorf("Expected whitespace query to match everything, got %d", len(got))
	}
}

func TestFilterUniversitiesCaseInsensitive(t *testing.T) {
	got := FilterUniversities(sample(), "mit")
	if len(got) == 0 {
		t.Fatal("Expected 'mit' to match MIT")
	}
	found := false
	for _, uni := range got {
		if uni.Title == "MIT" {
			found = true
		}
	}
	if !found {
		t.Error("MIT missing from results for query 'mit'")
	}
}

func TestFilterUniversitiesMatchesAnyField(t *testing.T) {
	cases := []struct {
		query  string
		wantID uint
	}{
		{"switzerland", 2}, // country
		{"victoria", 3},    // region
		{"ramistrasse", 2}, // address
		{"melbourne", 3},   // title
	}

	for _, tc := range cases {
		got := FilterUniversities(sample(), tc.query)
		if len(got) != 1 {
			t.Errorf("Query %q: expected 1 match, got %d", tc.query, len(got))
			continue
		}
		if got[0].ID != tc.wantID {
			t.Errorf("Query %q: expected university %d, got %d", tc.query, tc.wantID, got[0].ID)
		}
	}
}

func TestFilterUniversitiesEmptyQueryReturnsCopy(t *testing.T) {
	shared := sample()
	got := FilterUniversities(shared, "")

	SortUniversities(got, SortByRating)

	if shared[0].ID != 1 {
		t.Errorf("Sorting a filtered result reordered the source slice: first ID now %d", shared[0].ID)
	}
	if got[0].ID != 2 {
		t.Errorf("Expected rating sort to put university 2 first, got %d", got[0].ID)
	}
}

func TestFilterUniversitiesNoMatch(t *testing.T) {
	got := FilterUniversities(sample(), "atlantis")
	if len(got) != 0 {
		t.Errorf("Expected no matches, got %d", len(got))
	}
}

func TestSortUniversitiesByRating(t *testing.T) {
	unis := sample() // ratings 3, 5, 0
	SortUniversities(unis, SortByRating)

	want := []float64{5, 3, 0}
	for i, uni := range unis {
		if uni.Rating != want[i] {
			t.Errorf("Position %d: expected rating %v, got %v (%s)", i, want[i], uni.Rating, uni.Title)
		}
	}
}

func TestSortUniversitiesDefaultAlphabetical(t *testing.T) {
	unis := []models.University{
		{Title: "university of melbourne"},
		{Title: "MIT"},
		{Title: "ETH Zurich"},
	}
	SortUniversities(unis, "")

	want := []string{"ETH Zurich", "MIT", "university of melbourne"}
	for i, uni := range unis {
		if uni.Title != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], uni.Title)
		}
	}
}

func TestSortUniversitiesUnknownKeyFallsBackToTitle(t *testing.T) {
	unis := sample()
	SortUniversities(unis, "views")

	if unis[0].Title != "ETH Zurich" {
		t.Errorf("Expected alphabetical order for unknown sort key, got %q first", unis[0].Title)
	}
}
