package utils

import (
	"sort"
	"strings"

	"loop/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByRating orders descending by derived rating; any other sort key
// falls back to alphabetical title order.
const SortByRating = "rating"

// FilterUniversities returns the universities whose title, address, country
// or region contains the query, case-insensitively. An empty query matches
// everything. The result never shares a backing array with the input, so
// sorting it in place cannot reorder the caller's slice. Filtering runs
// application-side over the full set, which stays small (tens to low
// hundreds of rows).
func FilterUniversities(unis []models.University, query string) []models.University {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]models.University, len(unis))
		copy(out, unis)
		return out
	}

	matched := make([]models.University, 0, len(unis))
	for _, uni := range unis {
		if strings.Contains(strings.ToLower(uni.Title), q) ||
			strings.Contains(strings.ToLower(uni.Address), q) ||
			strings.Contains(strings.ToLower(uni.Country), q) ||
			strings.Contains(strings.ToLower(uni.Region), q) {
			matched = append(matched, uni)
		}
	}
	return matched
}

// SortUniversities orders the slice in place. "rating" sorts descending by
// the derived rating (zero when a university has no reviews); any other key
// sorts ascending by title, case-insensitive and locale-aware.
func SortUniversities(unis []models.University, sortBy string) {
	if sortBy == SortByRating {
		sort.SliceStable(unis, func(i, j int) bool {
			return unis[i].Rating > unis[j].Rating
		})
		return
	}

	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(unis, func(i, j int) bool {
		return c.CompareString(unis[i].Title, unis[j].Title) < 0
	})
}
