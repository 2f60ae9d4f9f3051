package handlers

import (
	"strings"
	"testing"
)

func TestSuggestionFormEmptyTitle(t *testing.T) {
	form := suggestionForm{
		UniversityID: 1,
		Title:        "",
		Content:      "This is long enough content.",
	}

	res := form.validate()
	if res.Error == "" {
		t.Fatal("Expected a validation error for empty title")
	}
	if res.Field != "title" {
		t.Errorf("Expected the error to identify the title field, got %q", res.Field)
	}
}

func TestSuggestionFormTitleTooLong(t *testing.T) {
	form := suggestionForm{
		UniversityID: 1,
		Title:        strings.Repeat("a", 201),
		Content:      "This is long enough content.",
	}

	if res := form.validate(); res.Field != "title" {
		t.Errorf("Expected title error for 201-char title, got %+v", res)
	}
}

func TestSuggestionFormShortContent(t *testing.T) {
	form := suggestionForm{
		UniversityID: 1,
		Title:        "Better library hours",
		Content:      "short",
	}

	if res := form.validate(); res.Field != "content" {
		t.Errorf("Expected content error, got %+v", res)
	}
}

func TestSuggestionFormValid(t *testing.T) {
	form := suggestionForm{
		UniversityID: 1,
		Title:        "Better library hours",
		Content:      "The library closes far too early during exam season.",
	}

	if res := form.validate(); res.Error != "" {
		t.Errorf("Expected no error, got %+v", res)
	}
}

func TestReviewFormRatingBounds(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 42} {
		form := reviewForm{UniversityID: 1, Rating: rating, Content: "Decent campus."}
		if res := form.validate(); res.Field != "rating" {
			t.Errorf("Rating %d: expected rating error, got %+v", rating, res)
		}
	}

	for rating := 1; rating <= 5; rating++ {
		form := reviewForm{UniversityID: 1, Rating: rating, Content: "Decent campus."}
		if res := form.validate(); res.Error != "" {
			t.Errorf("Rating %d: expected no error, got %+v", rating, res)
		}
	}
}

func TestReviewFormMissingUniversity(t *testing.T) {
	form := reviewForm{Rating: 4, Content: "Decent campus."}
	if res := form.validate(); res.Field != "universityId" {
		t.Errorf("Expected universityId error, got %+v", res)
	}
}

func TestCommentFormEmptyContent(t *testing.T) {
	form := commentForm{PostID: 1, Content: "   "}
	res := form.validate()
	if res.Field != "content" || res.Error != "Comment cannot be empty" {
		t.Errorf("Expected empty-comment error, got %+v", res)
	}
}

func TestCommentFormTooLong(t *testing.T) {
	form := commentForm{PostID: 1, Content: strings.Repeat("x", 1001)}
	if res := form.validate(); res.Field != "content" {
		t.Errorf("Expected content error for oversized comment, got %+v", res)
	}
}

func TestUniversityFormRequiredFields(t *testing.T) {
	form := universityForm{
		Title:      "MIT",
		Country:    "United States",
		Region:     "Massachusetts",
		Address:    "77 Massachusetts Ave",
		WebsiteURL: "https://web.mit.edu",
	}
	if res := form.validate(); res.Error != "" {
		t.Fatalf("Expected valid form, got %+v", res)
	}

	missing := form
	missing.Country = ""
	if res := missing.validate(); res.Field != "country" {
		t.Errorf("Expected country error, got %+v", res)
	}
}
