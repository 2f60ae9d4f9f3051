package handlers

import (
	"strings"
)

// One validated input struct per mutating operation. Fields are read from
// the form by name at the handler boundary and checked here before any
// storage access; the first failing field wins.

type universityForm struct {
	Title       string
	Description string
	Country     string
	Region      string
	Address     string
	MapsURL     string
	ImageURL    string
	WebsiteURL  string
	LinkedinURL string
}

func (f *universityForm) validate() FormResult {
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return fieldError("title", "Title is required")
	}
	if len(f.Title) > 100 {
		return fieldError("title", "Title must be less than 100 characters")
	}
	if strings.TrimSpace(f.Country) == "" {
		return fieldError("country", "Country is required")
	}
	if strings.TrimSpace(f.Region) == "" {
		return fieldError("region", "Region is required")
	}
	if strings.TrimSpace(f.Address) == "" {
		return fieldError("address", "Address is required")
	}
	if strings.TrimSpace(f.WebsiteURL) == "" {
		return fieldError("website", "Website URL is required")
	}
	return FormResult{}
}

type reviewForm struct {
	UniversityID uint
	Rating       int
	Content      string
}

func (f *reviewForm) validate() FormResult {
	if f.UniversityID == 0 {
		return fieldError("universityId", "University ID is required")
	}
	if f.Rating < 1 || f.Rating > 5 {
		return fieldError("rating", "Rating must be between 1 and 5")
	}
	if strings.TrimSpace(f.Content) == "" {
		return fieldError("content", "Review cannot be empty")
	}
	return FormResult{}
}

type suggestionForm struct {
	UniversityID uint
	Title        string
	Content      string
}

func (f *suggestionForm) validate() FormResult {
	f.Title = strings.TrimSpace(f.Title)
	if len(f.Title) < 3 {
		return fieldError("title", "Title must be at least 3 characters")
	}
	if len(f.Title) > 200 {
		return fieldError("title", "Title must be less than 200 characters")
	}
	if len(strings.TrimSpace(f.Content)) < 10 {
		return fieldError("content", "Content must be at least 10 characters")
	}
	if f.UniversityID == 0 {
		return fieldError("universityId", "University ID is required")
	}
	return FormResult{}
}

type commentForm struct {
	PostID  uint
	Content string
}

func (f *commentForm) validate() FormResult {
	if f.PostID == 0 {
		return fieldError("postId", "Post ID is required")
	}
	f.Content = strings.TrimSpace(f.Content)
	if f.Content == "" {
		return fieldError("content", "Comment cannot be empty")
	}
	if len(f.Content) > 1000 {
		return fieldError("content", "Comment is too long")
	}
	return FormResult{}
}

type commentUpdateForm struct {
	CommentID uint
	Content   string
}

func (f *commentUpdateForm) validate() FormResult {
	if f.CommentID == 0 {
		return fieldError("commentId", "Comment ID is required")
	}
	f.Content = strings.TrimSpace(f.Content)
	if f.Content == "" {
		return fieldError("content", "Comment cannot be empty")
	}
	if len(f.Content) > 1000 {
		return fieldError("content", "Comment is too long")
	}
	return FormResult{}
}

type uniCommentForm struct {
	UniversityID uint
	Content      string
}

func (f *uniCommentForm) validate() FormResult {
	if f.UniversityID == 0 {
		return fieldError("universityId", "University ID is required")
	}
	if strings.TrimSpace(f.Content) == "" {
		return fieldError("content", "Comment cannot be empty")
	}
	return FormResult{}
}

type uniReplyForm struct {
	CommentID uint
	Content   string
}

func (f *uniReplyForm) validate() FormResult {
	if f.CommentID == 0 {
		return fieldError("commentId", "Comment ID is required")
	}
	if strings.TrimSpace(f.Content) == "" {
		return fieldError("content", "Reply cannot be empty")
	}
	return FormResult{}
}
