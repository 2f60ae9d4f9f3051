package handlers

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"loop/internal/db"
	"loop/internal/models"
	"loop/internal/services"
	"loop/internal/utils"

	"github.com/gin-gonic/gin"
)

const uniIndexCacheKey = "uni:index"

type UniversityHandler struct{}

func NewUniversityHandler() *UniversityHandler {
	return &UniversityHandler{}
}

// universityRow carries the review average alongside the entity columns.
type universityRow struct {
	models.University
	AvgRating float64
}

// loadUniversities fetches every university with its derived rating: the
// average of associated review ratings, zero when none exist. The full set
// is cached briefly; search and sort stay application-side per request.
// Callers always get their own copy: requests sort in place, and the
// cached slice must never be reordered under a concurrent reader.
func loadUniversities() []models.University {
	if cached := utils.GetCache().Get(uniIndexCacheKey); cached != nil {
		if unis, ok := cached.([]models.University); ok {
			return copyUniversities(unis)
		}
	}

	var rows []universityRow
	err := db.DB.Model(&models.University{}).
		Select("universities.*, COALESCE(AVG(reviews.rating), 0) AS avg_rating").
		Joins("LEFT JOIN reviews ON reviews.university_id = universities.id").
		Group("universities.id").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Failed to fetch universities: %v", err)
		return nil
	}

	unis := make([]models.University, len(rows))
	for i, row := range rows {
		unis[i] = row.University
		unis[i].Rating = row.AvgRating
	}

	utils.GetCache().Set(uniIndexCacheKey, unis, 1*time.Minute)
	return copyUniversities(unis)
}

func copyUniversities(unis []models.University) []models.University {
	out := make([]models.University, len(unis))
	copy(out, unis)
	return out
}

// loadUniversity fetches one university with its derived rating.
func loadUniversity(id uint) (*models.University, bool) {
	var row universityRow
	err := db.DB.Model(&models.University{}).
		Select("universities.*, COALESCE(AVG(reviews.rating), 0) AS avg_rating").
		Joins("LEFT JOIN reviews ON reviews.university_id = universities.id").
		Where("universities.id = ?", id).
		Group("universities.id").
		Scan(&row).Error
	if err != nil || row.University.ID == 0 {
		return nil, false
	}

	uni := row.University
	uni.Rating = row.AvgRating
	return &uni, true
}

// Index renders the university list for a query string and sort key.
func (h *UniversityHandler) Index(c *gin.Context) {
	query := c.Query("q")
	sortBy := c.Query("sortBy")

	unis := loadUniversities()
	unis = utils.FilterUniversities(unis, query)
	utils.SortUniversities(unis, sortBy)

	Render(c, http.StatusOK, "uni/list.html", gin.H{
		"Title":        "Universities",
		"Universities": unis,
		"Query":        query,
		"SortBy":       sortBy,
		"Active":       "unis",
	})
}

// Detail renders one university page: profile, derived rating, reviews,
// discussions with vote counts, and the comment thread with replies.
func (h *UniversityHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	uni, ok := loadUniversity(id)
	if !ok {
		RenderError(c, http.StatusNotFound, "University not found")
		return
	}

	var reviews []models.Review
	if err := db.DB.Preload("User").
		Where("university_id = ?", uni.ID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		log.Printf("Failed to fetch reviews for university %d: %v", uni.ID, err)
		reviews = nil
	}

	type renderedReview struct {
		models.Review
		ContentHTML template.HTML
	}
	reviewViews := make([]renderedReview, len(reviews))
	for i, rev := range reviews {
		reviewViews[i] = renderedReview{Review: rev, ContentHTML: utils.RenderMarkdown(rev.Content)}
	}

	var discussions []models.Post
	if err := db.DB.Preload("User").
		Where("university_id = ?", uni.ID).
		Order("created_at DESC").
		Find(&discussions).Error; err != nil {
		log.Printf("Failed to fetch discussions for university %d: %v", uni.ID, err)
		discussions = nil
	}
	fillPostVoteCounts(discussions)
	fillCommentCounts(discussions)

	thread := loadUniThread(uni.ID)

	Render(c, http.StatusOK, "uni/detail.html", gin.H{
		"Title":       uni.Title,
		"University":  uni,
		"Reviews":     reviewViews,
		"Discussions": discussions,
		"Comments":    thread,
	})
}

func (h *UniversityHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "uni/create.html", gin.H{"Title": "Add a university"})
}

// Create inserts a new university from the submitted form.
func (h *UniversityHandler) Create(c *gin.Context) {
	form := universityForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Country:     c.PostForm("country"),
		Region:      c.PostForm("region"),
		Address:     c.PostForm("address"),
		MapsURL:     c.PostForm("maps"),
		ImageURL:    c.PostForm("imageUrl"),
		WebsiteURL:  c.PostForm("website"),
		LinkedinURL: c.PostForm("linkedin"),
	}

	if res := form.validate(); res.Error != "" {
		Render(c, http.StatusBadRequest, "uni/create.html", gin.H{
			"Title": "Add a university",
			"Error": res.Error,
			"Form":  form,
		})
		return
	}

	uni := models.University{
		Title:       form.Title,
		Description: form.Description,
		Country:     form.Country,
		Region:      form.Region,
		Address:     form.Address,
		MapsURL:     form.MapsURL,
		ImageURL:    form.ImageURL,
		WebsiteURL:  form.WebsiteURL,
		LinkedinURL: form.LinkedinURL,
	}

	if err := db.DB.Create(&uni).Error; err != nil {
		log.Printf("Failed to create university: %v", err)
		Render(c, http.StatusInternalServerError, "uni/create.html", gin.H{
			"Title": "Add a university",
			"Error": "Failed to create university",
			"Form":  form,
		})
		return
	}

	utils.GetCache().Delete(uniIndexCacheKey)
	c.Redirect(http.StatusFound, "/uni/"+utils.UintToString(uni.ID))
}

// fillPostVoteCounts batch-fills vote aggregates for a page of posts with
// two grouped counting queries.
func fillPostVoteCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	counts, err := services.CountPostVotes(postIDs)
	if err != nil {
		log.Printf("Failed to fetch vote counts: %v", err)
		return
	}

	for i := range posts {
		c := counts[posts[i].ID]
		posts[i].Upvotes = c.Upvotes
		posts[i].Downvotes = c.Downvotes
		posts[i].NetVotes = c.Net
	}
}

// fillCommentCounts batch-fills the comment count for a page of posts.
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID uint
		Count  int
	}
	var results []countResult
	if err := db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results).Error; err != nil {
		log.Printf("Failed to fetch comment counts: %v", err)
		return
	}

	countMap := make(map[uint]int, len(results))
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}
