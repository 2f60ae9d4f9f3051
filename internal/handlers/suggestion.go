package handlers

import (
	"log"
	"net/http"

	"loop/internal/db"
	"loop/internal/models"
	"loop/internal/services"
	"loop/internal/utils"

	"github.com/gin-gonic/gin"
)

// SuggestionHandler serves the posts table under both of its UI labels:
// the global suggestions board and the per-university discussion list.
type SuggestionHandler struct{}

func NewSuggestionHandler() *SuggestionHandler {
	return &SuggestionHandler{}
}

// List renders all suggestions, newest first, with batch vote counts.
// An optional universityId query narrows to one university.
func (h *SuggestionHandler) List(c *gin.Context) {
	q := db.DB.Preload("User").Preload("University").Order("created_at DESC")
	if uniID := utils.StringToUint(c.Query("universityId")); uniID != 0 {
		q = q.Where("university_id = ?", uniID)
	}

	var posts []models.Post
	if err := q.Find(&posts).Error; err != nil {
		log.Printf("Failed to fetch suggestions: %v", err)
		posts = nil
	}
	fillPostVoteCounts(posts)
	fillCommentCounts(posts)

	Render(c, http.StatusOK, "suggestion/list.html", gin.H{
		"Title":  "Suggestions",
		"Posts":  posts,
		"Active": "suggestions",
	})
}

// Detail renders one suggestion with its vote counts and comments.
func (h *SuggestionHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.Preload("User").Preload("University").First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Suggestion not found")
		return
	}

	counts, err := services.CountPostVotes([]uint{post.ID})
	if err != nil {
		log.Printf("Failed to fetch vote counts for post %d: %v", post.ID, err)
	}
	pc := counts[post.ID]
	post.Upvotes = pc.Upvotes
	post.Downvotes = pc.Downvotes
	post.NetVotes = pc.Net

	comments := loadSuggestionComments(post.ID)

	Render(c, http.StatusOK, "suggestion/detail.html", gin.H{
		"Title":       post.Title,
		"Post":        post,
		"PostContent": utils.RenderMarkdown(post.Content),
		"Comments":    comments,
	})
}

func (h *SuggestionHandler) ShowCreate(c *gin.Context) {
	unis := loadUniversities()
	utils.SortUniversities(unis, "")

	Render(c, http.StatusOK, "suggestion/create.html", gin.H{
		"Title":        "New suggestion",
		"Universities": unis,
	})
}

// Create inserts a new suggestion/discussion post.
func (h *SuggestionHandler) Create(c *gin.Context) {
	user := currentUser(c)
	form := suggestionForm{
		UniversityID: utils.StringToUint(c.PostForm("universityId")),
		Title:        c.PostForm("title"),
		Content:      c.PostForm("content"),
	}

	if res := form.validate(); res.Error != "" {
		unis := loadUniversities()
		utils.SortUniversities(unis, "")
		Render(c, http.StatusBadRequest, "suggestion/create.html", gin.H{
			"Title":        "New suggestion",
			"Universities": unis,
			"Error":        res.Error,
			"Form":         form,
		})
		return
	}

	var uni models.University
	if err := db.DB.First(&uni, form.UniversityID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "University not found")
		return
	}

	post := models.Post{
		UniversityID: form.UniversityID,
		UserID:       user.ID,
		Title:        form.Title,
		Content:      form.Content,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		log.Printf("Failed to create suggestion: %v", err)
		RenderError(c, http.StatusInternalServerError, "Failed to create suggestion")
		return
	}

	c.Redirect(http.StatusFound, "/suggestions/"+utils.UintToString(post.ID))
}

func (h *SuggestionHandler) ShowEdit(c *gin.Context) {
	user := currentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Suggestion not found")
		return
	}

	if !ownedBy(user, post.UserID) {
		RenderError(c, http.StatusForbidden, permissionDenied)
		return
	}

	Render(c, http.StatusOK, "suggestion/edit.html", gin.H{
		"Title": "Edit suggestion",
		"Post":  post,
	})
}

// Update rewrites a suggestion, author only. Validation runs before the row
// is touched, so a bad form leaves the stored post unchanged.
func (h *SuggestionHandler) Update(c *gin.Context) {
	user := currentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Suggestion not found")
		return
	}

	if !ownedBy(user, post.UserID) {
		RenderError(c, http.StatusForbidden, permissionDenied)
		return
	}

	form := suggestionForm{
		UniversityID: post.UniversityID,
		Title:        c.PostForm("title"),
		Content:      c.PostForm("content"),
	}

	if res := form.validate(); res.Error != "" {
		Render(c, http.StatusBadRequest, "suggestion/edit.html", gin.H{
			"Title": "Edit suggestion",
			"Post":  post,
			"Error": res.Error,
		})
		return
	}

	post.Title = form.Title
	post.Content = form.Content

	if err := db.DB.Save(&post).Error; err != nil {
		log.Printf("Failed to update suggestion %d: %v", post.ID, err)
		Render(c, http.StatusInternalServerError, "suggestion/edit.html", gin.H{
			"Title": "Edit suggestion",
			"Post":  post,
			"Error": "Failed to update suggestion",
		})
		return
	}

	c.Redirect(http.StatusFound, "/suggestions/"+utils.UintToString(post.ID))
}

// Delete removes a suggestion, author only. Comments and votes go with it
// via the cascade constraints.
func (h *SuggestionHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, resultError("Suggestion not found"))
		return
	}

	if !ownedBy(user, post.UserID) {
		c.JSON(http.StatusForbidden, resultError(permissionDenied))
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		log.Printf("Failed to delete suggestion %d: %v", post.ID, err)
		c.JSON(http.StatusInternalServerError, resultError("Failed to delete suggestion"))
		return
	}

	c.JSON(http.StatusOK, resultOK("Suggestion deleted"))
}

// loadSuggestionComments returns a post's comments newest-first with fresh
// vote counts. Read failures degrade to an empty list.
func loadSuggestionComments(postID uint) []models.Comment {
	var comments []models.Comment
	if err := db.DB.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		log.Printf("Failed to fetch comments for post %d: %v", postID, err)
		return nil
	}

	if len(comments) == 0 {
		return comments
	}

	ids := make([]uint, len(comments))
	for i, com := range comments {
		ids[i] = com.ID
	}

	counts, err := services.CountCommentVotes(ids)
	if err != nil {
		log.Printf("Failed to fetch comment vote counts: %v", err)
		return comments
	}

	for i := range comments {
		cc := counts[comments[i].ID]
		comments[i].Upvotes = cc.Upvotes
		comments[i].Downvotes = cc.Downvotes
		comments[i].NetVotes = cc.Net
	}
	return comments
}
