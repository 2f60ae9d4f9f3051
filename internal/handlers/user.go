package handlers

import (
	"log"
	"net/http"
	"strings"

	"loop/internal/db"
	"loop/internal/models"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Dashboard shows the signed-in user's own reviews and posts.
func (h *UserHandler) Dashboard(c *gin.Context) {
	user := currentUser(c)

	var reviews []models.Review
	db.DB.Preload("University").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&reviews)

	var posts []models.Post
	db.DB.Preload("University").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&posts)
	fillPostVoteCounts(posts)
	fillCommentCounts(posts)

	Render(c, http.StatusOK, "dashboard/overview.html", gin.H{
		"Title":   "Dashboard",
		"Reviews": reviews,
		"Posts":   posts,
	})
}

func (h *UserHandler) ShowSettings(c *gin.Context) {
	Render(c, http.StatusOK, "dashboard/settings.html", gin.H{"Title": "Settings"})
}

// UpdateSettings changes the display name and email, the only fields a user
// can edit; everything else comes from the identity provider.
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	user := currentUser(c)

	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))

	if name == "" {
		Render(c, http.StatusBadRequest, "dashboard/settings.html", gin.H{
			"Title": "Settings",
			"Error": "Name is required",
		})
		return
	}
	if email == "" || !strings.Contains(email, "@") {
		Render(c, http.StatusBadRequest, "dashboard/settings.html", gin.H{
			"Title": "Settings",
			"Error": "A valid email address is required",
		})
		return
	}

	if err := db.DB.Model(user).Updates(map[string]interface{}{
		"name":  name,
		"email": email,
	}).Error; err != nil {
		log.Printf("Failed to update settings for user %d: %v", user.ID, err)
		Render(c, http.StatusInternalServerError, "dashboard/settings.html", gin.H{
			"Title": "Settings",
			"Error": "Failed to update settings",
		})
		return
	}

	Render(c, http.StatusOK, "dashboard/settings.html", gin.H{
		"Title":   "Settings",
		"Success": "Settings updated",
	})
}
