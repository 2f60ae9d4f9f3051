package handlers

import (
	"log"
	"net/http"

	"loop/internal/db"
	"loop/internal/models"
	"loop/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct{}

func NewReviewHandler() *ReviewHandler {
	return &ReviewHandler{}
}

// Create handles the review form on a university page.
func (h *ReviewHandler) Create(c *gin.Context) {
	user := currentUser(c)
	form := reviewForm{
		UniversityID: utils.StringToUint(c.Param("id")),
		Rating:       utils.StringToInt(c.PostForm("rating")),
		Content:      c.PostForm("content"),
	}

	if res := form.validate(); res.Error != "" {
		RenderError(c, http.StatusBadRequest, res.Error)
		return
	}

	var uni models.University
	if err := db.DB.First(&uni, form.UniversityID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "University not found")
		return
	}

	review := models.Review{
		UniversityID: form.UniversityID,
		UserID:       user.ID,
		Rating:       form.Rating,
		Content:      form.Content,
	}

	if err := db.DB.Create(&review).Error; err != nil {
		log.Printf("Failed to create review: %v", err)
		RenderError(c, http.StatusInternalServerError, "Failed to create review")
		return
	}

	// The derived rating changed
	utils.GetCache().Delete(uniIndexCacheKey)

	c.Redirect(http.StatusFound, "/uni/"+utils.UintToString(form.UniversityID))
}

func (h *ReviewHandler) ShowEdit(c *gin.Context) {
	user := currentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var review models.Review
	if err := db.DB.Preload("University").First(&review, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Review not found")
		return
	}

	if !ownedBy(user, review.UserID) {
		RenderError(c, http.StatusForbidden, permissionDenied)
		return
	}

	Render(c, http.StatusOK, "review/edit.html", gin.H{
		"Title":  "Edit review",
		"Review": review,
	})
}

// Update rewrites a review's rating and content, author only.
func (h *ReviewHandler) Update(c *gin.Context) {
	user := currentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var review models.Review
	if err := db.DB.First(&review, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Review not found")
		return
	}

	if !ownedBy(user, review.UserID) {
		RenderError(c, http.StatusForbidden, permissionDenied)
		return
	}

	form := reviewForm{
		UniversityID: review.UniversityID,
		Rating:       utils.StringToInt(c.PostForm("rating")),
		Content:      c.PostForm("content"),
	}

	if res := form.validate(); res.Error != "" {
		Render(c, http.StatusBadRequest, "review/edit.html", gin.H{
			"Title":  "Edit review",
			"Review": review,
			"Error":  res.Error,
		})
		return
	}

	review.Rating = form.Rating
	review.Content = form.Content

	if err := db.DB.Save(&review).Error; err != nil {
		log.Printf("Failed to update review %d: %v", review.ID, err)
		Render(c, http.StatusInternalServerError, "review/edit.html", gin.H{
			"Title":  "Edit review",
			"Review": review,
			"Error":  "Failed to update review",
		})
		return
	}

	utils.GetCache().Delete(uniIndexCacheKey)
	c.Redirect(http.StatusFound, "/uni/"+utils.UintToString(review.UniversityID))
}

// Delete removes a review, author only.
func (h *ReviewHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var review models.Review
	if err := db.DB.First(&review, id).Error; err != nil {
		c.JSON(http.StatusNotFound, resultError("Review not found"))
		return
	}

	if !ownedBy(user, review.UserID) {
		c.JSON(http.StatusForbidden, resultError(permissionDenied))
		return
	}

	if err := db.DB.Delete(&review).Error; err != nil {
		log.Printf("Failed to delete review %d: %v", review.ID, err)
		c.JSON(http.StatusInternalServerError, resultError("Failed to delete review"))
		return
	}

	utils.GetCache().Delete(uniIndexCacheKey)
	c.JSON(http.StatusOK, resultOK("Review deleted"))
}
