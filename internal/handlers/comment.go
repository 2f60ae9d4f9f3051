package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"loop/internal/db"
	"loop/internal/models"
	"loop/internal/services"
	"loop/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	mailService *services.MailService
}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{
		mailService: services.NewMailService(),
	}
}

// Create adds a comment to a suggestion and notifies the post author by
// email, best effort.
func (h *CommentHandler) Create(c *gin.Context) {
	user := currentUser(c)
	form := commentForm{
		PostID:  utils.StringToUint(c.PostForm("postId")),
		Content: c.PostForm("content"),
	}

	if res := form.validate(); res.Error != "" {
		RenderError(c, http.StatusBadRequest, res.Error)
		return
	}

	var post models.Post
	if err := db.DB.Preload("User").First(&post, form.PostID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Suggestion not found")
		return
	}

	comment := models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Content: form.Content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		log.Printf("Failed to create comment: %v", err)
		RenderError(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	// Don't notify authors about their own comments
	if post.UserID != user.ID {
		postLink := fmt.Sprintf("%s/suggestions/%d", os.Getenv("SITE_URL"), post.ID)
		h.mailService.SendCommentNotification(post.User.Email, user.Name, post.Title, form.Content, postLink)
	}

	c.Redirect(http.StatusFound, "/suggestions/"+utils.UintToString(post.ID))
}

// Update rewrites a comment's content, author only.
func (h *CommentHandler) Update(c *gin.Context) {
	user := currentUser(c)

	form := commentUpdateForm{
		CommentID: utils.StringToUint(c.PostForm("commentId")),
		Content:   c.PostForm("content"),
	}
	if res := form.validate(); res.Error != "" {
		c.JSON(http.StatusBadRequest, res)
		return
	}

	var comment models.Comment
	if err := db.DB.First(&comment, form.CommentID).Error; err != nil {
		c.JSON(http.StatusNotFound, resultError("Comment not found"))
		return
	}

	if !ownedBy(user, comment.UserID) {
		c.JSON(http.StatusForbidden, resultError(permissionDenied))
		return
	}

	comment.Content = form.Content
	if err := db.DB.Save(&comment).Error; err != nil {
		log.Printf("Failed to update comment %d: %v", comment.ID, err)
		c.JSON(http.StatusInternalServerError, resultError("Failed to update comment"))
		return
	}

	c.JSON(http.StatusOK, resultOK("Comment updated"))
}

// Delete removes a comment, author only.
func (h *CommentHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, resultError("Comment not found"))
		return
	}

	if !ownedBy(user, comment.UserID) {
		c.JSON(http.StatusForbidden, resultError(permissionDenied))
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		log.Printf("Failed to delete comment %d: %v", comment.ID, err)
		c.JSON(http.StatusInternalServerError, resultError("Failed to delete comment"))
		return
	}

	c.JSON(http.StatusOK, resultOK("Comment deleted"))
}
