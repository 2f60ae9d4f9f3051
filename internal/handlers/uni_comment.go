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

type UniCommentHandler struct{}

func NewUniCommentHandler() *UniCommentHandler {
	return &UniCommentHandler{}
}

// loadUniThread builds the comment thread for a university page: comments
// newest-first, each carrying its replies (one level, never deeper) and
// fresh vote counts. Read failures degrade to an empty thread.
func loadUniThread(universityID uint) []models.UniComment {
	var comments []models.UniComment
	if err := db.DB.Preload("User").
		Where("university_id = ?", universityID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		log.Printf("Failed to fetch comments for university %d: %v", universityID, err)
		return nil
	}

	if len(comments) == 0 {
		return comments
	}

	ids := make([]uint, len(comments))
	for i, com := range comments {
		ids[i] = com.ID
	}

	var replies []models.UniReply
	if err := db.DB.Preload("User").
		Where("comment_id IN ?", ids).
		Order("created_at ASC").
		Find(&replies).Error; err != nil {
		log.Printf("Failed to fetch replies: %v", err)
	}
	attachReplies(comments, replies)

	counts, err := services.CountUniCommentVotes(ids)
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

// attachReplies distributes replies onto their parent comments, preserving
// the order they were fetched in. Replies whose parent is not in the page
// are dropped.
func attachReplies(comments []models.UniComment, replies []models.UniReply) {
	if len(comments) == 0 {
		return
	}

	byParent := make(map[uint][]models.UniReply, len(comments))
	for _, r := range replies {
		byParent[r.CommentID] = append(byParent[r.CommentID], r)
	}

	for i := range comments {
		comments[i].Replies = byParent[comments[i].ID]
	}
}

// Create adds a top-level comment to a university page.
func (h *UniCommentHandler) Create(c *gin.Context) {
	user := currentUser(c)
	form := uniCommentForm{
		UniversityID: utils.StringToUint(c.PostForm("universityId")),
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

	comment := models.UniComment{
		UniversityID: uni.ID,
		UserID:       user.ID,
		Content:      form.Content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		log.Printf("Failed to post comment: %v", err)
		RenderError(c, http.StatusInternalServerError, "Failed to post comment")
		return
	}

	c.Redirect(http.StatusFound, "/uni/"+utils.UintToString(uni.ID))
}

// CreateReply adds a reply under a comment. Replies are the bottom of the
// thread; there is no deeper level to attach to.
func (h *UniCommentHandler) CreateReply(c *gin.Context) {
	user := currentUser(c)
	form := uniReplyForm{
		CommentID: utils.StringToUint(c.PostForm("commentId")),
		Content:   c.PostForm("content"),
	}

	if res := form.validate(); res.Error != "" {
		RenderError(c, http.StatusBadRequest, res.Error)
		return
	}

	var parent models.UniComment
	if err := db.DB.First(&parent, form.CommentID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Comment not found")
		return
	}

	reply := models.UniReply{
		CommentID: parent.ID,
		UserID:    user.ID,
		Content:   form.Content,
	}

	if err := db.DB.Create(&reply).Error; err != nil {
		log.Printf("Failed to post reply: %v", err)
		RenderError(c, http.StatusInternalServerError, "Failed to post reply")
		return
	}

	c.Redirect(http.StatusFound, "/uni/"+utils.UintToString(parent.UniversityID))
}
