package handlers

import (
	"log"
	"net/http"

	"loop/internal/services"
	"loop/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

// Vote records a vote on a post, comment, or university comment and returns
// the target's fresh aggregate. The direction comes from the `isUpvote`
// form field. A repeat vote in the opposite direction flips the stored row.
func (h *VoteHandler) Vote(c *gin.Context) {
	user := currentUser(c)

	itemType := c.Param("type") // "post", "comment" or "unicomment"
	id := utils.StringToUint(c.Param("id"))
	if id == 0 {
		c.JSON(http.StatusBadRequest, resultError("Invalid vote target"))
		return
	}
	isUpvote := c.PostForm("isUpvote") == "true"

	var cast func(userID, targetID uint, up bool) error
	var count func(ids []uint) (map[uint]services.Counts, error)

	switch itemType {
	case "post":
		cast, count = services.CastPostVote, services.CountPostVotes
	case "comment":
		cast, count = services.CastCommentVote, services.CountCommentVotes
	case "unicomment":
		cast, count = services.CastUniVote, services.CountUniCommentVotes
	default:
		c.JSON(http.StatusBadRequest, resultError("Invalid vote target"))
		return
	}

	if err := cast(user.ID, id, isUpvote); err != nil {
		log.Printf("Failed to record vote on %s %d: %v", itemType, id, err)
		c.JSON(http.StatusInternalServerError, resultError("Failed to record vote"))
		return
	}

	counts, err := count([]uint{id})
	if err != nil {
		log.Printf("Failed to fetch vote counts for %s %d: %v", itemType, id, err)
		c.JSON(http.StatusInternalServerError, resultError("Failed to fetch vote"))
		return
	}

	agg := counts[id]
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"upvotes":   agg.Upvotes,
		"downvotes": agg.Downvotes,
		"net":       agg.Net,
	})
}
