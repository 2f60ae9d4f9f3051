package services

import (
	"errors"

	"loop/internal/db"
	"loop/internal/models"

	"gorm.io/gorm"
)

// Counts is the aggregate for one vote target. Upvotes and Downvotes are
// never negative; Net can be.
type Counts struct {
	Upvotes   int
	Downvotes int
	Net       int
}

// VoteOp is the outcome of checking a new vote against an existing row.
type VoteOp int

const (
	VoteInsert VoteOp = iota // no row yet, create one
	VoteFlip                 // row exists with the opposite direction, update in place
	VoteNoop                 // row exists with the same direction, nothing to do
)

// ResolveVote decides what casting a vote does given the direction of the
// voter's existing row on the same target (nil when there is none). A second
// vote never creates a second row.
func ResolveVote(existing *bool, isUpvote bool) VoteOp {
	if existing == nil {
		return VoteInsert
	}
	if *existing == isUpvote {
		return VoteNoop
	}
	return VoteFlip
}

// MergeCounts combines the results of the two grouped counting queries into
// per-target aggregates, defaulting to zero for targets with no rows in
// either group.
func MergeCounts(ids []uint, upvotes, downvotes map[uint]int64) map[uint]Counts {
	merged := make(map[uint]Counts, len(ids))
	for _, id := range ids {
		up := int(upvotes[id])
		down := int(downvotes[id])
		merged[id] = Counts{
			Upvotes:   up,
			Downvotes: down,
			Net:       up - down,
		}
	}
	return merged
}

type countRow struct {
	TargetID uint
	Count    int64
}

func groupCounts(model interface{}, column string, ids []uint, isUpvote bool) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := db.DB.Model(model).
		Select(column+" AS target_id, COUNT(*) AS count").
		Where(column+" IN ? AND is_upvote = ?", ids, isUpvote).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.TargetID] = r.Count
	}
	return counts, nil
}

func countVotes(model interface{}, column string, ids []uint) (map[uint]Counts, error) {
	up, err := groupCounts(model, column, ids, true)
	if err != nil {
		return nil, err
	}
	down, err := groupCounts(model, column, ids, false)
	if err != nil {
		return nil, err
	}
	return MergeCounts(ids, up, down), nil
}

// CountPostVotes aggregates votes for a batch of posts with two grouped
// counting queries, one per direction.
func CountPostVotes(postIDs []uint) (map[uint]Counts, error) {
	return countVotes(&models.PostVote{}, "post_id", postIDs)
}

// CountCommentVotes aggregates votes for a batch of suggestion comments.
func CountCommentVotes(commentIDs []uint) (map[uint]Counts, error) {
	return countVotes(&models.CommentVote{}, "comment_id", commentIDs)
}

// CountUniCommentVotes aggregates votes for a batch of university comments.
func CountUniCommentVotes(commentIDs []uint) (map[uint]Counts, error) {
	return countVotes(&models.UniVote{}, "comment_id", commentIDs)
}

// CastPostVote records a user's vote on a post. A repeat vote in the same
// direction is a no-op; the opposite direction flips the existing row. The
// unique index on (user_id, post_id) backs the existence check, so two
// concurrent first votes cannot both insert.
func CastPostVote(userID, postID uint, isUpvote bool) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.PostVote
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
		direction := directionOf(&existing.IsUpvote, err)

		switch ResolveVote(direction, isUpvote) {
		case VoteNoop:
			return nil
		case VoteFlip:
			return tx.Model(&existing).Update("is_upvote", isUpvote).Error
		default:
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Create(&models.PostVote{
				UserID:   userID,
				PostID:   postID,
				IsUpvote: isUpvote,
			}).Error
		}
	})
}

// CastCommentVote records a user's vote on a suggestion comment.
func CastCommentVote(userID, commentID uint, isUpvote bool) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.CommentVote
		err := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).First(&existing).Error
		direction := directionOf(&existing.IsUpvote, err)

		switch ResolveVote(direction, isUpvote) {
		case VoteNoop:
			return nil
		case VoteFlip:
			return tx.Model(&existing).Update("is_upvote", isUpvote).Error
		default:
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Create(&models.CommentVote{
				UserID:    userID,
				CommentID: commentID,
				IsUpvote:  isUpvote,
			}).Error
		}
	})
}

// CastUniVote records a user's vote on a university-page comment.
func CastUniVote(userID, commentID uint, isUpvote bool) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.UniVote
		err := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).First(&existing).Error
		direction := directionOf(&existing.IsUpvote, err)

		switch ResolveVote(direction, isUpvote) {
		case VoteNoop:
			return nil
		case VoteFlip:
			return tx.Model(&existing).Update("is_upvote", isUpvote).Error
		default:
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Create(&models.UniVote{
				UserID:    userID,
				CommentID: commentID,
				IsUpvote:  isUpvote,
			}).Error
		}
	})
}

func directionOf(isUpvote *bool, lookupErr error) *bool {
	if lookupErr != nil {
		return nil
	}
	return isUpvote
}
