package handlers

import (
	"testing"

	"loop/internal/models"
)

func TestAttachReplies(t *testing.T) {
	comments := []models.UniComment{
		{ID: 1},
		{ID: 2},
		{ID: 3},
	}
	replies := []models.UniReply{
		{ID: 10, CommentID: 1, Content: "first"},
		{ID: 11, CommentID: 3, Content: "second"},
		{ID: 12, CommentID: 1, Content: "third"},
		{ID: 13, CommentID: 99, Content: "orphan"},
	}

	attachReplies(comments, replies)

	if len(comments[0].Replies) != 2 {
		t.Fatalf("Expected 2 replies on comment 1, got %d", len(comments[0].Replies))
	}
	if comments[0].Replies[0].ID != 10 || comments[0].Replies[1].ID != 12 {
		t.Errorf("Replies on comment 1 out of order: %v, %v", comments[0].Replies[0].ID, comments[0].Replies[1].ID)
	}
	if len(comments[1].Replies) != 0 {
		t.Errorf("Expected no replies on comment 2, got %d", len(comments[1].Replies))
	}
	if len(comments[2].Replies) != 1 || comments[2].Replies[0].ID != 11 {
		t.Errorf("Expected reply 11 on comment 3, got %v", comments[2].Replies)
	}
}

func TestAttachRepliesEmpty(t *testing.T) {
	attachReplies(nil, []models.UniReply{{ID: 1, CommentID: 1}})

	comments := []models.UniComment{{ID: 1}}
	attachReplies(comments, nil)
	if len(comments[0].Replies) != 0 {
		t.Errorf("Expected no replies, got %d", len(comments[0].Replies))
	}
}
