package handlers

import (
	"testing"

	"loop/internal/models"
)

func TestOwnedBy(t *testing.T) {
	author := &models.User{ID: 7}

	if !ownedBy(author, 7) {
		t.Error("Expected the author to own their own row")
	}
	if ownedBy(author, 8) {
		t.Error("Expected a mismatched author ID to be denied")
	}
	if ownedBy(nil, 7) {
		t.Error("Expected no session to be denied")
	}
}
