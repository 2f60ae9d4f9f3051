package services

import (
	"testing"
)

func TestMergeCounts(t *testing.T) {
	ids := []uint{1, 2, 3}
	up := map[uint]int64{1: 4, 2: 1}
	down := map[uint]int64{1: 1, 2: 3}

	merged := MergeCounts(ids, up, down)

	if got := merged[1]; got.Upvotes != 4 || got.Downvotes != 1 || got.Net != 3 {
		t.Errorf("Target 1: expected {4 1 3}, got %+v", got)
	}

	// Net may be negative
	if got := merged[2]; got.Net != -2 {
		t.Errorf("Target 2: expected net -2, got %d", got.Net)
	}

	// Targets with no vote rows default to zero
	if got := merged[3]; got.Upvotes != 0 || got.Downvotes != 0 || got.Net != 0 {
		t.Errorf("Target 3: expected zero counts, got %+v", got)
	}
}

func TestMergeCountsEmpty(t *testing.T) {
	merged := MergeCounts(nil, nil, nil)
	if len(merged) != 0 {
		t.Errorf("Expected empty map, got %d entries", len(merged))
	}
}

func TestResolveVoteFirstVoteInserts(t *testing.T) {
	if op := ResolveVote(nil, true); op != VoteInsert {
		t.Errorf("Expected VoteInsert, got %v", op)
	}
	if op := ResolveVote(nil, false); op != VoteInsert {
		t.Errorf("Expected VoteInsert, got %v", op)
	}
}

func TestResolveVoteRepeatSameDirectionIsNoop(t *testing.T) {
	up := true
	if op := ResolveVote(&up, true); op != VoteNoop {
		t.Errorf("Expected VoteNoop, got %v", op)
	}
}

// An opposite-direction repeat must flip the existing row, never add a
// second one: both counts shift by exactly one.
func TestResolveVoteOppositeDirectionFlips(t *testing.T) {
	up := true
	if op := ResolveVote(&up, false); op != VoteFlip {
		t.Errorf("Expected VoteFlip, got %v", op)
	}

	down := false
	if op := ResolveVote(&down, true); op != VoteFlip {
		t.Errorf("Expected VoteFlip, got %v", op)
	}
}

func TestFlipShiftsBothCountsByOne(t *testing.T) {
	ids := []uint{7}
	before := MergeCounts(ids, map[uint]int64{7: 3}, map[uint]int64{7: 2})[7]

	// One voter flips an upvote to a downvote
	after := MergeCounts(ids, map[uint]int64{7: 2}, map[uint]int64{7: 3})[7]

	if after.Upvotes != before.Upvotes-1 {
		t.Errorf("Expected upvotes to drop by 1: before %d, after %d", before.Upvotes, after.Upvotes)
	}
	if after.Downvotes != before.Downvotes+1 {
		t.Errorf("Expected downvotes to rise by 1: before %d, after %d", before.Downvotes, after.Downvotes)
	}
	if after.Net != before.Net-2 {
		t.Errorf("Expected net to move by 2: before %d, after %d", before.Net, after.Net)
	}
}
