package services

import (
	"testing"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		name     string
		state    VoteState
		ev       VoteEvent
		want     VoteState
		wantUp   int
		wantDown int
	}{
		{"no vote, click up", NoVote, ClickUp, Upvoted, 1, 0},
		{"no vote, click down", NoVote, ClickDown, Downvoted, 0, 1},
		{"upvoted, click up retracts", Upvoted, ClickUp, NoVote, -1, 0},
		{"upvoted, click down swaps", Upvoted, ClickDown, Downvoted, -1, 1},
		{"downvoted, click down retracts", Downvoted, ClickDown, NoVote, 0, -1},
		{"downvoted, click up swaps", Downvoted, ClickUp, Upvoted, 1, -1},
	}

	for _, tc := range cases {
		next, delta := Transition(tc.state, tc.ev)
		if next != tc.want {
			t.Errorf("%s: expected state %v, got %v", tc.name, tc.want, next)
		}
		if delta.Upvotes != tc.wantUp || delta.Downvotes != tc.wantDown {
			t.Errorf("%s: expected deltas (%d,%d), got (%d,%d)",
				tc.name, tc.wantUp, tc.wantDown, delta.Upvotes, delta.Downvotes)
		}
	}
}

func TestVoteReconcilerOptimisticApply(t *testing.T) {
	rec := VoteReconciler{State: NoVote, Counters: VoteCounters{Upvotes: 5, Downvotes: 2}}

	rec.Begin(ClickUp)
	if rec.State != Upvoted || rec.Counters.Upvotes != 6 || rec.Counters.Downvotes != 2 {
		t.Fatalf("after ClickUp: got %v (%d,%d)", rec.State, rec.Counters.Upvotes, rec.Counters.Downvotes)
	}
	rec.Confirm()

	// Toggling the same control retracts the vote.
	rec.Begin(ClickUp)
	if rec.State != NoVote || rec.Counters.Upvotes != 5 || rec.Counters.Downvotes != 2 {
		t.Fatalf("after toggle off: got %v (%d,%d)", rec.State, rec.Counters.Upvotes, rec.Counters.Downvotes)
	}
	rec.Confirm()
}

func TestVoteReconcilerRollbackRestoresSnapshot(t *testing.T) {
	rec := VoteReconciler{State: NoVote, Counters: VoteCounters{Upvotes: 5, Downvotes: 2}}

	rec.Begin(ClickUp)
	rec.Rollback()

	if rec.State != NoVote || rec.Counters.Upvotes != 5 || rec.Counters.Downvotes != 2 {
		t.Fatalf("rollback must restore the pre-action snapshot, got %v (%d,%d)",
			rec.State, rec.Counters.Upvotes, rec.Counters.Downvotes)
	}
}

func TestVoteReconcilerRepeatedFailuresDoNotDrift(t *testing.T) {
	rec := VoteReconciler{State: Downvoted, Counters: VoteCounters{Upvotes: 3, Downvotes: 7}}

	for i := 0; i < 5; i++ {
		rec.Begin(ClickUp)
		rec.Rollback()
	}

	if rec.State != Downvoted || rec.Counters.Upvotes != 3 || rec.Counters.Downvotes != 7 {
		t.Fatalf("counters drifted after repeated rollbacks: %v (%d,%d)",
			rec.State, rec.Counters.Upvotes, rec.Counters.Downvotes)
	}

	// Rollback with nothing pending is a no-op.
	rec.Rollback()
	if rec.Counters.Upvotes != 3 || rec.Counters.Downvotes != 7 {
		t.Fatalf("idle rollback must not change state")
	}
}
