package services

import (
	"errors"
	"fmt"
	"skillpath/internal/db"
	"skillpath/internal/models"

	"gorm.io/gorm"
)

// VoteState is a single user's standing vote on a post.
type VoteState int

const (
	NoVote VoteState = iota
	Upvoted
	Downvoted
)

func (s VoteState) String() string {
	switch s {
	case Upvoted:
		return "up"
	case Downvoted:
		return "down"
	}
	return "none"
}

// VoteEvent is a click on one of the two vote controls.
type VoteEvent int

const (
	ClickUp VoteEvent = iota
	ClickDown
)

// VoteCounters mirrors a post's denormalized vote counts.
type VoteCounters struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// Transition returns the state after an event plus the counter deltas it
// implies. Clicking the standing vote retracts it; clicking the opposite
// control swaps it.
func Transition(state VoteState, ev VoteEvent) (VoteState, VoteCounters) {
	switch {
	case state == NoVote && ev == ClickUp:
		return Upvoted, VoteCounters{Upvotes: 1}
	case state == NoVote && ev == ClickDown:
		return Downvoted, VoteCounters{Downvotes: 1}
	case state == Upvoted && ev == ClickUp:
		return NoVote, VoteCounters{Upvotes: -1}
	case state == Upvoted && ev == ClickDown:
		return Downvoted, VoteCounters{Upvotes: -1, Downvotes: 1}
	case state == Downvoted && ev == ClickDown:
		return NoVote, VoteCounters{Downvotes: -1}
	default: // Downvoted + ClickUp
		return Upvoted, VoteCounters{Upvotes: 1, Downvotes: -1}
	}
}

// VoteReconciler applies a vote event to displayed state before the backing
// write completes and restores the exact prior snapshot if the write fails.
// Restoring the snapshot, rather than reversing deltas, keeps repeated
// failures from drifting the counters.
type VoteReconciler struct {
	State    VoteState
	Counters VoteCounters

	prev *VoteReconciler
}

// Begin snapshots the current state and applies the event locally.
func (r *VoteReconciler) Begin(ev VoteEvent) {
	snap := *r
	snap.prev = nil
	r.prev = &snap

	next, delta := Transition(r.State, ev)
	r.State = next
	r.Counters.Upvotes += delta.Upvotes
	r.Counters.Downvotes += delta.Downvotes
}

// Confirm discards the snapshot after a successful write.
func (r *VoteReconciler) Confirm() {
	r.prev = nil
}

// Rollback restores the snapshot taken by Begin. A rollback with no
// pending snapshot is a no-op.
func (r *VoteReconciler) Rollback() {
	if r.prev != nil {
		*r = *r.prev
	}
}

type VoteService struct{}

func NewVoteService() *VoteService {
	return &VoteService{}
}

// CurrentState reads the user's standing vote on a post.
func (s *VoteService) CurrentState(userID, postID uint) VoteState {
	var vote models.PostVote
	err := db.DB.Where("user_id = ? AND post_id = ?", userID, postID).First(&vote).Error
	if err != nil {
		return NoVote
	}
	if vote.Value > 0 {
		return Upvoted
	}
	return Downvoted
}

// Cast persists one vote event for (post, user): it upserts the vote row
// when the new state is a vote, deletes it when the vote is retracted, and
// applies the counter deltas to the post, all in one transaction. On any
// failure the transaction rolls back, so the stored state is exactly what
// it was before the action began.
//
// Rapid repeated events are last-write-wins; each call reads the standing
// vote afresh and there is no per-user queue.
func (s *VoteService) Cast(userID, postID uint, ev VoteEvent) (VoteState, VoteCounters, error) {
	var state VoteState
	var counters VoteCounters

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			return fmt.Errorf("load post %d: %w", postID, err)
		}

		prev := NoVote
		var vote models.PostVote
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&vote).Error
		switch {
		case err == nil:
			if vote.Value > 0 {
				prev = Upvoted
			} else {
				prev = Downvoted
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no standing vote
		default:
			return err
		}

		next, delta := Transition(prev, ev)
		switch next {
		case NoVote:
			if err := tx.Delete(&vote).Error; err != nil {
				return err
			}
		case Upvoted, Downvoted:
			value := 1
			if next == Downvoted {
				value = -1
			}
			if prev == NoVote {
				vote = models.PostVote{UserID: userID, PostID: postID, Value: value}
				if err := tx.Create(&vote).Error; err != nil {
					return err
				}
			} else if err := tx.Model(&vote).Update("value", value).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{}
		if delta.Upvotes != 0 {
			updates["upvotes"] = gorm.Expr("upvotes + ?", delta.Upvotes)
		}
		if delta.Downvotes != 0 {
			updates["downvotes"] = gorm.Expr("downvotes + ?", delta.Downvotes)
		}
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Updates(updates).Error; err != nil {
			return err
		}

		state = next
		counters = VoteCounters{Upvotes: post.Upvotes + delta.Upvotes, Downvotes: post.Downvotes + delta.Downvotes}
		return nil
	})
	if err != nil {
		return NoVote, VoteCounters{}, err
	}

	// Converge the denormalized counters with the vote table.
	GetCounterService().ScheduleUpdate(postID)

	return state, counters, nil
}
