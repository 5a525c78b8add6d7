package handlers

import (
	"net/http"

	"skillpath/internal/db"
	"skillpath/internal/models"
	"skillpath/internal/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	votes *services.VoteService
}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{
		votes: services.NewVoteService(),
	}
}

type voteRequest struct {
	Direction string `json:"direction" binding:"required"` // "up" or "down"
}

// Cast applies one vote click. The response carries the counters the
// reconciler settled on: optimistic values when the write lands, the
// pre-action snapshot when it does not.
func (h *VoteHandler) Cast(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		FailAuth(c)
		return
	}

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "direction required")
		return
	}

	var ev services.VoteEvent
	switch req.Direction {
	case "up":
		ev = services.ClickUp
	case "down":
		ev = services.ClickDown
	default:
		Fail(c, http.StatusBadRequest, "direction must be up or down")
		return
	}

	pid := c.Param("pid")
	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		Fail(c, http.StatusNotFound, "post not found")
		return
	}

	// Mirror the displayed state, apply the event optimistically, then
	// reconcile against the write.
	rec := services.VoteReconciler{
		State:    h.votes.CurrentState(user.ID, post.ID),
		Counters: services.VoteCounters{Upvotes: post.Upvotes, Downvotes: post.Downvotes},
	}
	rec.Begin(ev)

	if _, _, err := h.votes.Cast(user.ID, post.ID, ev); err != nil {
		rec.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "vote failed",
			"vote_state": rec.State.String(),
			"upvotes":    rec.Counters.Upvotes,
			"downvotes":  rec.Counters.Downvotes,
		})
		return
	}
	rec.Confirm()

	c.JSON(http.StatusOK, gin.H{
		"vote_state": rec.State.String(),
		"upvotes":    rec.Counters.Upvotes,
		"downvotes":  rec.Counters.Downvotes,
	})
}
