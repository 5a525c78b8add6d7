package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"skillpath/internal/services"
	"skillpath/internal/utils"

	"github.com/gin-gonic/gin"
)

// FeedHandler serves the community feed tabs. One FeedController per
// visitor is kept in the process cache so page accumulation, in-flight
// dedup and the soft timeout behave the same across requests.
type FeedHandler struct {
	source services.PostSource
}

func NewFeedHandler() *FeedHandler {
	return &FeedHandler{
		source: services.NewDBPostSource(),
	}
}

func (h *FeedHandler) controller(c *gin.Context) *services.FeedController {
	userID := uint(0)
	key := "feed:ip:" + c.ClientIP()
	if user := CurrentUser(c); user != nil {
		userID = user.ID
		key = fmt.Sprintf("feed:u:%d", userID)
	}

	if cached := utils.GetCache().Get(key); cached != nil {
		if ctrl, ok := cached.(*services.FeedController); ok {
			return ctrl
		}
	}

	ctrl := services.NewFeedController(h.source, userID)
	utils.GetCache().Set(key, ctrl, 30*time.Minute)
	return ctrl
}

func parseFilter(s string) services.FeedFilter {
	switch services.FeedFilter(s) {
	case services.FilterRecent, services.FilterMostCommented, services.FilterSaved:
		return services.FeedFilter(s)
	}
	return services.FilterTrending
}

func (h *FeedHandler) respond(c *gin.Context, ctrl *services.FeedController, err error) {
	switch {
	case errors.Is(err, services.ErrFeedTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "feed timed out", "retryable": true})
		return
	case errors.Is(err, services.ErrFeedFailed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "feed unavailable", "retryable": true})
		return
	case err != nil:
		Fail(c, http.StatusInternalServerError, "could not load feed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filter":   ctrl.Filter(),
		"posts":    ctrl.Posts(),
		"has_more": ctrl.HasMore(),
	})
}

// List activates a filter tab and returns its first page. Revisiting the
// active tab returns what is already accumulated.
func (h *FeedHandler) List(c *gin.Context) {
	ctrl := h.controller(c)
	ctrl.SetFilter(parseFilter(c.DefaultQuery("filter", string(services.FilterTrending))))

	var err error
	if len(ctrl.Posts()) == 0 && ctrl.HasMore() {
		err = ctrl.LoadMore(c.Request.Context())
	}
	h.respond(c, ctrl, err)
}

// More appends the next page for the active filter.
func (h *FeedHandler) More(c *gin.Context) {
	ctrl := h.controller(c)
	h.respond(c, ctrl, ctrl.LoadMore(c.Request.Context()))
}

// Retry clears a failed fetch and tries again.
func (h *FeedHandler) Retry(c *gin.Context) {
	ctrl := h.controller(c)
	h.respond(c, ctrl, ctrl.Retry(c.Request.Context()))
}

// Refresh discards accumulated posts and reloads page one.
func (h *FeedHandler) Refresh(c *gin.Context) {
	ctrl := h.controller(c)
	ctrl.Reset()
	h.respond(c, ctrl, ctrl.LoadMore(c.Request.Context()))
}
