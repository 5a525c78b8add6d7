package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"skillpath/internal/db"
	"skillpath/internal/models"
)

// FeedPageSize is the fixed page size for every community feed tab.
const FeedPageSize = 10

// feedWait is the soft client-facing timeout for one page fetch. It ends
// the wait and surfaces a retryable error; the underlying query keeps
// running and its late result is discarded by the generation counter.
const feedWait = 20 * time.Second

type FeedFilter string

const (
	FilterTrending      FeedFilter = "trending"
	FilterRecent        FeedFilter = "recent"
	FilterMostCommented FeedFilter = "most-commented"
	FilterSaved         FeedFilter = "saved"
)

// ErrFeedTimeout is a recoverable condition; callers should offer an
// explicit retry rather than treating it as fatal.
var ErrFeedTimeout = errors.New("feed: page fetch timed out")

// ErrFeedFailed is returned while the controller is in its failed state;
// Retry clears it.
var ErrFeedFailed = errors.New("feed: previous fetch failed, retry required")

// PostSource fetches one page of posts for a filter. Pages are 1-based.
type PostSource interface {
	FetchPage(ctx context.Context, filter FeedFilter, page int, userID uint) ([]models.Post, error)
}

// FeedController accumulates pages of posts for the active filter. At most
// one fetch is in flight at a time; duplicate requests while loading are
// dropped. Switching the filter resets to page 1 and discards everything
// accumulated, including any fetch still in flight.
type FeedController struct {
	source PostSource
	userID uint          // 0 for anonymous visitors
	wait   time.Duration // soft timeout, feedWait unless overridden

	mu      sync.Mutex
	filter  FeedFilter
	page    int // last successfully loaded page, 0 before the first
	posts   []models.Post
	hasMore bool
	loading bool
	failed  bool
	gen     uint64 // bumped on every reset/timeout; stale fetches check it
}

func NewFeedController(source PostSource, userID uint) *FeedController {
	return &FeedController{
		source:  source,
		userID:  userID,
		wait:    feedWait,
		filter:  FilterTrending,
		hasMore: true,
	}
}

// SetFilter switches the active tab. Switching to a different filter
// discards accumulated posts and invalidates any fetch in flight.
func (f *FeedController) SetFilter(filter FeedFilter) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if filter == f.filter {
		return
	}
	f.filter = filter
	f.resetLocked()
}

// Reset discards accumulated state for the current filter.
func (f *FeedController) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *FeedController) resetLocked() {
	f.gen++
	f.page = 0
	f.posts = nil
	f.hasMore = true
	f.loading = false
	f.failed = false
}

// LoadMore fetches the next page and appends it. A call while a fetch is
// already in flight is dropped without error. The saved tab requires a
// signed-in user; for an anonymous visitor it yields an empty feed
// immediately, without touching the source.
func (f *FeedController) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.filter == FilterSaved && f.userID == 0 {
		f.posts = nil
		f.hasMore = false
		f.mu.Unlock()
		return nil
	}
	if f.loading {
		f.mu.Unlock()
		return nil
	}
	if f.failed {
		f.mu.Unlock()
		return ErrFeedFailed
	}
	if !f.hasMore {
		f.mu.Unlock()
		return nil
	}
	f.loading = true
	gen := f.gen
	filter := f.filter
	page := f.page + 1
	f.mu.Unlock()

	type result struct {
		posts []models.Post
		err   error
	}
	// The fetch must outlive both the soft timeout and the caller's
	// request context; a late result is discarded by the gen check, not
	// by cancellation.
	fetchCtx := context.WithoutCancel(ctx)
	done := make(chan result, 1)
	go func() {
		posts, err := f.source.FetchPage(fetchCtx, filter, page, f.userID)
		f.finish(gen, page, posts, err)
		done <- result{posts, err}
	}()

	select {
	case res := <-done:
		return res.err
	case <-time.After(f.wait):
		f.timeout(gen)
		return ErrFeedTimeout
	}
}

// Retry clears the failed state left by an earlier error and fetches again.
func (f *FeedController) Retry(ctx context.Context) error {
	f.mu.Lock()
	f.failed = false
	f.mu.Unlock()
	return f.LoadMore(ctx)
}

func (f *FeedController) finish(gen uint64, page int, posts []models.Post, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		// Filter switched or wait timed out while this fetch was in
		// flight; its result no longer belongs to the displayed feed.
		return
	}
	f.loading = false
	if err != nil {
		f.failed = true
		return
	}
	f.page = page
	f.posts = append(f.posts, posts...)
	// A short page means the remote set is exhausted.
	f.hasMore = len(posts) == FeedPageSize
}

func (f *FeedController) timeout(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		return
	}
	f.gen++
	f.loading = false
	f.failed = true
}

// Posts returns the accumulated posts for the active filter.
func (f *FeedController) Posts() []models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Post, len(f.posts))
	copy(out, f.posts)
	return out
}

func (f *FeedController) Filter() FeedFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter
}

func (f *FeedController) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore && !f.failed
}

func (f *FeedController) Failed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failed
}

// DBPostSource pages posts out of Postgres.
type DBPostSource struct{}

func NewDBPostSource() *DBPostSource {
	return &DBPostSource{}
}

func (s *DBPostSource) FetchPage(ctx context.Context, filter FeedFilter, page int, userID uint) ([]models.Post, error) {
	offset := (page - 1) * FeedPageSize
	query := db.DB.WithContext(ctx).Preload("User").Limit(FeedPageSize).Offset(offset)

	switch filter {
	case FilterRecent:
		query = query.Order("created_at DESC")
	case FilterMostCommented:
		query = query.Order("comment_count DESC, created_at DESC")
	case FilterSaved:
		// Resolve the saved set first, then page the restricted posts.
		var ids []uint
		if err := db.DB.WithContext(ctx).Model(&models.SavedPost{}).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Pluck("post_id", &ids).Error; err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []models.Post{}, nil
		}
		query = query.Where("id IN ?", ids).Order("created_at DESC")
	default: // trending
		query = query.Order("upvotes DESC, created_at DESC")
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
