package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"skillpath/internal/models"
)

type fakeSource struct {
	mu    sync.Mutex
	calls int
	pages map[string][]models.Post
	block chan struct{} // when set, FetchPage waits on it
	err   error
}

func pageKey(filter FeedFilter, page int) string {
	return fmt.Sprintf("%s:%d", filter, page)
}

func (f *fakeSource) FetchPage(ctx context.Context, filter FeedFilter, page int, userID uint) ([]models.Post, error) {
	f.mu.Lock()
	f.calls++
	block := f.block
	err := f.err
	posts := f.pages[pageKey(filter, page)]
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func makePosts(start, n int) []models.Post {
	posts := make([]models.Post, n)
	for i := range posts {
		posts[i] = models.Post{ID: uint(start + i)}
	}
	return posts
}

func TestFeedFullPageHasMore(t *testing.T) {
	src := &fakeSource{pages: map[string][]models.Post{
		pageKey(FilterTrending, 1): makePosts(1, FeedPageSize),
	}}
	ctrl := NewFeedController(src, 1)

	if err := ctrl.LoadMore(context.Background()); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}
	if len(ctrl.Posts()) != FeedPageSize {
		t.Fatalf("expected %d posts, got %d", FeedPageSize, len(ctrl.Posts()))
	}
	if !ctrl.HasMore() {
		t.Errorf("a full page must leave has-more true")
	}
}

func TestFeedShortPageEndsPaging(t *testing.T) {
	src := &fakeSource{pages: map[string][]models.Post{
		pageKey(FilterTrending, 1): makePosts(1, 7),
	}}
	ctrl := NewFeedController(src, 1)

	if err := ctrl.LoadMore(context.Background()); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}
	if ctrl.HasMore() {
		t.Errorf("a 7-row page must clear has-more")
	}

	// Further LoadMore calls must not hit the source.
	before := src.callCount()
	if err := ctrl.LoadMore(context.Background()); err != nil {
		t.Fatalf("LoadMore after exhaustion: %v", err)
	}
	if src.callCount() != before {
		t.Errorf("exhausted feed must not fetch again")
	}
}

func TestFeedAccumulatesPages(t *testing.T) {
	src := &fakeSource{pages: map[string][]models.Post{
		pageKey(FilterRecent, 1): makePosts(1, FeedPageSize),
		pageKey(FilterRecent, 2): makePosts(11, 4),
	}}
	ctrl := NewFeedController(src, 1)
	ctrl.SetFilter(FilterRecent)

	ctrl.LoadMore(context.Background())
	ctrl.LoadMore(context.Background())

	if got := len(ctrl.Posts()); got != 14 {
		t.Fatalf("expected 14 accumulated posts, got %d", got)
	}
	if ctrl.HasMore() {
		t.Errorf("short second page must end paging")
	}
}

func TestFeedSwitchFilterDiscardsAccumulated(t *testing.T) {
	src := &fakeSource{pages: map[string][]models.Post{
		pageKey(FilterTrending, 1): makePosts(1, FeedPageSize),
		pageKey(FilterRecent, 1):   makePosts(100, 3),
	}}
	ctrl := NewFeedController(src, 1)

	ctrl.LoadMore(context.Background())
	ctrl.SetFilter(FilterRecent)

	if len(ctrl.Posts()) != 0 {
		t.Fatalf("filter switch must discard accumulated posts")
	}

	ctrl.LoadMore(context.Background())
	posts := ctrl.Posts()
	if len(posts) != 3 || posts[0].ID != 100 {
		t.Errorf("only posts for the active filter may be rendered")
	}
}

func TestFeedSwitchFilterMidFlightDiscardsStaleResult(t *testing.T) {
	block := make(chan struct{})
	src := &fakeSource{
		block: block,
		pages: map[string][]models.Post{
			pageKey(FilterTrending, 1): makePosts(1, FeedPageSize),
		},
	}
	ctrl := NewFeedController(src, 1)

	done := make(chan error, 1)
	go func() { done <- ctrl.LoadMore(context.Background()) }()

	// Let the fetch get in flight, then switch tabs underneath it.
	time.Sleep(20 * time.Millisecond)
	ctrl.SetFilter(FilterRecent)
	close(block)
	<-done

	if got := len(ctrl.Posts()); got != 0 {
		t.Fatalf("stale page landed after filter switch: %d posts", got)
	}
	if ctrl.Filter() != FilterRecent {
		t.Errorf("active filter changed unexpectedly")
	}
}

func TestFeedDuplicateRequestDropped(t *testing.T) {
	block := make(chan struct{})
	src := &fakeSource{
		block: block,
		pages: map[string][]models.Post{
			pageKey(FilterTrending, 1): makePosts(1, FeedPageSize),
		},
	}
	ctrl := NewFeedController(src, 1)

	done := make(chan error, 1)
	go func() { done <- ctrl.LoadMore(context.Background()) }()
	time.Sleep(20 * time.Millisecond)

	// Second request while the first is in flight: dropped, no error.
	if err := ctrl.LoadMore(context.Background()); err != nil {
		t.Fatalf("duplicate request should be dropped silently, got %v", err)
	}
	close(block)
	<-done

	if src.callCount() != 1 {
		t.Errorf("expected a single fetch, got %d", src.callCount())
	}
}

func TestFeedTimeoutIsRetryable(t *testing.T) {
	block := make(chan struct{})
	src := &fakeSource{
		block: block,
		pages: map[string][]models.Post{
			pageKey(FilterTrending, 1): makePosts(1, 5),
		},
	}
	ctrl := NewFeedController(src, 1)
	ctrl.wait = 30 * time.Millisecond

	if err := ctrl.LoadMore(context.Background()); !errors.Is(err, ErrFeedTimeout) {
		t.Fatalf("expected ErrFeedTimeout, got %v", err)
	}
	if ctrl.HasMore() {
		t.Errorf("load-more must be suppressed until explicit retry")
	}

	// The late response must be discarded, not appended.
	close(block)
	time.Sleep(20 * time.Millisecond)
	if len(ctrl.Posts()) != 0 {
		t.Fatalf("late response after timeout must be discarded")
	}

	src.mu.Lock()
	src.block = nil
	src.mu.Unlock()

	if err := ctrl.Retry(context.Background()); err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if len(ctrl.Posts()) != 5 {
		t.Errorf("retry should load the page, got %d posts", len(ctrl.Posts()))
	}
}

func TestFeedFetchErrorDisablesLoadMoreUntilRetry(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	ctrl := NewFeedController(src, 1)

	if err := ctrl.LoadMore(context.Background()); err == nil {
		t.Fatalf("expected fetch error")
	}
	if ctrl.HasMore() {
		t.Errorf("failed feed must not offer load-more")
	}
	if err := ctrl.LoadMore(context.Background()); !errors.Is(err, ErrFeedFailed) {
		t.Fatalf("expected ErrFeedFailed while failed, got %v", err)
	}

	src.mu.Lock()
	src.err = nil
	src.pages = map[string][]models.Post{pageKey(FilterTrending, 1): makePosts(1, 2)}
	src.mu.Unlock()

	if err := ctrl.Retry(context.Background()); err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if len(ctrl.Posts()) != 2 {
		t.Errorf("retry should recover the feed")
	}
}

func TestFeedSavedTabAnonymousIsEmptyWithoutFetch(t *testing.T) {
	src := &fakeSource{pages: map[string][]models.Post{
		pageKey(FilterSaved, 1): makePosts(1, 5),
	}}
	ctrl := NewFeedController(src, 0) // anonymous
	ctrl.SetFilter(FilterSaved)

	if err := ctrl.LoadMore(context.Background()); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}
	if len(ctrl.Posts()) != 0 {
		t.Errorf("anonymous saved tab must be empty")
	}
	if ctrl.HasMore() {
		t.Errorf("anonymous saved tab must not offer load-more")
	}
	if src.callCount() != 0 {
		t.Errorf("anonymous saved tab must not hit the source")
	}
}
