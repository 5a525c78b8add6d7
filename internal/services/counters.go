package services

import (
	"log"
	"sync"
	"time"

	"skillpath/internal/db"
	"skillpath/internal/models"
)

// CounterService converges the denormalized post counters (upvotes,
// downvotes, comment count) with the vote and comment tables in the
// background. The transactional write paths keep the counters close; this
// worker makes them exact.
type CounterService struct {
	queue   chan uint
	pending map[uint]bool
	mu      sync.Mutex
}

var (
	counterService *CounterService
	counterOnce    sync.Once
)

// GetCounterService returns the singleton worker, starting it on first use.
func GetCounterService() *CounterService {
	counterOnce.Do(func() {
		counterService = &CounterService{
			queue:   make(chan uint, 1000),
			pending: make(map[uint]bool),
		}
		go counterService.worker()
	})
	return counterService
}

// ScheduleUpdate queues a post for reconciliation. Posts already queued
// are skipped so bursts of votes collapse into one recount.
func (s *CounterService) ScheduleUpdate(postID uint) {
	s.mu.Lock()
	if s.pending[postID] {
		s.mu.Unlock()
		return
	}
	s.pending[postID] = true
	s.mu.Unlock()

	select {
	case s.queue <- postID:
	default:
		s.mu.Lock()
		delete(s.pending, postID)
		s.mu.Unlock()
		log.Printf("counter queue full, skipping post %d", postID)
	}
}

func (s *CounterService) worker() {
	batch := make([]uint, 0, 50)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case postID := <-s.queue:
			batch = append(batch, postID)
			if len(batch) >= 50 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *CounterService) processBatch(postIDs []uint) {
	for _, postID := range postIDs {
		s.reconcile(postID)

		s.mu.Lock()
		delete(s.pending, postID)
		s.mu.Unlock()
	}
}

// reconcile recounts one post's votes and comments and writes the counts
// back, restoring the invariant that counters equal the real row counts.
func (s *CounterService) reconcile(postID uint) {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		log.Printf("counter reconcile: post %d not found", postID)
		return
	}

	var upvotes int64
	db.DB.Model(&models.PostVote{}).Where("post_id = ? AND value = 1", postID).Count(&upvotes)

	var downvotes int64
	db.DB.Model(&models.PostVote{}).Where("post_id = ? AND value = -1", postID).Count(&downvotes)

	var comments int64
	db.DB.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&comments)

	err := db.DB.Model(&post).UpdateColumns(map[string]interface{}{
		"upvotes":       int(upvotes),
		"downvotes":     int(downvotes),
		"comment_count": int(comments),
	}).Error
	if err != nil {
		log.Printf("counter reconcile: update post %d failed: %v", postID, err)
	}
}
