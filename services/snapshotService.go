package services

import (
	"context"
	"log"
	"sync"
	"time"

	"RaacProms/cache"
	"RaacProms/models"
	"RaacProms/repositories"
)

// SnapshotDebounceDelay is the quiet period after the last mutation before
// the store snapshot is written.
const SnapshotDebounceDelay = 3 * time.Second

// SnapshotService coalesces bursts of store mutations into a single JSON
// snapshot write under the fixed storage key. Every Touch cancels and
// reschedules the pending write.
type SnapshotService struct {
	backupRepo *repositories.BackupRepository
	cache      *cache.Cache
	delay      time.Duration
	flush      func()

	mu    sync.Mutex
	timer *time.Timer
}

func NewSnapshotService(backupRepo *repositories.BackupRepository, cache *cache.Cache) *SnapshotService {
	s := &SnapshotService{
		backupRepo: backupRepo,
		cache:      cache,
		delay:      SnapshotDebounceDelay,
	}
	s.flush = s.writeSnapshot
	return s
}

// Touch schedules a snapshot write after the quiet period, replacing any
// write already pending.
func (s *SnapshotService) Touch() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.flush)
}

// writeSnapshot dumps the whole store as one JSON blob. Failures are logged
// and dropped; the snapshot is a convenience copy, the database stays the
// source of truth.
func (s *SnapshotService) writeSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	backup, err := s.backupRepo.LoadAll(ctx)
	if err != nil {
		log.Printf("Failed to build store snapshot: %v", err)
		return
	}
	if err := s.cache.SetJSON(ctx, models.StorageKey, backup, 0); err != nil {
		log.Printf("Failed to write store snapshot: %v", err)
	}
}
