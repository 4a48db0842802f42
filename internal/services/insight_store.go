package services

import (
	"context"
	"sync"
	"time"

	"smartguider/internal/models"
)

// memoryInsightStore keeps the most recent insights per user in process.
// It backs the history when no document store is configured.
type memoryInsightStore struct {
	mu       sync.RWMutex
	capacity int
	byUser   map[string][]models.Insight
}

// NewMemoryInsightStore returns an InsightStore that keeps up to capacity
// insights per user and forgets everything on restart.
func NewMemoryInsightStore(capacity int) InsightStore {
	if capacity <= 0 {
		capacity = 50
	}
	return &memoryInsightStore{capacity: capacity, byUser: make(map[string][]models.Insight)}
}

func (s *memoryInsightStore) Save(_ context.Context, insight *models.Insight) error {
	if insight.CreatedAt.IsZero() {
		insight.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := append(s.byUser[insight.UserID], *insight)
	if len(list) > s.capacity {
		list = list[len(list)-s.capacity:]
	}
	s.byUser[insight.UserID] = list
	return nil
}

func (s *memoryInsightStore) ListByUser(_ context.Context, userID string, limit int) ([]models.Insight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.byUser[userID]
	out := make([]models.Insight, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, list[i])
	}
	return out, nil
}
