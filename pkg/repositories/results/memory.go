package results

import (
	"context"
	"sync"

	"github.com/cardroom/playingcards/pkg/games/redorblack"
)

// MemoryRepository implements Repository with in-memory storage.
// Results are lost when the process exits.
type MemoryRepository struct {
	mu      sync.RWMutex
	results []*redorblack.Result
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// SaveResult stores the summary of a finished game
func (r *MemoryRepository) SaveResult(ctx context.Context, result *redorblack.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = append(r.results, result)
	return nil
}

// ListResults retrieves up to limit results, most recent first
func (r *MemoryRepository) ListResults(ctx context.Context, limit int) ([]*redorblack.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*redorblack.Result, 0, limit)
	for i := len(r.results) - 1; i >= 0 && len(results) < limit; i-- {
		results = append(results, r.results[i])
	}
	return results, nil
}

// Close implements Repository; there is nothing to release
func (r *MemoryRepository) Close() error {
	return nil
}
