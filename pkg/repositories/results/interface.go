package results

import (
	"context"

	"github.com/cardroom/playingcards/pkg/games/redorblack"
)

// Repository defines storage operations for finished game results.
// In-flight game state (decks, open rounds) is never persisted.
type Repository interface {
	// SaveResult stores the summary of a finished game
	SaveResult(ctx context.Context, result *redorblack.Result) error

	// ListResults retrieves up to limit results, most recent first
	ListResults(ctx context.Context, limit int) ([]*redorblack.Result, error)

	// Close closes any resources used by the repository
	Close() error
}
