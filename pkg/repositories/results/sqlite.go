package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cardroom/playingcards/pkg/cards"
	"github.com/cardroom/playingcards/pkg/games/redorblack"
)

const createResultsTableSQL = `
	CREATE TABLE IF NOT EXISTS game_results (
		id TEXT PRIMARY KEY,
		wins INTEGER NOT NULL,
		outcomes TEXT NOT NULL,  -- JSON array of round outcomes
		completed_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_completed ON game_results(completed_at)`

// outcomeRecord is the JSON row form of an outcome; cards are stored
// by their compact ID so the schema stays readable
type outcomeRecord struct {
	Round string `json:"round"`
	Card  string `json:"card"`
	Guess string `json:"guess"`
	Won   bool   `json:"won"`
}

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (creating if needed) a results database at
// the given path and bootstraps the schema
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if _, err := db.Exec(createResultsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveResult stores the summary of a finished game
func (r *SQLiteRepository) SaveResult(ctx context.Context, result *redorblack.Result) error {
	records := make([]outcomeRecord, 0, len(result.Outcomes))
	for _, outcome := range result.Outcomes {
		records = append(records, outcomeRecord{
			Round: string(outcome.Round),
			Card:  outcome.Card.ID(),
			Guess: outcome.Guess,
			Won:   outcome.Won,
		})
	}
	outcomesJSON, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("error encoding outcomes: %w", err)
	}

	query := `
		INSERT INTO game_results (id, wins, outcomes, completed_at)
		VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, result.GameID, result.Wins, string(outcomesJSON), result.CompletedAt); err != nil {
		return fmt.Errorf("error saving result: %w", err)
	}
	return nil
}

// ListResults retrieves up to limit results, most recent first
func (r *SQLiteRepository) ListResults(ctx context.Context, limit int) ([]*redorblack.Result, error) {
	query := `
		SELECT id, wins, outcomes, completed_at
		FROM game_results
		ORDER BY completed_at DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing results: %w", err)
	}
	defer rows.Close()

	var results []*redorblack.Result
	for rows.Next() {
		var (
			id           string
			wins         int
			outcomesJSON string
			completedAt  time.Time
		)
		if err := rows.Scan(&id, &wins, &outcomesJSON, &completedAt); err != nil {
			return nil, fmt.Errorf("error scanning result row: %w", err)
		}

		outcomes, err := decodeOutcomes(outcomesJSON)
		if err != nil {
			return nil, fmt.Errorf("error decoding result %s: %w", id, err)
		}

		results = append(results, &redorblack.Result{
			GameID:      id,
			Wins:        wins,
			Outcomes:    outcomes,
			CompletedAt: completedAt,
		})
	}
	return results, rows.Err()
}

// Close closes the underlying database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func decodeOutcomes(outcomesJSON string) ([]redorblack.Outcome, error) {
	var records []outcomeRecord
	if err := json.Unmarshal([]byte(outcomesJSON), &records); err != nil {
		return nil, err
	}

	outcomes := make([]redorblack.Outcome, 0, len(records))
	for _, record := range records {
		card, err := cards.ParseCard(record.Card)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, redorblack.Outcome{
			Round: redorblack.Round(record.Round),
			Card:  card,
			Guess: record.Guess,
			Won:   record.Won,
		})
	}
	return outcomes, nil
}
