// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/agora/internal/ports/secondary"
)

// JournalRepository implements secondary.JournalRepository with SQLite.
type JournalRepository struct {
	db *sql.DB
}

// NewJournalRepository creates a new SQLite journal repository.
func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Record persists a journal entry.
func (r *JournalRepository) Record(ctx context.Context, entry *secondary.JournalEntry) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO journal (id, operation, entity_id, tx_hash, height) VALUES (?, ?, ?, ?, ?)",
		entry.ID, entry.Operation, entry.EntityID, entry.TxHash, entry.Height,
	)
	if err != nil {
		return fmt.Errorf("failed to record journal entry: %w", err)
	}
	return nil
}

// List retrieves entries matching the given filters, newest first.
func (r *JournalRepository) List(ctx context.Context, filters secondary.JournalFilters) ([]*secondary.JournalEntry, error) {
	query := "SELECT id, operation, entity_id, tx_hash, height, created_at FROM journal"
	args := []any{}

	if filters.Operation != "" {
		query += " WHERE operation = ?"
		args = append(args, filters.Operation)
	}
	query += " ORDER BY created_at DESC, id DESC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.JournalEntry
	for rows.Next() {
		var (
			entry     secondary.JournalEntry
			createdAt time.Time
		)
		if err := rows.Scan(&entry.ID, &entry.Operation, &entry.EntityID, &entry.TxHash, &entry.Height, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entry.CreatedAt = createdAt.Format(time.RFC3339)
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal entries: %w", err)
	}

	return entries, nil
}
