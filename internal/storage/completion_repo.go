package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type CompletionRepo struct {
	db *sql.DB
}

func NewCompletionRepo(db *sql.DB) *CompletionRepo {
	return &CompletionRepo{db: db}
}

// Insert records a completion for (quest, day). Returns false if an entry
// already existed for that quest-day; the unique index enforces at most one.
func (r *CompletionRepo) Insert(ctx context.Context, username, questID, day string, xpAwarded int, completedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO completions (username, quest_id, day, xp_awarded, completed_at)
		VALUES (?, ?, ?, ?, ?)
	`, username, questID, day, xpAwarded, completedAt)
	if err != nil {
		return false, fmt.Errorf("completion insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("completion rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *CompletionRepo) ListAll(ctx context.Context, username string) ([]Completion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, quest_id, day, xp_awarded, completed_at
		FROM completions
		WHERE username = ?
		ORDER BY day ASC, id ASC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("completion list: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		if err := rows.Scan(&c.ID, &c.Username, &c.QuestID, &c.Day, &c.XPAwarded, &c.CompletedAt); err != nil {
			return nil, fmt.Errorf("completion scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion list rows: %w", err)
	}
	return out, nil
}

func (r *CompletionRepo) CountAll(ctx context.Context, username string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM completions WHERE username = ?`, username)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return n, nil
}

func (r *CompletionRepo) CountOnDay(ctx context.Context, username, day string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM completions WHERE username = ? AND day = ?`, username, day)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("completion day count: %w", err)
	}
	return n, nil
}

// PruneBefore drops completion entries older than the cutoff day. Used by
// storage compaction; day keys sort lexicographically in date order.
func (r *CompletionRepo) PruneBefore(ctx context.Context, username, cutoffDay string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM completions WHERE username = ? AND day < ?`, username, cutoffDay)
	if err != nil {
		return 0, fmt.Errorf("completion prune: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("completion prune rows: %w", err)
	}
	return n, nil
}

func (r *CompletionRepo) DeleteAll(ctx context.Context, username string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM completions WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("completion delete all: %w", err)
	}
	return nil
}
