package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type JournalRepo struct {
	db *sql.DB
}

func NewJournalRepo(db *sql.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

// Insert stores the entry and prunes the oldest entries beyond keep.
func (r *JournalRepo) Insert(ctx context.Context, e *JournalEntry, keep int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO journal_entries (id, username, entry_date, mood, wins, challenges, tomorrow)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Username, e.Date, e.Mood, e.Wins, e.Challenges, e.Tomorrow)
	if err != nil {
		return fmt.Errorf("journal insert: %w", err)
	}
	return r.Prune(ctx, e.Username, keep)
}

// Prune keeps only the newest keep entries.
func (r *JournalRepo) Prune(ctx context.Context, username string, keep int) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM journal_entries
		WHERE username = ? AND id NOT IN (
			SELECT id FROM journal_entries
			WHERE username = ?
			ORDER BY entry_date DESC
			LIMIT ?
		)
	`, username, username, keep)
	if err != nil {
		return fmt.Errorf("journal prune: %w", err)
	}
	return nil
}

func (r *JournalRepo) List(ctx context.Context, username string) ([]JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, entry_date, mood, wins, challenges, tomorrow
		FROM journal_entries
		WHERE username = ?
		ORDER BY entry_date DESC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("journal list: %w", err)
	}
	defer rows.Close()

	var out []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.Username, &e.Date, &e.Mood, &e.Wins, &e.Challenges, &e.Tomorrow); err != nil {
			return nil, fmt.Errorf("journal scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal list rows: %w", err)
	}
	return out, nil
}

func (r *JournalRepo) Count(ctx context.Context, username string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM journal_entries WHERE username = ?`, username)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("journal count: %w", err)
	}
	return n, nil
}

func (r *JournalRepo) DeleteAll(ctx context.Context, username string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("journal delete all: %w", err)
	}
	return nil
}

type ReviewRepo struct {
	db *sql.DB
}

func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// Insert stores a weekly review and keeps only the newest keep rows.
func (r *ReviewRepo) Insert(ctx context.Context, rev *WeeklyReview, keep int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO weekly_reviews (username, day, win, focus)
		VALUES (?, ?, ?, ?)
	`, rev.Username, rev.Day, rev.Win, rev.Focus)
	if err != nil {
		return fmt.Errorf("review insert: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		DELETE FROM weekly_reviews
		WHERE username = ? AND day NOT IN (
			SELECT day FROM weekly_reviews
			WHERE username = ?
			ORDER BY day DESC
			LIMIT ?
		)
	`, rev.Username, rev.Username, keep)
	if err != nil {
		return fmt.Errorf("review prune: %w", err)
	}
	return nil
}

func (r *ReviewRepo) List(ctx context.Context, username string) ([]WeeklyReview, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT username, day, win, focus
		FROM weekly_reviews
		WHERE username = ?
		ORDER BY day DESC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("review list: %w", err)
	}
	defer rows.Close()

	var out []WeeklyReview
	for rows.Next() {
		var rev WeeklyReview
		if err := rows.Scan(&rev.Username, &rev.Day, &rev.Win, &rev.Focus); err != nil {
			return nil, fmt.Errorf("review scan: %w", err)
		}
		out = append(out, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("review list rows: %w", err)
	}
	return out, nil
}
