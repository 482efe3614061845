package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type AchievementRepo struct {
	db *sql.DB
}

func NewAchievementRepo(db *sql.DB) *AchievementRepo {
	return &AchievementRepo{db: db}
}

// Seed inserts locked rows for any achievement ids the user does not have
// yet. Existing rows (including unlocked ones) are left untouched.
func (r *AchievementRepo) Seed(ctx context.Context, username string, defs []AchievementState) error {
	for _, d := range defs {
		_, err := r.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO achievements (username, id, condition, unlocked)
			VALUES (?, ?, ?, 0)
		`, username, d.ID, d.Condition)
		if err != nil {
			return fmt.Errorf("achievement seed: %w", err)
		}
	}
	return nil
}

func (r *AchievementRepo) ListAll(ctx context.Context, username string) ([]AchievementState, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT username, id, condition, unlocked, unlocked_at
		FROM achievements
		WHERE username = ?
		ORDER BY id ASC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []AchievementState
	for rows.Next() {
		var (
			a          AchievementState
			unlocked   int
			unlockedAt sql.NullTime
		)
		if err := rows.Scan(&a.Username, &a.ID, &a.Condition, &unlocked, &unlockedAt); err != nil {
			return nil, fmt.Errorf("achievement scan: %w", err)
		}
		a.Unlocked = unlocked != 0
		if unlockedAt.Valid {
			v := unlockedAt.Time
			a.UnlockedAt = &v
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement list rows: %w", err)
	}
	return out, nil
}

// Unlock marks an achievement as unlocked. Unlocking is monotonic: an
// already-unlocked row keeps its original unlocked_at.
func (r *AchievementRepo) Unlock(ctx context.Context, username, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE achievements
		SET unlocked = 1, unlocked_at = ?
		WHERE username = ? AND id = ? AND unlocked = 0
	`, at, username, id)
	if err != nil {
		return fmt.Errorf("achievement unlock: %w", err)
	}
	return nil
}

func (r *AchievementRepo) RelockAll(ctx context.Context, username string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE achievements
		SET unlocked = 0, unlocked_at = NULL
		WHERE username = ?
	`, username)
	if err != nil {
		return fmt.Errorf("achievement relock: %w", err)
	}
	return nil
}
