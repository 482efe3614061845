package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type QuestRepo struct {
	db *sql.DB
}

func NewQuestRepo(db *sql.DB) *QuestRepo {
	return &QuestRepo{db: db}
}

func (r *QuestRepo) Insert(ctx context.Context, q *Quest) error {
	customDays, statRewards, err := marshalQuestFields(q)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO quests (id, username, name, icon, category, xp_base, target, essential, frequency, custom_days, stat_rewards)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, q.ID, q.Username, q.Name, q.Icon, q.Category, q.XPBase, q.Target, boolToInt(q.Essential), q.Frequency, customDays, statRewards)
	if err != nil {
		return fmt.Errorf("quest insert: %w", err)
	}
	return nil
}

func (r *QuestRepo) Update(ctx context.Context, q *Quest) error {
	customDays, statRewards, err := marshalQuestFields(q)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE quests
		SET name = ?, icon = ?, category = ?, xp_base = ?, target = ?, essential = ?, frequency = ?, custom_days = ?, stat_rewards = ?
		WHERE id = ? AND username = ?
	`, q.Name, q.Icon, q.Category, q.XPBase, q.Target, boolToInt(q.Essential), q.Frequency, customDays, statRewards, q.ID, q.Username)
	if err != nil {
		return fmt.Errorf("quest update: %w", err)
	}
	return nil
}

// Delete removes the quest definition only. Completion log entries for the
// quest are kept; orphaned entries are harmless.
func (r *QuestRepo) Delete(ctx context.Context, username, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM quests WHERE id = ? AND username = ?`, id, username)
	if err != nil {
		return fmt.Errorf("quest delete: %w", err)
	}
	return nil
}

func (r *QuestRepo) Get(ctx context.Context, username, id string) (*Quest, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, name, icon, category, xp_base, target, essential, frequency, custom_days, stat_rewards, created_at
		FROM quests
		WHERE id = ? AND username = ?
	`, id, username)
	return scanQuest(row)
}

func (r *QuestRepo) ListAll(ctx context.Context, username string) ([]Quest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, name, icon, category, xp_base, target, essential, frequency, custom_days, stat_rewards, created_at
		FROM quests
		WHERE username = ?
		ORDER BY created_at ASC, id ASC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("quest list: %w", err)
	}
	defer rows.Close()

	var out []Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest list rows: %w", err)
	}
	return out, nil
}

func (r *QuestRepo) DeleteAll(ctx context.Context, username string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM quests WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("quest delete all: %w", err)
	}
	return nil
}

func marshalQuestFields(q *Quest) (customDays *string, statRewards string, err error) {
	if len(q.CustomDays) > 0 {
		data, err := json.Marshal(q.CustomDays)
		if err != nil {
			return nil, "", fmt.Errorf("marshal custom days: %w", err)
		}
		s := string(data)
		customDays = &s
	}
	data, err := json.Marshal(q.StatRewards)
	if err != nil {
		return nil, "", fmt.Errorf("marshal stat rewards: %w", err)
	}
	return customDays, string(data), nil
}

func scanQuest(row scanner) (*Quest, error) {
	var (
		q           Quest
		essential   int
		customDays  sql.NullString
		statRewards string
		createdAt   time.Time
	)
	if err := row.Scan(&q.ID, &q.Username, &q.Name, &q.Icon, &q.Category, &q.XPBase, &q.Target, &essential, &q.Frequency, &customDays, &statRewards, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("quest scan: %w", err)
	}
	q.Essential = essential != 0
	q.CreatedAt = createdAt
	if customDays.Valid && customDays.String != "" {
		if err := json.Unmarshal([]byte(customDays.String), &q.CustomDays); err != nil {
			return nil, fmt.Errorf("unmarshal custom days: %w", err)
		}
	}
	if err := json.Unmarshal([]byte(statRewards), &q.StatRewards); err != nil {
		return nil, fmt.Errorf("unmarshal stat rewards: %w", err)
	}
	return &q, nil
}

type scanner interface {
	Scan(dest ...any) error
}
