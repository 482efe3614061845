package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			level INTEGER DEFAULT 1,
			xp INTEGER DEFAULT 0,
			total_xp_earned INTEGER DEFAULT 0,

			stat_strength INTEGER DEFAULT 0,
			stat_discipline INTEGER DEFAULT 0,
			stat_focus INTEGER DEFAULT 0,
			stat_vitality INTEGER DEFAULT 0,
			stat_wisdom INTEGER DEFAULT 0,

			selected_class TEXT,
			low_energy_mode INTEGER DEFAULT 0,
			low_energy_count INTEGER DEFAULT 0,
			vision TEXT DEFAULT '',
			anti_vision TEXT DEFAULT '',
			quests_created INTEGER DEFAULT 0,

			last_login TEXT,
			login_streak INTEGER DEFAULT 0,
			total_logins INTEGER DEFAULT 0,

			last_perfect_day TEXT,
			last_weekly_review TEXT,

			timer_study INTEGER DEFAULT 0,
			timer_exercise INTEGER DEFAULT 0,
			timer_meditation INTEGER DEFAULT 0,
			timer_speaking INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS quests (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			name TEXT NOT NULL,
			icon TEXT DEFAULT '',
			category TEXT DEFAULT 'custom',
			xp_base INTEGER NOT NULL,
			target INTEGER NOT NULL,
			essential INTEGER DEFAULT 0,
			frequency TEXT NOT NULL,
			custom_days TEXT,
			stat_rewards TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,

			FOREIGN KEY(username) REFERENCES users(username)
		);`,
		// One row per (quest, local calendar day). The unique index is what
		// makes completion idempotent at the storage level.
		`CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			quest_id TEXT NOT NULL,
			day TEXT NOT NULL,
			xp_awarded INTEGER NOT NULL,
			completed_at DATETIME DEFAULT CURRENT_TIMESTAMP,

			UNIQUE(username, quest_id, day)
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			username TEXT NOT NULL,
			id TEXT NOT NULL,
			condition TEXT NOT NULL,
			unlocked INTEGER DEFAULT 0,
			unlocked_at DATETIME,

			PRIMARY KEY(username, id)
		);`,
		`CREATE TABLE IF NOT EXISTS journal_entries (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			entry_date DATETIME NOT NULL,
			mood TEXT NOT NULL,
			wins TEXT DEFAULT '',
			challenges TEXT DEFAULT '',
			tomorrow TEXT DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS weekly_reviews (
			username TEXT NOT NULL,
			day TEXT NOT NULL,
			win TEXT DEFAULT '',
			focus TEXT DEFAULT '',

			PRIMARY KEY(username, day)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quests_username ON quests(username);`,
		`CREATE INDEX IF NOT EXISTS idx_completions_username_day ON completions(username, day);`,
		`CREATE INDEX IF NOT EXISTS idx_completions_quest_day ON completions(username, quest_id, day);`,
		`CREATE INDEX IF NOT EXISTS idx_journal_username_date ON journal_entries(username, entry_date);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
