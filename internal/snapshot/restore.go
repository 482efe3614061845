package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

// Restore replaces a player's entire stored state with the snapshot,
// atomically. Unknown achievement ids ride along untouched so newer
// exports survive older binaries.
func Restore(ctx context.Context, db *sql.DB, username string, s *Snapshot) error {
	return storage.WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range []string{
			`DELETE FROM completions WHERE username = ?`,
			`DELETE FROM quests WHERE username = ?`,
			`DELETE FROM achievements WHERE username = ?`,
			`DELETE FROM journal_entries WHERE username = ?`,
			`DELETE FROM weekly_reviews WHERE username = ?`,
			`DELETE FROM users WHERE username = ?`,
		} {
			if _, err := tx.ExecContext(ctx, stmt, username); err != nil {
				return fmt.Errorf("clear previous state: %w", err)
			}
		}

		if err := restoreUser(ctx, tx, username, s); err != nil {
			return err
		}
		if err := restoreQuests(ctx, tx, username, s); err != nil {
			return err
		}
		if err := restoreCompletions(ctx, tx, username, s); err != nil {
			return err
		}
		if err := restoreAchievements(ctx, tx, username, s); err != nil {
			return err
		}
		if err := restoreJournal(ctx, tx, username, s); err != nil {
			return err
		}
		return restoreReviews(ctx, tx, username, s)
	})
}

func restoreUser(ctx context.Context, tx *sql.Tx, username string, s *Snapshot) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO users (
			username, level, xp, total_xp_earned,
			stat_strength, stat_discipline, stat_focus, stat_vitality, stat_wisdom,
			selected_class, low_energy_mode, low_energy_count,
			vision, anti_vision, quests_created,
			last_login, login_streak, total_logins,
			timer_study, timer_exercise, timer_meditation, timer_speaking
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		username, max(1, s.Level), s.XP, s.TotalXPEarned,
		s.Stats["strength"], s.Stats["discipline"], s.Stats["focus"], s.Stats["vitality"], s.Stats["wisdom"],
		s.SelectedClass, boolToInt(s.LowEnergyMode), s.LowEnergyCnt,
		s.Vision, s.AntiVision, s.QuestsCreated,
		s.LoginData.LastLogin, s.LoginData.LoginStreak, s.LoginData.TotalLogins,
		s.TimerStats["study"], s.TimerStats["exercise"], s.TimerStats["meditation"], s.TimerStats["speaking"],
	)
	if err != nil {
		return fmt.Errorf("restore user: %w", err)
	}
	return nil
}

func restoreQuests(ctx context.Context, tx *sql.Tx, username string, s *Snapshot) error {
	for _, q := range s.Quests {
		customDays, statRewards, err := encodeQuestFields(q)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO quests (id, username, name, icon, category, xp_base, target, essential, frequency, custom_days, stat_rewards)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			q.ID, username, q.Name, q.Icon, q.Category, q.XP, q.Target,
			boolToInt(q.Essential), q.Frequency, customDays, statRewards,
		); err != nil {
			return fmt.Errorf("restore quest %s: %w", q.ID, err)
		}
	}
	return nil
}

func restoreCompletions(ctx context.Context, tx *sql.Tx, username string, s *Snapshot) error {
	for key, marked := range s.Completions {
		if !marked {
			continue
		}
		questID, day, err := ParseCompletionKey(key)
		if err != nil {
			return err
		}
		completedAt, _ := time.ParseInLocation(dayLayout, day, time.Local)
		if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO completions (username, quest_id, day, xp_awarded, completed_at)
			VALUES (?, ?, ?, 0, ?)`,
			username, questID, day, completedAt,
		); err != nil {
			return fmt.Errorf("restore completion %s: %w", key, err)
		}
	}
	return nil
}

func restoreAchievements(ctx context.Context, tx *sql.Tx, username string, s *Snapshot) error {
	for _, a := range s.Achievements {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO achievements (username, id, condition, unlocked, unlocked_at)
			VALUES (?, ?, ?, ?, ?)`,
			username, a.ID, a.Condition, boolToInt(a.Unlocked), a.UnlockedAt,
		); err != nil {
			return fmt.Errorf("restore achievement %s: %w", a.ID, err)
		}
	}
	return nil
}

func restoreJournal(ctx context.Context, tx *sql.Tx, username string, s *Snapshot) error {
	for _, e := range s.Journal {
		id := e.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO journal_entries (id, username, entry_date, mood, wins, challenges, tomorrow)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, username, e.Date, e.Mood, e.Wins, e.Challenges, e.Tomorrow,
		); err != nil {
			return fmt.Errorf("restore journal entry: %w", err)
		}
	}
	return nil
}

func restoreReviews(ctx context.Context, tx *sql.Tx, username string, s *Snapshot) error {
	for _, r := range s.WeeklyReviews {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO weekly_reviews (username, day, win, focus)
			VALUES (?, ?, ?, ?)`,
			username, r.Date, r.Win, r.Focus,
		); err != nil {
			return fmt.Errorf("restore weekly review: %w", err)
		}
	}
	return nil
}

func encodeQuestFields(q Quest) (customDays *string, statRewards string, err error) {
	if len(q.CustomDays) > 0 {
		data, err := json.Marshal(q.CustomDays)
		if err != nil {
			return nil, "", fmt.Errorf("encode custom days: %w", err)
		}
		s := string(data)
		customDays = &s
	}
	rewards := q.StatRewards
	if len(rewards) == 0 {
		rewards = map[string]int{"strength": 1}
	}
	data, err := json.Marshal(rewards)
	if err != nil {
		return nil, "", fmt.Errorf("encode stat rewards: %w", err)
	}
	return customDays, string(data), nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
