package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `username, level, xp, total_xp_earned,
	stat_strength, stat_discipline, stat_focus, stat_vitality, stat_wisdom,
	selected_class, low_energy_mode, low_energy_count, vision, anti_vision, quests_created,
	last_login, login_streak, total_logins,
	last_perfect_day, last_weekly_review,
	timer_study, timer_exercise, timer_meditation, timer_speaking`

func (r *UserRepo) Get(ctx context.Context, username string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *UserRepo) GetOrCreate(ctx context.Context, username string) (*User, error) {
	u, err := r.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO users (username) VALUES (?)`, username); err != nil {
		return nil, fmt.Errorf("user insert: %w", err)
	}
	return r.Get(ctx, username)
}

func (r *UserRepo) Update(ctx context.Context, u *User) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET level = ?, xp = ?, total_xp_earned = ?,
			stat_strength = ?, stat_discipline = ?, stat_focus = ?, stat_vitality = ?, stat_wisdom = ?,
			selected_class = ?, low_energy_mode = ?, low_energy_count = ?, vision = ?, anti_vision = ?, quests_created = ?,
			last_login = ?, login_streak = ?, total_logins = ?,
			last_perfect_day = ?, last_weekly_review = ?,
			timer_study = ?, timer_exercise = ?, timer_meditation = ?, timer_speaking = ?
		WHERE username = ?
	`,
		u.Level, u.XP, u.TotalXPEarned,
		u.StatStrength, u.StatDiscipline, u.StatFocus, u.StatVitality, u.StatWisdom,
		u.SelectedClass, boolToInt(u.LowEnergyMode), u.LowEnergyCount, u.Vision, u.AntiVision, u.QuestsCreated,
		u.LastLogin, u.LoginStreak, u.TotalLogins,
		u.LastPerfectDay, u.LastWeeklyReview,
		u.TimerStudy, u.TimerExercise, u.TimerMeditation, u.TimerSpeaking,
		u.Username)
	if err != nil {
		return fmt.Errorf("user update: %w", err)
	}
	return nil
}

func scanUser(row *sql.Row) (*User, error) {
	var (
		u             User
		selectedClass sql.NullString
		lowEnergy     int
		lastLogin     sql.NullString
		lastPerfect   sql.NullString
		lastReview    sql.NullString
	)
	if err := row.Scan(
		&u.Username, &u.Level, &u.XP, &u.TotalXPEarned,
		&u.StatStrength, &u.StatDiscipline, &u.StatFocus, &u.StatVitality, &u.StatWisdom,
		&selectedClass, &lowEnergy, &u.LowEnergyCount, &u.Vision, &u.AntiVision, &u.QuestsCreated,
		&lastLogin, &u.LoginStreak, &u.TotalLogins,
		&lastPerfect, &lastReview,
		&u.TimerStudy, &u.TimerExercise, &u.TimerMeditation, &u.TimerSpeaking,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("user scan: %w", err)
	}

	u.LowEnergyMode = lowEnergy != 0
	if selectedClass.Valid && selectedClass.String != "" {
		v := selectedClass.String
		u.SelectedClass = &v
	}
	if lastLogin.Valid {
		v := lastLogin.String
		u.LastLogin = &v
	}
	if lastPerfect.Valid {
		v := lastPerfect.String
		u.LastPerfectDay = &v
	}
	if lastReview.Valid {
		v := lastReview.String
		u.LastWeeklyReview = &v
	}
	return &u, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
