package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

// Activity is a timed focus activity with its reward schedule. XP and
// a stat tick are granted per full interval of elapsed time.
type Activity struct {
	ID              string
	Name            string
	Icon            string
	XPPerMinute     float64
	IntervalSeconds int
	Stat            Stat
}

// Activities returns the timed activity catalog.
func Activities() []Activity {
	return []Activity{
		{ID: "study", Name: "MBA Study", Icon: "📚", XPPerMinute: 2.5, IntervalSeconds: 120, Stat: StatWisdom},
		{ID: "exercise", Name: "Exercise", Icon: "💪", XPPerMinute: 3, IntervalSeconds: 60, Stat: StatStrength},
		{ID: "meditation", Name: "Meditation", Icon: "🧘", XPPerMinute: 3, IntervalSeconds: 60, Stat: StatFocus},
		{ID: "speaking", Name: "Speech Practice", Icon: "🗣️", XPPerMinute: 3, IntervalSeconds: 60, Stat: StatDiscipline},
	}
}

// ActivityByID looks up an activity definition.
func ActivityByID(id string) (Activity, bool) {
	for _, a := range Activities() {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// xpPerInterval prices one full interval, floored.
func (a Activity) xpPerInterval() int {
	return int(a.XPPerMinute * float64(a.IntervalSeconds) / 60)
}

// ActivityResult reports a logged timer session.
type ActivityResult struct {
	Activity  Activity
	Seconds   int
	Intervals int
	XP        int
	StatGain  int
	Level     int
	Unlocked  []Achievement
}

// LogActivity credits a timed session: XP and a stat tick for every
// completed interval, with partial intervals banked only as elapsed
// seconds toward the timer achievements.
func (s *Service) LogActivity(ctx context.Context, activityID string, seconds int) (*ActivityResult, error) {
	u, err := s.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	act, ok := ActivityByID(activityID)
	if !ok {
		return nil, fmt.Errorf("unknown activity: %q", activityID)
	}
	if seconds <= 0 {
		return nil, fmt.Errorf("session length must be positive")
	}

	addTimerSeconds(u, act.ID, seconds)

	intervals := seconds / act.IntervalSeconds
	xp := intervals * act.xpPerInterval()
	statGain := 0
	if intervals > 0 {
		perTick := int(1 * classMultiplier(u.SelectedClass, act.Stat))
		statGain = intervals * perTick
		addStat(u, act.Stat, statGain)
		GrantXP(u, xp)
		Settle(u)
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	log, err := s.loadLog(ctx)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.unlockAchievements(ctx, u, log)
	if err != nil {
		return nil, err
	}
	s.log.Info("activity logged",
		zap.String("activity", act.ID),
		zap.Int("seconds", seconds),
		zap.Int("xp", xp))
	return &ActivityResult{
		Activity:  act,
		Seconds:   seconds,
		Intervals: intervals,
		XP:        xp,
		StatGain:  statGain,
		Level:     u.Level,
		Unlocked:  unlocked,
	}, nil
}

func addTimerSeconds(u *storage.User, activityID string, seconds int) {
	switch activityID {
	case "study":
		u.TimerStudy += seconds
	case "exercise":
		u.TimerExercise += seconds
	case "meditation":
		u.TimerMeditation += seconds
	case "speaking":
		u.TimerSpeaking += seconds
	}
}
