package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestValidation(t *testing.T) {
	s := newTestService(t, day(2026, time.March, 18))
	ctx := context.Background()

	cases := []struct {
		name string
		in   QuestInput
	}{
		{"empty name", QuestInput{XPBase: 10, Frequency: FrequencyDaily}},
		{"zero xp", QuestInput{Name: "x", Frequency: FrequencyDaily}},
		{"bad frequency", QuestInput{Name: "x", XPBase: 10, Frequency: "hourly"}},
		{"custom without days", QuestInput{Name: "x", XPBase: 10, Frequency: FrequencyCustom}},
		{"bad weekday", QuestInput{Name: "x", XPBase: 10, Frequency: FrequencyCustom, CustomDays: []int{7}}},
		{"bad stat", QuestInput{Name: "x", XPBase: 10, Frequency: FrequencyDaily, StatRewards: map[string]int{"luck": 1}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := s.CreateQuest(ctx, c.in)
			assert.Error(t, err)
		})
	}
}

func TestCreateQuestDefaultsAndCounter(t *testing.T) {
	s := newTestService(t, day(2026, time.March, 18))
	ctx := context.Background()

	q, unlocked, err := s.CreateQuest(ctx, QuestInput{
		Name:      "Read 20 pages",
		XPBase:    10,
		Frequency: FrequencyDaily,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	// With no stat rewards given, the quest falls back to +1 of the
	// default stat.
	assert.Equal(t, map[string]int{string(DefaultStat): 1}, q.StatRewards)

	found := false
	for _, a := range unlocked {
		if a.Condition == "custom_quest" {
			found = true
		}
	}
	assert.True(t, found, "custom_quest should unlock on first creation")

	u, err := s.loadUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, u.QuestsCreated)
}

func TestUpdateQuest(t *testing.T) {
	s := newTestService(t, day(2026, time.March, 18))
	ctx := context.Background()

	q, _, err := s.CreateQuest(ctx, QuestInput{Name: "Run", XPBase: 10, Frequency: FrequencyDaily})
	require.NoError(t, err)

	updated, err := s.UpdateQuest(ctx, q.ID, QuestInput{
		Name:       "Run 5k",
		XPBase:     20,
		Frequency:  FrequencyCustom,
		CustomDays: []int{2, 4},
		Essential:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Run 5k", updated.Name)
	assert.Equal(t, 20, updated.XPBase)
	assert.Equal(t, []int{2, 4}, updated.CustomDays)
	assert.True(t, updated.Essential)

	_, err = s.UpdateQuest(ctx, "missing", QuestInput{Name: "x", XPBase: 1, Frequency: FrequencyDaily})
	assert.ErrorIs(t, err, ErrQuestNotFound)
}

func TestDeleteQuestKeepsHistory(t *testing.T) {
	s := newTestService(t, day(2026, time.March, 18))
	ctx := context.Background()

	q, _, err := s.CreateQuest(ctx, QuestInput{Name: "Run", XPBase: 10, Frequency: FrequencyDaily})
	require.NoError(t, err)
	_, err = s.CompleteQuest(ctx, q.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteQuest(ctx, q.ID))
	assert.ErrorIs(t, s.DeleteQuest(ctx, q.ID), ErrQuestNotFound)

	// The completion record outlives the quest.
	st, err := s.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.TotalCompletions)
	assert.Equal(t, 1, st.CurrentStreak)
}

func TestListQuestsProjectedXP(t *testing.T) {
	s := newTestService(t, day(2026, time.March, 18))
	ctx := context.Background()

	views, err := s.ListQuests(ctx)
	require.NoError(t, err)
	// Fresh account: first-of-day and comeback both apply to every
	// projection.
	for _, v := range views {
		want := ComputeQuestXP(v.Quest, true, 0, true).Total
		assert.Equal(t, want, v.ProjectedXP, v.Name)
		assert.True(t, v.Scheduled)
		assert.False(t, v.Satisfied)
	}
}
