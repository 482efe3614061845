package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestQuestRepoRoundtrip(t *testing.T) {
	ctx := context.Background()
	repo := NewQuestRepo(openTestDB(t))

	q := &Quest{
		ID:          "q-custom",
		Username:    "tester",
		Name:        "Evening Walk",
		Icon:        "🚶",
		Category:    "health",
		XPBase:      12,
		Target:      1,
		Essential:   true,
		Frequency:   "custom",
		CustomDays:  []int{1, 3, 5},
		StatRewards: map[string]int{"vitality": 2, "discipline": 1},
	}
	require.NoError(t, repo.Insert(ctx, q))

	got, err := repo.Get(ctx, "tester", "q-custom")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, q.Name, got.Name)
	assert.True(t, got.Essential)
	assert.Equal(t, []int{1, 3, 5}, got.CustomDays)
	assert.Equal(t, map[string]int{"vitality": 2, "discipline": 1}, got.StatRewards)

	got.Name = "Morning Walk"
	got.CustomDays = nil
	got.Frequency = "daily"
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.Get(ctx, "tester", "q-custom")
	require.NoError(t, err)
	assert.Equal(t, "Morning Walk", again.Name)
	assert.Empty(t, again.CustomDays)
	assert.Equal(t, "daily", again.Frequency)
}

func TestQuestRepoGetMissing(t *testing.T) {
	repo := NewQuestRepo(openTestDB(t))
	got, err := repo.Get(context.Background(), "tester", "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompletionRepoIdempotentInsert(t *testing.T) {
	ctx := context.Background()
	repo := NewCompletionRepo(openTestDB(t))
	now := time.Now()

	inserted, err := repo.Insert(ctx, "tester", "q1", "2026-08-31", 15, now)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Insert(ctx, "tester", "q1", "2026-08-31", 15, now)
	require.NoError(t, err)
	assert.False(t, inserted, "same quest and day must not insert twice")

	inserted, err = repo.Insert(ctx, "tester", "q1", "2026-09-01", 15, now)
	require.NoError(t, err)
	assert.True(t, inserted)

	count, err := repo.CountAll(ctx, "tester")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCompletionRepoPruneBefore(t *testing.T) {
	ctx := context.Background()
	repo := NewCompletionRepo(openTestDB(t))
	now := time.Now()

	days := []string{"2026-05-01", "2026-06-01", "2026-07-01", "2026-08-01"}
	for _, day := range days {
		_, err := repo.Insert(ctx, "tester", "q1", day, 10, now)
		require.NoError(t, err)
	}

	pruned, err := repo.PruneBefore(ctx, "tester", "2026-07-01")
	require.NoError(t, err)
	assert.Equal(t, int64(2), pruned)

	rest, err := repo.ListAll(ctx, "tester")
	require.NoError(t, err)
	require.Len(t, rest, 2)
	for _, c := range rest {
		assert.GreaterOrEqual(t, c.Day, "2026-07-01")
	}
}

func TestJournalRepoKeepsNewestEntries(t *testing.T) {
	ctx := context.Background()
	repo := NewJournalRepo(openTestDB(t))

	base := time.Date(2026, 8, 1, 20, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		e := &JournalEntry{
			ID:       fmt.Sprintf("e%d", i),
			Username: "tester",
			Date:     base.AddDate(0, 0, i),
			Mood:     "good",
			Wins:     fmt.Sprintf("win %d", i),
		}
		require.NoError(t, repo.Insert(ctx, e, 3))
	}

	entries, err := repo.List(ctx, "tester")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Newest first, oldest two trimmed.
	assert.Equal(t, "e4", entries[0].ID)
	assert.Equal(t, "e2", entries[2].ID)
}
