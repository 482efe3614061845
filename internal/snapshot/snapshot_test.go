package snapshot

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itskrishnabajaj/LevelUp/internal/engine"
	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

func TestParseCompletionKey(t *testing.T) {
	// Quest ids can contain dashes (uuids do), so the date must come
	// off the fixed-width tail.
	id := "3f1c7a9e-1111-2222-3333-444455556666"
	questID, day, err := ParseCompletionKey(CompletionKey(id, "2026-03-18"))
	require.NoError(t, err)
	assert.Equal(t, id, questID)
	assert.Equal(t, "2026-03-18", day)

	_, _, err = ParseCompletionKey("q1")
	assert.Error(t, err)
	_, _, err = ParseCompletionKey("q1-not-a-date!")
	assert.Error(t, err)
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	s := &Snapshot{
		Username:    "tester",
		Level:       3,
		XP:          50,
		Stats:       map[string]int{"strength": 10},
		Completions: map[string]bool{"q1-2026-03-18": true},
	}
	data, err := Encode(s)
	require.NoError(t, err)
	back, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, s.Level, back.Level)
	assert.Equal(t, s.Completions, back.Completions)
}

func TestDecodeCorrupt(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestBuildRestoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2026, time.March, 18, 12, 0, 0, 0, time.Local)
	svc := engine.NewService(db, "tester", zap.NewNop()).WithClock(func() time.Time { return now })

	views, err := svc.ListQuests(ctx)
	require.NoError(t, err)
	_, err = svc.CompleteQuest(ctx, views[0].ID)
	require.NoError(t, err)
	_, err = svc.AddJournalEntry(ctx, engine.JournalInput{Mood: engine.MoodGood, Wins: "did the thing"})
	require.NoError(t, err)

	snap, err := Build(ctx, NewRepos(db), "tester", now)
	require.NoError(t, err)
	assert.NotZero(t, snap.TotalXPEarned)
	assert.Len(t, snap.Completions, 1)
	assert.Len(t, snap.Quests, len(engine.DefaultQuests()))
	assert.Len(t, snap.Journal, 1)

	// Restore into a second database and compare what comes back.
	db2, err := storage.Open(ctx, filepath.Join(t.TempDir(), "other.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db2.Close() })

	require.NoError(t, Restore(ctx, db2, "tester", snap))

	snap2, err := Build(ctx, NewRepos(db2), "tester", now)
	require.NoError(t, err)
	assert.Equal(t, snap.Level, snap2.Level)
	assert.Equal(t, snap.TotalXPEarned, snap2.TotalXPEarned)
	assert.Equal(t, snap.Completions, snap2.Completions)
	assert.Equal(t, snap.Stats, snap2.Stats)
	assert.Len(t, snap2.Quests, len(snap.Quests))
	assert.Len(t, snap2.Journal, len(snap.Journal))
}

func TestRestoreReplacesExistingState(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2026, time.March, 18, 12, 0, 0, 0, time.Local)
	svc := engine.NewService(db, "tester", zap.NewNop()).WithClock(func() time.Time { return now })
	views, err := svc.ListQuests(ctx)
	require.NoError(t, err)
	_, err = svc.CompleteQuest(ctx, views[0].ID)
	require.NoError(t, err)

	incoming := &Snapshot{
		Username:      "tester",
		Level:         5,
		XP:            20,
		TotalXPEarned: 1200,
		Stats:         map[string]int{"strength": 40},
		Quests:        []Quest{{ID: "qx", Name: "Imported", XP: 10, Frequency: "daily"}},
		Completions:   map[string]bool{"qx-2026-03-01": true, "qx-2026-03-02": true},
	}
	require.NoError(t, Restore(ctx, db, "tester", incoming))

	snap, err := Build(ctx, NewRepos(db), "tester", now)
	require.NoError(t, err)
	assert.Equal(t, 5, snap.Level)
	assert.Equal(t, 1200, snap.TotalXPEarned)
	assert.Len(t, snap.Quests, 1)
	assert.Len(t, snap.Completions, 2)
}
