package mirror

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itskrishnabajaj/LevelUp/internal/snapshot"
)

func TestPushAndPull(t *testing.T) {
	store := make(map[string][]byte)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			store[r.URL.Path] = body
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			data, ok := store[r.URL.Path]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write(data)
		}
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, nil)
	require.NoError(t, err)
	ctx := context.Background()

	// Nothing mirrored yet.
	got, err := c.Pull(ctx, "tester")
	require.NoError(t, err)
	assert.Nil(t, got)

	s := &snapshot.Snapshot{Username: "tester", Level: 4, TotalXPEarned: 700}
	require.NoError(t, c.Push(ctx, s))

	got, err = c.Pull(ctx, "tester")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4, got.Level)
	assert.Equal(t, 700, got.TotalXPEarned)
}

func TestPushRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, nil)
	require.NoError(t, err)
	assert.Error(t, c.Push(context.Background(), &snapshot.Snapshot{Username: "tester"}))
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := New("not-a-url", nil)
	assert.Error(t, err)
}
