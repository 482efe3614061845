package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"q":"Fall seven times, stand up eight.","a":"Proverb"}]`))
	}))
	t.Cleanup(srv.Close)

	q := NewFetcher(srv.URL, nil).Fetch(context.Background(), "")
	assert.False(t, q.Fallback)
	assert.Equal(t, "Fall seven times, stand up eight.", q.Text)
	assert.Equal(t, "Proverb", q.Author)
}

func TestFetchFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	q := NewFetcher(srv.URL, nil).Fetch(context.Background(), "become a calm, strong person")
	assert.True(t, q.Fallback)
	assert.Contains(t, q.Text, "become a calm, strong person")
}

func TestFetchFallsBackOnBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"oops": true}`))
	}))
	t.Cleanup(srv.Close)

	q := NewFetcher(srv.URL, nil).Fetch(context.Background(), "")
	assert.True(t, q.Fallback)
	assert.NotEmpty(t, q.Text)
}
