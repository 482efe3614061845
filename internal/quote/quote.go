// Package quote fetches the daily motivational quote, falling back to
// a locally generated line when the network is unavailable.
package quote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// DefaultURL serves quotes in the zenquotes response shape.
const DefaultURL = "https://zenquotes.io/api/today"

const fetchTimeout = 5 * time.Second

type Quote struct {
	Text   string
	Author string
	// Fallback marks a locally generated quote.
	Fallback bool
}

type Fetcher struct {
	url  string
	http *http.Client
	log  *zap.Logger
}

func NewFetcher(url string, log *zap.Logger) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		url:  url,
		http: &http.Client{Timeout: fetchTimeout},
		log:  log,
	}
}

// Fetch returns today's quote. Network or decoding failure is never
// an error; the caller always gets something to print.
func (f *Fetcher) Fetch(ctx context.Context, vision string) Quote {
	q, err := f.fetchRemote(ctx)
	if err != nil {
		f.log.Debug("quote fetch failed, using fallback", zap.Error(err))
		return fallback(vision)
	}
	return q
}

func (f *Fetcher) fetchRemote(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return Quote{}, err
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return Quote{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Quote{}, err
	}

	var payload []struct {
		Q string `json:"q"`
		A string `json:"a"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Quote{}, err
	}
	if len(payload) == 0 || strings.TrimSpace(payload[0].Q) == "" {
		return Quote{}, fmt.Errorf("empty quote payload")
	}
	return Quote{Text: payload[0].Q, Author: payload[0].A}, nil
}

// fallback builds a local line, anchored to the player's vision when
// one is set.
func fallback(vision string) Quote {
	if v := strings.TrimSpace(vision); v != "" {
		return Quote{
			Text:     fmt.Sprintf("Every quest today is a step toward: %s", v),
			Author:   "you",
			Fallback: true,
		}
	}
	return Quote{
		Text:     "Show up today. The streak takes care of itself.",
		Author:   "LevelUp",
		Fallback: true,
	}
}
