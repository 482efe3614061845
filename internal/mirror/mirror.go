// Package mirror pushes and pulls snapshot JSON to an optional remote
// endpoint. Every operation is best effort: the local database is the
// source of truth and a dead mirror never blocks anything.
package mirror

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/itskrishnabajaj/LevelUp/internal/snapshot"
)

const requestTimeout = 10 * time.Second

// maxBodySize bounds what a pull will read from the remote.
const maxBodySize = 8 << 20

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New builds a mirror client. baseURL must be absolute; the player's
// record lives at <baseURL>/<username>.json.
func New(baseURL string, log *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("invalid mirror url: %q", baseURL)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}, nil
}

func (c *Client) recordURL(username string) string {
	return c.baseURL + "/" + url.PathEscape(username) + ".json"
}

// Push uploads a snapshot. Failures are logged and returned; callers
// treat them as warnings.
func (c *Client) Push(ctx context.Context, s *snapshot.Snapshot) error {
	data, err := snapshot.Encode(s)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.recordURL(s.Username), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("mirror push failed", zap.Error(err))
		return fmt.Errorf("push snapshot: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("mirror push rejected", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("push snapshot: unexpected status %d", resp.StatusCode)
	}
	c.log.Info("snapshot mirrored", zap.String("username", s.Username), zap.Int("bytes", len(data)))
	return nil
}

// Pull downloads the remote snapshot for a player. A 404 means the
// player has never pushed; that is reported as a nil snapshot, not an
// error.
func (c *Client) Pull(ctx context.Context, username string) (*snapshot.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.recordURL(username), nil)
	if err != nil {
		return nil, fmt.Errorf("build pull request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("mirror pull failed", zap.Error(err))
		return nil, fmt.Errorf("pull snapshot: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pull snapshot: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read snapshot body: %w", err)
	}
	return snapshot.Decode(data)
}
