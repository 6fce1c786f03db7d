package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Client fetches feed documents from an HTTP URL or a local file path
// and caches the last good snapshot. A reload swaps the snapshot in
// one step; readers never observe a partially loaded document.
type Client struct {
	source     string
	httpClient *http.Client
	logger     *slog.Logger

	mu      sync.RWMutex
	current *Document
}

func NewClient(source string, logger *slog.Logger) *Client {
	return &Client{
		source:     source,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// Current returns the last good snapshot, if any load has succeeded.
func (c *Client) Current() (*Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current, c.current != nil
}

// Load fetches and parses the feed, replacing the cached snapshot on
// success. On failure the previous snapshot keeps serving.
func (c *Client) Load(ctx context.Context) (*Document, error) {
	doc, err := c.fetch(ctx, c.source)
	if err != nil {
		c.logger.Warn("feed load failed", slog.String("source", c.source), slog.Any("error", err))
		return nil, err
	}

	c.mu.Lock()
	c.current = doc
	c.mu.Unlock()

	c.logger.Info("feed loaded",
		slog.Int("anno", doc.Year),
		slog.Int("giornate", len(doc.Days)),
		slog.Int("licenze", len(doc.Leaves)),
	)
	return doc, nil
}

// LoadArchive fetches a prior year's document (archivio_<year>.json
// next to the main feed). Archives are not cached as the current
// snapshot.
func (c *Client) LoadArchive(ctx context.Context, year int) (*Document, error) {
	return c.fetch(ctx, c.archiveSource(year))
}

func (c *Client) archiveSource(year int) string {
	name := fmt.Sprintf("archivio_%d.json", year)
	if isHTTP(c.source) {
		u, err := url.Parse(c.source)
		if err != nil {
			return name
		}
		u.Path = path.Join(path.Dir(u.Path), name)
		return u.String()
	}
	return filepath.Join(filepath.Dir(c.source), name)
}

func (c *Client) fetch(ctx context.Context, source string) (*Document, error) {
	var raw []byte
	var err error
	if isHTTP(source) {
		raw, err = c.fetchHTTP(ctx, source)
	} else {
		raw, err = os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

func (c *Client) fetchHTTP(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return raw, nil
}

func isHTTP(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
