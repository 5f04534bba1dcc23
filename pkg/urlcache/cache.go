// Package urlcache caches URL check results in memory and on disk so
// repeated verification runs skip the network for recently confirmed
// URLs.
package urlcache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "modernc.org/sqlite"

	"github.com/adiepenbrock/latex-scripts/pkg/urlcheck"
)

const memorySize = 256

const schema = `
CREATE TABLE IF NOT EXISTS url_results (
	url        TEXT PRIMARY KEY,
	status     INTEGER NOT NULL,
	checked_at INTEGER NOT NULL
)`

// CachingChecker wraps another checker with a per-run memory cache and
// an optional persistent store. Only successful checks are persisted;
// failures are retried on the next run.
type CachingChecker struct {
	next urlcheck.Checker
	mem  *lru.Cache[string, urlcheck.Result]
	db   *sql.DB
	ttl  time.Duration
	now  func() time.Time
}

// New creates a new CachingChecker instance. path locates the sqlite
// database; an empty path keeps the cache memory-only.
func New(next urlcheck.Checker, path string, ttl time.Duration) (*CachingChecker, error) {
	mem, err := lru.New[string, urlcheck.Result](memorySize)
	if err != nil {
		return nil, err
	}

	c := &CachingChecker{
		next: next,
		mem:  mem,
		ttl:  ttl,
		now:  time.Now,
	}
	if path == "" {
		return c, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	c.db = db
	return c, nil
}

// Check returns a cached result when one is fresh, otherwise asks the
// wrapped checker and stores the outcome.
func (c *CachingChecker) Check(ctx context.Context, url string) urlcheck.Result {
	if res, ok := c.mem.Get(url); ok {
		return res
	}
	if res, ok := c.lookup(ctx, url); ok {
		c.mem.Add(url, res)
		return res
	}

	res := c.next.Check(ctx, url)
	c.mem.Add(url, res)
	if res.Available {
		c.store(ctx, res)
	}
	return res
}

// Close releases the persistent store.
func (c *CachingChecker) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *CachingChecker) lookup(ctx context.Context, url string) (urlcheck.Result, bool) {
	if c.db == nil {
		return urlcheck.Result{}, false
	}

	var status, checkedAt int64
	err := c.db.QueryRowContext(ctx,
		"SELECT status, checked_at FROM url_results WHERE url = ?", url,
	).Scan(&status, &checkedAt)
	if err != nil {
		return urlcheck.Result{}, false
	}
	if c.now().Sub(time.Unix(checkedAt, 0)) > c.ttl {
		return urlcheck.Result{}, false
	}

	return urlcheck.Result{URL: url, Available: true, StatusCode: int(status)}, true
}

func (c *CachingChecker) store(ctx context.Context, res urlcheck.Result) {
	if c.db == nil {
		return
	}

	// A failed cache write never fails the check itself.
	_, _ = c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO url_results (url, status, checked_at) VALUES (?, ?, ?)",
		res.URL, res.StatusCode, c.now().Unix(),
	)
}
