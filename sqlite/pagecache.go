package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/alaskavn"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ alaskavn.PageCache = (*PageCache)(nil)

// PageCache implements alaskavn.PageCache using SQLite. Pages are keyed
// by URL; putting a page for an already-cached URL replaces it.
type PageCache struct {
	db *DB
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// Get retrieves a cached page by URL.
func (c *PageCache) Get(ctx context.Context, url string) (*alaskavn.CachedPage, error) {
	var page alaskavn.CachedPage
	var fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT id, url, html, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.ID, &page.URL, &page.HTML, &page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, alaskavn.Errorf(alaskavn.ENOTFOUND, "page not cached: %s", url)
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &page, nil
}

// Put stores a page, replacing any existing entry for the same URL.
// The page's ID, ContentHash and FetchedAt are assigned here.
func (c *PageCache) Put(ctx context.Context, page *alaskavn.CachedPage) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.ContentHash = hashContent(page.HTML)
	page.FetchedAt = time.Now().UTC()

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			id = excluded.id,
			html = excluded.html,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, page.ID, page.URL, page.HTML, page.ContentHash, page.FetchedAt.Format(time.RFC3339))

	return err
}

// Close closes the underlying database.
func (c *PageCache) Close() error {
	return c.db.Close()
}
