package quran

import (
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	apperrors "github.com/febbyRG/juz-amma/pkg/errors"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS responses (
	url        TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	fetched_at TEXT NOT NULL
);`

// Cache is a local store of raw API response bodies keyed by request URL.
// It lets a rerun assemble the corpus without touching the network, which
// matters when iterating on the output format.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (creating if needed) the cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeCacheError, "opening cache database")
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, apperrors.Wrap(err, apperrors.ErrCodeCacheError, "creating cache schema")
	}
	return &Cache{db: db}, nil
}

// Get returns the cached body for url, with hit=false on a miss.
func (c *Cache) Get(url string) ([]byte, bool, error) {
	var body []byte
	err := c.db.QueryRow(`SELECT body FROM responses WHERE url = ?`, url).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.ErrCodeCacheError, "reading cached response")
	}
	return body, true, nil
}

// Put stores body for url, replacing any earlier entry.
func (c *Cache) Put(url string, body []byte) error {
	_, err := c.db.Exec(
		`INSERT INTO responses (url, body, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		url, body, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeCacheError, "storing cached response")
	}
	return nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}
