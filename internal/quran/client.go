package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	apperrors "github.com/febbyRG/juz-amma/pkg/errors"
	"github.com/febbyRG/juz-amma/pkg/logger"
)

// quran.com caps verse payloads well below this; the limit only guards
// against a misbehaving endpoint.
const maxResponseBytes = 10 * 1024 * 1024

// Client calls the quran.com v4 API. All requests go through a shared
// limiter so the pipeline never exceeds one call per configured interval,
// and optionally through a local response cache keyed by URL.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	cache   *Cache
}

// NewClient builds a client for the given API base URL. delay is the
// minimum interval between outbound requests; zero disables pacing.
// cache may be nil.
func NewClient(baseURL string, timeout, delay time.Duration, cache *Cache) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(delay), 1),
		cache:   cache,
	}
}

// VerseData is one entry of the uthmani verse endpoint.
type VerseData struct {
	VerseKey    string `json:"verse_key"`
	TextUthmani string `json:"text_uthmani"`
}

// TranslationData is one entry of the per-translation endpoint. The list is
// positionally aligned with the Arabic verse list for the same surah.
type TranslationData struct {
	Text string `json:"text"`
}

// SurahVerses returns the ordered Arabic verse list for a surah.
func (c *Client) SurahVerses(ctx context.Context, surahNumber int) ([]VerseData, error) {
	url := fmt.Sprintf("%s/quran/verses/uthmani?chapter_number=%d", c.baseURL, surahNumber)

	var payload struct {
		Verses []VerseData `json:"verses"`
	}
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return payload.Verses, nil
}

// SurahTranslations returns the ordered translation list for a surah from
// one translation source.
func (c *Client) SurahTranslations(ctx context.Context, translationID, surahNumber int) ([]TranslationData, error) {
	url := fmt.Sprintf("%s/quran/translations/%d?chapter_number=%d", c.baseURL, translationID, surahNumber)

	var payload struct {
		Translations []TranslationData `json:"translations"`
	}
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return payload.Translations, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v interface{}) error {
	body, hit := c.cachedBody(url)
	if !hit {
		var err error
		body, err = c.fetchBody(ctx, url)
		if err != nil {
			return err
		}
		if c.cache != nil {
			if err := c.cache.Put(url, body); err != nil {
				logger.Warn("Failed to cache response", "url", url, "error", err)
			}
		}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeDecodeFailed, fmt.Sprintf("decoding %s", url))
	}
	return nil
}

func (c *Client) cachedBody(url string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, hit, err := c.cache.Get(url)
	if err != nil {
		// Cache trouble degrades to a network fetch, never a failure.
		logger.Warn("Cache lookup failed", "url", url, "error", err)
		return nil, false
	}
	return body, hit
}

func (c *Client) fetchBody(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeFetchFailed, "waiting on rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeFetchFailed, "building request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeFetchFailed, fmt.Sprintf("requesting %s", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.New(apperrors.ErrCodeFetchFailed, fmt.Sprintf("%s returned HTTP %d", url, resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeFetchFailed, "reading response body")
	}
	return body, nil
}
