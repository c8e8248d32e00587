package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"cinimagic-be/internal/pkg/logger"
)

// DefaultPosterURL is served whenever a poster cannot be resolved. Callers
// always get a usable image URL.
const DefaultPosterURL = "https://placehold.co/500x750/3f3f46/FFFFFF?text=Poster+Unavailable"

const imageBaseURL = "https://image.tmdb.org/t/p/w500"

const defaultBaseURL = "https://api.themoviedb.org/3"

const defaultTimeout = 5 * time.Second

// NowPlayingFallback is the one-element list returned when the now-playing
// lookup fails in any way.
var NowPlayingFallback = []string{"No new movies found"}

// Client resolves poster art and now-playing titles from TMDB. Every lookup
// degrades to a fixed fallback instead of failing, so callers never branch
// on errors. Results are cached in memory.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      sync.Map
	logger     logger.ILogger
}

// Cache Item Wrapper
type cachedItem struct {
	data      interface{}
	expiresAt time.Time
}

func NewClient(apiKey string, log logger.ILogger) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     log,
	}
}

// NewClientWithBaseURL is used by tests to point at a local fake.
func NewClientWithBaseURL(apiKey, baseURL string, log logger.ILogger) *Client {
	c := NewClient(apiKey, log)
	c.baseURL = baseURL
	return c
}

// --- Caching Helpers ---

func (c *Client) getFromCache(key string) (interface{}, bool) {
	val, ok := c.cache.Load(key)
	if !ok {
		return nil, false
	}
	item := val.(cachedItem)
	if time.Now().After(item.expiresAt) {
		c.cache.Delete(key)
		return nil, false
	}
	return item.data, true
}

func (c *Client) setCache(key string, data interface{}, duration time.Duration) {
	c.cache.Store(key, cachedItem{
		data:      data,
		expiresAt: time.Now().Add(duration),
	})
}

// --- Lookups ---

// PosterFor resolves a poster image URL for a title. Network errors,
// non-200 responses, and empty result sets all collapse to
// DefaultPosterURL; the failure is logged and the session moves on.
func (c *Client) PosterFor(ctx context.Context, title string) string {
	cacheKey := fmt.Sprintf("poster:%s", title)
	if val, ok := c.getFromCache(cacheKey); ok {
		return val.(string)
	}

	params := url.Values{}
	params.Add("api_key", c.apiKey)
	params.Add("query", title)

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/search/movie?"+params.Encode(), nil)
	if err != nil {
		return DefaultPosterURL
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("tmdb", "poster fetch failed", map[string]interface{}{"title": title, "error": err.Error()})
		return DefaultPosterURL
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("tmdb", "poster fetch failed", map[string]interface{}{"title": title, "status": resp.StatusCode})
		return DefaultPosterURL
	}

	var result struct {
		Results []struct {
			PosterPath string `json:"poster_path"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Error("tmdb", "poster response unreadable", map[string]interface{}{"title": title, "error": err.Error()})
		return DefaultPosterURL
	}

	if len(result.Results) == 0 || result.Results[0].PosterPath == "" {
		return DefaultPosterURL
	}

	posterURL := imageBaseURL + result.Results[0].PosterPath
	c.setCache(cacheKey, posterURL, 24*time.Hour)
	return posterURL
}

// NowPlaying returns up to limit currently-showing titles, or
// NowPlayingFallback when the lookup fails in any way.
func (c *Client) NowPlaying(ctx context.Context, limit int) []string {
	if limit <= 0 {
		limit = 5
	}

	cacheKey := fmt.Sprintf("now_playing:%d", limit)
	if val, ok := c.getFromCache(cacheKey); ok {
		return val.([]string)
	}

	params := url.Values{}
	params.Add("api_key", c.apiKey)
	params.Add("language", "en-US")
	params.Add("page", "1")

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/movie/now_playing?"+params.Encode(), nil)
	if err != nil {
		return NowPlayingFallback
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("tmdb", "now-playing fetch failed", map[string]interface{}{"error": err.Error()})
		return NowPlayingFallback
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("tmdb", "now-playing fetch failed", map[string]interface{}{"status": resp.StatusCode})
		return NowPlayingFallback
	}

	var result struct {
		Results []struct {
			Title string `json:"title"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Error("tmdb", "now-playing response unreadable", map[string]interface{}{"error": err.Error()})
		return NowPlayingFallback
	}
	if len(result.Results) == 0 {
		return NowPlayingFallback
	}

	titles := make([]string, 0, limit)
	for _, m := range result.Results {
		if len(titles) == limit {
			break
		}
		titles = append(titles, m.Title)
	}

	c.setCache(cacheKey, titles, 1*time.Hour)
	return titles
}
