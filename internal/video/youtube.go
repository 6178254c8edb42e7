// Package video resolves exercise names to YouTube tutorial links.
package video

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Link is a resolved video reference. Source labels where the URL points:
// "YouTube" for a direct video, "YouTube Search" for a results page.
type Link struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

// Lookup finds tutorial videos via the YouTube Data API. Without an API key,
// or when the API fails, it falls back to a search-results URL; Find never
// returns an error because video links are a nice-to-have.
type Lookup struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewLookup creates a Lookup. The API key may be empty.
func NewLookup(apiKey string, logger *zap.Logger) *Lookup {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Lookup{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		logger:     logger,
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// Find resolves name to the best tutorial link available.
func (l *Lookup) Find(ctx context.Context, name string) Link {
	query := name + " exercise tutorial proper form"

	if l.apiKey != "" {
		if link, err := l.search(ctx, query); err == nil {
			return link
		} else {
			l.logger.Warn("youtube search failed, using results link",
				zap.String("exercise", name),
				zap.Error(err))
		}
	}

	return Link{
		URL:    "https://www.youtube.com/results?" + url.Values{"search_query": {query}}.Encode(),
		Source: "YouTube Search",
	}
}

func (l *Lookup) search(ctx context.Context, query string) (Link, error) {
	params := url.Values{
		"part":       {"snippet"},
		"q":          {query},
		"type":       {"video"},
		"maxResults": {"1"},
		"key":        {l.apiKey},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return Link{}, err
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return Link{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Link{}, fmt.Errorf("youtube API status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Link{}, fmt.Errorf("decode search response: %w", err)
	}
	if len(body.Items) == 0 || body.Items[0].ID.VideoID == "" {
		return Link{}, fmt.Errorf("no results for %q", query)
	}

	return Link{
		URL:    "https://www.youtube.com/watch?v=" + body.Items[0].ID.VideoID,
		Source: "YouTube",
	}, nil
}
