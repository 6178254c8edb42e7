package video

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestFindReturnsWatchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Pushups exercise tutorial proper form" {
			t.Errorf("query = %q", got)
		}
		if got := r.URL.Query().Get("maxResults"); got != "1" {
			t.Errorf("maxResults = %q", got)
		}
		w.Write([]byte(`{"items":[{"id":{"videoId":"abc123"}}]}`))
	}))
	defer srv.Close()

	l := NewLookup("key", zap.NewNop())
	l.baseURL = srv.URL

	link := l.Find(context.Background(), "Pushups")
	if link.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("URL = %q", link.URL)
	}
	if link.Source != "YouTube" {
		t.Errorf("Source = %q", link.Source)
	}
}

func TestFindFallsBackToSearchPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	l := NewLookup("key", zap.NewNop())
	l.baseURL = srv.URL

	link := l.Find(context.Background(), "Squats")
	if !strings.HasPrefix(link.URL, "https://www.youtube.com/results?") {
		t.Errorf("URL = %q", link.URL)
	}
	if !strings.Contains(link.URL, "Squats") {
		t.Errorf("URL should embed the exercise name: %q", link.URL)
	}
	if link.Source != "YouTube Search" {
		t.Errorf("Source = %q", link.Source)
	}
}

func TestFindWithoutAPIKeySkipsAPI(t *testing.T) {
	l := NewLookup("", zap.NewNop())
	l.baseURL = "http://127.0.0.1:0" // would fail if contacted

	link := l.Find(context.Background(), "Deadlift")
	if link.Source != "YouTube Search" {
		t.Errorf("Source = %q", link.Source)
	}
}

func TestFindEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	l := NewLookup("key", zap.NewNop())
	l.baseURL = srv.URL

	if link := l.Find(context.Background(), "Rows"); link.Source != "YouTube Search" {
		t.Errorf("Source = %q", link.Source)
	}
}
