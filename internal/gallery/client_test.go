package gallery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultGalleryAddr {
		t.Fatalf("host = %q, want %q", u.Host, defaultGalleryAddr)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchPhotosDecodesManifest(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"url": "1.jpeg", "size": 36, "title": "Blue Sky"},
			{"url": "2.jpeg", "size": 38}
		]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	photos, err := c.FetchPhotos(ctx)
	if err != nil {
		t.Fatalf("FetchPhotos returned error: %v", err)
	}
	if gotPath != "/photos/list.json" {
		t.Fatalf("request path = %q, want /photos/list.json", gotPath)
	}
	if len(photos) != 2 {
		t.Fatalf("FetchPhotos returned %d photos, want 2", len(photos))
	}
	if photos[0].URL != "1.jpeg" || photos[0].Size != 36 || photos[0].Title != "Blue Sky" {
		t.Fatalf("photos[0] = %#v, want 1.jpeg/36/Blue Sky", photos[0])
	}
	if photos[1].Title != DefaultTitle {
		t.Fatalf("photos[1].Title = %q, want %q", photos[1].Title, DefaultTitle)
	}
	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "lightbox/") {
		t.Fatalf("User-Agent = %q, want lightbox/*", gotUserAgent)
	}
}

func TestClient_FetchPhotosRejectsBadEntries(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"url": "1.jpeg", "size": 36}, {"title": "no url"}]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	photos, err := c.FetchPhotos(context.Background())
	if err == nil {
		t.Fatalf("FetchPhotos returned nil error, want decode error")
	}
	if photos != nil {
		t.Fatalf("FetchPhotos returned partial list %#v, want nil", photos)
	}
	if !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchPhotos error = %v, want decode response error", err)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	badJSON := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(badJSON.Close)

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(failing.Close)

	c, err := NewClient(badJSON.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchPhotos(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchPhotos error = %v, want decode response error", err)
	}

	c, err = NewClient(failing.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchPhotos(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchPhotos error = %v, want status 500 error", err)
	}
}

func TestClient_FetchImageCapsAndErrors(t *testing.T) {
	t.Parallel()

	payload := strings.Repeat("x", 64)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/large/1.jpeg":
			_, _ = w.Write([]byte(payload))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	data, err := c.FetchImage(context.Background(), c.LargeURL("1.jpeg"))
	if err != nil {
		t.Fatalf("FetchImage returned error: %v", err)
	}
	if string(data) != payload {
		t.Fatalf("FetchImage returned %d bytes, want %d", len(data), len(payload))
	}

	_, err = c.FetchImage(context.Background(), c.LargeURL("missing.jpeg"))
	if err == nil || !strings.Contains(err.Error(), "returned status 404") {
		t.Fatalf("FetchImage error = %v, want status 404 error", err)
	}
}

func TestClient_URLBuilders(t *testing.T) {
	c, err := NewClient("photos.example.net:8080")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if got := c.ThumbURL(Photo{URL: "1.jpeg"}); got != "http://photos.example.net:8080/1.jpeg" {
		t.Fatalf("ThumbURL = %q, want gallery-root join", got)
	}
	if got := c.ThumbURL(Photo{URL: "/nested/2.jpeg"}); got != "http://photos.example.net:8080/nested/2.jpeg" {
		t.Fatalf("ThumbURL with leading slash = %q, want single slash join", got)
	}
	if got := c.LargeURL("3.jpeg"); got != "http://photos.example.net:8080/large/3.jpeg" {
		t.Fatalf("LargeURL = %q, want /large/ prefix", got)
	}
	if got := c.LargeURL(""); got != "http://photos.example.net:8080/large/1.jpeg" {
		t.Fatalf("LargeURL fallback = %q, want /large/1.jpeg", got)
	}
	if got := c.LargeURL("   "); got != "http://photos.example.net:8080/large/1.jpeg" {
		t.Fatalf("LargeURL blank fallback = %q, want /large/1.jpeg", got)
	}
	if got := c.Host(); got != "photos.example.net:8080" {
		t.Fatalf("Host = %q, want photos.example.net:8080", got)
	}
}
