package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Source defines the interface for reading a photo gallery: the manifest,
// raw image bytes, and the URLs images live at. It is implemented by
// *Client and can be used for testing.
type Source interface {
	FetchPhotos(ctx context.Context) ([]Photo, error)
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
	ThumbURL(p Photo) string
	LargeURL(selected string) string
	Host() string
}

// Ensure Client implements Source at compile time.
var _ Source = (*Client)(nil)

// Client talks to a photo gallery server over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	imageHTTP *http.Client
	userAgent string
}

const (
	defaultGalleryAddr = "127.0.0.1:8488"
	defaultUserAgent   = "lightbox/0.1"
	manifestPath       = "/photos/list.json"
	largePathPrefix    = "/large/"

	// fallbackLargePhoto is shown in the preview pane before any photo
	// has been selected.
	fallbackLargePhoto = "1.jpeg"

	requestTimeout    = 5 * time.Second
	imageFetchTimeout = 15 * time.Second

	// maxImageBytes caps preview downloads; gallery JPEGs are far smaller.
	maxImageBytes = 5 << 20
)

// NewClient builds a Client for the given gallery base URL. The value may be
// a bare host:port; a scheme is assumed when missing.
func NewClient(galleryURL string) (*Client, error) {
	base, err := parseBaseURL(galleryURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		imageHTTP: &http.Client{
			Timeout: imageFetchTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchPhotos retrieves and decodes the gallery manifest. Any undecodable
// entry fails the whole fetch; callers never see a partial list.
func (c *Client) FetchPhotos(ctx context.Context) ([]Photo, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var photos []Photo
	if err := c.do(ctx, http.MethodGet, manifestPath, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// FetchImage retrieves raw image bytes from an absolute image URL, capped
// at maxImageBytes.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.imageHTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("image %s returned status %d", imageURL, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return data, nil
}

// ThumbURL returns the absolute URL of a photo's thumbnail image.
func (c *Client) ThumbURL(p Photo) string {
	rel := &url.URL{Path: "/" + strings.TrimPrefix(p.URL, "/")}
	return c.baseURL.ResolveReference(rel).String()
}

// LargeURL returns the absolute URL of the full-size image for the given
// selection. An empty selection falls back to the gallery cover photo.
func (c *Client) LargeURL(selected string) string {
	name := strings.TrimSpace(selected)
	if name == "" {
		name = fallbackLargePhoto
	}
	rel := &url.URL{Path: largePathPrefix + strings.TrimPrefix(name, "/")}
	return c.baseURL.ResolveReference(rel).String()
}

// Host returns the gallery host for display purposes.
func (c *Client) Host() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.Host
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("gallery %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(galleryURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(galleryURL)
	if trimmed == "" {
		trimmed = defaultGalleryAddr
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse gallery_url %q: %w", galleryURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
