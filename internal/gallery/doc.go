// Package gallery provides an HTTP client for photo gallery servers.
//
// # Overview
//
// This package defines the client for reading a photo gallery over HTTP:
// fetching the manifest that lists the gallery's photos, building the URLs
// individual images live at, and downloading image bytes for inline
// previews. It owns the Photo type and the strict rules for decoding it.
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: HTTP client, URL construction, request/response handling
//   - photo.go: the Photo manifest entry and its decoding rules
//
// # Client Usage
//
// Create a client using the gallery URL from configuration:
//
//	client, err := gallery.NewClient("127.0.0.1:8488")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	// Fetch the manifest
//	photos, err := client.FetchPhotos(ctx)
//	if err != nil {
//		log.Printf("manifest fetch failed: %v", err)
//	}
//
// # Gallery Layout
//
// A gallery server exposes three kinds of resources:
//
//   - GET /photos/list.json: JSON array of manifest entries
//   - GET /{photo.url}: the thumbnail-sized image
//   - GET /large/{photo.url}: the full-size image
//
// ThumbURL and LargeURL build absolute URLs for the image resources.
// LargeURL falls back to the literal "1.jpeg" when no photo is selected,
// so the preview pane always has something to point at.
//
// # Manifest Decoding
//
// Each manifest entry must carry a url and an integer size (kilobytes);
// entries missing either fail the decode, and a single bad entry fails the
// whole fetch - callers never see a partial photo list. The title field is
// optional and defaults to "(Untitled)" when absent or null.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Include User-Agent: lightbox/0.1 header
//   - Have a 5-second timeout for the manifest, 15 seconds for images
//   - Return wrapped errors with context about what failed
//
// # Error Handling
//
// The caller sees a single error per fetch; transport failures, non-2xx
// statuses, and malformed JSON are not distinguished beyond their message:
//
//   - "execute request: dial tcp: connection refused"
//   - "gallery /photos/list.json returned status 500"
//   - "decode response: photo entry missing url"
//
// # URL Construction
//
// The client accepts several gallery URL formats:
//
//   - "127.0.0.1:8488" → http://127.0.0.1:8488
//   - "photos.example.net:8080" → http://photos.example.net:8080
//   - "https://gallery.example.com" → https://gallery.example.com
//
// The scheme defaults to "http://" if not specified; any path, query, or
// fragment on the configured URL is dropped.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying http.Client
// handles connection pooling and concurrent requests internally.
package gallery
