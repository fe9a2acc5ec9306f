package gallery

import (
	"encoding/json"
	"fmt"
)

// DefaultTitle replaces a manifest entry's title when the server omits it.
const DefaultTitle = "(Untitled)"

// Photo is one gallery entry decoded from the manifest. URL is the photo's
// path relative to the gallery root; Size is its weight in kilobytes.
type Photo struct {
	URL   string
	Size  int
	Title string
}

// UnmarshalJSON decodes a manifest entry. Entries missing url or size are
// rejected; title is optional and defaults to DefaultTitle.
func (p *Photo) UnmarshalJSON(data []byte) error {
	var raw struct {
		URL   *string `json:"url"`
		Size  *int    `json:"size"`
		Title *string `json:"title"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.URL == nil || *raw.URL == "" {
		return fmt.Errorf("photo entry missing url")
	}
	if raw.Size == nil {
		return fmt.Errorf("photo entry %q missing size", *raw.URL)
	}

	p.URL = *raw.URL
	p.Size = *raw.Size
	if raw.Title != nil {
		p.Title = *raw.Title
	} else {
		p.Title = DefaultTitle
	}
	return nil
}
