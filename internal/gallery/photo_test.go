package gallery

import (
	"encoding/json"
	"testing"
)

func TestPhotoUnmarshal_DefaultsMissingTitle(t *testing.T) {
	var p Photo
	if err := json.Unmarshal([]byte(`{"url": "1.jpeg", "size": 90}`), &p); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if p.URL != "1.jpeg" || p.Size != 90 {
		t.Fatalf("photo = %#v, want url=1.jpeg size=90", p)
	}
	if p.Title != DefaultTitle {
		t.Fatalf("Title = %q, want %q", p.Title, DefaultTitle)
	}
}

func TestPhotoUnmarshal_NullTitleDefaults(t *testing.T) {
	var p Photo
	if err := json.Unmarshal([]byte(`{"url": "1.jpeg", "size": 90, "title": null}`), &p); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if p.Title != DefaultTitle {
		t.Fatalf("Title = %q, want %q", p.Title, DefaultTitle)
	}
}

func TestPhotoUnmarshal_FullEntry(t *testing.T) {
	var p Photo
	if err := json.Unmarshal([]byte(`{"url": "2.jpeg", "size": 75, "title": "Blue Rock"}`), &p); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if p.URL != "2.jpeg" || p.Size != 75 || p.Title != "Blue Rock" {
		t.Fatalf("photo = %#v, want 2.jpeg/75/Blue Rock", p)
	}
}

func TestPhotoUnmarshal_RejectsBadEntries(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"missing url", `{"size": 90, "title": "x"}`},
		{"empty url", `{"url": "", "size": 90}`},
		{"missing size", `{"url": "1.jpeg", "title": "x"}`},
		{"null size", `{"url": "1.jpeg", "size": null}`},
		{"string size", `{"url": "1.jpeg", "size": "90"}`},
		{"fractional size", `{"url": "1.jpeg", "size": 90.5}`},
		{"non-string title", `{"url": "1.jpeg", "size": 90, "title": 7}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Photo
			if err := json.Unmarshal([]byte(tc.payload), &p); err == nil {
				t.Fatalf("Unmarshal(%s) returned nil error, want decode failure", tc.payload)
			}
		})
	}
}

func TestPhotoUnmarshal_ArrayFailsWholesale(t *testing.T) {
	var photos []Photo
	err := json.Unmarshal([]byte(`[{"url": "1.jpeg", "size": 90}, {"size": 2}]`), &photos)
	if err == nil {
		t.Fatalf("Unmarshal returned nil error, want failure from bad second entry")
	}
}
