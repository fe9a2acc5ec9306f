package ui

import "github.com/softgrain/lightbox/internal/gallery"

// status is the gallery's load state. Exactly one variant holds at a time,
// and failures are carried as data, so nothing escapes the update loop as a
// panic. The variants form a closed set; representing them as separate
// nullable fields would lose the mutual exclusion.
type status interface {
	isStatus()
}

// loading is the boot state while the manifest fetch is in flight.
type loading struct{}

// loaded holds the fetched photos and the URL of the selected photo. An
// empty selectedURL means nothing is selected. The URL is stored as
// received; lookups that miss fall back to the first photo.
type loaded struct {
	photos      []gallery.Photo
	selectedURL string
}

// failed is terminal for the session. The UI offers no retry; restarting
// the program re-runs the fetch.
type failed struct {
	message string
}

func (loading) isStatus() {}
func (loaded) isStatus()  {}
func (failed) isStatus()  {}

// User-facing failure strings. Transport, HTTP, and decode failures are
// deliberately indistinguishable.
const (
	errNoPhotos    = "0 photos found"
	errServerError = "Server Error!"
)

// newLoaded clones the photo slice so no caller retains a handle into a
// live status value.
func newLoaded(photos []gallery.Photo, selectedURL string) loaded {
	cloned := make([]gallery.Photo, len(photos))
	copy(cloned, photos)
	return loaded{photos: cloned, selectedURL: selectedURL}
}

// selectedIndex returns the position of the selected photo, or 0 when
// nothing matches.
func (st loaded) selectedIndex() int {
	for i, p := range st.photos {
		if p.URL == st.selectedURL {
			return i
		}
	}
	return 0
}

// selectedPhoto returns the selected photo and whether one is selected.
func (st loaded) selectedPhoto() (gallery.Photo, bool) {
	for _, p := range st.photos {
		if p.URL == st.selectedURL {
			return p, true
		}
	}
	return gallery.Photo{}, false
}
