package ui

import "github.com/softgrain/lightbox/internal/gallery"

// Messages drive every state transition. User interactions and completed
// commands both arrive here; the update loop processes one at a time.

// gotPhotosMsg reports the outcome of the one startup manifest fetch.
type gotPhotosMsg struct {
	photos []gallery.Photo
	err    error
}

// photoClickedMsg selects the photo with the given URL.
type photoClickedMsg struct {
	url string
}

// surpriseMsg asks for a uniformly random selection.
type surpriseMsg struct{}

// photoSurprisedMsg carries the photo the random pick landed on.
type photoSurprisedMsg struct {
	photo gallery.Photo
}

// sizeChosenMsg switches the thumbnail size class.
type sizeChosenMsg struct {
	size ThumbSize
}

// slidMsg carries the value a filter slider was slid to. The slider control
// clamps to its bounds before emitting; the reducer stores the value
// verbatim.
type slidMsg struct {
	filter filterKind
	value  int
}

// previewReadyMsg reports an inline image render. Preview failures stay out
// of the gallery status; they only blank the preview pane.
type previewReadyMsg struct {
	url      string
	rendered string
	err      error
}

// filterKind names one of the three cosmetic filter channels.
type filterKind int

const (
	filterHue filterKind = iota
	filterRipple
	filterNoise
)

func (f filterKind) String() string {
	switch f {
	case filterHue:
		return "hue"
	case filterRipple:
		return "ripple"
	case filterNoise:
		return "noise"
	default:
		return "unknown"
	}
}
