package ui

// ThumbSize selects how large thumbnails render in the gallery grid.
type ThumbSize int

const (
	SizeSmall ThumbSize = iota
	SizeMedium
	SizeLarge
)

// sizeOrder drives the size chooser row, smallest first.
var sizeOrder = []ThumbSize{SizeSmall, SizeMedium, SizeLarge}

// String returns the stable class name for a size. The grid layout table
// is keyed by these names, so they must never change.
func (s ThumbSize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "med"
	case SizeLarge:
		return "large"
	default:
		return "med"
	}
}
