package ui

import (
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/softgrain/lightbox/internal/gallery"
	"github.com/softgrain/lightbox/internal/preview"
)

// focusArea identifies which control currently receives navigation keys.
type focusArea int

const (
	focusGallery focusArea = iota
	focusHue
	focusRipple
	focusNoise

	focusAreaCount = 4
)

// Options configures a gallery session.
type Options struct {
	// Source fetches the photo manifest and image bytes.
	Source gallery.Source

	// Renderer draws inline previews. A nil or unavailable renderer
	// degrades to a metadata card; it never blocks the gallery.
	Renderer *preview.Renderer

	// ThemeName selects the starting color theme by name.
	ThemeName string

	// PrefsPath is where theme changes are persisted. Empty disables
	// persistence.
	PrefsPath string
}

// Model holds the entire gallery state. All mutation happens inside Update,
// one message at a time; commands return messages instead of touching state.
type Model struct {
	status status
	size   ThumbSize
	hue    int
	ripple int
	noise  int

	source   gallery.Source
	renderer *preview.Renderer

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	sliders [3]slider
	grid    viewport.Model

	focus  focusArea
	theme  Theme
	styles Styles

	prefsPath string
	width     int
	height    int

	// previews caches rendered image art keyed by large photo URL. The
	// cache is cleared on resize since art is sized to the pane.
	previews   map[string]string
	previewErr string

	// randInt picks a uniform index in [0, n). Swappable for tests.
	randInt func(int) int
}

// New builds the initial model: loading status, medium thumbnails, and all
// three filters at the midpoint.
func New(opts Options) Model {
	th := GetTheme(opts.ThemeName)
	st := th.Styles()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(st.AccentText),
	)

	m := Model{
		status: loading{},
		size:   SizeMedium,
		hue:    defaultFilterValue,
		ripple: defaultFilterValue,
		noise:  defaultFilterValue,

		source:   opts.Source,
		renderer: opts.Renderer,

		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		grid:    viewport.New(0, 0),

		theme:  th,
		styles: st,

		prefsPath: opts.PrefsPath,
		previews:  map[string]string{},
		randInt:   rand.Intn,
	}
	m.sliders = [3]slider{
		newSlider(filterHue.String(), th, func(v int) tea.Msg {
			return slidMsg{filter: filterHue, value: v}
		}),
		newSlider(filterRipple.String(), th, func(v int) tea.Msg {
			return slidMsg{filter: filterRipple, value: v}
		}),
		newSlider(filterNoise.String(), th, func(v int) tea.Msg {
			return slidMsg{filter: filterNoise, value: v}
		}),
	}
	return m
}

// Init kicks off the spinner and the one manifest fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchPhotosCmd(m.source))
}

// loadedStatus unwraps the status when photos are on screen.
func (m Model) loadedStatus() (loaded, bool) {
	st, ok := m.status.(loaded)
	return st, ok
}

// filterValue reads the stored value for one filter channel.
func (m Model) filterValue(f filterKind) int {
	switch f {
	case filterHue:
		return m.hue
	case filterRipple:
		return m.ripple
	case filterNoise:
		return m.noise
	default:
		return 0
	}
}

// largePhotoURL is the full-size render URL for the current selection. The
// source substitutes its default photo when nothing is selected.
func (m Model) largePhotoURL() string {
	if st, ok := m.loadedStatus(); ok {
		return m.source.LargeURL(st.selectedURL)
	}
	return m.source.LargeURL("")
}
