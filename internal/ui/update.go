package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/softgrain/lightbox/internal/gallery"
)

// Update is the single place state changes. Keyboard chrome is handled
// first; everything else is a plain message-to-state transition.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case spinner.TickMsg:
		// The spinner only animates while the manifest is in flight.
		if _, ok := m.status.(loading); !ok {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case gotPhotosMsg:
		return m.applyGotPhotos(msg)

	case photoClickedMsg:
		return m.applySelect(msg.url)

	case surpriseMsg:
		return m.applySurprise()

	case photoSurprisedMsg:
		return m.applySelect(msg.photo.URL)

	case sizeChosenMsg:
		return m.applySizeChosen(msg)

	case slidMsg:
		return m.applySlide(msg)

	case previewReadyMsg:
		return m.applyPreviewReady(msg)
	}
	return m, nil
}

// applyGotPhotos resolves the startup fetch. Any transport, HTTP, or decode
// failure lands in the failed status, as does an empty manifest. A non-empty
// list comes up with its first photo selected.
func (m Model) applyGotPhotos(msg gotPhotosMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.status = failed{message: errServerError}
		return m, nil
	}
	if len(msg.photos) == 0 {
		m.status = failed{message: errNoPhotos}
		return m, nil
	}
	m.status = newLoaded(msg.photos, msg.photos[0].URL)
	m.syncGrid()
	return m, m.previewCmdForSelection()
}

// applySelect moves the selection to the given URL. Selection only means
// something while photos are on screen; in any other status the message is
// dropped.
func (m Model) applySelect(url string) (Model, tea.Cmd) {
	st, ok := m.loadedStatus()
	if !ok {
		return m, nil
	}
	if st.selectedURL == url {
		return m, nil
	}
	m.status = newLoaded(st.photos, url)
	m.syncGrid()
	return m, m.previewCmdForSelection()
}

// applySurprise requests one uniformly random pick. Only a non-empty loaded
// gallery can be surprised; everything else is a no-op.
func (m Model) applySurprise() (Model, tea.Cmd) {
	st, ok := m.loadedStatus()
	if !ok || len(st.photos) == 0 {
		return m, nil
	}
	return m, surpriseCmd(st.photos, m.randInt)
}

// applySizeChosen switches the thumbnail size. The size is its own field,
// so it survives load failures and applies whenever photos render.
func (m Model) applySizeChosen(msg sizeChosenMsg) (Model, tea.Cmd) {
	m.size = msg.size
	m.syncGrid()
	return m, nil
}

// applySlide stores a filter value exactly as carried by the message.
// Range enforcement lives in the slider control, not here.
func (m Model) applySlide(msg slidMsg) (Model, tea.Cmd) {
	switch msg.filter {
	case filterHue:
		m.hue = msg.value
	case filterRipple:
		m.ripple = msg.value
	case filterNoise:
		m.noise = msg.value
	}
	return m, nil
}

// applyPreviewReady stores or discards a finished render. Failures only
// blank the preview pane; the gallery status never changes here.
func (m Model) applyPreviewReady(msg previewReadyMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.previewErr = msg.err.Error()
		return m, nil
	}
	m.previews[msg.url] = msg.rendered
	m.previewErr = ""
	return m, nil
}

// applyThemeCycle advances to the next theme and rebuilds everything that
// bakes theme colors in.
func (m Model) applyThemeCycle() (Model, tea.Cmd) {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.styles = m.theme.Styles()
	m.spinner.Style = m.styles.AccentText
	for i := range m.sliders {
		m.sliders[i] = m.sliders[i].retheme(m.theme)
	}
	m.syncGrid()
	return m, savePrefsCmd(m.prefsPath, m.theme.Name)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	// Rendered art is sized to the pane, so the cache is stale now.
	m.previews = map[string]string{}
	m.previewErr = ""
	m.syncGrid()
	return m, m.previewCmdForSelection()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.syncGrid()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		return m.applyThemeCycle()

	// The focus targets only exist on the loaded screen.
	case key.Matches(msg, m.keys.Tab):
		if _, ok := m.loadedStatus(); ok {
			m.focus = (m.focus + 1) % focusAreaCount
		}
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		if _, ok := m.loadedStatus(); ok {
			m.focus = (m.focus + focusAreaCount - 1) % focusAreaCount
		}
		return m, nil

	case key.Matches(msg, m.keys.SizeSmall):
		return m.applySizeChosen(sizeChosenMsg{size: SizeSmall})

	case key.Matches(msg, m.keys.SizeMedium):
		return m.applySizeChosen(sizeChosenMsg{size: SizeMedium})

	case key.Matches(msg, m.keys.SizeLarge):
		return m.applySizeChosen(sizeChosenMsg{size: SizeLarge})

	case key.Matches(msg, m.keys.Surprise):
		return m.applySurprise()

	case key.Matches(msg, m.keys.OpenBrowser):
		if _, ok := m.loadedStatus(); !ok {
			return m, nil
		}
		return m, openBrowserCmd(m.largePhotoURL())
	}

	if m.focus == focusGallery {
		return m.handleGalleryKey(msg)
	}
	return m.handleSliderKey(msg)
}

// handleGalleryKey turns navigation keys into selection moves. Moving the
// cursor is selecting; there is no separate highlight.
func (m Model) handleGalleryKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	st, ok := m.loadedStatus()
	if !ok {
		return m, nil
	}
	cols := m.gridColumns()
	idx := st.selectedIndex()
	switch {
	case key.Matches(msg, m.keys.Left):
		return m.applySelect(neighborURL(st.photos, idx, -1))
	case key.Matches(msg, m.keys.Right):
		return m.applySelect(neighborURL(st.photos, idx, 1))
	case key.Matches(msg, m.keys.Up):
		return m.applySelect(neighborURL(st.photos, idx, -cols))
	case key.Matches(msg, m.keys.Down):
		return m.applySelect(neighborURL(st.photos, idx, cols))
	case key.Matches(msg, m.keys.First):
		return m.applySelect(st.photos[0].URL)
	case key.Matches(msg, m.keys.Last):
		return m.applySelect(st.photos[len(st.photos)-1].URL)
	}
	return m, nil
}

func (m Model) handleSliderKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if _, ok := m.loadedStatus(); !ok {
		return m, nil
	}
	i := int(m.focus) - int(focusHue)
	if i < 0 || i >= len(m.sliders) {
		return m, nil
	}
	sl := m.sliders[i]
	current := m.filterValue(filterKind(i))
	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Down):
		return m, sl.slide(current, current-1)
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Up):
		return m, sl.slide(current, current+1)
	case key.Matches(msg, m.keys.First):
		return m, sl.slide(current, minFilterValue)
	case key.Matches(msg, m.keys.Last):
		return m, sl.slide(current, sl.max)
	}
	return m, nil
}

// neighborURL returns the URL of the photo delta positions away, clamped to
// the gallery bounds.
func neighborURL(photos []gallery.Photo, idx, delta int) string {
	next := clampInt(idx+delta, 0, len(photos)-1)
	return photos[next].URL
}
